/*
Package anim drives time based mutation of object properties. An Animation is
ticked repeatedly, either by a host calling Update from its own loop or by a
Driver running on its own goroutine, until it reports that it is finished.
*/
package anim

import (
	"errors"
	"fmt"
	"log"
	"os"
)

// An Animation is one schedulable piece of time driven mutation.
// Update performs a single step and returns false once the animation wants to
// be removed. After returning false it is never called again by a Chain,
// host or Driver.
type Animation interface {
	Update() bool
}

// Kind tags animations that hosts can stop selectively.
type Kind string

// KindMove is the only kind accepted by Interpolation.
const KindMove Kind = "move"

// Kinded is implemented by animations that carry a Kind.
type Kinded interface {
	Kind() Kind
}

// KindOf returns the kind of a, or the empty Kind if it has none.
func KindOf(a Animation) Kind {
	if k, ok := a.(Kinded); ok {
		return k.Kind()
	}
	return ""
}

// Target is the object whose named properties are animated.
type Target interface {
	Get(name string) any
	Set(name string, value any)
	Has(name string) bool
}

var (
	// ErrInvalidArgument is returned for unsupported kinds or unusable targets.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidKind is returned when constructing an Interpolation of an unknown kind.
	ErrInvalidKind = fmt.Errorf("%w: unknown animation kind", ErrInvalidArgument)
	// ErrTypeMismatch is returned when something that is not an animation is added.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrNotFound is returned when removing an animation that is not held.
	ErrNotFound = errors.New("animation not found")
	// ErrMissingProperty is wrapped by PropertyError.
	ErrMissingProperty = errors.New("missing property")
	// ErrDriverStarted is returned when a Driver is started twice.
	ErrDriverStarted = errors.New("driver already started")
)

// PropertyError reports a property that could not be animated on a target.
type PropertyError struct {
	Property string
	Err      error
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("property %q: %v", e.Property, e.Err)
}

func (e *PropertyError) Unwrap() error {
	return e.Err
}

var logger = log.New(os.Stdout, "(ANIM) ", log.LstdFlags)

// removeAnimation deletes the first occurrence of a from list by identity,
// preserving order.
func removeAnimation(list []Animation, a Animation) ([]Animation, error) {
	for i, b := range list {
		if b == a {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			return list[:len(list)-1], nil
		}
	}
	return list, fmt.Errorf("%w: %v", ErrNotFound, a)
}
