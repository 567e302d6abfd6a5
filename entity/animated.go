// Package entity holds objects that own and tick their own animations.
package entity

import (
	"fmt"
	"time"

	"github.com/matt-g-everett/animator/anim"
)

// Animated is an object with attributes and the animations acting on them.
// Its animations advance once per Update call, on the caller's goroutine.
type Animated struct {
	*Attributes
	name       string
	clock      anim.Clock
	animations *anim.Chain
}

// Option configures an Animated.
type Option func(*Animated) error

// WithClock sets the clock handed to animations the entity creates itself.
func WithClock(c anim.Clock) Option {
	return func(a *Animated) error {
		a.clock = c
		return nil
	}
}

// WithAnimations adds animations at construction.
func WithAnimations(animations ...anim.Animation) Option {
	return func(a *Animated) error {
		for _, an := range animations {
			if err := a.Add(an); err != nil {
				return err
			}
		}
		return nil
	}
}

// New creates an Animated named name with the given attributes.
func New(name string, attrs map[string]any, opts ...Option) (*Animated, error) {
	a := new(Animated)
	a.Attributes = NewAttributes(attrs)
	a.name = name
	a.clock = anim.SystemClock
	a.animations, _ = anim.NewChain(nil)
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Name returns the entity name.
func (a *Animated) Name() string {
	return a.name
}

func (a *Animated) String() string {
	return fmt.Sprintf("<Animated %s>", a.name)
}

// Update advances every animation once and drops those that finished. It
// always returns true, so an entity can itself be run by an anim.Driver.
func (a *Animated) Update() bool {
	a.animations.Update()
	return true
}

// Add appends an animation.
func (a *Animated) Add(an anim.Animation) error {
	return a.animations.Add(an)
}

// Remove takes an animation away, failing with anim.ErrNotFound if it is
// not held.
func (a *Animated) Remove(an anim.Animation) error {
	return a.animations.Remove(an)
}

// Animations returns a copy of the held animations.
func (a *Animated) Animations() []anim.Animation {
	return a.animations.Animations()
}

// Len returns the number of held animations.
func (a *Animated) Len() int {
	return a.animations.Len()
}

// Move starts moving the entity by dx, dy over duration. The entity must
// already have numeric x and y attributes.
func (a *Animated) Move(dx, dy float64, duration time.Duration) error {
	_, okX := anim.Float(a, "x")
	_, okY := anim.Float(a, "y")
	if !okX || !okY {
		return fmt.Errorf("%w: cannot move %v without x and y attributes", anim.ErrTypeMismatch, a)
	}
	m, err := anim.Move(a, dx, dy, duration, anim.WithClock(a.clock))
	if err != nil {
		return err
	}
	return a.Add(m)
}

// Stop cancels every move animation, leaving other animations running. It
// returns how many were removed.
func (a *Animated) Stop() int {
	return a.animations.RemoveKind(anim.KindMove)
}

// Position returns the x and y attributes, or zeros if they are not numeric.
func (a *Animated) Position() (x, y float64) {
	x, _ = anim.Float(a, "x")
	y, _ = anim.Float(a, "y")
	return x, y
}
