package anim

import (
	"fmt"
	"time"
)

// AcceptedKinds lists the kinds an Interpolation can be built with.
var AcceptedKinds = []Kind{KindMove}

func accepted(kind Kind) bool {
	for _, k := range AcceptedKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// An Interpolation sets attributes in closed form from the ratio of elapsed
// time to its duration. It finishes the first time the ratio exceeds 1 and
// leaves the target at whatever the last successful tick wrote.
type Interpolation struct {
	target   Target
	kind     Kind
	clock    Clock
	start    time.Time
	duration time.Duration
	params   map[string]float64
	from     map[string]float64
	done     bool
}

// NewInterpolation creates an Interpolation of the given kind. The kind is
// checked before anything is read from the target.
func NewInterpolation(target Target, kind Kind, duration time.Duration, params map[string]float64, opts ...Option) (*Interpolation, error) {
	if !accepted(kind) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidArgument, duration)
	}

	i := new(Interpolation)
	i.target = target
	i.kind = kind
	i.duration = duration
	i.params = make(map[string]float64, len(params))
	for k, v := range params {
		i.params[k] = v
	}

	switch kind {
	case KindMove:
		for _, p := range []string{"dx", "dy"} {
			if _, ok := i.params[p]; !ok {
				return nil, fmt.Errorf("%w: move needs parameter %s", ErrInvalidArgument, p)
			}
		}
		x, okX := Float(target, "x")
		y, okY := Float(target, "y")
		if !okX || !okY {
			return nil, fmt.Errorf("%w: target has no numeric x and y", ErrInvalidArgument)
		}
		i.from = map[string]float64{"x": x, "y": y}
	}

	i.clock = newSettings(opts).clock
	i.start = i.clock.Now()
	return i, nil
}

// Move creates an Interpolation that shifts the target's x and y by dx and dy
// over duration.
func Move(target Target, dx, dy float64, duration time.Duration, opts ...Option) (*Interpolation, error) {
	return NewInterpolation(target, KindMove, duration, map[string]float64{"dx": dx, "dy": dy}, opts...)
}

// Kind returns the interpolation kind.
func (i *Interpolation) Kind() Kind {
	return i.kind
}

// Duration returns the total duration.
func (i *Interpolation) Duration() time.Duration {
	return i.duration
}

// Ratio returns elapsed time over duration, unclamped.
func (i *Interpolation) Ratio() float64 {
	return float64(i.clock.Now().Sub(i.start)) / float64(i.duration)
}

// Update applies the interpolation at the current ratio.
func (i *Interpolation) Update() bool {
	if i.done {
		return false
	}
	ratio := i.Ratio()
	if ratio > 1 {
		i.done = true
		return false
	}

	switch i.kind {
	case KindMove:
		i.target.Set("x", i.from["x"]+i.params["dx"]*ratio)
		i.target.Set("y", i.from["y"]+i.params["dy"]*ratio)
	}
	return true
}

func (i *Interpolation) String() string {
	return fmt.Sprintf("<Interpolation(%s) %p>", i.kind, i)
}

// Float reads a numeric property from target.
func Float(target Target, name string) (float64, bool) {
	if target == nil || !target.Has(name) {
		return 0, false
	}
	return number(target.Get(name))
}
