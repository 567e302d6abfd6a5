package anim

import "time"

// PropertyFunc computes the next value of a property from its current value
// and the seconds elapsed since the previous tick.
type PropertyFunc func(current any, dt float64) any

// timed holds the bookkeeping shared by the delta time animations.
type timed struct {
	clock    Clock
	interval time.Duration
	last     time.Time
}

func newTimed(opts []Option) timed {
	s := newSettings(opts)
	return timed{clock: s.clock, interval: s.tick, last: s.clock.Now()}
}

// delta returns the seconds since the previous call, or since construction.
func (t *timed) delta() float64 {
	now := t.clock.Now()
	dt := now.Sub(t.last).Seconds()
	t.last = now
	return dt
}

// Interval is the pause preferred between ticks when run by a Driver.
func (t *timed) Interval() time.Duration {
	return t.interval
}

// A PropertyAnimation rewrites one named property of its target every tick.
// It never finishes on its own; remove it from its Chain or host to stop it.
type PropertyAnimation struct {
	timed
	target   Target
	property string
	fn       PropertyFunc
}

// NewPropertyAnimation creates an instance of a PropertyAnimation.
func NewPropertyAnimation(target Target, property string, fn PropertyFunc, opts ...Option) *PropertyAnimation {
	p := new(PropertyAnimation)
	p.timed = newTimed(opts)
	p.target = target
	p.property = property
	p.fn = fn
	return p
}

// Property returns the name of the animated property.
func (p *PropertyAnimation) Property() string {
	return p.property
}

// Update writes fn(current, dt) back to the property. A target that lacks the
// property is a programming error and panics with a *PropertyError.
func (p *PropertyAnimation) Update() bool {
	dt := p.delta()
	if !p.target.Has(p.property) {
		panic(&PropertyError{Property: p.property, Err: ErrMissingProperty})
	}
	p.target.Set(p.property, p.fn(p.target.Get(p.property), dt))
	return true
}
