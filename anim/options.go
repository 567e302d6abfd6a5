package anim

import "time"

type settings struct {
	tick    time.Duration
	tickSet bool
	clock   Clock
	pool    *Pool
}

func newSettings(opts []Option) settings {
	s := settings{clock: SystemClock}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Option configures animations and drivers.
type Option func(*settings)

// WithTick sets the pause between ticks when driven in the background.
// Zero means no pause at all.
func WithTick(d time.Duration) Option {
	return func(s *settings) {
		if d < 0 {
			d = 0
		}
		s.tick = d
		s.tickSet = true
	}
}

// WithTickMs is WithTick in milliseconds. A nil pointer means no pause.
func WithTickMs(ms *int) Option {
	if ms == nil {
		return WithTick(0)
	}
	return WithTick(time.Duration(*ms) * time.Millisecond)
}

// WithClock sets the clock used to measure delta time.
func WithClock(c Clock) Option {
	return func(s *settings) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithPool makes a Driver wait for a slot in p before ticking.
func WithPool(p *Pool) Option {
	return func(s *settings) {
		s.pool = p
	}
}
