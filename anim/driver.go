package anim

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// State is the lifecycle position of a Driver.
type State int32

const (
	// Idle drivers have not been started.
	Idle State = iota
	// Running drivers are ticking, or waiting for a pool slot.
	Running
	// Stopped is terminal.
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// A Driver ticks one Animation on its own goroutine until the animation
// finishes or a stop is requested. Stopping is cooperative: an Update in
// progress is never interrupted. A Driver cannot be restarted.
type Driver struct {
	animation Animation
	tick      time.Duration
	pool      *Pool

	state atomic.Int32
	ticks atomic.Uint64

	mu     sync.Mutex
	cancel context.CancelFunc
	err    error
	done   chan struct{}
}

type intervaler interface {
	Interval() time.Duration
}

// NewDriver creates a Driver for a. Without WithTick the animation's own
// Interval is used, if it has one.
func NewDriver(a Animation, opts ...Option) *Driver {
	s := newSettings(opts)
	d := new(Driver)
	d.animation = a
	d.tick = s.tick
	if !s.tickSet {
		if iv, ok := a.(intervaler); ok {
			d.tick = iv.Interval()
		}
	}
	d.pool = s.pool
	d.done = make(chan struct{})
	return d
}

// RunInBackground creates and starts a Driver for a.
func RunInBackground(ctx context.Context, a Animation, opts ...Option) (*Driver, error) {
	d := NewDriver(a, opts...)
	if err := d.Start(ctx); err != nil {
		return nil, err
	}
	return d, nil
}

// Start begins ticking. Cancelling ctx has the same effect as Stop.
func (d *Driver) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.state.CompareAndSwap(int32(Idle), int32(Running)) {
		return fmt.Errorf("%w: state is %v", ErrDriverStarted, d.State())
	}
	ctx, d.cancel = context.WithCancel(ctx)
	if d.pool != nil {
		d.pool.track(d)
	}
	go d.loop(ctx)
	return nil
}

// Stop requests the driver to finish. The loop notices at its next tick
// boundary or during its pause between ticks.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state.CompareAndSwap(int32(Idle), int32(Stopped)) {
		close(d.done)
		return
	}
	if d.cancel != nil {
		d.cancel()
	}
}

// Wait blocks until the driver has stopped.
func (d *Driver) Wait() {
	<-d.done
}

// Done is closed once the driver has stopped.
func (d *Driver) Done() <-chan struct{} {
	return d.done
}

// State returns the current lifecycle state.
func (d *Driver) State() State {
	return State(d.state.Load())
}

// Ticks returns how many Updates have completed.
func (d *Driver) Ticks() uint64 {
	return d.ticks.Load()
}

// Err returns the failure that ended the driver, if any. A plain stop or a
// finished animation is not a failure.
func (d *Driver) Err() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}

func (d *Driver) loop(ctx context.Context) {
	defer close(d.done)
	defer d.state.Store(int32(Stopped))
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}
			d.mu.Lock()
			d.err = fmt.Errorf("animation %T panicked: %w", d.animation, err)
			d.mu.Unlock()
			logger.Println(d.err)
		}
	}()
	defer d.cancel()

	if d.pool != nil {
		defer d.pool.untrack(d)
		if err := d.pool.acquire(ctx); err != nil {
			return
		}
		defer d.pool.release()
	}

	var timer *time.Timer
	if d.tick > 0 {
		timer = time.NewTimer(d.tick)
		defer timer.Stop()
		timer.Stop()
	}

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if !d.animation.Update() {
			return
		}
		d.ticks.Add(1)

		if timer == nil {
			continue
		}
		timer.Reset(d.tick)
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
	}
}
