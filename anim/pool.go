package anim

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// A Pool bounds how many drivers tick at the same time. Drivers beyond the
// limit stay Running but wait for a slot before their first tick.
type Pool struct {
	sem *semaphore.Weighted

	mu      sync.Mutex
	drivers map[*Driver]struct{}
}

// NewPool creates a Pool allowing size concurrent drivers. A size of zero or
// less means no limit.
func NewPool(size int) *Pool {
	p := new(Pool)
	if size > 0 {
		p.sem = semaphore.NewWeighted(int64(size))
	}
	p.drivers = make(map[*Driver]struct{})
	return p
}

// Run starts a Driver for a inside the pool.
func (p *Pool) Run(ctx context.Context, a Animation, opts ...Option) (*Driver, error) {
	opts = append(opts, WithPool(p))
	return RunInBackground(ctx, a, opts...)
}

// Len returns the number of drivers that have not yet stopped.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.drivers)
}

// StopAll stops every driver in the pool and waits for them.
func (p *Pool) StopAll() {
	p.mu.Lock()
	drivers := make([]*Driver, 0, len(p.drivers))
	for d := range p.drivers {
		drivers = append(drivers, d)
	}
	p.mu.Unlock()

	for _, d := range drivers {
		d.Stop()
	}
	for _, d := range drivers {
		d.Wait()
	}
	logger.Printf("stopped %d drivers", len(drivers))
}

func (p *Pool) track(d *Driver) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.drivers[d] = struct{}{}
}

func (p *Pool) acquire(ctx context.Context) error {
	if p.sem == nil {
		return nil
	}
	return p.sem.Acquire(ctx, 1)
}

func (p *Pool) release() {
	if p.sem != nil {
		p.sem.Release(1)
	}
}

func (p *Pool) untrack(d *Driver) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.drivers, d)
}
