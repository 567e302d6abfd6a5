package anim

import (
	"fmt"
	"sync/atomic"
	"time"
)

// A Chain is an Animation that ticks a collection of child animations and
// drops the ones that finish. An empty Chain keeps running until Stop is
// called.
//
// A Chain is not safe for concurrent use; it belongs to whichever goroutine
// ticks it.
type Chain struct {
	animations []Animation
	interval   time.Duration
	stopped    atomic.Bool
}

// NewChain creates an instance of a Chain holding animations. Nil entries are
// rejected with ErrTypeMismatch.
func NewChain(animations []Animation, opts ...Option) (*Chain, error) {
	c := new(Chain)
	c.interval = newSettings(opts).tick
	c.animations = make([]Animation, 0, len(animations))
	for _, a := range animations {
		if err := c.Add(a); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Update ticks a snapshot of the children, removing each one as soon as its
// own Update returns false. Children added during the tick wait for the next
// one.
func (c *Chain) Update() bool {
	snapshot := c.Animations()
	for _, a := range snapshot {
		if !a.Update() {
			// Another child may already have removed it.
			c.animations, _ = removeAnimation(c.animations, a)
		}
	}
	return !c.stopped.Load()
}

// Add appends a to the chain.
func (c *Chain) Add(a Animation) error {
	if a == nil {
		return fmt.Errorf("%w: attempt to add nil, which is not an Animation", ErrTypeMismatch)
	}
	c.animations = append(c.animations, a)
	return nil
}

// Remove takes the first occurrence of a out of the chain.
func (c *Chain) Remove(a Animation) error {
	var err error
	c.animations, err = removeAnimation(c.animations, a)
	return err
}

// RemoveKind removes every child of the given kind and returns how many went.
func (c *Chain) RemoveKind(kind Kind) int {
	kept := c.animations[:0]
	removed := 0
	for _, a := range c.animations {
		if KindOf(a) == kind {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	for i := len(kept); i < len(c.animations); i++ {
		c.animations[i] = nil
	}
	c.animations = kept
	return removed
}

// Animations returns a copy of the current children.
func (c *Chain) Animations() []Animation {
	out := make([]Animation, len(c.animations))
	copy(out, c.animations)
	return out
}

// Len returns the number of children.
func (c *Chain) Len() int {
	return len(c.animations)
}

// Stop makes subsequent Updates report that the chain is finished.
func (c *Chain) Stop() {
	c.stopped.Store(true)
}

// Interval is the pause preferred between ticks when run by a Driver.
func (c *Chain) Interval() time.Duration {
	return c.interval
}
