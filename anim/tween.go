package anim

import (
	"fmt"
	"math"
	"time"

	"github.com/fogleman/ease"
	"github.com/lucasb-eyer/go-colorful"
)

// Easing maps linear progress in [0, 1] onto a curve.
type Easing func(t float64) float64

type progress struct {
	duration float64
	elapsed  float64
	easing   Easing
}

func newProgress(duration time.Duration, easing Easing) *progress {
	if easing == nil {
		easing = ease.Linear
	}
	return &progress{duration: duration.Seconds(), easing: easing}
}

// advance adds dt and returns the eased position, clamped to 1.
func (p *progress) advance(dt float64) float64 {
	p.elapsed += dt
	if p.duration <= 0 {
		return p.easing(1)
	}
	return p.easing(math.Min(p.elapsed/p.duration, 1))
}

// Tween returns a PropertyFunc that carries a numeric property from the value
// it has on the first tick to `to` over duration, then holds it there.
func Tween(to float64, duration time.Duration, easing Easing) PropertyFunc {
	p := newProgress(duration, easing)
	var from float64
	started := false
	return func(current any, dt float64) any {
		if !started {
			f, ok := number(current)
			if !ok {
				panic(fmt.Errorf("%w: tween needs a number, got %T", ErrTypeMismatch, current))
			}
			from = f
			started = true
		}
		return from + (to-from)*p.advance(dt)
	}
}

// BlendTo returns a PropertyFunc that blends a colorful.Color property towards
// `to` in HCL space over duration.
func BlendTo(to colorful.Color, duration time.Duration, easing Easing) PropertyFunc {
	p := newProgress(duration, easing)
	var from colorful.Color
	started := false
	return func(current any, dt float64) any {
		if !started {
			c, ok := current.(colorful.Color)
			if !ok {
				panic(fmt.Errorf("%w: blend needs a colorful.Color, got %T", ErrTypeMismatch, current))
			}
			from = c
			started = true
		}
		return from.BlendHcl(to, p.advance(dt)).Clamped()
	}
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
