package anim

// A FuncAnimation calls an arbitrary function with its target every tick.
// The callback cannot end the animation; it always continues until removed.
type FuncAnimation struct {
	timed
	target Target
	fn     func(target Target, dt float64)
}

// NewFuncAnimation creates an instance of a FuncAnimation. target may be nil
// when fn does not need one.
func NewFuncAnimation(target Target, fn func(target Target, dt float64), opts ...Option) *FuncAnimation {
	f := new(FuncAnimation)
	f.timed = newTimed(opts)
	f.target = target
	f.fn = fn
	return f
}

// Update invokes the callback.
func (f *FuncAnimation) Update() bool {
	f.fn(f.target, f.delta())
	return true
}
