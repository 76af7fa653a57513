package reactive

// Effect creates a computation for fn and runs it immediately. When called from
// inside another computation, the new one becomes its child and is destroyed
// whenever the parent re-runs or is destroyed.
//
// The returned stop function destroys the computation: its cleanup runs and it
// never runs again.
func Effect(rt *Runtime, fn func() Cleanup) (stop func()) {
	if rt == nil {
		rt = Default()
	}
	c := newComputation(rt, fn)
	c.run(false)
	return c.destroy
}

// Root runs fn once under a new owner that is neither attached to the running
// computation nor subscribed to the signals fn reads. Effects and computes
// created inside fn belong to the root and are destroyed by dispose.
func Root(rt *Runtime, fn func(dispose func())) (dispose func()) {
	if rt == nil {
		rt = Default()
	}
	c := newComputation(rt, nil)
	c.untracked = true
	c.fn = func() Cleanup {
		fn(c.destroy)
		return nil
	}
	c.run(true)
	return c.destroy
}

// Compute returns a signal holding the value of fn, kept in sync by an effect.
// Downstream computations are only notified when the derived value changes.
func Compute[T comparable](rt *Runtime, fn func() T) *Signal[T] {
	return ComputeFunc(rt, fn, equalComparable[T])
}

// ComputeFunc is Compute for values that are not comparable with ==.
func ComputeFunc[T any](rt *Runtime, fn func() T, equal func(a, b T) bool) *Signal[T] {
	var zero T
	s := NewSignalFunc(rt, zero, equal)

	Effect(s.rt, func() Cleanup {
		s.Set(fn())
		return nil
	})

	return s
}
