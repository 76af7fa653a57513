package reactive

// Signal is a mutable cell that records which computations read it.
//
// The zero Signal is not usable; create one with NewSignal, NewSignalFunc,
// Compute or ComputeFunc.
type Signal[T any] struct {
	rt *Runtime

	value T
	equal func(a, b T) bool

	// Computations whose most recent run read this signal with Get
	deps dependents
}

func equalComparable[T comparable](a, b T) bool {
	return a == b
}

// NewSignal creates a signal that treats values equal under == as unchanged.
func NewSignal[T comparable](rt *Runtime, initial T) *Signal[T] {
	return NewSignalFunc(rt, initial, equalComparable[T])
}

// NewSignalFunc creates a signal for values that are not comparable with ==.
// Set is a no-op whenever equal(current, next) reports true.
func NewSignalFunc[T any](rt *Runtime, initial T, equal func(a, b T) bool) *Signal[T] {
	if rt == nil {
		rt = Default()
	}
	return &Signal[T]{
		rt:    rt,
		value: initial,
		equal: equal,
	}
}

// Get returns the current value and subscribes the running computation, if any.
func (s *Signal[T]) Get() T {
	if c := s.rt.current(); c != nil && !c.untracked {
		s.deps.add(c)
	}
	return s.value
}

// Once returns the current value without subscribing anything.
func (s *Signal[T]) Once() T {
	return s.value
}

// Set stores v and re-runs every dependent. Dependents are cleaned up while the
// old value is still in place, then unsubscribed, then re-run in isolation; a
// dependent that reads the signal again during its re-run subscribes again.
// Setting an equal value does nothing at all.
func (s *Signal[T]) Set(v T) {
	if s.equal(s.value, v) {
		return
	}

	for _, c := range s.deps.snapshot() {
		c.runCleanup()
	}

	s.value = v

	pending := s.deps.drain()
	if len(pending) > 0 {
		tracer().Debugf("signal changed, re-running %d dependents", len(pending))
	}
	for _, c := range pending {
		if c.destroyed {
			continue
		}
		c.run(true)
	}
}

// Update sets the signal to fn applied to its current value.
func (s *Signal[T]) Update(fn func(T) T) {
	s.Set(fn(s.value))
}

// Runtime returns the runtime the signal tracks dependents on.
func (s *Signal[T]) Runtime() *Runtime {
	return s.rt
}
