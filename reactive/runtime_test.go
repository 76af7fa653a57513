package reactive

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRuntimePerGoroutine(t *testing.T) {
	rt := Default()
	assert.Same(t, rt, Default())

	var other *Runtime
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		other = Default()
		Release()
	}()
	wg.Wait()

	assert.NotSame(t, rt, other)
}

func TestDependentsBookkeeping(t *testing.T) {
	rt := NewRuntime()
	s := NewSignal(rt, 0)

	var c *computation
	Effect(rt, func() Cleanup {
		c = rt.current()
		s.Get()
		s.Get()
		return nil
	})

	assert.Equal(t, []*computation{c}, s.deps.snapshot())
	assert.Equal(t, 0, rt.Depth())

	stop := Effect(rt, func() Cleanup {
		s.Get()
		return nil
	})
	require.Len(t, s.deps.snapshot(), 2)
	assert.Equal(t, c, s.deps.snapshot()[0])

	stop()
	s.Set(1)
	// the stopped effect was drained and never re-subscribed
	assert.Equal(t, []*computation{c}, s.deps.snapshot())
}

func TestForeignRuntimeDoesNotTrack(t *testing.T) {
	a, b := NewRuntime(), NewRuntime()
	s := NewSignal(a, 1)

	runs := 0
	Effect(b, func() Cleanup {
		runs++
		s.Get()
		return nil
	})
	assert.Empty(t, s.deps.snapshot())

	s.Set(2)
	assert.Equal(t, 1, runs)
}
