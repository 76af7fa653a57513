package reactive

import (
	"sync"

	"github.com/petermattis/goid"
)

// Runtime holds the stack of computations currently executing, innermost last.
// The stack is empty at rest and only grows during a computation run.
type Runtime struct {
	stack []*computation
}

func NewRuntime() *Runtime {
	return &Runtime{}
}

var runtimes sync.Map

// Default returns the Runtime bound to the calling goroutine, creating it on
// first use. The binding lives until the goroutine calls Release, so
// short-lived goroutines that use Default must release it before they exit.
//
// Tracking only sees computations of the signal's own Runtime: a signal read
// inside a computation of another Runtime returns its value without
// subscribing. Code that crosses goroutines should share one explicit Runtime.
func Default() *Runtime {
	gid := goid.Get()
	if rt, ok := runtimes.Load(gid); ok {
		return rt.(*Runtime)
	}

	rt, _ := runtimes.LoadOrStore(gid, NewRuntime())
	return rt.(*Runtime)
}

// Release forgets the Runtime bound to the calling goroutine. Signals created on
// it keep working with the old instance.
func Release() {
	runtimes.Delete(goid.Get())
}

// Depth reports how many computations are currently executing.
func (rt *Runtime) Depth() int {
	return len(rt.stack)
}

// current returns the innermost executing computation, or nil at rest.
func (rt *Runtime) current() *computation {
	if len(rt.stack) == 0 {
		return nil
	}
	return rt.stack[len(rt.stack)-1]
}

func (rt *Runtime) push(c *computation) {
	rt.stack = append(rt.stack, c)
}

func (rt *Runtime) pop() {
	last := len(rt.stack) - 1
	rt.stack[last] = nil
	rt.stack = rt.stack[:last]
}
