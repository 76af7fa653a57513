package reactive

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Cleanup is returned by a computation body and called before the body runs
// again, or when the computation is destroyed.
type Cleanup func()

// A computation is a re-runnable unit of work. Computations created while it
// runs are its children; each computation has at most one parent, fixed when the
// child is first run.
type computation struct {
	rt *Runtime

	// Body to (re-)run
	fn func() Cleanup
	// Return value of the last successful run of fn
	cleanup Cleanup
	// Computations created by the last run of fn
	children mapset.Set[*computation]
	// A destroyed computation never runs again
	destroyed bool
	// Roots own children but never subscribe to signals
	untracked bool
}

func newComputation(rt *Runtime, fn func() Cleanup) *computation {
	return &computation{
		rt:       rt,
		fn:       fn,
		children: mapset.NewThreadUnsafeSet[*computation](),
	}
}

// run executes the body after releasing everything the previous run acquired.
// An isolated run is never attached to the computation that happens to be
// executing, which is the case for re-runs triggered by a Signal.Set.
func (c *computation) run(isolated bool) {
	c.runCleanup()
	c.destroyChildren()

	if parent := c.rt.current(); parent != nil && !isolated {
		parent.children.Add(c)
	}

	c.rt.push(c)
	defer c.rt.pop()

	tracer().Debugf("run computation at depth %d (isolated=%v)", c.rt.Depth(), isolated)
	c.cleanup = c.fn()
}

// runCleanup releases the subtree, children before their parent. A second call
// without a run in between does nothing.
func (c *computation) runCleanup() {
	for _, child := range c.children.ToSlice() {
		child.runCleanup()
	}

	if c.cleanup == nil {
		return
	}

	cleanup := c.cleanup
	c.cleanup = nil
	cleanup()
}

func (c *computation) destroy() {
	c.runCleanup()
	c.destroyed = true
	c.destroyChildren()
}

// destroyChildren destroys every child but keeps c alive.
func (c *computation) destroyChildren() {
	if c.children.Cardinality() == 0 {
		return
	}

	children := c.children.ToSlice()
	c.children.Clear()
	for _, child := range children {
		child.destroy()
	}
	tracer().Debugf("destroyed %d child computations", len(children))
}
