/*
Package reactive implements a small fine-grained reactive runtime.

A Signal holds a value and remembers which computations read it. A computation is
a re-runnable function created by Effect or Compute. Reading a Signal with Get
while a computation executes subscribes that computation; setting the Signal to a
different value cleans the subscribers up and re-runs them before Set returns.

	rt := reactive.NewRuntime()
	a := reactive.NewSignal(rt, 5)
	b := reactive.NewSignal(rt, 6)
	sum := reactive.Compute(rt, func() int { return a.Get() + b.Get() })
	sum.Get() // 11

Computations created while another computation runs become its children. Before a
computation re-runs, its children are cleaned up (innermost first) and destroyed,
so nested effects always live exactly as long as the run of the body that created
them.

Everything is synchronous. There is no scheduler and no batching: every Set is
fully propagated before it returns, and two Sets propagate twice. A Runtime must
only be used from one goroutine at a time; Default returns a separate Runtime per
goroutine.
*/
package reactive

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'figspec.reactive'.
func tracer() tracing.Trace {
	return tracing.Select("figspec.reactive")
}
