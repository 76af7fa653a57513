package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/figspec/reactive"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	profile = flag.String("cpuprofile", "", "write a CPU profile, e.g. default.pgo")

	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100, 1_000}
	iters = 100
)

func main() {
	flag.Parse()

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	log.Printf("warming up")
	benchmarkPropagate(false)

	benchmarkPropagate(true)
	benchmarkOwnership(true)
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})
	return tbl
}

func appendRow(tbl table.Writer, name string, tach *tachymeter.Tachymeter) {
	calc := tach.Calc()
	tbl.AppendRows([]table.Row{
		{
			name,
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
		},
	})
}

// benchmarkPropagate times a write to a source read by w chains of h
// computes, each ending in an effect.
func benchmarkPropagate(shouldRender bool) {
	tbl := newTable("Propagation")

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			rt := reactive.NewRuntime()
			src := reactive.NewSignal(rt, 1)
			var stops []func()
			for range w {
				last := src
				for range h {
					prev := last
					last = reactive.Compute(rt, func() int {
						return prev.Get() + 1
					})
				}

				stops = append(stops, reactive.Effect(rt, func() reactive.Cleanup {
					last.Get()
					return nil
				}))
			}

			for range iters {
				start := time.Now()
				src.Set(src.Once() + 1)
				tach.AddTime(time.Since(start))
			}
			for _, stop := range stops {
				stop()
			}

			appendRow(tbl, fmt.Sprintf("propagate: %d * %d", w, h), tach)
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkOwnership times re-runs of an effect that owns n child effects,
// each of which is destroyed and created again.
func benchmarkOwnership(shouldRender bool) {
	tbl := newTable("Ownership")

	for _, n := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		rt := reactive.NewRuntime()
		trigger := reactive.NewSignal(rt, 0)
		cleanups := 0
		stop := reactive.Effect(rt, func() reactive.Cleanup {
			trigger.Get()
			for range n {
				reactive.Effect(rt, func() reactive.Cleanup {
					return func() { cleanups++ }
				})
			}
			return nil
		})

		for range iters {
			start := time.Now()
			trigger.Update(func(v int) int { return v + 1 })
			tach.AddTime(time.Since(start))
		}
		stop()

		if cleanups != n*(iters+1) {
			log.Panicf("expected %d cleanups, got %d", n*(iters+1), cleanups)
		}
		appendRow(tbl, fmt.Sprintf("rerun with %d children", n), tach)
	}

	if shouldRender {
		tbl.Render()
	}
}
