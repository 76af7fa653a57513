package report

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'figspec.report'.
func tracer() tracing.Trace {
	return tracing.Select("figspec.report")
}
