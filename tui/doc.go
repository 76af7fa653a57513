/*
Package tui is an interactive terminal front end for the viewers.

The Model mirrors viewer state into cached panel strings through reactive
effects, so View only joins strings and never derives anything. Key presses
are translated into viewer operations in Update.

	v := viewer.NewFileViewer(rt)
	m := tui.New(v)
	defer m.Close()
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
*/
package tui

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'figspec.tui'.
func tracer() tracing.Trace {
	return tracing.Select("figspec.tui")
}
