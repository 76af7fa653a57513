/*
Package figma holds the subset of the Figma REST API data model the viewer
renders and inspects: node trees with geometry, paints, effects and text styles,
plus the two response shapes exported by the "GET file" and "GET file nodes"
endpoints.

Optional properties are pointers or nil slices so that the capability
predicates (HasBoundingBox, HasFills, ...) can tell an absent property from a
zero one.
*/
package figma

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'figspec.figma'.
func tracer() tracing.Trace {
	return tracing.Select("figspec.figma")
}
