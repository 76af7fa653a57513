/*
Package viewer holds the state of the design viewer as signals and keeps
everything derived from them (load state, canvases, guides, inspector CSS)
up to date with reactive computations. It renders nothing itself; front ends
read the state through the accessor methods, from inside their own effects
when they want to be notified of changes.

Two viewers exist: FileViewer shows a whole file exported from the "GET file"
endpoint with one rendered image per frame, FrameViewer a single node exported
from the "GET file nodes" endpoint with one rendered image.

	v := viewer.NewFileViewer(nil)
	defer v.Close()
	v.SetImages(images)
	v.SetResponse(resp)
	reactive.Effect(nil, func() reactive.Cleanup {
		fmt.Println(v.InspectorCSS())
		return nil
	})
*/
package viewer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'figspec.viewer'.
func tracer() tracing.Trace {
	return tracing.Select("figspec.viewer")
}
