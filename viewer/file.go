package viewer

import (
	"maps"
	"slices"
	"strconv"

	"github.com/delaneyj/figspec/figma"
	"github.com/delaneyj/figspec/reactive"
)

const timeLayout = "2006-01-02 15:04:05"

// FileData is what a loaded FileViewer shows.
type FileData struct {
	Response *figma.FileResponse
	Images   map[string]string
	Canvases []*figma.Node
}

// FileViewer shows a whole file with one rendered image per frame.
type FileViewer struct {
	base

	resp             *reactive.Signal[*figma.FileResponse]
	images           *reactive.Signal[map[string]string]
	canvases         *reactive.Signal[[]*figma.Node]
	selectedCanvasID *reactive.Signal[string]
	state            *reactive.Signal[State[FileData]]
}

// NewFileViewer creates an idle viewer on rt, the goroutine's default
// runtime when nil.
func NewFileViewer(rt *reactive.Runtime) *FileViewer {
	if rt == nil {
		rt = reactive.Default()
	}
	v := &FileViewer{}
	v.isLoaded = func() bool { return v.state.Once().Loaded() }

	v.dispose = reactive.Root(rt, func(func()) {
		v.init(rt)

		v.resp = reactive.NewSignal[*figma.FileResponse](rt, nil)
		v.images = reactive.NewSignalFunc[map[string]string](rt, nil, equalImages)
		v.selectedCanvasID = reactive.NewSignal(rt, "")
		v.canvases = reactive.ComputeFunc(rt, v.computeCanvases, slices.Equal[[]*figma.Node])
		v.state = reactive.ComputeFunc(rt, v.computeState, equalFileState)

		// the first canvas is selected whenever the list changes
		reactive.Effect(rt, func() reactive.Cleanup {
			canvases := v.canvases.Get()
			if len(canvases) == 0 {
				return nil
			}
			v.selectedCanvasID.Set(canvases[0].ID)
			return func() {
				v.selectedCanvasID.Set("")
			}
		})

		reactive.Effect(rt, v.onState)
		v.watchPreferences()
	})
	return v
}

// equalImages tells a missing image set (nil) from an empty one.
func equalImages(a, b map[string]string) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return maps.Equal(a, b)
}

func equalFileState(a, b State[FileData]) bool {
	return a.Status == b.Status && a.Err == b.Err &&
		a.Data.Response == b.Data.Response &&
		equalImages(a.Data.Images, b.Data.Images) &&
		slices.Equal(a.Data.Canvases, b.Data.Canvases)
}

func (v *FileViewer) computeCanvases() []*figma.Node {
	resp := v.resp.Get()
	if resp == nil {
		return nil
	}
	return slices.Collect(figma.Canvases(resp.Document))
}

func (v *FileViewer) computeState() State[FileData] {
	resp := v.resp.Get()
	images := v.images.Get()

	switch {
	case resp == nil && images == nil:
		return idle[FileData]()
	case images == nil:
		return setupError[FileData](ErrImagesRequired)
	case resp == nil:
		return setupError[FileData](ErrFileRequired)
	}

	canvases := v.canvases.Get()
	if len(canvases) == 0 {
		return setupError[FileData](ErrNoCanvas)
	}
	return loaded(FileData{Response: resp, Images: images, Canvases: canvases})
}

// onState builds the per-load computations. They are children of this
// effect and go away with the next state.
func (v *FileViewer) onState() reactive.Cleanup {
	s := v.state.Get()
	if !s.Loaded() {
		if s.Err != nil {
			tracer().Infof("file viewer: %v", s.Err)
		}
		return nil
	}
	tracer().Infof("file viewer loaded %q with %d canvases", s.Data.Response.Name, len(s.Data.Canvases))
	v.resetLoaded()

	reactive.Effect(v.rt, func() reactive.Cleanup {
		v.selected.Set(nil)

		id := v.selectedCanvasID.Get()
		if id == "" {
			return nil
		}
		idx := slices.IndexFunc(s.Data.Canvases, func(n *figma.Node) bool { return n.ID == id })
		if idx < 0 {
			return nil
		}

		node := s.Data.Canvases[idx]
		v.canvas.Render([]*figma.Node{node}, s.Data.Images, node.BackgroundColor)
		return v.canvas.Clear
	})

	v.watchSelection()
	return nil
}

func (v *FileViewer) State() State[FileData] {
	return v.state.Get()
}

func (v *FileViewer) Response() *figma.FileResponse {
	return v.resp.Get()
}

// SetResponse sets the file to show. nil is ignored.
func (v *FileViewer) SetResponse(resp *figma.FileResponse) {
	if resp == nil {
		return
	}
	v.resp.Set(resp)
}

func (v *FileViewer) Images() map[string]string {
	return v.images.Get()
}

// SetImages sets the rendered images by node id. The map must not be
// modified afterwards.
func (v *FileViewer) SetImages(images map[string]string) {
	if images == nil {
		images = map[string]string{}
	}
	v.images.Set(images)
}

func (v *FileViewer) Canvases() []*figma.Node {
	return v.canvases.Get()
}

func (v *FileViewer) SelectedCanvasID() string {
	return v.selectedCanvasID.Get()
}

// SelectCanvas shows another canvas. Unknown ids are ignored.
func (v *FileViewer) SelectCanvas(id string) {
	if !slices.ContainsFunc(v.canvases.Once(), func(n *figma.Node) bool { return n.ID == id }) {
		return
	}
	v.selectedCanvasID.Set(id)
}

// CycleCanvas selects the canvas delta positions away from the current one.
func (v *FileViewer) CycleCanvas(delta int) {
	canvases := v.canvases.Once()
	if len(canvases) == 0 {
		return
	}
	current := v.selectedCanvasID.Once()
	idx := slices.IndexFunc(canvases, func(n *figma.Node) bool { return n.ID == current })
	next := ((idx+delta)%len(canvases) + len(canvases)) % len(canvases)
	v.selectedCanvasID.Set(canvases[next].ID)
}

// Info lists the file details shown on the info panel.
func (v *FileViewer) Info() []InfoItem {
	s := v.state.Get()
	if !s.Loaded() {
		return nil
	}
	items := []InfoItem{
		{Label: "Filename", Content: s.Data.Response.Name},
		{Label: "Last modified", Content: s.Data.Response.LastModified.Local().Format(timeLayout)},
	}
	if link := v.link.Get(); link != "" {
		items = append(items, InfoItem{Label: "File link", Content: link})
	}
	items = append(items, InfoItem{Label: "Number of canvases", Content: strconv.Itoa(len(s.Data.Canvases))})
	return items
}
