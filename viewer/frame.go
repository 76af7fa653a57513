package viewer

import (
	"github.com/delaneyj/figspec/figma"
	"github.com/delaneyj/figspec/reactive"
)

// FrameData is what a loaded FrameViewer shows.
type FrameData struct {
	Response *figma.FileNodesResponse
	Node     *figma.Node
	Image    string
}

// FrameViewer shows a single node with one rendered image.
type FrameViewer struct {
	base

	resp  *reactive.Signal[*figma.FileNodesResponse]
	image *reactive.Signal[string]
	state *reactive.Signal[State[FrameData]]
}

// NewFrameViewer creates an idle viewer on rt, the goroutine's default
// runtime when nil.
func NewFrameViewer(rt *reactive.Runtime) *FrameViewer {
	if rt == nil {
		rt = reactive.Default()
	}
	v := &FrameViewer{}
	v.isLoaded = func() bool { return v.state.Once().Loaded() }

	v.dispose = reactive.Root(rt, func(func()) {
		v.init(rt)

		v.resp = reactive.NewSignal[*figma.FileNodesResponse](rt, nil)
		v.image = reactive.NewSignal(rt, "")
		v.state = reactive.ComputeFunc(rt, v.computeState, func(a, b State[FrameData]) bool {
			return a.Status == b.Status && a.Err == b.Err && a.Data == b.Data
		})

		reactive.Effect(rt, v.onState)
		v.watchPreferences()
	})
	return v
}

func (v *FrameViewer) computeState() State[FrameData] {
	resp := v.resp.Get()
	image := v.image.Get()

	switch {
	case resp == nil && image == "":
		return idle[FrameData]()
	case image == "":
		return setupError[FrameData](ErrImageRequired)
	case resp == nil:
		return setupError[FrameData](ErrFileNodesRequired)
	}

	node := figma.FindMainNode(resp)
	if node == nil {
		return setupError[FrameData](ErrNoRenderableNode)
	}
	return loaded(FrameData{Response: resp, Node: node, Image: image})
}

func (v *FrameViewer) onState() reactive.Cleanup {
	s := v.state.Get()
	if !s.Loaded() {
		if s.Err != nil {
			tracer().Infof("frame viewer: %v", s.Err)
		}
		return nil
	}
	tracer().Infof("frame viewer loaded %s", s.Data.Node)
	v.resetLoaded()

	node := s.Data.Node
	v.canvas.Render([]*figma.Node{node}, map[string]string{node.ID: s.Data.Image}, nil)
	v.watchSelection()
	return v.canvas.Clear
}

func (v *FrameViewer) State() State[FrameData] {
	return v.state.Get()
}

func (v *FrameViewer) Response() *figma.FileNodesResponse {
	return v.resp.Get()
}

// SetResponse sets the nodes to show. nil is ignored.
func (v *FrameViewer) SetResponse(resp *figma.FileNodesResponse) {
	if resp == nil {
		return
	}
	v.resp.Set(resp)
}

func (v *FrameViewer) Image() string {
	return v.image.Get()
}

// SetImage sets the URI of the rendered image. An empty URI is ignored.
func (v *FrameViewer) SetImage(uri string) {
	if uri == "" {
		return
	}
	v.image.Set(uri)
}

// Info lists the frame details shown on the info panel.
func (v *FrameViewer) Info() []InfoItem {
	s := v.state.Get()
	if !s.Loaded() {
		return nil
	}
	items := []InfoItem{
		{Label: "Filename", Content: s.Data.Response.Name},
		{Label: "Last modified", Content: s.Data.Response.LastModified.Local().Format(timeLayout)},
	}
	if link := v.link.Get(); link != "" {
		items = append(items, InfoItem{Label: "Frame link", Content: link})
	}
	return items
}
