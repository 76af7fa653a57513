package viewer

import (
	"math"

	"github.com/delaneyj/figspec/figma"
	"github.com/delaneyj/figspec/geometry"
	"github.com/delaneyj/figspec/preferences"
	"github.com/delaneyj/figspec/reactive"
)

// Transform places the frame in the viewport. A canvas point p is shown at
//
//	viewport center + Scale * (p + (X, Y) - frame size / 2)
type Transform struct {
	X, Y  float64
	Scale float64
}

var identity = Transform{Scale: 1}

type Viewport struct {
	Width, Height float64
}

// Hitbox is the selectable area of a node.
type Hitbox struct {
	Node *figma.Node
	Box  figma.Rectangle
}

// Image is a rendered image placed at the render bounds of its node.
type Image struct {
	NodeID string
	URI    string
	Box    figma.Rectangle
}

// Frame is what the canvas currently shows.
type Frame struct {
	Bounds     figma.Rectangle
	Hitboxes   []Hitbox
	Images     []Image
	Background *figma.Color
}

type Placement int

const (
	PlaceBottom Placement = iota
	PlaceRight
)

type Tooltip struct {
	Text      string
	X, Y      float64
	Placement Placement
}

// Overlay is the guide layer: outlines and measurements of the selected and
// the hovered node.
type Overlay struct {
	Selection        *figma.Rectangle
	SelectionTooltip *Tooltip
	Hover            *figma.Rectangle
	Distances        []geometry.Guide
	DistanceTooltips []Tooltip
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Canvas is the pan and zoom model of the frame canvas.
type Canvas struct {
	prefs    *reactive.Signal[preferences.Preferences]
	selected *reactive.Signal[*figma.Node]
	hovered  *reactive.Signal[*figma.Node]

	transform *reactive.Signal[Transform]
	viewport  *reactive.Signal[Viewport]
	frame     *reactive.Signal[*Frame]
	overlay   *reactive.Signal[*Overlay]
}

// NewCanvas must be called from inside the computation that owns the canvas;
// its guide computations become children of that computation.
func NewCanvas(rt *reactive.Runtime, prefs *reactive.Signal[preferences.Preferences], selected *reactive.Signal[*figma.Node]) *Canvas {
	c := &Canvas{
		prefs:     prefs,
		selected:  selected,
		hovered:   reactive.NewSignal[*figma.Node](rt, nil),
		transform: reactive.NewSignal(rt, identity),
		viewport:  reactive.NewSignal(rt, Viewport{}),
		frame:     reactive.NewSignal[*Frame](rt, nil),
	}
	c.overlay = reactive.Compute(rt, c.computeOverlay)
	return c
}

// Render replaces the frame with the given nodes and their descendants and
// fits it into the viewport.
func (c *Canvas) Render(nodes []*figma.Node, images map[string]string, background *figma.Color) {
	bbox := geometry.NewBoundingBoxMeasurement()
	frame := &Frame{Background: background}

	for _, root := range nodes {
		for n := range figma.Walk(root) {
			if !n.HasBoundingBox() {
				continue
			}
			bbox.AddNode(n)

			if uri, ok := images[n.ID]; ok && uri != "" {
				frame.Images = append(frame.Images, Image{
					NodeID: n.ID,
					URI:    uri,
					Box:    geometry.RenderBoundingBox(n),
				})
			}
			frame.Hitboxes = append(frame.Hitboxes, Hitbox{Node: n, Box: *n.AbsoluteBoundingBox})
		}
	}
	frame.Bounds = bbox.Measure()

	tracer().Debugf("render %d hitboxes, %d images", len(frame.Hitboxes), len(frame.Images))
	c.frame.Set(frame)
	c.Fit()
}

// Clear removes the frame. The transform is kept.
func (c *Canvas) Clear() {
	c.hovered.Set(nil)
	c.frame.Set(nil)
}

func (c *Canvas) Frame() *Frame {
	return c.frame.Get()
}

func (c *Canvas) Transform() Transform {
	return c.transform.Get()
}

func (c *Canvas) Overlay() *Overlay {
	return c.overlay.Get()
}

func (c *Canvas) Hovered() *figma.Node {
	return c.hovered.Get()
}

func (c *Canvas) Hover(n *figma.Node) {
	c.hovered.Set(n)
}

func (c *Canvas) SetViewport(width, height float64) {
	c.viewport.Set(Viewport{Width: width, Height: height})
}

func (c *Canvas) Viewport() Viewport {
	return c.viewport.Get()
}

// Reset restores the initial transform without clearing the frame.
func (c *Canvas) Reset() {
	c.transform.Set(identity)
}

// Fit centers the frame and scales it to three quarters of the viewport.
// The scale is left alone while the viewport size is unknown.
func (c *Canvas) Fit() {
	frame := c.frame.Once()
	if frame == nil {
		return
	}
	b := frame.Bounds
	if math.IsNaN(b.Width) {
		return
	}

	t := c.transform.Once()
	t.X, t.Y = -b.X, -b.Y

	vp := c.viewport.Once()
	if vp.Width > 0 && vp.Height > 0 && b.Width > 0 && b.Height > 0 {
		t.Scale = geometry.ClampZoom(math.Min(vp.Width/b.Width, vp.Height/b.Height) * 0.75)
	}
	c.transform.Set(t)
}

// Pan moves the view by a wheel delta in viewport pixels.
func (c *Canvas) Pan(dx, dy float64) {
	// 500 matches the pan speed of the Figma editor
	speed := c.prefs.Once().ViewportPanSpeed * 0.002
	t := c.transform.Once()
	t.X -= dx * speed / t.Scale
	t.Y -= dy * speed / t.Scale
	c.transform.Set(t)
}

// Drag moves the view along with a pointer drag.
func (c *Canvas) Drag(dx, dy float64) {
	t := c.transform.Once()
	t.X += dx / t.Scale
	t.Y += dy / t.Scale
	c.transform.Set(t)
}

// Zoom scales by a wheel delta, keeping the canvas point under the pointer
// in place. The pointer is in viewport pixels from the top-left corner.
func (c *Canvas) Zoom(deltaY, pointerX, pointerY float64) {
	zoomSpeed := c.prefs.Once().ViewportZoomSpeed
	t := c.transform.Once()
	prev := t.Scale
	t.Scale = geometry.ClampZoom(t.Scale * (1 - deltaY/((1000-zoomSpeed)*0.5)))

	vp := c.viewport.Once()
	offX := pointerX - vp.Width*0.5
	offY := pointerY - vp.Height*0.5
	t.X += offX/t.Scale - offX/prev
	t.Y += offY/t.Scale - offY/prev
	c.transform.Set(t)
}

// KeyPan moves the view by one arrow key step.
func (c *Canvas) KeyPan(dir Direction) {
	// about 65px per key press at the default speed, like Figma
	distance := c.prefs.Once().ViewportPanSpeed * 0.13
	t := c.transform.Once()
	switch dir {
	case Left:
		t.X += distance
	case Right:
		t.X -= distance
	case Down:
		t.Y -= distance
	case Up:
		t.Y += distance
	}
	c.transform.Set(t)
}

// ZoomIn and ZoomOut step to the next power of two, negative powers included.
func (c *Canvas) ZoomIn() {
	t := c.transform.Once()
	t.Scale = geometry.ClampZoom(geometry.NextPowerOfTwo(t.Scale))
	c.transform.Set(t)
}

func (c *Canvas) ZoomOut() {
	t := c.transform.Once()
	t.Scale = geometry.ClampZoom(geometry.PreviousPowerOfTwo(t.Scale))
	c.transform.Set(t)
}

func (c *Canvas) half() (float64, float64) {
	frame := c.frame.Once()
	if frame == nil || math.IsNaN(frame.Bounds.Width) {
		return 0, 0
	}
	return frame.Bounds.Width / 2, frame.Bounds.Height / 2
}

// ToCanvas converts a viewport position to canvas coordinates.
func (c *Canvas) ToCanvas(x, y float64) (float64, float64) {
	t, vp := c.transform.Once(), c.viewport.Once()
	hw, hh := c.half()
	return (x-vp.Width/2)/t.Scale - t.X + hw, (y-vp.Height/2)/t.Scale - t.Y + hh
}

// ToViewport converts canvas coordinates to a viewport position.
func (c *Canvas) ToViewport(x, y float64) (float64, float64) {
	t, vp := c.transform.Once(), c.viewport.Once()
	hw, hh := c.half()
	return vp.Width/2 + t.Scale*(x+t.X-hw), vp.Height/2 + t.Scale*(y+t.Y-hh)
}

// NodeAt returns the topmost node whose hitbox contains the canvas point.
// The selected node is skipped so nodes behind it with the same box can be
// reached.
func (c *Canvas) NodeAt(x, y float64) *figma.Node {
	frame := c.frame.Once()
	if frame == nil {
		return nil
	}
	selected := c.selected.Once()
	for i := len(frame.Hitboxes) - 1; i >= 0; i-- {
		h := frame.Hitboxes[i]
		if h.Node == selected {
			continue
		}
		if x >= h.Box.X && x <= h.Box.X+h.Box.Width && y >= h.Box.Y && y <= h.Box.Y+h.Box.Height {
			return h.Node
		}
	}
	return nil
}

func (c *Canvas) computeOverlay() *Overlay {
	selected := c.selected.Get()
	hovered := c.hovered.Get()
	places := c.prefs.Get().DecimalPlaces

	o := &Overlay{}
	if selected != nil && selected.HasBoundingBox() {
		b := *selected.AbsoluteBoundingBox
		o.Selection = &b
		o.SelectionTooltip = &Tooltip{
			Text:      geometry.Format(b.Width, places) + " × " + geometry.Format(b.Height, places),
			X:         b.X + b.Width*0.5,
			Y:         b.Y + b.Height,
			Placement: PlaceBottom,
		}
	}

	if hovered == nil || !hovered.HasBoundingBox() {
		return o
	}
	h := *hovered.AbsoluteBoundingBox
	o.Hover = &h

	if o.Selection == nil {
		return o
	}
	for _, g := range geometry.DistanceGuides(*o.Selection, h) {
		hl := math.Abs(g.Points[0].X - g.Points[1].X)
		vl := math.Abs(g.Points[0].Y - g.Points[1].Y)
		if hl == 0 && vl == 0 {
			continue
		}
		o.Distances = append(o.Distances, g)

		tip := Tooltip{Text: geometry.Format(math.Max(hl, vl), places), X: g.Points[0].X, Y: g.Points[0].Y}
		if hl > vl {
			tip.X = (g.Points[0].X + g.Points[1].X) * 0.5
			tip.Placement = PlaceBottom
		} else {
			tip.Placement = PlaceRight
		}
		if vl > hl {
			tip.Y = (g.Points[0].Y + g.Points[1].Y) * 0.5
		}
		o.DistanceTooltips = append(o.DistanceTooltips, tip)
	}
	return o
}
