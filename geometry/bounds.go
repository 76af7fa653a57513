package geometry

import (
	"math"

	"github.com/delaneyj/figspec/figma"
)

// BoundingBoxMeasurement accumulates the union of node boxes.
type BoundingBoxMeasurement struct {
	minX, maxX, minY, maxY float64
}

func NewBoundingBoxMeasurement() *BoundingBoxMeasurement {
	return &BoundingBoxMeasurement{
		minX: math.Inf(1),
		maxX: math.Inf(-1),
		minY: math.Inf(1),
		maxY: math.Inf(-1),
	}
}

// AddNode grows the measurement by the render bounds of n, or its bounding
// box. Hidden nodes and nodes without a box are ignored.
func (m *BoundingBoxMeasurement) AddNode(n *figma.Node) {
	if !n.IsVisible() || !n.HasBoundingBox() {
		return
	}

	box := n.AbsoluteRenderBounds
	if box == nil {
		box = n.AbsoluteBoundingBox
	}

	m.minX = math.Min(m.minX, box.X)
	m.maxX = math.Max(m.maxX, box.X+box.Width)
	m.minY = math.Min(m.minY, box.Y)
	m.maxY = math.Max(m.maxY, box.Y+box.Height)
}

// Measure returns the union. Components are NaN when nothing was added.
func (m *BoundingBoxMeasurement) Measure() figma.Rectangle {
	finite := func(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }

	r := figma.Rectangle{X: math.NaN(), Y: math.NaN(), Width: math.NaN(), Height: math.NaN()}
	if finite(m.minX) {
		r.X = m.minX
		if finite(m.maxX) {
			r.Width = m.maxX - m.minX
		}
	}
	if finite(m.minY) {
		r.Y = m.minY
		if finite(m.maxY) {
			r.Height = m.maxY - m.minY
		}
	}
	return r
}

type minMax struct {
	minX, maxX, minY, maxY float64
}

// RenderBoundingBox returns where an API rendered image of n should be
// placed. Older exports lack absoluteRenderBounds, so the margins added by
// drop shadows and layer blurs of n and its descendants are measured.
func RenderBoundingBox(n *figma.Node) figma.Rectangle {
	if n.AbsoluteRenderBounds != nil {
		return *n.AbsoluteRenderBounds
	}

	var current *minMax
	for target := range figma.Walk(n) {
		if !target.IsVisible() || !target.HasBoundingBox() {
			continue
		}

		mm := renderMinMax(target)
		if current == nil {
			current = &mm
			continue
		}
		current.minX = math.Min(current.minX, mm.minX)
		current.minY = math.Min(current.minY, mm.minY)
		current.maxX = math.Max(current.maxX, mm.maxX)
		current.maxY = math.Max(current.maxY, mm.maxY)
	}

	if current == nil {
		if n.AbsoluteBoundingBox == nil {
			return figma.Rectangle{}
		}
		return *n.AbsoluteBoundingBox
	}
	return figma.Rectangle{
		X:      current.minX,
		Y:      current.minY,
		Width:  current.maxX - current.minX,
		Height: current.maxY - current.minY,
	}
}

func renderMinMax(n *figma.Node) minMax {
	box := n.AbsoluteBoundingBox
	var top, right, bottom, left float64

	if n.HasEffects() {
		for _, e := range n.Effects {
			if !e.Visible {
				continue
			}
			switch {
			case e.IsShadow() && e.Type == figma.EffectDropShadow:
				left = math.Max(left, e.Radius-e.Offset.X)
				top = math.Max(top, e.Radius-e.Offset.Y)
				right = math.Max(right, e.Radius+e.Offset.X)
				bottom = math.Max(bottom, e.Radius+e.Offset.Y)
			case e.Type == figma.EffectLayerBlur:
				top = math.Max(top, e.Radius)
				right = math.Max(right, e.Radius)
				bottom = math.Max(bottom, e.Radius)
				left = math.Max(left, e.Radius)
			}
		}
	}

	return minMax{
		minX: box.X - left,
		maxX: box.X + box.Width + right,
		minY: box.Y - top,
		maxY: box.Y + box.Height + bottom,
	}
}
