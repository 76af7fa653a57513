package geometry

import (
	"math"
	"testing"

	"github.com/delaneyj/figspec/figma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(x, y, w, h float64) *figma.Rectangle {
	return &figma.Rectangle{X: x, Y: y, Width: w, Height: h}
}

func TestRoundTo(t *testing.T) {
	t.Run("to int", func(t *testing.T) {
		assert.Equal(t, 1.0, RoundTo(1.23456789, 0))
		assert.Equal(t, 10.0, RoundTo(9.87654321, 0))
		assert.Equal(t, 3.0, RoundTo(2.5, 0))
		assert.Equal(t, -2.0, RoundTo(-2.5, 0))
	})

	t.Run("to decimals", func(t *testing.T) {
		assert.Equal(t, 1.23, RoundTo(1.23456789, 2))
		assert.Equal(t, 9.88, RoundTo(9.87654321, 2))
	})
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1.5", Format(1.5, 2))
	assert.Equal(t, "1.23", Format(1.23456, 2))
	assert.Equal(t, "100", Format(99.996, 2))
	assert.Equal(t, "0", Format(-0.001, 2))
}

func TestPowersOfTwo(t *testing.T) {
	assert.Equal(t, 2.0, NextPowerOfTwo(1))
	assert.Equal(t, 4.0, NextPowerOfTwo(3))
	assert.Equal(t, 0.5, NextPowerOfTwo(0.3))

	assert.Equal(t, 0.5, PreviousPowerOfTwo(1))
	assert.Equal(t, 2.0, PreviousPowerOfTwo(3))
	assert.Equal(t, 0.25, PreviousPowerOfTwo(0.3))

	assert.Equal(t, MinZoom, ClampZoom(0.0001))
	assert.Equal(t, float64(MaxZoom), ClampZoom(1000))
	assert.Equal(t, 1.5, ClampZoom(1.5))
}

func TestBoundingBoxMeasurement(t *testing.T) {
	t.Run("measures nodes", func(t *testing.T) {
		m := NewBoundingBoxMeasurement()
		m.AddNode(&figma.Node{AbsoluteBoundingBox: box(-50, -50, 1, 1)})
		m.AddNode(&figma.Node{AbsoluteBoundingBox: box(40, 40, 10, 10)})
		assert.Equal(t, figma.Rectangle{X: -50, Y: -50, Width: 100, Height: 100}, m.Measure())
	})

	t.Run("prefers render bounds and skips hidden", func(t *testing.T) {
		hidden := false
		m := NewBoundingBoxMeasurement()
		m.AddNode(&figma.Node{
			AbsoluteBoundingBox:  box(0, 0, 10, 10),
			AbsoluteRenderBounds: box(-2, -2, 14, 14),
		})
		m.AddNode(&figma.Node{Visible: &hidden, AbsoluteBoundingBox: box(100, 100, 10, 10)})
		m.AddNode(&figma.Node{})
		assert.Equal(t, figma.Rectangle{X: -2, Y: -2, Width: 14, Height: 14}, m.Measure())
	})

	t.Run("NaN when empty", func(t *testing.T) {
		r := NewBoundingBoxMeasurement().Measure()
		assert.True(t, math.IsNaN(r.X))
		assert.True(t, math.IsNaN(r.Y))
		assert.True(t, math.IsNaN(r.Width))
		assert.True(t, math.IsNaN(r.Height))
	})
}

func shadow(radius, x, y float64, visible bool) figma.Effect {
	return figma.Effect{
		Type:      figma.EffectDropShadow,
		Visible:   visible,
		Radius:    radius,
		Offset:    &figma.Vector{X: x, Y: y},
		Color:     &figma.Color{A: 0.3},
		BlendMode: "NORMAL",
	}
}

func TestRenderBoundingBox(t *testing.T) {
	t.Run("accumulates blur radius", func(t *testing.T) {
		n := &figma.Node{
			AbsoluteBoundingBox: box(0, 0, 100, 100),
			Effects:             []figma.Effect{{Type: figma.EffectLayerBlur, Radius: 5, Visible: true}},
		}
		assert.Equal(t, figma.Rectangle{X: -5, Y: -5, Width: 110, Height: 110}, RenderBoundingBox(n))
	})

	t.Run("accumulates drop shadow", func(t *testing.T) {
		n := &figma.Node{
			AbsoluteBoundingBox: box(0, 0, 100, 100),
			Effects:             []figma.Effect{shadow(2, 3, 3, true)},
		}
		assert.Equal(t, figma.Rectangle{X: 0, Y: 0, Width: 105, Height: 105}, RenderBoundingBox(n))
	})

	t.Run("skips invisible effects", func(t *testing.T) {
		n := &figma.Node{
			AbsoluteBoundingBox: box(0, 0, 100, 100),
			Effects: []figma.Effect{
				{Type: figma.EffectLayerBlur, Radius: 5},
				shadow(2, 5, 0, false),
			},
		}
		assert.Equal(t, figma.Rectangle{X: 0, Y: 0, Width: 100, Height: 100}, RenderBoundingBox(n))
	})

	//    parent
	//      |
	//    child   (blur 3)
	//      |
	//  grandchild (shadow 5 at 5,5)
	t.Run("includes descendants", func(t *testing.T) {
		grandChild := &figma.Node{
			AbsoluteBoundingBox: box(0, 0, 100, 100),
			Effects:             []figma.Effect{shadow(5, 5, 5, true)},
		}
		child := &figma.Node{
			AbsoluteBoundingBox: box(0, 0, 100, 100),
			Effects:             []figma.Effect{{Type: figma.EffectLayerBlur, Radius: 3, Visible: true}},
			Children:            []*figma.Node{grandChild},
		}
		parent := &figma.Node{
			AbsoluteBoundingBox: box(0, 0, 100, 100),
			Children:            []*figma.Node{child},
		}
		assert.Equal(t, figma.Rectangle{X: -3, Y: -3, Width: 113, Height: 113}, RenderBoundingBox(parent))
	})

	t.Run("uses render bounds when present", func(t *testing.T) {
		n := &figma.Node{
			AbsoluteBoundingBox:  box(0, 0, 100, 100),
			AbsoluteRenderBounds: box(1, 2, 3, 4),
			Effects:              []figma.Effect{{Type: figma.EffectLayerBlur, Radius: 5, Visible: true}},
		}
		assert.Equal(t, figma.Rectangle{X: 1, Y: 2, Width: 3, Height: 4}, RenderBoundingBox(n))
	})

	t.Run("skips nodes without a box", func(t *testing.T) {
		child := &figma.Node{Effects: []figma.Effect{{Type: figma.EffectLayerBlur, Radius: 50, Visible: true}}}
		parent := &figma.Node{
			AbsoluteBoundingBox: box(0, 0, 100, 100),
			Children:            []*figma.Node{child},
		}
		assert.Equal(t, figma.Rectangle{X: 0, Y: 0, Width: 100, Height: 100}, RenderBoundingBox(parent))
	})
}

func TestDistanceGuides(t *testing.T) {
	t.Run("intersecting", func(t *testing.T) {
		//  +-----+
		//  |  a  |
		//  |  +--|--+
		//  +-----+  |
		//     |  b  |
		//     +-----+
		guides := DistanceGuides(
			figma.Rectangle{X: 0, Y: 0, Width: 10, Height: 10},
			figma.Rectangle{X: 5, Y: 5, Width: 10, Height: 10},
		)
		require.Len(t, guides, 4)
		assert.Equal(t, [2]Point{{0, 7.5}, {5, 7.5}}, guides[0].Points)
		assert.Equal(t, [2]Point{{10, 7.5}, {15, 7.5}}, guides[1].Points)
		assert.Equal(t, [2]Point{{7.5, 0}, {7.5, 5}}, guides[2].Points)
		assert.Equal(t, [2]Point{{7.5, 10}, {7.5, 15}}, guides[3].Points)
		for _, g := range guides {
			assert.Nil(t, g.Bisector)
		}
		assert.Equal(t, 5.0, guides[0].Length())
	})

	t.Run("side by side", func(t *testing.T) {
		// a to the left of b, vertically overlapping
		guides := DistanceGuides(
			figma.Rectangle{X: 0, Y: 0, Width: 10, Height: 10},
			figma.Rectangle{X: 30, Y: 0, Width: 10, Height: 10},
		)
		require.Len(t, guides, 1)
		assert.Equal(t, [2]Point{{10, 5}, {30, 5}}, guides[0].Points)
		assert.Nil(t, guides[0].Bisector)
	})

	t.Run("diagonal", func(t *testing.T) {
		// a below-right of b
		guides := DistanceGuides(
			figma.Rectangle{X: 50, Y: 50, Width: 10, Height: 10},
			figma.Rectangle{X: 0, Y: 0, Width: 10, Height: 10},
		)
		require.Len(t, guides, 2)
		assert.Equal(t, [2]Point{{50, 55}, {10, 55}}, guides[0].Points)
		require.NotNil(t, guides[0].Bisector)
		assert.Equal(t, [2]Point{{10, 55}, {10, 10}}, *guides[0].Bisector)

		assert.Equal(t, [2]Point{{55, 50}, {55, 10}}, guides[1].Points)
		require.NotNil(t, guides[1].Bisector)
		assert.Equal(t, [2]Point{{55, 10}, {10, 10}}, *guides[1].Bisector)
	})
}
