package geometry

import (
	"math"

	"github.com/delaneyj/figspec/figma"
)

type Point struct {
	X, Y float64
}

// Guide is a distance line between two boxes. Bisector, when set, is the
// dashed extension from the end of the line to the compared box edge.
type Guide struct {
	Points   [2]Point
	Bisector *[2]Point
}

// Length of the solid line.
func (g Guide) Length() float64 {
	return math.Hypot(g.Points[1].X-g.Points[0].X, g.Points[1].Y-g.Points[0].Y)
}

type absRect struct {
	top, right, bottom, left float64
}

func toAbs(r figma.Rectangle) absRect {
	return absRect{
		top:    r.Y,
		right:  r.X + r.Width,
		bottom: r.Y + r.Height,
		left:   r.X,
	}
}

// DistanceGuides returns the guides between the selected and the compared
// box: four edge-to-edge lines through the center of the overlap when they
// intersect, otherwise one line per axis they are apart on.
func DistanceGuides(selected, compared figma.Rectangle) []Guide {
	a, b := toAbs(selected), toAbs(compared)

	yIntersecting := !(a.top > b.bottom || a.bottom < b.top)
	xIntersecting := !(a.left > b.right || a.right < b.left)

	if xIntersecting && yIntersecting {
		cx := (math.Max(a.left, b.left) + math.Min(a.right, b.right)) / 2
		cy := (math.Max(a.top, b.top) + math.Min(a.bottom, b.bottom)) / 2

		return []Guide{
			{Points: [2]Point{{a.left, cy}, {b.left, cy}}},
			{Points: [2]Point{{a.right, cy}, {b.right, cy}}},
			{Points: [2]Point{{cx, a.top}, {cx, b.top}}},
			{Points: [2]Point{{cx, a.bottom}, {cx, b.bottom}}},
		}
	}

	aLeft := a.left > b.right
	aBelow := a.top > b.bottom

	centerX := selected.X + selected.Width/2
	centerY := selected.Y + selected.Height/2

	pick := func(cond bool, yes, no float64) float64 {
		if cond {
			return yes
		}
		return no
	}
	bx := pick(aLeft, b.right, b.left)
	by := pick(aBelow, b.bottom, b.top)

	var guides []Guide
	if !xIntersecting {
		g := Guide{Points: [2]Point{
			{pick(aLeft, a.left, a.right), centerY},
			{bx, centerY},
		}}
		if !yIntersecting {
			g.Bisector = &[2]Point{{bx, centerY}, {bx, by}}
		}
		guides = append(guides, g)
	}
	if !yIntersecting {
		g := Guide{Points: [2]Point{
			{centerX, pick(aBelow, a.top, a.bottom)},
			{centerX, by},
		}}
		if !xIntersecting {
			g.Bisector = &[2]Point{{centerX, by}, {bx, by}}
		}
		guides = append(guides, g)
	}
	return guides
}
