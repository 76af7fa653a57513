package cssgen

import (
	"math"

	"github.com/delaneyj/figspec/figma"
)

// LinearGradientAngle returns the CSS angle in whole degrees of the gradient
// line from start to end.
func LinearGradientAngle(start, end figma.Vector) float64 {
	return RadToDeg(math.Atan(-(end.Y - start.Y) / (end.X - start.X)))
}

// RadToDeg truncates to whole degrees in [0, 360).
func RadToDeg(rad float64) float64 {
	deg := math.Trunc(180 * rad / math.Pi)
	if math.IsNaN(deg) {
		return 0
	}
	if deg < 0 {
		return 360 + deg
	}
	return deg
}
