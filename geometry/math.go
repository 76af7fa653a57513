// Package geometry measures nodes on the canvas and holds the viewport math
// shared by the viewer and the terminal UI.
package geometry

import (
	"math"
	"strconv"
)

const (
	MinZoom = 0.01
	MaxZoom = 256
)

// RoundTo rounds x to the given number of decimal places. Halves round up,
// towards positive infinity.
func RoundTo(x float64, places int) float64 {
	if places == 0 {
		return math.Floor(x + 0.5)
	}
	p := math.Pow(10, float64(places))
	return math.Floor(x*p+0.5) / p
}

// Format prints x rounded to places decimals in its shortest form, "1.5"
// rather than "1.50".
func Format(x float64, places int) string {
	r := RoundTo(x, places)
	if r == 0 {
		// no "-0"
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// NextPowerOfTwo returns the smallest power of two strictly greater than x,
// negative exponents included.
func NextPowerOfTwo(x float64) float64 {
	return math.Pow(2, math.Floor(math.Log2(x))+1)
}

// PreviousPowerOfTwo returns the largest power of two strictly less than x.
func PreviousPowerOfTwo(x float64) float64 {
	return math.Pow(2, math.Ceil(math.Log2(x))-1)
}

func ClampZoom(scale float64) float64 {
	return math.Max(MinZoom, math.Min(MaxZoom, scale))
}
