package cssgen

import (
	"fmt"
	"math"

	"github.com/delaneyj/figspec/figma"
	"github.com/delaneyj/figspec/preferences"
)

// IsTransparent reports whether c is transparent black, the value of the
// "transparent" keyword.
func IsTransparent(c figma.Color) bool {
	return c.R == 0 && c.G == 0 && c.B == 0 && c.A == 0
}

type vec3 [3]float64
type mat3 [3]vec3

func (m mat3) mul(v vec3) vec3 {
	return vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// https://drafts.csswg.org/css-color-4/#color-conversion-code
var (
	srgbToXYZ = mat3{
		{506752.0 / 1228815, 87881.0 / 245763, 12673.0 / 70218},
		{87098.0 / 409605, 175762.0 / 245763, 12673.0 / 175545},
		{7918.0 / 409605, 87881.0 / 737289, 1001167.0 / 1053270},
	}
	xyzToDisplayP3 = mat3{
		{446124.0 / 178915, -333277.0 / 357830, -72051.0 / 178915},
		{-14852.0 / 17905, 63121.0 / 35810, 423.0 / 17905},
		{11844.0 / 330415, -50337.0 / 660830, 316169.0 / 330415},
	}
)

func toLinearLight(c float64) float64 {
	abs := math.Abs(c)
	if abs < 0.04045 {
		return c / 12.92
	}
	return math.Copysign(math.Pow((abs+0.055)/1.055, 2.4), c)
}

func gammaEncode(c float64) float64 {
	abs := math.Abs(c)
	if abs > 0.0031308 {
		return math.Copysign(1.055*math.Pow(abs, 1/2.4)-0.055, c)
	}
	return 12.92 * c
}

// SRGBToDisplayP3 converts an sRGB color into the perceptually identical
// Display P3 color. Alpha is kept.
func SRGBToDisplayP3(c figma.Color) figma.Color {
	linear := vec3{toLinearLight(c.R), toLinearLight(c.G), toLinearLight(c.B)}
	p3 := xyzToDisplayP3.mul(srgbToXYZ.mul(linear))
	return figma.Color{
		R: gammaEncode(p3[0]),
		G: gammaEncode(p3[1]),
		B: gammaEncode(p3[2]),
		A: c.A,
	}
}

// ColorValue renders c in the preferred notation.
func ColorValue(c figma.Color, p preferences.Preferences) Value {
	if IsTransparent(c) {
		return Keyword{Ident: "transparent"}
	}

	switch p.CSSColorNotation {
	case preferences.NotationColorSRGB:
		return colorFunction("srgb", c)
	case preferences.NotationRGB:
		return rgb(c)
	case preferences.NotationHSL:
		return hsl(c)
	case preferences.NotationDisplayP3:
		return colorFunction("display-p3", c)
	case preferences.NotationSRGBToDisplayP3:
		return colorFunction("display-p3", SRGBToDisplayP3(c))
	}
	return hex(c)
}

func byteOf(c float64) int {
	return int(c * 0xff)
}

func hex(c figma.Color) Value {
	text := fmt.Sprintf("#%02x%02x%02x", byteOf(c.R), byteOf(c.G), byteOf(c.B))
	if c.A != 1 {
		text += fmt.Sprintf("%02x", byteOf(c.A))
	}
	return Literal{Text: text}
}

func rgb(c figma.Color) Value {
	return FunctionCall{
		Name: "rgb",
		Args: list(" ",
			Number{Value: c.R * 0xff, Precision: Precision(0)},
			Number{Value: c.G * 0xff, Precision: Precision(0)},
			Number{Value: c.B * 0xff, Precision: Precision(0)},
			Literal{Text: "/"},
			Number{Value: c.A, Precision: Precision(2)},
		),
	}
}

func colorFunction(space string, c figma.Color) Value {
	return FunctionCall{
		Name: "color",
		Args: list(" ",
			Keyword{Ident: space},
			Number{Value: c.R, Precision: Precision(6)},
			Number{Value: c.G, Precision: Precision(6)},
			Number{Value: c.B, Precision: Precision(6)},
			Literal{Text: "/"},
			Number{Value: c.A, Precision: Precision(6)},
		),
	}
}

// https://en.wikipedia.org/wiki/HSL_and_HSV#From_RGB
func hsl(c figma.Color) Value {
	v := math.Max(c.R, math.Max(c.G, c.B))
	chroma := v - math.Min(c.R, math.Min(c.G, c.B))
	l := v - chroma/2

	var h float64
	switch {
	case chroma == 0:
		h = 0
	case v == c.R:
		h = math.Mod((c.G-c.B)/chroma, 6)
	case v == c.G:
		h = (c.B-c.R)/chroma + 2
	default:
		h = (c.R-c.G)/chroma + 4
	}
	h *= 60

	var s float64
	if l != 0 && l != 1 {
		s = (v - l) / math.Min(l, 1-l)
	}

	return FunctionCall{
		Name: "hsl",
		Args: list(" ",
			Number{Value: h, Unit: "deg"},
			Number{Value: s * 100, Unit: "%"},
			Number{Value: l * 100, Unit: "%"},
			Literal{Text: "/"},
			Number{Value: c.A},
		),
	}
}
