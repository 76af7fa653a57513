package cssgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/delaneyj/figspec/figma"
	"github.com/delaneyj/figspec/preferences"
)

// FromNode generates the declarations describing n.
func FromNode(n *figma.Node, p preferences.Preferences) []Style {
	var styles []Style

	if n.HasBoundingBox() {
		styles = append(styles,
			Style{"width", length(n.AbsoluteBoundingBox.Width, p)},
			Style{"height", length(n.AbsoluteBoundingBox.Height, p)},
		)
	}

	switch {
	case n.HasPadding():
		styles = append(styles, Style{"padding", padding(
			*n.PaddingTop, *n.PaddingRight, *n.PaddingBottom, *n.PaddingLeft, p,
		)})
	case n.HasLegacyPadding():
		v, h := *n.VerticalPadding, *n.HorizontalPadding
		styles = append(styles, Style{"padding", padding(v, h, v, h, p)})
	}

	if n.HasTypeStyle() {
		styles = append(styles, typeStyle(n.Style, p)...)
	}

	if n.HasStroke() && len(n.Strokes) > 0 && n.Strokes[0].Type == figma.PaintSolid {
		// border-image is impossible without a source for border-image-slice
		styles = append(styles, Style{"border", list(" ",
			length(*n.StrokeWeight, p),
			Keyword{Ident: "solid"},
			paintValue(n.Strokes[0], p),
		)})
	}

	if n.HasFills() && len(n.Fills) > 0 {
		styles = append(styles, fills(n, p)...)
	}

	switch {
	case n.HasRadius() && *n.CornerRadius > 0:
		styles = append(styles, Style{"border-radius", length(*n.CornerRadius, p)})
	case n.HasRadii():
		r := n.RectangleCornerRadii
		styles = append(styles, Style{"border-radius", list(" ",
			length(r[0], p), length(r[1], p), length(r[2], p), length(r[3], p),
		)})
	}

	if n.HasEffects() {
		styles = append(styles, effects(n.Effects, p)...)
	}

	return styles
}

func typeStyle(s *figma.TypeStyle, p preferences.Preferences) []Style {
	var lineHeight Value
	if s.LineHeightPercentFontSize != nil {
		lineHeight = list(" ",
			Number{Value: *s.LineHeightPercentFontSize / 100, Precision: Precision(3)},
			Comment{Text: "or " + strconv.FormatFloat(s.LineHeightPx, 'f', -1, 64) + "px"},
		)
	} else {
		lineHeight = length(s.LineHeightPx, p)
	}

	align := strings.ToLower(s.TextAlignHorizontal)
	if s.TextAlignHorizontal == "JUSTIFIED" {
		align = "justify"
	}

	styles := []Style{
		{"font-family", String{Value: s.FontFamily}},
		{"font-size", length(s.FontSize, p)},
		{"font-weight", Number{Value: s.FontWeight, Precision: Precision(0)}},
		{"line-height", lineHeight},
		// physical properties: the export carries no text flow information
		{"text-align", Keyword{Ident: align}},
	}

	if s.LetterSpacing != 0 {
		styles = append(styles, Style{"letter-spacing", length(s.LetterSpacing, p)})
	}
	if s.Italic {
		styles = append(styles, Style{"font-style", Keyword{Ident: "italic"}})
	}

	// SMALL_CAPS has no text-transform equivalent
	switch s.TextCase {
	case "LOWER":
		styles = append(styles, Style{"text-transform", Keyword{Ident: "lowercase"}})
	case "UPPER":
		styles = append(styles, Style{"text-transform", Keyword{Ident: "uppercase"}})
	case "TITLE":
		styles = append(styles, Style{"text-transform", Keyword{Ident: "capitalize"}})
	}

	return styles
}

func padding(top, right, bottom, left float64, p preferences.Preferences) Value {
	if top == bottom && right == left {
		if top != right {
			return list(" ", length(top, p), length(right, p))
		}
		return length(top, p)
	}
	return list(" ", length(top, p), length(right, p), length(bottom, p), length(left, p))
}

func effects(all []figma.Effect, p preferences.Preferences) []Style {
	var shadows, layerBlurs, bgBlurs []Value
	for _, e := range all {
		if !e.Visible {
			continue
		}
		switch {
		case e.IsShadow():
			shadows = append(shadows, shadow(e, p))
		case e.Type == figma.EffectLayerBlur:
			layerBlurs = append(layerBlurs, blur(e, p))
		case e.Type == figma.EffectBackgroundBlur:
			bgBlurs = append(bgBlurs, blur(e, p))
		}
	}

	var styles []Style
	if len(shadows) > 0 {
		styles = append(styles, Style{"box-shadow", list(", ", shadows[0], shadows[1:]...)})
	}
	if len(layerBlurs) > 0 {
		styles = append(styles, Style{"filter", list(" ", layerBlurs[0], layerBlurs[1:]...)})
	}
	if len(bgBlurs) > 0 {
		styles = append(styles, Style{"backdrop-filter", list(" ", bgBlurs[0], bgBlurs[1:]...)})
	}
	return styles
}

func blur(e figma.Effect, p preferences.Preferences) Value {
	return FunctionCall{Name: "blur", Args: length(e.Radius, p)}
}

func shadow(e figma.Effect, p preferences.Preferences) Value {
	tail := []Value{length(e.Offset.Y, p), length(e.Radius, p)}
	if e.Spread != nil && *e.Spread != 0 {
		tail = append(tail, length(*e.Spread, p))
	}
	tail = append(tail, withPreview(ColorValue(*e.Color, p), p))
	if e.Type == figma.EffectInnerShadow {
		tail = append(tail, Keyword{Ident: "inset"})
	}
	return list(" ", length(e.Offset.X, p), tail...)
}

var backgroundNodes = map[string]struct{}{
	figma.TypeFrame:        {},
	figma.TypeComponent:    {},
	figma.TypeComponentSet: {},
	figma.TypeInstance:     {},
	figma.TypeRectangle:    {},
}

// fills maps paints to the foreground color of TEXT nodes and to the
// background of box shaped nodes. Vector fills are not emitted.
func fills(n *figma.Node, p preferences.Preferences) []Style {
	var visible []figma.Paint
	for _, f := range n.Fills {
		if f.IsVisible() {
			visible = append(visible, f)
		}
	}
	if len(visible) == 0 {
		return nil
	}

	if n.Type == figma.TypeText {
		fill := visible[0]
		if fill.Type != figma.PaintSolid {
			return nil
		}
		return []Style{{"color", withPreview(ColorValue(*fill.Color, p), p)}}
	}

	if _, ok := backgroundNodes[n.Type]; !ok {
		return nil
	}

	head := visible[0]
	if len(visible) == 1 {
		switch head.Type {
		case figma.PaintSolid:
			return []Style{{"background-color", paintValue(head, p)}}
		case figma.PaintImage, figma.PaintGradientAngular, figma.PaintGradientDiamond,
			figma.PaintGradientLinear, figma.PaintGradientRadial:
			return []Style{{"background-image", paintValue(head, p)}}
		}
		return nil
	}

	tail := make([]Value, 0, len(visible)-1)
	for _, f := range visible[1:] {
		tail = append(tail, paintValue(f, p))
	}
	return []Style{{"background", list(", ", paintValue(head, p), tail...)}}
}

func withPreview(v Value, p preferences.Preferences) Value {
	if !p.EnableColorPreview {
		return v
	}
	return Color{Color: SerializeValue(v, p), Value: v}
}

// length converts a pixel size to the preferred unit.
func length(size float64, p preferences.Preferences) Value {
	if p.LengthUnit == preferences.UnitPx {
		return Number{Value: size, Unit: "px"}
	}
	return Number{
		Value:     size / p.RootFontSizeInPx,
		Unit:      "rem",
		Precision: Precision(2 + p.DecimalPlaces),
	}
}

func paintValue(paint figma.Paint, p preferences.Preferences) Value {
	switch paint.Type {
	case figma.PaintSolid:
		c := *paint.Color
		c.A *= paint.OpacityOr1()
		return withPreview(ColorValue(c, p), p)
	case figma.PaintEmoji, figma.PaintVideo:
		return Comment{Text: fmt.Sprintf("This fill is unavailable as a CSS background (%s)", paint.Type)}
	case figma.PaintImage:
		return FunctionCall{Name: "url", Args: Comment{Text: "image file"}}
	case figma.PaintGradientLinear:
		return withPreview(linearGradient(paint, p), p)
	}
	return Comment{Text: "Not implemented"}
}

func linearGradient(paint figma.Paint, p preferences.Preferences) Value {
	h := paint.GradientHandlePositions
	stops := make([]Value, 0, len(paint.GradientStops))
	for _, stop := range paint.GradientStops {
		stops = append(stops, list(" ",
			withPreview(ColorValue(stop.Color, p), p),
			Number{Value: stop.Position * 100, Precision: Precision(2), Unit: "%"},
		))
	}
	return FunctionCall{
		Name: "linear-gradient",
		Args: list(", ",
			Number{Value: LinearGradientAngle(h[0], h[1]), Precision: Precision(2), Unit: "deg"},
			stops...,
		),
	}
}
