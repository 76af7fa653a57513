package figma

import "time"

// Color is an RGBA color with channels in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type BlendMode string

var blendModes = map[BlendMode]struct{}{
	"PASS_THROUGH": {}, "NORMAL": {}, "DARKEN": {}, "MULTIPLY": {},
	"LINEAR_BURN": {}, "COLOR_BURN": {}, "LIGHTEN": {}, "SCREEN": {},
	"LINEAR_DODGE": {}, "COLOR_DODGE": {}, "OVERLAY": {}, "SOFT_LIGHT": {},
	"HARD_LIGHT": {}, "DIFFERENCE": {}, "EXCLUSION": {}, "HUE": {},
	"SATURATION": {}, "COLOR": {}, "LUMINOSITY": {},
}

func (m BlendMode) Valid() bool {
	_, ok := blendModes[m]
	return ok
}

const (
	EffectLayerBlur      = "LAYER_BLUR"
	EffectBackgroundBlur = "BACKGROUND_BLUR"
	EffectInnerShadow    = "INNER_SHADOW"
	EffectDropShadow     = "DROP_SHADOW"
)

// Effect is a blur or a shadow. The shadow-only fields are nil for blurs.
type Effect struct {
	Type    string  `json:"type"`
	Visible bool    `json:"visible"`
	Radius  float64 `json:"radius"`

	Color                *Color    `json:"color,omitempty"`
	BlendMode            BlendMode `json:"blendMode,omitempty"`
	Offset               *Vector   `json:"offset,omitempty"`
	Spread               *float64  `json:"spread,omitempty"`
	ShowShadowBehindNode *bool     `json:"showShadowBehindNode,omitempty"`
}

// IsShadow reports whether e is a well-formed inner or drop shadow.
func (e Effect) IsShadow() bool {
	if e.Type != EffectInnerShadow && e.Type != EffectDropShadow {
		return false
	}
	return e.Color != nil && e.BlendMode.Valid() && e.Offset != nil
}

type ColorStop struct {
	Position float64 `json:"position"`
	Color    Color   `json:"color"`
}

const (
	PaintSolid           = "SOLID"
	PaintGradientLinear  = "GRADIENT_LINEAR"
	PaintGradientRadial  = "GRADIENT_RADIAL"
	PaintGradientAngular = "GRADIENT_ANGULAR"
	PaintGradientDiamond = "GRADIENT_DIAMOND"
	PaintImage           = "IMAGE"
	PaintVideo           = "VIDEO"
	PaintEmoji           = "EMOJI"
)

type Paint struct {
	Type      string    `json:"type"`
	Visible   *bool     `json:"visible,omitempty"`
	Opacity   *float64  `json:"opacity,omitempty"`
	BlendMode BlendMode `json:"blendMode"`

	// SOLID
	Color *Color `json:"color,omitempty"`

	// GRADIENT_*
	GradientHandlePositions []Vector    `json:"gradientHandlePositions,omitempty"`
	GradientStops           []ColorStop `json:"gradientStops,omitempty"`

	// IMAGE: FILL, FIT, TILE or STRETCH
	ScaleMode string `json:"scaleMode,omitempty"`
}

// IsVisible defaults to true when the property is absent.
func (p Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// OpacityOr1 returns the paint opacity, 1 when absent.
func (p Paint) OpacityOr1() float64 {
	if p.Opacity == nil {
		return 1
	}
	return *p.Opacity
}

// Valid reports whether p is one of the known paint kinds with the
// properties that kind requires.
func (p Paint) Valid() bool {
	if p.Type == "" || !p.BlendMode.Valid() {
		return false
	}

	switch p.Type {
	case PaintSolid:
		return p.Color != nil
	case PaintGradientLinear, PaintGradientRadial, PaintGradientAngular, PaintGradientDiamond:
		return len(p.GradientHandlePositions) >= 2 && p.GradientStops != nil
	case PaintVideo, PaintEmoji:
		return true
	}

	switch p.ScaleMode {
	case "FILL", "FIT", "TILE", "STRETCH":
		return true
	}
	return false
}

// TypeStyle is the text style of a TEXT node.
type TypeStyle struct {
	FontFamily                string   `json:"fontFamily"`
	FontPostScriptName        string   `json:"fontPostScriptName,omitempty"`
	Italic                    bool     `json:"italic"`
	FontWeight                float64  `json:"fontWeight"`
	FontSize                  float64  `json:"fontSize"`
	TextCase                  string   `json:"textCase,omitempty"`
	TextDecoration            string   `json:"textDecoration,omitempty"`
	TextAlignHorizontal       string   `json:"textAlignHorizontal"`
	LetterSpacing             float64  `json:"letterSpacing"`
	LineHeightPx              float64  `json:"lineHeightPx"`
	LineHeightPercentFontSize *float64 `json:"lineHeightPercentFontSize,omitempty"`
	LineHeightUnit            string   `json:"lineHeightUnit"`
}

const (
	TypeDocument     = "DOCUMENT"
	TypeCanvas       = "CANVAS"
	TypeFrame        = "FRAME"
	TypeGroup        = "GROUP"
	TypeText         = "TEXT"
	TypeRectangle    = "RECTANGLE"
	TypeComponent    = "COMPONENT"
	TypeComponentSet = "COMPONENT_SET"
	TypeInstance     = "INSTANCE"
)

// Node is any node of a document tree.
type Node struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Visible  *bool   `json:"visible,omitempty"`
	Children []*Node `json:"children,omitempty"`

	BackgroundColor *Color `json:"backgroundColor,omitempty"`

	AbsoluteBoundingBox  *Rectangle `json:"absoluteBoundingBox,omitempty"`
	AbsoluteRenderBounds *Rectangle `json:"absoluteRenderBounds,omitempty"`

	Fills        []Paint   `json:"fills,omitempty"`
	Strokes      []Paint   `json:"strokes,omitempty"`
	StrokeWeight *float64  `json:"strokeWeight,omitempty"`
	StrokeAlign  string    `json:"strokeAlign,omitempty"`
	StrokeDashes []float64 `json:"strokeDashes,omitempty"`

	Effects []Effect `json:"effects,omitempty"`

	Characters *string    `json:"characters,omitempty"`
	Style      *TypeStyle `json:"style,omitempty"`

	PaddingTop        *float64 `json:"paddingTop,omitempty"`
	PaddingRight      *float64 `json:"paddingRight,omitempty"`
	PaddingBottom     *float64 `json:"paddingBottom,omitempty"`
	PaddingLeft       *float64 `json:"paddingLeft,omitempty"`
	HorizontalPadding *float64 `json:"horizontalPadding,omitempty"`
	VerticalPadding   *float64 `json:"verticalPadding,omitempty"`

	CornerRadius         *float64  `json:"cornerRadius,omitempty"`
	RectangleCornerRadii []float64 `json:"rectangleCornerRadii,omitempty"`
}

// IsVisible defaults to true when the property is absent.
func (n *Node) IsVisible() bool {
	return n.Visible == nil || *n.Visible
}

func (n *Node) String() string {
	return n.Name + " (" + n.Type + " #" + n.ID + ")"
}

// FileResponse is the body of GET /v1/files/:key.
type FileResponse struct {
	Name         string    `json:"name"`
	LastModified time.Time `json:"lastModified"`
	Document     *Node     `json:"document"`
}

// FileNodesResponse is the body of GET /v1/files/:key/nodes.
type FileNodesResponse struct {
	Name         string               `json:"name"`
	LastModified time.Time            `json:"lastModified"`
	Nodes        map[string]NodeEntry `json:"nodes"`
}

type NodeEntry struct {
	Document *Node `json:"document"`
}
