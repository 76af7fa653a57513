// Package preferences holds the user-tunable settings of the viewer and
// their YAML file format.
package preferences

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type LengthUnit string

const (
	UnitPx  LengthUnit = "px"
	UnitRem LengthUnit = "rem"
)

type ColorNotation string

const (
	// #rrggbb / #rrggbbaa
	NotationHex ColorNotation = "hex"
	// rgb(r g b / a)
	NotationRGB ColorNotation = "rgb"
	// hsl(h s l / a)
	NotationHSL ColorNotation = "hsl"
	// color(srgb r g b / a)
	NotationColorSRGB ColorNotation = "color-srgb"
	// color(display-p3 r g b / a), channels taken as they are
	NotationDisplayP3 ColorNotation = "display-p3"
	// color(display-p3 r g b / a), channels converted from sRGB
	NotationSRGBToDisplayP3 ColorNotation = "srgb-to-display-p3"
)

// Notations lists every color notation in menu order.
var Notations = []ColorNotation{
	NotationHex,
	NotationRGB,
	NotationHSL,
	NotationColorSRGB,
	NotationDisplayP3,
	NotationSRGBToDisplayP3,
}

const Version = 1

// Preferences is comparable; two values are equal when every field is.
type Preferences struct {
	Version int `yaml:"version"`

	// Some properties use fixed decimal places regardless.
	DecimalPlaces int `yaml:"decimalPlaces"`

	ViewportZoomSpeed float64 `yaml:"viewportZoomSpeed"`
	ViewportPanSpeed  float64 `yaml:"viewportPanSpeed"`

	LengthUnit       LengthUnit `yaml:"lengthUnit"`
	RootFontSizeInPx float64    `yaml:"rootFontSizeInPx"`

	CSSColorNotation   ColorNotation `yaml:"cssColorNotation"`
	EnableColorPreview bool          `yaml:"enableColorPreview"`
}

func Default() Preferences {
	return Preferences{
		Version:            Version,
		DecimalPlaces:      2,
		ViewportPanSpeed:   500,
		ViewportZoomSpeed:  500,
		CSSColorNotation:   NotationHex,
		LengthUnit:         UnitPx,
		RootFontSizeInPx:   16,
		EnableColorPreview: true,
	}
}

func Equal(a, b Preferences) bool {
	return a == b
}

var (
	ErrVersion       = errors.New("unsupported preferences version")
	ErrDecimalPlaces = errors.New("decimal places must be between 0 and 10")
	ErrSpeed         = errors.New("viewport speeds must be between 1 and 999")
	ErrLengthUnit    = errors.New("unknown length unit")
	ErrRootFontSize  = errors.New("root font size must be positive")
	ErrNotation      = errors.New("unknown color notation")
)

func ValidUnit(u LengthUnit) bool {
	return u == UnitPx || u == UnitRem
}

func ValidNotation(n ColorNotation) bool {
	for _, v := range Notations {
		if v == n {
			return true
		}
	}
	return false
}

func (p Preferences) Validate() error {
	if p.Version != Version {
		return fmt.Errorf("%w: %d", ErrVersion, p.Version)
	}
	if p.DecimalPlaces < 0 || p.DecimalPlaces > 10 {
		return fmt.Errorf("%w: %d", ErrDecimalPlaces, p.DecimalPlaces)
	}
	// the wheel zoom divides by (1000 - speed)
	for _, s := range []float64{p.ViewportPanSpeed, p.ViewportZoomSpeed} {
		if s < 1 || s > 999 {
			return fmt.Errorf("%w: %g", ErrSpeed, s)
		}
	}
	if !ValidUnit(p.LengthUnit) {
		return fmt.Errorf("%w: %q", ErrLengthUnit, p.LengthUnit)
	}
	if p.RootFontSizeInPx <= 0 {
		return fmt.Errorf("%w: %g", ErrRootFontSize, p.RootFontSizeInPx)
	}
	if !ValidNotation(p.CSSColorNotation) {
		return fmt.Errorf("%w: %q", ErrNotation, p.CSSColorNotation)
	}
	return nil
}

// NextNotation cycles through Notations.
func (p Preferences) NextNotation() ColorNotation {
	for i, n := range Notations {
		if n == p.CSSColorNotation {
			return Notations[(i+1)%len(Notations)]
		}
	}
	return Notations[0]
}

// ToggleUnit switches between px and rem.
func (p Preferences) ToggleUnit() LengthUnit {
	if p.LengthUnit == UnitPx {
		return UnitRem
	}
	return UnitPx
}

// Parse decodes YAML on top of the defaults, so omitted keys keep their
// default value.
func Parse(data []byte) (Preferences, error) {
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Preferences{}, fmt.Errorf("failed to parse preferences: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Preferences{}, fmt.Errorf("invalid preferences: %w", err)
	}
	return p, nil
}

func Load(path string) (Preferences, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preferences{}, fmt.Errorf("failed to read preferences %s: %w", path, err)
	}
	return Parse(data)
}

func Save(path string, p Preferences) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("refusing to save: %w", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write preferences %s: %w", path, err)
	}
	return nil
}
