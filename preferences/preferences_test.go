package preferences

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	p := Default()
	require.NoError(t, p.Validate())
	assert.Equal(t, 2, p.DecimalPlaces)
	assert.Equal(t, 500.0, p.ViewportPanSpeed)
	assert.Equal(t, 500.0, p.ViewportZoomSpeed)
	assert.Equal(t, NotationHex, p.CSSColorNotation)
	assert.Equal(t, UnitPx, p.LengthUnit)
	assert.Equal(t, 16.0, p.RootFontSizeInPx)
	assert.True(t, p.EnableColorPreview)
}

func TestEqual(t *testing.T) {
	a, b := Default(), Default()
	assert.True(t, Equal(a, b))
	b.DecimalPlaces = 3
	assert.False(t, Equal(a, b))
	b = a
	b.Version = 2
	assert.False(t, Equal(a, b))
}

func TestParse(t *testing.T) {
	t.Run("omitted keys keep defaults", func(t *testing.T) {
		p, err := Parse([]byte("lengthUnit: rem\ndecimalPlaces: 4\n"))
		require.NoError(t, err)
		assert.Equal(t, UnitRem, p.LengthUnit)
		assert.Equal(t, 4, p.DecimalPlaces)
		assert.Equal(t, 16.0, p.RootFontSizeInPx)
		assert.Equal(t, NotationHex, p.CSSColorNotation)
	})

	t.Run("invalid values", func(t *testing.T) {
		cases := map[string]error{
			"version: 2":              ErrVersion,
			"decimalPlaces: -1":       ErrDecimalPlaces,
			"viewportZoomSpeed: 1000": ErrSpeed,
			"lengthUnit: em":          ErrLengthUnit,
			"rootFontSizeInPx: 0":     ErrRootFontSize,
			"cssColorNotation: cmyk":  ErrNotation,
			"viewportPanSpeed: 0":     ErrSpeed,
		}
		for in, want := range cases {
			_, err := Parse([]byte(in))
			assert.ErrorIs(t, err, want, in)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("decimalPlaces: ["))
		assert.Error(t, err)
	})
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")

	p := Default()
	p.CSSColorNotation = NotationDisplayP3
	p.EnableColorPreview = false
	require.NoError(t, Save(path, p))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	bad := Default()
	bad.LengthUnit = "pt"
	assert.ErrorIs(t, Save(path, bad), ErrLengthUnit)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCycling(t *testing.T) {
	p := Default()
	seen := []ColorNotation{p.CSSColorNotation}
	for range len(Notations) {
		p.CSSColorNotation = p.NextNotation()
		seen = append(seen, p.CSSColorNotation)
	}
	assert.Equal(t, append(Notations[:len(Notations):len(Notations)], NotationHex), seen)

	p.LengthUnit = p.ToggleUnit()
	assert.Equal(t, UnitRem, p.LengthUnit)
	p.LengthUnit = p.ToggleUnit()
	assert.Equal(t, UnitPx, p.LengthUnit)
}
