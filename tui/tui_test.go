package tui_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/delaneyj/figspec/figma"
	"github.com/delaneyj/figspec/preferences"
	"github.com/delaneyj/figspec/reactive"
	"github.com/delaneyj/figspec/tui"
	"github.com/delaneyj/figspec/viewer"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newModel(t *testing.T) (*tui.Model, *viewer.FileViewer) {
	t.Helper()
	src, err := figma.LoadFile("../figma/testdata/file.json")
	require.NoError(t, err)

	v := viewer.NewFileViewer(reactive.NewRuntime())
	v.SetImages(map[string]string{})
	v.SetResponse(src.File)

	m := tui.New(v)
	t.Cleanup(func() {
		m.Close()
		v.Close()
	})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, v
}

func TestView(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "figspec.tui")
	defer teardown()

	m, _ := newModel(t)
	view := m.View()
	assert.Contains(t, view, "Design System · Page 1 (1/2)")
	assert.Contains(t, view, "Card  200 × 100")
	assert.Contains(t, view, "Title  100 × 20")
	assert.Contains(t, view, "select a node with tab and enter")
}

func TestIdleView(t *testing.T) {
	v := viewer.NewFileViewer(reactive.NewRuntime())
	defer v.Close()
	m := tui.New(v)
	defer m.Close()

	assert.Contains(t, m.View(), "waiting for a file")
	assert.Contains(t, m.View(), "nothing to show")

	v.SetImages(nil)
	assert.Contains(t, m.View(), viewer.ErrFileRequired.Error())
}

func TestSelection(t *testing.T) {
	m, v := newModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "1:2", v.Canvas().Hovered().ID)
	assert.Contains(t, m.View(), "› Title")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, v.Selected())
	assert.Equal(t, "1:2", v.Selected().ID)
	assert.Contains(t, m.View(), "● Title")
	assert.Contains(t, m.View(), `font-family: "Inter";`)

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "1:1", v.Canvas().Hovered().ID)
	assert.Contains(t, m.View(), "distances: 16 84 8 72")

	m.Update(runes("u"))
	assert.Contains(t, m.View(), "font-size: 1rem;")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, v.Selected())
}

func TestPanelsAndCanvases(t *testing.T) {
	m, v := newModel(t)

	m.Update(runes("i"))
	assert.Equal(t, viewer.PanelInfo, v.Panel())
	assert.Contains(t, m.View(), "Number of canvases")

	m.Update(runes("p"))
	assert.Equal(t, viewer.PanelPreferences, v.Panel())
	assert.Contains(t, m.View(), "Color notation")

	m.Update(runes("n"))
	assert.Equal(t, preferences.NotationRGB, v.Preferences().CSSColorNotation)
	assert.Contains(t, m.View(), "rgb")

	m.Update(runes("p"))
	assert.Equal(t, viewer.PanelCanvas, v.Panel())

	m.Update(runes("i"))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, viewer.PanelCanvas, v.Panel())

	m.Update(runes("]"))
	assert.Equal(t, "2:0", v.SelectedCanvasID())
	assert.Contains(t, m.View(), "Page 2 (2/2)")
	m.Update(runes("["))
	assert.Equal(t, "1:0", v.SelectedCanvasID())
}

func TestNavigation(t *testing.T) {
	m, v := newModel(t)
	c := v.Canvas()
	start := c.Transform()

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.InDelta(t, start.X+65, c.Transform().X, 1e-9)
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.InDelta(t, start.Y+65, c.Transform().Y, 1e-9)

	m.Update(runes("="))
	assert.Greater(t, c.Transform().Scale, start.Scale)
	m.Update(runes("0"))
	assert.Equal(t, start, c.Transform())
}

func TestReload(t *testing.T) {
	m, v := newModel(t)
	m.Update(runes("]"))

	src, err := figma.LoadFile("../figma/testdata/file.json")
	require.NoError(t, err)
	m.Update(tui.ReloadMsg{Source: src})
	assert.Same(t, src.File, v.Response())
	assert.Equal(t, "1:0", v.SelectedCanvasID())

	nodes, err := figma.LoadFile("../figma/testdata/nodes.json")
	require.NoError(t, err)
	m.Update(tui.ReloadMsg{Source: nodes})
	assert.Same(t, src.File, v.Response())
	assert.Contains(t, m.View(), "the export changed its kind")
}

func TestQuit(t *testing.T) {
	m, _ := newModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
