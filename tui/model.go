package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/delaneyj/figspec/figma"
	"github.com/delaneyj/figspec/preferences"
	"github.com/delaneyj/figspec/reactive"
	"github.com/delaneyj/figspec/viewer"
)

// Viewer is the part of viewer.FileViewer and viewer.FrameViewer the
// terminal front end drives.
type Viewer interface {
	Runtime() *reactive.Runtime
	Canvas() *viewer.Canvas
	Selected() *figma.Node
	Select(*figma.Node)
	Panel() viewer.Panel
	OpenPanel(viewer.Panel)
	ClosePanel()
	Preferences() preferences.Preferences
	UpdatePreferences(func(preferences.Preferences) preferences.Preferences)
	InspectorCSS() string
	Info() []viewer.InfoItem
}

// ReloadMsg replaces the shown export, keeping the viewer.
type ReloadMsg struct {
	Source *figma.Source
}

// ErrMsg is shown on the status line until the next successful reload.
type ErrMsg struct {
	Err error
}

// Model is the bubbletea model of the terminal viewer.
type Model struct {
	v    Viewer
	keys KeyMap
	help help.Model

	width  int
	height int

	// index into the hitboxes of the frame, -1 when nothing is hovered
	hover int
	err   error
	stops []func()

	// rendered by effects
	header    string
	outline   string
	inspector string
	info      string
	prefs     string
	status    string
}

// New creates the model and the effects rendering v. Close stops them.
func New(v Viewer) *Model {
	m := &Model{
		v:     v,
		keys:  DefaultKeyMap,
		help:  help.New(),
		hover: -1,
	}

	rt := v.Runtime()
	m.stops = []func(){
		reactive.Effect(rt, m.resetHover),
		reactive.Effect(rt, m.renderHeader),
		reactive.Effect(rt, m.renderOutline),
		reactive.Effect(rt, m.renderInspector),
		reactive.Effect(rt, m.renderInfo),
		reactive.Effect(rt, m.renderPreferences),
		reactive.Effect(rt, m.renderStatus),
	}
	return m
}

// Close stops rendering. The viewer is left alone.
func (m *Model) Close() {
	for _, stop := range m.stops {
		stop()
	}
	m.stops = nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		c := m.v.Canvas()
		c.SetViewport(float64(msg.Width), float64(msg.Height))
		c.Fit()
		return m, nil

	case ReloadMsg:
		m.reload(msg.Source)
		return m, nil

	case ErrMsg:
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) reload(src *figma.Source) {
	switch v := m.v.(type) {
	case *viewer.FileViewer:
		if src.File != nil {
			v.SetResponse(src.File)
			m.err = nil
			return
		}
	case *viewer.FrameViewer:
		if src.Nodes != nil {
			v.SetResponse(src.Nodes)
			m.err = nil
			return
		}
	}
	m.err = fmt.Errorf("%s: the export changed its kind, restart to view it", src.Path)
	tracer().Errorf("reload: %v", m.err)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	c := m.v.Canvas()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Up):
		c.KeyPan(viewer.Up)
	case key.Matches(msg, m.keys.Down):
		c.KeyPan(viewer.Down)
	case key.Matches(msg, m.keys.Left):
		c.KeyPan(viewer.Left)
	case key.Matches(msg, m.keys.Right):
		c.KeyPan(viewer.Right)
	case key.Matches(msg, m.keys.ZoomIn):
		c.ZoomIn()
	case key.Matches(msg, m.keys.ZoomOut):
		c.ZoomOut()
	case key.Matches(msg, m.keys.Fit):
		c.Fit()

	case key.Matches(msg, m.keys.NextNode):
		m.cycleHover(1)
	case key.Matches(msg, m.keys.PrevNode):
		m.cycleHover(-1)
	case key.Matches(msg, m.keys.Select):
		if n := c.Hovered(); n != nil {
			m.v.Select(n)
		}
	case key.Matches(msg, m.keys.Back):
		if m.v.Panel() != viewer.PanelCanvas {
			m.v.ClosePanel()
		} else {
			m.v.Select(nil)
		}

	case key.Matches(msg, m.keys.Info):
		m.togglePanel(viewer.PanelInfo)
	case key.Matches(msg, m.keys.Prefs):
		m.togglePanel(viewer.PanelPreferences)
	case key.Matches(msg, m.keys.Canvas):
		m.v.ClosePanel()
	case key.Matches(msg, m.keys.PrevCanvas):
		if fv, ok := m.v.(*viewer.FileViewer); ok {
			fv.CycleCanvas(-1)
		}
	case key.Matches(msg, m.keys.NextCanvas):
		if fv, ok := m.v.(*viewer.FileViewer); ok {
			fv.CycleCanvas(1)
		}

	case key.Matches(msg, m.keys.Unit):
		m.v.UpdatePreferences(func(p preferences.Preferences) preferences.Preferences {
			p.LengthUnit = p.ToggleUnit()
			return p
		})
	case key.Matches(msg, m.keys.Notation):
		m.v.UpdatePreferences(func(p preferences.Preferences) preferences.Preferences {
			p.CSSColorNotation = p.NextNotation()
			return p
		})
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *Model) togglePanel(p viewer.Panel) {
	if m.v.Panel() == p {
		m.v.ClosePanel()
		return
	}
	m.v.OpenPanel(p)
}

// cycleHover moves the hover through the hitboxes in outline order.
func (m *Model) cycleHover(delta int) {
	frame := m.v.Canvas().Frame()
	if frame == nil || len(frame.Hitboxes) == 0 {
		return
	}

	n := len(frame.Hitboxes)
	switch {
	case m.hover < 0 && delta > 0:
		m.hover = 0
	case m.hover < 0:
		m.hover = n - 1
	default:
		m.hover = ((m.hover+delta)%n + n) % n
	}
	m.v.Canvas().Hover(frame.Hitboxes[m.hover].Node)
}

func (m *Model) View() string {
	var body string
	switch m.v.Panel() {
	case viewer.PanelInfo:
		body = m.info
	case viewer.PanelPreferences:
		body = m.prefs
	default:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.outline, "  ", m.inspector)
	}

	status := m.status
	if m.err != nil {
		status = errorStyle.Render(m.err.Error())
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.header, body, status, m.help.View(m.keys))
}
