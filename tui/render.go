package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/delaneyj/figspec/geometry"
	"github.com/delaneyj/figspec/reactive"
	"github.com/delaneyj/figspec/viewer"
)

var (
	primaryColor = lipgloss.Color("#18a0fb") // Figma blue
	hoverColor   = lipgloss.Color("#f24e1e")
	mutedColor   = lipgloss.Color("#94a3b8")
	errorColor   = lipgloss.Color("#ef4444")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	hoverStyle = lipgloss.NewStyle().
			Foreground(hoverColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(20)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)
)

func (m *Model) resetHover() reactive.Cleanup {
	m.v.Canvas().Frame()
	m.hover = -1
	return nil
}

func (m *Model) renderHeader() reactive.Cleanup {
	var title string
	switch v := m.v.(type) {
	case *viewer.FileViewer:
		s := v.State()
		switch s.Status {
		case viewer.StatusIdle:
			title = mutedStyle.Render("waiting for a file")
		case viewer.StatusSetupError:
			title = errorStyle.Render(s.Err.Error())
		default:
			id := v.SelectedCanvasID()
			for i, c := range s.Data.Canvases {
				if c.ID == id {
					title = fmt.Sprintf("%s · %s (%d/%d)", s.Data.Response.Name, c.Name, i+1, len(s.Data.Canvases))
				}
			}
		}
	case *viewer.FrameViewer:
		s := v.State()
		switch s.Status {
		case viewer.StatusIdle:
			title = mutedStyle.Render("waiting for a frame")
		case viewer.StatusSetupError:
			title = errorStyle.Render(s.Err.Error())
		default:
			title = fmt.Sprintf("%s · %s", s.Data.Response.Name, s.Data.Node.Name)
		}
	}
	m.header = titleStyle.Render(title)
	return nil
}

func (m *Model) renderOutline() reactive.Cleanup {
	c := m.v.Canvas()
	frame := c.Frame()
	if frame == nil {
		m.outline = mutedStyle.Render("nothing to show")
		return nil
	}
	hovered := c.Hovered()
	selected := m.v.Selected()
	places := m.v.Preferences().DecimalPlaces

	var sb strings.Builder
	for i, h := range frame.Hitboxes {
		if i > 0 {
			sb.WriteByte('\n')
		}
		line := fmt.Sprintf("%s  %s × %s", h.Node.Name,
			geometry.Format(h.Box.Width, places), geometry.Format(h.Box.Height, places))
		switch {
		case h.Node == selected:
			sb.WriteString("● " + selectedStyle.Render(line))
		case h.Node == hovered:
			sb.WriteString("› " + hoverStyle.Render(line))
		case !h.Node.IsVisible():
			sb.WriteString("  " + mutedStyle.Render(line))
		default:
			sb.WriteString("  " + line)
		}
	}

	if o := c.Overlay(); len(o.DistanceTooltips) > 0 {
		texts := make([]string, len(o.DistanceTooltips))
		for i, tip := range o.DistanceTooltips {
			texts[i] = tip.Text
		}
		sb.WriteString("\n\n" + mutedStyle.Render("distances: "+strings.Join(texts, " ")))
	}
	m.outline = sb.String()
	return nil
}

func (m *Model) renderInspector() reactive.Cleanup {
	css := m.v.InspectorCSS()
	if css == "" {
		m.inspector = mutedStyle.Render("select a node with tab and enter")
		return nil
	}
	m.inspector = boxStyle.Render(css)
	return nil
}

func (m *Model) renderInfo() reactive.Cleanup {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Info"))
	for _, item := range m.v.Info() {
		sb.WriteString("\n" + labelStyle.Render(item.Label) + item.Content)
	}
	m.info = sb.String()
	return nil
}

func (m *Model) renderPreferences() reactive.Cleanup {
	p := m.v.Preferences()
	rows := [][2]string{
		{"Decimal places", fmt.Sprint(p.DecimalPlaces)},
		{"Length unit", string(p.LengthUnit) + mutedStyle.Render("  (u)")},
		{"Root font size", geometry.Format(p.RootFontSizeInPx, 2) + "px"},
		{"Color notation", string(p.CSSColorNotation) + mutedStyle.Render("  (n)")},
		{"Color preview", fmt.Sprint(p.EnableColorPreview)},
		{"Pan speed", geometry.Format(p.ViewportPanSpeed, 0)},
		{"Zoom speed", geometry.Format(p.ViewportZoomSpeed, 0)},
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Preferences"))
	for _, r := range rows {
		sb.WriteString("\n" + labelStyle.Render(r[0]) + r[1])
	}
	m.prefs = sb.String()
	return nil
}

func (m *Model) renderStatus() reactive.Cleanup {
	t := m.v.Canvas().Transform()
	places := m.v.Preferences().DecimalPlaces
	m.status = mutedStyle.Render(fmt.Sprintf("zoom %s%%  x %s  y %s",
		geometry.Format(t.Scale*100, 0), geometry.Format(t.X, places), geometry.Format(t.Y, places)))
	return nil
}
