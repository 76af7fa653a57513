package viewer

import (
	"github.com/delaneyj/figspec/cssgen"
	"github.com/delaneyj/figspec/figma"
	"github.com/delaneyj/figspec/preferences"
	"github.com/delaneyj/figspec/reactive"
)

// base is the part shared by both viewers: preferences, selection, panels,
// the frame canvas and the inspector.
type base struct {
	rt      *reactive.Runtime
	dispose func()
	// reports whether the viewer is in StatusLoaded, without subscribing
	isLoaded func() bool

	link      *reactive.Signal[string]
	given     preferences.Preferences
	prefs     *reactive.Signal[preferences.Preferences]
	selected  *reactive.Signal[*figma.Node]
	panel     *reactive.Signal[Panel]
	inspector *reactive.Signal[string]
	canvas    *Canvas

	// OnNodeSelect is called whenever the selection changes after the
	// viewer was loaded, with nil for a cleared selection.
	OnNodeSelect func(*figma.Node)
	// OnPreferencesUpdate is called when the preferences differ from the
	// ones last given with SetPreferences.
	OnPreferencesUpdate func(preferences.Preferences)
}

// init runs inside the viewer's root.
func (b *base) init(rt *reactive.Runtime) {
	b.rt = rt
	b.link = reactive.NewSignal(rt, "")
	b.given = preferences.Default()
	b.prefs = reactive.NewSignal(rt, b.given)
	b.selected = reactive.NewSignal[*figma.Node](rt, nil)
	b.panel = reactive.NewSignal(rt, PanelCanvas)
	b.canvas = NewCanvas(rt, b.prefs, b.selected)

	b.inspector = reactive.Compute(rt, func() string {
		n := b.selected.Get()
		p := b.prefs.Get()
		if n == nil {
			return ""
		}
		return cssgen.Serialize(cssgen.FromNode(n, p), p)
	})
}

// watchPreferences must run after the viewer specific computations so that
// the first notification sees a fully built viewer.
func (b *base) watchPreferences() {
	reactive.Effect(b.rt, func() reactive.Cleanup {
		p := b.prefs.Get()
		if preferences.Equal(b.given, p) {
			return nil
		}
		tracer().Debugf("preferences updated")
		if b.OnPreferencesUpdate != nil {
			b.OnPreferencesUpdate(p)
		}
		return nil
	})
}

// watchSelection notifies OnNodeSelect of every selection change but the
// initial one. It is created once per load.
func (b *base) watchSelection() {
	first := true
	reactive.Effect(b.rt, func() reactive.Cleanup {
		n := b.selected.Get()
		if first {
			first = false
			return nil
		}
		if b.OnNodeSelect != nil {
			b.OnNodeSelect(n)
		}
		return nil
	})
}

// Close stops every computation of the viewer. Setters keep working but
// nothing is derived from them anymore.
func (b *base) Close() {
	b.dispose()
}

func (b *base) Runtime() *reactive.Runtime {
	return b.rt
}

func (b *base) Link() string {
	return b.link.Get()
}

func (b *base) SetLink(link string) {
	b.link.Set(link)
}

func (b *base) Preferences() preferences.Preferences {
	return b.prefs.Get()
}

// SetPreferences replaces the preferences from the outside. It does not
// trigger OnPreferencesUpdate.
func (b *base) SetPreferences(p preferences.Preferences) {
	b.given = p
	b.prefs.Set(p)
}

// UpdatePreferences changes the preferences from inside the viewer, the way
// the preferences panel does.
func (b *base) UpdatePreferences(fn func(preferences.Preferences) preferences.Preferences) {
	b.prefs.Update(fn)
}

func (b *base) Selected() *figma.Node {
	return b.selected.Get()
}

// Select changes the selected node, nil to deselect.
func (b *base) Select(n *figma.Node) {
	b.selected.Set(n)
}

func (b *base) Panel() Panel {
	return b.panel.Get()
}

// OpenPanel switches panels. It does nothing until the viewer is loaded.
func (b *base) OpenPanel(p Panel) {
	if !b.isLoaded() {
		return
	}
	b.panel.Set(p)
}

// ClosePanel goes back to the canvas.
func (b *base) ClosePanel() {
	b.panel.Set(PanelCanvas)
}

// InspectorCSS is the generated CSS of the selected node, empty without a
// selection.
func (b *base) InspectorCSS() string {
	return b.inspector.Get()
}

func (b *base) Canvas() *Canvas {
	return b.canvas
}

// resetLoaded starts a freshly loaded state on the canvas panel without a
// selection.
func (b *base) resetLoaded() {
	b.panel.Set(PanelCanvas)
	b.selected.Set(nil)
}
