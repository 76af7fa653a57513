package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	Fit        key.Binding
	NextNode   key.Binding
	PrevNode   key.Binding
	Select     key.Binding
	Back       key.Binding
	Info       key.Binding
	Prefs      key.Binding
	Canvas     key.Binding
	PrevCanvas key.Binding
	NextCanvas key.Binding
	Unit       key.Binding
	Notation   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "pan up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "pan down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "pan left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "pan right"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("=", "+"),
		key.WithHelp("=", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "zoom out"),
	),
	Fit: key.NewBinding(
		key.WithKeys("0"),
		key.WithHelp("0", "fit"),
	),
	NextNode: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next node"),
	),
	PrevNode: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous node"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Info: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "info"),
	),
	Prefs: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "preferences"),
	),
	Canvas: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "canvas"),
	),
	PrevCanvas: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "previous canvas"),
	),
	NextCanvas: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next canvas"),
	),
	Unit: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "px/rem"),
	),
	Notation: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "color notation"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextNode, k.Select, k.Info, k.Prefs, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.ZoomIn, k.ZoomOut, k.Fit},
		{k.NextNode, k.PrevNode, k.Select, k.Back},
		{k.Info, k.Prefs, k.Canvas, k.PrevCanvas, k.NextCanvas},
		{k.Unit, k.Notation, k.Help, k.Quit},
	}
}
