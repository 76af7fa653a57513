package viewer

import "errors"

var (
	ErrImagesRequired    = errors.New("rendered image set is required")
	ErrFileRequired      = errors.New("returned result of Get File API is required")
	ErrNoCanvas          = errors.New("no node has type=CANVAS")
	ErrImageRequired     = errors.New("image file URI is required")
	ErrFileNodesRequired = errors.New("returned result of Get File Nodes API is required")
	ErrNoRenderableNode  = errors.New("no renderable node is found in the data")
)

type Status int

const (
	// Neither the response nor the images were given yet.
	StatusIdle Status = iota
	// Only part of the input was given, or it cannot be shown.
	StatusSetupError
	StatusLoaded
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSetupError:
		return "setup error"
	case StatusLoaded:
		return "loaded"
	}
	return "unknown"
}

// State is the load state of a viewer. Err is set for StatusSetupError, Data
// for StatusLoaded.
type State[T any] struct {
	Status Status
	Err    error
	Data   T
}

func idle[T any]() State[T] {
	return State[T]{Status: StatusIdle}
}

func setupError[T any](err error) State[T] {
	return State[T]{Status: StatusSetupError, Err: err}
}

func loaded[T any](data T) State[T] {
	return State[T]{Status: StatusLoaded, Data: data}
}

func (s State[T]) Loaded() bool {
	return s.Status == StatusLoaded
}

// Panel is what a loaded viewer shows on top of the canvas.
type Panel int

const (
	PanelCanvas Panel = iota
	PanelInfo
	PanelPreferences
)

func (p Panel) String() string {
	switch p {
	case PanelCanvas:
		return "canvas"
	case PanelInfo:
		return "info"
	case PanelPreferences:
		return "preferences"
	}
	return "unknown"
}

// InfoItem is a labelled line of the info panel.
type InfoItem struct {
	Label   string
	Content string
}
