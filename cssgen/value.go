// Package cssgen turns design nodes into CSS declarations.
//
// Declarations are built as a small value tree first and serialized last, so
// the same node can be printed under different preferences (length unit,
// color notation, decimal places) without regenerating it.
package cssgen

// Value is one of the value kinds below.
type Value interface {
	isValue()
}

// Color wraps a color value together with its serialized form, which a
// renderer can use to draw a preview swatch.
type Color struct {
	Color string
	Value Value
}

// Number is printed rounded to Precision decimal places, or to the
// preferred decimal places when Precision is nil.
type Number struct {
	Value     float64
	Precision *int
	Unit      string
}

// String is printed double-quoted.
type String struct {
	Value string
}

type Keyword struct {
	Ident string
}

type Literal struct {
	Text string
}

type Unknown struct {
	Text string
}

type Comment struct {
	Text string
}

type FunctionCall struct {
	Name string
	Args Value
}

// List is a non-empty sequence joined by Separator.
type List struct {
	Head      Value
	Tail      []Value
	Separator string
}

func (Color) isValue()        {}
func (Number) isValue()       {}
func (String) isValue()       {}
func (Keyword) isValue()      {}
func (Literal) isValue()      {}
func (Unknown) isValue()      {}
func (Comment) isValue()      {}
func (FunctionCall) isValue() {}
func (List) isValue()         {}

// Style is a single declaration.
type Style struct {
	Property string
	Value    Value
}

// Precision is a helper for Number.Precision.
func Precision(n int) *int {
	return &n
}

func list(sep string, head Value, tail ...Value) List {
	return List{Head: head, Tail: tail, Separator: sep}
}
