package cssgen

import (
	"fmt"
	"strings"

	"github.com/delaneyj/figspec/geometry"
	"github.com/delaneyj/figspec/preferences"
)

func SerializeValue(v Value, p preferences.Preferences) string {
	switch v := v.(type) {
	case Color:
		return SerializeValue(v.Value, p)
	case Comment:
		return "/* " + v.Text + " */"
	case FunctionCall:
		return v.Name + "(" + SerializeValue(v.Args, p) + ")"
	case Keyword:
		return v.Ident
	case List:
		parts := make([]string, 0, 1+len(v.Tail))
		parts = append(parts, SerializeValue(v.Head, p))
		for _, t := range v.Tail {
			parts = append(parts, SerializeValue(t, p))
		}
		return strings.Join(parts, v.Separator)
	case Literal:
		return v.Text
	case Number:
		places := p.DecimalPlaces
		if v.Precision != nil {
			places = *v.Precision
		}
		return geometry.Format(v.Value, places) + v.Unit
	case String:
		return `"` + strings.ReplaceAll(v.Value, `"`, `\"`) + `"`
	case Unknown:
		return v.Text
	case nil:
		return ""
	}
	panic(fmt.Sprintf("cssgen: unknown value %T", v))
}

func SerializeStyle(s Style, p preferences.Preferences) string {
	return s.Property + ": " + SerializeValue(s.Value, p) + ";"
}

// Serialize prints one declaration per line.
func Serialize(styles []Style, p preferences.Preferences) string {
	sb := strings.Builder{}
	for i, s := range styles {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(SerializeStyle(s, p))
	}
	return sb.String()
}

// Swatches returns the serialized colors found in v, outermost first.
func Swatches(v Value) []string {
	var out []string
	var visit func(Value)
	visit = func(v Value) {
		switch v := v.(type) {
		case Color:
			out = append(out, v.Color)
			visit(v.Value)
		case FunctionCall:
			visit(v.Args)
		case List:
			visit(v.Head)
			for _, t := range v.Tail {
				visit(t)
			}
		}
	}
	visit(v)
	return out
}
