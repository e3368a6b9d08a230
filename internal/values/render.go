package values

import (
	"strings"
)

// Pretty renders a value as indented multi-line text for preview panes.
func Pretty(v Value) string {
	var b strings.Builder
	pretty(&b, v, 0)
	return b.String()
}

func pretty(b *strings.Builder, v Value, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v.Kind {
	case KindRecord:
		if v.Record.Len() == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{\n")
		for _, key := range v.Record.Keys {
			b.WriteString(indent + "  " + key + ": ")
			pretty(b, v.Record.Fields[key], depth+1)
			b.WriteString("\n")
		}
		b.WriteString(indent + "}")
	case KindList:
		if len(v.Items) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		for _, item := range v.Items {
			b.WriteString(indent + "  ")
			pretty(b, item, depth+1)
			b.WriteString("\n")
		}
		b.WriteString(indent + "]")
	case KindString:
		b.WriteString(v.Str)
	default:
		b.WriteString(v.inline())
	}
}
