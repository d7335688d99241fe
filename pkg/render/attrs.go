package render

import (
	"slices"
	"strings"

	"github.com/relaxicons/relaxicons/pkg/vector"
)

// bound lists the root attributes component generators set from props.
// Static copies are dropped so no element carries the same attribute twice.
var bound = []string{"width", "height", "fill", "stroke-width", "class"}

// staticAttrs renders the root attributes of v except those in skip, each
// name passed through rename. The result starts with a space unless empty.
func staticAttrs(v vector.Vector, rename func(string) string, skip ...string) string {
	var b strings.Builder
	for _, a := range v.Attrs() {
		if slices.Contains(skip, a.Name) {
			continue
		}
		name := a.Name
		if rename != nil {
			name = rename(name)
		}
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(vector.EscapeAttr(a.Value))
		b.WriteByte('"')
	}
	return b.String()
}

// attrMap returns the root attributes of v keyed by name.
func attrMap(v vector.Vector) map[string]string {
	out := make(map[string]string)
	for _, a := range v.Attrs() {
		out[a.Name] = a.Value
	}
	return out
}
