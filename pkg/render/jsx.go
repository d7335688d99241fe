package render

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// JSXName returns the JSX spelling of an SVG attribute name. aria-* and
// data-* attributes keep their hyphens.
//
//	class        -> className
//	stroke-width -> strokeWidth
//	xlink:href   -> xlinkHref
func JSXName(name string) string {
	if name == "class" {
		return "className"
	}
	if strings.HasPrefix(name, "aria-") || strings.HasPrefix(name, "data-") {
		return name
	}
	if ns, local, ok := strings.Cut(name, ":"); ok {
		name = ns + upperFirst(local)
	}

	var b strings.Builder
	b.Grow(len(name))
	upper := false
	for _, r := range name {
		switch {
		case r == '-':
			upper = true
		case upper && unicode.IsLower(r):
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		default:
			if upper {
				b.WriteByte('-')
				upper = false
			}
			b.WriteRune(r)
		}
	}
	if upper {
		b.WriteByte('-')
	}
	return b.String()
}

func upperFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}
