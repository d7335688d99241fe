// Package vector normalizes raw SVG documents into the canonical form every
// generator consumes.
//
// [Transform] parses a document, picks its first <svg> element and rewrites
// the tree so generated components size and color through props:
//
//   - width and height are removed from the root
//   - shape leaves (path, circle, rect, polygon, polyline, ellipse) without a
//     fill attribute get fill="currentColor"; an explicit fill="none" stays
//   - elements with stroke-width but no stroke get stroke="currentColor"
//   - data-name and data-style are stripped everywhere
//
// The result is a [Vector]: the root's remaining attributes in source order
// plus its serialized inner markup. A Vector is immutable.
//
// # Parsing
//
// Documents are parsed with golang.org/x/net/html. Its foreign-content rules
// keep SVG's camelCase names (viewBox, linearGradient) intact, which a plain
// HTML parse would lowercase.
package vector

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/relaxicons/relaxicons/pkg/errors"
)

// CurrentColor is the paint value injected where a color was left implicit.
const CurrentColor = "currentColor"

// shapes are the leaf elements that paint with fill.
var shapes = map[string]bool{
	"path":     true,
	"circle":   true,
	"rect":     true,
	"polygon":  true,
	"polyline": true,
	"ellipse":  true,
}

// stripped attributes are removed from every element, root included.
var stripped = map[string]bool{
	"data-name":  true,
	"data-style": true,
}

// Attr is one attribute of the root element.
type Attr struct {
	Name  string
	Value string
}

// Vector is the canonical representation of an icon: root attributes and
// inner markup.
type Vector struct {
	attrs []Attr
	root  *html.Node
}

// Transform parses raw and returns its canonical form. It fails with
// PARSE_ERROR when the document has no <svg> element.
func Transform(raw string) (Vector, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(raw), context)
	if err != nil {
		return Vector{}, errors.Wrap(errors.ErrCodeParse, err, "parse vector document")
	}

	var root *html.Node
	for _, n := range nodes {
		if root = findSVG(n); root != nil {
			break
		}
	}
	if root == nil {
		return Vector{}, errors.New(errors.ErrCodeParse, "no <svg> root element found")
	}

	root.Attr = filterAttrs(root.Attr, func(name string) bool {
		return name != "width" && name != "height" && !stripped[name]
	})
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		normalize(c)
	}

	attrs := make([]Attr, 0, len(root.Attr))
	for _, a := range root.Attr {
		attrs = append(attrs, Attr{Name: attrName(a), Value: a.Val})
	}
	return Vector{attrs: attrs, root: root}, nil
}

// Attrs returns a copy of the root attributes in source order.
func (v Vector) Attrs() []Attr {
	out := make([]Attr, len(v.attrs))
	copy(out, v.attrs)
	return out
}

// Attr returns the value of the named root attribute.
func (v Vector) Attr(name string) (string, bool) {
	for _, a := range v.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrString renders the root attributes as name="value" pairs separated by
// single spaces.
func (v Vector) AttrString() string {
	return v.RenderAttrs(nil)
}

// RenderAttrs is AttrString with every attribute name passed through rename.
// A nil rename keeps names as they are.
func (v Vector) RenderAttrs(rename func(string) string) string {
	var b strings.Builder
	for i, a := range v.attrs {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeAttr(&b, a.Name, a.Value, rename)
	}
	return b.String()
}

// Inner returns the serialized children of the root element.
func (v Vector) Inner() string {
	return v.RenderInner(nil)
}

// RenderInner serializes the children of the root with every attribute name
// passed through rename. A nil rename keeps names as they are.
func (v Vector) RenderInner(rename func(string) string) string {
	if v.root == nil {
		return ""
	}
	var b strings.Builder
	for c := v.root.FirstChild; c != nil; c = c.NextSibling {
		render(&b, c, rename)
	}
	return b.String()
}

// Markup renders the normalized standalone document.
func (v Vector) Markup() string {
	var b strings.Builder
	b.WriteString("<svg")
	if attrs := v.AttrString(); attrs != "" {
		b.WriteByte(' ')
		b.WriteString(attrs)
	}
	b.WriteByte('>')
	b.WriteString(v.Inner())
	b.WriteString("</svg>")
	return b.String()
}

func findSVG(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "svg" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findSVG(c); found != nil {
			return found
		}
	}
	return nil
}

func normalize(n *html.Node) {
	if n.Type != html.ElementNode {
		return
	}

	n.Attr = filterAttrs(n.Attr, func(name string) bool { return !stripped[name] })
	if hasAttr(n, "stroke-width") && !hasAttr(n, "stroke") {
		n.Attr = append(n.Attr, html.Attribute{Key: "stroke", Val: CurrentColor})
	}
	if shapes[n.Data] && !hasAttr(n, "fill") {
		n.Attr = append(n.Attr, html.Attribute{Key: "fill", Val: CurrentColor})
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		normalize(c)
	}
}

func hasAttr(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if attrName(a) == name {
			return true
		}
	}
	return false
}

func filterAttrs(attrs []html.Attribute, keep func(string) bool) []html.Attribute {
	out := attrs[:0]
	for _, a := range attrs {
		if keep(attrName(a)) {
			out = append(out, a)
		}
	}
	return out
}

// attrName restores the qualified name of namespaced attributes such as
// xlink:href, which the parser splits into namespace and key.
func attrName(a html.Attribute) string {
	if a.Namespace != "" {
		return a.Namespace + ":" + a.Key
	}
	return a.Key
}
