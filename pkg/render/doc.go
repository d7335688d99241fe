// Package render turns a canonical icon into framework source code.
//
// # Overview
//
// Each supported target ([Framework]) has one [Generator]. A generator knows
// its output [Kind], its file extension and the export line it contributes
// to a barrel file, and produces the source text for one icon:
//
//	in := render.NewInput(id, vec, raw, true)
//	code, err := render.Lookup(render.React).Generate(in)
//
// All component generators share the same prop surface: size (default
// '1em'), color (default 'currentColor'), an optional strokeWidth and a
// class passthrough. Any other property is forwarded to the root <svg>.
//
// # JSX
//
// The react and react-server-component generators rename attributes to their
// JSX spelling with [JSXName] (class becomes className, stroke-width becomes
// strokeWidth, xlink:href becomes xlinkHref). The other generators keep the
// SVG spelling.
//
// # Overrides
//
// A [Renderer] consults an [Overrides] source before the built-in generator.
// [DirOverrides] loads "<framework>.hbs" (Handlebars) or "<framework>.tmpl"
// and "<framework>.gotmpl" (text/template) from a directory. Templates
// receive the [Context] map:
//
//	iconId, baseName, pascal, kebab, typescript
//	svg.attrs, svg.attrString, svg.children
//
// A template that fails to parse or execute yields TEMPLATE_INVALID. No
// template for a framework falls through to the built-in generator.
package render
