package render

import (
	"fmt"
	"strings"

	"github.com/relaxicons/relaxicons/pkg/naming"
)

// angularGenerator emits a standalone component. Angular components are
// imported by class, so there is no barrel line.
type angularGenerator struct{}

func (angularGenerator) Framework() Framework                   { return Angular }
func (angularGenerator) Kind() Kind                             { return KindComponent }
func (angularGenerator) Extension(bool) string                  { return ".ts" }
func (angularGenerator) ExportLine(naming.NameSet, bool) string { return "" }

var templateLiteral = strings.NewReplacer("\\", "\\\\", "`", "\\`", "${", "\\${")

func (angularGenerator) Generate(in Input) (string, error) {
	svg := fmt.Sprintf(`<svg%s [attr.width]="size" [attr.height]="size" [attr.fill]="color" [attr.stroke-width]="strokeWidth">%s</svg>`,
		staticAttrs(in.Vector, nil, "width", "height", "fill", "stroke-width"), in.Vector.Inner())

	var b strings.Builder
	b.WriteString("import { Component, Input } from '@angular/core';\n\n")
	b.WriteString("@Component({\n")
	fmt.Fprintf(&b, "  selector: '%s',\n", tagName(in.ID.Name))
	b.WriteString("  standalone: true,\n")
	fmt.Fprintf(&b, "  template: `%s`\n", templateLiteral.Replace(svg))
	b.WriteString("})\n")
	fmt.Fprintf(&b, "export class %s {\n", in.Names.Component())
	b.WriteString("  @Input() size: string | number = '1em';\n")
	b.WriteString("  @Input() color = 'currentColor';\n")
	b.WriteString("  @Input() strokeWidth?: string | number;\n")
	b.WriteString("}\n")
	return b.String(), nil
}

// laravelGenerator emits a Blade anonymous component. Blade merges the
// caller's attributes through $attributes.
type laravelGenerator struct{}

func (laravelGenerator) Framework() Framework                   { return Laravel }
func (laravelGenerator) Kind() Kind                             { return KindMarkup }
func (laravelGenerator) Extension(bool) string                  { return ".blade.php" }
func (laravelGenerator) ExportLine(naming.NameSet, bool) string { return "" }

func (laravelGenerator) Generate(in Input) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "<?php /* %s */ ?>\n", in.Names.Component())
	fmt.Fprintf(&b, "<svg%s {{ $attributes }}>\n", staticAttrs(in.Vector, nil))
	fmt.Fprintf(&b, "  %s\n", in.Vector.Inner())
	b.WriteString("</svg>\n")
	return b.String(), nil
}

// webComponentGenerator emits a custom element that renders into its shadow
// root. Props arrive as attributes.
type webComponentGenerator struct{}

func (webComponentGenerator) Framework() Framework                   { return WebComponent }
func (webComponentGenerator) Kind() Kind                             { return KindMarkup }
func (webComponentGenerator) Extension(bool) string                  { return ".js" }
func (webComponentGenerator) ExportLine(naming.NameSet, bool) string { return "" }

var singleQuoted = strings.NewReplacer("\\", "\\\\", "'", "\\'", "\n", "\\n", "\r", "")

func (webComponentGenerator) Generate(in Input) (string, error) {
	name := in.Names.Component()
	svg := fmt.Sprintf("<svg%s>%s</svg>", staticAttrs(in.Vector, nil, bound...), in.Vector.Inner())

	var b strings.Builder
	fmt.Fprintf(&b, "export class %s extends HTMLElement {\n", name)
	fmt.Fprintf(&b, "  static tag = '%s';\n", tagName(in.ID.Name))
	b.WriteString("  static get observedAttributes() { return ['size', 'color', 'stroke-width', 'class']; }\n")
	b.WriteString("  constructor() { super(); this.attachShadow({ mode: 'open' }); }\n")
	b.WriteString("  connectedCallback() { this.render(); }\n")
	b.WriteString("  attributeChangedCallback() { this.render(); }\n")
	b.WriteString("  render() {\n")
	b.WriteString("    const size = this.getAttribute('size') || '1em';\n")
	b.WriteString("    const color = this.getAttribute('color') || 'currentColor';\n")
	b.WriteString("    const strokeWidth = this.getAttribute('stroke-width') || '';\n")
	b.WriteString("    const className = this.getAttribute('class') || '';\n")
	fmt.Fprintf(&b, "    const svg = '%s';\n", singleQuoted.Replace(svg))
	b.WriteString("    this.shadowRoot.innerHTML = svg.replace('<svg', '<svg width=\"' + size + '\" height=\"' + size + '\" fill=\"' + color + '\" stroke-width=\"' + strokeWidth + '\" class=\"' + className + '\"');\n")
	b.WriteString("  }\n")
	b.WriteString("}\n")
	fmt.Fprintf(&b, "customElements.define(%s.tag, %s);\n", name, name)
	return b.String(), nil
}

// rawGenerator writes the fetched document unchanged.
type rawGenerator struct {
	framework Framework
}

func (g rawGenerator) Framework() Framework                 { return g.framework }
func (rawGenerator) Kind() Kind                             { return KindRaw }
func (rawGenerator) Extension(bool) string                  { return ".svg" }
func (rawGenerator) ExportLine(naming.NameSet, bool) string { return "" }

func (rawGenerator) Generate(in Input) (string, error) {
	if in.Raw != "" {
		return in.Raw, nil
	}
	return in.Vector.Markup(), nil
}
