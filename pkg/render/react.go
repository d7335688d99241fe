package render

import (
	"fmt"
	"strings"

	"github.com/relaxicons/relaxicons/pkg/naming"
)

// reactGenerator emits a function component. The server flavor drops the
// React default import, which server components do not need.
type reactGenerator struct {
	framework Framework
	server    bool
}

func (g reactGenerator) Framework() Framework { return g.framework }
func (reactGenerator) Kind() Kind             { return KindComponent }

func (reactGenerator) Extension(typescript bool) string {
	return scriptExt(typescript, "sx")
}

func (reactGenerator) ExportLine(names naming.NameSet, _ bool) string {
	return starExport(names.Component())
}

func (g reactGenerator) Generate(in Input) (string, error) {
	name := in.Names.Component()
	var b strings.Builder

	switch {
	case in.TypeScript && g.server:
		b.WriteString("import type { SVGProps } from 'react';\n\n")
		b.WriteString("export type IconProps = { size?: string | number; color?: string; strokeWidth?: number | string; className?: string } & SVGProps<SVGSVGElement>;\n\n")
	case in.TypeScript:
		b.WriteString("import React from 'react';\n\n")
		b.WriteString("export type IconProps = { size?: string | number; color?: string; strokeWidth?: number | string; className?: string } & React.SVGProps<SVGSVGElement>;\n\n")
	case !g.server:
		b.WriteString("import React from 'react';\n\n")
	}

	params := "{ size = '1em', color = 'currentColor', strokeWidth, className = '', ...props }"
	if in.TypeScript {
		params += ": IconProps"
	}

	fmt.Fprintf(&b, "export function %s(%s) {\n", name, params)
	b.WriteString("  return (\n")
	fmt.Fprintf(&b, "    <svg%s width={size} height={size} fill={color} strokeWidth={strokeWidth} className={className} {...props}>\n",
		staticAttrs(in.Vector, JSXName, bound...))
	fmt.Fprintf(&b, "      %s\n", in.Vector.RenderInner(JSXName))
	b.WriteString("    </svg>\n")
	b.WriteString("  );\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "export default %s;\n", name)
	return b.String(), nil
}
