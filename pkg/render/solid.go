package render

import (
	"fmt"
	"strings"

	"github.com/relaxicons/relaxicons/pkg/naming"
)

type solidGenerator struct{}

func (solidGenerator) Framework() Framework { return Solid }
func (solidGenerator) Kind() Kind           { return KindComponent }

func (solidGenerator) Extension(typescript bool) string {
	return scriptExt(typescript, "sx")
}

func (solidGenerator) ExportLine(names naming.NameSet, _ bool) string {
	return starExport(names.Component())
}

func (solidGenerator) Generate(in Input) (string, error) {
	name := in.Names.Component()
	var b strings.Builder

	param := "allProps"
	if in.TypeScript {
		b.WriteString("import { splitProps, type JSX } from 'solid-js';\n\n")
		b.WriteString("export type IconProps = { size?: string | number; color?: string; strokeWidth?: string | number; class?: string } & JSX.SvgSVGAttributes<SVGSVGElement>;\n\n")
		param += ": IconProps"
	} else {
		b.WriteString("import { splitProps } from 'solid-js';\n\n")
	}

	fmt.Fprintf(&b, "export function %s(%s) {\n", name, param)
	b.WriteString("  const [props, rest] = splitProps(allProps, ['size', 'color', 'strokeWidth', 'class']);\n")
	b.WriteString("  const size = () => props.size || '1em';\n")
	b.WriteString("  const color = () => props.color || 'currentColor';\n")
	fmt.Fprintf(&b, "  return (<svg%s width={size()} height={size()} fill={color()} stroke-width={props.strokeWidth} class={props.class} {...rest}>%s</svg>);\n",
		staticAttrs(in.Vector, nil, bound...), in.Vector.Inner())
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "export default %s;\n", name)
	return b.String(), nil
}
