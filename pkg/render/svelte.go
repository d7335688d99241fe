package render

import (
	"fmt"
	"strings"

	"github.com/relaxicons/relaxicons/pkg/naming"
)

type svelteGenerator struct{}

func (svelteGenerator) Framework() Framework  { return Svelte }
func (svelteGenerator) Kind() Kind            { return KindComponent }
func (svelteGenerator) Extension(bool) string { return ".svelte" }

func (svelteGenerator) ExportLine(names naming.NameSet, _ bool) string {
	return reExport(names.Component(), names.Component()+".svelte")
}

func (svelteGenerator) Generate(in Input) (string, error) {
	var b strings.Builder
	if in.TypeScript {
		b.WriteString("<script lang=\"ts\">\n")
		b.WriteString("  export let size: string | number = '1em';\n")
		b.WriteString("  export let color = 'currentColor';\n")
		b.WriteString("  export let strokeWidth: string | number | undefined = undefined;\n")
		b.WriteString("  export let className = '';\n")
	} else {
		b.WriteString("<script>\n")
		b.WriteString("  export let size = '1em';\n")
		b.WriteString("  export let color = 'currentColor';\n")
		b.WriteString("  export let strokeWidth = undefined;\n")
		b.WriteString("  export let className = '';\n")
	}
	b.WriteString("</script>\n\n")
	fmt.Fprintf(&b, "<svg%s width={size} height={size} fill={color} stroke-width={strokeWidth} class={className} {...$$restProps}>%s</svg>\n",
		staticAttrs(in.Vector, nil, bound...), in.Vector.Inner())
	return b.String(), nil
}
