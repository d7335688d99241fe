package render

import (
	"fmt"
	"strings"

	"github.com/relaxicons/relaxicons/pkg/naming"
)

type vueGenerator struct{}

func (vueGenerator) Framework() Framework { return Vue }
func (vueGenerator) Kind() Kind           { return KindComponent }
func (vueGenerator) Extension(bool) string {
	return ".vue"
}

func (vueGenerator) ExportLine(names naming.NameSet, _ bool) string {
	return reExport(names.Component(), names.Component()+".vue")
}

func (vueGenerator) Generate(in Input) (string, error) {
	var b strings.Builder
	b.WriteString("<template>\n")
	fmt.Fprintf(&b, "  <svg%s :width=\"$attrs.size || '1em'\" :height=\"$attrs.size || '1em'\" :fill=\"$attrs.color || 'currentColor'\" :stroke-width=\"$attrs.strokeWidth\" :class=\"$attrs.class || $attrs.className\" v-bind=\"$attrs\">\n",
		staticAttrs(in.Vector, nil, bound...))
	fmt.Fprintf(&b, "    %s\n", in.Vector.Inner())
	b.WriteString("  </svg>\n")
	b.WriteString("</template>\n\n")

	if in.TypeScript {
		b.WriteString("<script lang=\"ts\">\n")
		b.WriteString("import { defineComponent } from 'vue';\n\n")
		fmt.Fprintf(&b, "export default defineComponent({\n  name: '%s'\n});\n", in.Names.Component())
	} else {
		b.WriteString("<script>\n")
		fmt.Fprintf(&b, "export default {\n  name: '%s'\n};\n", in.Names.Component())
	}
	b.WriteString("</script>\n")
	return b.String(), nil
}
