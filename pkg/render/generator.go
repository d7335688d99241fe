package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/relaxicons/relaxicons/pkg/icon"
	"github.com/relaxicons/relaxicons/pkg/naming"
	"github.com/relaxicons/relaxicons/pkg/vector"
)

// Input is everything a generator needs for one icon.
type Input struct {
	ID         icon.ID
	Names      naming.NameSet
	Vector     vector.Vector
	Raw        string // source document as fetched
	TypeScript bool
}

// NewInput derives the names for id and bundles the icon for generation.
func NewInput(id icon.ID, v vector.Vector, raw string, typescript bool) Input {
	return Input{
		ID:         id,
		Names:      naming.Derive(id.Name),
		Vector:     v,
		Raw:        raw,
		TypeScript: typescript,
	}
}

// Generator produces source code for one framework.
type Generator interface {
	Framework() Framework
	Kind() Kind
	// Extension returns the file extension including the leading dot.
	Extension(typescript bool) string
	// ExportLine returns the barrel line for a component, or "" when the
	// framework has no barrel.
	ExportLine(names naming.NameSet, typescript bool) string
	Generate(in Input) (string, error)
}

var generators = map[Framework]Generator{
	React:        reactGenerator{framework: React},
	ReactServer:  reactGenerator{framework: ReactServer, server: true},
	Vue:          vueGenerator{},
	Angular:      angularGenerator{},
	Laravel:      laravelGenerator{},
	Svelte:       svelteGenerator{},
	Solid:        solidGenerator{},
	WebComponent: webComponentGenerator{},
	Raw:          rawGenerator{framework: Raw},
	Unknown:      rawGenerator{framework: Unknown},
}

// Lookup returns the built-in generator for fw. Frameworks without one get
// the raw generator.
func Lookup(fw Framework) Generator {
	if g, ok := generators[fw]; ok {
		return g
	}
	return generators[Unknown]
}

// FileName returns the file a generator writes for names.
func FileName(g Generator, names naming.NameSet, typescript bool) string {
	ext := g.Extension(typescript)
	switch g.Kind() {
	case KindComponent:
		return names.Component() + ext
	case KindMarkup:
		return names.Kebab + ext
	default:
		return names.Kebab + ".svg"
	}
}

// scriptExt picks between the TypeScript and JavaScript form of an
// extension ("x" selects .tsx/.jsx).
func scriptExt(typescript bool, suffix string) string {
	if typescript {
		return ".t" + suffix
	}
	return ".j" + suffix
}

var tagUnsafe = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// tagName is the custom element or selector name for an icon base name.
func tagName(base string) string {
	return "icon-" + strings.ToLower(tagUnsafe.ReplaceAllString(base, "-"))
}

func reExport(component, target string) string {
	return fmt.Sprintf("export { default as %s } from './%s';", component, target)
}

func starExport(component string) string {
	return fmt.Sprintf("export * from './%s';", component)
}
