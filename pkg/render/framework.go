package render

import (
	"slices"
	"strings"

	"github.com/relaxicons/relaxicons/pkg/errors"
)

// Framework identifies an output variant.
type Framework string

// Supported frameworks.
const (
	React        Framework = "react"
	ReactServer  Framework = "react-server-component"
	Vue          Framework = "vue"
	Angular      Framework = "angular"
	Laravel      Framework = "laravel"
	Svelte       Framework = "svelte"
	Solid        Framework = "solid"
	WebComponent Framework = "web-component"
	Raw          Framework = "raw"
	Unknown      Framework = "unknown"
)

// Kind classifies what a generator produces. It decides the file name and
// whether a barrel entry applies.
type Kind int

const (
	KindRaw       Kind = iota // the SVG document itself
	KindComponent             // <Pascal>Icon.<ext>, may have a barrel line
	KindMarkup                // <kebab>.<ext>
)

func (k Kind) String() string {
	switch k {
	case KindComponent:
		return "component"
	case KindMarkup:
		return "markup"
	default:
		return "raw"
	}
}

var frameworks = []Framework{React, ReactServer, Vue, Angular, Laravel, Svelte, Solid, WebComponent, Raw}

// aliases maps names accepted in configs and flags onto frameworks.
var aliases = map[string]Framework{
	"":               Unknown,
	"next":           ReactServer,
	"next-rsc":       ReactServer,
	"rsc":            ReactServer,
	"react-rsc":      ReactServer,
	"vite-react":     React,
	"vite-vue":       Vue,
	"vite-svelte":    Svelte,
	"webc":           WebComponent,
	"web-components": WebComponent,
	"svg":            Raw,
}

// Frameworks returns every selectable framework in display order.
func Frameworks() []Framework {
	out := make([]Framework, len(frameworks))
	copy(out, frameworks)
	return out
}

// ParseFramework resolves a framework name or alias, case-insensitively.
// Unrecognized names fail with CONFIG_INVALID.
func ParseFramework(s string) (Framework, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if fw, ok := aliases[name]; ok {
		return fw, nil
	}
	fw := Framework(name)
	if fw == Unknown || fw.Valid() {
		return fw, nil
	}
	return Unknown, errors.New(errors.ErrCodeConfigInvalid,
		"unknown framework %q (available: %s)", s, strings.Join(names(), ", "))
}

// Valid reports whether f is one of the selectable frameworks.
func (f Framework) Valid() bool {
	return slices.Contains(frameworks, f)
}

func (f Framework) String() string {
	return string(f)
}

func names() []string {
	out := make([]string, len(frameworks))
	for i, fw := range frameworks {
		out[i] = string(fw)
	}
	return out
}
