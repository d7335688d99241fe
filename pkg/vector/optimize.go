package vector

import (
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
)

const svgMediaType = "image/svg+xml"

// OptimizeOptions tunes the minifier pass.
type OptimizeOptions struct {
	// Precision is the number of significant digits kept in numbers and path
	// data. Zero keeps the original precision.
	Precision int
	// KeepComments preserves <!-- --> comments.
	KeepComments bool
}

// Optimize minifies raw. The minifier is best effort: on any failure raw is
// returned unchanged.
func Optimize(raw string, opts OptimizeOptions) string {
	m := minify.New()
	m.Add(svgMediaType, &svg.Minifier{
		Precision:    opts.Precision,
		KeepComments: opts.KeepComments,
	})

	out, err := m.String(svgMediaType, raw)
	if err != nil || out == "" {
		return raw
	}
	return out
}
