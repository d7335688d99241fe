package render

import (
	"github.com/charmbracelet/log"

	"github.com/relaxicons/relaxicons/pkg/errors"
)

// Renderer generates icon source, preferring user overrides over the
// built-in generators.
type Renderer struct {
	overrides Overrides
	logger    *log.Logger
}

// NewRenderer creates a Renderer. overrides may be nil.
func NewRenderer(overrides Overrides, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{overrides: overrides, logger: logger}
}

// Generator returns the built-in generator for fw.
func (r *Renderer) Generator(fw Framework) Generator {
	return Lookup(fw)
}

// Render produces the source for in. Raw output never goes through
// overrides.
func (r *Renderer) Render(fw Framework, in Input) (string, error) {
	gen := r.Generator(fw)
	if gen.Kind() == KindRaw || r.overrides == nil {
		return gen.Generate(in)
	}

	fn, ok, err := r.overrides.Override(fw)
	if err != nil {
		return "", err
	}
	if !ok {
		return gen.Generate(in)
	}

	r.logger.Debug("using override template", "framework", fw, "icon", in.ID)
	out, err := fn(NewContext(in))
	if err != nil && errors.GetCode(err) == "" {
		return "", errors.Wrap(errors.ErrCodeTemplateInvalid, err, "override for %s", fw)
	}
	return out, err
}
