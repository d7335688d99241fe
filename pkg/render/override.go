package render

import (
	"bytes"
	"io/fs"
	"os"
	"path"
	"slices"
	"sync"
	"text/template"

	"github.com/aymerick/raymond"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/relaxicons/relaxicons/pkg/errors"
)

// Context is the data handed to an override template. It is built fresh for
// every icon.
type Context map[string]any

// NewContext builds the override context for in.
func NewContext(in Input) Context {
	return Context{
		"iconId":   in.ID.String(),
		"baseName": in.ID.Name,
		"pascal":   in.Names.Pascal,
		"kebab":    in.Names.Kebab,
		"svg": map[string]any{
			"attrs":      attrMap(in.Vector),
			"attrString": in.Vector.AttrString(),
			"children":   in.Vector.Inner(),
		},
		"typescript": in.TypeScript,
	}
}

// OverrideFunc renders one icon in place of a built-in generator.
type OverrideFunc func(ctx Context) (string, error)

// Overrides resolves user supplied renderers by framework.
type Overrides interface {
	// Override returns the renderer for fw. ok is false when there is none.
	Override(fw Framework) (fn OverrideFunc, ok bool, err error)
}

// StaticOverrides is an in-memory override table.
type StaticOverrides map[Framework]OverrideFunc

// Override implements Overrides.
func (s StaticOverrides) Override(fw Framework) (OverrideFunc, bool, error) {
	fn, ok := s[fw]
	return fn, ok, nil
}

// templateExts lists the recognized template files in lookup order.
var templateExts = []string{".hbs", ".tmpl", ".gotmpl"}

// DirOverrides loads templates named after the framework from a directory.
// Parsed templates are kept for the lifetime of the value.
type DirOverrides struct {
	fsys fs.FS
	dir  string

	mu     sync.Mutex
	loaded map[Framework]OverrideFunc
}

// NewDirOverrides reads templates from dir. An empty dir disables overrides.
func NewDirOverrides(dir string) *DirOverrides {
	d := &DirOverrides{dir: dir, loaded: make(map[Framework]OverrideFunc)}
	if dir != "" {
		d.fsys = os.DirFS(dir)
	}
	return d
}

// Dir returns the template directory.
func (d *DirOverrides) Dir() string {
	return d.dir
}

// Override implements Overrides. A missing directory is treated as empty.
func (d *DirOverrides) Override(fw Framework) (OverrideFunc, bool, error) {
	if d == nil || d.fsys == nil {
		return nil, false, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if fn, ok := d.loaded[fw]; ok {
		return fn, fn != nil, nil
	}

	file, err := d.find(fw)
	if err != nil {
		return nil, false, err
	}
	if file == "" {
		d.loaded[fw] = nil
		return nil, false, nil
	}

	src, err := fs.ReadFile(d.fsys, file)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeTemplateInvalid, err, "read template %s", file)
	}
	fn, err := compile(file, string(src))
	if err != nil {
		return nil, false, err
	}
	d.loaded[fw] = fn
	return fn, true, nil
}

// find returns the highest priority template file for fw, or "".
func (d *DirOverrides) find(fw Framework) (string, error) {
	pattern := string(fw) + ".{hbs,tmpl,gotmpl}"
	matches, err := doublestar.Glob(d.fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeTemplateInvalid, err, "scan %s", d.dir)
	}
	for _, ext := range templateExts {
		if want := string(fw) + ext; slices.Contains(matches, want) {
			return want, nil
		}
	}
	return "", nil
}

func compile(file, src string) (OverrideFunc, error) {
	if path.Ext(file) == ".hbs" {
		tpl, err := raymond.Parse(src)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeTemplateInvalid, err, "parse template %s", file)
		}
		return func(ctx Context) (string, error) {
			out, err := tpl.Exec(map[string]any(ctx))
			if err != nil {
				return "", errors.Wrap(errors.ErrCodeTemplateInvalid, err, "execute template %s", file)
			}
			return out, nil
		}, nil
	}

	tpl, err := template.New(file).Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeTemplateInvalid, err, "parse template %s", file)
	}
	return func(ctx Context) (string, error) {
		var buf bytes.Buffer
		if err := tpl.Execute(&buf, map[string]any(ctx)); err != nil {
			return "", errors.Wrap(errors.ErrCodeTemplateInvalid, err, "execute template %s", file)
		}
		return buf.String(), nil
	}, nil
}
