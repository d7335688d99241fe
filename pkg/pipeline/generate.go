package pipeline

import (
	"context"
	"path/filepath"

	"github.com/relaxicons/relaxicons/pkg/icon"
	"github.com/relaxicons/relaxicons/pkg/output"
	"github.com/relaxicons/relaxicons/pkg/render"
	"github.com/relaxicons/relaxicons/pkg/vector"
)

// generate runs fetch → optimize → normalize → render → write for one icon,
// filling the paths on res as files land.
func (r *Runner) generate(ctx context.Context, w *output.Writer, id icon.ID, opts Options, res *Result) error {
	raw, err := r.Registry.FetchIconSource(ctx, id)
	if err != nil {
		return err
	}

	src := raw
	if opts.Optimize != nil {
		src = vector.Optimize(raw, *opts.Optimize)
	}
	v, err := vector.Transform(src)
	if err != nil {
		return err
	}

	fw := opts.Variant()
	in := render.NewInput(id, v, raw, opts.TypeScript)
	content, err := r.Renderer.Render(fw, in)
	if err != nil {
		return err
	}

	gen := r.Renderer.Generator(fw)
	path := filepath.Join(opts.IconDir, render.FileName(gen, in.Names, opts.TypeScript))
	if err := w.WriteFile(path, content, opts.Force); err != nil {
		return err
	}
	res.File = path

	if opts.Both && gen.Kind() != render.KindRaw {
		companion := filepath.Join(opts.IconDir, in.Names.Kebab+".svg")
		if w.Exists(companion) && !opts.Force {
			r.Logger.Debug("companion svg exists; skipping", "file", companion)
		} else {
			if err := w.WriteFile(companion, v.Markup()+"\n", true); err != nil {
				return err
			}
			res.Companion = companion
		}
	}

	line := gen.ExportLine(in.Names, opts.TypeScript)
	if line == "" {
		return nil
	}
	barrel := filepath.Join(opts.IconDir, output.BarrelFileName(opts.TypeScript))
	if _, err := w.UpdateBarrel(barrel, line); err != nil {
		return err
	}
	res.Barrel = barrel
	return nil
}
