package pipeline

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/relaxicons/relaxicons/pkg/errors"
	"github.com/relaxicons/relaxicons/pkg/icon"
	"github.com/relaxicons/relaxicons/pkg/naming"
	"github.com/relaxicons/relaxicons/pkg/observability"
	"github.com/relaxicons/relaxicons/pkg/output"
	"github.com/relaxicons/relaxicons/pkg/render"
)

// Runner executes the generate pipeline against one registry.
//
// The Runner holds no per-run state: writers are created per call, so
// concurrent calls with different Options are safe.
type Runner struct {
	Registry Registry
	Renderer *render.Renderer
	Logger   *log.Logger
}

// NewRunner creates a runner. A nil renderer uses the built-in generators
// only; a nil logger uses log.Default().
func NewRunner(reg Registry, renderer *render.Renderer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	if renderer == nil {
		renderer = render.NewRenderer(nil, logger)
	}
	return &Runner{Registry: reg, Renderer: renderer, Logger: logger}
}

// Add generates a single icon.
func (r *Runner) Add(ctx context.Context, id icon.ID, opts Options) Result {
	results := r.AddBatch(ctx, []icon.ID{id}, opts)
	return results[0]
}

// AddBatch generates every id on a pool of opts.Workers goroutines and
// returns one Result per id, in input order. A failure only affects its own
// item. Cancelling ctx stops new items from being picked up; those report
// the context error.
func (r *Runner) AddBatch(ctx context.Context, ids []icon.ID, opts Options) []Result {
	results := make([]Result, len(ids))
	if err := opts.Validate(); err != nil {
		for i, id := range ids {
			results[i] = Result{ID: id, Names: naming.Derive(id.Name), Err: err}
		}
		return results
	}

	start := time.Now()
	w := r.writer(opts)
	if err := w.EnsureDir(opts.IconDir); err != nil {
		for i, id := range ids {
			results[i] = Result{ID: id, Names: naming.Derive(id.Name), Err: err}
		}
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for range min(opts.Workers, len(ids)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.add(ctx, w, ids[i], opts)
			}
		}()
	}

	next := 0
feed:
	for ; next < len(ids); next++ {
		select {
		case jobs <- next:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	for i := next; i < len(ids); i++ {
		results[i] = Result{ID: ids[i], Names: naming.Derive(ids[i].Name), Err: ctx.Err()}
	}

	failed := len(Failed(results))
	observability.Pipeline().OnBatchComplete(ctx, len(ids), failed, time.Since(start))
	if len(ids) > 1 {
		r.Logger.Debug("batch complete", "total", len(ids), "failed", failed, "duration", time.Since(start))
	}
	return results
}

// add runs the pipeline for one icon and records its outcome.
func (r *Runner) add(ctx context.Context, w *output.Writer, id icon.ID, opts Options) Result {
	start := time.Now()
	hooks := observability.Pipeline()
	hooks.OnIconStart(ctx, id.String())

	res := Result{ID: id, Names: naming.Derive(id.Name)}
	if err := ctx.Err(); err != nil {
		res.Err = err
	} else {
		res.Err = r.generate(ctx, w, id, opts, &res)
	}
	if errors.Is(res.Err, errors.ErrCodeIconNotFound) {
		res.Suggestions = r.Suggest(ctx, id)
	}
	res.Duration = time.Since(start)

	hooks.OnIconComplete(ctx, id.String(), string(opts.Variant()), res.Duration, res.Err)
	if res.Err != nil {
		r.Logger.Debug("icon failed", "icon", id, "error", res.Err)
	} else {
		r.Logger.Debug("icon generated", "icon", id, "file", res.File, "duration", res.Duration)
	}
	return res
}

// Remove deletes the file an icon would be generated to under opts and
// drops its export from the barrel. A missing file is not an error.
func (r *Runner) Remove(ctx context.Context, id icon.ID, opts Options) (RemoveResult, error) {
	if err := opts.Validate(); err != nil {
		return RemoveResult{ID: id}, err
	}
	if err := ctx.Err(); err != nil {
		return RemoveResult{ID: id}, err
	}

	w := r.writer(opts)
	gen := r.Renderer.Generator(opts.Variant())
	names := naming.Derive(id.Name)
	res := RemoveResult{ID: id, File: filepath.Join(opts.IconDir, render.FileName(gen, names, opts.TypeScript))}

	removed, err := w.Remove(res.File)
	if err != nil {
		return res, err
	}
	res.Removed = removed

	if gen.ExportLine(names, opts.TypeScript) == "" {
		return res, nil
	}
	pruned, err := w.PruneBarrel(filepath.Join(opts.IconDir, output.BarrelFileName(opts.TypeScript)), names.Component())
	if err != nil {
		return res, err
	}
	res.Pruned = pruned
	return res, nil
}

func (r *Runner) writer(opts Options) *output.Writer {
	return output.NewWriter(output.Options{DryRun: opts.DryRun, Root: opts.Root, Logger: r.Logger})
}
