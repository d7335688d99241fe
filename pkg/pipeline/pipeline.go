// Package pipeline runs the per-icon generate pipeline for relaxicons.
//
// One icon goes through five sequential stages:
//
//  1. Fetch: read the raw SVG from the registry (cached, with retry)
//  2. Optimize: optionally minify the document
//  3. Normalize: reduce it to the canonical attributes and inner markup
//  4. Render: produce framework source, from an override or a built-in
//  5. Write: apply the duplicate and dry-run policy, then merge the barrel
//
// Batches run the same pipeline on a bounded worker pool. A failing icon
// never cancels its siblings; every id gets its own [Result].
//
// # Usage
//
//	runner := pipeline.NewRunner(client, render.NewRenderer(overrides, logger), logger)
//	opts := pipeline.Options{
//	    Framework:  render.React,
//	    TypeScript: true,
//	    IconDir:    cfg.IconDir(),
//	}
//	results := runner.AddBatch(ctx, ids, opts)
//	if err := pipeline.BatchError(results); err != nil {
//	    return err
//	}
package pipeline

import (
	"context"
	"time"

	"github.com/relaxicons/relaxicons/pkg/errors"
	"github.com/relaxicons/relaxicons/pkg/icon"
	"github.com/relaxicons/relaxicons/pkg/naming"
	"github.com/relaxicons/relaxicons/pkg/render"
	"github.com/relaxicons/relaxicons/pkg/vector"
)

const (
	// DefaultWorkers is the batch concurrency when none is configured.
	DefaultWorkers = 4

	// SuggestionLimit caps suggestions taken from the icon's own collection.
	SuggestionLimit = 5

	// SuggestionThreshold is the score a same-collection match needs before
	// the cross-collection pass is skipped.
	SuggestionThreshold = 0.5
)

// Registry is the part of the registry client the pipeline needs.
// *iconify.Client implements it.
type Registry interface {
	Prefixes(ctx context.Context) ([]string, error)
	ListIcons(ctx context.Context, prefix string) ([]string, error)
	FetchIconSource(ctx context.Context, id icon.ID) (string, error)
}

// Options configures one add, batch or remove run.
type Options struct {
	Framework  render.Framework
	TypeScript bool
	IconDir    string // absolute destination directory
	Root       string // log paths are shown relative to Root

	Raw   bool // write <kebab>.svg whatever the framework
	Both  bool // also write <kebab>.svg next to the component
	Force bool // overwrite existing files
	// DryRun logs writes instead of performing them. The icon directory is
	// still created.
	DryRun bool

	// Optimize runs the minifier before normalization; nil skips it.
	Optimize *vector.OptimizeOptions

	// Workers bounds batch concurrency. Zero means DefaultWorkers.
	Workers int
}

// Validate checks the fields every run needs and applies defaults.
func (o *Options) Validate() error {
	if o.IconDir == "" {
		return errors.New(errors.ErrCodeInvalidInput, "icon directory is required")
	}
	if o.Framework == "" {
		o.Framework = render.Unknown
	}
	if o.Framework != render.Unknown && !o.Framework.Valid() {
		return errors.New(errors.ErrCodeConfigInvalid, "unknown framework %q", o.Framework)
	}
	if o.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "concurrency must be at least 1, got %d", o.Workers)
	}
	if o.Workers == 0 {
		o.Workers = DefaultWorkers
	}
	return nil
}

// Variant returns the framework actually generated: raw when Raw is set.
func (o Options) Variant() render.Framework {
	if o.Raw {
		return render.Raw
	}
	return o.Framework
}

// Result is the outcome of one icon.
type Result struct {
	ID    icon.ID
	Names naming.NameSet

	File      string // generated file, empty on failure
	Companion string // companion .svg written with Both
	Barrel    string // barrel file that now exports the component

	// Suggestions is filled when the icon was not found.
	Suggestions Suggestions

	Duration time.Duration
	Err      error
}

// OK reports whether the icon was generated.
func (r Result) OK() bool {
	return r.Err == nil
}

// RemoveResult is the outcome of removing one icon.
type RemoveResult struct {
	ID      icon.ID
	File    string
	Removed bool // false when the file did not exist
	Pruned  bool // whether the barrel changed
}

// Suggestions are alternatives for an icon that was not found.
type Suggestions struct {
	// Names are icon names from the same collection, best first.
	Names []string
	// Elsewhere is the best match in another collection as "prefix:name",
	// set only when Names is empty.
	Elsewhere string
	// Err is set when the collection could not be listed.
	Err error
}

// Empty reports whether there is nothing to suggest.
func (s Suggestions) Empty() bool {
	return len(s.Names) == 0 && s.Elsewhere == ""
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.OK() {
			out = append(out, r)
		}
	}
	return out
}

// BatchError summarizes failures once every item has run. Successful items
// stay written. The error is DestinationExists when every failure was a
// duplicate and Internal otherwise. A single-item batch returns the item's
// own error. It returns nil when nothing failed.
func BatchError(results []Result) error {
	failed := Failed(results)
	if len(failed) == 0 {
		return nil
	}
	if len(results) == 1 {
		return failed[0].Err
	}

	duplicates := 0
	for _, r := range failed {
		if errors.Is(r.Err, errors.ErrCodeDestinationExists) {
			duplicates++
		}
	}
	if duplicates == len(failed) {
		return errors.New(errors.ErrCodeDestinationExists,
			"%d of %d icons already exist. Use --force to overwrite.", len(failed), len(results))
	}
	return errors.Wrap(errors.ErrCodeInternal, failed[0].Err, "%d of %d icons failed", len(failed), len(results))
}
