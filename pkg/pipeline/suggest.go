package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/relaxicons/relaxicons/pkg/fuzzy"
	"github.com/relaxicons/relaxicons/pkg/icon"
)

// Suggest finds alternatives for an icon that does not exist. Names from the
// icon's own collection scoring at least SuggestionThreshold come first;
// when there are none, every other collection is searched for the single
// best match. Collections that fail to list during that pass are skipped.
func (r *Runner) Suggest(ctx context.Context, id icon.ID) Suggestions {
	names, err := r.Registry.ListIcons(ctx, id.Collection)
	if err != nil {
		r.Logger.Debug("cannot list collection for suggestions", "collection", id.Collection, "error", err)
		return Suggestions{Err: err}
	}

	var out Suggestions
	for _, m := range fuzzy.Rank(id.Name, names) {
		if m.Score < SuggestionThreshold || len(out.Names) == SuggestionLimit {
			break
		}
		out.Names = append(out.Names, m.Name)
	}
	if len(out.Names) == 0 {
		out.Elsewhere = r.bestElsewhere(ctx, id)
	}
	return out
}

// bestElsewhere returns "prefix:name" for the best match outside the icon's
// collection, or "". Ties go to the first prefix in listing order.
func (r *Runner) bestElsewhere(ctx context.Context, id icon.ID) string {
	prefixes, err := r.Registry.Prefixes(ctx)
	if err != nil {
		r.Logger.Debug("cannot list collections for suggestions", "error", err)
		return ""
	}

	best := make([]fuzzy.Match, len(prefixes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultWorkers)
	for i, prefix := range prefixes {
		if prefix == id.Collection {
			continue
		}
		g.Go(func() error {
			names, err := r.Registry.ListIcons(gctx, prefix)
			if err != nil {
				r.Logger.Debug("skipping collection", "collection", prefix, "error", err)
				return nil
			}
			if m, ok := fuzzy.Best(id.Name, names); ok {
				best[i] = fuzzy.Match{Name: prefix + ":" + m.Name, Score: m.Score}
			}
			return nil
		})
	}
	_ = g.Wait()

	var top fuzzy.Match
	for _, m := range best {
		if m.Score > top.Score {
			top = m
		}
	}
	return top.Name
}
