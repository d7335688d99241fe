package cli

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/relaxicons/relaxicons/pkg/errors"
	"github.com/relaxicons/relaxicons/pkg/integrations/iconify"
)

// DefaultListLimit caps listings unless --limit says otherwise.
const DefaultListLimit = 50

// defaultStatsLimit is how many collections stats counts by default.
const defaultStatsLimit = 25

var collectionFields = []string{"name", "title", "count"}

type listFlags struct {
	filter    string
	limit     int
	json      bool
	fields    []string
	qualified bool
}

// limited returns the first n items, or all of them when n <= 0.
func limited[T any](items []T, n int) []T {
	if n <= 0 || n >= len(items) {
		return items
	}
	return items[:n]
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// printTotal closes a listing with its unlimited count.
func printTotal(n int) {
	printInfo("Total: %d", n)
}

// =============================================================================
// collections
// =============================================================================

func (c *CLI) collectionsCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "collections",
		Short: "List icon collections",
		Example: `  relaxicons collections --filter material
  relaxicons collections --fields name,count --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFields(flags.fields); err != nil {
				return err
			}
			return fetchExit(c.runCollections(cmd.Context(), flags))
		},
	}

	cmd.Flags().StringVar(&flags.filter, "filter", "", "only collections whose name or title contains this text")
	cmd.Flags().IntVar(&flags.limit, "limit", DefaultListLimit, "maximum rows (0 for all)")
	cmd.Flags().BoolVar(&flags.json, "json", false, "print JSON")
	cmd.Flags().StringSliceVar(&flags.fields, "fields", collectionFields, "columns to print (name, title, count)")

	return cmd
}

func validateFields(fields []string) error {
	for _, f := range fields {
		if !slices.Contains(collectionFields, f) {
			return errors.New(errors.ErrCodeInvalidInput, "unknown field %q (available: %s)", f, strings.Join(collectionFields, ", "))
		}
	}
	return nil
}

func (c *CLI) runCollections(ctx context.Context, flags listFlags) error {
	client, store, err := c.newClient(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	spinner := newSpinner(ctx, "Fetching collections...").Start()
	all, err := client.Collections(ctx)
	spinner.Stop()
	if err != nil {
		return err
	}

	var matched []iconify.Collection
	for _, col := range all {
		if flags.filter == "" || containsFold(col.Name, flags.filter) || containsFold(col.Title, flags.filter) {
			matched = append(matched, col)
		}
	}
	shown := limited(matched, flags.limit)

	if flags.json {
		rows := make([]map[string]any, len(shown))
		for i, col := range shown {
			rows[i] = collectionRecord(col, flags.fields)
		}
		return printJSON(rows)
	}

	rows := make([][]string, len(shown))
	for i, col := range shown {
		rows[i] = collectionRow(col, flags.fields)
	}
	printTable(flags.fields, rows)
	printTotal(len(matched))
	return nil
}

func collectionRecord(col iconify.Collection, fields []string) map[string]any {
	rec := make(map[string]any, len(fields))
	for _, f := range fields {
		switch f {
		case "name":
			rec[f] = col.Name
		case "title":
			rec[f] = col.Title
		case "count":
			rec[f] = col.Count
		}
	}
	return rec
}

func collectionRow(col iconify.Collection, fields []string) []string {
	row := make([]string, len(fields))
	for i, f := range fields {
		switch f {
		case "name":
			row[i] = col.Name
		case "title":
			row[i] = col.Title
		case "count":
			if col.Count != nil {
				row[i] = strconv.Itoa(*col.Count)
			} else {
				row[i] = "-"
			}
		}
	}
	return row
}

// =============================================================================
// icons / list
// =============================================================================

func (c *CLI) iconsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icons <collection>",
		Short: "List the icons in a collection",
		Example: `  relaxicons icons lucide --filter arrow
  relaxicons icons mdi --limit 0 --qualified`,
		Args: cobra.ExactArgs(1),
	}
	c.bindIcons(cmd)
	return cmd
}

// listCommand is the old name of icons.
func (c *CLI) listCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:        "list <collection>",
		Short:      "List the icons in a collection",
		Deprecated: `use "relaxicons icons <collection>" instead`,
		Args:       cobra.ExactArgs(1),
	}
	c.bindIcons(cmd)
	return cmd
}

func (c *CLI) bindIcons(cmd *cobra.Command) {
	var flags listFlags
	cmd.Flags().StringVar(&flags.filter, "filter", "", "only icons whose name contains this text")
	cmd.Flags().IntVar(&flags.limit, "limit", DefaultListLimit, "maximum rows (0 for all)")
	cmd.Flags().BoolVar(&flags.json, "json", false, "print a JSON array")
	cmd.Flags().BoolVar(&flags.qualified, "qualified", false, "print collection:name")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return fetchExit(c.runIcons(cmd.Context(), args[0], flags))
	}
}

func (c *CLI) runIcons(ctx context.Context, prefix string, flags listFlags) error {
	client, store, err := c.newClient(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	spinner := newSpinner(ctx, "Fetching "+prefix+"...").Start()
	names, err := client.ListIcons(ctx, prefix)
	spinner.Stop()
	if err != nil {
		return err
	}

	var matched []string
	for _, n := range names {
		if flags.filter == "" || containsFold(n, flags.filter) {
			if flags.qualified {
				n = prefix + ":" + n
			}
			matched = append(matched, n)
		}
	}
	return printList(matched, flags)
}

// printList prints names one per line, or as JSON.
func printList(names []string, flags listFlags) error {
	shown := limited(names, flags.limit)
	if flags.json {
		if shown == nil {
			shown = []string{}
		}
		return printJSON(shown)
	}
	for _, n := range shown {
		printLine(n)
	}
	printTotal(len(names))
	return nil
}

// =============================================================================
// search
// =============================================================================

func (c *CLI) searchCommand() *cobra.Command {
	var (
		flags       listFlags
		collections []string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search icon names across collections",
		Example: `  relaxicons search arrow
  relaxicons search home -c lucide,mdi --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fetchExit(c.runSearch(cmd.Context(), args[0], collections, flags))
		},
	}

	cmd.Flags().StringSliceVarP(&collections, "collection", "c", nil, "collections to search (default: all)")
	cmd.Flags().IntVar(&flags.limit, "limit", DefaultListLimit, "maximum results (0 for all)")
	cmd.Flags().BoolVar(&flags.json, "json", false, "print a JSON array")

	return cmd
}

func (c *CLI) runSearch(ctx context.Context, query string, prefixes []string, flags listFlags) error {
	client, store, err := c.newClient(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	spinner := newSpinner(ctx, "Searching...").Start()
	defer spinner.Stop()

	if len(prefixes) == 0 {
		if prefixes, err = client.Prefixes(ctx); err != nil {
			return err
		}
	}

	matches := make([][]string, len(prefixes))
	c.eachCollection(ctx, client, prefixes, func(i int, names []string, err error) {
		if err != nil {
			c.Logger.Debug("search skipped collection", "collection", prefixes[i], "error", err)
			return
		}
		for _, n := range names {
			if containsFold(n, query) {
				matches[i] = append(matches[i], prefixes[i]+":"+n)
			}
		}
	})
	spinner.Stop()
	if err := ctx.Err(); err != nil {
		return err
	}

	return printList(slices.Concat(matches...), flags)
}

// eachCollection lists every prefix concurrently and calls fn with the
// index of each. Per-collection failures are passed to fn, not returned;
// fn may write to index i only.
func (c *CLI) eachCollection(ctx context.Context, client *iconify.Client, prefixes []string, fn func(i int, names []string, err error)) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.env().Concurrency)
	for i, p := range prefixes {
		g.Go(func() error {
			names, err := client.ListIcons(gctx, p)
			fn(i, names, err)
			return nil
		})
	}
	_ = g.Wait()
}

// =============================================================================
// stats
// =============================================================================

type statsRow struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func (c *CLI) statsCommand() *cobra.Command {
	var (
		flags      listFlags
		collection string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Count icons per collection",
		Example: `  relaxicons stats
  relaxicons stats -c lucide --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return fetchExit(c.runStats(cmd.Context(), collection, flags))
		},
	}

	cmd.Flags().StringVarP(&collection, "collection", "c", "", "count a single collection")
	cmd.Flags().IntVar(&flags.limit, "limit", defaultStatsLimit, "collections to count")
	cmd.Flags().BoolVar(&flags.json, "json", false, "print JSON")

	return cmd
}

func (c *CLI) runStats(ctx context.Context, collection string, flags listFlags) error {
	client, store, err := c.newClient(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	spinner := newSpinner(ctx, "Counting icons...").Start()
	defer spinner.Stop()

	var rows []statsRow
	if collection != "" {
		names, err := client.ListIcons(ctx, collection)
		if err != nil {
			return err
		}
		rows = []statsRow{{Name: collection, Count: len(names)}}
	} else {
		prefixes, err := client.Prefixes(ctx)
		if err != nil {
			return err
		}
		if flags.limit <= 0 {
			flags.limit = defaultStatsLimit
		}
		prefixes = limited(prefixes, flags.limit)
		rows = make([]statsRow, len(prefixes))
		c.eachCollection(ctx, client, prefixes, func(i int, names []string, err error) {
			// An unreadable collection counts as empty.
			rows[i] = statsRow{Name: prefixes[i], Count: len(names)}
			if err != nil {
				c.Logger.Debug("stats skipped collection", "collection", prefixes[i], "error", err)
			}
		})
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	spinner.Stop()

	if flags.json {
		return printJSON(rows)
	}
	table := make([][]string, len(rows))
	for i, r := range rows {
		table[i] = []string{r.Name, strconv.Itoa(r.Count)}
	}
	printTable([]string{"collection", "icons"}, table)
	return nil
}
