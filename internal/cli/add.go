package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/relaxicons/relaxicons/pkg/config"
	"github.com/relaxicons/relaxicons/pkg/errors"
	"github.com/relaxicons/relaxicons/pkg/icon"
	"github.com/relaxicons/relaxicons/pkg/manifest"
	"github.com/relaxicons/relaxicons/pkg/pipeline"
)

// addCommand creates the add command.
func (c *CLI) addCommand() *cobra.Command {
	var (
		flags addFlags
		from  string
	)

	cmd := &cobra.Command{
		Use:   "add <icon>...",
		Short: "Fetch icons and generate components",
		Long: `Fetch icons from the registry and write one component per icon into the
configured icon directory.

Icons are named collection:name. A comma list shares its prefix, so
"lucide:home,star" adds lucide:home and lucide:star.`,
		Example: `  relaxicons add lucide:home
  relaxicons add lucide:home,star mdi:bell --framework vue
  relaxicons add --from icons.txt --both`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw []string
			for _, a := range args {
				raw = append(raw, manifest.ExpandArg(a)...)
			}
			if from != "" {
				listed, err := manifest.ReadList(c.resolve(from))
				if err != nil {
					return err
				}
				raw = append(raw, listed...)
			}
			if len(raw) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "no icons given. Usage: %s add <collection:name>", appName)
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			return c.runAdd(cmd.Context(), cfg, raw, flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.force, "force", false, "overwrite existing files")
	cmd.Flags().StringVar(&from, "from", "", "read icon ids from a file (whitespace or comma separated)")

	return cmd
}

// runAdd parses every id before any work starts, runs the batch and reports
// each item.
func (c *CLI) runAdd(ctx context.Context, cfg *config.Config, raw []string, flags addFlags) error {
	ids, err := icon.ParseAll(raw)
	if err != nil {
		return err
	}
	opts, err := c.pipelineOptions(cfg, flags)
	if err != nil {
		return err
	}

	client, store, err := c.newClient(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	runner := c.newRunner(client, cfg)
	prog := newProgress(c.Logger)

	spinner := newSpinner(ctx, fmt.Sprintf("Adding %s...", plural(len(ids), "icon"))).Start()
	results := runner.AddBatch(ctx, ids, opts)
	spinner.Stop()

	reportResults(results, opts.Root)

	if err := pipeline.BatchError(results); err != nil {
		// An interrupt wins over the batch summary.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return reported(ExitCode(err), err)
	}
	prog.done(fmt.Sprintf("Added %s", plural(len(results), "icon")))
	return nil
}

// reportResults prints one line per item, with suggestions for icons that
// were not found.
func reportResults(results []pipeline.Result, root string) {
	for _, r := range results {
		if r.OK() {
			printSuccess("%s", r.ID)
			printFile(relPath(root, r.File))
			if r.Companion != "" {
				printFile(relPath(root, r.Companion))
			}
			continue
		}
		printError("%s: %s", r.ID, errors.UserMessage(r.Err))
		printSuggestions(r.Suggestions)
	}
	if failed := len(pipeline.Failed(results)); failed > 0 && len(results) > 1 {
		printWarning("%d of %d failed", failed, len(results))
	}
}

func printSuggestions(s pipeline.Suggestions) {
	switch {
	case len(s.Names) > 0:
		printDetail("Did you mean: %s?", strings.Join(s.Names, ", "))
	case s.Elsewhere != "":
		printDetail("Similar across collections: %s", s.Elsewhere)
	case s.Err != nil:
		printDetail("Could not list the collection: %s", errors.UserMessage(s.Err))
	}
}

func relPath(root, path string) string {
	if root == "" {
		return path
	}
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// =============================================================================
// remove
// =============================================================================

// removeCommand creates the remove command.
func (c *CLI) removeCommand() *cobra.Command {
	var (
		framework string
		raw       bool
	)

	cmd := &cobra.Command{
		Use:   "remove <icon>...",
		Short: "Delete generated icons and their index exports",
		Example: `  relaxicons remove lucide:home
  relaxicons remove lucide:home,star`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var list []string
			for _, a := range args {
				list = append(list, manifest.ExpandArg(a)...)
			}
			ids, err := icon.ParseAll(list)
			if err != nil {
				return err
			}
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts, err := c.pipelineOptions(cfg, addFlags{framework: framework, raw: raw})
			if err != nil {
				return err
			}

			// Remove never touches the registry.
			runner := c.newRunner(nil, cfg)
			for _, id := range ids {
				res, err := runner.Remove(cmd.Context(), id, opts)
				if err != nil {
					return err
				}
				if res.Removed {
					printSuccess("Removed %s", id)
					printFile(relPath(opts.Root, res.File))
				} else {
					printWarning("%s is not installed", id)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&framework, "framework", "f", "", "framework the icon was generated for")
	cmd.Flags().BoolVar(&raw, "raw", false, "remove the raw .svg file")

	return cmd
}
