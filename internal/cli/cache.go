package cli

import (
	"context"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/relaxicons/relaxicons/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the registry response cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())
	cmd.AddCommand(c.cacheUpdateCommand("update"))

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached registry responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := c.newCache(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			if c.flags.dryRun {
				printInfo("[dry-run] would clear %s", c.cacheLocation(store))
				return nil
			}
			count, err := cache.Clear(cmd.Context(), store)
			if err != nil {
				return err
			}
			if count == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cleared %d cached entries", count)
			printDetail("Location: %s", c.cacheLocation(store))
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printLine(c.env().CacheDirectory())
			return nil
		},
	}
}

// updateCacheCommand is the top-level spelling of "cache update".
func (c *CLI) updateCacheCommand() *cobra.Command {
	cmd := c.cacheUpdateCommand("update-cache")
	cmd.Hidden = true
	return cmd
}

func (c *CLI) cacheUpdateCommand(use string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: "Prefetch the collection list and every collection's icon names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return fetchExit(c.updateCache(cmd.Context()))
		},
	}
}

func (c *CLI) updateCache(ctx context.Context) error {
	if c.flags.noCache {
		printWarning("Caching is disabled with --no-cache; nothing to update")
		return nil
	}

	client, store, err := c.newClient(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, "Fetching collections...").Start()
	defer spinner.Stop()

	prefixes, err := client.Prefixes(ctx)
	if err != nil {
		return err
	}

	var done, failed atomic.Int32
	c.eachCollection(ctx, client, prefixes, func(i int, _ []string, err error) {
		if err != nil {
			failed.Add(1)
			c.Logger.Debug("cache update skipped collection", "collection", prefixes[i], "error", err)
		}
		spinner.Update("Fetched %d/%d collections", done.Add(1), len(prefixes))
	})
	spinner.Stop()
	if err := ctx.Err(); err != nil {
		return err
	}

	if n := failed.Load(); n > 0 {
		printWarning("%d of %d collections could not be fetched", n, len(prefixes))
	}
	printSuccess("Cached %s", plural(len(prefixes)-int(failed.Load()), "collection"))
	prog.done("Cache updated")
	return nil
}

// cacheLocation describes where store keeps its entries.
func (c *CLI) cacheLocation(store cache.Cache) string {
	switch s := store.(type) {
	case *cache.FileCache:
		return s.Dir()
	case *cache.RedisCache:
		return "redis"
	}
	return "none"
}
