package cli

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/relaxicons/relaxicons/pkg/errors"
	"github.com/relaxicons/relaxicons/pkg/manifest"
)

// defaultDebounce groups the burst of events an editor save produces.
const defaultDebounce = 300 * time.Millisecond

// regenerateCommand creates the regenerate command.
func (c *CLI) regenerateCommand() *cobra.Command {
	var (
		flags        addFlags
		manifestPath string
	)

	cmd := &cobra.Command{
		Use:   "regenerate",
		Short: "Regenerate every icon listed in a manifest",
		Long: `Regenerate every icon listed in a manifest, overwriting existing files.

The manifest is a JSON array, a TOML file with icons = [...], or one id per
line with # comments.`,
		Example: `  relaxicons regenerate
  relaxicons regenerate -m icons.toml --framework svelte -c 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.regenerate(cmd.Context(), c.resolve(manifestPath), flags)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", manifest.DefaultFile, "manifest file")

	return cmd
}

// regenerate reads the manifest and config afresh and re-adds every icon
// with overwrite on.
func (c *CLI) regenerate(ctx context.Context, path string, flags addFlags) error {
	ids, err := manifest.ReadManifest(path)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		printWarning("No icons in %s", filepath.Base(path))
		return nil
	}
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	flags.force = true
	return c.runAdd(ctx, cfg, ids, flags)
}

// resolve makes path absolute against the working directory.
func (c *CLI) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	dir, err := c.workDir()
	if err != nil {
		return path
	}
	return filepath.Join(dir, path)
}

// =============================================================================
// watch
// =============================================================================

// watchCommand creates the watch command.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		flags        addFlags
		manifestPath string
		debounce     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate icons whenever the manifest changes",
		Example: `  relaxicons watch
  relaxicons watch -m icons.json --debounce 1s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.watch(cmd.Context(), c.resolve(manifestPath), flags, debounce)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", manifest.DefaultFile, "manifest file")
	cmd.Flags().DurationVar(&debounce, "debounce", defaultDebounce, "quiet period before regenerating")

	return cmd
}

// watch regenerates once, then again after every change to path until ctx
// ends. Failed runs are reported and watching continues.
func (c *CLI) watch(ctx context.Context, path string, flags addFlags, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create file watcher")
	}
	defer watcher.Close()

	// Editors often save by renaming over the file, so watch its directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "watch %s", filepath.Dir(path))
	}

	run := func() {
		err := c.regenerate(ctx, path, flags)
		if err == nil || ctx.Err() != nil {
			return
		}
		if ee, ok := err.(*ExitError); ok && ee.Reported {
			return
		}
		printError("%s", errors.UserMessage(err))
	}

	run()
	printInfo("Watching %s (Ctrl+C to stop)", filepath.Base(path))

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			printInfo("Stopped watching")
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			c.Logger.Debug("manifest changed", "op", ev.Op.String())
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.Logger.Warn("file watcher error", "error", err)
		case <-timer.C:
			run()
		}
	}
}
