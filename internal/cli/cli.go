// Package cli implements the relaxicons command-line interface.
//
// Commands are built with cobra. Every command shares the global flags
// --quiet, --no-color, --dry-run, --verbose and --no-cache; the logger is
// carried in the command context (see loggerFromContext).
//
// # Commands
//
//   - init: write relaxicons.config.json
//   - add, remove, regenerate, watch: generate and maintain icon files
//   - collections, icons, search, stats: browse the registry
//   - cache, doctor, migrate-config, completion: housekeeping
package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/relaxicons/relaxicons/pkg/buildinfo"
	"github.com/relaxicons/relaxicons/pkg/cache"
	"github.com/relaxicons/relaxicons/pkg/config"
	"github.com/relaxicons/relaxicons/pkg/integrations/iconify"
	"github.com/relaxicons/relaxicons/pkg/pipeline"
	"github.com/relaxicons/relaxicons/pkg/render"
	"github.com/relaxicons/relaxicons/pkg/vector"
)

const appName = "relaxicons"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Dir is the working directory commands resolve paths against; empty
	// means the process working directory.
	Dir string
	// Env overrides the environment read at startup.
	Env *config.Env
	// Now returns the current time.
	Now func() time.Time

	flags globalFlags
}

type globalFlags struct {
	quiet   bool
	noColor bool
	dryRun  bool
	verbose bool
	noCache bool
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), Now: time.Now}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Relaxicons turns Iconify icons into framework components",
		Long: `Relaxicons fetches icons from the Iconify registry and writes them into your
project as React, Vue, Angular, Svelte, Solid, Blade or web components,
keeping an index file of exports up to date.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}
	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.BoolVar(&c.flags.quiet, "quiet", false, "suppress non-essential output")
	pf.BoolVar(&c.flags.noColor, "no-color", false, "disable colored output")
	pf.BoolVar(&c.flags.dryRun, "dry-run", false, "show what would happen without writing files")
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable verbose logging")
	pf.BoolVar(&c.flags.noCache, "no-cache", false, "bypass the registry cache")

	root.AddCommand(c.initCommand())
	root.AddCommand(c.addCommand())
	root.AddCommand(c.removeCommand())
	root.AddCommand(c.regenerateCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.collectionsCommand())
	root.AddCommand(c.iconsCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.updateCacheCommand())
	root.AddCommand(c.doctorCommand())
	root.AddCommand(c.migrateConfigCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup applies the global flags and reads the environment before any
// command runs.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	if c.Env == nil {
		env, err := config.LoadEnv()
		if err != nil {
			return err
		}
		c.Env = &env
	}

	quiet = c.flags.quiet
	if c.flags.noColor || c.Env.ColorDisabled() {
		disableColor()
	}
	c.SetLogLevel(logLevel(c.flags.verbose, c.flags.quiet))
	installLogHooks(c.Logger)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Runtime Factories
// =============================================================================

// workDir returns the directory commands run in.
func (c *CLI) workDir() (string, error) {
	if c.Dir != "" {
		return c.Dir, nil
	}
	return os.Getwd()
}

func (c *CLI) env() config.Env {
	if c.Env == nil {
		env, _ := config.LoadEnvFrom(nil)
		return env
	}
	return *c.Env
}

// loadConfig finds the config governing the working directory.
func (c *CLI) loadConfig() (*config.Config, error) {
	dir, err := c.workDir()
	if err != nil {
		return nil, err
	}
	return config.Load(dir)
}

// newCache picks the cache backend: none with --no-cache, Redis when
// RELAXICONS_REDIS_URL is set, the file cache otherwise. An unreachable
// Redis falls back to the file cache.
func (c *CLI) newCache(ctx context.Context) (cache.Cache, error) {
	env := c.env()
	if c.flags.noCache {
		return cache.NewNullCache(), nil
	}
	if env.RedisURL != "" {
		rc, err := cache.NewRedisCache(ctx, env.RedisURL)
		if err == nil {
			return rc, nil
		}
		c.Logger.Warn("redis cache unavailable; using file cache", "error", err)
	}
	fc, err := cache.NewFileCache(env.CacheDirectory())
	if err != nil {
		c.Logger.Warn("file cache unavailable; caching disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

// newClient creates the registry client. The returned cache must be closed
// by the caller.
func (c *CLI) newClient(ctx context.Context) (*iconify.Client, cache.Cache, error) {
	store, err := c.newCache(ctx)
	if err != nil {
		return nil, nil, err
	}
	env := c.env()
	client, err := iconify.NewClient(iconify.Options{
		BaseURL: env.APIBase,
		Offline: env.Offline,
		Cache:   store,
		TTL:     env.CacheTTL,
		Logger:  c.Logger,
	})
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}
	return client, store, nil
}

// newRunner creates a pipeline runner that honors the config's override
// templates.
func (c *CLI) newRunner(reg pipeline.Registry, cfg *config.Config) *pipeline.Runner {
	var overrides render.Overrides
	if dir := cfg.TemplatesPath(); dir != "" {
		overrides = render.NewDirOverrides(dir)
	}
	return pipeline.NewRunner(reg, render.NewRenderer(overrides, c.Logger), c.Logger)
}

// addFlags are the generate options shared by add and regenerate. register
// leaves out --force, which regenerate implies.
type addFlags struct {
	framework   string
	raw         bool
	both        bool
	force       bool
	noOptimize  bool
	concurrency int
}

func (f *addFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.framework, "framework", "f", "", "override the configured framework")
	cmd.Flags().BoolVar(&f.raw, "raw", false, "write the raw SVG instead of a component")
	cmd.Flags().BoolVar(&f.both, "both", false, "also write the cleaned SVG next to the component")
	cmd.Flags().BoolVar(&f.noOptimize, "no-optimize", false, "skip SVG minification")
	cmd.Flags().IntVarP(&f.concurrency, "concurrency", "c", 0, "concurrent icons (default $RELAXICONS_CONCURRENCY or 4)")
}

// pipelineOptions merges config, environment and flags; flags win.
func (c *CLI) pipelineOptions(cfg *config.Config, f addFlags) (pipeline.Options, error) {
	fw := cfg.Variant()
	if f.framework != "" {
		parsed, err := render.ParseFramework(f.framework)
		if err != nil {
			return pipeline.Options{}, err
		}
		fw = parsed
	}

	root, _ := c.workDir()
	opts := pipeline.Options{
		Framework:  fw,
		TypeScript: cfg.TypeScript,
		IconDir:    cfg.IconDir(),
		Root:       root,
		Raw:        f.raw,
		Both:       f.both,
		Force:      f.force,
		DryRun:     c.flags.dryRun,
		Workers:    c.env().Concurrency,
	}
	if f.concurrency > 0 {
		opts.Workers = f.concurrency
	}
	if o := cfg.Optimization(); o.Enabled && !f.noOptimize {
		opts.Optimize = &vector.OptimizeOptions{Precision: o.Precision, KeepComments: o.KeepComments}
	}
	return opts, nil
}
