package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/relaxicons/relaxicons/pkg/config"
	"github.com/relaxicons/relaxicons/pkg/errors"
	"github.com/relaxicons/relaxicons/pkg/output"
	"github.com/relaxicons/relaxicons/pkg/render"
)

// interactive reports whether init may prompt. Tests replace it.
var interactive = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type initFlags struct {
	framework  string
	iconPath   string
	typescript bool
	force      bool
	toml       bool
}

// initCommand creates the init command.
func (c *CLI) initCommand() *cobra.Command {
	var flags initFlags

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create relaxicons.config.json in the current directory",
		Long: `Create the project configuration.

Without --framework, init asks for one when run in a terminal. TypeScript
defaults to on when a tsconfig.json is present.`,
		Example: `  relaxicons init
  relaxicons init --framework react --icon-path src/icons
  relaxicons init --framework vue --typescript=false --toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ts := cmd.Flags().Changed("typescript")
			return c.runInit(flags, ts)
		},
	}

	cmd.Flags().StringVarP(&flags.framework, "framework", "f", "", "framework to generate ("+frameworkList()+")")
	cmd.Flags().StringVar(&flags.iconPath, "icon-path", config.DefaultIconPath, "directory for generated icons, relative to the config")
	cmd.Flags().BoolVar(&flags.typescript, "typescript", false, "generate TypeScript (default: tsconfig.json exists)")
	cmd.Flags().BoolVar(&flags.force, "force", false, "overwrite an existing config")
	cmd.Flags().BoolVar(&flags.toml, "toml", false, "write relaxicons.config.toml instead of JSON")

	_ = cmd.RegisterFlagCompletionFunc("framework", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return frameworkNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runInit(flags initFlags, typescriptSet bool) error {
	dir, err := c.workDir()
	if err != nil {
		return err
	}

	name := config.FileName
	if flags.toml {
		name = config.TOMLFileName
	}
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err == nil && !flags.force {
		return errors.New(errors.ErrCodeConfigInvalid, "%s already exists. Use --force to overwrite.", name)
	}

	fw, err := c.chooseFramework(flags.framework)
	if err != nil {
		return err
	}

	ts := flags.typescript
	if !typescriptSet {
		_, statErr := os.Stat(filepath.Join(dir, "tsconfig.json"))
		ts = statErr == nil
	}

	cfg := config.New(fw, flags.iconPath, ts, c.Now())
	w := output.NewWriter(output.Options{DryRun: c.flags.dryRun, Root: dir, Logger: c.Logger})
	if w.DryRun() {
		c.Logger.Infof("[dry-run] write %s", name)
	} else if err := cfg.Write(path, flags.force); err != nil {
		return err
	}
	if err := w.EnsureDir(filepath.Join(dir, cfg.IconPath)); err != nil {
		return err
	}

	printSuccess("Created %s", name)
	printDetail("framework: %s, icons: %s, typescript: %t", fw, cfg.IconPath, ts)
	printNextStep("Add an icon", appName+" add lucide:home")
	return nil
}

// chooseFramework resolves the --framework flag or asks on a terminal.
func (c *CLI) chooseFramework(flag string) (render.Framework, error) {
	if flag != "" {
		fw, err := render.ParseFramework(flag)
		if err != nil {
			return "", err
		}
		if fw == render.Unknown {
			return "", errors.New(errors.ErrCodeConfigInvalid, "framework is required")
		}
		return fw, nil
	}
	if !interactive() {
		return "", errors.New(errors.ErrCodeConfigInvalid,
			"no terminal to prompt on; pass --framework (%s)", frameworkList())
	}
	return pickFramework()
}

func frameworkNames() []string {
	fws := render.Frameworks()
	out := make([]string, len(fws))
	for i, fw := range fws {
		out[i] = fw.String()
	}
	return out
}

func frameworkList() string {
	return strings.Join(frameworkNames(), ", ")
}
