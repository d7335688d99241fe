package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/relaxicons/relaxicons/pkg/buildinfo"
	"github.com/relaxicons/relaxicons/pkg/cache"
	"github.com/relaxicons/relaxicons/pkg/errors"
)

// check is one doctor probe. A non-empty issue fails the run; ok is printed
// on success.
type check struct {
	name string
	run  func(ctx context.Context) (ok string, issue string)
}

// doctorCommand creates the doctor command.
func (c *CLI) doctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration, cache and registry reachability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runDoctor(cmd.Context())
		},
	}
}

func (c *CLI) runDoctor(ctx context.Context) error {
	env := c.env()

	printKeyValue("version", buildinfo.Version)
	printKeyValue("platform", runtime.GOOS+"/"+runtime.GOARCH)
	printKeyValue("api", env.APIBase)
	if env.Offline {
		printKeyValue("mode", "offline")
	}
	fmt.Fprintln(stdout)

	checks := []check{
		{"config", c.checkConfig},
		{"cache", c.checkCache},
		{"registry", c.checkRegistry},
	}

	var issues []string
	for _, ch := range checks {
		ok, issue := ch.run(ctx)
		if issue != "" {
			issues = append(issues, issue)
			c.Logger.Debug("doctor check failed", "check", ch.name, "issue", issue)
			continue
		}
		printSuccess("%s", ok)
	}

	if len(issues) == 0 {
		printSuccess("Environment looks good.")
		return nil
	}
	printError("Issues found:")
	for _, issue := range issues {
		fmt.Fprintln(stderr, " - "+issue)
	}
	return reported(CodeError, errors.New(errors.ErrCodeInternal, "%d issue(s) found", len(issues)))
}

func (c *CLI) checkConfig(context.Context) (string, string) {
	cfg, err := c.loadConfig()
	if err != nil {
		return "", errors.UserMessage(err)
	}
	if dir := cfg.TemplatesPath(); dir != "" {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return "", fmt.Sprintf("templates directory %s does not exist", cfg.TemplatesDir)
		}
	}
	return fmt.Sprintf("Configuration loaded (%s, %s)", cfg.Variant(), cfg.IconPath), ""
}

func (c *CLI) checkCache(context.Context) (string, string) {
	dir := c.env().CacheDirectory()
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return "", fmt.Sprintf("cache directory %s is not writable: %v", dir, err)
	}
	_ = fc.Close()
	return "Cache directory " + dir, ""
}

func (c *CLI) checkRegistry(ctx context.Context) (string, string) {
	client, store, err := c.newClient(ctx)
	if err != nil {
		return "", errors.UserMessage(err)
	}
	defer store.Close()

	spinner := newSpinner(ctx, "Contacting registry...").Start()
	cols, err := client.Collections(ctx)
	spinner.Stop()
	if err != nil {
		return "", "Iconify collections API not reachable: " + errors.UserMessage(err)
	}
	return fmt.Sprintf("Registry reachable (%d collections)", len(cols)), ""
}
