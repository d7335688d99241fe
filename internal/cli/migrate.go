package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/relaxicons/relaxicons/pkg/config"
)

// migrateConfigCommand creates the migrate-config command.
func (c *CLI) migrateConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-config",
		Short: "Upgrade the config file to the current schema",
		Long: `Upgrade the config file to the current schema version. The legacy
"outDir" key becomes "iconPath"; keys relaxicons does not know are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := c.workDir()
			if err != nil {
				return err
			}
			path, err := config.Find(dir)
			if err != nil {
				return err
			}
			if c.flags.dryRun {
				printInfo("[dry-run] would migrate %s", path)
				return nil
			}
			changed, err := config.Migrate(path)
			if err != nil {
				return err
			}
			if !changed {
				printInfo("%s is already at schema version %d", filepath.Base(path), config.SchemaVersion)
				return nil
			}
			printSuccess("Migrated %s to schema version %d", filepath.Base(path), config.SchemaVersion)
			return nil
		},
	}
}
