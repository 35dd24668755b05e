// cmd/modelsql/migrate_up.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/russenger/modelsql/pkg/config"
	"github.com/russenger/modelsql/pkg/exec"
	"github.com/russenger/modelsql/pkg/migration"

	_ "github.com/russenger/modelsql/pkg/dialects/mysql"
	_ "github.com/russenger/modelsql/pkg/dialects/postgres"
	_ "github.com/russenger/modelsql/pkg/dialects/sqlite"
	_ "github.com/russenger/modelsql/pkg/dialects/sqlserver"

	"github.com/russenger/modelsql/pkg/schema"
)

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Create the tables of all manifest models",
	Long:  `Compiles every model in the manifest and executes its DDL against the configured database, recording each model in the history table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading configuration: %w", err)
		}
		logger := cfg.Logging.NewLogger(os.Stderr)

		manifest, err := schema.LoadManifestFile(manifestPath(cfg))
		if err != nil {
			return err
		}

		session, err := exec.Open(cfg.Database, logger)
		if err != nil {
			return err
		}
		defer session.Close()

		runner := migration.NewRunner(session, cfg.Migration.TableName, logger)
		runner.Add(manifest.Models...)
		if err := runner.Apply(cmd.Context()); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied successfully.")
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
}
