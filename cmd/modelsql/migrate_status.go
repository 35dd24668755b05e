// cmd/modelsql/migrate_status.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/russenger/modelsql/pkg/config"
	"github.com/russenger/modelsql/pkg/exec"
	"github.com/russenger/modelsql/pkg/migration"
)

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which models have been applied",
	Long:  `Lists the history table records: every model whose DDL has been applied and when.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading configuration: %w", err)
		}
		logger := cfg.Logging.NewLogger(os.Stderr)

		session, err := exec.Open(cfg.Database, logger)
		if err != nil {
			return err
		}
		defer session.Close()

		runner := migration.NewRunner(session, cfg.Migration.TableName, logger)
		records, err := runner.Status(cmd.Context())
		if err != nil {
			return fmt.Errorf("migration status command failed: %w", err)
		}

		if len(records) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No migrations applied.")
			return nil
		}
		for _, rec := range records {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\tapplied at %s\n", rec.Name, rec.AppliedAt)
		}
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateStatusCmd)
}
