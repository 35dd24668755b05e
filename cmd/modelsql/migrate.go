// cmd/modelsql/migrate.go
package main

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage database migrations",
	Long:  `Applies manifest models to the configured database and reports their status.`,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
