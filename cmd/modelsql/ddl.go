// cmd/modelsql/ddl.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/russenger/modelsql/pkg/compiler"
	"github.com/russenger/modelsql/pkg/config"
	"github.com/russenger/modelsql/pkg/schema"
)

var ddlCmd = &cobra.Command{
	Use:   "ddl",
	Short: "Print the generated DDL for every model in the manifest",
	Long: `Compiles each model in the manifest and prints its
"create table if not exists" statement without touching any database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading configuration: %w", err)
		}

		manifest, err := schema.LoadManifestFile(manifestPath(cfg))
		if err != nil {
			return err
		}

		for _, def := range manifest.Models {
			art, err := compiler.Compile(def)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), art.DDL)
		}
		return nil
	},
}

// manifestPath prefers the --manifest flag over the configured path.
func manifestPath(cfg config.Config) string {
	if manifestFile != "" {
		return manifestFile
	}
	return cfg.Migration.Manifest
}

func init() {
	rootCmd.AddCommand(ddlCmd)
}
