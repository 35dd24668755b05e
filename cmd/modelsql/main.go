// cmd/modelsql/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile      string // persistent flag for the config file path
	manifestFile string // persistent flag overriding the model manifest path

	rootCmd = &cobra.Command{
		Use:   "modelsql",
		Short: "modelsql CLI for schema generation and migrations",
		Long: `The modelsql CLI compiles declarative model manifests into SQL
artifacts: table DDL, parameterized operation plans and delete
statements, and applies them to a configured database.`,
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: '%s'\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file (default is ./modelsql.yaml or $HOME/.modelsql/modelsql.yaml)")
	rootCmd.PersistentFlags().StringVarP(&manifestFile, "manifest", "m", "", "Model manifest file (overrides migration.manifest from the configuration)")
}

func main() {
	Execute()
}
