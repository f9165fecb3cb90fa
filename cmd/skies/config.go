package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/azure-skies/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration file. Save it as
~/.skies/configs/skies.yaml or ./configs/skies.yaml and edit it to
override the defaults.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		//nolint:errcheck // Best-effort output
		os.Stdout.Write(config.DefaultYAML())
	},
}
