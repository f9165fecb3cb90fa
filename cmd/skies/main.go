// skies is Azure Skies, a single-screen arcade shooter for the terminal.
//
// Usage:
//
//	skies                - Play (same as "skies play")
//	skies play           - Play the game
//	skies check          - Verify the asset files and print their sizes
//	skies config         - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom config file
//	--assets <dir>       - Asset directory (default: ./assets, then ../assets)
//	--mute               - Disable audio
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Log file used while playing
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagAssets   string
	flagMute     bool
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skies",
	Short: "Azure Skies - a terminal arcade shooter",
	Long: `Azure Skies is a single-screen shooter played in the terminal.
Slide along the bottom of the sky, fire your laser and stop the saucers
before they reach you. Each saucer hit scores a point.

Available commands:
  play     - Play the game (default)
  check    - Verify the asset files
  config   - Print the default configuration

Examples:
  skies
  skies --seed 42 --mute
  skies check --assets ./assets`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file while playing (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
}
