package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/azure-skies/internal/assets"
	"github.com/vovakirdan/azure-skies/internal/core"
	"github.com/vovakirdan/azure-skies/internal/platform/tui"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the asset files",
	Long: `Loads every sprite and sound the game needs and prints their
dimensions. Exits with status 1 if any file is missing or unreadable.`,
	Args: cobra.NoArgs,
	Run:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(os.Stderr, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	bundle, err := assets.Load(cfg.Assets)
	if err != nil {
		logger.Error("asset check failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Assets: %s\n\n", bundle.Dir)

	fmt.Println("Sprites:")
	for _, s := range []*assets.Sprite{bundle.Player, bundle.Enemy, bundle.Projectile, bundle.Background} {
		fmt.Printf("  %-28s %4d x %-4d\n", s.Name(), s.Width(), s.Height())
	}

	fmt.Println()
	fmt.Println("Sounds:")
	sounds := bundle.Sounds()
	for _, cue := range []core.Sound{core.SoundMusic, core.SoundFire, core.SoundEnemyExplosion, core.SoundPlayerExplosion} {
		s := sounds[cue]
		fmt.Printf("  %-28s %6.2fs  %d Hz\n", s.Name(), s.Duration().Seconds(), int(s.Format().SampleRate))
	}

	fmt.Println()
	fmt.Println("Controls:")
	h := help.New()
	fmt.Println("  " + h.ShortHelpView(tui.DefaultKeyMap().ShortHelp()))

	logger.Info("all assets present")
}
