package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/azure-skies/internal/assets"
	"github.com/vovakirdan/azure-skies/internal/audio"
	"github.com/vovakirdan/azure-skies/internal/config"
	"github.com/vovakirdan/azure-skies/internal/core"
	"github.com/vovakirdan/azure-skies/internal/games/skies"
	"github.com/vovakirdan/azure-skies/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a round of Azure Skies.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Z/Space    - Fire
  Q/Ctrl+C   - Quit

The round ends when a saucer reaches your row. The final picture stays on
screen until you quit.

Examples:
  skies play
  skies play --seed 42
  skies play --fps 30 --mute
  skies play --config ./my-skies.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := playLogger(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	status, err := playGame(cfg, logger)

	// Close the log before potential exit
	if logFile != nil {
		logFile.Close()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Final score: %d\n", status.Score)
}

// playLogger builds the logger used while the game owns the terminal. Logs go
// to a file; if it cannot be opened logging is discarded. The returned file
// is nil in that case and must be closed by the caller otherwise.
func playLogger(path, level string) (*os.File, *log.Logger, error) {
	var logOut io.Writer = io.Discard
	logFile, err := openLogFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	} else {
		logOut = logFile
	}

	logger, err := newLogger(logOut, level)
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, nil, err
	}
	return logFile, logger, nil
}

// playGame loads the assets, opens audio and runs one round in the terminal.
func playGame(cfg config.Config, logger *log.Logger) (core.Status, error) {
	bundle, err := assets.Load(cfg.Assets)
	if err != nil {
		logger.Error("cannot load assets", "error", err)
		return core.Status{}, err
	}
	logger.Info("assets loaded", "dir", bundle.Dir)

	sink := audio.OpenOrNop(cfg.Audio, audio.Library(bundle.Sounds()), logger)
	defer sink.Close()

	// Get terminal size for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game := skies.New(spritesFrom(bundle))
	status, err := tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Hold:   cfg.Input.HoldDuration(),
		Sink:   sink,
		Logger: logger,
	})
	if err != nil {
		logger.Error("game loop failed", "error", err)
		return status, fmt.Errorf("running game: %w", err)
	}
	return status, nil
}
