package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/azure-skies/internal/assets"
	"github.com/vovakirdan/azure-skies/internal/config"
	"github.com/vovakirdan/azure-skies/internal/games/skies"
)

// loadConfig loads the config file and applies command line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	return cfg, nil
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "skies",
		Level:           lvl,
	}), nil
}

// openLogFile creates the log file's directory and opens it for appending.
func openLogFile(path string) (*os.File, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// spritesFrom maps the loaded images onto the game's entity kinds.
func spritesFrom(b *assets.Bundle) skies.Sprites {
	return skies.Sprites{
		Player:     b.Player,
		Enemy:      b.Enemy,
		Projectile: b.Projectile,
		Background: b.Background,
	}
}
