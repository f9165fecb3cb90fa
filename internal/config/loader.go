package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in the search path.
const FileName = "skies.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.skies/configs/skies.yaml -> ./configs/skies.yaml -> embedded default
// Fields missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Default(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	cfg.fillZeroes()
	return cfg, nil
}

// fillZeroes restores defaults for values a file set to zero or empty.
func (c *Config) fillZeroes() {
	def := Default()

	if c.Assets.Sprites.Player == "" {
		c.Assets.Sprites.Player = def.Assets.Sprites.Player
	}
	if c.Assets.Sprites.Enemy == "" {
		c.Assets.Sprites.Enemy = def.Assets.Sprites.Enemy
	}
	if c.Assets.Sprites.Projectile == "" {
		c.Assets.Sprites.Projectile = def.Assets.Sprites.Projectile
	}
	if c.Assets.Sprites.Background == "" {
		c.Assets.Sprites.Background = def.Assets.Sprites.Background
	}
	if c.Assets.Sounds.Music == "" {
		c.Assets.Sounds.Music = def.Assets.Sounds.Music
	}
	if c.Assets.Sounds.Fire == "" {
		c.Assets.Sounds.Fire = def.Assets.Sounds.Fire
	}
	if c.Assets.Sounds.EnemyExplosion == "" {
		c.Assets.Sounds.EnemyExplosion = def.Assets.Sounds.EnemyExplosion
	}
	if c.Assets.Sounds.PlayerExplosion == "" {
		c.Assets.Sounds.PlayerExplosion = def.Assets.Sounds.PlayerExplosion
	}
	if c.Audio.SampleRate <= 0 {
		c.Audio.SampleRate = def.Audio.SampleRate
	}
	if c.Audio.BufferMS <= 0 {
		c.Audio.BufferMS = def.Audio.BufferMS
	}
	if c.Input.HoldMS <= 0 {
		c.Input.HoldMS = def.Input.HoldMS
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skies", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
