// Package config provides YAML-based configuration loading for the game's
// surroundings: asset locations, audio, input timing and logging.
// Gameplay tuning lives in the game package and is not configurable.
package config

import "time"

// Config is the complete runtime configuration.
type Config struct {
	Assets AssetsConfig `yaml:"assets"`
	Audio  AudioConfig  `yaml:"audio"`
	Input  InputConfig  `yaml:"input"`
	Log    LogConfig    `yaml:"log"`
}

// AssetsConfig locates the sprite and sound files.
type AssetsConfig struct {
	Dir     string      `yaml:"dir"` // Empty = search ./assets then ../assets
	Sprites SpriteFiles `yaml:"sprites"`
	Sounds  SoundFiles  `yaml:"sounds"`
}

// SpriteFiles names the PNG file for each entity kind.
type SpriteFiles struct {
	Player     string `yaml:"player"`
	Enemy      string `yaml:"enemy"`
	Projectile string `yaml:"projectile"`
	Background string `yaml:"background"`
}

// SoundFiles names the WAV file for each audio cue.
type SoundFiles struct {
	Music           string `yaml:"music"`
	Fire            string `yaml:"fire"`
	EnemyExplosion  string `yaml:"enemy_explosion"`
	PlayerExplosion string `yaml:"player_explosion"`
}

// AudioConfig defines the audio sink parameters.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`      // log2 gain: 0 = unchanged, -1 = half
	SampleRate int     `yaml:"sample_rate"` // Output rate; sounds are resampled to it
	BufferMS   int     `yaml:"buffer_ms"`
}

// BufferDuration returns the speaker buffer length.
func (a AudioConfig) BufferDuration() time.Duration {
	return time.Duration(a.BufferMS) * time.Millisecond
}

// InputConfig defines keyboard timing.
type InputConfig struct {
	// HoldMS is how long a key counts as held after its last press or repeat.
	HoldMS int `yaml:"hold_ms"`
}

// HoldDuration returns the key hold window.
func (i InputConfig) HoldDuration() time.Duration {
	return time.Duration(i.HoldMS) * time.Millisecond
}

// LogConfig defines logger output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log file used while the game owns the terminal
}
