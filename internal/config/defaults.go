package config

import (
	_ "embed"
)

//go:embed defaults/skies.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Assets: AssetsConfig{
			Sprites: SpriteFiles{
				Player:     "spaceship.png",
				Enemy:      "ufo.png",
				Projectile: "laser.png",
				Background: "background.png",
			},
			Sounds: SoundFiles{
				Music:           "mus_earth.wav",
				Fire:            "sfx_laser.wav",
				EnemyExplosion:  "sfx_enemy_explosion.wav",
				PlayerExplosion: "sfx_player_explosion.wav",
			},
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0,
			SampleRate: 44100,
			BufferMS:   100,
		},
		Input: InputConfig{
			HoldMS: 150,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.skies/skies.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
