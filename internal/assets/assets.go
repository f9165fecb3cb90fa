// Package assets loads the sprite images and sound effects the game needs.
// Every file is required: a missing file is a startup error.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vovakirdan/azure-skies/internal/config"
	"github.com/vovakirdan/azure-skies/internal/core"
)

var (
	// ErrAssetsDirNotFound is returned when no asset directory can be located.
	ErrAssetsDirNotFound = errors.New("assets: directory not found")

	// ErrAssetMissing is returned for each required file that does not exist.
	ErrAssetMissing = errors.New("assets: required file missing")
)

// Bundle holds every decoded asset.
type Bundle struct {
	Dir string

	Player     *Sprite
	Enemy      *Sprite
	Projectile *Sprite
	Background *Sprite

	Music           *Sound
	Fire            *Sound
	EnemyExplosion  *Sound
	PlayerExplosion *Sound
}

// Sounds maps each audio cue to its decoded sound.
func (b *Bundle) Sounds() map[core.Sound]*Sound {
	return map[core.Sound]*Sound{
		core.SoundMusic:           b.Music,
		core.SoundFire:            b.Fire,
		core.SoundEnemyExplosion:  b.EnemyExplosion,
		core.SoundPlayerExplosion: b.PlayerExplosion,
	}
}

// ResolveDir returns the asset directory. An explicit dir must exist;
// otherwise ./assets and then ../assets are tried.
func ResolveDir(explicit string) (string, error) {
	if explicit != "" {
		dir, err := config.ExpandHome(explicit)
		if err != nil {
			return "", err
		}
		if isDir(dir) {
			return dir, nil
		}
		return "", fmt.Errorf("%w: %s", ErrAssetsDirNotFound, dir)
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("assets: cannot get working directory: %w", err)
	}

	candidates := []string{
		filepath.Join(wd, "assets"),               // Run from the project root
		filepath.Join(filepath.Dir(wd), "assets"), // Run from a subdirectory
	}
	for _, dir := range candidates {
		if isDir(dir) {
			return dir, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrAssetsDirNotFound, filepath.Join(wd, "assets"))
}

// isDir reports whether path exists and is a directory.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Load resolves the asset directory and decodes every file named in cfg.
// All failures are reported together.
func Load(cfg config.AssetsConfig) (*Bundle, error) {
	dir, err := ResolveDir(cfg.Dir)
	if err != nil {
		return nil, err
	}

	b := &Bundle{Dir: dir}
	var errs []error

	sprite := func(name string) *Sprite {
		s, err := LoadSprite(filepath.Join(dir, name))
		if err != nil {
			errs = append(errs, err)
		}
		return s
	}
	sound := func(name string) *Sound {
		s, err := LoadSound(filepath.Join(dir, name))
		if err != nil {
			errs = append(errs, err)
		}
		return s
	}

	b.Player = sprite(cfg.Sprites.Player)
	b.Enemy = sprite(cfg.Sprites.Enemy)
	b.Projectile = sprite(cfg.Sprites.Projectile)
	b.Background = sprite(cfg.Sprites.Background)

	b.Music = sound(cfg.Sounds.Music)
	b.Fire = sound(cfg.Sounds.Fire)
	b.EnemyExplosion = sound(cfg.Sounds.EnemyExplosion)
	b.PlayerExplosion = sound(cfg.Sounds.PlayerExplosion)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return b, nil
}

// openAsset opens a required file, mapping a missing file to ErrAssetMissing.
func openAsset(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrAssetMissing, path)
	}
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", path, err)
	}
	return f, nil
}
