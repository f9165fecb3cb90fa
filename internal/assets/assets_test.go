package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/azure-skies/internal/config"
	"github.com/vovakirdan/azure-skies/internal/core"
)

var testFormat = beep.Format{SampleRate: 22050, NumChannels: 1, Precision: 2}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func writeWAV(t *testing.T, path string, d time.Duration) {
	t.Helper()
	sine, err := generators.SineTone(testFormat.SampleRate, 440)
	if err != nil {
		t.Fatalf("sine: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := wav.Encode(f, beep.Take(testFormat.SampleRate.N(d), sine), testFormat); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

// writeAssets fills dir with every file named by the default config.
func writeAssets(t *testing.T, dir string) config.AssetsConfig {
	t.Helper()
	cfg := config.Default().Assets
	cfg.Dir = dir

	writePNG(t, filepath.Join(dir, cfg.Sprites.Player), 64, 64)
	writePNG(t, filepath.Join(dir, cfg.Sprites.Enemy), 64, 64)
	writePNG(t, filepath.Join(dir, cfg.Sprites.Projectile), 32, 32)
	writePNG(t, filepath.Join(dir, cfg.Sprites.Background), 75, 50)

	for _, name := range []string{cfg.Sounds.Music, cfg.Sounds.Fire, cfg.Sounds.EnemyExplosion, cfg.Sounds.PlayerExplosion} {
		writeWAV(t, filepath.Join(dir, name), 50*time.Millisecond)
	}
	return cfg
}

func TestLoad(t *testing.T) {
	cfg := writeAssets(t, t.TempDir())

	b, err := Load(cfg)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	sprites := []struct {
		name string
		s    *Sprite
		w, h int
	}{
		{"player", b.Player, 64, 64},
		{"enemy", b.Enemy, 64, 64},
		{"projectile", b.Projectile, 32, 32},
		{"background", b.Background, 75, 50},
	}
	for _, tt := range sprites {
		if tt.s.Width() != tt.w || tt.s.Height() != tt.h {
			t.Errorf("%s size = %dx%d, expected %dx%d", tt.name, tt.s.Width(), tt.s.Height(), tt.w, tt.h)
		}
	}

	for cue, s := range b.Sounds() {
		if s == nil {
			t.Fatalf("sound %s not loaded", cue)
		}
		if s.Format().SampleRate != testFormat.SampleRate {
			t.Errorf("%s sample rate = %d, expected %d", cue, s.Format().SampleRate, testFormat.SampleRate)
		}
		if s.Duration() <= 0 {
			t.Errorf("%s duration = %v, expected > 0", cue, s.Duration())
		}
	}
}

func TestLoadReportsEveryMissingFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeAssets(t, dir)

	for _, name := range []string{cfg.Sprites.Enemy, cfg.Sounds.Fire} {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			t.Fatal(err)
		}
	}

	_, err := Load(cfg)
	if !errors.Is(err, ErrAssetMissing) {
		t.Fatalf("Load error = %v, expected ErrAssetMissing", err)
	}
	for _, name := range []string{cfg.Sprites.Enemy, cfg.Sounds.Fire} {
		if !bytes.Contains([]byte(err.Error()), []byte(name)) {
			t.Errorf("error %q does not name %s", err, name)
		}
	}
}

func TestResolveDir(t *testing.T) {
	t.Run("explicit", func(t *testing.T) {
		dir := t.TempDir()
		got, err := ResolveDir(dir)
		if err != nil || got != dir {
			t.Errorf("ResolveDir(%q) = %q, %v", dir, got, err)
		}
	})

	t.Run("explicit missing", func(t *testing.T) {
		_, err := ResolveDir(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrAssetsDirNotFound) {
			t.Errorf("err = %v, expected ErrAssetsDirNotFound", err)
		}
	})

	t.Run("working directory", func(t *testing.T) {
		root := t.TempDir()
		want := filepath.Join(root, "assets")
		if err := os.Mkdir(want, 0o755); err != nil {
			t.Fatal(err)
		}
		t.Chdir(root)
		got, err := ResolveDir("")
		if err != nil || got != want {
			t.Errorf("ResolveDir() = %q, %v, expected %q", got, err, want)
		}
	})

	t.Run("parent directory", func(t *testing.T) {
		root := t.TempDir()
		want := filepath.Join(root, "assets")
		sub := filepath.Join(root, "cmd")
		for _, d := range []string{want, sub} {
			if err := os.Mkdir(d, 0o755); err != nil {
				t.Fatal(err)
			}
		}
		t.Chdir(sub)
		got, err := ResolveDir("")
		if err != nil || got != want {
			t.Errorf("ResolveDir() = %q, %v, expected %q", got, err, want)
		}
	})

	t.Run("none", func(t *testing.T) {
		t.Chdir(t.TempDir())
		_, err := ResolveDir("")
		if !errors.Is(err, ErrAssetsDirNotFound) {
			t.Errorf("err = %v, expected ErrAssetsDirNotFound", err)
		}
	})
}

func TestSpritePixels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 10})

	s := NewSprite("t.png", img)

	if c, ok := s.Pixel(0, 0); !ok || c != core.RGB(255, 0, 0) {
		t.Errorf("Pixel(0,0) = %d, %v, expected %d, true", c, ok, core.RGB(255, 0, 0))
	}
	if _, ok := s.Pixel(1, 0); ok {
		t.Error("nearly transparent pixel reported opaque")
	}
	if _, ok := s.Pixel(5, 5); ok {
		t.Error("out of range pixel reported opaque")
	}
	if s.Name() != "t.png" {
		t.Errorf("Name() = %q", s.Name())
	}
}

func TestDecodeErrors(t *testing.T) {
	garbage := []byte("definitely not an image")

	if _, err := DecodeSprite("bad.png", bytes.NewReader(garbage)); err == nil {
		t.Error("DecodeSprite accepted garbage")
	}
	if _, err := DecodeSound("bad.wav", bytes.NewReader(garbage)); err == nil {
		t.Error("DecodeSound accepted garbage")
	}
}

func TestSoundStreamerReplays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.wav")
	writeWAV(t, path, 20*time.Millisecond)

	s, err := LoadSound(path)
	if err != nil {
		t.Fatalf("LoadSound: %v", err)
	}

	first, second := s.Streamer(), s.Streamer()
	if first.Len() != second.Len() || first.Len() == 0 {
		t.Errorf("streamer lengths = %d, %d", first.Len(), second.Len())
	}
}
