package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML and Default() disagree:\n%+v\n%+v", cfg, Default())
	}
}

func TestParsePartialFile(t *testing.T) {
	cfg, err := Parse([]byte("audio:\n  enabled: false\ninput:\n  hold_ms: 90\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Audio.Enabled {
		t.Error("audio.enabled from file should win")
	}
	if cfg.Input.HoldDuration() != 90*time.Millisecond {
		t.Errorf("hold = %v, expected 90ms", cfg.Input.HoldDuration())
	}
	if cfg.Assets.Sprites.Player != "spaceship.png" {
		t.Errorf("missing fields should keep defaults, player sprite = %q", cfg.Assets.Sprites.Player)
	}
	if cfg.Audio.BufferDuration() != 100*time.Millisecond {
		t.Errorf("buffer = %v, expected default 100ms", cfg.Audio.BufferDuration())
	}
}

func TestParseRestoresZeroValues(t *testing.T) {
	cfg, err := Parse([]byte("assets:\n  sprites:\n    enemy: \"\"\naudio:\n  sample_rate: 0\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Assets.Sprites.Enemy != "ufo.png" {
		t.Errorf("enemy sprite = %q, expected default", cfg.Assets.Sprites.Enemy)
	}
	if cfg.Audio.SampleRate != 44100 {
		t.Errorf("sample rate = %d, expected default", cfg.Audio.SampleRate)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("audio: [not, a, map")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("assets:\n  dir: /opt/skies/assets\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Assets.Dir != "/opt/skies/assets" {
		t.Errorf("assets dir = %q", cfg.Assets.Dir)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for a missing explicit config")
	}
	if cfg != Default() {
		t.Error("failed load should still return usable defaults")
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", FileName), []byte("log:\n  level: debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, expected debug from ./configs", cfg.Log.Level)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.skies/skies.log")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, ".skies", "skies.log") {
		t.Errorf("ExpandHome = %q", got)
	}

	if got, _ := ExpandHome("/var/log/skies.log"); got != "/var/log/skies.log" {
		t.Errorf("absolute paths must be left alone, got %q", got)
	}
}
