package audio

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/azure-skies/internal/config"
	"github.com/vovakirdan/azure-skies/internal/core"
)

func TestRecorder(t *testing.T) {
	var r Recorder
	var sink Sink = &r

	sink.PlayMusic()
	sink.Play(core.SoundFire)
	sink.Play(core.SoundFire)
	sink.Play(core.SoundEnemyExplosion)
	sink.Close()

	want := []core.Sound{core.SoundMusic, core.SoundFire, core.SoundFire, core.SoundEnemyExplosion}
	got := r.Played()
	if len(got) != len(want) {
		t.Fatalf("Played() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Played()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
	if n := r.Count(core.SoundFire); n != 2 {
		t.Errorf("Count(fire) = %d, expected 2", n)
	}
	if !r.Closed() {
		t.Error("Closed() = false after Close")
	}
}

func TestOpenDisabled(t *testing.T) {
	cfg := config.Default().Audio
	cfg.Enabled = false
	logger := log.New(io.Discard)

	if _, err := Open(cfg, nil, logger); err != ErrDisabled {
		t.Errorf("Open() error = %v, expected ErrDisabled", err)
	}
	if _, ok := OpenOrNop(cfg, nil, logger).(Nop); !ok {
		t.Error("OpenOrNop() with audio disabled did not return Nop")
	}
}

func TestSpeakerStreamMissingCue(t *testing.T) {
	s := newSpeaker(config.Default().Audio, Library{}, log.New(io.Discard))
	if _, ok := s.stream(core.SoundFire, false); ok {
		t.Error("stream() for unknown cue reported ok")
	}
}
