package audio

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/azure-skies/internal/assets"
	"github.com/vovakirdan/azure-skies/internal/config"
	"github.com/vovakirdan/azure-skies/internal/core"
)

// resampleQuality is the beep resampler quality used for rate conversion.
const resampleQuality = 4

// ErrDisabled is returned by Open when audio is turned off in the config.
var ErrDisabled = errors.New("audio: disabled")

// Library supplies decoded sounds by cue.
type Library map[core.Sound]*assets.Sound

// Speaker plays sounds on the system audio device through a beep mixer.
type Speaker struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	sounds Library
	mixer  *beep.Mixer
	music  *beep.Ctrl
	logger *log.Logger
	closed bool
}

// Open initializes the speaker and starts the mixer.
func Open(cfg config.AudioConfig, sounds Library, logger *log.Logger) (*Speaker, error) {
	if !cfg.Enabled {
		return nil, ErrDisabled
	}

	s := newSpeaker(cfg, sounds, logger)
	if err := speaker.Init(s.rate, s.rate.N(cfg.BufferDuration())); err != nil {
		return nil, fmt.Errorf("audio: cannot initialize speaker: %w", err)
	}
	speaker.Play(s.mixer)

	logger.Debug("speaker ready", "rate", int(s.rate), "buffer", cfg.BufferDuration())
	return s, nil
}

// OpenOrNop opens the speaker and falls back to a silent sink on failure.
func OpenOrNop(cfg config.AudioConfig, sounds Library, logger *log.Logger) Sink {
	s, err := Open(cfg, sounds, logger)
	switch {
	case errors.Is(err, ErrDisabled):
		logger.Info("audio muted")
		return Nop{}
	case err != nil:
		logger.Warn("audio unavailable, continuing silently", "error", err)
		return Nop{}
	}
	return s
}

func newSpeaker(cfg config.AudioConfig, sounds Library, logger *log.Logger) *Speaker {
	return &Speaker{
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
		sounds: sounds,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// stream builds a streamer for sound at the output rate and volume.
func (s *Speaker) stream(sound core.Sound, loop bool) (beep.Streamer, bool) {
	src, ok := s.sounds[sound]
	if !ok || src == nil {
		return nil, false
	}

	var st beep.Streamer = src.Streamer()
	if loop {
		st = beep.Loop(-1, src.Streamer())
	}
	if rate := src.Format().SampleRate; rate != s.rate {
		st = beep.Resample(resampleQuality, rate, s.rate, st)
	}
	return &effects.Volume{
		Streamer: st,
		Base:     2,
		Volume:   s.volume,
		Silent:   false,
	}, true
}

// Play mixes a one-shot effect into the output.
func (s *Speaker) Play(sound core.Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	st, ok := s.stream(sound, false)
	if !ok {
		s.logger.Debug("no sound for cue", "cue", sound)
		return
	}

	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// PlayMusic starts the background loop. A running loop is not restarted.
func (s *Speaker) PlayMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if s.music != nil && !s.music.Paused {
		return
	}

	st, ok := s.stream(core.SoundMusic, true)
	if !ok {
		s.logger.Debug("no music track")
		return
	}

	s.music = &beep.Ctrl{Streamer: st, Paused: false}
	speaker.Lock()
	s.mixer.Add(s.music)
	speaker.Unlock()
}

// Close stops all playback and shuts the device down.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	speaker.Lock()
	if s.music != nil {
		s.music.Paused = true
	}
	s.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
}
