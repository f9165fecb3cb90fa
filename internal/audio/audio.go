// Package audio plays the game's sound cues and background music.
package audio

import (
	"sync"

	"github.com/vovakirdan/azure-skies/internal/core"
)

// Sink receives audio cues from the game loop. Implementations must not block.
type Sink interface {
	// Play starts a one-shot sound effect.
	Play(sound core.Sound)
	// PlayMusic starts the looping background track.
	PlayMusic()
	// Close stops all playback and releases the device.
	Close()
}

// Nop is a sink that discards every cue.
type Nop struct{}

func (Nop) Play(core.Sound) {}
func (Nop) PlayMusic()      {}
func (Nop) Close()          {}

// Recorder is a sink that remembers the cues it receives.
type Recorder struct {
	mu     sync.Mutex
	played []core.Sound
	closed bool
}

// Play records sound.
func (r *Recorder) Play(sound core.Sound) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.played = append(r.played, sound)
}

// PlayMusic records a music cue.
func (r *Recorder) PlayMusic() {
	r.Play(core.SoundMusic)
}

// Close marks the recorder closed.
func (r *Recorder) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
}

// Played returns a copy of every cue received so far.
func (r *Recorder) Played() []core.Sound {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Sound, len(r.played))
	copy(out, r.played)
	return out
}

// Count returns how many times sound was played.
func (r *Recorder) Count(sound core.Sound) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, s := range r.played {
		if s == sound {
			n++
		}
	}
	return n
}

// Closed reports whether Close was called.
func (r *Recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}
