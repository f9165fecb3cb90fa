package tui

import (
	"time"

	"github.com/vovakirdan/azure-skies/internal/core"
)

// DefaultHoldWindow is used when no hold window is configured.
const DefaultHoldWindow = 150 * time.Millisecond

// trackedKeys fixes the order in which releases are reported.
var trackedKeys = []core.Key{core.KeyLeft, core.KeyRight}

// HoldTracker synthesizes key-up events for the movement keys. A key counts
// as held from its first press until no press or repeat has arrived for the
// hold window. Fire is a tap: every press is a key-down.
type HoldTracker struct {
	window time.Duration
	now    func() time.Time
	seen   map[core.Key]time.Time
}

// NewHoldTracker creates a tracker. A nil clock uses time.Now.
func NewHoldTracker(window time.Duration, now func() time.Time) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	if now == nil {
		now = time.Now
	}
	return &HoldTracker{
		window: window,
		now:    now,
		seen:   make(map[core.Key]time.Time),
	}
}

// opposite returns the other horizontal direction.
func opposite(k core.Key) core.Key {
	switch k {
	case core.KeyLeft:
		return core.KeyRight
	case core.KeyRight:
		return core.KeyLeft
	}
	return core.KeyUnknown
}

// Press records a press or repeat of k and returns the events it causes.
func (h *HoldTracker) Press(k core.Key) []core.Event {
	switch k {
	case core.KeyUnknown:
		return nil
	case core.KeyFire:
		return []core.Event{core.KeyDownEvent(core.KeyFire)}
	}

	var events []core.Event
	if other := opposite(k); h.Held(other) {
		delete(h.seen, other)
		events = append(events, core.KeyUpEvent(other))
	}

	if !h.Held(k) {
		events = append(events, core.KeyDownEvent(k))
	}
	h.seen[k] = h.now()
	return events
}

// Expire releases every key whose hold window has run out.
func (h *HoldTracker) Expire() []core.Event {
	now := h.now()
	var events []core.Event
	for _, k := range trackedKeys {
		last, ok := h.seen[k]
		if ok && now.Sub(last) >= h.window {
			delete(h.seen, k)
			events = append(events, core.KeyUpEvent(k))
		}
	}
	return events
}

// ReleaseAll releases every held key.
func (h *HoldTracker) ReleaseAll() []core.Event {
	var events []core.Event
	for _, k := range trackedKeys {
		if _, ok := h.seen[k]; ok {
			delete(h.seen, k)
			events = append(events, core.KeyUpEvent(k))
		}
	}
	return events
}

// Held reports whether k is currently held.
func (h *HoldTracker) Held(k core.Key) bool {
	_, ok := h.seen[k]
	return ok
}
