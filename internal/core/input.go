package core

// Key identifies a physical key the game reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyLeft        // Left arrow, A - move left
	KeyRight       // Right arrow, D - move right
	KeyFire        // Z, Space - fire the projectile
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyFire:
		return "Fire"
	default:
		return "Unknown"
	}
}

// EventKind is the closed set of input event variants.
type EventKind int

const (
	EventNone EventKind = iota
	EventQuit
	EventKeyDown
	EventKeyUp
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "Quit"
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	default:
		return "None"
	}
}

// Event is a single discrete input event. Key is only meaningful for
// EventKeyDown and EventKeyUp.
type Event struct {
	Kind EventKind
	Key  Key
}

// QuitEvent returns a quit request.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// KeyDownEvent returns a key press for k.
func KeyDownEvent(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// KeyUpEvent returns a key release for k.
func KeyUpEvent(k Key) Event {
	return Event{Kind: EventKeyUp, Key: k}
}

// Frame holds the input events collected during one tick, in arrival order.
type Frame struct {
	Events []Event
}

// NewFrame creates an empty input frame.
func NewFrame(events ...Event) Frame {
	return Frame{Events: events}
}

// Push appends events to the frame.
func (f *Frame) Push(events ...Event) {
	f.Events = append(f.Events, events...)
}

// HasQuit returns true if a quit event was collected this frame.
func (f Frame) HasQuit() bool {
	for _, e := range f.Events {
		if e.Kind == EventQuit {
			return true
		}
	}
	return false
}

// Clear resets the frame for the next tick, keeping its backing storage.
func (f *Frame) Clear() {
	f.Events = f.Events[:0]
}
