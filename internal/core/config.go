package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Status is a snapshot of the game's outward-facing state.
type Status struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended
	Ticks    int  // Update phases run so far
}

// StepResult is returned by Game.Step() after each simulation tick.
// Sounds lists the audio cues raised during the tick, in order.
type StepResult struct {
	Status Status
	Quit   bool
	Sounds []Sound
}
