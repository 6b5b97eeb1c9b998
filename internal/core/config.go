package core

// RuntimeConfig contains per-session parameters handed to the game by the platform.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  30,
		TickRate: 10,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the externally visible status of a game.
type GameState struct {
	Score    int  // Apples eaten since the last reset
	GameOver bool // Board is full; only a restart continues
	Paused   bool
}

// Event is something notable that happened during a tick.
type Event string

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// HasEvent reports whether the tick produced the given event.
func (r StepResult) HasEvent(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}
