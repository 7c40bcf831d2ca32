package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to position its playfield and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 10, i.e. a 100ms frame)
	Seed     int64 // RNG seed for deterministic obstacle layouts
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Lives      int  // Remaining lives; only ever decreases
	Terminated bool // Set once the player has quit; final
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
