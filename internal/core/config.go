package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Ships left, including the one in play
	Wave     int  // Current wave, starting at 1
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Event is something notable that happened during a tick, reported to the
// platform for logging.
type Event int

const (
	EventRockDestroyed Event = iota + 1
	EventSaucerDestroyed
	EventShipDestroyed
	EventExtraLife
	EventWaveCleared
	EventGameOver
)

// String returns a short name for the event.
func (e Event) String() string {
	switch e {
	case EventRockDestroyed:
		return "rock_destroyed"
	case EventSaucerDestroyed:
		return "saucer_destroyed"
	case EventShipDestroyed:
		return "ship_destroyed"
	case EventExtraLife:
		return "extra_life"
	case EventWaveCleared:
		return "wave_cleared"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
