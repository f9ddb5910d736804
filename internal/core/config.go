package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the summary a game reports to the platform after each step.
type GameState struct {
	Leg     int  // 1-based leg number
	Rolled  int  // dice rolled in the current leg
	Paused  bool // autoplay paused or window too small
	LegDone bool // every camel rolled; next advance starts a new leg
}

// Event is something that happened during a step, reported for logging.
// Attrs are alternating key/value pairs.
type Event struct {
	Kind  string
	Attrs []any
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State  GameState
	Events []Event
}
