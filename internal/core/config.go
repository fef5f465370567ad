package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Status is what the platform needs to know about the game after a tick.
type Status struct {
	GameOver bool   // The current game has been won or tied
	Busy     bool   // An animation is running; input is being ignored
	Message  string // Current banner text, if any
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	Status Status
}
