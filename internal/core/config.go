package core

// RuntimeConfig contains configuration passed to the game at
// initialization. The game uses it to adapt to screen size and for
// deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Display ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic runs; 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState represents the current state of the runner, communicated
// to the platform each display tick.
type GameState struct {
	Score    int     // Index of the last-passed gate
	Distance float64 // Arc length traveled
	Speed    float64 // Current forward speed
	OnTrack  bool    // False while airborne
	GameOver bool    // Whether the run has ended
	Paused   bool    // Whether the game is paused
}
