package core

// RuntimeConfig contains configuration passed to the simulation at reset.
// The platform fills it from flags and the terminal environment.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Simulation ticks per second (default 30)
	Seed      int64 // RNG seed; 0 means use current time in platform layer
	TimeLimit int   // Session time limit in seconds; 0 disables the limit
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  30,
		Seed:      0,
		TimeLimit: 120,
	}
}
