package core

// RuntimeConfig holds what the platform knows at start-up: the terminal size,
// the tick rate and the RNG seed.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed, 0 means time based
}

// DefaultConfig returns a RuntimeConfig matching the classic 100ms tick.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0,
	}
}
