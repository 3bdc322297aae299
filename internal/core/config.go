package core

// RuntimeConfig contains configuration passed to frontends at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters (terminal) or pixels (window)
	ScreenH  int     // Screen height in characters (terminal) or pixels (window)
	TickRate int     // Frames requested per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
	Scale    float64 // Device pixel ratio applied to world sizes
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Scale:    1,
	}
}
