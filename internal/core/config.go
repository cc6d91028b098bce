package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// Immutable after construction.
type RuntimeConfig struct {
	Window time.Duration // Reaction window per round (must be > 0)
	Lives  int           // Starting lives
	FPS    int           // Frame rate of the main loop
	Seed   int64         // RNG seed for deterministic rounds (0 = time-based in platform layer)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Window: 1500 * time.Millisecond,
		Lives:  3,
		FPS:    50,
		Seed:   0,
	}
}

// FramePeriod returns the duration of one frame at the configured rate.
func (c RuntimeConfig) FramePeriod() time.Duration {
	fps := c.FPS
	if fps <= 0 {
		fps = 50
	}
	return time.Second / time.Duration(fps)
}
