// Package config loads reflex configuration from YAML with the usual
// search order: explicit path, user config directory, local configs
// directory, embedded default.
package config

import (
	"fmt"
	"time"
)

// Config is the full game configuration.
type Config struct {
	Gameplay GameplayConfig `yaml:"gameplay"`
	Timing   TimingConfig   `yaml:"timing"`
	Device   DeviceConfig   `yaml:"device"`
}

// GameplayConfig tunes the round rules.
type GameplayConfig struct {
	Lives         int     `yaml:"lives"`
	WindowSeconds float64 `yaml:"window_seconds"`
}

// TimingConfig tunes the frame loop.
type TimingConfig struct {
	FPS int `yaml:"fps"`
}

// DeviceConfig describes the serial reaction pad.
type DeviceConfig struct {
	Port          string `yaml:"port"` // Empty means keyboard-only mode
	BaudRate      int    `yaml:"baud_rate"`
	ReadTimeoutMS int    `yaml:"read_timeout_ms"`
	IdleSleepMS   int    `yaml:"idle_sleep_ms"`
	ChunkBytes    int    `yaml:"chunk_bytes"`
}

// Window returns the reaction window as a duration.
func (c Config) Window() time.Duration {
	return time.Duration(c.Gameplay.WindowSeconds * float64(time.Second))
}

// ReadTimeout returns the serial read timeout as a duration.
func (c DeviceConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutMS) * time.Millisecond
}

// IdleSleep returns the empty-read pause as a duration.
func (c DeviceConfig) IdleSleep() time.Duration {
	return time.Duration(c.IdleSleepMS) * time.Millisecond
}

// Validate checks the invariants the game loop relies on.
func (c Config) Validate() error {
	if c.Gameplay.WindowSeconds <= 0 {
		return fmt.Errorf("config: reaction window must be positive, got %gs", c.Gameplay.WindowSeconds)
	}
	if c.Gameplay.Lives < 1 {
		return fmt.Errorf("config: lives must be at least 1, got %d", c.Gameplay.Lives)
	}
	if c.Timing.FPS < 1 {
		return fmt.Errorf("config: fps must be at least 1, got %d", c.Timing.FPS)
	}
	return nil
}
