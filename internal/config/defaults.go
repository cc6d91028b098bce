package config

import (
	_ "embed"
)

//go:embed defaults/reflex.yaml
var defaultReflexYAML []byte

// DefaultConfig returns the hardcoded default configuration, used when even
// the embedded YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Gameplay: GameplayConfig{
			Lives:         3,
			WindowSeconds: 1.5,
		},
		Timing: TimingConfig{
			FPS: 50,
		},
		Device: DeviceConfig{
			BaudRate:      115200,
			ReadTimeoutMS: 50,
			IdleSleepMS:   10,
			ChunkBytes:    32,
		},
	}
}
