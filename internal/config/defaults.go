package config

import (
	_ "embed"
)

//go:embed defaults/frogger.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// Used as a last resort if the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  20,
			Height: 10,
		},
		Player: PlayerConfig{
			Lives: 3,
			Glyph: "0",
		},
		Obstacles: ObstacleConfig{
			Count:    5,
			MinWidth: 1,
			MaxWidth: 3,
			MinSpeed: -2,
			MaxSpeed: 2,
			Glyph:    "#",
		},
		Timing: TimingConfig{
			TickMillis: 100,
		},
	}
}
