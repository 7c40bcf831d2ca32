// Package config provides YAML-based game configuration loading and
// difficulty preset validation.
package config

import "fmt"

// Config contains all configuration for the game.
type Config struct {
	Grid      GridConfig     `yaml:"grid"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Timing    TimingConfig   `yaml:"timing"`
}

// Validate checks that the configuration can actually drive a game.
// Obstacle rows need at least one interior row between the top and bottom
// edges, so the grid must be at least 3 rows tall.
func (c Config) Validate() error {
	if c.Grid.Width < 1 || c.Grid.Height < 3 {
		return fmt.Errorf("grid must be at least 1x3, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Obstacles.Count < 0 {
		return fmt.Errorf("obstacle count must not be negative, got %d", c.Obstacles.Count)
	}
	if c.Obstacles.MinWidth < 1 {
		return fmt.Errorf("obstacle min width must be at least 1, got %d", c.Obstacles.MinWidth)
	}
	if c.Obstacles.MaxWidth < c.Obstacles.MinWidth {
		return fmt.Errorf("obstacle max width %d is below min width %d", c.Obstacles.MaxWidth, c.Obstacles.MinWidth)
	}
	if c.Obstacles.MaxSpeed < c.Obstacles.MinSpeed {
		return fmt.Errorf("obstacle max speed %d is below min speed %d", c.Obstacles.MaxSpeed, c.Obstacles.MinSpeed)
	}
	return nil
}

// GridConfig defines the playfield dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the frog's parameters.
type PlayerConfig struct {
	Lives int    `yaml:"lives"`
	Glyph string `yaml:"glyph"`
}

// ObstacleConfig defines the obstacle generation ranges.
// Obstacles are generated once at startup and keep their shape for the
// whole run; only their x position changes.
type ObstacleConfig struct {
	Count    int    `yaml:"count"`
	MinWidth int    `yaml:"min_width"`
	MaxWidth int    `yaml:"max_width"`
	MinSpeed int    `yaml:"min_speed"` // Cells per tick; negative moves left
	MaxSpeed int    `yaml:"max_speed"`
	Glyph    string `yaml:"glyph"`
}

// TimingConfig defines the frame cadence.
type TimingConfig struct {
	TickMillis int `yaml:"tick_ms"`
}

// TickRate returns the simulation rate in ticks per second.
func (t TimingConfig) TickRate() int {
	if t.TickMillis <= 0 {
		return 10
	}
	return 1000 / t.TickMillis
}

// DifficultyPreset represents a named difficulty level.
//
// The preset is accepted on the CLI and validated, but no game parameter
// consults it yet; it is an extension point for future obstacle-count and
// speed-range scaling.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// DefaultPreset is used when no difficulty is given on the CLI.
const DefaultPreset = DifficultyMedium

// ParsePreset validates a difficulty name from the CLI.
// An empty string maps to the default preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return DefaultPreset, nil
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (expected easy, medium or hard)", s)
	}
}
