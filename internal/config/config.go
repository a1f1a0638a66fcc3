// Package config provides YAML-based configuration loading for the
// game: world dimensions, cell size, and the optional auto-step timer.
package config

import "fmt"

// Config is the full game configuration, supplied once at startup and
// immutable thereafter.
type Config struct {
	World  WorldConfig  `yaml:"world"`
	Render RenderConfig `yaml:"render"`
	Step   StepConfig   `yaml:"step"`
}

// WorldConfig defines the toroidal grid dimensions.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RenderConfig defines presentation parameters.
type RenderConfig struct {
	// CellSize is the edge length of one world cell in screen
	// characters.
	CellSize int `yaml:"cell_size"`
}

// StepConfig defines how the world advances.
type StepConfig struct {
	// AutoIntervalMs is the autonomous tick interval in milliseconds.
	// Zero disables the timer: the world then only advances on
	// direction key presses.
	AutoIntervalMs int `yaml:"auto_interval_ms"`
}

// Validate checks the startup preconditions. A non-positive dimension
// is a fatal configuration error, surfaced once here rather than
// handled in the per-step hot path.
func (c Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world size must be positive, got %dx%d", c.World.Width, c.World.Height)
	}
	if c.Render.CellSize <= 0 {
		return fmt.Errorf("config: cell_size must be positive, got %d", c.Render.CellSize)
	}
	if c.Step.AutoIntervalMs < 0 {
		return fmt.Errorf("config: auto_interval_ms must not be negative, got %d", c.Step.AutoIntervalMs)
	}
	return nil
}
