package config

import (
	_ "embed"
)

//go:embed defaults/torsnake.yaml
var defaultYAML []byte

// Default returns the built-in configuration: a 16x12 world drawn with
// single-character cells, key-driven stepping only.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:  16,
			Height: 12,
		},
		Render: RenderConfig{
			CellSize: 1,
		},
		Step: StepConfig{
			AutoIntervalMs: 0,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
