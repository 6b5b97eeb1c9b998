package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: a 640x480 board of 20-unit
// cells (32x24), a two-segment snake heading right, ten ticks per second.
func Default() Config {
	return Config{
		Grid: GridConfig{
			ScreenWidth:  640,
			ScreenHeight: 480,
			CellSize:     20,
		},
		Snake: SnakeConfig{
			InitialLength:  2,
			StartDirection: "right",
		},
		Apple: AppleConfig{
			MaxSamples: 1024,
		},
		TickRate: 10,
		Theme: ThemeConfig{
			Snake:  "10",
			Head:   "46",
			Apple:  "9",
			Border: "80",
			HUD:    "245",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
