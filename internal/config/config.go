// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Config contains all tunable parameters of a game session.
type Config struct {
	Grid     GridConfig  `yaml:"grid"`
	Snake    SnakeConfig `yaml:"snake"`
	Apple    AppleConfig `yaml:"apple"`
	TickRate int         `yaml:"tick_rate"` // Simulation ticks per second
	Theme    ThemeConfig `yaml:"theme"`
}

// GridConfig describes the playfield geometry. When Dimensions is set it
// wins over the screen size / cell size derivation.
type GridConfig struct {
	ScreenWidth  int   `yaml:"screen_width"`
	ScreenHeight int   `yaml:"screen_height"`
	CellSize     int   `yaml:"cell_size"`
	Dimensions   []int `yaml:"grid_dimensions,omitempty"` // [cells_x, cells_y]
}

// SnakeConfig defines the snake's initial configuration.
type SnakeConfig struct {
	InitialLength  int    `yaml:"initial_length"`
	StartDirection string `yaml:"start_direction"` // up, down, left or right
}

// AppleConfig defines apple placement parameters.
type AppleConfig struct {
	MaxSamples int `yaml:"max_samples"` // Random draws before falling back to a free-cell scan
}

// ThemeConfig maps board elements to terminal colors (ANSI 256 codes or hex).
type ThemeConfig struct {
	Snake  string `yaml:"snake"`
	Head   string `yaml:"head"`
	Apple  string `yaml:"apple"`
	Border string `yaml:"border"`
	HUD    string `yaml:"hud"`
}

// Grid builds the immutable grid described by the configuration.
func (c Config) Grid() (core.Grid, error) {
	if len(c.Grid.Dimensions) > 0 {
		if len(c.Grid.Dimensions) != 2 {
			return core.Grid{}, fmt.Errorf("config: grid_dimensions needs 2 values, got %d", len(c.Grid.Dimensions))
		}
		return core.NewGrid(c.Grid.Dimensions[0], c.Grid.Dimensions[1], c.Grid.CellSize)
	}
	return core.GridFromScreen(c.Grid.ScreenWidth, c.Grid.ScreenHeight, c.Grid.CellSize)
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	grid, err := c.Grid()
	if err != nil {
		return err
	}
	if c.Snake.InitialLength < 1 {
		return fmt.Errorf("config: snake.initial_length must be at least 1, got %d", c.Snake.InitialLength)
	}
	if c.Snake.InitialLength >= grid.Cells() {
		return fmt.Errorf("config: snake.initial_length %d does not fit a %dx%d grid",
			c.Snake.InitialLength, grid.Width, grid.Height)
	}
	switch c.Snake.StartDirection {
	case "up", "down", "left", "right":
	default:
		return fmt.Errorf("config: unknown snake.start_direction %q", c.Snake.StartDirection)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.TickRate)
	}
	if c.Apple.MaxSamples < 0 {
		return fmt.Errorf("config: apple.max_samples must not be negative, got %d", c.Apple.MaxSamples)
	}
	return nil
}
