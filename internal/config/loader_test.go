package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Embedded defaults differ from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestDefaultGrid(t *testing.T) {
	grid, err := Default().Grid()
	if err != nil {
		t.Fatalf("Grid() failed: %v", err)
	}
	if grid.Width != 32 || grid.Height != 24 || grid.CellSize != 20 {
		t.Errorf("Default grid = %+v, expected 32x24 at 20", grid)
	}
}

func TestGridDimensionsOverride(t *testing.T) {
	cfg, err := Parse([]byte("grid:\n  grid_dimensions: [10, 8]\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	grid, err := cfg.Grid()
	if err != nil {
		t.Fatalf("Grid() failed: %v", err)
	}
	if grid.Width != 10 || grid.Height != 8 {
		t.Errorf("Grid = %dx%d, expected 10x8", grid.Width, grid.Height)
	}
	// Untouched keys keep their defaults
	if cfg.TickRate != 10 || cfg.Snake.InitialLength != 2 {
		t.Errorf("Partial config lost defaults: %+v", cfg)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		errPart string
	}{
		{"bad dimensions count", "grid:\n  grid_dimensions: [10]\n", "grid_dimensions"},
		{"zero cell size", "grid:\n  cell_size: 0\n", "cell size"},
		{"zero length", "snake:\n  initial_length: 0\n", "initial_length"},
		{"length fills grid", "grid:\n  grid_dimensions: [2, 1]\nsnake:\n  initial_length: 2\n", "does not fit"},
		{"unknown direction", "snake:\n  start_direction: north\n", "start_direction"},
		{"zero tick rate", "tick_rate: 0\n", "tick_rate"},
		{"negative samples", "apple:\n  max_samples: -1\n", "max_samples"},
		{"malformed yaml", "grid: [", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if tc.errPart != "" && !strings.Contains(err.Error(), tc.errPart) {
				t.Errorf("Error %q should mention %q", err, tc.errPart)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("tick_rate: 15\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TickRate != 15 {
		t.Errorf("TickRate = %d, expected 15", cfg.TickRate)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing custom config")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".snake")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("tick_rate: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TickRate != 20 {
		t.Errorf("TickRate = %d, expected 20 from user config", cfg.TickRate)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load() without files = %+v, expected defaults", cfg)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Grid.Dimensions = []int{12, 9}

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "grid_dimensions") {
		t.Errorf("Marshalled config should contain grid_dimensions:\n%s", data)
	}

	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !reflect.DeepEqual(back, cfg) {
		t.Errorf("Round trip mismatch:\n%+v\n%+v", back, cfg)
	}
}
