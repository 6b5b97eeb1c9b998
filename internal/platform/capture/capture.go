// Package capture renders the board to PNG images: every occupied cell is a
// cell-sized square at position * cell size.
package capture

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Board is what the capture needs from a game.
type Board interface {
	Grid() core.Grid
	Segments() []core.Point
	ApplePosition() core.Point
}

// Palette holds hex colors ("#rrggbb") for the image.
type Palette struct {
	Background string
	Border     string
	Snake      string
	Head       string
	Apple      string
}

// DefaultPalette is a black board with green snake and red apple.
func DefaultPalette() Palette {
	return Palette{
		Background: "#000000",
		Border:     "#5dd8e4",
		Snake:      "#00ff00",
		Head:       "#00ff00",
		Apple:      "#ff0000",
	}
}

// PaletteFromTheme takes the hex entries of a terminal theme and keeps the
// defaults for ANSI color codes, which have no fixed RGB value.
func PaletteFromTheme(theme config.ThemeConfig) Palette {
	p := DefaultPalette()
	pick := func(dst *string, v string) {
		if strings.HasPrefix(v, "#") {
			*dst = v
		}
	}
	pick(&p.Border, theme.Border)
	pick(&p.Snake, theme.Snake)
	pick(&p.Head, theme.Head)
	pick(&p.Apple, theme.Apple)
	return p
}

// Draw renders the board into a new drawing context.
func Draw(b Board, p Palette) *gg.Context {
	grid := b.Grid()
	w, h := grid.PixelSize()

	dc := gg.NewContext(w, h)
	dc.SetHexColor(p.Background)
	dc.Clear()

	square := func(pt core.Point, fill string) {
		r := grid.Rect(pt)
		dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
		dc.SetHexColor(fill)
		dc.FillPreserve()
		dc.SetHexColor(p.Border)
		dc.SetLineWidth(1)
		dc.Stroke()
	}

	square(b.ApplePosition(), p.Apple)
	segments := b.Segments()
	for i := len(segments) - 1; i >= 0; i-- {
		if i == 0 {
			square(segments[i], p.Head)
		} else {
			square(segments[i], p.Snake)
		}
	}
	return dc
}

// WritePNG encodes the board as PNG.
func WritePNG(w io.Writer, b Board, p Palette) error {
	if err := Draw(b, p).EncodePNG(w); err != nil {
		return fmt.Errorf("capture: cannot encode png: %w", err)
	}
	return nil
}

// SaveFile writes a timestamped PNG into dir and returns its path.
func SaveFile(dir string, b Board, p Palette) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("capture: cannot create directory %s: %w", dir, err)
	}

	name := fmt.Sprintf("snake_%s.png", time.Now().Format("20060102_150405.000"))
	path := filepath.Join(dir, name)
	if err := Draw(b, p).SavePNG(path); err != nil {
		return "", fmt.Errorf("capture: cannot save %s: %w", path, err)
	}
	return path, nil
}

// DefaultDir is where captures go when no directory is configured.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "captures"
	}
	return filepath.Join(home, ".snake", "captures")
}
