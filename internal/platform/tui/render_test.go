package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestNewThemeCoversAllColors(t *testing.T) {
	theme := NewTheme(nil, config.Default().Theme)

	colors := []core.Color{
		core.ColorDefault,
		core.ColorSnakeHead,
		core.ColorSnakeBody,
		core.ColorApple,
		core.ColorBorder,
		core.ColorHUD,
	}
	for _, c := range colors {
		if _, ok := theme[c]; !ok {
			t.Errorf("Theme has no style for %v", c)
		}
	}
}

func TestRenderScreenWithoutColorSupport(t *testing.T) {
	theme := NewTheme(lipgloss.NewRenderer(io.Discard), config.ThemeConfig{})

	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "Snake")
	s.SetColored(2, 1, '█', core.ColorApple)
	s.SetColored(3, 1, '█', core.ColorApple)
	s.DrawTextColored(0, 2, "hud", core.ColorHUD)

	got := RenderScreen(s, theme)
	if got != s.String() {
		t.Errorf("RenderScreen() =\n%q\nexpected plain screen\n%q", got, s.String())
	}
	if lines := strings.Count(got, "\n") + 1; lines != 3 {
		t.Errorf("Rendered %d lines, expected 3", lines)
	}
}
