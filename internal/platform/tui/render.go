package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Theme maps screen colors to lipgloss styles.
type Theme map[core.Color]lipgloss.Style

// NewTheme builds styles from the configured colors. A nil renderer uses the
// default lipgloss renderer; SSH sessions pass their own so color support is
// detected per client.
func NewTheme(r *lipgloss.Renderer, cfg config.ThemeConfig) Theme {
	style := func(c string) lipgloss.Style {
		var s lipgloss.Style
		if r != nil {
			s = r.NewStyle()
		} else {
			s = lipgloss.NewStyle()
		}
		if c != "" {
			s = s.Foreground(lipgloss.Color(c))
		}
		return s
	}

	return Theme{
		core.ColorDefault:   style(""),
		core.ColorSnakeHead: style(cfg.Head).Bold(true),
		core.ColorSnakeBody: style(cfg.Snake),
		core.ColorApple:     style(cfg.Apple),
		core.ColorBorder:    style(cfg.Border),
		core.ColorHUD:       style(cfg.HUD),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := theme[startColor]
			if !ok {
				style = theme[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
