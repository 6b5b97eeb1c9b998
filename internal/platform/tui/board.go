package tui

import (
	"errors"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var errCaptureDisabled = errors.New("capture is disabled for this session")

// boardSnapshot is a copy of the board taken on the update loop, so the
// capture command can draw it without touching the live game.
type boardSnapshot struct {
	grid     core.Grid
	segments []core.Point
	apple    core.Point
}

func (b boardSnapshot) Grid() core.Grid { return b.grid }
func (b boardSnapshot) Segments() []core.Point { return b.segments }
func (b boardSnapshot) ApplePosition() core.Point { return b.apple }
