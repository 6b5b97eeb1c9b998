package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying   GameStateType = "playing"
	StatePaused    GameStateType = "paused"
	StateBoardFull GameStateType = "board_full"
)

// Snapshot captures the complete game state for determinism testing and debugging.
type Snapshot struct {
	Tick         uint64
	Score        int
	Best         int
	Resets       int
	SnakeLen     int
	TargetLength int
	Head         core.Point
	Dir          Direction
	Apple        core.Point
	State        GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.boardFull:
		state = StateBoardFull
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:         g.tick,
		Score:        g.score,
		Best:         g.best,
		Resets:       g.resets,
		SnakeLen:     g.snake.Len(),
		TargetLength: g.snake.TargetLength(),
		Head:         g.snake.Head(),
		Dir:          g.snake.Direction(),
		Apple:        g.apple.Position(),
		State:        state,
	}
}
