// Package snake implements the snake simulation: a chain of segments moving
// on a toroidal grid, growing on apples and restarting when it bites itself.
// Game logic is pure; the platform handles input mapping, timing and display.
package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Events reported in core.StepResult.
const (
	EventAppleEaten core.Event = "apple_eaten"
	EventReset      core.Event = "reset"
	EventBoardFull  core.Event = "board_full"
)

// Layout of the terminal rendering.
const (
	hudHeight   = 1 // Status line above the playfield
	cellColumns = 2 // Terminal columns per grid cell, keeps cells roughly square
)

// Game owns one snake and one apple for the whole session and advances them
// once per tick.
type Game struct {
	grid core.Grid
	rng  *rand.Rand
	tick uint64

	snake *Snake
	apple *Apple

	// Transient result of the most recent Advance, for renderers that erase
	// the vacated tail instead of redrawing everything.
	displaced    core.Point
	hasDisplaced bool

	score  int // Apples eaten since the last reset
	best   int // Highest score this session, in memory only
	resets int

	paused    bool
	boardFull bool
}

// New builds a game from a validated configuration.
// Reset must be called before the first Step.
func New(cfg config.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := cfg.Grid()
	if err != nil {
		return nil, err
	}
	dir, err := ParseDirection(cfg.Snake.StartDirection)
	if err != nil {
		return nil, err
	}

	return &Game{
		grid: grid,
		rng:  rand.New(rand.NewSource(1)),
		snake: NewSnake(grid, SnakeOptions{
			InitialLength: cfg.Snake.InitialLength,
			Start:         grid.Center(),
			Direction:     dir,
		}),
		apple: NewApple(grid, cfg.Apple.MaxSamples),
	}, nil
}

// Reset starts a new session with the RNG seed from cfg. The session best
// is cleared too.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.best = 0
	g.restart(cfg.Seed)
}

// restart begins a new round after the board filled up. Only the session
// best carries over.
func (g *Game) restart(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
	g.tick = 0
	g.score = 0
	g.resets = 0
	g.paused = false
	g.boardFull = false
	g.hasDisplaced = false

	g.snake.Reset()
	g.relocateApple()
}

// Step advances the game by one tick.
//
// Order within a tick: pause/restart handling, direction input, Advance,
// then either the apple check or the self-collision check. Eating and dying
// are exclusive, so the tick that grows the snake never also resets it.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) && g.boardFull {
		g.restart(g.rng.Int63())
		return g.result(nil)
	}

	if input.Has(core.ActionPause) && !g.boardFull {
		g.paused = !g.paused
	}

	if g.paused || g.boardFull {
		g.hasDisplaced = false
		return g.result(nil)
	}

	g.processInput(input)

	g.tick++
	g.displaced, g.hasDisplaced = g.snake.Advance()

	var events []core.Event
	switch {
	case g.snake.Head() == g.apple.Position():
		g.snake.Grow()
		g.score++
		g.best = max(g.best, g.score)
		events = append(events, EventAppleEaten)
		if !g.relocateApple() {
			events = append(events, EventBoardFull)
		}

	case g.snake.SelfCollision():
		g.snake.Reset()
		g.score = 0
		g.resets++
		events = append(events, EventReset)
		if !g.relocateApple() {
			events = append(events, EventBoardFull)
		}
	}

	return g.result(events)
}

// processInput queues every direction request in arrival order. Each is
// checked against the direction the snake is moving in now, and a later
// accepted request replaces an earlier one.
func (g *Game) processInput(input core.InputFrame) {
	for _, a := range input.Actions() {
		if !a.IsDirection() {
			continue
		}
		if dir, ok := directionFor(a); ok {
			g.snake.QueueDirection(dir)
		}
	}
}

// relocateApple moves the apple off the snake. It returns false and enters
// the board-full state when no cell is left.
func (g *Game) relocateApple() bool {
	err := g.apple.Relocate(g.rng, g.snake.Occupied())
	if errors.Is(err, ErrBoardFull) {
		g.boardFull = true
		return false
	}
	return true
}

func (g *Game) result(events []core.Event) core.StepResult {
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.boardFull,
		Paused:   g.paused,
	}
}

// Grid returns the playfield geometry.
func (g *Game) Grid() core.Grid {
	return g.grid
}

// Segments returns the snake body, head first.
func (g *Game) Segments() []core.Point {
	return g.snake.Segments()
}

// ApplePosition returns the apple's cell.
func (g *Game) ApplePosition() core.Point {
	return g.apple.Position()
}

// Displaced returns the tail cell vacated by the latest tick, if any.
func (g *Game) Displaced() (core.Point, bool) {
	return g.displaced, g.hasDisplaced
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	boardW := g.grid.Width*cellColumns + 2
	boardH := g.grid.Height + 2
	if dst.Width() < boardW || dst.Height() < boardH+hudHeight {
		g.renderHUD(dst, 0)
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", boardW, boardH+hudHeight))
		return
	}

	offsetX := (dst.Width() - boardW) / 2
	g.renderHUD(dst, offsetX)

	board := core.NewRect(offsetX, hudHeight, boardW, boardH)
	dst.DrawBox(board, core.ColorBorder)

	// Cell (x, y) starts one column/row inside the border.
	cell := func(p core.Point, c core.Color) {
		sx := board.X + 1 + p.X*cellColumns
		sy := board.Y + 1 + p.Y
		for i := range cellColumns {
			dst.SetColored(sx+i, sy, '█', c)
		}
	}

	cell(g.apple.Position(), core.ColorApple)
	segments := g.snake.Segments()
	for i := len(segments) - 1; i >= 0; i-- {
		if i == 0 {
			cell(segments[i], core.ColorSnakeHead)
		} else {
			cell(segments[i], core.ColorSnakeBody)
		}
	}

	switch {
	case g.boardFull:
		g.renderOverlay(dst, "Board full - you win!", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *core.Screen, x int) {
	hud := fmt.Sprintf(" Snake  Length: %d  Apples: %d  Best: %d  Resets: %d",
		g.snake.Len(), g.score, g.best, g.resets)
	dst.DrawTextColored(x, 0, hud, core.ColorHUD)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box)
	dst.DrawBox(box, core.ColorBorder)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
