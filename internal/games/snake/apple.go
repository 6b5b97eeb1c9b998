package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrBoardFull is returned by Apple.Relocate when every cell is excluded.
var ErrBoardFull = errors.New("snake: no free cell for apple")

// DefaultMaxSamples bounds the random draws of Relocate.
const DefaultMaxSamples = 1024

// Apple is the single item the snake eats.
type Apple struct {
	grid       core.Grid
	position   core.Point
	maxSamples int
}

// NewApple creates an apple at the origin; call Relocate before use.
// maxSamples <= 0 selects DefaultMaxSamples.
func NewApple(grid core.Grid, maxSamples int) *Apple {
	if maxSamples <= 0 {
		maxSamples = DefaultMaxSamples
	}
	return &Apple{grid: grid, maxSamples: maxSamples}
}

// Position returns the apple's cell.
func (a *Apple) Position() core.Point {
	return a.position
}

// Place puts the apple on p without checks.
func (a *Apple) Place(p core.Point) {
	a.position = a.grid.Wrap(p)
}

// Relocate moves the apple to a uniformly random cell not in excluded.
//
// Rejection sampling is tried first since the board is usually mostly
// empty. After maxSamples misses the free cells are enumerated and one is
// picked, so the call always terminates. If no cell is free the position is
// left unchanged and ErrBoardFull is returned.
func (a *Apple) Relocate(rng *rand.Rand, excluded map[core.Point]struct{}) error {
	if len(excluded) < a.grid.Cells() {
		for range a.maxSamples {
			p := core.Point{X: rng.Intn(a.grid.Width), Y: rng.Intn(a.grid.Height)}
			if _, taken := excluded[p]; !taken {
				a.position = p
				return nil
			}
		}
	}

	free := make([]core.Point, 0, a.grid.Cells()-min(len(excluded), a.grid.Cells()))
	for y := range a.grid.Height {
		for x := range a.grid.Width {
			p := core.Point{X: x, Y: y}
			if _, taken := excluded[p]; !taken {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		return ErrBoardFull
	}

	a.position = free[rng.Intn(len(free))]
	return nil
}
