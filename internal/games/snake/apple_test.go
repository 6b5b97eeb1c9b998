package snake

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRelocateAvoidsExcluded(t *testing.T) {
	rng := rand.New(rand.NewSource(999))
	a := NewApple(testGrid, 0)

	for i := 0; i < 200; i++ {
		excluded := make(map[core.Point]struct{})
		n := rng.Intn(testGrid.Cells() - 1)
		for len(excluded) < n {
			excluded[core.Point{X: rng.Intn(testGrid.Width), Y: rng.Intn(testGrid.Height)}] = struct{}{}
		}

		if err := a.Relocate(rng, excluded); err != nil {
			t.Fatalf("Relocate() with %d excluded failed: %v", n, err)
		}
		if _, taken := excluded[a.Position()]; taken {
			t.Fatalf("Apple placed on excluded cell %v", a.Position())
		}
		if !testGrid.Contains(a.Position()) {
			t.Fatalf("Apple placed outside the grid at %v", a.Position())
		}
	}
}

func TestRelocateFindsLastFreeCell(t *testing.T) {
	grid := core.Grid{Width: 4, Height: 4, CellSize: 1}
	free := core.Point{X: 2, Y: 3}

	excluded := make(map[core.Point]struct{})
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if p := (core.Point{X: x, Y: y}); p != free {
				excluded[p] = struct{}{}
			}
		}
	}

	// One random draw almost surely misses; the free-cell scan must find it.
	a := NewApple(grid, 1)
	for seed := int64(0); seed < 20; seed++ {
		if err := a.Relocate(rand.New(rand.NewSource(seed)), excluded); err != nil {
			t.Fatalf("Relocate() failed: %v", err)
		}
		if a.Position() != free {
			t.Fatalf("Position() = %v, expected %v", a.Position(), free)
		}
	}
}

func TestRelocateBoardFull(t *testing.T) {
	grid := core.Grid{Width: 3, Height: 2, CellSize: 1}
	excluded := make(map[core.Point]struct{})
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			excluded[core.Point{X: x, Y: y}] = struct{}{}
		}
	}

	a := NewApple(grid, 10)
	a.Place(core.Point{X: 1, Y: 1})

	err := a.Relocate(rand.New(rand.NewSource(1)), excluded)
	if !errors.Is(err, ErrBoardFull) {
		t.Fatalf("Relocate() error = %v, expected ErrBoardFull", err)
	}
	if a.Position() != (core.Point{X: 1, Y: 1}) {
		t.Errorf("Position should be unchanged on error, got %v", a.Position())
	}
}

func TestRelocateCoversFreeCells(t *testing.T) {
	grid := core.Grid{Width: 2, Height: 2, CellSize: 1}
	excluded := map[core.Point]struct{}{{X: 0, Y: 0}: {}, {X: 1, Y: 1}: {}}
	rng := rand.New(rand.NewSource(3))
	a := NewApple(grid, 0)

	seen := make(map[core.Point]int)
	for i := 0; i < 1000; i++ {
		if err := a.Relocate(rng, excluded); err != nil {
			t.Fatal(err)
		}
		seen[a.Position()]++
	}

	if len(seen) != 2 {
		t.Fatalf("Expected both free cells to be used, got %v", seen)
	}
	for p, n := range seen {
		if n < 350 {
			t.Errorf("Cell %v chosen %d/1000 times, distribution looks skewed", p, n)
		}
	}
}

func TestNewAppleDefaults(t *testing.T) {
	a := NewApple(testGrid, 0)
	if a.maxSamples != DefaultMaxSamples {
		t.Errorf("maxSamples = %d, expected %d", a.maxSamples, DefaultMaxSamples)
	}

	a.Place(core.Point{X: -1, Y: 24})
	if a.Position() != (core.Point{X: 31, Y: 0}) {
		t.Errorf("Place should wrap into the grid, got %v", a.Position())
	}
}
