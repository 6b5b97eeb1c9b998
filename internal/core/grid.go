// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Point is an integral cell coordinate on the grid. Equality is value equality.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// String formats the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Rect represents an axis-aligned box in logical units.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Grid is the discrete coordinate space the game is played on.
// The domain is [0, Width) x [0, Height) in cell units; CellSize is the
// edge length of one cell in logical (pixel-like) units.
//
// Grid is an immutable value: pass it by value, never share a pointer.
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// NewGrid validates and returns a grid of width x height cells.
func NewGrid(width, height, cellSize int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("core: grid dimensions must be positive, got %dx%d", width, height)
	}
	if cellSize <= 0 {
		return Grid{}, fmt.Errorf("core: cell size must be positive, got %d", cellSize)
	}
	return Grid{Width: width, Height: height, CellSize: cellSize}, nil
}

// GridFromScreen derives a grid from a logical screen size, e.g. 640x480
// at 20-unit cells gives 32x24 cells. Partial cells are dropped.
func GridFromScreen(screenW, screenH, cellSize int) (Grid, error) {
	if cellSize <= 0 {
		return Grid{}, fmt.Errorf("core: cell size must be positive, got %d", cellSize)
	}
	return NewGrid(screenW/cellSize, screenH/cellSize, cellSize)
}

// Wrap maps any integer pair to its canonical in-domain representative.
// Each axis wraps independently, so leaving one edge re-enters at the
// opposite edge of the same axis.
func (g Grid) Wrap(p Point) Point {
	return Point{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

// Contains reports whether p lies inside the grid domain.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the total number of cells.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center returns the center cell (rounded down).
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Rect returns the cell-sized square occupied by p, in logical units.
func (g Grid) Rect(p Point) Rect {
	return NewRect(p.X*g.CellSize, p.Y*g.CellSize, g.CellSize, g.CellSize)
}

// PixelSize returns the grid extent in logical units.
func (g Grid) PixelSize() (int, int) {
	return g.Width * g.CellSize, g.Height * g.CellSize
}

// mod is the Euclidean remainder: always in [0, n) for n > 0.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
