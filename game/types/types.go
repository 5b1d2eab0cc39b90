package types

import "time"

// Game constants
const (
	GridSize          = 9                      // Cells per side of the square board
	InitialBodyLength = 10                     // Segments after a reset, head included
	TickInterval      = 250 * time.Millisecond // Time between simulation steps
	SmoothingRate     = 10.0                   // Draw-position lerp rate, per second
)

// Point is a cell coordinate on the grid
type Point struct {
	X, Y int
}

// Add returns the cell offset by the given vector
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Size int
}

// NewGrid returns the default square grid
func NewGrid() Grid {
	return Grid{Size: GridSize}
}

// Contains reports whether a cell lies on the board
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Size && p.Y >= 0 && p.Y < g.Size
}

// Center returns the board's center cell
func (g Grid) Center() Point {
	return Point{X: g.Size / 2, Y: g.Size / 2}
}

// Cells returns every cell on the board, row by row
func (g Grid) Cells() []Point {
	cells := make([]Point, 0, g.Size*g.Size)
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	return cells
}
