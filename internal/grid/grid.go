package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize indicates a non-positive grid dimension.
	ErrInvalidSize = errors.New("grid: size must be positive")

	// ErrOutOfBounds indicates a coordinate outside [0, N) on either axis.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Coordinate addresses exactly one cell. Col and Row are both in [0, N).
type Coordinate struct {
	Col int
	Row int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// ColorRef is a cell's color assignment: Unpainted, or the palette index
// recorded at paint time. Exports resolve the index against the palette at
// export time, not against a color captured when painting.
type ColorRef int

// Unpainted is the default state of every cell.
const Unpainted ColorRef = -1

// PaintedWith wraps a palette index as a cell value.
func PaintedWith(index int) ColorRef {
	return ColorRef(index)
}

// Painted reports whether the cell holds a color.
func (r ColorRef) Painted() bool {
	return r != Unpainted
}

// Index returns the recorded palette index. Only meaningful when Painted.
func (r ColorRef) Index() int {
	return int(r)
}

// Grid is the single source of truth for the cell-to-color mapping. It is
// square, its size is fixed at construction, and it owns its cell array
// exclusively. All mutation happens synchronously on the UI event loop, so
// no locking is needed.
type Grid struct {
	size  int
	cells []ColorRef // row-major, rows top to bottom
}

// New creates an all-unpainted size x size grid.
func New(size int) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	g := &Grid{
		size:  size,
		cells: make([]ColorRef, size*size),
	}
	g.Clear()
	return g, nil
}

// Size returns the grid dimension N.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether c addresses a cell.
func (g *Grid) InBounds(c Coordinate) bool {
	return c.Col >= 0 && c.Col < g.size && c.Row >= 0 && c.Row < g.size
}

// Paint writes PaintedWith(index) at c. Repainting a cell with the same
// index is a harmless no-op. Coordinates normally arrive pre-validated from
// the picking layer; out-of-bounds coordinates are rejected.
func (g *Grid) Paint(c Coordinate, index int) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	g.cells[c.Row*g.size+c.Col] = PaintedWith(index)
	return nil
}

// At returns the cell value at c. Out-of-bounds coordinates read as
// Unpainted, matching the picker's treatment of misses.
func (g *Grid) At(c Coordinate) ColorRef {
	if !g.InBounds(c) {
		return Unpainted
	}
	return g.cells[c.Row*g.size+c.Col]
}

// Clear resets every cell to Unpainted in one sweep.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Unpainted
	}
}

// Each visits every cell in row-major order, top row first. Used by visual
// sinks and mirror snapshots; fn must not mutate the grid.
func (g *Grid) Each(fn func(Coordinate, ColorRef)) {
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			fn(Coordinate{Col: col, Row: row}, g.cells[row*g.size+col])
		}
	}
}

// PaintedCount returns the number of cells currently holding a color.
func (g *Grid) PaintedCount() int {
	n := 0
	for _, c := range g.cells {
		if c.Painted() {
			n++
		}
	}
	return n
}
