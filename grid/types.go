// Package grid defines core types and sentinel errors for the occupancy grid.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidCoordinate indicates a start or goal cell that is out of bounds or blocked.
	ErrInvalidCoordinate = errors.New("grid: coordinate is out of bounds or blocked")
)

// Cell identifies a grid position by row and column.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns the cell shifted by the given row and column deltas.
func (c Cell) Add(dr, dc int) Cell {
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Adjacent reports whether c and o differ by exactly one orthogonal step.
func (c Cell) Adjacent(o Cell) bool {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// offsets lists the orthogonal moves in expansion order: E, S, W, N.
var offsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Grid is an immutable rectangular occupancy map.
// blocked is stored row-major: blocked[r*cols+c].
type Grid struct {
	rows, cols int
	blocked    []bool
	passable   int
}
