// Package grid provides a bounds-checked occupancy grid used by the
// dijkstra and astar engines.
package grid

import "fmt"

// New constructs a Grid from a non-empty, rectangular 2D slice in which
// true marks a blocked cell. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if blocked has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func New(blocked [][]bool) (*Grid, error) {
	rows, cols, err := shape(len(blocked), func(r int) int { return len(blocked[r]) })
	if err != nil {
		return nil, err
	}
	g := &Grid{rows: rows, cols: cols, blocked: make([]bool, rows*cols)}
	for r := 0; r < rows; r++ {
		copy(g.blocked[r*cols:(r+1)*cols], blocked[r])
	}
	g.countPassable()

	return g, nil
}

// FromInts constructs a Grid from a maze literal: 0 is passable, any other
// value is blocked. Validation matches New.
func FromInts(values [][]int) (*Grid, error) {
	rows, cols, err := shape(len(values), func(r int) int { return len(values[r]) })
	if err != nil {
		return nil, err
	}
	g := &Grid{rows: rows, cols: cols, blocked: make([]bool, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.blocked[r*cols+c] = values[r][c] != 0
		}
	}
	g.countPassable()

	return g, nil
}

// shape validates row lengths and returns the grid dimensions.
func shape(rows int, rowLen func(r int) int) (int, int, error) {
	if rows == 0 || rowLen(0) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	cols := rowLen(0)
	for r := 1; r < rows; r++ {
		if rowLen(r) != cols {
			return 0, 0, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, rowLen(r), cols)
		}
	}
	return rows, cols, nil
}

func (g *Grid) countPassable() {
	for _, b := range g.blocked {
		if !b {
			g.passable++
		}
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the total number of cells (Rows×Cols).
func (g *Grid) Size() int { return g.rows * g.cols }

// PassableCount returns the number of passable cells.
func (g *Grid) PassableCount() int { return g.passable }

// InBounds reports whether c lies within [0,Rows)×[0,Cols).
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// IsPassable reports whether c is inside the grid and not blocked.
// Out-of-bounds cells are never passable.
// Complexity: O(1).
func (g *Grid) IsPassable(c Cell) bool {
	return g.InBounds(c) && !g.blocked[c.Row*g.cols+c.Col]
}

// IsBlocked reports whether c is inside the grid and blocked.
func (g *Grid) IsBlocked(c Cell) bool {
	return g.InBounds(c) && g.blocked[c.Row*g.cols+c.Col]
}

// Neighbors returns the passable orthogonal neighbours of c in E, S, W, N order.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(offsets))
	for _, d := range offsets {
		n := c.Add(d[0], d[1])
		if g.IsPassable(n) {
			out = append(out, n)
		}
	}
	return out
}

// Index maps c to its row-major index: Row*Cols + Col.
// The result is meaningless for out-of-bounds cells.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

// ValidateEndpoints rejects a start or goal that is out of bounds or blocked.
// The returned error wraps ErrInvalidCoordinate.
func (g *Grid) ValidateEndpoints(start, goal Cell) error {
	if !g.IsPassable(start) {
		return fmt.Errorf("%w: start %s", ErrInvalidCoordinate, start)
	}
	if !g.IsPassable(goal) {
		return fmt.Errorf("%w: goal %s", ErrInvalidCoordinate, goal)
	}
	return nil
}
