// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on occupancy grids.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridsearch/grid"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Dijkstra.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrUnreachable indicates that the requested goal has no finite distance
	// from the start.
	ErrUnreachable = errors.New("dijkstra: goal is unreachable from start")
)

// Unreachable is the distance recorded for cells never reached from the start.
const Unreachable = math.MaxInt

// State is the lifecycle state of a cell during a run.
type State uint8

const (
	// Unvisited cells have not been reached yet.
	Unvisited State = iota
	// Frontier cells have a finite tentative distance and sit in the queue.
	Frontier
	// Finalized cells have their minimal distance proven.
	Finalized
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Frontier:
		return "frontier"
	case Finalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Options configures Dijkstra hooks.
//
// OnFinalize – called once per cell when it becomes Finalized, with its distance.
// OnRelax    – called when the distance of to improves via from.
type Options struct {
	OnFinalize func(c grid.Cell, dist int)
	OnRelax    func(from, to grid.Cell, dist int)
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnFinalize: func(grid.Cell, int) {},
		OnRelax:    func(grid.Cell, grid.Cell, int) {},
	}
}

// WithOnFinalize registers a callback run when a cell's distance becomes final.
func WithOnFinalize(fn func(c grid.Cell, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// WithOnRelax registers a callback run on every successful relaxation.
func WithOnRelax(fn func(from, to grid.Cell, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// Field is the outcome of a Dijkstra run: the distance field and the
// per-cell states, indexed row-major like the grid.
type Field struct {
	g         *grid.Grid
	start     grid.Cell
	dist      []int
	state     []State
	finalized int
	pushes    int
}

// Start returns the source cell of the run.
func (f *Field) Start() grid.Cell { return f.start }

// Grid returns the grid the field was computed on.
func (f *Field) Grid() *grid.Grid { return f.g }

// Distance returns the minimal number of steps from the start to c, or
// Unreachable if c was never reached or lies outside the grid.
func (f *Field) Distance(c grid.Cell) int {
	if !f.g.InBounds(c) {
		return Unreachable
	}
	return f.dist[f.g.Index(c)]
}

// Reachable reports whether c has a finite distance.
func (f *Field) Reachable(c grid.Cell) bool {
	return f.Distance(c) != Unreachable
}

// State returns the lifecycle state of c. Out-of-bounds cells are Unvisited.
func (f *Field) State(c grid.Cell) State {
	if !f.g.InBounds(c) {
		return Unvisited
	}
	return f.state[f.g.Index(c)]
}

// Finalized reports whether c's distance was finalized.
func (f *Field) Finalized(c grid.Cell) bool {
	return f.State(c) == Finalized
}

// Visited returns all finalized cells in row-major order.
func (f *Field) Visited() []grid.Cell {
	out := make([]grid.Cell, 0, f.finalized)
	for i, s := range f.state {
		if s == Finalized {
			out = append(out, f.g.CellAt(i))
		}
	}
	return out
}

// VisitedCount returns the number of finalized cells.
func (f *Field) VisitedCount() int { return f.finalized }

// Pushes returns how many entries were inserted into the frontier,
// stale duplicates included.
func (f *Field) Pushes() int { return f.pushes }
