package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridsearch/grid"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNilHeuristic indicates that WithHeuristic received nil.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")
)

// Heuristic estimates the remaining cost from a cell to the goal.
// It must never be negative.
type Heuristic func(from, to grid.Cell) float64

// Manhattan returns |dr|+|dc|.
func Manhattan(from, to grid.Cell) float64 {
	return math.Abs(float64(from.Row-to.Row)) + math.Abs(float64(from.Col-to.Col))
}

// Euclidean returns the straight-line distance sqrt(dr²+dc²).
func Euclidean(from, to grid.Cell) float64 {
	return math.Hypot(float64(from.Row-to.Row), float64(from.Col-to.Col))
}

// Zero always returns 0.
func Zero(_, _ grid.Cell) float64 { return 0 }

// Options configures Search.
//
// Heuristic – distance estimate to the goal. Default Manhattan.
// OnExpand  – called for every node that gets expanded (closed), with its g and f.
type Options struct {
	Heuristic Heuristic
	OnExpand  func(c grid.Cell, g int, f float64)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with the Manhattan heuristic and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Heuristic: Manhattan,
		OnExpand:  func(grid.Cell, int, float64) {},
	}
}

// WithHeuristic selects the heuristic. nil is rejected with ErrNilHeuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = ErrNilHeuristic
			return
		}
		o.Heuristic = h
	}
}

// WithOnExpand registers a callback run whenever a node is expanded.
func WithOnExpand(fn func(c grid.Cell, g int, f float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds the outcome of a search.
//
//   - Path:        start→goal cells, nil when Found is false.
//   - Found:       whether the goal was reached.
//   - Cost:        number of steps (Path.Len()-1); 0 when not found.
//   - Closed:      closed cells in row-major order.
//   - ClosedCount: len(Closed).
//   - Generated:   nodes created in the arena, the start included.
//   - Stale:       extracted nodes discarded because their cell was closed.
type Result struct {
	Path        grid.Path
	Found       bool
	Cost        int
	Closed      []grid.Cell
	ClosedCount int
	Generated   int
	Stale       int
}
