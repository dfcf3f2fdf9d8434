// Package search is the single entry point over the grid search engines.
//
// Find validates the endpoints, dispatches to the selected Strategy and
// normalizes the outcome into a Result: an ordered path plus the cells the
// engine visited. An unreachable goal is reported as Found == false with a
// nil error; only invalid input produces an error.
//
// Compare runs both strategies concurrently on the same read-only grid.
package search

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/gridsearch/astar"
	"github.com/katalvlaran/gridsearch/grid"
)

// Sentinel errors for search operations.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownStrategy indicates an unsupported Strategy value or name.
	ErrUnknownStrategy = errors.New("search: unknown strategy")
)

// Strategy selects the engine.
type Strategy int

const (
	// Dijkstra runs the full-exhaustion uniform-cost engine.
	Dijkstra Strategy = iota
	// AStar runs the heuristic-guided engine.
	AStar
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Dijkstra:
		return "dijkstra"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "dijkstra" or "astar"/"a*" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// ParseHeuristic maps "manhattan", "euclidean" or "zero" to an astar.Heuristic.
func ParseHeuristic(name string) (astar.Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "manhattan":
		return astar.Manhattan, nil
	case "euclidean":
		return astar.Euclidean, nil
	case "zero", "none":
		return astar.Zero, nil
	default:
		return nil, fmt.Errorf("search: unknown heuristic %q", name)
	}
}

// Options configures Find and Compare.
type Options struct {
	Strategy  Strategy
	Heuristic astar.Heuristic
}

// Option represents a functional option.
type Option func(*Options)

// DefaultOptions returns A* with the Manhattan heuristic.
func DefaultOptions() Options {
	return Options{Strategy: AStar, Heuristic: astar.Manhattan}
}

// WithStrategy selects the engine used by Find. Compare ignores it.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithHeuristic sets the A* heuristic. nil keeps the current one.
func WithHeuristic(h astar.Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// Result is the engine-independent outcome of one search.
//
//   - Path:         start→goal cells; nil when Found is false.
//   - Visited:      finalized (Dijkstra) or closed (A*) cells, row-major.
//   - VisitedCount: len(Visited).
//   - Elapsed:      wall-clock duration of the engine run.
type Result struct {
	Strategy     Strategy
	Path         grid.Path
	Found        bool
	Visited      []grid.Cell
	VisitedCount int
	Elapsed      time.Duration
}

// Cost returns the number of steps on the path, or -1 when not found.
func (r *Result) Cost() int {
	if !r.Found {
		return -1
	}
	return r.Path.Cost()
}

// Comparison holds one Result per strategy for the same query.
type Comparison struct {
	Dijkstra *Result
	AStar    *Result
}

// Agree reports whether both engines reached the same verdict and path cost.
func (c *Comparison) Agree() bool {
	return c.Dijkstra.Found == c.AStar.Found && c.Dijkstra.Cost() == c.AStar.Cost()
}
