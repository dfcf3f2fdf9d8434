// Package dijkstra implements Dijkstra's shortest-path algorithm on grids.
//
// Notes on implementation choices:
//
//   - Cells are addressed by their row-major index so the field is two flat
//     slices instead of maps.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the
//     frontier and ignoring stale entries on extraction.
//   - The main loop runs to frontier exhaustion; there is no goal test.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/frontier"
	"github.com/katalvlaran/gridsearch/grid"
)

// Dijkstra computes the distance from start to every cell of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start must be in bounds and passable (grid.ErrInvalidCoordinate).
//
// The run always explores every cell reachable from start.
//
// Complexity:
//
//   - Time:  O(N log N)
//   - Space: O(N)
func Dijkstra(g *grid.Grid, start grid.Cell, opts ...Option) (*Field, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.IsPassable(start) {
		return nil, fmt.Errorf("%w: start %s", grid.ErrInvalidCoordinate, start)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.Size()
	r := &runner{
		g:       g,
		options: cfg,
		field: &Field{
			g:     g,
			start: start,
			dist:  make([]int, n),
			state: make([]State, n),
		},
		pq: frontier.New[int, int](g.PassableCount()),
	}
	r.init()
	r.process()
	r.field.pushes = r.pq.Pushes()

	return r.field, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *grid.Grid                // The input grid; read-only.
	options Options                   // Hooks.
	field   *Field                    // Distance field and states being built.
	pq      *frontier.Queue[int, int] // Cell index keyed by tentative distance.
}

// init sets every distance to Unreachable, the start to 0, and pushes the start.
func (r *runner) init() {
	for i := range r.field.dist {
		r.field.dist[i] = Unreachable
	}
	s := r.g.Index(r.field.start)
	r.field.dist[s] = 0
	r.field.state[s] = Frontier
	r.pq.Insert(s, 0)
}

// process repeatedly extracts the closest cell, finalizes it and relaxes its
// neighbours until the frontier is empty.
func (r *runner) process() {
	for {
		u, _, ok := r.pq.ExtractMin()
		if !ok {
			return
		}
		// Stale duplicate of a cell finalized earlier.
		if r.field.state[u] == Finalized {
			continue
		}
		r.field.state[u] = Finalized
		r.field.finalized++
		cu := r.g.CellAt(u)
		r.options.OnFinalize(cu, r.field.dist[u])

		r.relax(cu, u)
	}
}

// relax tries to improve the distance of each passable neighbour of cu.
// Assumes dist[u] is final.
func (r *runner) relax(cu grid.Cell, u int) {
	candidate := r.field.dist[u] + 1
	for _, cv := range r.g.Neighbors(cu) {
		v := r.g.Index(cv)
		if candidate >= r.field.dist[v] {
			continue
		}
		r.field.dist[v] = candidate
		r.field.state[v] = Frontier
		r.options.OnRelax(cu, cv, candidate)
		r.pq.Insert(v, candidate)
	}
}

// ShortestPath validates both endpoints, runs Dijkstra from start and
// reconstructs the path to goal from the distance field.
//
// The field is returned even when the goal is unreachable (err wraps
// ErrUnreachable) so callers can still report visitation statistics.
func ShortestPath(g *grid.Grid, start, goal grid.Cell, opts ...Option) (grid.Path, *Field, error) {
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	if err := g.ValidateEndpoints(start, goal); err != nil {
		return nil, nil, err
	}
	field, err := Dijkstra(g, start, opts...)
	if err != nil {
		return nil, nil, err
	}
	path, err := field.PathTo(goal)
	if err != nil {
		return nil, field, err
	}
	return path, field, nil
}
