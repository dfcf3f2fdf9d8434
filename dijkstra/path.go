package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/grid"
)

// PathTo reconstructs one shortest path from the field's start to goal by
// backtracking over the distance field.
//
// Starting at goal, each step moves to the first neighbour (E, S, W, N order)
// whose distance is exactly one less than the current cell's, so exactly one
// cell is appended per step and the walk ends at the start after
// Distance(goal) steps. The collected cells are then reversed.
//
// Returns grid.ErrInvalidCoordinate if goal is outside the grid or blocked,
// ErrUnreachable if goal has no finite distance.
// Complexity: O(Distance(goal)).
func (f *Field) PathTo(goal grid.Cell) (grid.Path, error) {
	if !f.g.IsPassable(goal) {
		return nil, fmt.Errorf("%w: goal %s", grid.ErrInvalidCoordinate, goal)
	}
	d := f.Distance(goal)
	if d == Unreachable {
		return nil, fmt.Errorf("%w: goal %s", ErrUnreachable, goal)
	}

	path := make(grid.Path, 0, d+1)
	path = append(path, goal)
	cur := goal
	for d > 0 {
		next, ok := f.predecessor(cur, d)
		if !ok {
			// Only possible if the field was not produced by Dijkstra.
			return nil, fmt.Errorf("%w: broken distance field at %s", ErrUnreachable, cur)
		}
		path = append(path, next)
		cur = next
		d--
	}
	path.Reverse()

	return path, nil
}

// predecessor returns a neighbour of c whose distance is d-1.
func (f *Field) predecessor(c grid.Cell, d int) (grid.Cell, bool) {
	for _, n := range f.g.Neighbors(c) {
		if f.dist[f.g.Index(n)] == d-1 {
			return n, true
		}
	}
	return grid.Cell{}, false
}
