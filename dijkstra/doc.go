// Package dijkstra provides a uniform-cost shortest-path engine over a
// grid.Grid, together with the distance-field backtrack that turns its output
// into a path.
//
// Overview:
//
//   - Dijkstra computes the minimum number of unit steps from a start cell to
//     every reachable passable cell, moving only in the four orthogonal
//     directions.
//   - It relies on a frontier.Queue (min-heap) to always finalize the
//     next-closest cell.
//   - It runs until the frontier is empty. It does NOT stop when some goal is
//     reached: the full distance field is the product, and the finalized-cell
//     count it reports is a diagnostic that depends on exhaustive
//     exploration. On large open grids this costs extra work compared with an
//     early-exit variant.
//
// Per-cell lifecycle:
//
//	Unvisited ──relax──▶ Frontier ──extract (first time)──▶ Finalized
//
// A Frontier cell may be pushed several times with decreasing distances
// ("lazy-decrease-key"); only the first extraction acts on it, later stale
// entries are discarded because the cell is already Finalized. A Finalized
// cell never returns to another state within a run, and a recorded distance
// never increases.
//
// Path reconstruction:
//
//   - Field.PathTo walks from the goal to the start, at each step moving to
//     exactly one neighbour whose distance is the current distance minus 1,
//     then reverses the result. The path has Distance(goal)+1 cells.
//   - If the goal was never reached, PathTo returns ErrUnreachable instead of
//     walking an undefined field.
//
// Complexity:
//
//   - Time:  O(N log N), N = passable cells (each cell has ≤ 4 edges).
//   - Space: O(N) for the distance field and states, O(N) heap entries.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:                nil *grid.Grid.
//   - grid.ErrInvalidCoordinate: start (or goal, in ShortestPath) is out of
//     bounds or blocked.
//   - ErrUnreachable:            PathTo/ShortestPath target has no finite
//     distance.
//
// Hooks:
//
//   - WithOnFinalize(fn): called once per cell when its distance becomes final.
//   - WithOnRelax(fn):    called whenever a neighbour's distance improves.
//
// Thread safety:
//
//   - The grid is read-only; any number of runs may share it concurrently.
//     Each run allocates its own field and frontier.
//
// Example usage:
//
//	g, _ := grid.FromInts(maze)
//	path, field, err := dijkstra.ShortestPath(g, start, goal)
//	switch {
//	case errors.Is(err, dijkstra.ErrUnreachable):
//	    fmt.Println("no path; finalized", field.VisitedCount(), "cells")
//	case err != nil:
//	    log.Fatal(err)
//	default:
//	    fmt.Println("cost", path.Cost())
//	}
package dijkstra
