// Package astar implements heuristic-guided (A*) shortest-path search over a
// grid.Grid with unit step cost and 4-directional movement.
//
// Overview:
//
//   - Every generated search node carries its cell, g (steps from start),
//     h (heuristic estimate to goal), f = g + h, and a parent link.
//   - Nodes are stored in a per-run arena; the parent link is an arena index
//     (-1 for the root). Links are written once, when the node is created.
//   - The frontier (frontier.Queue) is ordered by f.
//
// Per-cell lifecycle:
//
//	Unseen ──generated──▶ Open ──extracted, not goal──▶ Closed
//
// Expansion rule:
//
//   - The extracted node whose cell equals the goal ends the search; the
//     path is rebuilt by walking parent indices back to the root and
//     reversing.
//   - Otherwise the cell is closed and every in-bounds, passable, not-closed
//     neighbour gets a NEW node (parent = current) pushed onto the frontier.
//   - There is no check for a cheaper node already Open for the same cell:
//     a cell may sit in the frontier several times with different f values.
//     Extracted nodes whose cell is already Closed are discarded. With unit
//     steps and an admissible heuristic the first goal extraction is optimal.
//
// Heuristics:
//
//   - Manhattan (default): |dr|+|dc|, admissible and consistent for
//     4-directional unit-cost movement.
//   - Euclidean: sqrt(dr²+dc²), admissible but looser.
//   - Zero: always 0; A* degenerates to uniform-cost search.
//
// Results:
//
//   - Found paths come back with the set of Closed cells (visitation
//     statistics). An exhausted frontier yields Found == false and a nil
//     Path; this is a normal result, not an error.
//
// Complexity:
//
//   - Time:  O(M log M), M = generated nodes (≤ 4 × passable cells).
//   - Space: O(M) arena + O(R×C) closed flags.
//
// Errors:
//
//   - ErrNilGrid:                nil *grid.Grid.
//   - ErrNilHeuristic:           WithHeuristic(nil).
//   - grid.ErrInvalidCoordinate: start or goal out of bounds or blocked.
package astar
