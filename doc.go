// Package gridsearch finds shortest paths on 4-connected occupancy grids.
//
// 🚀 What is gridsearch?
//
//	A small, dependency-light toolkit built around one question: what is the
//	fewest-step route between two free cells of a grid, and how much of the
//	grid did the search have to touch to prove it?
//		• Grid model: immutable occupancy, bounds, neighbours, components
//		• Dijkstra: full-exhaustion distance field + backtracking
//		• A*: arena of search nodes, parent indices, pluggable heuristics
//		• Search facade: one Result shape, concurrent engine comparison
//		• Rendering: ASCII result maps and Graphviz DOT export
//		• Grid files: plain text, YAML and JSON
//
// Packages:
//
//	grid/          Cell, Grid, Path; validation and connectivity
//	frontier/      generic min-priority queue with duplicate entries
//	dijkstra/      distance field to exhaustion, PathTo backtrack
//	astar/         heuristic search, Manhattan/Euclidean/Zero
//	search/        Find, Compare, Strategy
//	render/        ASCII and DOT output
//	converters/    text/YAML/JSON grid loading
//	cmd/gridpath   command-line front end
//
// Quick ASCII example (0,0) → (2,0), the only gap is on the right:
//
//	. . .
//	# # .
//	. . .
//
// Moves are orthogonal (E, S, W, N) and cost one step each. A path's cost
// is its number of steps; the CLI reports the number of cells on the path,
// as classic maze demos do.
//
//	go install github.com/katalvlaran/gridsearch/cmd/gridpath@latest
package gridsearch
