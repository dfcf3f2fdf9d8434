// Package grid models a static 2D occupancy map on which the search engines
// of gridsearch operate.
//
// What:
//
//   - Grid wraps a rectangular matrix of passable / blocked cells. It is
//     immutable once built and therefore safe to share between goroutines.
//   - Cell is an immutable (Row, Col) coordinate.
//   - Path is an ordered, contiguous sequence of cells from start to goal.
//   - Components splits the passable cells into 4-connected regions.
//
// Why:
//
//   - Every engine (dijkstra, astar) needs the same bounds-checked
//     passability test and the same neighbour order; keeping both here
//     guarantees they explore the exact same graph.
//   - Folding the bounds check into IsPassable keeps expansion loops free
//     of special cases.
//
// Encoding:
//
//   - New takes [][]bool where true means "blocked".
//   - FromInts takes [][]int where 0 is passable and anything else is blocked
//     (the classic maze literal form).
//
// Complexity:
//
//   - New / FromInts:   O(R×C) time and memory (deep copy).
//   - IsPassable:       O(1).
//   - Neighbors:        O(1), at most 4 cells.
//   - Components:       O(R×C) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid:         input has no rows or no columns.
//   - ErrNonRectangular:    rows have differing lengths (malformed grid).
//   - ErrInvalidCoordinate: an endpoint is out of bounds or blocked.
package grid
