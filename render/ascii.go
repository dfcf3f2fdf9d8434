// Package render draws search results over the grid they were computed on.
//
// ASCII reproduces the classic result map: one row per line, cells
// separated by a single space.
//
//	.  cell on the path
//	X  visited (finalized or closed) cell not on the path
//	#  blocked cell
//	O  passable cell never visited
//
// DOT exports the passable cells and their orthogonal adjacency as an
// undirected Graphviz graph, with path and visited cells coloured.
package render

import (
	"errors"
	"io"
	"strings"

	"github.com/katalvlaran/gridsearch/grid"
)

// ErrNilGrid indicates that a nil *grid.Grid was passed.
var ErrNilGrid = errors.New("render: grid is nil")

// Map symbols.
const (
	SymbolPath      = '.'
	SymbolVisited   = 'X'
	SymbolBlocked   = '#'
	SymbolUnvisited = 'O'
)

// marks classifies every cell of g by index. Path wins over visited.
// Cells outside g are ignored.
func marks(g *grid.Grid, path grid.Path, visited []grid.Cell) []byte {
	m := make([]byte, g.Size())
	for i := range m {
		if g.IsBlocked(g.CellAt(i)) {
			m[i] = SymbolBlocked
		} else {
			m[i] = SymbolUnvisited
		}
	}
	for _, c := range visited {
		if g.IsPassable(c) {
			m[g.Index(c)] = SymbolVisited
		}
	}
	for _, c := range path {
		if g.IsPassable(c) {
			m[g.Index(c)] = SymbolPath
		}
	}
	return m
}

// ASCII renders g with path and visited cells marked. A nil grid renders
// as the empty string.
func ASCII(g *grid.Grid, path grid.Path, visited []grid.Cell) string {
	if g == nil {
		return ""
	}
	m := marks(g, path, visited)

	var sb strings.Builder
	sb.Grow(g.Size() * 2)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(m[r*g.Cols()+c])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteASCII writes the ASCII rendering to w.
func WriteASCII(w io.Writer, g *grid.Grid, path grid.Path, visited []grid.Cell) error {
	if g == nil {
		return ErrNilGrid
	}
	_, err := io.WriteString(w, ASCII(g, path, visited))
	return err
}
