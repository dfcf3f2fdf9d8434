package converters

import (
	"errors"

	"github.com/katalvlaran/gridsearch/grid"
)

// Sentinel errors for grid decoding.
var (
	// ErrEmptyInput indicates that no grid rows were found.
	ErrEmptyInput = errors.New("converters: input has no grid rows")

	// ErrBadToken indicates a cell token other than 0, 1, '.' or '#'.
	ErrBadToken = errors.New("converters: unrecognized cell token")

	// ErrBadEndpoint indicates a start or goal that is not a [row, col] pair.
	ErrBadEndpoint = errors.New("converters: endpoint must be [row, col]")
)

// GridFile is the YAML/JSON document layout.
type GridFile struct {
	Start []int    `json:"start,omitempty"`
	Goal  []int    `json:"goal,omitempty"`
	Cells [][]int  `json:"cells,omitempty"`
	Rows  []string `json:"rows,omitempty"`
}

// Endpoint converts a [row, col] pair. ok is false when p is empty.
func Endpoint(p []int) (c grid.Cell, ok bool, err error) {
	switch len(p) {
	case 0:
		return grid.Cell{}, false, nil
	case 2:
		return grid.Cell{Row: p[0], Col: p[1]}, true, nil
	default:
		return grid.Cell{}, false, ErrBadEndpoint
	}
}

// Document is a decoded grid plus the optional endpoints stored with it.
type Document struct {
	Cells    [][]int
	Start    grid.Cell
	Goal     grid.Cell
	HasStart bool
	HasGoal  bool
}

// Grid builds the immutable grid from the decoded cells.
func (d *Document) Grid() (*grid.Grid, error) {
	return grid.FromInts(d.Cells)
}
