// Package dijkstra_test provides examples demonstrating how to use the grid
// Dijkstra engine. Each example is runnable via "go test -run Example".
package dijkstra_test

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridsearch/dijkstra"
	"github.com/katalvlaran/gridsearch/grid"
)

// ExampleShortestPath finds a route around a wall.
//
//	S . .
//	# # .
//	G . .
func ExampleShortestPath() {
	g, _ := grid.FromInts([][]int{
		{0, 0, 0},
		{1, 1, 0},
		{0, 0, 0},
	})

	path, field, err := dijkstra.ShortestPath(g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("path:", path)
	fmt.Println("cells:", path.Len(), "visited:", field.VisitedCount())
	// Output:
	// path: (0,0)->(0,1)->(0,2)->(1,2)->(2,2)->(2,1)->(2,0)
	// cells: 7 visited: 7
}

// ExampleDijkstra_distanceField shows the full distance field; the run does not
// stop at any particular goal.
func ExampleDijkstra_distanceField() {
	g, _ := grid.FromInts([][]int{
		{0, 0, 1},
		{0, 0, 0},
	})

	field, _ := dijkstra.Dijkstra(g, grid.Cell{Row: 0, Col: 0})
	for r := 0; r < g.Rows(); r++ {
		row := make([]string, g.Cols())
		for c := range row {
			cell := grid.Cell{Row: r, Col: c}
			row[c] = "-"
			if field.Reachable(cell) {
				row[c] = strconv.Itoa(field.Distance(cell))
			}
		}
		fmt.Println(strings.Join(row, " "))
	}
	// Output:
	// 0 1 -
	// 1 2 3
}

// ExampleField_PathTo_unreachable reports "no path" for an enclosed goal.
func ExampleField_PathTo_unreachable() {
	g, _ := grid.FromInts([][]int{
		{0, 1, 0},
	})

	field, _ := dijkstra.Dijkstra(g, grid.Cell{Row: 0, Col: 0})
	_, err := field.PathTo(grid.Cell{Row: 0, Col: 2})
	fmt.Println(errors.Is(err, dijkstra.ErrUnreachable))
	// Output: true
}
