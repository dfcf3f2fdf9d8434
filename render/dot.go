package render

import (
	"fmt"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/gridsearch/grid"
)

const graphName = "grid"

// Node fill colours per cell class.
const (
	colorPath      = "gold"
	colorVisited   = "lightblue"
	colorUnvisited = "white"
	colorPathEdge  = "red"
)

// NodeName returns the DOT identifier of c, e.g. "n3_7".
func NodeName(c grid.Cell) string {
	return fmt.Sprintf("n%d_%d", c.Row, c.Col)
}

// DOT exports the passable cells of g as an undirected Graphviz graph.
// Nodes carry a pinned position so neato/fdp lay them out as the grid;
// edges along the path are drawn bold red.
func DOT(g *grid.Grid, path grid.Path, visited []grid.Cell) (string, error) {
	if g == nil {
		return "", ErrNilGrid
	}
	m := marks(g, path, visited)

	onPath := make(map[[2]grid.Cell]bool, len(path))
	for i := 1; i < len(path); i++ {
		onPath[[2]grid.Cell{path[i-1], path[i]}] = true
		onPath[[2]grid.Cell{path[i], path[i-1]}] = true
	}

	graph := gographviz.NewGraph()
	if err := graph.SetName(graphName); err != nil {
		return "", err
	}
	if err := graph.SetDir(false); err != nil {
		return "", err
	}
	for attr, value := range map[string]string{
		"nodesep": "0.2",
		"ranksep": "0.2",
		"splines": "false",
	} {
		if err := graph.AddAttr(graphName, attr, value); err != nil {
			return "", fmt.Errorf("render: graph attribute %s: %w", attr, err)
		}
	}

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := grid.Cell{Row: r, Col: c}
			if !g.IsPassable(cell) {
				continue
			}
			err := graph.AddNode(graphName, NodeName(cell), map[string]string{
				"label":     fmt.Sprintf("%q", cell.String()),
				"pos":       fmt.Sprintf("\"%d,%d!\"", c, -r),
				"shape":     "box",
				"style":     "filled",
				"fillcolor": fillColor(m[g.Index(cell)]),
				"fontsize":  "8",
			})
			if err != nil {
				return "", fmt.Errorf("render: node %s: %w", cell, err)
			}
		}
	}

	// Each edge is added once, from the west or north endpoint.
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			from := grid.Cell{Row: r, Col: c}
			if !g.IsPassable(from) {
				continue
			}
			for _, to := range []grid.Cell{from.Add(0, 1), from.Add(1, 0)} {
				if !g.IsPassable(to) {
					continue
				}
				attrs := map[string]string{}
				if onPath[[2]grid.Cell{from, to}] {
					attrs["color"] = colorPathEdge
					attrs["penwidth"] = "3"
				}
				if err := graph.AddEdge(NodeName(from), NodeName(to), false, attrs); err != nil {
					return "", fmt.Errorf("render: edge %s-%s: %w", from, to, err)
				}
			}
		}
	}

	return graph.String(), nil
}

func fillColor(mark byte) string {
	switch mark {
	case SymbolPath:
		return colorPath
	case SymbolVisited:
		return colorVisited
	default:
		return colorUnvisited
	}
}
