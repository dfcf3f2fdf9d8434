package astar_test

import (
	"testing"

	"github.com/katalvlaran/gridsearch/astar"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/internal/fixtures"
)

// BenchmarkSearch_Open300 measures corner-to-corner search on an open grid.
// Manhattan ties make this close to a best case.
func BenchmarkSearch_Open300(b *testing.B) {
	g := mustGrid(b, fixtures.Open(300, 300))
	start, goal := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 299, Col: 299}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.Search(g, start, goal)
	}
}

// BenchmarkSearch_Random200 compares heuristics on a random grid.
func BenchmarkSearch_Random200(b *testing.B) {
	g := mustGrid(b, fixtures.Random(42, 200, 200, 25))
	start, goal := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 199, Col: 199}

	for _, h := range heuristics {
		b.Run(h.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = astar.Search(g, start, goal, astar.WithHeuristic(h.h))
			}
		})
	}
}
