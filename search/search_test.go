package search_test

import (
	"context"
	"testing"

	"github.com/r3labs/diff/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/astar"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/internal/fixtures"
	"github.com/katalvlaran/gridsearch/search"
)

func mustGrid(t testing.TB, values [][]int) *grid.Grid {
	t.Helper()
	g, err := grid.FromInts(values)
	require.NoError(t, err)
	return g
}

var strategies = []search.Strategy{search.Dijkstra, search.AStar}

func TestStrategy_Parse(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want search.Strategy
	}{
		{"dijkstra", search.Dijkstra},
		{" Dijkstra ", search.Dijkstra},
		{"astar", search.AStar},
		{"A*", search.AStar},
		{"a-star", search.AStar},
	} {
		got, err := search.ParseStrategy(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := search.ParseStrategy("bfs")
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)

	assert.Equal(t, "dijkstra", search.Dijkstra.String())
	assert.Equal(t, "astar", search.AStar.String())
	assert.Equal(t, "Strategy(7)", search.Strategy(7).String())
}

func TestParseHeuristic(t *testing.T) {
	a, b := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 3, Col: 4}
	for name, want := range map[string]float64{
		"":          7,
		"manhattan": 7,
		"Euclidean": 5,
		"zero":      0,
	} {
		h, err := search.ParseHeuristic(name)
		require.NoError(t, err, name)
		assert.InDelta(t, want, h(a, b), 1e-9, name)
	}
	_, err := search.ParseHeuristic("chebyshev")
	assert.Error(t, err)
}

func TestFind_Validation(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 1}, {0, 0}})
	ok := grid.Cell{Row: 0, Col: 0}

	_, err := search.Find(nil, ok, ok)
	assert.ErrorIs(t, err, search.ErrNilGrid)

	_, err = search.Find(g, ok, ok, search.WithStrategy(search.Strategy(9)))
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)

	for _, s := range strategies {
		res, err := search.Find(g, ok, grid.Cell{Row: 0, Col: 1}, search.WithStrategy(s))
		assert.ErrorIs(t, err, grid.ErrInvalidCoordinate, s.String())
		assert.Nil(t, res)

		res, err = search.Find(g, grid.Cell{Row: 5, Col: 5}, ok, search.WithStrategy(s))
		assert.ErrorIs(t, err, grid.ErrInvalidCoordinate, s.String())
		assert.Nil(t, res)
	}
}

func TestFind_KnownMazes(t *testing.T) {
	cases := []struct {
		name        string
		maze        [][]int
		start, goal grid.Cell
		cost        int
	}{
		{"Walls", fixtures.Walls(), grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 19, Col: 19}, fixtures.WallsCost},
		{"Box", fixtures.Box(), grid.Cell{Row: 4, Col: 10}, grid.Cell{Row: 28, Col: 10}, fixtures.BoxCost},
	}
	for _, tc := range cases {
		g := mustGrid(t, tc.maze)
		for _, s := range strategies {
			t.Run(tc.name+"/"+s.String(), func(t *testing.T) {
				res, err := search.Find(g, tc.start, tc.goal, search.WithStrategy(s))
				require.NoError(t, err)
				assert.Equal(t, s, res.Strategy)
				require.True(t, res.Found)
				assert.Equal(t, tc.cost, res.Cost())
				assert.Equal(t, tc.cost+1, res.Path.Len())
				assert.True(t, res.Path.Contiguous())
				assert.Len(t, res.Visited, res.VisitedCount)
				assert.Positive(t, res.VisitedCount)
				assert.GreaterOrEqual(t, res.Elapsed.Nanoseconds(), int64(0))
			})
		}
	}
}

// TestFind_VisitedCounts checks that Dijkstra visits the whole component of
// the start, while A* stops early.
func TestFind_VisitedCounts(t *testing.T) {
	g := mustGrid(t, fixtures.Walls())
	start, goal := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 19, Col: 19}

	dj, err := search.Find(g, start, goal, search.WithStrategy(search.Dijkstra))
	require.NoError(t, err)
	assert.Equal(t, len(g.Region(start)), dj.VisitedCount)

	as, err := search.Find(g, start, goal, search.WithStrategy(search.AStar))
	require.NoError(t, err)
	assert.LessOrEqual(t, as.VisitedCount, dj.VisitedCount)
}

func TestFind_Unreachable(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 0, 0},
		{1, 1, 1},
		{0, 0, 0},
	})
	start, goal := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2}
	for _, s := range strategies {
		res, err := search.Find(g, start, goal, search.WithStrategy(s))
		require.NoError(t, err, s.String())
		assert.False(t, res.Found, s.String())
		assert.Nil(t, res.Path, s.String())
		assert.Equal(t, -1, res.Cost(), s.String())
		assert.Equal(t, 3, res.VisitedCount, s.String())
	}
}

func TestCompare(t *testing.T) {
	g := mustGrid(t, fixtures.Box())
	start, goal := grid.Cell{Row: 28, Col: 10}, grid.Cell{Row: 4, Col: 10}

	cmp, err := search.Compare(context.Background(), g, start, goal,
		search.WithHeuristic(astar.Euclidean))
	require.NoError(t, err)
	require.NotNil(t, cmp.Dijkstra)
	require.NotNil(t, cmp.AStar)
	assert.Equal(t, search.Dijkstra, cmp.Dijkstra.Strategy)
	assert.Equal(t, search.AStar, cmp.AStar.Strategy)
	assert.True(t, cmp.Agree())
	assert.Equal(t, fixtures.BoxCost, cmp.AStar.Cost())
}

func TestCompare_Errors(t *testing.T) {
	g := mustGrid(t, fixtures.Open(3, 3))
	ok := grid.Cell{Row: 0, Col: 0}

	_, err := search.Compare(context.Background(), nil, ok, ok)
	assert.ErrorIs(t, err, search.ErrNilGrid)

	_, err = search.Compare(context.Background(), g, ok, grid.Cell{Row: 3, Col: 0})
	assert.ErrorIs(t, err, grid.ErrInvalidCoordinate)
}

func TestCompare_RandomAgree(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		maze := fixtures.Random(seed, 24, 24, 30)
		g := mustGrid(t, maze)
		start, goal := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 23, Col: 23}

		cmp, err := search.Compare(context.Background(), g, start, goal)
		require.NoError(t, err)
		assert.True(t, cmp.Agree(), "seed %d", seed)
		assert.Equal(t, fixtures.BFSSteps(maze, 0, 0, 23, 23), cmp.Dijkstra.Cost(), "seed %d", seed)
	}
}

func TestComparison_Differences(t *testing.T) {
	g := mustGrid(t, fixtures.Walls())
	cmp, err := search.Compare(context.Background(), g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 19, Col: 19})
	require.NoError(t, err)

	changes, err := cmp.Differences()
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, diff.UPDATE, changes[0].Type)
	assert.Equal(t, []string{"visited"}, changes[0].Path)
	assert.Equal(t, fixtures.WallsPassable, changes[0].From)
	assert.Equal(t, cmp.AStar.VisitedCount, changes[0].To)

	assert.Equal(t, search.Summary{Found: true, Cost: fixtures.WallsCost, Visited: fixtures.WallsPassable},
		cmp.Dijkstra.Summary())
}

func TestComparison_DifferencesUnreachable(t *testing.T) {
	g := mustGrid(t, [][]int{{0, 1, 0}})
	cmp, err := search.Compare(context.Background(), g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 2})
	require.NoError(t, err)

	changes, err := cmp.Differences()
	require.NoError(t, err)
	assert.Empty(t, changes)
	assert.Equal(t, search.Summary{Found: false, Cost: -1, Visited: 1}, cmp.AStar.Summary())
}

func TestFind_Repeatable(t *testing.T) {
	g := mustGrid(t, fixtures.Random(77, 30, 30, 28))
	start, goal := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 29, Col: 29}
	for _, s := range strategies {
		first, err := search.Find(g, start, goal, search.WithStrategy(s))
		require.NoError(t, err)
		second, err := search.Find(g, start, goal, search.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, first.Summary(), second.Summary(), s.String())
	}
}

func TestCompare_Cancelled(t *testing.T) {
	g := mustGrid(t, fixtures.Walls())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmp, err := search.Compare(ctx, g, grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 19, Col: 19})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, cmp)
}
