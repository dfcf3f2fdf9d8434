package grid_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/grid"
)

// TestComponents_Simple tests Components on a 3×4 grid.
//
// Grid (0 = passable, 1 = blocked):
//
//	0 0 1 1
//	1 0 1 0
//	1 1 1 0
//
// Expected: 2 regions of sizes 3 and 2.
func TestComponents_Simple(t *testing.T) {
	g, err := grid.FromInts([][]int{
		{0, 0, 1, 1},
		{1, 0, 1, 0},
		{1, 1, 1, 0},
	})
	require.NoError(t, err)

	comps := g.Components()
	require.Len(t, comps, 2)

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 3}, sizes)
	assert.Equal(t, grid.Cell{Row: 0, Col: 0}, comps[0][0])
}

// TestComponents_NoDiagonal checks that diagonal touching does not join regions.
func TestComponents_NoDiagonal(t *testing.T) {
	g, err := grid.FromInts([][]int{
		{0, 1},
		{1, 0},
	})
	require.NoError(t, err)

	assert.Len(t, g.Components(), 2)
	assert.False(t, g.Connected(grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 1, Col: 1}))
}

// TestComponents_AllBlocked returns no regions.
func TestComponents_AllBlocked(t *testing.T) {
	g, err := grid.FromInts([][]int{{1, 1}, {1, 1}})
	require.NoError(t, err)
	assert.Empty(t, g.Components())
	assert.Nil(t, g.Region(grid.Cell{Row: 0, Col: 0}))
}

// TestRegion_Connected checks Region size and Connected on an open grid.
func TestRegion_Connected(t *testing.T) {
	g, err := grid.New(make2D(3, 3))
	require.NoError(t, err)

	assert.Len(t, g.Region(grid.Cell{Row: 1, Col: 1}), 9)
	assert.True(t, g.Connected(grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2}))
	assert.False(t, g.Connected(grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 3, Col: 3}))
}
