package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridsearch/grid"
)

func TestPath_Basics(t *testing.T) {
	var empty grid.Path
	assert.True(t, empty.Empty())
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 0, empty.Cost())
	assert.True(t, empty.Contiguous())
	_, ok := empty.Start()
	assert.False(t, ok)
	_, ok = empty.Goal()
	assert.False(t, ok)

	p := grid.Path{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}
	assert.Equal(t, 5, p.Len())
	assert.Equal(t, 4, p.Cost())
	assert.True(t, p.Contiguous())
	assert.True(t, p.Contains(grid.Cell{Row: 2, Col: 1}))
	assert.False(t, p.Contains(grid.Cell{Row: 1, Col: 1}))
	s, _ := p.Start()
	g, _ := p.Goal()
	assert.Equal(t, grid.Cell{Row: 0, Col: 0}, s)
	assert.Equal(t, grid.Cell{Row: 2, Col: 2}, g)
	assert.Equal(t, "(0,0)->(1,0)->(2,0)->(2,1)->(2,2)", p.String())
}

func TestPath_Contiguous(t *testing.T) {
	cases := []struct {
		name string
		path grid.Path
		want bool
	}{
		{"Single", grid.Path{{3, 3}}, true},
		{"Diagonal", grid.Path{{0, 0}, {1, 1}}, false},
		{"Jump", grid.Path{{0, 0}, {0, 2}}, false},
		{"Repeat", grid.Path{{0, 0}, {0, 0}}, false},
		{"Turn", grid.Path{{0, 0}, {0, 1}, {1, 1}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.path.Contiguous())
		})
	}
}

func TestPath_Reverse(t *testing.T) {
	p := grid.Path{{0, 0}, {0, 1}, {0, 2}}
	p.Reverse()
	assert.Equal(t, grid.Path{{0, 2}, {0, 1}, {0, 0}}, p)
}
