package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandom_Reproducible(t *testing.T) {
	a := Random(42, 15, 12, 30)
	b := Random(42, 15, 12, 30)
	assert.Equal(t, a, b)
	assert.Len(t, a, 15)
	assert.Len(t, a[0], 12)
	assert.Equal(t, 0, a[0][0])
	assert.Equal(t, 0, a[14][11])
}

func TestBFSSteps_KnownMazes(t *testing.T) {
	assert.Equal(t, WallsCost, BFSSteps(Walls(), 0, 0, 19, 19))
	assert.Equal(t, BoxCost, BFSSteps(Box(), 4, 10, 28, 10))
	assert.Equal(t, 4, BFSSteps(Open(3, 3), 0, 0, 2, 2))
	assert.Equal(t, -1, BFSSteps([][]int{{0, 1, 0}}, 0, 0, 0, 2))
}
