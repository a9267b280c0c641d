package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinCoord(t *testing.T) {
	table := []struct {
		x, width float64
		k        int
	}{
		{0, 1, 0},
		{0.0005, 1, 0},
		{0.5, 1, 1},
		{1 - 0.0005, 1, 1},
		{1, 1, 1},
		{1 + 0.0005, 1, 1},
		{1 + 0.002, 1, 2},
		{2, 1, 2},
		{2.5, 1, 3},
		{0.03, 0.01, 3},
		{0.0301, 0.01, 3},
		{0.0312, 0.01, 4},
	}

	for i, test := range table {
		assert.Equal(t, test.k, BinCoord(test.x, test.width),
			"%d) BinCoord(%g, %g)", i, test.x, test.width)
	}
}

func TestCells(t *testing.T) {
	assert.Equal(t, 1, Cells(0, 0.01))
	assert.Equal(t, 1, Cells(-1, 0.01))
	assert.Equal(t, 1, Cells(1, 0))
	assert.Equal(t, 1, Cells(0.01, 0.01))
	assert.Equal(t, 1, Cells(0.005, 0.01))
	assert.Equal(t, 11, Cells(10, 1))
	assert.Equal(t, 12, Cells(10.5, 1))
}

func TestCellsCoverDomain(t *testing.T) {
	size, width := 10.5, 1.0
	n := Cells(size, width)
	for x := 0.0; x <= size; x += 0.01 {
		k := BinCoord(x, width)
		assert.True(t, k >= 0 && k < n, "BinCoord(%g) = %d, Cells = %d", x, k, n)
	}
	assert.True(t, BinCoord(size, width) < n)
}

func TestGrid(t *testing.T) {
	g := NewGrid([2]int{0, 0}, [2]int{4, 3})
	assert.Equal(t, 4, g.Length)
	assert.Equal(t, 12, g.Area)

	assert.Equal(t, 0, g.Idx(0, 0))
	assert.Equal(t, 3, g.Idx(3, 0))
	assert.Equal(t, 4, g.Idx(0, 1))
	assert.Equal(t, 11, g.Idx(3, 2))

	for idx := 0; idx < g.Area; idx++ {
		x, y := g.Coords(idx)
		assert.Equal(t, idx, g.Idx(x, y))
	}

	_, ok := g.IdxCheck(-1, 0)
	assert.False(t, ok)
	_, ok = g.IdxCheck(4, 0)
	assert.False(t, ok)
	_, ok = g.IdxCheck(0, 3)
	assert.False(t, ok)
	idx, ok := g.IdxCheck(2, 1)
	assert.True(t, ok)
	assert.Equal(t, 6, idx)
}

func TestGridClamp(t *testing.T) {
	g := NewGrid([2]int{0, 0}, [2]int{1, 1})
	x, y := g.Clamp(1, 2)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	g.Init([2]int{0, 0}, [2]int{5, 5})
	x, y = g.Clamp(-1, 7)
	assert.Equal(t, 0, x)
	assert.Equal(t, 4, y)
	x, y = g.Clamp(2, 3)
	assert.Equal(t, 2, x)
	assert.Equal(t, 3, y)
}
