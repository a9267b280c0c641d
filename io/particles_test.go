package io

import (
	"io/ioutil"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/shortrange"
)

func TestInitParticles(t *testing.T) {
	for _, n := range []int{1, 2, 10, 1000} {
		size := math.Sqrt(shortrange.DefaultDensity * float64(n))
		ps := InitParticles(n, size, 42)
		require.Len(t, ps, n)
		assert.NoError(t, CheckBounds(ps, size))

		sites := map[[2]float64]bool{}
		for i, p := range ps {
			assert.True(t, p.X > 0 && p.X < size, "X of %d", i)
			assert.True(t, p.Y > 0 && p.Y < size, "Y of %d", i)
			assert.True(t, math.Abs(p.Vx) <= 1 && math.Abs(p.Vy) <= 1)
			assert.Equal(t, 0.0, p.Ax)
			assert.Equal(t, 0.0, p.Ay)
			site := [2]float64{p.X, p.Y}
			assert.False(t, sites[site], "site of %d is shared", i)
			sites[site] = true
		}
	}
}

func TestInitParticlesSeed(t *testing.T) {
	assert.Equal(t, InitParticles(100, 1, 7), InitParticles(100, 1, 7))
	assert.NotEqual(t, InitParticles(100, 1, 7), InitParticles(100, 1, 8))
	assert.Len(t, InitParticles(0, 1, 7), 0)
}

func TestCheckBounds(t *testing.T) {
	ps := shortrange.Particles{{X: 0, Y: 1}, {X: 1, Y: 0}}
	assert.NoError(t, CheckBounds(ps, 1))
	assert.Error(t, CheckBounds(ps, 0.5))
	assert.Error(t, CheckBounds(shortrange.Particles{{X: -0.1}}, 1))
}

func TestReadParticles(t *testing.T) {
	f, err := ioutil.TempFile("", "ics_*.txt")
	require.NoError(t, err)
	defer os.Remove(f.Name())

	_, err = f.WriteString("0.1 0.2 0.5 -0.5\n0.3 0.4 1 0\n0.05 0.25 0 -1\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	ps, err := ReadParticles(f.Name())
	require.NoError(t, err)
	require.Len(t, ps, 3)
	assert.Equal(t, shortrange.Particle{X: 0.1, Y: 0.2, Vx: 0.5, Vy: -0.5}, ps[0])
	assert.Equal(t, shortrange.Particle{X: 0.3, Y: 0.4, Vx: 1, Vy: 0}, ps[1])
	assert.Equal(t, shortrange.Particle{X: 0.05, Y: 0.25, Vx: 0, Vy: -1}, ps[2])
}
