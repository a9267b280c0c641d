package io

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/shortrange"
)

// InitParticles places n particles on an evenly spaced lattice inside a box
// of the given width and assigns them uniform random velocities in [-1, 1].
// Lattice sites are handed out in a random order so that particle indices
// are not spatially sorted. A seed of 0 uses the current time.
func InitParticles(n int, size float64, seed int64) shortrange.Particles {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := rand.New(rand.NewSource(seed))

	sx := int(math.Ceil(math.Sqrt(float64(n))))
	sy := 1
	if sx > 0 {
		sy = (n + sx - 1) / sx
	}

	shuffle := make([]int, n)
	for i := range shuffle {
		shuffle[i] = i
	}

	ps := make(shortrange.Particles, n)
	for i := range ps {
		j := gen.Intn(n - i)
		k := shuffle[j]
		shuffle[j] = shuffle[n-i-1]

		ps[i].X = size * (1 + float64(k%sx)) / float64(1+sx)
		ps[i].Y = size * (1 + float64(k/sx)) / float64(1+sy)
		ps[i].Vx = 2*gen.Float64() - 1
		ps[i].Vy = 2*gen.Float64() - 1
	}

	return ps
}

// ReadParticles reads initial conditions from a text table with the columns
// x, y, vx, vy.
func ReadParticles(fname string) (shortrange.Particles, error) {
	cols, err := table.ReadTable(fname, []int{0, 1, 2, 3}, nil)
	if err != nil {
		return nil, err
	}

	xs, ys, vxs, vys := cols[0], cols[1], cols[2], cols[3]
	ps := make(shortrange.Particles, len(xs))
	for i := range ps {
		ps[i].X, ps[i].Y = xs[i], ys[i]
		ps[i].Vx, ps[i].Vy = vxs[i], vys[i]
	}
	return ps, nil
}

// CheckBounds returns an error if any particle lies outside the box
// [0, size] x [0, size].
func CheckBounds(ps shortrange.Particles, size float64) error {
	for i, p := range ps {
		if p.X < 0 || p.X > size || p.Y < 0 || p.Y > size {
			return fmt.Errorf(
				"Particle %d at (%g, %g) must be in range [0, %g].",
				i, p.X, p.Y, size,
			)
		}
	}
	return nil
}
