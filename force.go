package shortrange

import (
	"math"
)

// ApplyForce adds the acceleration neighbor induces on p. Only p is
// modified, so a symmetric interaction needs a second call with the
// arguments swapped. Pairs farther apart than the cutoff do nothing.
func ApplyForce(p, neighbor *Particle, c *Constants) {
	dx := neighbor.X - p.X
	dy := neighbor.Y - p.Y
	r2 := dx*dx + dy*dy

	if r2 > c.Cutoff*c.Cutoff {
		return
	}

	r2 = math.Max(r2, c.MinR*c.MinR)
	r := math.Sqrt(r2)

	coef := (1 - c.Cutoff/r) / r2 / c.Mass
	p.Ax += coef * dx
	p.Ay += coef * dy
}

// Move advances p over one time step and reflects it off the walls of the
// [0, size] x [0, size] box.
func Move(p *Particle, size, dt float64) {
	p.Vx += p.Ax * dt
	p.Vy += p.Ay * dt
	p.X += p.Vx * dt
	p.Y += p.Vy * dt

	Reflect(p, size)
}

// Reflect mirrors p back into the box until it lies in [0, size] along both
// axes, flipping the velocity component once per bounce. A box with no width
// pins the particle to the origin.
func Reflect(p *Particle, size float64) {
	if size <= 0 {
		p.X, p.Y = 0, 0
		return
	}

	for p.X < 0 || p.X > size {
		if p.X < 0 {
			p.X = -p.X
		} else {
			p.X = 2*size - p.X
		}
		p.Vx = -p.Vx
	}

	for p.Y < 0 || p.Y > size {
		if p.Y < 0 {
			p.Y = -p.Y
		} else {
			p.Y = 2*size - p.Y
		}
		p.Vy = -p.Vy
	}
}
