package shortrange

// Particle is a point particle. Ax and Ay are recomputed every step and
// carry no meaning between steps.
type Particle struct {
	X, Y   float64
	Vx, Vy float64
	Ax, Ay float64
}

// Particles is an ordered set of particles. A particle's index is its
// identity for the whole run.
type Particles []Particle

// Len returns the number of particles.
func (ps Particles) Len() int { return len(ps) }

// Pos returns the position of the ith particle.
func (ps Particles) Pos(i int) (x, y float64) { return ps[i].X, ps[i].Y }

// Constants are the physical parameters of a run. They are fixed once a
// Simulation is created.
type Constants struct {
	Cutoff float64 // interaction radius
	MinR   float64 // separation floor used when computing forces
	Dt     float64 // integration time step
	Mass   float64 // mass of every particle
}

const (
	DefaultDensity = 0.0005
	DefaultMass    = 0.01
	DefaultCutoff  = 0.01
	DefaultMinR    = DefaultCutoff / 100
	DefaultDt      = 0.0005
)

// DefaultConstants returns the standard parameters of the exercise.
func DefaultConstants() Constants {
	return Constants{
		Cutoff: DefaultCutoff,
		MinR:   DefaultMinR,
		Dt:     DefaultDt,
		Mass:   DefaultMass,
	}
}
