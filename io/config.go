package io

import (
	"fmt"
	"math"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/shortrange"
)

const (
	ExampleSimulateFile = `[Simulate]

#######################
# Required Parameters #
#######################

# Number of particles to simulate. Ignored if Input is set, since the
# particle count is then the number of rows in the Input file.
Particles = 1000

# Number of time steps to take.
Steps = 1000

#######################
# Optional Parameters #
#######################

# Trajectory file. The position of every particle is written to it before the
# first step and after every SaveFreq steps. No trajectory is written if
# Output isn't set.
# Output = out.txt
# SaveFreq = 10

# Text table of initial conditions with the columns x y vx vy. If not set,
# particles are placed on a shuffled lattice with random velocities in
# [-1, 1].
# Input = path/to/initial/conditions.txt

# Seed for the initial conditions. 0 uses the current time.
# Seed = 0

# Writes an image of the final particle positions.
# Plot = final.png

# Neighbor search. Binned is O(n) per step and BruteForce is O(n^2); both
# give the same forces. Refresh controls whether the bins are rebuilt from
# scratch every step or whether only particles which changed bins are moved.
# Mode = Binned
# Refresh = Rebuild

# Width of the (square) box. Defaults to sqrt(Density * Particles).
# Size = 1
# Density = 0.0005

# Physical constants. MinR defaults to Cutoff / 100.
# Mass = 0.01
# Cutoff = 0.01
# MinR = 0.0001
# Dt = 0.0005

# Output files which are useful for profiling and debugging.
# ProfileFile = prof.out
# LogFile = log.out`
)

type SharedConfig struct {
	// Optional
	LogFile, ProfileFile string
}

func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SharedConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

type SimulateConfig struct {
	SharedConfig

	// Required
	Particles, Steps int

	// Optional
	Input, Output, Plot string
	SaveFreq            int
	Seed                int64
	Mode, Refresh       string

	Size, Density          float64
	Mass, Cutoff, MinR, Dt float64
}

type SimulateWrapper struct {
	Simulate SimulateConfig
}

func DefaultSimulateWrapper() *SimulateWrapper {
	con := SimulateConfig{}
	con.SaveFreq = 10
	con.Mode = shortrange.Binned.String()
	con.Refresh = shortrange.Rebuild.String()
	con.Density = shortrange.DefaultDensity
	con.Mass = shortrange.DefaultMass
	con.Cutoff = shortrange.DefaultCutoff
	con.Dt = shortrange.DefaultDt
	return &SimulateWrapper{con}
}

func (con *SimulateConfig) ValidParticles() bool {
	return con.Particles > 0
}
func (con *SimulateConfig) ValidSteps() bool {
	return con.Steps >= 0
}
func (con *SimulateConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *SimulateConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *SimulateConfig) ValidPlot() bool {
	return con.Plot != ""
}
func (con *SimulateConfig) ValidSaveFreq() bool {
	return con.SaveFreq > 0
}
func (con *SimulateConfig) ValidMode() bool {
	_, ok := shortrange.ParseMode(con.Mode)
	return ok
}
func (con *SimulateConfig) ValidRefresh() bool {
	_, ok := shortrange.ParseRefresh(con.Refresh)
	return ok
}
func (con *SimulateConfig) ValidSize() bool {
	return con.Size > 0
}
func (con *SimulateConfig) ValidDensity() bool {
	return con.Density > 0
}

// CheckInit fills in derived defaults and returns an error describing the
// first invalid parameter.
func (con *SimulateConfig) CheckInit() error {
	if !con.ValidInput() && !con.ValidParticles() {
		return fmt.Errorf(
			"Need to specify a positive Particles count, but it is %d.",
			con.Particles,
		)
	} else if !con.ValidSteps() {
		return fmt.Errorf("Steps must be non-negative, but is %d.", con.Steps)
	} else if !con.ValidSaveFreq() {
		return fmt.Errorf("SaveFreq must be positive, but is %d.", con.SaveFreq)
	} else if !con.ValidMode() {
		return fmt.Errorf(
			"Mode must be one of [ Binned | BruteForce ], but is '%s'.",
			con.Mode,
		)
	} else if !con.ValidRefresh() {
		return fmt.Errorf(
			"Refresh must be one of [ Rebuild | Incremental ], but is '%s'.",
			con.Refresh,
		)
	} else if !con.ValidSize() && !con.ValidDensity() {
		return fmt.Errorf(
			"Need to specify either a positive Size or a positive Density.",
		)
	}

	if con.Mass <= 0 {
		return fmt.Errorf("Mass must be positive, but is %g.", con.Mass)
	} else if con.Cutoff <= 0 {
		return fmt.Errorf("Cutoff must be positive, but is %g.", con.Cutoff)
	} else if con.Dt <= 0 {
		return fmt.Errorf("Dt must be positive, but is %g.", con.Dt)
	}

	if con.MinR == 0 {
		con.MinR = con.Cutoff / 100
	} else if con.MinR < 0 || con.MinR > con.Cutoff {
		return fmt.Errorf(
			"MinR must be in range (0, %g], but is %g.", con.Cutoff, con.MinR,
		)
	}

	return nil
}

// Constants returns the physical constants of the run.
func (con *SimulateConfig) Constants() shortrange.Constants {
	return shortrange.Constants{
		Cutoff: con.Cutoff, MinR: con.MinR, Dt: con.Dt, Mass: con.Mass,
	}
}

// BoxSize returns the width of the box for a run with n particles.
func (con *SimulateConfig) BoxSize(n int) float64 {
	if con.ValidSize() {
		return con.Size
	}
	return math.Sqrt(con.Density * float64(n))
}

// SimulationMode returns the parsed Mode. CheckInit must have succeeded.
func (con *SimulateConfig) SimulationMode() shortrange.Mode {
	m, _ := shortrange.ParseMode(con.Mode)
	return m
}

// SimulationRefresh returns the parsed Refresh. CheckInit must have
// succeeded.
func (con *SimulateConfig) SimulationRefresh() shortrange.Refresh {
	r, _ := shortrange.ParseRefresh(con.Refresh)
	return r
}

// ReadSimulateConfig reads and checks a [Simulate] config file.
func ReadSimulateConfig(fname string) (*SimulateConfig, error) {
	wrap := DefaultSimulateWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Simulate.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.Simulate, nil
}

// ParseSimulateConfig is ReadSimulateConfig for the contents of a file.
func ParseSimulateConfig(str string) (*SimulateConfig, error) {
	wrap := DefaultSimulateWrapper()
	if err := gcfg.ReadStringInto(wrap, str); err != nil {
		return nil, err
	}
	if err := wrap.Simulate.CheckInit(); err != nil {
		return nil, err
	}
	return &wrap.Simulate, nil
}
