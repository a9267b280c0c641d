package shortrange

import (
	"fmt"
	"strings"

	"github.com/phil-mansfield/shortrange/bins"
)

// Mode selects how candidate neighbors are found.
type Mode int

const (
	// Binned restricts candidates to the 3x3 block of bins around a particle.
	Binned Mode = iota
	// BruteForce treats every other particle as a candidate.
	BruteForce
	EndMode
)

func (m Mode) String() string {
	switch m {
	case Binned:
		return "Binned"
	case BruteForce:
		return "BruteForce"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Refresh selects how the spatial index is brought up to date after
// particles move.
type Refresh int

const (
	// Rebuild clears the index and reinserts every particle.
	Rebuild Refresh = iota
	// Incremental only moves particles which changed bins.
	Incremental
	EndRefresh
)

func (r Refresh) String() string {
	switch r {
	case Rebuild:
		return "Rebuild"
	case Incremental:
		return "Incremental"
	}
	return fmt.Sprintf("Refresh(%d)", int(r))
}

// ParseMode returns the Mode with the given (case-insensitive) name.
func ParseMode(name string) (Mode, bool) {
	for m := Mode(0); m < EndMode; m++ {
		if strings.EqualFold(m.String(), name) {
			return m, true
		}
	}
	return 0, false
}

// ParseRefresh returns the Refresh with the given (case-insensitive) name.
func ParseRefresh(name string) (Refresh, bool) {
	for r := Refresh(0); r < EndRefresh; r++ {
		if strings.EqualFold(r.String(), name) {
			return r, true
		}
	}
	return 0, false
}

// Simulation advances a set of particles through time. It owns the spatial
// index but never the particles themselves.
type Simulation struct {
	Constants
	Mode    Mode
	Refresh Refresh

	size float64
	idx  *bins.Index
	keys []int
}

// NewSimulation returns a Simulation with the given constants which finds
// neighbors using mode.
func NewSimulation(c Constants, mode Mode) *Simulation {
	return &Simulation{Constants: c, Mode: mode, keys: make([]int, 0, 9)}
}

// Index returns the spatial index used by the most recent step. It is nil
// until InitSimulation has been called in Binned mode.
func (s *Simulation) Index() *bins.Index { return s.idx }

// InitSimulation builds the initial spatial index. It must be called once
// before the first step and does not modify the particles.
func (s *Simulation) InitSimulation(ps Particles, size float64) {
	s.size = size
	if s.Mode == BruteForce {
		return
	}

	if s.idx == nil {
		s.idx = bins.New(size, s.Cutoff)
	} else {
		s.idx.Init(size, s.Cutoff)
	}
	s.idx.Build(ps)
}

// SimulateOneStep computes forces, integrates every particle, reflects them
// off the walls, and in Binned mode refreshes the index for the next call.
func (s *Simulation) SimulateOneStep(ps Particles, size float64) {
	if s.Mode != BruteForce && (s.idx == nil || size != s.size) {
		s.InitSimulation(ps, size)
	}

	s.ComputeForces(ps)
	for i := range ps {
		Move(&ps[i], size, s.Dt)
	}

	if s.Mode != BruteForce {
		switch s.Refresh {
		case Incremental:
			s.idx.Update(ps)
		default:
			s.idx.Build(ps)
		}
	}
}

// ComputeForces resets and recomputes the acceleration of every particle
// from the current positions. Positions are not modified.
func (s *Simulation) ComputeForces(ps Particles) {
	switch s.Mode {
	case BruteForce:
		s.bruteForce(ps)
	default:
		s.binned(ps)
	}
}

func (s *Simulation) bruteForce(ps Particles) {
	c := &s.Constants
	for i := range ps {
		ps[i].Ax, ps[i].Ay = 0, 0
		for j := range ps {
			if i != j {
				ApplyForce(&ps[i], &ps[j], c)
			}
		}
	}
}

// binned visits each ordered pair in the 3x3 block exactly once: the home bin
// is part of the block, so there is no separate intra-bin pass.
func (s *Simulation) binned(ps Particles) {
	if s.idx == nil || s.idx.Count() != len(ps) {
		s.InitSimulation(ps, s.size)
	}

	c := &s.Constants
	for i := range ps {
		ps[i].Ax, ps[i].Ay = 0, 0

		col, row := s.idx.Coords(s.idx.Owner(i))
		s.keys = s.idx.AppendNeighbors(s.keys[:0], col, row)
		for _, key := range s.keys {
			for _, j := range s.idx.Bin(key) {
				if i != j {
					ApplyForce(&ps[i], &ps[j], c)
				}
			}
		}
	}
}
