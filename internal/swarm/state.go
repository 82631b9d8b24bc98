package swarm

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Rand is the random source consumed by initialization and by the engine.
// *rand.Rand and *core.RNG both satisfy it.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

// Particle is one self-propelled agent. Heading is in degrees.
type Particle struct {
	Pos     r2.Vec
	Heading float64
}

// State owns the particle array of one run together with the box width
// used by the reflective boundary.
type State struct {
	particles []Particle
	boxWidth  float64
}

// NewState wraps an explicit particle snapshot. Headings are normalized into
// [0, 360). The slice is copied.
func NewState(particles []Particle, boxWidth float64) *State {
	s := &State{particles: make([]Particle, len(particles)), boxWidth: boxWidth}
	copy(s.particles, particles)
	for i := range s.particles {
		s.particles[i].Heading = normalizeDegrees(s.particles[i].Heading)
	}
	return s
}

// Initialize validates cfg and places cfg.NParticles particles according to
// cfg.Distribution. In hexagonal mode the box width is taken from the lattice
// extent rather than from cfg.
func Initialize(cfg Config, rng Rand) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return place(cfg, rng), nil
}

func place(cfg Config, rng Rand) *State {
	s := &State{particles: make([]Particle, cfg.NParticles), boxWidth: cfg.BoxWidth}
	switch cfg.Distribution {
	case DistributionHexagonal:
		lattice := HexagonalLattice(cfg.NParticles, cfg.Radius)
		for i, p := range lattice {
			s.particles[i] = Particle{Pos: p, Heading: normalizeDegrees(360 * rng.Float64())}
		}
		s.boxWidth = maxCoordinate(lattice)
	default:
		for i := range s.particles {
			x := cfg.BoxWidth * rng.Float64()
			y := cfg.BoxWidth * rng.Float64()
			s.particles[i] = Particle{Pos: r2.Vec{X: x, Y: y}, Heading: normalizeDegrees(360 * rng.Float64())}
		}
	}
	return s
}

// Len returns the number of particles.
func (s *State) Len() int { return len(s.particles) }

// BoxWidth returns the side of the square domain, possibly lattice-adjusted.
func (s *State) BoxWidth() float64 { return s.boxWidth }

// At returns the position and heading of particle i.
func (s *State) At(i int) (x, y, heading float64) {
	p := s.particles[i]
	return p.Pos.X, p.Pos.Y, p.Heading
}

// Particles exposes the backing slice for read access between ticks. Callers
// must not modify it.
func (s *State) Particles() []Particle { return s.particles }

// ReflectBoundary flips the heading of every particle found outside
// [0, boxWidth]². Hits on the x sides mirror the heading about the vertical
// axis, hits on the y sides about the horizontal axis. Positions are left
// untouched so the wall is soft.
func (s *State) ReflectBoundary() {
	w := s.boxWidth
	for i := range s.particles {
		p := &s.particles[i]
		flipX := p.Pos.X < 0 || p.Pos.X > w
		flipY := p.Pos.Y > w || p.Pos.Y < 0
		h := p.Heading
		if flipX {
			h = 180 - h
		}
		if flipY {
			h = 360 - h
		}
		p.Heading = normalizeDegrees(h)
	}
}

// normalizeDegrees maps a into [0, 360).
func normalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}
