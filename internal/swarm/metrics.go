package swarm

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Polarization returns the length of the mean heading unit vector: 1 when
// every particle moves the same way, near 0 for disordered motion.
func Polarization(s *State) float64 {
	if s.Len() == 0 {
		return 0
	}
	var sum r2.Vec
	for _, p := range s.particles {
		sin, cos := math.Sincos(p.Heading * degToRad)
		sum = r2.Add(sum, r2.Vec{X: cos, Y: sin})
	}
	return r2.Norm(sum) / float64(s.Len())
}

// Centroid returns the mean particle position.
func Centroid(s *State) r2.Vec {
	if s.Len() == 0 {
		return r2.Vec{}
	}
	var sum r2.Vec
	for _, p := range s.particles {
		sum = r2.Add(sum, p.Pos)
	}
	return r2.Scale(1/float64(s.Len()), sum)
}

// Gyration returns the root mean square distance of particles from the
// centroid.
func Gyration(s *State) float64 {
	if s.Len() == 0 {
		return 0
	}
	c := Centroid(s)
	var acc float64
	for _, p := range s.particles {
		acc += r2.Norm2(r2.Sub(p.Pos, c))
	}
	return math.Sqrt(acc / float64(s.Len()))
}

// Extent returns the lower-left and upper-right corners of the bounding box
// of all particles.
func Extent(s *State) (lo, hi r2.Vec) {
	if s.Len() == 0 {
		return r2.Vec{}, r2.Vec{}
	}
	lo, hi = s.particles[0].Pos, s.particles[0].Pos
	for _, p := range s.particles[1:] {
		lo.X = math.Min(lo.X, p.Pos.X)
		lo.Y = math.Min(lo.Y, p.Pos.Y)
		hi.X = math.Max(hi.X, p.Pos.X)
		hi.Y = math.Max(hi.Y, p.Pos.Y)
	}
	return lo, hi
}
