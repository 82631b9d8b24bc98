package core

import (
	"maps"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sim defines the minimal contract a particle simulation must implement for
// the viewers.
type Sim interface {
	Name() string
	Reset(seed int64)
	Step()
	// Tick returns the number of steps since the last Reset.
	Tick() int
	// Positions appends every particle position to dst and returns it.
	Positions(dst []r2.Vec) []r2.Vec
	// BoxWidth is the side of the square domain.
	BoxWidth() float64
	// Bounded reports whether particles are kept inside the box.
	Bounded() bool
	// Radius is the local sensing radius, drawn as an outline on request.
	Radius() float64
}

// Factory constructs a Sim using an optional key/value override map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists registered names in sorted order.
func SimNames() []string {
	return slices.Sorted(maps.Keys(sims))
}
