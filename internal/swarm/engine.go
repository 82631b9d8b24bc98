package swarm

import (
	"math"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r2"
)

// Swarms smaller than this are scanned on the calling goroutine.
const serialScanThreshold = 256

const degToRad = math.Pi / 180

// Engine advances a State by one tick at a time. It owns the per-tick
// buffers so repeated steps do not allocate. An Engine must not be shared by
// concurrent Step calls.
type Engine struct {
	cfg     Config
	workers int

	global   []bool
	fallback []float64
	turns    []float64
}

// NewEngine returns an engine bound to cfg.
func NewEngine(cfg Config) *Engine {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Engine{cfg: cfg, workers: workers}
}

// Step advances s by one tick using a throwaway engine.
func Step(s *State, cfg Config, rng Rand) {
	NewEngine(cfg).Step(s, rng)
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Step moves every particle along its heading, reflects headings at the box
// walls when clipping is enabled, then turns every particle according to the
// left/right balance of the neighbors it senses.
func (e *Engine) Step(s *State, rng Rand) {
	n := s.Len()
	e.resize(n)

	e.integrate(s)
	if e.cfg.ClipBoundary {
		s.ReflectBoundary()
	}

	// All random decisions are drawn up front so the scan below is a pure
	// function of the post-move snapshot.
	for i := 0; i < n; i++ {
		e.global[i] = rng.Float64() < e.cfg.ChanceForGlobalRadius
	}
	for i := 0; i < n; i++ {
		e.fallback[i] = 360*rng.Float64() - 180
	}

	e.scan(s.particles)

	for i := range s.particles {
		p := &s.particles[i]
		p.Heading = normalizeDegrees(p.Heading + e.cfg.Beta*e.turns[i])
	}
}

// Turns returns the pre-gain turn signal of every particle from the last
// Step: -1, 0 or +1, or the random fallback angle for isolated particles.
func (e *Engine) Turns() []float64 { return slices.Clone(e.turns) }

// UsedGlobalRadius reports which particles sensed with the unbounded radius
// during the last Step.
func (e *Engine) UsedGlobalRadius() []bool { return slices.Clone(e.global) }

func (e *Engine) resize(n int) {
	if cap(e.turns) < n {
		e.global = make([]bool, n)
		e.fallback = make([]float64, n)
		e.turns = make([]float64, n)
		return
	}
	e.global = e.global[:n]
	e.fallback = e.fallback[:n]
	e.turns = e.turns[:n]
}

func (e *Engine) integrate(s *State) {
	v := e.cfg.Velocity
	for i := range s.particles {
		p := &s.particles[i]
		sin, cos := math.Sincos(p.Heading * degToRad)
		p.Pos = r2.Add(p.Pos, r2.Scale(v, r2.Vec{X: cos, Y: sin}))
	}
}

func (e *Engine) scan(ps []Particle) {
	n := len(ps)
	if n < serialScanThreshold || e.workers <= 1 {
		e.scanRange(ps, 0, n)
		return
	}
	chunk := (n + e.workers - 1) / e.workers
	var g errgroup.Group
	g.SetLimit(e.workers)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			e.scanRange(ps, lo, hi)
			return nil
		})
	}
	g.Wait()
}

// scanRange writes turns[lo:hi]. It reads ps and the pre-drawn buffers only.
func (e *Engine) scanRange(ps []Particle, lo, hi int) {
	localSq := e.cfg.Radius * e.cfg.Radius
	for i := lo; i < hi; i++ {
		radiusSq := localSq
		if e.global[i] {
			radiusSq = math.Inf(1)
		}
		left, right := neighborCounts(ps, i, radiusSq)
		if left+right == 0 {
			e.turns[i] = e.fallback[i]
			continue
		}
		e.turns[i] = turnSignal(left, right)
	}
}

// neighborCounts classifies every other particle within radiusSq of ps[i]
// as left (relative bearing ≤ 0) or right (relative bearing > 0).
func neighborCounts(ps []Particle, i int, radiusSq float64) (left, right int) {
	self := ps[i]
	for j := range ps {
		if j == i {
			continue
		}
		d := r2.Sub(ps[j].Pos, self.Pos)
		if r2.Norm2(d) >= radiusSq {
			continue
		}
		if relativeBearing(d, self.Heading) <= 0 {
			left++
		} else {
			right++
		}
	}
	return left, right
}

// relativeBearing returns the direction of d seen from a particle facing
// heading, in degrees within [-180, 180).
func relativeBearing(d r2.Vec, heading float64) float64 {
	bearing := math.Atan2(d.Y, d.X) / degToRad
	return normalizeDegrees(bearing-heading+180) - 180
}

func turnSignal(left, right int) float64 {
	switch {
	case left > right:
		return 1
	case left < right:
		return -1
	default:
		return 0
	}
}
