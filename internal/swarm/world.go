package swarm

import (
	"gonum.org/v1/gonum/spatial/r2"

	"universe-game/internal/core"
	prng "universe-game/pkg/core"
)

// World adapts one swarm run to the viewer-facing core.Sim contract. It owns
// the configuration, the engine, the particle state and the random stream.
type World struct {
	name   string
	cfg    Config
	trails bool

	engine *Engine
	state  *State
	rng    *prng.RNG
	seed   int64
	tick   int
}

// NewWorld validates cfg and starts a run seeded from cfg.Seed.
func NewWorld(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{name: "swarm", cfg: cfg, engine: NewEngine(cfg)}
	w.Reset(0)
	return w, nil
}

// NewWorldFromPreset starts a run from the named preset with overrides applied.
func NewWorldFromPreset(name string, overrides map[string]string) (*World, error) {
	p, ok := LookupPreset(name)
	if !ok {
		return nil, configErr("preset", name, "unknown preset")
	}
	cfg, err := FromMap(p.Config, overrides)
	if err != nil {
		return nil, err
	}
	w, err := NewWorld(cfg)
	if err != nil {
		return nil, err
	}
	return w.WithPreset(p), nil
}

// WithPreset labels the run with the preset name and display hints.
func (w *World) WithPreset(p Preset) *World {
	w.name = p.Name
	w.trails = p.Trails
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return w.name }

// Reset starts a fresh run. A zero seed falls back to the configured seed.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.seed = seed
	w.rng = prng.NewRNG(seed)
	w.state = place(w.cfg, w.rng)
	w.tick = 0
}

// Step advances the run by one tick.
func (w *World) Step() {
	w.engine.Step(w.state, w.rng)
	w.tick++
}

// Tick returns the number of steps since the last Reset.
func (w *World) Tick() int { return w.tick }

// Seed returns the seed of the current run.
func (w *World) Seed() int64 { return w.seed }

// State exposes the live particle state. It must only be read between steps.
func (w *World) State() *State { return w.state }

// Config returns the configuration of the current run.
func (w *World) Config() Config { return w.cfg }

// Trails reports whether viewers should draw fading trails by default.
func (w *World) Trails() bool { return w.trails }

// Positions appends every particle position to dst.
func (w *World) Positions(dst []r2.Vec) []r2.Vec {
	for _, p := range w.state.particles {
		dst = append(dst, p.Pos)
	}
	return dst
}

// BoxWidth returns the box side of the current run.
func (w *World) BoxWidth() float64 { return w.state.BoxWidth() }

// Radius returns the local sensing radius.
func (w *World) Radius() float64 { return w.cfg.Radius }

// Bounded reports whether the reflective boundary is active.
func (w *World) Bounded() bool { return w.cfg.ClipBoundary }

// restart swaps in cfg and starts a new run with the current seed.
func (w *World) restart(cfg Config) bool {
	if err := cfg.Validate(); err != nil {
		return false
	}
	w.cfg = cfg
	w.engine = NewEngine(cfg)
	w.Reset(w.seed)
	return true
}

func init() {
	for _, name := range PresetNames() {
		core.Register(name, func(cfg map[string]string) (core.Sim, error) {
			return NewWorldFromPreset(name, cfg)
		})
	}
}
