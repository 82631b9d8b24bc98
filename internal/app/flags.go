package app

import (
	"flag"
	"fmt"
	"strings"

	"universe-game/internal/core"
	"universe-game/internal/swarm"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as an override map. Later flags win.
func (l KVList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, _ := strings.Cut(kv, "=")
		m[strings.TrimSpace(k)] = v
	}
	return m
}

// Config represents the command-line parameters shared by the viewers.
type Config struct {
	Preset     string
	ConfigFile string
	Set        KVList
	Seed       int64
	TPS        int
	Size       int
	Trails     bool
	DrawRadius bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Preset: "swarm", TPS: 60, Size: 800}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "named preset: "+strings.Join(core.SimNames(), ", "))
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "TOML run configuration applied over the preset")
	fs.Var(&c.Set, "set", "parameter override in key=value form (repeatable)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the run; 0 keeps the configured seed")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Size, "size", c.Size, "view size in pixels")
	fs.BoolVar(&c.Trails, "trails", c.Trails, "fade old frames instead of clearing (presets may enable it)")
	fs.BoolVar(&c.DrawRadius, "draw-radius", c.DrawRadius, "outline the sensing radius of every particle")
}

// RunConfig resolves the preset, config file and overrides into a validated
// run configuration.
func (c *Config) RunConfig() (swarm.Config, swarm.Preset, error) {
	p, ok := swarm.LookupPreset(c.Preset)
	if !ok {
		return swarm.Config{}, swarm.Preset{}, fmt.Errorf("unknown preset %q (have %s)", c.Preset, strings.Join(core.SimNames(), ", "))
	}
	cfg := p.Config
	if c.ConfigFile != "" {
		loaded, err := swarm.LoadConfig(c.ConfigFile, cfg)
		if err != nil {
			return swarm.Config{}, p, err
		}
		cfg = loaded
	}
	cfg, err := swarm.FromMap(cfg, c.Set.Map())
	if err != nil {
		return swarm.Config{}, p, err
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	if err := cfg.Validate(); err != nil {
		return swarm.Config{}, p, err
	}
	return cfg, p, nil
}

// World builds the run described by the flags through the registered
// factory of the selected preset.
func (c *Config) World() (*swarm.World, error) {
	cfg, _, err := c.RunConfig()
	if err != nil {
		return nil, err
	}
	factory, ok := core.Sims()[c.Preset]
	if !ok {
		return nil, fmt.Errorf("preset %q is not registered", c.Preset)
	}
	sim, err := factory(cfg.Map())
	if err != nil {
		return nil, err
	}
	w, ok := sim.(*swarm.World)
	if !ok {
		return nil, fmt.Errorf("preset %q built %T, want *swarm.World", c.Preset, sim)
	}
	return w, nil
}

// UseTrails reports whether the viewer should start with trails on.
func (c *Config) UseTrails(w *swarm.World) bool { return c.Trails || w.Trails() }
