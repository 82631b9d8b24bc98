package swarm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Distribution selects how particles are placed when a run starts.
type Distribution string

const (
	// DistributionUniform scatters particles uniformly over the box.
	DistributionUniform Distribution = "uniform"
	// DistributionHexagonal places particles on a triangular lattice and
	// derives the box width from the lattice extent.
	DistributionHexagonal Distribution = "hexagonal"
)

// ParseDistribution maps a name onto a Distribution.
func ParseDistribution(s string) (Distribution, error) {
	switch d := Distribution(strings.ToLower(strings.TrimSpace(s))); d {
	case DistributionUniform, DistributionHexagonal:
		return d, nil
	default:
		return "", configErr("distribution", s, "must be uniform or hexagonal")
	}
}

// Config holds the parameters of a single run. It is treated as immutable
// once a run has started; changing parameters means starting a new run.
type Config struct {
	NParticles            int          `toml:"n_particles"`
	Velocity              float64      `toml:"velocity"`
	Radius                float64      `toml:"radius"`
	ChanceForGlobalRadius float64      `toml:"chance_for_global_radius"`
	Beta                  float64      `toml:"beta"`
	BoxWidth              float64      `toml:"box_width"`
	ClipBoundary          bool         `toml:"clip_boundary"`
	Distribution          Distribution `toml:"distribution"`

	Seed    int64 `toml:"seed"`
	Workers int   `toml:"workers"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		NParticles:            100,
		Velocity:              0.05,
		Radius:                1,
		ChanceForGlobalRadius: 0.1,
		Beta:                  1,
		BoxWidth:              1,
		ClipBoundary:          true,
		Distribution:          DistributionUniform,
		Seed:                  42,
	}
}

// Validate reports the first field that makes the configuration unusable.
func (c Config) Validate() error {
	if c.NParticles <= 0 {
		return configErr("n_particles", c.NParticles, "must be positive")
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"velocity", c.Velocity},
		{"radius", c.Radius},
		{"chance_for_global_radius", c.ChanceForGlobalRadius},
		{"beta", c.Beta},
		{"box_width", c.BoxWidth},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return configErr(f.name, f.value, "must be finite")
		}
	}
	if c.Velocity < 0 {
		return configErr("velocity", c.Velocity, "must not be negative")
	}
	if c.Radius < 0 {
		return configErr("radius", c.Radius, "must not be negative")
	}
	if c.ChanceForGlobalRadius < 0 || c.ChanceForGlobalRadius > 1 {
		return configErr("chance_for_global_radius", c.ChanceForGlobalRadius, "must lie in [0, 1]")
	}
	if c.Workers < 0 {
		return configErr("workers", c.Workers, "must not be negative")
	}
	switch c.Distribution {
	case DistributionUniform:
		if c.BoxWidth <= 0 {
			return configErr("box_width", c.BoxWidth, "must be positive for uniform placement")
		}
	case DistributionHexagonal:
		if c.Radius == 0 {
			return configErr("radius", c.Radius, "hexagonal placement needs a positive lattice spacing")
		}
	default:
		return configErr("distribution", string(c.Distribution), "must be uniform or hexagonal")
	}
	return nil
}

// FromMap applies flag-style key/value overrides on top of base. Unknown
// keys and unparsable values are configuration errors.
func FromMap(base Config, cfg map[string]string) (Config, error) {
	c := base
	for key, v := range cfg {
		if err := c.set(key, v); err != nil {
			return base, err
		}
	}
	return c, nil
}

func (c *Config) set(key, v string) error {
	v = strings.TrimSpace(v)
	switch key {
	case "n_particles", "n":
		n, err := strconv.Atoi(v)
		if err != nil {
			return parseErr(key, v, err)
		}
		c.NParticles = n
	case "velocity":
		return setFloat(&c.Velocity, key, v)
	case "radius":
		return setFloat(&c.Radius, key, v)
	case "chance_for_global_radius":
		return setFloat(&c.ChanceForGlobalRadius, key, v)
	case "beta":
		return setFloat(&c.Beta, key, v)
	case "box_width":
		return setFloat(&c.BoxWidth, key, v)
	case "clip_boundary":
		b, err := strconv.ParseBool(v)
		if err != nil {
			return parseErr(key, v, err)
		}
		c.ClipBoundary = b
	case "distribution":
		d, err := ParseDistribution(v)
		if err != nil {
			return err
		}
		c.Distribution = d
	case "seed":
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return parseErr(key, v, err)
		}
		c.Seed = s
	case "workers":
		w, err := strconv.Atoi(v)
		if err != nil {
			return parseErr(key, v, err)
		}
		c.Workers = w
	default:
		return configErr(key, v, "unknown parameter")
	}
	return nil
}

// Map renders every field in the key=value form FromMap accepts, so a
// resolved configuration can travel through a core.Factory.
func (c Config) Map() map[string]string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return map[string]string{
		"n_particles":              strconv.Itoa(c.NParticles),
		"velocity":                 f(c.Velocity),
		"radius":                   f(c.Radius),
		"chance_for_global_radius": f(c.ChanceForGlobalRadius),
		"beta":                     f(c.Beta),
		"box_width":                f(c.BoxWidth),
		"clip_boundary":            strconv.FormatBool(c.ClipBoundary),
		"distribution":             string(c.Distribution),
		"seed":                     strconv.FormatInt(c.Seed, 10),
		"workers":                  strconv.Itoa(c.Workers),
	}
}

func setFloat(dst *float64, key, v string) error {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return parseErr(key, v, err)
	}
	*dst = f
	return nil
}

func parseErr(key, v string, err error) error {
	return &ConfigurationError{Field: key, Value: v, Reason: "cannot parse", Err: err}
}

// String renders the configuration as a single line for logs and reports.
func (c Config) String() string {
	return fmt.Sprintf("n=%d v=%g r=%g global=%g beta=%g box=%g clip=%t dist=%s",
		c.NParticles, c.Velocity, c.Radius, c.ChanceForGlobalRadius, c.Beta, c.BoxWidth, c.ClipBoundary, c.Distribution)
}
