package swarm

import (
	"maps"
	"slices"
)

// Preset is a named, tuned configuration together with the display hints the
// viewers use for it.
type Preset struct {
	Name        string
	Description string
	Config      Config
	// Trails asks viewers to fade old frames instead of clearing them.
	Trails bool
}

func preset(name, desc string, n int, velocity, radius, chance, beta, box float64, clip, trails bool) Preset {
	cfg := DefaultConfig()
	cfg.NParticles = n
	cfg.Velocity = velocity
	cfg.Radius = radius
	cfg.ChanceForGlobalRadius = chance
	cfg.Beta = beta
	cfg.BoxWidth = box
	cfg.ClipBoundary = clip
	cfg.Distribution = DistributionUniform
	return Preset{Name: name, Description: desc, Config: cfg, Trails: trails}
}

var presets = map[string]Preset{
	"swarm":                preset("swarm", "dense local swarming in a small box", 1000, 0.01, 2, 0, 1, 5, true, true),
	"uninteracting":        preset("uninteracting", "zero gain; particles only bounce off the walls", 100, 0.01, 2, 0, 0, 5, true, false),
	"petri_dish":           preset("petri_dish", "fast particles with a strong gain in a wide dish", 1000, 10, 80, 0, 10, 4000, true, false),
	"shedding_ring":        preset("shedding_ring", "near-global sensing on an open plane; a ring forms and sheds", 1000, 1, 4, 0.99, 0.2, 10, false, false),
	"stable_ring_collapse": preset("stable_ring_collapse", "global sensing on an open plane; a ring forms and collapses", 1000, 1, 4, 1, 0.2, 10, false, false),
	"pulse_ring":           preset("pulse_ring", "zero gain with global sensing in a large box", 1000, 10, 4, 1, 0, 1000, true, false),
}

// LookupPreset returns the preset registered under name.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames lists the preset names in sorted order.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(presets))
}
