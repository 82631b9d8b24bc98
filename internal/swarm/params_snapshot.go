package swarm

import (
	"strconv"

	"universe-game/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	c := w.cfg
	groups := []core.ParameterGroup{
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("n_particles", "Particles", c.NParticles),
				int64Param("seed", "Seed", w.seed),
				intParam("tick", "Tick", w.tick),
			},
		},
		{
			Name: "Motion",
			Params: []core.Parameter{
				floatParam("velocity", "Velocity", c.Velocity),
				floatParam("beta", "Turn gain", c.Beta),
			},
		},
		{
			Name: "Sensing",
			Params: []core.Parameter{
				floatParam("radius", "Radius", c.Radius),
				floatParam("chance_for_global_radius", "Global radius chance", c.ChanceForGlobalRadius),
			},
		},
		{
			Name:    "Domain",
			Summary: "hexagonal runs derive the box from the lattice",
			Params: []core.Parameter{
				floatParam("box_width", "Box width", w.BoxWidth()),
				boolParam("clip_boundary", "Reflective walls", c.ClipBoundary),
				stringParam("distribution", "Distribution", string(c.Distribution)),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "n_particles", Label: "Particles", Type: core.ParamTypeInt, Step: 50, Min: 1, HasMin: true},
		{Key: "velocity", Label: "Velocity", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, HasMin: true},
		{Key: "radius", Label: "Radius", Type: core.ParamTypeFloat, Step: 0.25, Min: 0, HasMin: true},
		{Key: "chance_for_global_radius", Label: "Global chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "beta", Label: "Turn gain", Type: core.ParamTypeFloat, Step: 0.1},
	}
}

// SetFloatParameter restarts the run with key set to value.
func (w *World) SetFloatParameter(key string, value float64) bool {
	c := w.cfg
	switch key {
	case "velocity":
		c.Velocity = value
	case "radius":
		c.Radius = value
	case "chance_for_global_radius":
		c.ChanceForGlobalRadius = value
	case "beta":
		c.Beta = value
	default:
		return false
	}
	return w.restart(c)
}

// SetIntParameter restarts the run with key set to value.
func (w *World) SetIntParameter(key string, value int) bool {
	if key != "n_particles" {
		return false
	}
	c := w.cfg
	c.NParticles = value
	return w.restart(c)
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
