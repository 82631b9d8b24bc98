package swarm

// Telemetry captures sampled observables from a deterministic run.
type Telemetry struct {
	// Ticks lists the tick index of every sample; tick 0 is the initial
	// placement.
	Ticks []int
	// Polarization and Gyration hold one value per sample.
	Polarization []float64
	Gyration     []float64
	// Final is the state after the last tick.
	Final *State
}

// Record initializes a run from cfg, advances it steps ticks and samples the
// observables every `every` ticks. The last tick is always sampled.
func Record(cfg Config, steps, every int, rng Rand) (Telemetry, error) {
	s, err := Initialize(cfg, rng)
	if err != nil {
		return Telemetry{}, err
	}
	if every <= 0 {
		every = 1
	}
	var t Telemetry
	t.Sample(0, s)
	e := NewEngine(cfg)
	for tick := 1; tick <= steps; tick++ {
		e.Step(s, rng)
		if tick%every == 0 || tick == steps {
			t.Sample(tick, s)
		}
	}
	t.Final = s
	return t, nil
}

// Sample appends the observables of s at tick.
func (t *Telemetry) Sample(tick int, s *State) {
	t.Ticks = append(t.Ticks, tick)
	t.Polarization = append(t.Polarization, Polarization(s))
	t.Gyration = append(t.Gyration, Gyration(s))
}

// Last returns the final sampled polarization and gyration.
func (t Telemetry) Last() (polarization, gyration float64) {
	if len(t.Ticks) == 0 {
		return 0, 0
	}
	n := len(t.Ticks) - 1
	return t.Polarization[n], t.Gyration[n]
}
