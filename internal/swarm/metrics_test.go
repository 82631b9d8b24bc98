package swarm

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	prng "universe-game/pkg/core"
)

func TestPolarization(t *testing.T) {
	aligned := NewState([]Particle{{Heading: 30}, {Heading: 30}, {Heading: 30}}, 1)
	if got := Polarization(aligned); math.Abs(got-1) > 1e-12 {
		t.Fatalf("aligned polarization = %v", got)
	}
	opposed := NewState([]Particle{{Heading: 0}, {Heading: 180}}, 1)
	if got := Polarization(opposed); got > 1e-12 {
		t.Fatalf("opposed polarization = %v", got)
	}
	if Polarization(NewState(nil, 1)) != 0 {
		t.Fatal("empty state should have zero polarization")
	}
}

func TestCentroidGyrationExtent(t *testing.T) {
	s := NewState([]Particle{
		{Pos: r2.Vec{X: 0, Y: 0}},
		{Pos: r2.Vec{X: 2, Y: 0}},
		{Pos: r2.Vec{X: 0, Y: 2}},
		{Pos: r2.Vec{X: 2, Y: 2}},
	}, 2)
	if c := Centroid(s); c != (r2.Vec{X: 1, Y: 1}) {
		t.Fatalf("centroid = %v", c)
	}
	if g := Gyration(s); math.Abs(g-math.Sqrt2) > 1e-12 {
		t.Fatalf("gyration = %v", g)
	}
	lo, hi := Extent(s)
	if lo != (r2.Vec{}) || hi != (r2.Vec{X: 2, Y: 2}) {
		t.Fatalf("extent = %v %v", lo, hi)
	}
}

func TestRecordSamplesTicks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NParticles = 20

	tel, err := Record(cfg, 10, 4, prng.NewRNG(2))
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	want := []int{0, 4, 8, 10}
	if len(tel.Ticks) != len(want) {
		t.Fatalf("ticks = %v, want %v", tel.Ticks, want)
	}
	for i, tick := range want {
		if tel.Ticks[i] != tick {
			t.Fatalf("ticks = %v, want %v", tel.Ticks, want)
		}
	}
	if len(tel.Polarization) != len(want) || len(tel.Gyration) != len(want) {
		t.Fatal("every sample needs one value per series")
	}
	if tel.Final == nil || tel.Final.Len() != 20 {
		t.Fatal("final state missing")
	}
	p, g := tel.Last()
	if p != tel.Polarization[3] || g != tel.Gyration[3] {
		t.Fatal("Last should return the final sample")
	}
}

func TestRecordIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	a, err := Record(cfg, 15, 5, prng.NewRNG(8))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Record(cfg, 15, 5, prng.NewRNG(8))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Polarization {
		if a.Polarization[i] != b.Polarization[i] || a.Gyration[i] != b.Gyration[i] {
			t.Fatalf("sample %d differs between identical runs", i)
		}
	}
}

func TestRecordRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChanceForGlobalRadius = 3
	if _, err := Record(cfg, 5, 1, prng.NewRNG(1)); err == nil {
		t.Fatal("expected configuration error")
	}
}
