package core

import (
	"slices"
	"testing"
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestByteGridRaiseAndFade(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Raise(1, 1, 200)
	g.Raise(1, 1, 100)
	g.Raise(-1, 0, 255)
	g.Raise(4, 0, 255)

	if got := g.Cells()[g.Index(1, 1)]; got != 200 {
		t.Fatalf("expected brighter value to win, got %d", got)
	}

	g.Fade(150)
	if got := g.Cells()[g.Index(1, 1)]; got != 50 {
		t.Fatalf("expected 50 after fade, got %d", got)
	}
	g.Fade(60)
	if got := g.Cells()[g.Index(1, 1)]; got != 0 {
		t.Fatalf("fade should saturate at zero, got %d", got)
	}

	g.Raise(0, 0, 9)
	g.Clear()
	if !slices.Equal(g.Cells(), make([]uint8, 12)) {
		t.Fatal("clear should zero every cell")
	}
}

func TestNewByteGridMinimumSize(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d (%d cells)", g.W, g.H, len(g.Cells()))
	}
}

func TestFixedStepDue(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if n := fs.Due(); n != 1 {
		t.Fatalf("first call should release the primed tick, got %d", n)
	}
	clock = clock.Add(3 * fs.Interval())
	if n := fs.Due(); n != 3 {
		t.Fatalf("expected 3 ticks after 3 intervals, got %d", n)
	}
	clock = clock.Add(50 * fs.Interval())
	if n := fs.Due(); n != 4 {
		t.Fatalf("expected catch-up to be capped at 4, got %d", n)
	}
	if n := fs.Due(); n != 0 {
		t.Fatalf("expected no backlog after a capped burst, got %d", n)
	}
}

func TestFixedStepDefaultsAndRetarget(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(0)
	fs.now = func() time.Time { return clock }
	if fs.Interval() != time.Second/60 {
		t.Fatalf("non-positive tps should default to 60, got %s", fs.Interval())
	}
	if got := fs.Due(); got != 1 {
		t.Fatalf("first call should owe one tick, got %d", got)
	}
	fs.SetTPS(10)
	clock = clock.Add(250 * time.Millisecond)
	if got := fs.Due(); got != 2 {
		t.Fatalf("250ms at 10 TPS should owe 2 ticks, got %d", got)
	}
	clock = clock.Add(50 * time.Millisecond)
	if got := fs.Due(); got != 1 {
		t.Fatalf("leftover 50ms plus 50ms should owe 1 tick, got %d", got)
	}
}

type stubSim struct{ name string }

func (s stubSim) Name() string { return s.name }
func (stubSim) Reset(int64) {}
func (stubSim) Step() {}
func (stubSim) Tick() int { return 0 }
func (stubSim) Positions(dst []r2.Vec) []r2.Vec { return dst }
func (stubSim) BoxWidth() float64 { return 1 }
func (stubSim) Bounded() bool { return true }
func (stubSim) Radius() float64 { return 1 }

func TestRegisterIgnoresEmpty(t *testing.T) {
	before := len(Sims())
	Register("", func(map[string]string) (Sim, error) { return stubSim{}, nil })
	Register("nil-factory", nil)
	if len(Sims()) != before {
		t.Fatal("empty names and nil factories must not be registered")
	}

	Register("stub-test", func(map[string]string) (Sim, error) { return stubSim{name: "stub-test"}, nil })
	defer delete(sims, "stub-test")
	if !slices.Contains(SimNames(), "stub-test") {
		t.Fatal("registered name missing from SimNames")
	}
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{{Key: "beta", Value: "1"}}},
		{Name: "b", Params: []Parameter{{Key: "radius", Value: "2"}}},
	}}
	if p, ok := snap.Lookup("radius"); !ok || p.Value != "2" {
		t.Fatalf("lookup radius = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("missing key should not be found")
	}
}
