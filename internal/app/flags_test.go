package app

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"universe-game/internal/swarm"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-preset", "petri_dish", "-set", "beta=2", "-set", "n=50", "-seed", "9", "-trails"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Preset != "petri_dish" || cfg.Seed != 9 || !cfg.Trails || len(cfg.Set) != 2 {
		t.Fatalf("unexpected config %+v", cfg)
	}

	run, p, err := cfg.RunConfig()
	if err != nil {
		t.Fatalf("RunConfig: %v", err)
	}
	if p.Name != "petri_dish" || run.Beta != 2 || run.NParticles != 50 || run.Seed != 9 || run.BoxWidth != 4000 {
		t.Fatalf("unexpected run config %+v", run)
	}
}

func TestKVListRejectsMissingEquals(t *testing.T) {
	var l KVList
	if err := l.Set("beta"); err == nil {
		t.Fatal("expected error without '='")
	}
	if err := l.Set("beta=1"); err != nil {
		t.Fatal(err)
	}
	if err := l.Set("beta=3"); err != nil {
		t.Fatal(err)
	}
	if got := l.Map()["beta"]; got != "3" {
		t.Fatalf("later overrides should win, got %q", got)
	}
}

func TestRunConfigLayersFileUnderOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	doc := "radius = 3.5\nvelocity = 0.2\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	cfg.Preset = "uninteracting"
	cfg.ConfigFile = path
	cfg.Set = KVList{"velocity=0.3"}

	run, _, err := cfg.RunConfig()
	if err != nil {
		t.Fatalf("RunConfig: %v", err)
	}
	if run.Radius != 3.5 || run.Velocity != 0.3 || run.NParticles != 100 {
		t.Fatalf("unexpected layering %+v", run)
	}
}

func TestRunConfigErrors(t *testing.T) {
	cfg := NewConfig()
	cfg.Preset = "missing"
	if _, _, err := cfg.RunConfig(); err == nil {
		t.Fatal("unknown preset must fail")
	}

	cfg = NewConfig()
	cfg.Set = KVList{"chance_for_global_radius=4"}
	if _, _, err := cfg.RunConfig(); !errors.Is(err, swarm.ErrInvalidConfig) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestWorldUsesPresetHints(t *testing.T) {
	cfg := NewConfig()
	cfg.Set = KVList{"n=25"}
	w, err := cfg.World()
	if err != nil {
		t.Fatalf("World: %v", err)
	}
	if w.Name() != "swarm" || w.State().Len() != 25 {
		t.Fatalf("unexpected world %s with %d particles", w.Name(), w.State().Len())
	}
	if !cfg.UseTrails(w) {
		t.Fatal("swarm preset enables trails")
	}
}

func TestPresetUsageListsRegisteredSims(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	NewConfig().Bind(fs)
	usage := fs.Lookup("preset").Usage
	for _, name := range swarm.PresetNames() {
		if !strings.Contains(usage, name) {
			t.Fatalf("usage %q does not mention %s", usage, name)
		}
	}
}

func TestWorldCarriesFileAndSeedThroughRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	if err := os.WriteFile(path, []byte("radius = 2.5\nbeta = -1.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	cfg.Preset = "petri_dish"
	cfg.ConfigFile = path
	cfg.Set = KVList{"n=40"}
	cfg.Seed = 77

	w, err := cfg.World()
	if err != nil {
		t.Fatalf("World: %v", err)
	}
	run := w.Config()
	if w.Name() != "petri_dish" || run.Radius != 2.5 || run.Beta != -1.5 || run.NParticles != 40 || run.BoxWidth != 4000 {
		t.Fatalf("unexpected world %s with %+v", w.Name(), run)
	}
	if w.Seed() != 77 || run.Seed != 77 {
		t.Fatalf("seed %d / %d, want 77", w.Seed(), run.Seed)
	}
}
