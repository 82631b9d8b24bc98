package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"universe-game/internal/swarm"
)

func newTestViewer(t *testing.T) (*Viewer, tcell.SimulationScreen, *swarm.World) {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	if err := scr.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(scr.Fini)
	scr.SetSize(40, 20)

	w, err := swarm.NewWorldFromPreset("uninteracting", nil)
	if err != nil {
		t.Fatal(err)
	}
	return New(scr, w, 60, 0), scr, w
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestDrawShowsParticlesAndStatus(t *testing.T) {
	v, scr, _ := newTestViewer(t)
	v.Draw()

	cells, cols, rows := scr.GetContents()
	if cols != 40 || rows != 20 {
		t.Fatalf("screen is %dx%d", cols, rows)
	}
	inked := 0
	for _, c := range cells[:cols*(rows-1)] {
		if len(c.Runes) > 0 && c.Runes[0] != ' ' {
			inked++
		}
	}
	if inked == 0 {
		t.Fatal("expected particles in the density field")
	}

	var status strings.Builder
	for _, c := range cells[cols*(rows-1):] {
		if len(c.Runes) > 0 {
			status.WriteRune(c.Runes[0])
		}
	}
	if !strings.Contains(status.String(), "uninteracting") || !strings.Contains(status.String(), "tick 0") {
		t.Fatalf("unexpected status line %q", status.String())
	}
}

func TestHandleKeys(t *testing.T) {
	v, _, w := newTestViewer(t)

	if v.HandleKey(key(' ')) || !v.Paused() {
		t.Fatal("space should pause")
	}
	v.Advance(3)
	if w.Tick() != 0 {
		t.Fatalf("paused viewer advanced to tick %d", w.Tick())
	}
	v.HandleKey(key('n'))
	if w.Tick() != 1 {
		t.Fatalf("single step should reach tick 1, got %d", w.Tick())
	}
	v.HandleKey(key('r'))
	if w.Tick() != 0 {
		t.Fatal("reset should rewind the run")
	}

	v.HandleKey(key(' '))
	v.Advance(3)
	if w.Tick() != 3 {
		t.Fatalf("expected tick 3, got %d", w.Tick())
	}

	if !v.HandleKey(key('q')) {
		t.Fatal("q should quit")
	}
	if !v.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}

func TestGlyphRamp(t *testing.T) {
	cases := []struct {
		count, peak int
		want        rune
	}{
		{0, 5, ' '},
		{5, 5, '@'},
		{1, 100, '.'},
		{1, 1, '@'},
	}
	for _, tc := range cases {
		if got := glyph(tc.count, tc.peak); got != tc.want {
			t.Fatalf("glyph(%d, %d) = %q, want %q", tc.count, tc.peak, got, tc.want)
		}
	}
}
