// Package tui renders a running swarm as character density in a terminal.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"universe-game/internal/core"
	"universe-game/internal/render"
)

// ramp maps increasing particle density onto glyphs.
const ramp = " .:-=+*#%@"

const frameInterval = time.Second / 30

var (
	inkStyle    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(230, 230, 230))
	statusStyle = tcell.StyleDefault.Reverse(true)
)

// Viewer drives a simulation at a fixed tick rate and draws it to a screen.
type Viewer struct {
	sim    core.Sim
	scr    tcell.Screen
	step   *core.FixedStep
	camera *render.Camera
	box    float64

	points []r2.Vec
	counts []int
	cols   int
	rows   int

	seed   int64
	paused bool
}

// New prepares a viewer; the screen must already be initialized.
func New(scr tcell.Screen, sim core.Sim, tps int, seed int64) *Viewer {
	v := &Viewer{scr: scr, sim: sim, step: core.NewFixedStep(tps), seed: seed}
	v.resize()
	return v
}

// Run processes input and redraws until the user quits or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go v.scr.ChannelEvents(events, quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if v.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				v.scr.Sync()
				v.resize()
			}
		case <-ticker.C:
			v.Advance(v.step.Due())
			v.Draw()
		}
	}
}

// Advance performs up to n ticks unless paused.
func (v *Viewer) Advance(n int) {
	if v.paused {
		return
	}
	for range n {
		v.sim.Step()
	}
}

// HandleKey applies a key press and reports whether the viewer should exit.
func (v *Viewer) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		v.paused = !v.paused
	case 'n':
		v.sim.Step()
	case 'r':
		v.reset(v.seed)
	case 's':
		v.reset(time.Now().UnixNano())
	}
	return false
}

// Paused reports whether ticking is suspended.
func (v *Viewer) Paused() bool { return v.paused }

func (v *Viewer) reset(seed int64) {
	v.seed = seed
	v.sim.Reset(seed)
	v.resize()
}

func (v *Viewer) resize() {
	cols, rows := v.scr.Size()
	v.cols, v.rows = max(cols, 1), max(rows-1, 1)
	v.counts = make([]int, v.cols*v.rows)
	v.box = v.sim.BoxWidth()
	v.camera = render.NewCamera(v.box, v.cols, v.rows, v.sim.Bounded())
}

// Draw renders the density field with a status line underneath.
func (v *Viewer) Draw() {
	if v.sim.BoxWidth() != v.box {
		v.resize()
	}
	v.points = v.sim.Positions(v.points[:0])
	view := v.camera.Update(v.points)

	clear(v.counts)
	peak := 0
	for _, p := range v.points {
		x, y := view.Project(p)
		cx, cy := int(x), int(y)
		if x < 0 || y < 0 || cx >= v.cols || cy >= v.rows {
			continue
		}
		i := cy*v.cols + cx
		v.counts[i]++
		peak = max(peak, v.counts[i])
	}

	v.scr.Clear()
	for i, c := range v.counts {
		if c == 0 {
			continue
		}
		v.scr.SetContent(i%v.cols, i/v.cols, glyph(c, peak), nil, inkStyle)
	}
	state := "running"
	if v.paused {
		state = "paused"
	}
	v.drawStatus(fmt.Sprintf(" %s  tick %d  n=%d  %s  [space] pause [n] step [r] reset [q] quit ",
		v.sim.Name(), v.sim.Tick(), len(v.points), state))
	v.scr.Show()
}

func (v *Viewer) drawStatus(line string) {
	x := 0
	for _, r := range line {
		if x >= v.cols {
			break
		}
		v.scr.SetContent(x, v.rows, r, nil, statusStyle)
		x++
	}
}

// glyph picks the ramp entry for count relative to the densest cell.
func glyph(count, peak int) rune {
	if count <= 0 || peak <= 0 {
		return ' '
	}
	last := len(ramp) - 1
	idx := (count*last + peak - 1) / peak
	return rune(ramp[min(max(idx, 1), last)])
}
