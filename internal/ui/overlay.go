//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"universe-game/internal/core"
	"universe-game/internal/render"
	"universe-game/internal/swarm"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type stateProvider interface {
	State() *swarm.State
}

// Overlay draws optional debugging visuals on top of the particle view.
// Digit keys toggle the layers: 1 headings, 2 centroid and extent, 3 stats.
type Overlay struct {
	sim          core.Sim
	showHeadings bool
	showExtent   bool
	showStats    bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim, showStats: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the layer toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showHeadings = !o.showHeadings
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showExtent = !o.showExtent
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showStats = !o.showStats
	}
}

// Draw renders the enabled layers using view to place particles.
func (o *Overlay) Draw(screen *ebiten.Image, view render.View) {
	provider, ok := o.sim.(stateProvider)
	if !ok {
		return
	}
	s := provider.State()
	if o.showHeadings {
		o.drawHeadings(screen, s, view)
	}
	if o.showExtent {
		o.drawExtent(screen, s, view)
	}
	if o.showStats {
		o.drawStats(screen, s)
	}
}

func (o *Overlay) drawHeadings(screen *ebiten.Image, s *swarm.State, view render.View) {
	const length = 10.0
	for _, p := range s.Particles() {
		x, y := view.Project(p.Pos)
		sin, cos := math.Sincos(p.Heading * math.Pi / 180)
		o.drawLine(screen, x, y, x+length*cos, y+length*sin, 1, headingColor(p.Heading))
	}
}

func (o *Overlay) drawExtent(screen *ebiten.Image, s *swarm.State, view render.View) {
	col := color.RGBA{R: 220, G: 60, B: 60, A: 200}
	lo, hi := swarm.Extent(s)
	x0, y0 := view.Project(lo)
	x1, y1 := view.Project(hi)
	o.drawLine(screen, x0, y0, x1, y0, 1, col)
	o.drawLine(screen, x1, y0, x1, y1, 1, col)
	o.drawLine(screen, x1, y1, x0, y1, 1, col)
	o.drawLine(screen, x0, y1, x0, y0, 1, col)

	cx, cy := view.Project(swarm.Centroid(s))
	o.drawPoint(screen, cx, cy, 6, col)
}

func (o *Overlay) drawStats(screen *ebiten.Image, s *swarm.State) {
	lines := []string{
		fmt.Sprintf("tick %d", o.sim.Tick()),
		fmt.Sprintf("FPS  %.1f  TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("pol  %.3f", swarm.Polarization(s)),
		fmt.Sprintf("gyr  %.3f", swarm.Gyration(s)),
	}
	ink := color.RGBA{R: 20, G: 20, B: 20, A: 255}
	for i, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, 10, 20+16*i, ink)
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

// headingColor maps a heading onto a color wheel so aligned groups share a
// hue.
func headingColor(deg float64) color.RGBA {
	stops := []color.RGBA{
		{R: 230, G: 60, B: 60, A: 220},
		{R: 220, G: 200, B: 40, A: 220},
		{R: 40, G: 170, B: 90, A: 220},
		{R: 50, G: 110, B: 220, A: 220},
	}
	t := math.Mod(deg, 360) / 90
	if t < 0 {
		t += 4
	}
	i := int(t) % 4
	return lerpRGBA(stops[i], stops[(i+1)%4], t-math.Floor(t))
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
