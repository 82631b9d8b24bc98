//go:build ebiten

package app

import (
	"time"

	"universe-game/internal/core"
	"universe-game/internal/render"
	"universe-game/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"gonum.org/v1/gonum/spatial/r2"
)

const hudWidth = 280

// Game adapts a particle simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	raster  *render.Rasterizer
	painter *render.GridPainter
	camera  *render.Camera
	overlay *ui.Overlay
	hud     *ui.HUD
	palette render.Palette

	size     int
	box      float64
	bounded  bool
	points   []r2.Vec
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game drawing sim into a size×size view.
func New(sim core.Sim, size int, seed int64, trails, drawRadius bool) *Game {
	raster := render.NewRasterizer(size, size)
	raster.Trails = trails
	raster.DrawRadius = drawRadius
	g := &Game{
		sim:     sim,
		raster:  raster,
		painter: render.NewGridPainter(size, size),
		overlay: ui.NewOverlay(sim),
		hud:     ui.NewHUD(sim, hudWidth),
		palette: render.DefaultPalette(),
		size:    size,
		seed:    seed,
	}
	g.resetCamera()
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.raster.Grid.Clear()
	g.resetCamera()
}

func (g *Game) resetCamera() {
	g.box = g.sim.BoxWidth()
	g.bounded = g.sim.Bounded()
	g.camera = render.NewCamera(g.box, g.size, g.size, g.bounded)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.raster.Trails = !g.raster.Trails
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.raster.DrawRadius = !g.raster.DrawRadius
	}

	g.overlay.Update()
	g.hud.Update(g.size)
	// A HUD adjustment starts a new run that may have a different box.
	if g.sim.BoxWidth() != g.box || g.sim.Bounded() != g.bounded {
		g.raster.Grid.Clear()
		g.resetCamera()
	}

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.points = g.sim.Positions(g.points[:0])
	view := g.camera.Update(g.points)
	g.raster.Draw(view, g.points, g.sim.Radius())
	g.painter.Blit(screen, g.raster.Grid, g.palette)
	g.overlay.Draw(screen, view)
	g.hud.Draw(screen, g.size, g.size)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size + g.hud.Width(), g.size
}
