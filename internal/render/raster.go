package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"universe-game/internal/core"
)

const (
	dotIntensity    = 255
	circleIntensity = 96
)

// Rasterizer draws particles into an intensity grid.
type Rasterizer struct {
	Grid *core.ByteGrid
	// DotRadius is the particle radius in pixels.
	DotRadius int
	// Trails fades the previous frame by FadeStep instead of clearing it.
	Trails   bool
	FadeStep uint8
	// DrawRadius outlines the sensing radius around every particle.
	DrawRadius bool
}

// NewRasterizer allocates a w×h grid with the default dot size and fade rate.
func NewRasterizer(w, h int) *Rasterizer {
	return &Rasterizer{Grid: core.NewByteGrid(w, h), DotRadius: 2, FadeStep: 5}
}

// Draw renders one frame of pts seen through view. sensing is the radius
// outlined when DrawRadius is set.
func (r *Rasterizer) Draw(view View, pts []r2.Vec, sensing float64) {
	if r.Trails {
		r.Grid.Fade(r.FadeStep)
	} else {
		r.Grid.Clear()
	}
	ring := sensing * view.PixelsPerUnit()
	for _, p := range pts {
		x, y := view.Project(p)
		if r.DrawRadius && ring >= 1 {
			r.circle(x, y, ring)
		}
		r.disc(x, y, r.DotRadius)
	}
}

func (r *Rasterizer) disc(cx, cy float64, radius int) {
	px, py := int(math.Floor(cx)), int(math.Floor(cy))
	limit := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= limit {
				r.Grid.Raise(px+dx, py+dy, dotIntensity)
			}
		}
	}
}

func (r *Rasterizer) circle(cx, cy, radius float64) {
	steps := max(16, int(2*math.Pi*radius))
	for i := range steps {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(steps))
		r.Grid.Raise(int(math.Floor(cx+radius*cos)), int(math.Floor(cy+radius*sin)), circleIntensity)
	}
}
