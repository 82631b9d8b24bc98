package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// View maps simulation coordinates onto pixels: p' = (p + Offset) * Scale.
// The y axis grows downwards like the screen.
type View struct {
	ScaleX, ScaleY   float64
	OffsetX, OffsetY float64
}

// BoxView shows the square [0, box]² stretched over a w×h target.
func BoxView(box float64, w, h int) View {
	if box <= 0 {
		box = 1
	}
	return View{ScaleX: float64(w) / box, ScaleY: float64(h) / box}
}

// FitView returns the view that fits every point into a w×h target with
// padding simulation units of margin on every side.
func FitView(pts []r2.Vec, w, h int, padding float64) View {
	if len(pts) == 0 {
		return BoxView(1, w, h)
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	lo = r2.Sub(lo, r2.Vec{X: padding, Y: padding})
	hi = r2.Add(hi, r2.Vec{X: padding, Y: padding})
	spanX := math.Max(hi.X-lo.X, 1e-9)
	spanY := math.Max(hi.Y-lo.Y, 1e-9)
	return View{
		ScaleX:  float64(w) / spanX,
		ScaleY:  float64(h) / spanY,
		OffsetX: -lo.X,
		OffsetY: -lo.Y,
	}
}

// Lerp moves v a fraction t of the way towards target.
func (v View) Lerp(target View, t float64) View {
	return View{
		ScaleX:  lerp(v.ScaleX, target.ScaleX, t),
		ScaleY:  lerp(v.ScaleY, target.ScaleY, t),
		OffsetX: lerp(v.OffsetX, target.OffsetX, t),
		OffsetY: lerp(v.OffsetY, target.OffsetY, t),
	}
}

// Project maps p to pixel coordinates.
func (v View) Project(p r2.Vec) (x, y float64) {
	return (p.X + v.OffsetX) * v.ScaleX, (p.Y + v.OffsetY) * v.ScaleY
}

// PixelsPerUnit is the larger of the two scales.
func (v View) PixelsPerUnit() float64 { return math.Max(v.ScaleX, v.ScaleY) }

func lerp(a, b, t float64) float64 { return a + t*(b-a) }

const (
	fitPadding      = 0.2
	unboundedSmooth = 0.05
)

// Camera tracks the view across frames. Bounded runs keep the box view;
// unbounded runs drift towards a view that fits every particle.
type Camera struct {
	w, h   int
	smooth float64
	view   View
}

// NewCamera starts at the box view of a w×h target.
func NewCamera(box float64, w, h int, bounded bool) *Camera {
	c := &Camera{w: w, h: h, view: BoxView(box, w, h)}
	if !bounded {
		c.smooth = unboundedSmooth
	}
	return c
}

// Update advances the camera one frame towards pts and returns the view to
// draw with.
func (c *Camera) Update(pts []r2.Vec) View {
	if c.smooth == 0 {
		return c.view
	}
	c.view = c.view.Lerp(FitView(pts, c.w, c.h, fitPadding), c.smooth)
	return c.view
}

// View returns the current view without advancing it.
func (c *Camera) View() View { return c.view }
