//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"universe-game/internal/core"
)

// GridPainter uploads an intensity grid into a single RGBA image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a w×h grid.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads g into the painter image and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.ByteGrid, pal Palette) {
	if g.W != gp.w || g.H != gp.h {
		return
	}
	FillRGBA(gp.buf, g.Cells(), pal)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, nil)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
