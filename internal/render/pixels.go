package render

import (
	"image"
	"image/color"

	"universe-game/internal/core"
)

// Palette holds the two colors an intensity grid is blended between.
type Palette struct {
	Foreground color.Color
	Background color.Color
}

// DefaultPalette draws black particles on white.
func DefaultPalette() Palette {
	return Palette{Foreground: color.Black, Background: color.White}
}

// FillRGBA converts intensity cells into RGBA pixels in buf, blending from
// the background at 0 to the foreground at 255.
func FillRGBA(buf []byte, cells []uint8, pal Palette) {
	rOn, gOn, bOn, aOn := pal.Foreground.RGBA()
	rOff, gOff, bOff, aOff := pal.Background.RGBA()
	for i, c := range cells {
		base := i * 4
		buf[base+0] = blend(rOff, rOn, c)
		buf[base+1] = blend(gOff, gOn, c)
		buf[base+2] = blend(bOff, bOn, c)
		buf[base+3] = blend(aOff, aOn, c)
	}
}

// blend mixes two 16-bit channels by t/255 and returns an 8-bit channel.
func blend(off, on uint32, t uint8) uint8 {
	a, b := int64(off>>8), int64(on>>8)
	return uint8(a + (b-a)*int64(t)/255)
}

// Image renders g into a new RGBA image.
func Image(g *core.ByteGrid, pal Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	FillRGBA(img.Pix, g.Cells(), pal)
	return img
}
