package core

// ByteGrid stores a 2D grid of intensity values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies on the grid.
func (g *ByteGrid) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Raise sets the cell at (x, y) to v unless it is already brighter.
// Off-grid coordinates are ignored.
func (g *ByteGrid) Raise(x, y int, v uint8) {
	if !g.In(x, y) {
		return
	}
	i := g.Index(x, y)
	if g.data[i] < v {
		g.data[i] = v
	}
}

// Fade lowers every cell by amount, saturating at zero.
func (g *ByteGrid) Fade(amount uint8) {
	for i, v := range g.data {
		if v <= amount {
			g.data[i] = 0
			continue
		}
		g.data[i] = v - amount
	}
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	clear(g.data)
}
