package swarm

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// HexagonalLattice returns n points on a triangular lattice with column
// spacing radius and row spacing radius·√3/2. Odd rows are shifted by
// radius/2. A row is filled while x ≤ √n, then the next row starts.
func HexagonalLattice(n int, radius float64) []r2.Vec {
	if n <= 0 {
		return nil
	}
	rowSpacing := radius * math.Sqrt(3) / 2
	rowLimit := math.Sqrt(float64(n))

	points := make([]r2.Vec, 0, n)
	for row := 0; len(points) < n; row++ {
		y := float64(row) * rowSpacing
		x := 0.0
		if row%2 == 1 {
			x = radius / 2
		}
		for ; x <= rowLimit && len(points) < n; x += radius {
			points = append(points, r2.Vec{X: x, Y: y})
		}
	}
	return points
}

// maxCoordinate returns the largest x or y among points.
func maxCoordinate(points []r2.Vec) float64 {
	best := math.Inf(-1)
	for _, p := range points {
		best = math.Max(best, math.Max(p.X, p.Y))
	}
	return best
}
