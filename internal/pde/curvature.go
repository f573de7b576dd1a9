package pde

import (
	"gonum.org/v1/gonum/floats"

	"wavesweep/internal/core"
)

// curvatureSmoothing regularizes the 1/r² profile so the grid center does not
// divide by zero.
const curvatureSmoothing = 1e3

// Curvature builds the static Ricci-like coupling field
//
//	R(x,y,z) = mass / (r² + smoothing) * 1e-6
//
// with r² the squared distance from the grid center. Coordinates span
// [-n/2, n/2] per axis in index units; cell sizes play no role here. The
// field is time-invariant for the duration of a run and depends only on the
// grid geometry and Mass.
func Curvature(p Params) *core.ScalarGrid {
	xs := span(p.NX, -float64(p.NX)/2, float64(p.NX)/2)
	ys := span(p.NY, -float64(p.NY)/2, float64(p.NY)/2)
	zs := span(p.NZ, -float64(p.NZ)/2, float64(p.NZ)/2)

	g := core.NewScalarGrid(p.NX, p.NY, p.NZ)
	cells := g.Cells()
	i := 0
	for _, x := range xs {
		for _, y := range ys {
			r2xy := x*x + y*y
			for _, z := range zs {
				cells[i] = p.Mass / (r2xy + z*z + curvatureSmoothing) * 1e-6
				i++
			}
		}
	}
	return g
}

// span returns n evenly spaced coordinates covering [lo, hi]. A single-cell
// axis collapses to lo.
func span(n int, lo, hi float64) []float64 {
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	floats.Span(out, lo, hi)
	return out
}
