package pde

import "wavesweep/internal/core"

// Laplacian writes the discrete Laplacian of src into dst: the sum of the
// three second-order central differences, one per axis, for every cell that
// is strictly interior on all three axes. Cells on any face of the grid
// receive zero. That fixed-edge treatment is part of the scheme: the update
// composes this operator additively with curvature and source terms that are
// not zeroed at the boundary.
func Laplacian(src, dst *core.ScalarGrid, dx, dy, dz float64) {
	dst.Clear()

	nx, ny, nz := src.NX, src.NY, src.NZ
	invDX2 := 1 / (dx * dx)
	invDY2 := 1 / (dy * dy)
	invDZ2 := 1 / (dz * dz)

	s := src.Cells()
	d := dst.Cells()
	strideX := ny * nz
	strideY := nz

	for x := 1; x < nx-1; x++ {
		for y := 1; y < ny-1; y++ {
			row := (x*ny + y) * nz
			for z := 1; z < nz-1; z++ {
				i := row + z
				c2 := 2 * s[i]
				d[i] = (s[i+strideX]-c2+s[i-strideX])*invDX2 +
					(s[i+strideY]-c2+s[i-strideY])*invDY2 +
					(s[i+1]-c2+s[i-1])*invDZ2
			}
		}
	}
}
