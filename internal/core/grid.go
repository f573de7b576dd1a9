package core

import "math"

// ScalarGrid stores a 3D grid of float64 cell values in x-major order:
// index = (x*NY + y)*NZ + z.
type ScalarGrid struct {
	NX, NY, NZ int
	data       []float64
}

// NewScalarGrid allocates a zeroed grid with the given dimensions.
func NewScalarGrid(nx, ny, nz int) *ScalarGrid {
	if nx <= 0 {
		nx = 1
	}
	if ny <= 0 {
		ny = 1
	}
	if nz <= 0 {
		nz = 1
	}
	return &ScalarGrid{NX: nx, NY: ny, NZ: nz, data: make([]float64, nx*ny*nz)}
}

// Size reports the grid dimensions.
func (g *ScalarGrid) Size() Size { return Size{NX: g.NX, NY: g.NY, NZ: g.NZ} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ScalarGrid) Cells() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y, z).
func (g *ScalarGrid) Index(x, y, z int) int { return (x*g.NY+y)*g.NZ + z }

// At returns the value at (x, y, z).
func (g *ScalarGrid) At(x, y, z int) float64 { return g.data[g.Index(x, y, z)] }

// Set writes the value at (x, y, z).
func (g *ScalarGrid) Set(x, y, z int, v float64) { g.data[g.Index(x, y, z)] = v }

// Fill sets every cell to v.
func (g *ScalarGrid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clear fills the grid with zeros.
func (g *ScalarGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Clone returns an independent copy of the grid.
func (g *ScalarGrid) Clone() *ScalarGrid {
	c := &ScalarGrid{NX: g.NX, NY: g.NY, NZ: g.NZ, data: make([]float64, len(g.data))}
	copy(c.data, g.data)
	return c
}

// AbsMidplaneZ extracts |value| over the mid-depth z slice. Rows run over x,
// columns over y.
func (g *ScalarGrid) AbsMidplaneZ() Slice {
	zMid := g.NZ / 2
	s := Slice{W: g.NY, H: g.NX, Data: make([]float64, g.NX*g.NY)}
	for x := 0; x < g.NX; x++ {
		for y := 0; y < g.NY; y++ {
			s.Data[x*g.NY+y] = math.Abs(g.At(x, y, zMid))
		}
	}
	return s
}

// AbsMidplaneY extracts |value| over the mid y slice. Rows run over x,
// columns over z.
func (g *ScalarGrid) AbsMidplaneY() Slice {
	yMid := g.NY / 2
	s := Slice{W: g.NZ, H: g.NX, Data: make([]float64, g.NX*g.NZ)}
	for x := 0; x < g.NX; x++ {
		for z := 0; z < g.NZ; z++ {
			s.Data[x*g.NZ+z] = math.Abs(g.At(x, yMid, z))
		}
	}
	return s
}
