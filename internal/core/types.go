package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	NX int
	NY int
	NZ int
}

// Total returns the number of cells in a grid of this size.
func (s Size) Total() int { return s.NX * s.NY * s.NZ }

// Slice is a 2D cross-section extracted from a ScalarGrid, stored row-major:
// Data[r*W+c] for row r in [0, H) and column c in [0, W).
type Slice struct {
	W, H int
	Data []float64
}

// Min returns the smallest value in the slice, or 0 when it is empty.
func (s Slice) Min() float64 {
	if len(s.Data) == 0 {
		return 0
	}
	min := s.Data[0]
	for _, v := range s.Data[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest value in the slice, or 0 when it is empty.
func (s Slice) Max() float64 {
	if len(s.Data) == 0 {
		return 0
	}
	max := s.Data[0]
	for _, v := range s.Data[1:] {
		if v > max {
			max = v
		}
	}
	return max
}
