package pde

import (
	"errors"
	"flag"
	"fmt"
)

// ErrInvalidParams marks a configuration rejected before any field is
// allocated, as opposed to a numerical failure during a run.
var ErrInvalidParams = errors.New("pde: invalid parameters")

// Params holds every knob for one integration run of
//
//	d²E/dt² = c² ∇²E − alpha·c²·R(x,y,z)·E + c²·beta·cos(omega·t)
//
// Alpha and Beta are the swept coupling scalars; everything else is shared
// across a sweep.
type Params struct {
	Alpha float64
	Beta  float64

	C     float64 // wave speed
	Omega float64 // drive angular frequency

	NX, NY, NZ int
	DX, DY, DZ float64

	DT        float64
	TimeSteps int

	Mass    float64 // sets the curvature field magnitude
	Damping float64 // multiplicative amplitude factor per step, expected in (0, 1]

	// RealtimeInterval is the number of steps between slice observations
	// offered to an attached observer. A non-positive value disables them.
	RealtimeInterval int

	RandomInit bool
}

// Default returns the reference configuration.
func Default() Params {
	return Params{
		Alpha:            1e-6,
		Beta:             1e-7,
		C:                5e3,
		Omega:            0.5,
		NX:               44,
		NY:               44,
		NZ:               44,
		DX:               0.05,
		DY:               0.05,
		DZ:               0.05,
		DT:               5e-10,
		TimeSteps:        3000,
		Mass:             5e24,
		Damping:          0.98,
		RealtimeInterval: 50,
		RandomInit:       true,
	}
}

// Bind attaches the tunable fields to the provided FlagSet.
func (p *Params) Bind(fs *flag.FlagSet) {
	fs.Float64Var(&p.Alpha, "alpha", p.Alpha, "curvature coupling strength")
	fs.Float64Var(&p.Beta, "beta", p.Beta, "drive amplitude")
	fs.Float64Var(&p.C, "c", p.C, "wave speed")
	fs.Float64Var(&p.Omega, "omega", p.Omega, "drive angular frequency")
	fs.IntVar(&p.NX, "nx", p.NX, "grid cells along x")
	fs.IntVar(&p.NY, "ny", p.NY, "grid cells along y")
	fs.IntVar(&p.NZ, "nz", p.NZ, "grid cells along z")
	fs.Float64Var(&p.DX, "dx", p.DX, "cell size along x")
	fs.Float64Var(&p.DY, "dy", p.DY, "cell size along y")
	fs.Float64Var(&p.DZ, "dz", p.DZ, "cell size along z")
	fs.Float64Var(&p.DT, "dt", p.DT, "time step")
	fs.IntVar(&p.TimeSteps, "steps", p.TimeSteps, "time steps per run")
	fs.Float64Var(&p.Mass, "mass", p.Mass, "mass scale for the curvature field")
	fs.Float64Var(&p.Damping, "damping", p.Damping, "amplitude factor applied each step")
	fs.IntVar(&p.RealtimeInterval, "realtime-interval", p.RealtimeInterval, "steps between slice observations")
	fs.BoolVar(&p.RandomInit, "random-init", p.RandomInit, "use the seeded random initial field instead of sin(x)sin(y)sin(z)")
}

// Validate rejects configurations that cannot be integrated. It runs before
// any grid allocation.
func (p Params) Validate() error {
	switch {
	case p.NX <= 0 || p.NY <= 0 || p.NZ <= 0:
		return fmt.Errorf("%w: grid shape %dx%dx%d must be positive", ErrInvalidParams, p.NX, p.NY, p.NZ)
	case p.DX <= 0 || p.DY <= 0 || p.DZ <= 0:
		return fmt.Errorf("%w: cell sizes (%g, %g, %g) must be positive", ErrInvalidParams, p.DX, p.DY, p.DZ)
	case p.DT <= 0:
		return fmt.Errorf("%w: time step %g must be positive", ErrInvalidParams, p.DT)
	case p.C <= 0:
		return fmt.Errorf("%w: wave speed %g must be positive", ErrInvalidParams, p.C)
	case p.TimeSteps < 0:
		return fmt.Errorf("%w: time steps %d must not be negative", ErrInvalidParams, p.TimeSteps)
	}
	return nil
}
