package pde

import (
	"math"
	"time"

	"wavesweep/internal/core"
)

// RunResult carries everything that survives a finished run. Ownership of
// Final transfers to the caller; the integrator that produced it is done.
type RunResult struct {
	Final     *core.ScalarGrid
	Curvature *core.ScalarGrid

	// MaxAmp and Energy have length Params.TimeSteps. For a diverged run the
	// entries from StepsRun onward keep their zero defaults and must be read
	// as "not computed", not as true zero readings.
	MaxAmp []float64
	Energy []float64

	Status   Status
	StepsRun int
	Elapsed  time.Duration
}

// FinalMax returns max |E| over the final field.
func (r *RunResult) FinalMax() float64 {
	max := 0.0
	for _, v := range r.Final.Cells() {
		if a := math.Abs(v); a > max {
			max = a
		}
	}
	return max
}

// LastAmp returns the last entry of the max-amplitude sequence. ok is false
// when the run had zero requested steps and no entry exists. Note that for a
// diverged run this is the zero tail, matching the sequence convention.
func (r *RunResult) LastAmp() (amp float64, ok bool) {
	if len(r.MaxAmp) == 0 {
		return 0, false
	}
	return r.MaxAmp[len(r.MaxAmp)-1], true
}

// Execute performs one full run for the (alpha, beta) pair carried in p:
// validation, curvature and field construction, then stepping to completion
// or divergence. A diverged run is reported through the result, never
// retried. observer may be nil.
func Execute(p Params, observer SliceObserver) (*RunResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	curvature := Curvature(p)
	cur, prev := InitialField(p)
	it := NewIntegrator(p, curvature, cur, prev, observer)
	for it.Step() == Running {
	}

	return &RunResult{
		Final:     it.Current(),
		Curvature: curvature,
		MaxAmp:    it.MaxAmplitudes(),
		Energy:    it.Energies(),
		Status:    it.Status(),
		StepsRun:  it.StepsDone(),
		Elapsed:   time.Since(start),
	}, nil
}
