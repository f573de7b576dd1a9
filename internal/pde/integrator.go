package pde

import (
	"math"

	"wavesweep/internal/core"
)

// amplitudeLimit is the hard ceiling applied to every cell after each update,
// independent of physical units. It keeps a blowing-up run representable;
// NaN still passes through and is what the divergence check catches.
const amplitudeLimit = 1e5

// Status describes the lifecycle of an integration run.
type Status int

const (
	// Running means the integrator can still advance.
	Running Status = iota
	// Completed means all requested steps were executed.
	Completed
	// Diverged means a non-finite value appeared and the run stopped early.
	Diverged
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Diverged:
		return "diverged"
	}
	return "unknown"
}

// SliceObserver receives the mid-depth |E| slice every RealtimeInterval
// steps. The integrator calls it synchronously with a private copy of the
// slice and ignores whatever the observer does with it; implementations must
// return promptly and must never influence the run.
type SliceObserver interface {
	ObserveSlice(step int, slice core.Slice)
}

// Integrator advances the field with the explicit three-level leapfrog
// scheme. It owns the current/previous field pair for the duration of the
// run; the curvature grid is read-only throughout.
type Integrator struct {
	p         Params
	curvature *core.ScalarGrid

	cur, prev, next *core.ScalarGrid
	lap             *core.ScalarGrid

	step   int
	status Status

	maxAmp []float64
	energy []float64

	observer SliceObserver
}

// NewIntegrator wires a run together. cur and prev are taken over by the
// integrator; callers must not mutate them afterwards. observer may be nil.
func NewIntegrator(p Params, curvature, cur, prev *core.ScalarGrid, observer SliceObserver) *Integrator {
	return &Integrator{
		p:         p,
		curvature: curvature,
		cur:       cur,
		prev:      prev,
		next:      core.NewScalarGrid(p.NX, p.NY, p.NZ),
		lap:       core.NewScalarGrid(p.NX, p.NY, p.NZ),
		maxAmp:    make([]float64, p.TimeSteps),
		energy:    make([]float64, p.TimeSteps),
		observer:  observer,
	}
}

// Status reports the current lifecycle state.
func (it *Integrator) Status() Status { return it.status }

// StepsDone reports how many steps completed successfully.
func (it *Integrator) StepsDone() int { return it.step }

// Current exposes the latest valid field. After a divergence this is the
// field from the last finite step.
func (it *Integrator) Current() *core.ScalarGrid { return it.cur }

// MaxAmplitudes returns the per-step max |E| sequence. Entries past the point
// where a run diverged keep their zero default and do not represent readings.
func (it *Integrator) MaxAmplitudes() []float64 { return it.maxAmp }

// Energies returns the per-step total energy sequence, 0.5·ΣE² over the
// grid, with the same zero-tail convention as MaxAmplitudes.
func (it *Integrator) Energies() []float64 { return it.energy }

// Step advances one time level and returns the resulting status. Calling it
// after the run finished is a no-op that reports the terminal status.
func (it *Integrator) Step() Status {
	if it.status != Running {
		return it.status
	}
	if it.step >= it.p.TimeSteps {
		it.status = Completed
		return it.status
	}

	t := it.step
	dt2 := it.p.DT * it.p.DT
	c2 := it.p.C * it.p.C
	alphaC2 := it.p.Alpha * c2
	drive := c2 * it.p.Beta * math.Cos(it.p.Omega*it.p.DT*float64(t))

	Laplacian(it.cur, it.lap, it.p.DX, it.p.DY, it.p.DZ)

	cur := it.cur.Cells()
	prev := it.prev.Cells()
	next := it.next.Cells()
	lap := it.lap.Cells()
	curv := it.curvature.Cells()

	maxAbs := 0.0
	sumSq := 0.0
	finite := true
	for i := range cur {
		term := c2*lap[i] - alphaC2*curv[i]*cur[i] + drive
		v := 2*cur[i] - prev[i] + dt2*term
		v *= it.p.Damping
		if v > amplitudeLimit {
			v = amplitudeLimit
		} else if v < -amplitudeLimit {
			v = -amplitudeLimit
		}
		if math.IsNaN(v) {
			finite = false
		}
		next[i] = v
		a := math.Abs(v)
		if a > maxAbs {
			maxAbs = a
		}
		sumSq += v * v
	}

	if !finite {
		// Leave cur as the last valid field and this step's metric entries
		// at their defaults.
		it.status = Diverged
		return it.status
	}

	it.prev, it.cur, it.next = it.cur, it.next, it.prev
	it.maxAmp[t] = maxAbs
	it.energy[t] = 0.5 * sumSq
	it.step++

	if it.observer != nil && it.p.RealtimeInterval > 0 && t%it.p.RealtimeInterval == 0 {
		it.observer.ObserveSlice(t, it.cur.AbsMidplaneZ())
	}

	if it.step == it.p.TimeSteps {
		it.status = Completed
	}
	return it.status
}
