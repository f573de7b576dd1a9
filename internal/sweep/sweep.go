package sweep

import (
	"log"
	"math"

	"wavesweep/internal/pde"
)

// DefaultSaveThreshold is the relative amplitude change a run must show
// against the last saved run before its artifacts are persisted again.
const DefaultSaveThreshold = 0.01

// ampFloor keeps the relative-change denominator away from zero when the
// last saved amplitude was exactly zero.
const ampFloor = 1e-30

// Sink consumes what the sweep produces. Sink failures are a reporting-layer
// concern: the orchestrator logs them and moves on.
type Sink interface {
	// SaveRun persists the final-state artifacts of a run whose amplitude
	// changed enough to be worth keeping.
	SaveRun(alpha, beta float64, res *pde.RunResult) error
	// ReportRun receives scalar summaries for every run, saved or not.
	ReportRun(alpha, beta float64, res *pde.RunResult, saved bool)
}

// RunObserver buffers the periodic slice observations of a single run and
// finalizes whatever artifact it accumulated once the run ends.
type RunObserver interface {
	pde.SliceObserver
	Finish() error
}

// ObserverFactory builds the per-run observer for an (alpha, beta) pair.
// A nil factory disables observation entirely.
type ObserverFactory func(alpha, beta float64) RunObserver

// Entry records the outcome of one (alpha, beta) pair, appended regardless
// of the save decision.
type Entry struct {
	Alpha, Beta float64
	FinalMax    float64
	LastAmp     float64
	HasLastAmp  bool
	Status      pde.Status
	StepsRun    int
	Saved       bool
}

// Sweeper iterates the Cartesian product of the coupling lists, outer loop
// over alpha, inner over beta, running every pair through the integrator.
type Sweeper struct {
	base      pde.Params
	threshold float64
	sink      Sink
	observers ObserverFactory
}

// New builds a Sweeper around a base parameter set. A zero threshold selects
// DefaultSaveThreshold. sink and observers may be nil.
func New(base pde.Params, threshold float64, sink Sink, observers ObserverFactory) *Sweeper {
	if threshold == 0 {
		threshold = DefaultSaveThreshold
	}
	return &Sweeper{base: base, threshold: threshold, sink: sink, observers: observers}
}

// lastSaved is the only state carried across runs within a sweep. It is
// threaded through decide explicitly rather than held in package state.
type lastSaved struct {
	amp   float64
	valid bool
}

// decide reports whether a run with the given final amplitude should be
// saved, and returns the accumulator to carry forward. The first run of a
// sweep always saves; later runs save only on a relative change above the
// threshold, measured against the last run actually saved.
func decide(prev lastSaved, finalMax, threshold float64) (bool, lastSaved) {
	if !prev.valid {
		return true, lastSaved{amp: finalMax, valid: true}
	}
	rel := math.Abs(finalMax-prev.amp) / math.Max(prev.amp, ampFloor)
	if rel > threshold {
		return true, lastSaved{amp: finalMax, valid: true}
	}
	return false, prev
}

// Run executes every pair in order and returns the per-pair summary list.
// A configuration error aborts the sweep (every pair shares the base
// geometry, so none could run); a diverged run or a failing sink does not.
func (s *Sweeper) Run(alphaList, betaList []float64) ([]Entry, error) {
	entries := make([]Entry, 0, len(alphaList)*len(betaList))
	total := len(alphaList) * len(betaList)
	count := 0
	prev := lastSaved{}

	for _, alpha := range alphaList {
		for _, beta := range betaList {
			count++
			p := s.base
			p.Alpha = alpha
			p.Beta = beta

			var runObs RunObserver
			var obs pde.SliceObserver
			if s.observers != nil {
				runObs = s.observers(alpha, beta)
				obs = runObs
			}

			log.Printf("[run %d/%d] alpha=%.2e beta=%.2e", count, total, alpha, beta)
			res, err := pde.Execute(p, obs)
			if err != nil {
				return entries, err
			}
			if runObs != nil {
				if err := runObs.Finish(); err != nil {
					log.Printf("run alpha=%.2e beta=%.2e: observation artifact not written: %v", alpha, beta, err)
				}
			}

			finalMax := res.FinalMax()
			saved, next := decide(prev, finalMax, s.threshold)
			prev = next
			if saved && s.sink != nil {
				if err := s.sink.SaveRun(alpha, beta, res); err != nil {
					log.Printf("run alpha=%.2e beta=%.2e: save failed: %v", alpha, beta, err)
				}
			}
			if s.sink != nil {
				s.sink.ReportRun(alpha, beta, res, saved)
			}

			lastAmp, ok := res.LastAmp()
			entries = append(entries, Entry{
				Alpha:      alpha,
				Beta:       beta,
				FinalMax:   finalMax,
				LastAmp:    lastAmp,
				HasLastAmp: ok,
				Status:     res.Status,
				StepsRun:   res.StepsRun,
				Saved:      saved,
			})
		}
	}
	return entries, nil
}
