package sweep

import (
	"errors"
	"testing"

	"wavesweep/internal/core"
	"wavesweep/internal/pde"
)

// spySink records every sink interaction, optionally failing saves.
type spySink struct {
	saves    [][2]float64
	reports  [][2]float64
	savedSeq []bool
	failSave bool
}

func (s *spySink) SaveRun(alpha, beta float64, _ *pde.RunResult) error {
	s.saves = append(s.saves, [2]float64{alpha, beta})
	if s.failSave {
		return errors.New("disk full")
	}
	return nil
}

func (s *spySink) ReportRun(alpha, beta float64, _ *pde.RunResult, saved bool) {
	s.reports = append(s.reports, [2]float64{alpha, beta})
	s.savedSeq = append(s.savedSeq, saved)
}

func smallBase() pde.Params {
	p := pde.Default()
	p.NX, p.NY, p.NZ = 8, 8, 8
	p.TimeSteps = 5
	p.RealtimeInterval = 0
	return p
}

func TestDecide(t *testing.T) {
	// First run always saves.
	saved, acc := decide(lastSaved{}, 3.5, 0.01)
	if !saved || !acc.valid || acc.amp != 3.5 {
		t.Fatalf("first decision: saved=%v acc=%+v", saved, acc)
	}

	// Identical amplitude skips and leaves the accumulator alone.
	saved, acc2 := decide(acc, 3.5, 0.01)
	if saved || acc2 != acc {
		t.Fatalf("identical amplitude: saved=%v acc=%+v", saved, acc2)
	}

	// A change just under the threshold skips; just over saves.
	if saved, _ = decide(acc, 3.5*1.009, 0.01); saved {
		t.Fatal("sub-threshold change should skip")
	}
	if saved, _ = decide(acc, 3.5*1.02, 0.01); !saved {
		t.Fatal("super-threshold change should save")
	}

	// The denominator floor makes any change from a zero amplitude save.
	_, zero := decide(lastSaved{}, 0, 0.01)
	if saved, _ = decide(zero, 1e-12, 0.01); !saved {
		t.Fatal("change away from zero amplitude should save")
	}
}

func TestFirstRunSavedSecondSkipped(t *testing.T) {
	// Two alpha values so small that the curvature term vanishes below the
	// float resolution of the update: both runs land on the same final
	// amplitude, so the second must be skipped.
	sink := &spySink{}
	entries, err := New(smallBase(), 0, sink, nil).Run([]float64{1e-300, 2e-300}, []float64{1e-7})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if !entries[0].Saved || entries[1].Saved {
		t.Fatalf("save flags = %v/%v, want true/false", entries[0].Saved, entries[1].Saved)
	}
	if entries[0].FinalMax != entries[1].FinalMax {
		t.Fatalf("final amplitudes differ: %v vs %v", entries[0].FinalMax, entries[1].FinalMax)
	}
	if len(sink.saves) != 1 {
		t.Fatalf("sink received %d saves, want 1", len(sink.saves))
	}
	if len(sink.reports) != 2 {
		t.Fatalf("sink received %d reports, want 2", len(sink.reports))
	}
}

func TestSweepOrderAndRepeatability(t *testing.T) {
	base := smallBase()
	base.TimeSteps = 0
	alphas := []float64{1, 2}
	betas := []float64{3, 4}

	run := func() []Entry {
		entries, err := New(base, 0, nil, nil).Run(alphas, betas)
		if err != nil {
			t.Fatal(err)
		}
		return entries
	}

	first := run()
	wantPairs := [][2]float64{{1, 3}, {1, 4}, {2, 3}, {2, 4}}
	for i, want := range wantPairs {
		if first[i].Alpha != want[0] || first[i].Beta != want[1] {
			t.Fatalf("entry %d is (%v,%v), want (%v,%v)", i, first[i].Alpha, first[i].Beta, want[0], want[1])
		}
		if first[i].HasLastAmp {
			t.Fatalf("entry %d has a last amplitude despite zero steps", i)
		}
	}

	second := run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("entry %d differs between repeated sweeps: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestSinkFailureDoesNotAbortOrSkewDecisions(t *testing.T) {
	alphas := []float64{1e-300, 2e-300}
	betas := []float64{1e-7}

	healthy := &spySink{}
	if _, err := New(smallBase(), 0, healthy, nil).Run(alphas, betas); err != nil {
		t.Fatal(err)
	}

	failing := &spySink{failSave: true}
	entries, err := New(smallBase(), 0, failing, nil).Run(alphas, betas)
	if err != nil {
		t.Fatalf("failing sink aborted the sweep: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	for i := range healthy.savedSeq {
		if healthy.savedSeq[i] != failing.savedSeq[i] {
			t.Fatalf("decision %d differs under sink failure: %v vs %v", i, healthy.savedSeq[i], failing.savedSeq[i])
		}
	}
}

// countingObserver tallies slice callbacks and finalizations.
type countingObserver struct {
	slices   int
	finished *int
}

func (o *countingObserver) ObserveSlice(step int, slice core.Slice) { o.slices++ }

func (o *countingObserver) Finish() error {
	*o.finished++
	return nil
}

func TestObserverBuiltAndFinishedPerRun(t *testing.T) {
	base := smallBase()
	base.RealtimeInterval = 2

	built, finished := 0, 0
	factory := func(alpha, beta float64) RunObserver {
		built++
		return &countingObserver{finished: &finished}
	}

	entries, err := New(base, 0, nil, factory).Run([]float64{1e-6, 2e-6}, []float64{1e-7})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if built != 2 || finished != 2 {
		t.Fatalf("built %d observers, finished %d, want 2 each", built, finished)
	}
}

func TestConfigurationErrorAbortsSweep(t *testing.T) {
	base := smallBase()
	base.DT = 0
	_, err := New(base, 0, nil, nil).Run([]float64{1}, []float64{2})
	if !errors.Is(err, pde.ErrInvalidParams) {
		t.Fatalf("error = %v, want ErrInvalidParams", err)
	}
}
