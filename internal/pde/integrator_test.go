package pde

import (
	"math"
	"testing"

	"wavesweep/internal/core"
)

// sliceRecorder captures observation steps for assertions.
type sliceRecorder struct {
	steps  []int
	slices []core.Slice
}

func (r *sliceRecorder) ObserveSlice(step int, s core.Slice) {
	r.steps = append(r.steps, step)
	r.slices = append(r.slices, s)
}

func TestUniformShiftAfterOneStep(t *testing.T) {
	// With a constant initial field, zero curvature coupling and no damping,
	// one step shifts every cell by dt²·c²·beta·cos(0): the Laplacian of a
	// constant vanishes on the interior and is zero at the boundary by
	// construction, so the update is uniform.
	p := Default()
	p.NX, p.NY, p.NZ = 5, 5, 5
	p.Alpha = 0
	p.Beta = 1e-7
	p.C = 2
	p.DT = 1e-3
	p.Damping = 1
	p.TimeSteps = 1

	const e0 = 1e-10
	cur := core.NewScalarGrid(p.NX, p.NY, p.NZ)
	cur.Fill(e0)
	it := NewIntegrator(p, Curvature(p), cur, cur.Clone(), nil)

	if st := it.Step(); st != Completed {
		t.Fatalf("status after single step = %v, want completed", st)
	}

	want := e0 + p.DT*p.DT*p.C*p.C*p.Beta
	for i, v := range it.Current().Cells() {
		if math.Abs(v-want) > 1e-24 {
			t.Fatalf("cell %d = %v, want %v", i, v, want)
		}
	}

	if got := it.MaxAmplitudes()[0]; math.Abs(got-want) > 1e-24 {
		t.Fatalf("max amplitude = %v, want %v", got, want)
	}
	n := float64(p.NX * p.NY * p.NZ)
	wantEnergy := 0.5 * n * want * want
	if got := it.Energies()[0]; math.Abs(got-wantEnergy) > 1e-12*wantEnergy {
		t.Fatalf("energy = %v, want %v", got, wantEnergy)
	}
}

func TestEnergyMatchesFinalFieldExactly(t *testing.T) {
	p := Default()
	p.NX, p.NY, p.NZ = 6, 6, 6
	p.TimeSteps = 1

	res, err := Execute(p, nil)
	if err != nil {
		t.Fatal(err)
	}

	sum := 0.0
	for _, v := range res.Final.Cells() {
		sum += v * v
	}
	if got := res.Energy[0]; got != 0.5*sum {
		t.Fatalf("recorded energy %v != half sum of squares %v", got, 0.5*sum)
	}
}

func TestAmplitudeClampBoundsField(t *testing.T) {
	p := Default()
	p.NX, p.NY, p.NZ = 4, 4, 4
	p.Beta = 1e30 // absurd drive to force the ceiling
	p.C = 1e3
	p.DT = 1
	p.Damping = 1
	p.TimeSteps = 3

	res, err := Execute(p, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != Completed {
		t.Fatalf("status = %v, want completed", res.Status)
	}
	hitCeiling := false
	for _, v := range res.Final.Cells() {
		if math.Abs(v) > 1e5 {
			t.Fatalf("cell %v exceeds the 1e5 clamp", v)
		}
		if math.Abs(v) == 1e5 {
			hitCeiling = true
		}
	}
	if !hitCeiling {
		t.Fatal("expected the drive to push cells onto the clamp ceiling")
	}
	for step, amp := range res.MaxAmp {
		if amp > 1e5 {
			t.Fatalf("step %d recorded amplitude %v above the clamp", step, amp)
		}
	}
}

func TestObserverIntervalAndCopy(t *testing.T) {
	p := Default()
	p.NX, p.NY, p.NZ = 4, 4, 4
	p.TimeSteps = 5
	p.RealtimeInterval = 2

	rec := &sliceRecorder{}
	res, err := Execute(p, rec)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != Completed {
		t.Fatalf("status = %v, want completed", res.Status)
	}

	wantSteps := []int{0, 2, 4}
	if len(rec.steps) != len(wantSteps) {
		t.Fatalf("observed %d slices, want %d", len(rec.steps), len(wantSteps))
	}
	for i, s := range wantSteps {
		if rec.steps[i] != s {
			t.Fatalf("observation %d at step %d, want %d", i, rec.steps[i], s)
		}
	}
	for i, s := range rec.slices {
		if s.W != p.NY || s.H != p.NX {
			t.Fatalf("slice %d dims %dx%d, want %dx%d", i, s.W, s.H, p.NY, p.NX)
		}
		if s.Min() < 0 {
			t.Fatalf("slice %d carries a negative magnitude %v", i, s.Min())
		}
	}
}

func TestObserverDisabledByNonPositiveInterval(t *testing.T) {
	p := Default()
	p.NX, p.NY, p.NZ = 4, 4, 4
	p.TimeSteps = 5
	p.RealtimeInterval = 0

	rec := &sliceRecorder{}
	if _, err := Execute(p, rec); err != nil {
		t.Fatal(err)
	}
	if len(rec.steps) != 0 {
		t.Fatalf("expected no observations, got %d", len(rec.steps))
	}
}
