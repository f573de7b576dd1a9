package core

import "time"

// Pacer helps advance a simulation at a steady steps-per-second rate
// independent of the display frame rate.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer constructs a Pacer targeting the given rate.
func NewPacer(stepsPerSecond int) *Pacer {
	if stepsPerSecond <= 0 {
		stepsPerSecond = 60
	}
	p := &Pacer{}
	p.SetRate(stepsPerSecond)
	p.accumulator = p.step
	return p
}

// SetRate changes the pacing rate. It is safe to call from the main loop.
func (p *Pacer) SetRate(stepsPerSecond int) {
	if stepsPerSecond <= 0 {
		stepsPerSecond = 60
	}
	p.step = time.Second / time.Duration(stepsPerSecond)
}

// ShouldStep reports whether the simulation should advance by one batch.
func (p *Pacer) ShouldStep() bool {
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
	}
	delta := now.Sub(p.last)
	p.last = now
	p.accumulator += delta
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		return true
	}
	return false
}
