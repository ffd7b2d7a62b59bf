package core

import "time"

// Bounds for the interactive rate controls.
const (
	minTPS = 1
	maxTPS = 240
)

// FixedStep advances a simulation at a steady ticks-per-second rate
// independent of the caller's frame rate. Elapsed wall time accumulates and
// is paid out one step at a time.
type FixedStep struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a controller targeting the given TPS. A
// non-positive rate falls back to 60; the first ShouldStep call reports true
// without waiting.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	f := &FixedStep{}
	f.SetTPS(tps)
	f.accumulator = f.step
	return f
}

// SetTPS changes the tick rate, clamping it to [1, 240].
func (f *FixedStep) SetTPS(tps int) {
	if tps < minTPS {
		tps = minTPS
	}
	if tps > maxTPS {
		tps = maxTPS
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
}

// TPS reports the current tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// Faster doubles the tick rate up to the maximum.
func (f *FixedStep) Faster() { f.SetTPS(f.tps * 2) }

// Slower halves the tick rate down to the minimum.
func (f *FixedStep) Slower() { f.SetTPS(f.tps / 2) }

// Reset drops any banked time so the next step waits one full interval.
// Callers use it when resuming from a pause.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one tick.
// Callers may invoke it in a loop to catch up after a slow frame; the banked
// time is capped at a few steps so a stall never turns into a burst.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if max := 4 * f.step; f.accumulator > max {
		f.accumulator = max
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
