// Package core holds small scheduling utilities shared by the optional
// interactive viewer.
package core

import "time"

// FixedStep paces growth ticks at a steady rate independent of the
// render frame rate. Unlike a CA viewer, which can drop a frame of
// generations with no lasting effect, a missed growth tick is lost
// simulation progress: a tree that should have grown one segment this
// second simply doesn't, and every subsequent step's geometry follows
// from wherever it was left. Pending therefore reports how many ticks
// have accumulated since the last call instead of a single yes/no, so a
// caller that stalls (window minimized, a slow Draw) can catch every
// tick up rather than silently losing them.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Pending reports how many whole growth ticks have accumulated since the
// last call, consuming them from the internal accumulator.
func (f *FixedStep) Pending() int {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta

	n := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		n++
	}
	return n
}
