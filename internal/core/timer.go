package core

import "time"

// FixedStep paces a caller-driven loop at a steady frames-per-second rate
// without drifting when individual iterations run long.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a controller targeting the given FPS. The first
// ShouldStep call always fires so a fresh loop renders immediately.
func NewFixedStep(fps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetFPS(fps)
	fs.accumulator = fs.step
	return fs
}

// SetFPS changes the frame rate. Safe to call between iterations.
func (f *FixedStep) SetFPS(fps int) {
	if fps <= 0 {
		fps = 30
	}
	f.step = time.Second / time.Duration(fps)
}

// ShouldStep reports whether the loop should advance by one frame.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Interval returns the current frame interval, for callers that sleep
// between polls instead of spinning.
func (f *FixedStep) Interval() time.Duration { return f.step }
