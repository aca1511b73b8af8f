// Package clock provides the per-cycle time source every other component
// keys its idempotency off of: a single dt-and-cycle source that the host
// advances exactly once per OpMode loop tick. The monotonic Cycle counter
// is the one thing every other package in this tree needs from a clock,
// so that's all this type exposes.
package clock

// LoopClock is a monotonic per-cycle time source. The host is the only
// caller of Update; every other component treats the host's wall-clock
// time as opaque and reads dt/cycle off the LoopClock instead.
type LoopClock struct {
	nowSec     float64
	dtSec      float64
	cycle      int64
	lastUpdate float64
}

// NewLoopClock returns a LoopClock reset to now, with Cycle at 0.
func NewLoopClock(now float64) *LoopClock {
	c := &LoopClock{}
	c.Reset(now)
	return c
}

// Reset re-anchors the clock at now with dt 0, leaving Cycle unchanged.
func (c *LoopClock) Reset(now float64) {
	c.lastUpdate = now
	c.nowSec = now
	c.dtSec = 0
}

// Update advances the clock to now, computing dt as the (non-negative)
// elapsed time since the last Update or Reset, and incrementing Cycle by
// exactly one.
func (c *LoopClock) Update(now float64) {
	dt := now - c.lastUpdate
	if dt < 0 {
		dt = 0
	}
	c.dtSec = dt
	c.nowSec = now
	c.lastUpdate = now
	c.cycle++
}

// Now returns the current time as last passed to Update/Reset.
func (c *LoopClock) Now() float64 { return c.nowSec }

// Dt returns the elapsed time computed by the most recent Update; it is
// always >= 0 and is 0 immediately after Reset.
func (c *LoopClock) Dt() float64 { return c.dtSec }

// Cycle returns the monotonic cycle id, the idempotency key used across
// gamepads, bindings, and the task runner.
func (c *LoopClock) Cycle() int64 { return c.cycle }
