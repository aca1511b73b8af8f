// Package task implements the cooperative, non-blocking behavior layer:
// the Task protocol, its composition primitives (sequence, parallel-all),
// its leaf primitives (instant, wait-for-time, wait-until,
// move-to-setpoint, hold-for), and the single-task-at-a-time Runner that
// is idempotent per loop cycle. The Runner checks its cycle gate
// explicitly against clock.Cycle() on every call, rather than relying on
// a single call site to enforce it, because tasks can be started,
// enqueued, and dropped at arbitrary times by the host.
package task

import "robocore-dx/internal/clock"

// Outcome is the terminal state a Task reports once complete.
type Outcome int

const (
	Unknown Outcome = iota
	Success
	Timeout
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "SUCCESS"
	case Timeout:
		return "TIMEOUT"
	default:
		return "UNKNOWN"
	}
}

// Task is a cooperative unit of behavior over time. Start is called
// exactly once before any Update; once IsComplete returns true, no
// further Update calls occur. Neither Start nor Update may block.
type Task interface {
	Start(c *clock.LoopClock)
	Update(c *clock.LoopClock)
	IsComplete() bool
	Outcome() Outcome
}
