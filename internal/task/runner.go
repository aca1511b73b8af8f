package task

import "robocore-dx/internal/clock"

// Runner holds at most one active Task plus a FIFO queue of pending
// ones. Its Update is gated on the clock's cycle counter so that
// calling it more than once within the same cycle is a no-op, mirroring
// the cycle-idempotency every component in this codebase observes.
type Runner struct {
	queue           []Task
	current         Task
	lastUpdateCycle int64
	haveUpdated     bool
}

// NewRunner returns an empty, idle Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Enqueue appends t to the FIFO queue of tasks waiting to run. If the
// Runner is idle, the next Update call starts t immediately.
func (r *Runner) Enqueue(t Task) {
	r.queue = append(r.queue, t)
}

// Clear drops the active task and the entire pending queue without
// running any completion or cleanup hook; the task protocol defines
// none.
func (r *Runner) Clear() {
	r.current = nil
	r.queue = nil
}

// HasActive reports whether a task is currently running (started and
// not yet complete).
func (r *Runner) HasActive() bool {
	return r.current != nil && !r.current.IsComplete()
}

// IsIdle reports whether there is no active task and nothing queued. A
// current task that has already completed counts as idle: nothing will
// run on the next Update until something new is enqueued.
func (r *Runner) IsIdle() bool {
	return (r.current == nil || r.current.IsComplete()) && len(r.queue) == 0
}

// Update advances the Runner by one cycle:
//  1. If already updated this cycle, return immediately (idempotent).
//  2. While current is absent or complete: pop the next queued task (if
//     any) and Start it, replacing current. Keep looping while the
//     freshly started task is itself already complete, so a run of
//     instantly-completing tasks all advance within this one cycle.
//  3. If current exists and is not complete, call its Update once.
func (r *Runner) Update(c *clock.LoopClock) {
	if r.haveUpdated && r.lastUpdateCycle == c.Cycle() {
		return
	}
	r.haveUpdated = true
	r.lastUpdateCycle = c.Cycle()

	for r.current == nil || r.current.IsComplete() {
		if len(r.queue) == 0 {
			break
		}
		next := r.queue[0]
		r.queue = r.queue[1:]
		r.current = next
		next.Start(c)
	}
	if r.current != nil && !r.current.IsComplete() {
		r.current.Update(c)
	}
}

// Current returns the active task, or nil if none is running.
func (r *Runner) Current() Task {
	return r.current
}
