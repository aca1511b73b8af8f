package task

import "robocore-dx/internal/clock"

// waitUntilTask polls a condition each cycle and completes with Success
// the first time it reports true. If a positive timeout is configured
// and the condition never holds within it, the task completes with
// Timeout instead.
type waitUntilTask struct {
	condition func() bool
	timeout   float64
	elapsed   float64
	complete  bool
	outcome   Outcome
}

// WaitUntil returns a Task that completes with Success on the first
// cycle condition() returns true. timeout <= 0 means wait forever.
func WaitUntil(condition func() bool, timeout float64) Task {
	return &waitUntilTask{condition: condition, timeout: timeout}
}

func (t *waitUntilTask) Start(c *clock.LoopClock) {
	t.elapsed = 0
	t.complete = false
	t.outcome = Unknown
	if t.condition != nil && t.condition() {
		t.complete = true
		t.outcome = Success
	}
}

func (t *waitUntilTask) Update(c *clock.LoopClock) {
	if t.complete {
		return
	}
	if t.condition != nil && t.condition() {
		t.complete = true
		t.outcome = Success
		return
	}
	t.elapsed += c.Dt()
	if t.timeout > 0 && t.elapsed >= t.timeout {
		t.complete = true
		t.outcome = Timeout
	}
}

func (t *waitUntilTask) IsComplete() bool { return t.complete }

func (t *waitUntilTask) Outcome() Outcome { return t.outcome }
