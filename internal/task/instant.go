package task

import "robocore-dx/internal/clock"

// instantTask calls action once during Start and completes immediately
// with Success.
type instantTask struct {
	action   func()
	complete bool
}

// Instant returns a Task that runs action once in Start and immediately
// completes with Success.
func Instant(action func()) Task {
	return &instantTask{action: action}
}

func (t *instantTask) Start(c *clock.LoopClock) {
	if t.action != nil {
		t.action()
	}
	t.complete = true
}

func (t *instantTask) Update(c *clock.LoopClock) {}

func (t *instantTask) IsComplete() bool { return t.complete }

func (t *instantTask) Outcome() Outcome {
	if t.complete {
		return Success
	}
	return Unknown
}
