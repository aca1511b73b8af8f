package task

import (
	"fmt"

	"robocore-dx/internal/clock"
)

// waitForSecondsTask completes with Success once the sum of elapsed dt
// since Start reaches its duration. A zero duration completes in the
// same cycle as Start.
type waitForSecondsTask struct {
	duration float64
	elapsed  float64
	complete bool
}

// WaitForSeconds returns a Task that completes with Success after
// duration seconds have elapsed (accumulated across Update calls). It
// panics if duration is negative: a negative wait is a construction-time
// mistake.
func WaitForSeconds(duration float64) Task {
	if duration < 0 {
		panic(fmt.Sprintf("task: WaitForSeconds: duration must be >= 0, got %v", duration))
	}
	return &waitForSecondsTask{duration: duration}
}

func (t *waitForSecondsTask) Start(c *clock.LoopClock) {
	t.elapsed = 0
	if t.duration <= 0 {
		t.complete = true
	}
}

func (t *waitForSecondsTask) Update(c *clock.LoopClock) {
	if t.complete {
		return
	}
	t.elapsed += c.Dt()
	if t.elapsed >= t.duration {
		t.complete = true
	}
}

func (t *waitForSecondsTask) IsComplete() bool { return t.complete }

func (t *waitForSecondsTask) Outcome() Outcome {
	if t.complete {
		return Success
	}
	return Unknown
}
