package task

import (
	"robocore-dx/internal/clock"
	"robocore-dx/internal/plant"
)

// holdForTask commands a plant to a value and keeps it there for a fixed
// duration, optionally snapping to a different final value just before
// reporting complete.
type holdForTask struct {
	plant      plant.Plant
	value      float64
	duration   float64
	finalValue float64
	hasFinal   bool
	elapsed    float64
	complete   bool
}

// HoldFor returns a Task that sets p's target to value in Start, keeps
// it there, and completes with Success after duration seconds.
func HoldFor(p plant.Plant, value float64, duration float64) Task {
	return &holdForTask{plant: p, value: value, duration: duration}
}

// HoldForThen is HoldFor but applies finalValue as p's target on the
// cycle the hold completes, before reporting IsComplete.
func HoldForThen(p plant.Plant, value float64, duration float64, finalValue float64) Task {
	return &holdForTask{plant: p, value: value, duration: duration, finalValue: finalValue, hasFinal: true}
}

func (t *holdForTask) Start(c *clock.LoopClock) {
	t.elapsed = 0
	t.complete = false
	t.plant.SetTarget(t.value)
	if t.duration <= 0 {
		t.finish()
	}
}

func (t *holdForTask) Update(c *clock.LoopClock) {
	if t.complete {
		return
	}
	t.elapsed += c.Dt()
	if t.elapsed >= t.duration {
		t.finish()
	}
}

func (t *holdForTask) finish() {
	if t.hasFinal {
		t.plant.SetTarget(t.finalValue)
	}
	t.complete = true
}

func (t *holdForTask) IsComplete() bool { return t.complete }

func (t *holdForTask) Outcome() Outcome {
	if t.complete {
		return Success
	}
	return Unknown
}
