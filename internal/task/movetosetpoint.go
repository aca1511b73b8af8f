package task

import (
	"robocore-dx/internal/clock"
	"robocore-dx/internal/plant"
)

// moveToSetpointTask commands a plant to a target and completes with
// Success the first cycle the plant reports AtSetpoint, or Timeout if a
// positive timeout elapses first.
type moveToSetpointTask struct {
	plant    plant.Plant
	target   float64
	timeout  float64
	elapsed  float64
	complete bool
	outcome  Outcome
}

// MoveToSetpoint returns a Task that sets p's target to target in Start
// and completes once p reports AtSetpoint. p must report feedback; it is
// a construction-time mistake to use this primitive on a feedback-less
// plant such as a bare Power wrapper. timeout <= 0 means wait forever.
func MoveToSetpoint(p plant.Plant, target float64, timeout float64) Task {
	if !p.HasFeedback() {
		panic(&plant.BuildError{
			Kind:   plant.FeedbackRequired,
			Method: "task.MoveToSetpoint",
			Reason: "plant reports HasFeedback() == false; cannot detect setpoint arrival",
		})
	}
	return &moveToSetpointTask{plant: p, target: target, timeout: timeout}
}

func (t *moveToSetpointTask) Start(c *clock.LoopClock) {
	t.elapsed = 0
	t.complete = false
	t.outcome = Unknown
	t.plant.SetTarget(t.target)
	if t.plant.AtSetpoint() {
		t.complete = true
		t.outcome = Success
	}
}

func (t *moveToSetpointTask) Update(c *clock.LoopClock) {
	if t.complete {
		return
	}
	if t.plant.AtSetpoint() {
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

func (t *moveToSetpointTask) IsComplete() bool { return t.complete }

func (t *moveToSetpointTask) Outcome() Outcome { return t.outcome }
