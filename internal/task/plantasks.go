package task

import "robocore-dx/internal/plant"

// SetInstant returns a Task that commands p's target to value once and
// completes immediately with Success, without waiting for AtSetpoint.
func SetInstant(p plant.Plant, value float64) Task {
	return Instant(func() {
		p.SetTarget(value)
	})
}

// MoveTo is a convenience wrapper over MoveToSetpoint with no timeout.
func MoveTo(p plant.Plant, target float64) Task {
	return MoveToSetpoint(p, target, 0)
}

// MoveToThen is a convenience wrapper over MoveToSetpoint with a
// timeout.
func MoveToThen(p plant.Plant, target float64, timeout float64) Task {
	return MoveToSetpoint(p, target, timeout)
}
