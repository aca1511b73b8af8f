package plant

import (
	"robocore-dx/internal/debug"
	"robocore-dx/internal/hal"
)

// ServoPosition is a no-feedback plant over a hal.PositionOutput driven
// in the [0,1] servo position convention. It has the same shape as Power,
// just a different target range by convention; the plant itself does
// not clamp.
type ServoPosition struct {
	out    hal.PositionOutput
	target float64
}

// NewServoPosition wraps a PositionOutput as a Plant in servo mode.
func NewServoPosition(out hal.PositionOutput) *ServoPosition {
	return &ServoPosition{out: out}
}

func (s *ServoPosition) SetTarget(x float64) {
	s.target = x
	s.out.SetPosition(x)
}

func (s *ServoPosition) GetTarget() float64 { return s.target }

// Update is a no-op: a positional servo's loop runs on the host side.
func (s *ServoPosition) Update(dt float64) {}

func (s *ServoPosition) Stop() {
	s.out.Stop()
}

// Reset is a no-op: ServoPosition has no internal coordinate frame.
func (s *ServoPosition) Reset() {}

// AtSetpoint is always true: ServoPosition has set-and-hold semantics.
func (s *ServoPosition) AtSetpoint() bool { return true }

// HasFeedback is always false for ServoPosition.
func (s *ServoPosition) HasFeedback() bool { return false }

func (s *ServoPosition) DebugDump(sink debug.Sink, prefix string) {
	if sink == nil {
		return
	}
	sink.AddData(prefix+".target", s.target)
	sink.AddData(prefix+".has_feedback", false)
}
