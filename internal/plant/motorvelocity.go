package plant

import (
	"math"

	"robocore-dx/internal/debug"
	"robocore-dx/internal/hal"
)

// MotorVelocity is a feedback plant over a hal.VelocityOutput, with a
// tolerance band in native units per second.
type MotorVelocity struct {
	out       hal.VelocityOutput
	tolerance float64
	target    float64
}

// NewMotorVelocity builds a MotorVelocity plant. It panics if tolerance
// is negative, for the same reason as NewMotorPosition.
func NewMotorVelocity(out hal.VelocityOutput, tolerance float64) *MotorVelocity {
	if tolerance < 0 {
		panic(newBuildError(InvalidConfig, "NewMotorVelocity", "tolerance must be >= 0"))
	}
	return &MotorVelocity{out: out, tolerance: tolerance}
}

func (m *MotorVelocity) SetTarget(x float64) {
	m.target = x
	m.out.SetVelocity(x)
}

func (m *MotorVelocity) GetTarget() float64 { return m.target }

// Update is a no-op: the closed loop is in the underlying output.
func (m *MotorVelocity) Update(dt float64) {}

func (m *MotorVelocity) Stop() {
	m.out.Stop()
}

// Reset is a no-op: velocity plants have no coordinate frame to re-zero.
func (m *MotorVelocity) Reset() {}

func (m *MotorVelocity) AtSetpoint() bool {
	return math.Abs(m.out.MeasuredVelocity()-m.target) <= m.tolerance
}

// HasFeedback is always true for MotorVelocity.
func (m *MotorVelocity) HasFeedback() bool { return true }

func (m *MotorVelocity) DebugDump(sink debug.Sink, prefix string) {
	if sink == nil {
		return
	}
	sink.AddData(prefix+".target", m.target)
	sink.AddData(prefix+".tolerance", m.tolerance)
	sink.AddData(prefix+".measured", m.out.MeasuredVelocity())
	sink.AddData(prefix+".at_setpoint", m.AtSetpoint())
	sink.AddData(prefix+".has_feedback", true)
}
