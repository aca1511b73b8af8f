package plant

import (
	"math"

	"robocore-dx/internal/debug"
	"robocore-dx/internal/hal"
)

// MotorPosition is a feedback plant over a hal.PositionOutput. It holds a
// tolerance band in native units and an internal offset used to re-zero
// the coordinate frame on Reset.
type MotorPosition struct {
	out       hal.PositionOutput
	tolerance float64
	target    float64
	offset    float64
}

// NewMotorPosition builds a MotorPosition plant. It panics if tolerance
// is negative: a negative tolerance is an InvalidConfig construction
// mistake, not a runtime condition, and the staged builder is expected
// to validate this before ever calling here.
func NewMotorPosition(out hal.PositionOutput, tolerance float64) *MotorPosition {
	if tolerance < 0 {
		panic(newBuildError(InvalidConfig, "NewMotorPosition", "tolerance must be >= 0"))
	}
	return &MotorPosition{out: out, tolerance: tolerance}
}

func (m *MotorPosition) SetTarget(x float64) {
	m.target = x
	m.out.SetPosition(x + m.offset)
}

func (m *MotorPosition) GetTarget() float64 { return m.target }

// Update is a no-op: the closed loop runs in the underlying output.
func (m *MotorPosition) Update(dt float64) {}

func (m *MotorPosition) Stop() {
	m.out.Stop()
}

// Reset re-zeros the coordinate frame at the current measurement: the
// offset is set so that the current position reads as the origin.
func (m *MotorPosition) Reset() {
	m.out.Stop()
	m.offset = m.out.MeasuredPosition()
}

func (m *MotorPosition) AtSetpoint() bool {
	measured := m.out.MeasuredPosition()
	return math.Abs(measured-m.offset-m.target) <= m.tolerance
}

// HasFeedback is always true for MotorPosition.
func (m *MotorPosition) HasFeedback() bool { return true }

func (m *MotorPosition) DebugDump(sink debug.Sink, prefix string) {
	if sink == nil {
		return
	}
	sink.AddData(prefix+".target", m.target)
	sink.AddData(prefix+".offset", m.offset)
	sink.AddData(prefix+".tolerance", m.tolerance)
	sink.AddData(prefix+".measured", m.out.MeasuredPosition())
	sink.AddData(prefix+".at_setpoint", m.AtSetpoint())
	sink.AddData(prefix+".has_feedback", true)
}
