package plant

import (
	"robocore-dx/internal/debug"
	"robocore-dx/internal/hal"
)

// Power is a no-feedback plant over a hal.PowerOutput. The caller is
// responsible for normalization; Power does no clamping beyond whatever
// the underlying output itself enforces.
type Power struct {
	out    hal.PowerOutput
	target float64
}

// NewPower wraps a PowerOutput as a Plant.
func NewPower(out hal.PowerOutput) *Power {
	return &Power{out: out}
}

func (p *Power) SetTarget(x float64) {
	p.target = x
	p.out.SetPower(x)
}

func (p *Power) GetTarget() float64 { return p.target }

// Update is a no-op: Power is open-loop, nothing to advance over time.
func (p *Power) Update(dt float64) {}

func (p *Power) Stop() {
	p.target = 0
	p.out.Stop()
}

// Reset is a no-op: Power has no internal coordinate frame to re-zero.
func (p *Power) Reset() {}

// AtSetpoint is always true: Power has set-and-hold semantics.
func (p *Power) AtSetpoint() bool { return true }

// HasFeedback is always false for Power.
func (p *Power) HasFeedback() bool { return false }

func (p *Power) DebugDump(sink debug.Sink, prefix string) {
	if sink == nil {
		return
	}
	sink.AddData(prefix+".target", p.target)
	sink.AddData(prefix+".has_feedback", false)
}
