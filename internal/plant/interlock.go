package plant

import "robocore-dx/internal/debug"

// Interlock wraps an inner Plant and gates commands by a boolean
// condition, applying blockedTarget to inner whenever condition()
// returns false.
type Interlock struct {
	inner         Plant
	condition     func() bool
	blockedTarget float64
	desired       float64
	applied       float64
	blocked       bool
}

// NewInterlock builds an Interlock decorator. condition is polled once
// per Update.
func NewInterlock(inner Plant, condition func() bool, blockedTarget float64) *Interlock {
	return &Interlock{inner: inner, condition: condition, blockedTarget: blockedTarget}
}

func (i *Interlock) SetTarget(t float64) {
	i.desired = t
}

// GetTarget returns the last applied value, not the desired target: a
// blocked Interlock reports what actually reached inner.
func (i *Interlock) GetTarget() float64 { return i.applied }

func (i *Interlock) Update(dt float64) {
	i.blocked = !i.condition()
	if i.blocked {
		i.applied = i.blockedTarget
	} else {
		i.applied = i.desired
	}
	i.inner.SetTarget(i.applied)
	i.inner.Update(dt)
}

func (i *Interlock) Stop() {
	i.inner.Stop()
}

func (i *Interlock) Reset() {
	i.inner.Reset()
}

func (i *Interlock) AtSetpoint() bool { return i.inner.AtSetpoint() }

func (i *Interlock) HasFeedback() bool { return i.inner.HasFeedback() }

func (i *Interlock) DebugDump(sink debug.Sink, prefix string) {
	if sink == nil {
		return
	}
	sink.AddData(prefix+".desired", i.desired)
	sink.AddData(prefix+".applied", i.applied)
	sink.AddData(prefix+".blocked", i.blocked)
	i.inner.DebugDump(sink, prefix+".inner")
}
