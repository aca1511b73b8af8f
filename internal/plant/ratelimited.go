package plant

import "robocore-dx/internal/debug"

// RateLimited wraps an inner Plant and slews its applied target toward
// the desired target at independent up/down rates per second.
type RateLimited struct {
	inner                      Plant
	current                    float64
	desired                    float64
	maxUpPerSec, maxDownPerSec float64
}

// NewRateLimited builds a RateLimited decorator. It panics if either rate
// is negative: a negative slew rate is an InvalidConfig construction
// mistake. A rate of +Inf allows unlimited motion in that direction.
func NewRateLimited(inner Plant, maxUpPerSec, maxDownPerSec float64) *RateLimited {
	if maxUpPerSec < 0 || maxDownPerSec < 0 {
		panic(newBuildError(InvalidConfig, "NewRateLimited", "rate limits must be >= 0"))
	}
	current := inner.GetTarget()
	return &RateLimited{
		inner:         inner,
		current:       current,
		desired:       current,
		maxUpPerSec:   maxUpPerSec,
		maxDownPerSec: maxDownPerSec,
	}
}

func (r *RateLimited) SetTarget(t float64) {
	r.desired = t
}

// GetTarget returns the slewed current target being applied to inner,
// not the caller's most recently requested desired target.
func (r *RateLimited) GetTarget() float64 { return r.current }

func (r *RateLimited) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	maxUp := r.maxUpPerSec * dt
	maxDown := r.maxDownPerSec * dt
	delta := r.desired - r.current
	if delta > maxUp {
		delta = maxUp
	} else if delta < -maxDown {
		delta = -maxDown
	}
	r.current += delta
	r.inner.SetTarget(r.current)
	r.inner.Update(dt)
}

func (r *RateLimited) Stop() {
	r.inner.Stop()
	r.current = r.inner.GetTarget()
	r.desired = r.current
}

func (r *RateLimited) Reset() {
	r.inner.Reset()
	r.current = r.inner.GetTarget()
	r.desired = r.current
}

func (r *RateLimited) AtSetpoint() bool { return r.inner.AtSetpoint() }

func (r *RateLimited) HasFeedback() bool { return r.inner.HasFeedback() }

func (r *RateLimited) DebugDump(sink debug.Sink, prefix string) {
	if sink == nil {
		return
	}
	sink.AddData(prefix+".current", r.current)
	sink.AddData(prefix+".desired", r.desired)
	sink.AddData(prefix+".max_up_per_sec", r.maxUpPerSec)
	sink.AddData(prefix+".max_down_per_sec", r.maxDownPerSec)
	r.inner.DebugDump(sink, prefix+".inner")
}
