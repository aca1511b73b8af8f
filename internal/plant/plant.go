// Package plant implements setpoint-driven actuator wrappers (power,
// position, velocity) with feedback-aware completion semantics, the
// rate-limit/interlock/fan-out decorators that compose over them, and the
// staged builder that assembles a Plant from a hardware output and a
// control mode. RateLimited and Interlock each own one inner Plant and
// forward to it, and Fanout owns and forwards to several children, so a
// chain of decorators routes a target through each owned layer down to
// the concrete Plants underneath, the same way a bus owns and
// forwards to whichever handler a request is addressed to.
package plant

import "robocore-dx/internal/debug"

// Plant is the capability every actuator wrapper and decorator in this
// package implements.
type Plant interface {
	SetTarget(x float64)
	GetTarget() float64
	Update(dt float64)
	Stop()
	Reset()
	AtSetpoint() bool
	HasFeedback() bool
	DebugDump(sink debug.Sink, prefix string)
}
