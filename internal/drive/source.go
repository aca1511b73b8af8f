package drive

import "robocore-dx/internal/clock"

// Source is the capability that produces a DriveSignal once per cycle.
type Source interface {
	Get(c *clock.LoopClock) Signal
}

// SourceFunc adapts a plain function to a Source.
type SourceFunc func(c *clock.LoopClock) Signal

// Get calls f.
func (f SourceFunc) Get(c *clock.LoopClock) Signal {
	return f(c)
}
