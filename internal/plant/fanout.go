package plant

import (
	"fmt"

	"robocore-dx/internal/debug"
)

// childSpec is one (child, scale, bias) tuple owned by a Fanout. The
// first element is distinguished only by having been added first; all
// are peers.
type childSpec struct {
	child Plant
	scale float64
	bias  float64
}

// Fanout owns an ordered list of children and forwards scale*t + bias to
// each on SetTarget. AtSetpoint and HasFeedback are the AND across all
// children.
type Fanout struct {
	children []childSpec
	target   float64
}

// NewFanout builds a Fanout over at least one child. It panics if
// children is empty: an empty fan-out is an InvalidConfig construction
// mistake.
func NewFanout(children ...Plant) *Fanout {
	if len(children) == 0 {
		panic(newBuildError(InvalidConfig, "NewFanout", "fan-out requires at least one child"))
	}
	specs := make([]childSpec, len(children))
	for i, c := range children {
		specs[i] = childSpec{child: c, scale: 1, bias: 0}
	}
	return &Fanout{children: specs}
}

// SetChildTrim sets the (scale, bias) applied to the child at index i.
// It panics on an out-of-range index, which can only happen from a
// programming mistake in the caller (e.g. the staged builder addressing
// the wrong group member).
func (f *Fanout) SetChildTrim(i int, scale, bias float64) {
	if i < 0 || i >= len(f.children) {
		panic(newBuildError(InvalidConfig, "SetChildTrim", fmt.Sprintf("index %d out of range for %d children", i, len(f.children))))
	}
	f.children[i].scale = scale
	f.children[i].bias = bias
	f.children[i].child.SetTarget(scale*f.target + bias)
}

func (f *Fanout) SetTarget(t float64) {
	f.target = t
	for _, c := range f.children {
		c.child.SetTarget(c.scale*t + c.bias)
	}
}

func (f *Fanout) GetTarget() float64 { return f.target }

func (f *Fanout) Update(dt float64) {
	for _, c := range f.children {
		c.child.Update(dt)
	}
}

func (f *Fanout) Stop() {
	for _, c := range f.children {
		c.child.Stop()
	}
}

func (f *Fanout) Reset() {
	for _, c := range f.children {
		c.child.Reset()
	}
}

func (f *Fanout) AtSetpoint() bool {
	for _, c := range f.children {
		if !c.child.AtSetpoint() {
			return false
		}
	}
	return true
}

func (f *Fanout) HasFeedback() bool {
	for _, c := range f.children {
		if !c.child.HasFeedback() {
			return false
		}
	}
	return true
}

func (f *Fanout) DebugDump(sink debug.Sink, prefix string) {
	if sink == nil {
		return
	}
	sink.AddData(prefix+".target", f.target)
	sink.AddData(prefix+".child_count", len(f.children))
	for i, c := range f.children {
		sink.AddData(fmt.Sprintf("%s.child%d.scale", prefix, i), c.scale)
		sink.AddData(fmt.Sprintf("%s.child%d.bias", prefix, i), c.bias)
		c.child.DebugDump(sink, fmt.Sprintf("%s.child%d", prefix, i))
	}
}
