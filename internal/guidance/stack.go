package guidance

import (
	"robocore-dx/internal/clock"
	"robocore-dx/internal/drive"
)

// layer is one entry in an OverlayStack: a named, independently
// enable-gated overlay claiming a fixed requested mask.
type layer struct {
	name          string
	enabled       func() bool
	overlay       DriveOverlay
	requestedMask DOFMask
}

// OverlayStack composes an ordered list of overlays onto a base
// DriveSource. Each cycle it starts from the base signal and, for each
// enabled layer in order, overwrites the DOFs the layer was able to
// solve: a later layer claiming the same DOF as an earlier one wins
// (last-writer-wins per DOF).
type OverlayStack struct {
	base   drive.Source
	layers []layer
}

// NewOverlayStack returns an OverlayStack layered on top of base.
func NewOverlayStack(base drive.Source) *OverlayStack {
	return &OverlayStack{base: base}
}

// Add appends a named, gated overlay layer. Layers are evaluated in the
// order they were added.
func (s *OverlayStack) Add(name string, enabled func() bool, overlay DriveOverlay, requestedMask DOFMask) *OverlayStack {
	s.layers = append(s.layers, layer{name: name, enabled: enabled, overlay: overlay, requestedMask: requestedMask})
	return s
}

// Build returns the stack itself as a drive.Source. It exists so the
// builder reads fluently as stack.Add(...).Add(...).Build(); the stack
// already implements Source.
func (s *OverlayStack) Build() drive.Source {
	return s
}

// Get resolves the base signal, then applies every enabled layer's
// solved DOFs over it in order.
func (s *OverlayStack) Get(c *clock.LoopClock) drive.Signal {
	current := s.base.Get(c)
	for _, l := range s.layers {
		if l.enabled != nil && !l.enabled() {
			continue
		}
		signal, actual := l.overlay.Resolve(c, l.requestedMask)
		if actual.Contains(Axial) {
			current.Axial = signal.Axial
		}
		if actual.Contains(Lateral) {
			current.Lateral = signal.Lateral
		}
		if actual.Contains(Omega) {
			current.Omega = signal.Omega
		}
	}
	return current
}

// OverlayWhen is a single-layer convenience equivalent to
// NewOverlayStack(base).Add("overlay", enabled, overlay, mask).Build(), for
// the common case of layering exactly one overlay onto a base source.
func OverlayWhen(base drive.Source, enabled func() bool, overlay DriveOverlay, requestedMask DOFMask) drive.Source {
	return NewOverlayStack(base).Add("overlay", enabled, overlay, requestedMask)
}
