// Package drive implements the 3-DOF robot-centric DriveSignal, the
// stick-to-signal mapper, and the mecanum wheel mixer. Sign conventions
// are applied in exactly two places in this codebase — the stick mapper
// and the mecanum mixer — and nowhere else.
package drive

import "robocore-dx/internal/geometry"

// Signal is an immutable 3-DOF robot-centric velocity command.
// axial > 0 is forward, lateral > 0 is left, omega > 0 is
// counter-clockwise.
type Signal struct {
	Axial, Lateral, Omega float64
}

// Zero is the identity DriveSignal: no motion on any axis.
var Zero = Signal{}

// Scaled returns the signal with every component multiplied by k.
func (s Signal) Scaled(k float64) Signal {
	return Signal{Axial: s.Axial * k, Lateral: s.Lateral * k, Omega: s.Omega * k}
}

// Plus returns the component-wise sum of s and other.
func (s Signal) Plus(other Signal) Signal {
	return Signal{Axial: s.Axial + other.Axial, Lateral: s.Lateral + other.Lateral, Omega: s.Omega + other.Omega}
}

// Lerp returns the component-wise linear interpolation between s and
// other at parameter t (t=0 yields s, t=1 yields other).
func (s Signal) Lerp(other Signal, t float64) Signal {
	return Signal{
		Axial:   geometry.Lerp(s.Axial, other.Axial, t),
		Lateral: geometry.Lerp(s.Lateral, other.Lateral, t),
		Omega:   geometry.Lerp(s.Omega, other.Omega, t),
	}
}

// Clamped returns s with each component clamped to [-1, 1].
func (s Signal) Clamped() Signal {
	return Signal{
		Axial:   geometry.ClampSigned(s.Axial),
		Lateral: geometry.ClampSigned(s.Lateral),
		Omega:   geometry.ClampSigned(s.Omega),
	}
}
