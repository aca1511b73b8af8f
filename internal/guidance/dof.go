// Package guidance implements declarative drive overlays: a Plan
// (translation + aim targets plus a feedback configuration) compiles to
// a DriveOverlay that claims a subset of a DriveSignal's degrees of
// freedom each cycle, and an OverlayStack composes several overlays
// onto a base DriveSource with last-writer-wins semantics per DOF.
package guidance

// DOF identifies one of the three degrees of freedom a DriveSignal
// carries.
type DOF int

const (
	Axial DOF = iota
	Lateral
	Omega
)

// DOFMask is a subset of {Axial, Lateral, Omega}.
type DOFMask uint8

// NewDOFMask returns a mask containing exactly the given DOFs.
func NewDOFMask(dofs ...DOF) DOFMask {
	var m DOFMask
	for _, d := range dofs {
		m |= 1 << d
	}
	return m
}

// Contains reports whether d is a member of m.
func (m DOFMask) Contains(d DOF) bool {
	return m&(1<<d) != 0
}

// With returns m with d added.
func (m DOFMask) With(d DOF) DOFMask {
	return m | (1 << d)
}

// Without returns m with d removed.
func (m DOFMask) Without(d DOF) DOFMask {
	return m &^ (1 << d)
}

// Intersect returns the DOFs present in both m and other.
func (m DOFMask) Intersect(other DOFMask) DOFMask {
	return m & other
}

// Empty reports whether m has no members.
func (m DOFMask) Empty() bool {
	return m == 0
}
