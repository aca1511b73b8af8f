package geometry

import "math"

// Pose2d is a field-frame position and heading. X and Y are in inches,
// Yaw is in radians, CCW-positive, with +X forward and +Y left.
type Pose2d struct {
	X, Y, Yaw float64
}

// Identity2d is the zero pose.
var Identity2d = Pose2d{}

// NewPose2d builds a pose from inches and radians.
func NewPose2d(xIn, yIn, yawRad float64) Pose2d {
	return Pose2d{X: xIn, Y: yIn, Yaw: NormalizeAngle(yawRad)}
}

// Then composes this pose with other expressed in this pose's frame,
// i.e. it returns the field-frame pose of "other" as seen from "p".
func (p Pose2d) Then(other Pose2d) Pose2d {
	sin, cos := math.Sincos(p.Yaw)
	return Pose2d{
		X:   p.X + other.X*cos - other.Y*sin,
		Y:   p.Y + other.X*sin + other.Y*cos,
		Yaw: NormalizeAngle(p.Yaw + other.Yaw),
	}
}

// Inverse returns the pose that undoes p, i.e. p.Then(p.Inverse()) is
// the identity pose.
func (p Pose2d) Inverse() Pose2d {
	sin, cos := math.Sincos(p.Yaw)
	x := -p.X*cos - p.Y*sin
	y := p.X*sin - p.Y*cos
	return Pose2d{X: x, Y: y, Yaw: NormalizeAngle(-p.Yaw)}
}

// RelativeTo expresses p in the frame of other (other^-1 * p).
func (p Pose2d) RelativeTo(other Pose2d) Pose2d {
	return other.Inverse().Then(p)
}

// DistanceTo returns the straight-line distance in inches to other.
func (p Pose2d) DistanceTo(other Pose2d) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	return math.Hypot(dx, dy)
}

// BearingTo returns the field-frame angle from p to other, radians.
func (p Pose2d) BearingTo(other Pose2d) float64 {
	return NormalizeAngle(math.Atan2(other.Y-p.Y, other.X-p.X))
}
