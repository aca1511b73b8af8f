package geometry

// Pose3d is a full 6-DOF field-frame pose: position in inches, orientation
// as roll/pitch/yaw in radians (+X forward, +Y left, +Z up).
type Pose3d struct {
	X, Y, Z          float64
	Roll, Pitch, Yaw float64
}

// Identity3d is the zero pose.
var Identity3d = Pose3d{}

// NewPose3d builds a pose from inches and radians.
func NewPose3d(x, y, z, roll, pitch, yaw float64) Pose3d {
	return Pose3d{
		X: x, Y: y, Z: z,
		Roll:  NormalizeAngle(roll),
		Pitch: NormalizeAngle(pitch),
		Yaw:   NormalizeAngle(yaw),
	}
}

// ToPose2d projects p onto the field plane, keeping only yaw.
func (p Pose3d) ToPose2d() Pose2d {
	return Pose2d{X: p.X, Y: p.Y, Yaw: p.Yaw}
}

// FromPose2d lifts a planar pose into 3D at the given height, with zero
// roll/pitch.
func FromPose2d(p Pose2d, z float64) Pose3d {
	return Pose3d{X: p.X, Y: p.Y, Z: z, Yaw: p.Yaw}
}
