package guidance

import (
	"robocore-dx/internal/clock"
	"robocore-dx/internal/drive"
	"robocore-dx/internal/geometry"
	"robocore-dx/internal/hal"
)

// PoseLock captures the robot's field pose the first time it is
// resolved while active and drives back toward that captured pose
// thereafter, claiming the full {Axial, Lateral, Omega} mask. Activation
// is host-controlled: construct a fresh PoseLock each time the driver
// re-engages it so the capture happens on that activation.
type PoseLock struct {
	estimator hal.PoseEstimator
	gains     Gains
	captured  *geometry.Pose2d
}

// NewPoseLock returns a PoseLock driven by estimator. Pose is captured
// lazily, on the first Resolve call that observes a valid estimate.
func NewPoseLock(estimator hal.PoseEstimator, gains Gains) *PoseLock {
	return &PoseLock{estimator: estimator, gains: gains}
}

func (p *PoseLock) Resolve(c *clock.LoopClock, requested DOFMask) (drive.Signal, DOFMask) {
	want := requested.Intersect(NewDOFMask(Axial, Lateral, Omega))
	if want.Empty() {
		return drive.Zero, 0
	}

	est := p.estimator.Estimate()
	if !est.HasPose {
		return drive.Zero, 0
	}
	current := geometry.NewPose2d(est.FieldToRobot.X, est.FieldToRobot.Y, est.FieldToRobot.YawRad)
	if p.captured == nil {
		captured := current
		p.captured = &captured
	}

	relative := p.captured.RelativeTo(current)
	signal := drive.Signal{
		Axial:   geometry.ClampSigned(relative.X * p.gains.TranslationKPPerInch),
		Lateral: geometry.ClampSigned(relative.Y * p.gains.TranslationKPPerInch),
		Omega:   geometry.ClampSigned(relative.Yaw * p.gains.OmegaKPPerRad),
	}
	return signal.Clamped(), want
}
