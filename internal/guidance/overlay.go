package guidance

import (
	"math"

	"robocore-dx/internal/clock"
	"robocore-dx/internal/drive"
	"robocore-dx/internal/geometry"
	"robocore-dx/internal/hal"
)

// DriveOverlay is a layer that can claim some or all of a requested set
// of DOFs and produce values for them. It never claims a DOF outside
// requested, and may claim fewer than requested: a Plan's overlay never
// claims a DOF its plan has no target for, and under the PassThrough
// loss policy it also drops any DOF whose data is unavailable this
// cycle.
type DriveOverlay interface {
	Resolve(c *clock.LoopClock, requested DOFMask) (drive.Signal, DOFMask)
}

// planOverlay is the DriveOverlay compiled from a Plan. Adaptive feedback
// blending works by blending the *output signal* computed from each
// feedback source, not the target pose itself: each source's
// proportional-control output is computed independently and the two
// outputs are linearly blended by the gate-derived weight. This keeps
// the blend a pure function of this cycle's solved values, with no
// carried blend state.
type planOverlay struct {
	plan *Plan
}

func (o *planOverlay) Resolve(c *clock.LoopClock, requested DOFMask) (drive.Signal, DOFMask) {
	plan := o.plan
	var owned DOFMask
	if plan.aim != nil {
		owned = owned.With(Omega)
	}
	if plan.translation != nil {
		owned = owned.With(Axial).With(Lateral)
	}
	want := requested.Intersect(owned)
	if want.Empty() {
		return drive.Zero, 0
	}

	obs := plan.feedback.observationSample()
	pose := plan.feedback.poseSample()

	var signal drive.Signal
	var solved DOFMask

	if want.Contains(Omega) {
		if v, ok := o.solveOmega(obs, pose); ok {
			signal.Omega = v
			solved = solved.With(Omega)
		}
	}
	if want.Contains(Axial) || want.Contains(Lateral) {
		if ax, lat, ok := o.solveTranslation(obs, pose); ok {
			if want.Contains(Axial) {
				signal.Axial = ax
				solved = solved.With(Axial)
			}
			if want.Contains(Lateral) {
				signal.Lateral = lat
				solved = solved.With(Lateral)
			}
		}
	}

	missing := want &^ solved
	if missing == 0 {
		return signal.Clamped(), want
	}
	if plan.lossPolicy == ZeroOutput {
		return drive.Zero, want
	}
	return signal.Clamped(), solved
}

// feedbackSample carries one cycle's pulled readings plus whether each
// source is usable this cycle.
type feedbackSample struct {
	haveObservation bool
	observation     hal.Observation
	havePose        bool
	pose            hal.PoseEstimate
}

func (f FeedbackConfig) observationSample() feedbackSample {
	if !f.hasObservation() {
		return feedbackSample{}
	}
	tagID := AnyObservedTag
	obs := f.Observation.Observation(tagID)
	return feedbackSample{haveObservation: obs.HasTarget, observation: obs}
}

func (f FeedbackConfig) poseSample() feedbackSample {
	if !f.hasPose() {
		return feedbackSample{}
	}
	est := f.Pose.Estimate()
	return feedbackSample{havePose: est.HasPose, pose: est}
}

// omegaOnly reports whether this plan only ever claims Omega, in which
// case an in-view observation is always preferred over the pose
// estimate regardless of gate distance (see observationWeight).
func (p *Plan) omegaOnly() bool {
	return p.aim != nil && p.translation == nil
}

// observationWeight returns how much an adaptive plan should weight
// the observation-derived output vs. the pose-derived output, in
// [0, 1], given the current distance-to-target (from the pose sample,
// when available) and whether a target is currently visible.
func (f FeedbackConfig) observationWeight(distanceInches float64, omegaOnly, observationVisible bool) float64 {
	if !f.adaptive() {
		if f.hasObservation() {
			return 1
		}
		return 0
	}
	if omegaOnly {
		if observationVisible {
			return 1
		}
		return 0
	}
	if distanceInches <= f.ExitGateInches {
		return 1
	}
	if distanceInches >= f.EnterGateInches {
		return 0
	}
	span := f.EnterGateInches - f.ExitGateInches
	if span <= 0 {
		return 0
	}
	return 1 - (distanceInches-f.ExitGateInches)/span
}

func (o *planOverlay) solveOmega(obs, pose feedbackSample) (float64, bool) {
	plan := o.plan
	if plan.aim == nil {
		return 0, false
	}
	omegaObs, haveObs := o.omegaFromObservation(obs)
	omegaPose, havePose := o.omegaFromPose(pose)

	switch {
	case haveObs && havePose:
		dist := math.Inf(1)
		if pose.havePose {
			if target, ok := o.aimFieldPoint(pose); ok {
				dist = geometry.NewPose2d(pose.pose.FieldToRobot.X, pose.pose.FieldToRobot.Y, 0).DistanceTo(target)
			}
		}
		w := plan.feedback.observationWeight(dist, plan.omegaOnly(), obs.haveObservation)
		return geometry.Lerp(omegaPose, omegaObs, w), true
	case haveObs:
		return omegaObs, true
	case havePose:
		return omegaPose, true
	default:
		return 0, false
	}
}

func (o *planOverlay) omegaFromObservation(obs feedbackSample) (float64, bool) {
	if !obs.haveObservation {
		return 0, false
	}
	bearing := geometry.NormalizeAngle(obs.observation.CameraBearingRad - o.plan.controlFrames.RobotToAimFrame.Yaw)
	return geometry.ClampSigned(bearing * o.plan.gains.OmegaKPPerRad), true
}

func (o *planOverlay) omegaFromPose(pose feedbackSample) (float64, bool) {
	if !pose.havePose {
		return 0, false
	}
	aim := o.plan.aim
	current := geometry.NewPose2d(pose.pose.FieldToRobot.X, pose.pose.FieldToRobot.Y, pose.pose.FieldToRobot.YawRad)
	controlled := current.Then(o.plan.controlFrames.RobotToAimFrame)

	var targetYaw float64
	switch aim.kind {
	case aimFieldHeading:
		targetYaw = aim.headingRad
	case aimFieldPoint:
		targetYaw = controlled.BearingTo(geometry.NewPose2d(aim.fieldX, aim.fieldY, 0))
	case aimTagRelativePoint:
		target, ok := o.resolveTagRelative(aim.tagID, aim.forward, aim.left)
		if !ok {
			return 0, false
		}
		targetYaw = controlled.BearingTo(target)
	default:
		return 0, false
	}
	err := geometry.NormalizeAngle(targetYaw - controlled.Yaw)
	return geometry.ClampSigned(err * o.plan.gains.OmegaKPPerRad), true
}

// aimFieldPoint resolves the current aim target to a field point, for
// distance-to-target computation during adaptive blending. Only
// meaningful for point-like aim targets.
func (o *planOverlay) aimFieldPoint(pose feedbackSample) (geometry.Pose2d, bool) {
	aim := o.plan.aim
	switch aim.kind {
	case aimFieldPoint:
		return geometry.NewPose2d(aim.fieldX, aim.fieldY, 0), true
	case aimTagRelativePoint:
		return o.resolveTagRelative(aim.tagID, aim.forward, aim.left)
	default:
		return geometry.Pose2d{}, false
	}
}

func (o *planOverlay) resolveTagRelative(tagID int, forward, left float64) (geometry.Pose2d, bool) {
	layout := o.plan.feedback.TagLayout
	if layout == nil {
		return geometry.Pose2d{}, false
	}
	fp, ok := layout[tagID]
	if !ok {
		return geometry.Pose2d{}, false
	}
	tagPose := geometry.NewPose2d(fp.X, fp.Y, fp.YawRad)
	return tagPose.Then(geometry.NewPose2d(forward, left, 0)), true
}

func (o *planOverlay) solveTranslation(obs, pose feedbackSample) (axial, lateral float64, ok bool) {
	plan := o.plan
	if plan.translation == nil {
		return 0, 0, false
	}
	ax1, lat1, haveObs := o.translationFromObservation(obs)
	ax2, lat2, havePose := o.translationFromPose(pose)

	switch {
	case haveObs && havePose:
		dist := math.Hypot(ax2, lat2) / max(plan.gains.TranslationKPPerInch, 1e-9)
		w := plan.feedback.observationWeight(dist, false, obs.haveObservation)
		return geometry.Lerp(ax2, ax1, w), geometry.Lerp(lat2, lat1, w), true
	case haveObs:
		return ax1, lat1, true
	case havePose:
		return ax2, lat2, true
	default:
		return 0, 0, false
	}
}

func (o *planOverlay) translationFromObservation(obs feedbackSample) (axial, lateral float64, ok bool) {
	if !obs.haveObservation {
		return 0, 0, false
	}
	r := obs.observation.CameraRangeInches
	bearing := obs.observation.CameraBearingRad
	forward := r * math.Cos(bearing)
	left := r * math.Sin(bearing)
	t := o.plan.translation
	if t.kind == translationTagRelativePoint {
		forward -= t.forward
		left -= t.left
	}
	return geometry.ClampSigned(forward * o.plan.gains.TranslationKPPerInch),
		geometry.ClampSigned(left * o.plan.gains.TranslationKPPerInch), true
}

func (o *planOverlay) translationFromPose(pose feedbackSample) (axial, lateral float64, ok bool) {
	if !pose.havePose {
		return 0, 0, false
	}
	t := o.plan.translation
	current := geometry.NewPose2d(pose.pose.FieldToRobot.X, pose.pose.FieldToRobot.Y, pose.pose.FieldToRobot.YawRad)

	var target geometry.Pose2d
	switch t.kind {
	case translationFieldPoint:
		target = geometry.NewPose2d(t.fieldX, t.fieldY, 0)
	case translationTagRelativePoint:
		resolved, has := o.resolveTagRelative(t.tagID, t.forward, t.left)
		if !has {
			return 0, 0, false
		}
		target = resolved
	case translationRobotRelativeOffset:
		target = current.Then(geometry.NewPose2d(t.forward, t.left, 0))
	default:
		return 0, 0, false
	}

	relative := target.RelativeTo(current)
	return geometry.ClampSigned(relative.X * o.plan.gains.TranslationKPPerInch),
		geometry.ClampSigned(relative.Y * o.plan.gains.TranslationKPPerInch), true
}
