package guidance

import (
	"testing"

	"robocore-dx/internal/clock"
	"robocore-dx/internal/drive"
	"robocore-dx/internal/hal"
)

type fakeObservationSource struct {
	obs hal.Observation
}

func (f fakeObservationSource) Observation(tagID int) hal.Observation { return f.obs }

type fakePoseEstimator struct {
	est hal.PoseEstimate
}

func (f fakePoseEstimator) Estimate() hal.PoseEstimate { return f.est }

func TestAimOverlayNoTargetPassThroughDropsOmega(t *testing.T) {
	plan := NewPlan().
		AimAt(AimAtTagRelativePoint(AnyObservedTag, 0, 0)).
		WithFeedback(FeedbackConfig{Observation: fakeObservationSource{obs: hal.Observation{HasTarget: false}}}).
		WithLossPolicy(PassThrough)
	overlay := plan.Build()

	base := drive.SourceFunc(func(c *clock.LoopClock) drive.Signal {
		return drive.Signal{Axial: 0.5, Lateral: 0, Omega: 0.7}
	})
	stack := NewOverlayStack(base).Add("aim", func() bool { return true }, overlay, NewDOFMask(Omega)).Build()

	c := clock.NewLoopClock(0)
	got := stack.Get(c)
	want := drive.Signal{Axial: 0.5, Lateral: 0, Omega: 0.7}
	if got != want {
		t.Fatalf("expected overlay to drop unsolved Omega and leave base signal, got %v want %v", got, want)
	}
}

func TestAimOverlayZeroOutputPolicyZeroesAllRequestedOnLoss(t *testing.T) {
	plan := NewPlan().
		AimAt(AimAtTagRelativePoint(AnyObservedTag, 0, 0)).
		WithFeedback(FeedbackConfig{Observation: fakeObservationSource{obs: hal.Observation{HasTarget: false}}}).
		WithLossPolicy(ZeroOutput)
	overlay := plan.Build()

	_, actualMask := overlay.Resolve(clock.NewLoopClock(0), NewDOFMask(Omega))
	if actualMask.Contains(Omega) == false {
		t.Fatal("ZeroOutput policy should still claim the requested DOF, just with a zero value")
	}
	signal, _ := overlay.Resolve(clock.NewLoopClock(0), NewDOFMask(Omega))
	if signal.Omega != 0 {
		t.Errorf("expected zeroed omega under ZeroOutput loss, got %v", signal.Omega)
	}
}

func TestOverlayStackLastWriterWinsPerDOF(t *testing.T) {
	base := drive.SourceFunc(func(c *clock.LoopClock) drive.Signal {
		return drive.Signal{Axial: 0.1, Lateral: 0.2, Omega: 0.3}
	})

	layerA := constantOverlay{signal: drive.Signal{Omega: 1.0}, mask: NewDOFMask(Omega)}
	layerB := constantOverlay{signal: drive.Signal{Omega: 2.0, Axial: 3.0}, mask: NewDOFMask(Omega, Axial)}

	stack := NewOverlayStack(base).
		Add("a", func() bool { return true }, layerA, NewDOFMask(Omega)).
		Add("b", func() bool { return true }, layerB, NewDOFMask(Omega, Axial)).
		Build()

	got := stack.Get(clock.NewLoopClock(0))
	want := drive.Signal{Axial: 3.0, Lateral: 0.2, Omega: 2.0}
	if got != want {
		t.Fatalf("expected layer B to win Omega and Axial (last writer), got %v want %v", got, want)
	}
}

// constantOverlay is a minimal DriveOverlay double that always claims
// its fixed mask and returns its fixed signal.
type constantOverlay struct {
	signal drive.Signal
	mask   DOFMask
}

func (c constantOverlay) Resolve(clk *clock.LoopClock, requested DOFMask) (drive.Signal, DOFMask) {
	actual := requested.Intersect(c.mask)
	return c.signal, actual
}

func TestPoseLockCapturesOnFirstResolveAndDrivesBackToIt(t *testing.T) {
	est := &mutableEstimator{est: hal.PoseEstimate{HasPose: true, FieldToRobot: hal.FieldPose{X: 10, Y: 0, YawRad: 0}}}
	lock := NewPoseLock(est, DefaultGains())

	c := clock.NewLoopClock(0)
	signal, mask := lock.Resolve(c, NewDOFMask(Axial, Lateral, Omega))
	if mask != NewDOFMask(Axial, Lateral, Omega) {
		t.Fatal("expected pose lock to claim the full requested mask once pose is available")
	}
	if signal.Axial != 0 {
		t.Errorf("expected zero correction on the capture cycle, got axial=%v", signal.Axial)
	}

	est.est.FieldToRobot.X = 8 // robot drifted backward from the captured pose
	signal, _ = lock.Resolve(c, NewDOFMask(Axial, Lateral, Omega))
	if signal.Axial <= 0 {
		t.Errorf("expected a positive corrective axial command after drifting behind the capture point, got %v", signal.Axial)
	}
}

type mutableEstimator struct {
	est hal.PoseEstimate
}

func (m *mutableEstimator) Estimate() hal.PoseEstimate { return m.est }
