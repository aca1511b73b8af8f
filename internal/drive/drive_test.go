package drive

import (
	"math"
	"testing"

	"robocore-dx/internal/clock"
	"robocore-dx/internal/hal"
	"robocore-dx/internal/input"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

type fakePowerOut struct {
	power   float64
	stopped bool
}

func (f *fakePowerOut) SetPower(x float64) { f.power = x }
func (f *fakePowerOut) Stop()              { f.stopped = true; f.power = 0 }

func TestDriveSignalLerpAndPlusLaws(t *testing.T) {
	a := Signal{Axial: 0.3, Lateral: -0.2, Omega: 0.1}
	for _, tv := range []float64{0, 0.25, 0.5, 1.0} {
		got := a.Lerp(a, tv)
		if !almostEqual(got.Axial, a.Axial) || !almostEqual(got.Lateral, a.Lateral) || !almostEqual(got.Omega, a.Omega) {
			t.Errorf("lerp(a, a, %v) = %v, want %v", tv, got, a)
		}
	}
	if got := a.Plus(Zero); got != a {
		t.Errorf("a.Plus(Zero) = %v, want %v", got, a)
	}
}

func TestDriveSignalClamped(t *testing.T) {
	s := Signal{Axial: 1.5, Lateral: -2.0, Omega: 0.5}
	got := s.Clamped()
	want := Signal{Axial: 1, Lateral: -1, Omega: 0.5}
	if got != want {
		t.Errorf("Clamped() = %v, want %v", got, want)
	}
}

func TestDualStickMapper_ForwardOnlyDrivesAllWheelsEvenly(t *testing.T) {
	mapper := NewDualStickMapper(func() input.Snapshot {
		return input.Snapshot{LeftStickY: -0.5}
	}, nil, DefaultStickMapperConfig())
	c := clock.NewLoopClock(0)
	signal := mapper.Get(c)
	want := Signal{Axial: 0.5, Lateral: 0, Omega: 0}
	if signal != want {
		t.Fatalf("expected signal %v, got %v", want, signal)
	}

	outs := [4]*fakePowerOut{{}, {}, {}, {}}
	db := NewDrivebase(outs[0], outs[1], outs[2], outs[3], MecanumConfig{})
	db.Drive(signal)
	for i, out := range outs {
		if !almostEqual(out.power, 0.5) {
			t.Errorf("wheel %d power = %v, want 0.5", i, out.power)
		}
	}
}

type fixedReader struct{ start bool }

func (f fixedReader) Read(_ hal.Player) hal.RawGamepadState {
	return hal.RawGamepadState{LeftStickY: -0.5, Start: f.start}
}

func TestDualStickMapper_SlowButtonScalesOutput(t *testing.T) {
	gp := input.NewGamepads(fixedReader{start: true})
	c := clock.NewLoopClock(0)
	gp.Update(c)

	mapper := NewDualStickMapper(func() input.Snapshot {
		return gp.Player(hal.Player1)
	}, func(s input.Snapshot) input.Button { return s.Start }, StickMapperConfig{
		Deadband: 0.05, Expo: 1, SlowScale: 0.3,
	})

	got := mapper.Get(c)
	want := Signal{Axial: 0.15, Lateral: 0, Omega: 0}
	if !almostEqual(got.Axial, want.Axial) || got.Lateral != want.Lateral || got.Omega != want.Omega {
		t.Fatalf("expected slow-mode signal %v, got %v", want, got)
	}
}

func TestDualStickMapperLivePicksUpProviderChanges(t *testing.T) {
	deadband := 0.05
	mapper := NewDualStickMapperLive(func() input.Snapshot {
		return input.Snapshot{LeftStickY: -0.5}
	}, nil, func() StickMapperConfig {
		return StickMapperConfig{Deadband: deadband, Expo: 1, SlowScale: 1}
	})
	c := clock.NewLoopClock(0)

	if got := mapper.Get(c); !almostEqual(got.Axial, 0.5) {
		t.Fatalf("expected axial 0.5 before retune, got %v", got.Axial)
	}

	deadband = 0.9
	if got := mapper.Get(c); got.Axial != 0 {
		t.Fatalf("expected axial 0 once deadband exceeds stick magnitude, got %v", got.Axial)
	}
}

func TestMecanumMixingBoundsAndSignConvention(t *testing.T) {
	outs := [4]*fakePowerOut{{}, {}, {}, {}}
	db := NewDrivebase(outs[0], outs[1], outs[2], outs[3], MecanumConfig{})
	db.Drive(Signal{Axial: 1, Lateral: 1, Omega: 1})
	maxMag := 0.0
	for _, out := range outs {
		if math.Abs(out.power) > maxMag {
			maxMag = math.Abs(out.power)
		}
	}
	if maxMag > 1+1e-9 {
		t.Errorf("expected normalized wheel powers <= 1, got max %v", maxMag)
	}
}

func TestMecanumWheelInversionFlipsSign(t *testing.T) {
	outs := [4]*fakePowerOut{{}, {}, {}, {}}
	db := NewDrivebase(outs[0], outs[1], outs[2], outs[3], MecanumConfig{FrontLeftInverted: true})
	db.Drive(Signal{Axial: 0.4})
	if !almostEqual(outs[0].power, -0.4) {
		t.Errorf("expected inverted front-left power -0.4, got %v", outs[0].power)
	}
	if !almostEqual(outs[1].power, 0.4) {
		t.Errorf("expected non-inverted front-right power 0.4, got %v", outs[1].power)
	}
}
