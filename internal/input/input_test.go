package input

import (
	"testing"

	"robocore-dx/internal/clock"
	"robocore-dx/internal/hal"
)

type scriptedReader struct {
	frames []hal.RawGamepadState
	index  int
}

func (s *scriptedReader) Read(player hal.Player) hal.RawGamepadState {
	if player != hal.Player1 {
		return hal.RawGamepadState{}
	}
	if s.index >= len(s.frames) {
		return s.frames[len(s.frames)-1]
	}
	return s.frames[s.index]
}

func TestButtonEdgeDetection(t *testing.T) {
	var b Button
	b.advance(false)
	if b.Pressed() || b.JustPressed() || b.JustReleased() {
		t.Fatal("expected no edges on an unpressed button")
	}
	b.advance(true)
	if !b.Pressed() || !b.JustPressed() {
		t.Error("expected JustPressed on the rising edge")
	}
	b.advance(true)
	if !b.Pressed() || b.JustPressed() {
		t.Error("expected Pressed but not JustPressed while held")
	}
	b.advance(false)
	if b.Pressed() || !b.JustReleased() {
		t.Error("expected JustReleased on the falling edge")
	}
}

func TestGamepadsUpdateIsIdempotentPerCycle(t *testing.T) {
	reader := &scriptedReader{frames: []hal.RawGamepadState{
		{A: true},
		{A: true},
	}}
	gp := NewGamepads(reader)
	c := clock.NewLoopClock(0)

	gp.Update(c)
	if !gp.Player(hal.Player1).A.JustPressed() {
		t.Fatal("expected A to read as just pressed on first update")
	}
	reader.index = 1

	// Calling Update again within the same cycle must not re-poll.
	gp.Update(c)
	if !gp.Player(hal.Player1).A.JustPressed() {
		t.Error("expected same-cycle Update to be a no-op, still JustPressed")
	}

	c.Update(c.Now() + 0.02)
	gp.Update(c)
	if gp.Player(hal.Player1).A.JustPressed() {
		t.Error("expected A to no longer be JustPressed once the next cycle polls again")
	}
	if !gp.Player(hal.Player1).A.Pressed() {
		t.Error("expected A to still be held")
	}
}

func TestBindingsFireOnPressOnceAndWhileHeldSameCycleAsPress(t *testing.T) {
	binds := NewBindings()
	pressCount := 0
	heldCount := 0
	binds.OnPress(func(s Snapshot) Button { return s.A }, func() { pressCount++ })
	binds.WhileHeld(func(s Snapshot) Button { return s.A }, func() { heldCount++ })

	var snap Snapshot
	snap.A.advance(true) // rising edge this cycle

	binds.Fire(snap, 0)
	if pressCount != 1 {
		t.Errorf("expected OnPress to fire once on the press cycle, got %d", pressCount)
	}
	if heldCount != 1 {
		t.Errorf("expected WhileHeld to fire on the same cycle as the press, got %d", heldCount)
	}

	// Same cycle number again: must be a no-op.
	binds.Fire(snap, 0)
	if pressCount != 1 || heldCount != 1 {
		t.Error("expected repeated Fire with the same cycle number to be a no-op")
	}

	snap.A.advance(true) // still held, next cycle
	binds.Fire(snap, 1)
	if pressCount != 1 {
		t.Error("OnPress should not re-fire while held")
	}
	if heldCount != 2 {
		t.Errorf("expected WhileHeld to keep firing while held, got %d", heldCount)
	}
}

func TestBindingsFireOnRelease(t *testing.T) {
	binds := NewBindings()
	releaseCount := 0
	binds.OnRelease(func(s Snapshot) Button { return s.B }, func() { releaseCount++ })

	var snap Snapshot
	snap.B.advance(true)
	binds.Fire(snap, 0)
	if releaseCount != 0 {
		t.Fatal("should not fire release while pressed")
	}
	snap.B.advance(false)
	binds.Fire(snap, 1)
	if releaseCount != 1 {
		t.Errorf("expected release to fire once on the falling edge, got %d", releaseCount)
	}
}
