package clock

import "testing"

func TestNewLoopClockStartsAtCycleZero(t *testing.T) {
	c := NewLoopClock(10)
	if c.Cycle() != 0 {
		t.Errorf("expected cycle 0 at construction, got %d", c.Cycle())
	}
	if c.Dt() != 0 {
		t.Errorf("expected dt 0 at construction, got %v", c.Dt())
	}
}

func TestUpdateAdvancesDtAndCycle(t *testing.T) {
	c := NewLoopClock(10)
	c.Update(10.5)
	if c.Dt() != 0.5 {
		t.Errorf("expected dt 0.5, got %v", c.Dt())
	}
	if c.Cycle() != 1 {
		t.Errorf("expected cycle 1, got %d", c.Cycle())
	}
	c.Update(11.5)
	if c.Dt() != 1.0 {
		t.Errorf("expected dt 1.0, got %v", c.Dt())
	}
	if c.Cycle() != 2 {
		t.Errorf("expected cycle 2, got %d", c.Cycle())
	}
}

func TestUpdateNeverGoesNegativeDt(t *testing.T) {
	c := NewLoopClock(10)
	c.Update(5) // time went backwards
	if c.Dt() != 0 {
		t.Errorf("expected dt clamped to 0 on backwards time, got %v", c.Dt())
	}
}

func TestResetReanchorsButKeepsCycle(t *testing.T) {
	c := NewLoopClock(0)
	c.Update(1)
	c.Update(2)
	if c.Cycle() != 2 {
		t.Fatalf("setup: expected cycle 2, got %d", c.Cycle())
	}
	c.Reset(100)
	if c.Dt() != 0 {
		t.Errorf("expected dt 0 after reset, got %v", c.Dt())
	}
	if c.Cycle() != 2 {
		t.Errorf("expected Reset to leave cycle unchanged, got %d", c.Cycle())
	}
	c.Update(100)
	if c.Dt() != 0 {
		t.Errorf("reset(100); update(100) should yield dt 0, got %v", c.Dt())
	}
	if c.Cycle() != 3 {
		t.Errorf("reset(100); update(100) should yield cycle 3, got %d", c.Cycle())
	}
}
