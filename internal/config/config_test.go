package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "does_not_exist.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := DefaultProfile()
	if p != want {
		t.Errorf("expected default profile for a missing file, got %+v", p)
	}
}

func TestLoadDecodesProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.toml")
	contents := `
[mecanum]
front_left_inverted = true
max_up_per_sec = 2.0

[stick]
deadband = 0.08
expo = 2
slow_scale = 0.4

[plants]
motor_position_tolerance = 15
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Mecanum.FrontLeftInverted || p.Mecanum.MaxUpPerSec != 2.0 {
		t.Errorf("unexpected mecanum config: %+v", p.Mecanum)
	}
	if p.Stick.Deadband != 0.08 || p.Stick.Expo != 2 || p.Stick.SlowScale != 0.4 {
		t.Errorf("unexpected stick tuning: %+v", p.Stick)
	}
	if p.Plants.MotorPositionTolerance != 15 {
		t.Errorf("unexpected plant defaults: %+v", p.Plants)
	}
}

func TestWatcherReloadsTuningOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.toml")
	initial := "[stick]\ndeadband = 0.05\nexpo = 1\nslow_scale = 1\n"
	if err := os.WriteFile(path, []byte(initial), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	seed, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w, err := NewWatcher(path, seed, nil)
	if err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}
	defer w.Close()

	if w.Stick().SlowScale != 1 {
		t.Fatalf("expected seeded slow_scale 1, got %v", w.Stick().SlowScale)
	}

	updated := "[stick]\ndeadband = 0.05\nexpo = 1\nslow_scale = 0.25\n"
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		t.Fatalf("failed to rewrite fixture: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if w.Stick().SlowScale == 0.25 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected watcher to pick up slow_scale=0.25 within the deadline, got %v", w.Stick().SlowScale)
}
