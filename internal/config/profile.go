// Package config loads the declarative robot profile — wheel
// inversion, per-axis drive slew rates, stick-mapper tuning, guidance
// tuning, and plant-builder defaults — from a TOML file via a plain
// decode-into-struct pass, since a robot profile is host-editable
// operator configuration rather than machine-emitted build output. It
// also offers an optional fsnotify-backed Watcher that reloads only the
// stick-mapper and guidance tuning scalars on file change, never
// drivebase geometry or plant wiring.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// MecanumGeometry mirrors drive.MecanumConfig's inversion flags plus
// optional rate-limit slews, as loaded from a profile file.
type MecanumGeometry struct {
	FrontLeftInverted  bool `toml:"front_left_inverted"`
	FrontRightInverted bool `toml:"front_right_inverted"`
	BackLeftInverted   bool `toml:"back_left_inverted"`
	BackRightInverted  bool `toml:"back_right_inverted"`
	MaxUpPerSec        float64 `toml:"max_up_per_sec"`
	MaxDownPerSec      float64 `toml:"max_down_per_sec"`
}

// StickTuning is the subset of stick-mapper configuration the Watcher
// is permitted to hot-reload.
type StickTuning struct {
	Deadband  float64 `toml:"deadband"`
	Expo      float64 `toml:"expo"`
	SlowScale float64 `toml:"slow_scale"`
}

// GuidanceTuning is the subset of guidance gate/blend configuration the
// Watcher is permitted to hot-reload.
type GuidanceTuning struct {
	EnterGateInches float64 `toml:"enter_gate_inches"`
	ExitGateInches  float64 `toml:"exit_gate_inches"`
	BlendSeconds    float64 `toml:"blend_seconds"`
}

// PlantDefaults are the staged builder's default tolerances,
// overridable per-profile but fixed for the life of a run.
type PlantDefaults struct {
	MotorPositionTolerance float64 `toml:"motor_position_tolerance"`
	MotorVelocityTolerance float64 `toml:"motor_velocity_tolerance"`
}

// Profile is the full declarative robot configuration loaded from a
// TOML file. Every consumer of a loaded Profile copies it into its own
// fields at construction, per the copy-on-construct convention: later
// mutation of a shared Profile value never reaches an already-built
// component.
type Profile struct {
	Mecanum  MecanumGeometry `toml:"mecanum"`
	Stick    StickTuning     `toml:"stick"`
	Guidance GuidanceTuning  `toml:"guidance"`
	Plants   PlantDefaults   `toml:"plants"`
}

// DefaultProfile returns a Profile populated with sensible defaults, for
// use when no profile file is present.
func DefaultProfile() Profile {
	return Profile{
		Stick: StickTuning{Deadband: 0.05, Expo: 1, SlowScale: 1},
		Plants: PlantDefaults{
			MotorPositionTolerance: 10,
			MotorVelocityTolerance: 100,
		},
	}
}

// Load reads and decodes a Profile from path. A missing file is not an
// error: Load returns DefaultProfile() so a fresh checkout runs without
// operator setup.
func Load(path string) (Profile, error) {
	profile := DefaultProfile()
	if path == "" {
		return profile, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return profile, nil
	}
	if _, err := toml.DecodeFile(path, &profile); err != nil {
		return DefaultProfile(), fmt.Errorf("config: decode %s: %w", path, err)
	}
	return profile, nil
}
