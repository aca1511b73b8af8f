package drive

import (
	"math"

	"robocore-dx/internal/clock"
	"robocore-dx/internal/input"
)

// StickMapperConfig holds the tuning scalars for a dual-stick mapper.
// Copied at construction, per the copy-on-construct convention: later
// mutation of a caller-held StickMapperConfig never affects an already
// built mapper.
type StickMapperConfig struct {
	// Deadband is the input magnitude below which an axis reads zero.
	Deadband float64
	// Expo is the sign-preserving exponent x -> sign(x)*|x|^Expo applied
	// after deadband normalization. 1 means linear.
	Expo float64
	// SlowScale multiplies the final signal while the slow button is
	// held. Must be in (0, 1].
	SlowScale float64
}

// DefaultStickMapperConfig returns no deadband expansion, linear
// response, and no slow-mode attenuation.
func DefaultStickMapperConfig() StickMapperConfig {
	return StickMapperConfig{Deadband: 0.05, Expo: 1, SlowScale: 1}
}

// dualStickMapper maps a player's left/right stick snapshot to a
// DriveSignal using the right-handed dual-stick convention:
// axial = -left_stick_y, lateral = -left_stick_x, omega = -right_stick_x.
type dualStickMapper struct {
	snapshot    func() input.Snapshot
	slowButton  func(input.Snapshot) input.Button
	cfgProvider func() StickMapperConfig
}

// NewDualStickMapper returns a Source that reads a gamepad snapshot via
// snapshot, applies deadband/expo shaping, and multiplies by cfg.SlowScale
// while slowButton reads as pressed. slowButton may be nil to disable
// slow mode entirely. cfg is fixed for the life of the mapper; use
// NewDualStickMapperLive for tuning that can change at runtime (e.g.
// from a config.Watcher).
func NewDualStickMapper(snapshot func() input.Snapshot, slowButton func(input.Snapshot) input.Button, cfg StickMapperConfig) Source {
	return NewDualStickMapperLive(snapshot, slowButton, func() StickMapperConfig { return cfg })
}

// NewDualStickMapperLive is NewDualStickMapper with the tuning scalars
// pulled fresh from cfgProvider every cycle, so a caller backed by a
// config.Watcher picks up retuned deadband/expo/slow-scale values
// without rebuilding the mapper.
func NewDualStickMapperLive(snapshot func() input.Snapshot, slowButton func(input.Snapshot) input.Button, cfgProvider func() StickMapperConfig) Source {
	return &dualStickMapper{snapshot: snapshot, slowButton: slowButton, cfgProvider: cfgProvider}
}

func (m *dualStickMapper) Get(c *clock.LoopClock) Signal {
	snap := m.snapshot()
	cfg := m.cfgProvider()

	axial := shape(-snap.LeftStickY, cfg)
	lateral := shape(-snap.LeftStickX, cfg)
	omega := shape(-snap.RightStickX, cfg)

	signal := Signal{Axial: axial, Lateral: lateral, Omega: omega}
	if m.slowButton != nil && m.slowButton(snap).Pressed() {
		signal = signal.Scaled(cfg.SlowScale)
	}
	return signal
}

// shape applies deadband and expo shaping to a single raw axis reading.
func shape(raw float64, cfg StickMapperConfig) float64 {
	if math.Abs(raw) < cfg.Deadband {
		return 0
	}
	sign := 1.0
	if raw < 0 {
		sign = -1.0
	}
	return sign * math.Pow(math.Abs(raw), cfg.Expo)
}
