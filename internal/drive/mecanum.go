package drive

import (
	"math"

	"robocore-dx/internal/clock"
	"robocore-dx/internal/hal"
)

// MecanumConfig describes drivebase geometry and per-wheel inversion.
// Copied at construction.
type MecanumConfig struct {
	FrontLeftInverted  bool
	FrontRightInverted bool
	BackLeftInverted   bool
	BackRightInverted  bool

	// MaxUpPerSec/MaxDownPerSec, if either is nonzero, rate-limit the
	// incoming signal's magnitude per axis before mixing. Both zero
	// disables rate limiting; when only one is zero, the magnitude
	// cannot change at all in that direction.
	MaxUpPerSec   float64
	MaxDownPerSec float64
}

// Drivebase mixes a robot-centric Signal into four wheel powers and
// applies per-wheel inversion and magnitude normalization. update only
// advances its internal rate-limiter timing; drive is the sole
// actuation call and never blocks.
type Drivebase struct {
	cfg MecanumConfig

	fl, fr, bl, br hal.PowerOutput

	current Signal
	dt      float64
}

// NewDrivebase returns a Drivebase wired to the four wheel outputs in
// front-left, front-right, back-left, back-right order.
func NewDrivebase(fl, fr, bl, br hal.PowerOutput, cfg MecanumConfig) *Drivebase {
	return &Drivebase{fl: fl, fr: fr, bl: bl, br: br, cfg: cfg}
}

// Update advances the drivebase's rate-limiter timing using the clock's
// current dt. It performs no hardware I/O.
func (d *Drivebase) Update(c *clock.LoopClock) {
	d.dt = c.Dt()
}

// Drive mixes signal into wheel powers and applies them. If rate
// limiting is configured, it slews the in-flight signal toward the
// requested one using the dt captured by the most recent Update (or the
// previous cycle's dt if Update was not called this cycle).
func (d *Drivebase) Drive(signal Signal) {
	target := signal.Clamped()
	if d.cfg.MaxUpPerSec > 0 || d.cfg.MaxDownPerSec > 0 {
		target = d.slew(target)
	}
	d.current = target

	fl := target.Axial + target.Lateral + target.Omega
	fr := target.Axial - target.Lateral - target.Omega
	bl := target.Axial - target.Lateral + target.Omega
	br := target.Axial + target.Lateral - target.Omega

	if d.cfg.FrontLeftInverted {
		fl = -fl
	}
	if d.cfg.FrontRightInverted {
		fr = -fr
	}
	if d.cfg.BackLeftInverted {
		bl = -bl
	}
	if d.cfg.BackRightInverted {
		br = -br
	}

	maxMag := math.Abs(fl)
	maxMag = math.Max(maxMag, math.Abs(fr))
	maxMag = math.Max(maxMag, math.Abs(bl))
	maxMag = math.Max(maxMag, math.Abs(br))
	if maxMag > 1 {
		fl /= maxMag
		fr /= maxMag
		bl /= maxMag
		br /= maxMag
	}

	d.fl.SetPower(fl)
	d.fr.SetPower(fr)
	d.bl.SetPower(bl)
	d.br.SetPower(br)
}

func (d *Drivebase) slew(target Signal) Signal {
	return Signal{
		Axial:   slewAxis(d.current.Axial, target.Axial, d.dt, d.cfg.MaxUpPerSec, d.cfg.MaxDownPerSec),
		Lateral: slewAxis(d.current.Lateral, target.Lateral, d.dt, d.cfg.MaxUpPerSec, d.cfg.MaxDownPerSec),
		Omega:   slewAxis(d.current.Omega, target.Omega, d.dt, d.cfg.MaxUpPerSec, d.cfg.MaxDownPerSec),
	}
}

// slewAxis moves current toward desired at most maxUp (increasing
// magnitude) or maxDown (decreasing magnitude) per second of dt. A rate
// of 0 for either direction allows no movement in that direction, the
// same as the plant package's RateLimited.
func slewAxis(current, desired, dt, maxUp, maxDown float64) float64 {
	delta := desired - current
	increasing := math.Abs(desired) > math.Abs(current)
	var maxStep float64
	if increasing {
		maxStep = maxUp * dt
	} else {
		maxStep = maxDown * dt
	}
	if delta > maxStep {
		delta = maxStep
	}
	if delta < -maxStep {
		delta = -maxStep
	}
	return current + delta
}

// Stop commands all four wheels to zero power immediately, bypassing
// rate limiting.
func (d *Drivebase) Stop() {
	d.current = Zero
	d.fl.Stop()
	d.fr.Stop()
	d.bl.Stop()
	d.br.Stop()
}
