package plant

import (
	"fmt"

	"robocore-dx/internal/hal"
)

// Default tolerances applied when the control-mode stage is not given an
// explicit one.
const (
	DefaultMotorPositionTolerance = 10.0
	DefaultMotorVelocityTolerance = 100.0
)

type hardwareKind int

const (
	kindMotor hardwareKind = iota
	kindServo
	kindCRServo
)

// element is one named piece of hardware added to a group, along with
// its direction. The builder gives elements no other per-element trim:
// a group behind a Fanout gets scale 1 and bias 0 for every child.
type element struct {
	name      string
	direction float64 // +1 or -1, applied as a sign flip at the output adapter
	power     hal.PowerOutput
	position  hal.PositionOutput
}

// HardwareGroup is stage 1 of the builder: it has picked a hardware kind
// (motor, positional servo, or continuous-rotation servo) and accumulates
// same-kind elements via AndSameKind before moving to stage 2.
type HardwareGroup struct {
	kind     hardwareKind
	elements []element
}

// NewMotorGroup starts a builder over a single motor.
func NewMotorGroup(name string, out interface {
	hal.PowerOutput
	hal.PositionOutput
	hal.VelocityOutput
}, direction float64) *HardwareGroup {
	return &HardwareGroup{
		kind: kindMotor,
		elements: []element{{
			name: name, direction: direction,
			power:    out,
			position: out,
		}},
	}
}

// motorCombined lets a single concrete motor driver satisfy both the
// position and velocity output contracts the builder needs without
// forcing callers to hand in two separate handles.
type motorCombined = interface {
	hal.PowerOutput
	hal.PositionOutput
	hal.VelocityOutput
}

// NewServoGroup starts a builder over a single positional servo.
func NewServoGroup(name string, out hal.PositionOutput, direction float64) *HardwareGroup {
	return &HardwareGroup{
		kind:     kindServo,
		elements: []element{{name: name, direction: direction, position: out}},
	}
}

// NewCRServoGroup starts a builder over a single continuous-rotation
// servo, driven in power mode.
func NewCRServoGroup(name string, out hal.PowerOutput, direction float64) *HardwareGroup {
	return &HardwareGroup{
		kind:     kindCRServo,
		elements: []element{{name: name, direction: direction, power: out}},
	}
}

// AndSameKind adds another element of the same hardware kind to the
// group. The builder has no Scale/Bias/Tune stage, so the added element
// carries only its direction. It panics with IncompatibleControlMode if out doesn't satisfy the
// group's kind-specific output interface, since that can only happen
// from a caller wiring the wrong driver type to the wrong group.
func (g *HardwareGroup) AndSameKind(name string, out any, direction float64) *HardwareGroup {
	e := element{name: name, direction: direction}
	switch g.kind {
	case kindMotor:
		m, ok := out.(motorCombined)
		if !ok {
			panic(newBuildError(IncompatibleControlMode, "AndSameKind", fmt.Sprintf("%q does not implement the motor output contract", name)))
		}
		e.power, e.position = m, m
	case kindServo:
		p, ok := out.(hal.PositionOutput)
		if !ok {
			panic(newBuildError(IncompatibleControlMode, "AndSameKind", fmt.Sprintf("%q does not implement hal.PositionOutput", name)))
		}
		e.position = p
	case kindCRServo:
		p, ok := out.(hal.PowerOutput)
		if !ok {
			panic(newBuildError(IncompatibleControlMode, "AndSameKind", fmt.Sprintf("%q does not implement hal.PowerOutput", name)))
		}
		e.power = p
	}
	g.elements = append(g.elements, e)
	return g
}

// lastIndex returns the index of the most recently added element.
func (g *HardwareGroup) lastIndex() int { return len(g.elements) - 1 }

// Power moves to control mode Power. Valid for motor and cr-servo groups;
// panics with IncompatibleControlMode for a servo group.
func (g *HardwareGroup) Power() *PowerModeGroup {
	if g.kind == kindServo {
		panic(newBuildError(IncompatibleControlMode, "Power", "positional servos only support Position() control mode"))
	}
	return &PowerModeGroup{group: g}
}

// Velocity moves to control mode Velocity, with an optional explicit
// tolerance (first element of tol, if given). Valid only for motor
// groups.
func (g *HardwareGroup) Velocity(tol ...float64) *VelocityModeGroup {
	if g.kind != kindMotor {
		panic(newBuildError(IncompatibleControlMode, "Velocity", "velocity control mode requires a motor group"))
	}
	tolerance := DefaultMotorVelocityTolerance
	if len(tol) > 0 {
		tolerance = tol[0]
	}
	if tolerance < 0 {
		panic(newBuildError(InvalidConfig, "Velocity", "tolerance must be >= 0"))
	}
	return &VelocityModeGroup{group: g, tolerance: tolerance}
}

// Position moves to control mode Position, with an optional explicit
// tolerance for motor groups (ignored, and must not be supplied, for
// servo groups since a positional servo has no tolerance concept).
func (g *HardwareGroup) Position(tol ...float64) *PositionModeGroup {
	if g.kind == kindCRServo {
		panic(newBuildError(IncompatibleControlMode, "Position", "continuous-rotation servos only support Power() control mode"))
	}
	if g.kind == kindServo && len(tol) > 0 {
		panic(newBuildError(InvalidConfig, "Position", "positional servos have no feedback tolerance"))
	}
	tolerance := DefaultMotorPositionTolerance
	if len(tol) > 0 {
		tolerance = tol[0]
	}
	if tolerance < 0 {
		panic(newBuildError(InvalidConfig, "Position", "tolerance must be >= 0"))
	}
	return &PositionModeGroup{group: g, tolerance: tolerance}
}

// --- stage 2: control-mode groups ---

// PowerModeGroup is stage 2 with Power control mode selected.
type PowerModeGroup struct{ group *HardwareGroup }

// VelocityModeGroup is stage 2 with Velocity control mode selected.
type VelocityModeGroup struct {
	group     *HardwareGroup
	tolerance float64
}

// PositionModeGroup is stage 2 with Position control mode selected.
type PositionModeGroup struct {
	group     *HardwareGroup
	tolerance float64
}

func (g *PowerModeGroup) buildPlants() []Plant {
	out := make([]Plant, len(g.group.elements))
	for i, e := range g.group.elements {
		out[i] = NewPower(signedPower{e.power, e.direction})
	}
	return out
}

func (g *VelocityModeGroup) buildPlants() []Plant {
	out := make([]Plant, len(g.group.elements))
	for i, e := range g.group.elements {
		m, ok := e.power.(hal.VelocityOutput)
		if !ok {
			panic(newBuildError(IncompatibleControlMode, "Velocity", fmt.Sprintf("%q was not wired with a velocity-capable driver", e.name)))
		}
		out[i] = NewMotorVelocity(signedVelocity{m, e.direction}, g.tolerance)
	}
	return out
}

func (g *PositionModeGroup) buildPlants() []Plant {
	out := make([]Plant, len(g.group.elements))
	for i, e := range g.group.elements {
		if g.group.kind == kindServo {
			out[i] = NewServoPosition(signedPosition{e.position, e.direction})
		} else {
			out[i] = NewMotorPosition(signedPosition{e.position, e.direction}, g.tolerance)
		}
	}
	return out
}

// Modifiers returns stage 3 over the assembled group's plant(s), wrapped
// in a Fanout automatically when the group has more than one element.
func (g *PowerModeGroup) Modifiers() *ModifierStage { return newModifierStage(g.buildPlants()) }
func (g *VelocityModeGroup) Modifiers() *ModifierStage { return newModifierStage(g.buildPlants()) }
func (g *PositionModeGroup) Modifiers() *ModifierStage { return newModifierStage(g.buildPlants()) }

// Build is shorthand for Modifiers().Build() when no modifiers are
// needed.
func (g *PowerModeGroup) Build() Plant    { return g.Modifiers().Build() }
func (g *VelocityModeGroup) Build() Plant { return g.Modifiers().Build() }
func (g *PositionModeGroup) Build() Plant { return g.Modifiers().Build() }

// RateLimit is shorthand for Modifiers().RateLimit(...).
func (g *PowerModeGroup) RateLimit(rates ...float64) *ModifierStage {
	return g.Modifiers().RateLimit(rates...)
}
func (g *VelocityModeGroup) RateLimit(rates ...float64) *ModifierStage {
	return g.Modifiers().RateLimit(rates...)
}
func (g *PositionModeGroup) RateLimit(rates ...float64) *ModifierStage {
	return g.Modifiers().RateLimit(rates...)
}

// --- stage 3: modifiers + build ---

// ModifierStage is stage 3: the assembled, possibly fanned-out Plant,
// plus optional decorators, ending in Build.
type ModifierStage struct {
	plant Plant
}

func newModifierStage(plants []Plant) *ModifierStage {
	var p Plant
	if len(plants) == 1 {
		p = plants[0]
	} else {
		p = NewFanout(plants...)
	}
	return &ModifierStage{plant: p}
}

// RateLimit wraps the current plant in a RateLimited decorator. With one
// argument it is a symmetric max-delta-per-second; with two, (up, down).
// It panics with InvalidConfig if an argument is negative or if called
// with more than two arguments.
func (m *ModifierStage) RateLimit(rates ...float64) *ModifierStage {
	var up, down float64
	switch len(rates) {
	case 1:
		up, down = rates[0], rates[0]
	case 2:
		up, down = rates[0], rates[1]
	default:
		panic(newBuildError(InvalidConfig, "RateLimit", "expected 1 (symmetric) or 2 (up, down) arguments"))
	}
	m.plant = NewRateLimited(m.plant, up, down)
	return m
}

// Interlock wraps the current plant in an Interlock decorator.
func (m *ModifierStage) Interlock(condition func() bool, blockedTarget float64) *ModifierStage {
	m.plant = NewInterlock(m.plant, condition, blockedTarget)
	return m
}

// Build finalizes the staged construction and returns the composed
// Plant.
func (m *ModifierStage) Build() Plant { return m.plant }

// --- sign-flipping output adapters ---
//
// Per-hardware inversion is applied at the builder boundary so every
// downstream Plant and decorator only ever deals in the canonical sign
// convention.

type signedPower struct {
	hal.PowerOutput
	direction float64
}

func (s signedPower) SetPower(x float64) { s.PowerOutput.SetPower(x * s.direction) }

type signedPosition struct {
	hal.PositionOutput
	direction float64
}

func (s signedPosition) SetPosition(x float64) { s.PositionOutput.SetPosition(x * s.direction) }
func (s signedPosition) MeasuredPosition() float64 {
	return s.PositionOutput.MeasuredPosition() * s.direction
}

type signedVelocity struct {
	hal.VelocityOutput
	direction float64
}

func (s signedVelocity) SetVelocity(x float64) { s.VelocityOutput.SetVelocity(x * s.direction) }
func (s signedVelocity) MeasuredVelocity() float64 {
	return s.VelocityOutput.MeasuredVelocity() * s.direction
}
