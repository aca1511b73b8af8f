package input

import (
	"robocore-dx/internal/clock"
	"robocore-dx/internal/hal"
)

// Snapshot is one player's fully edge-detected gamepad state for the
// current cycle.
type Snapshot struct {
	LeftStickX, LeftStickY     float64
	RightStickX, RightStickY   float64
	LeftTrigger, RightTrigger  float64

	A, B, X, Y              Button
	LeftBumper, RightBumper Button
	DpadUp, DpadDown        Button
	DpadLeft, DpadRight     Button
	Start, Back             Button
}

// Gamepads polls both player gamepads at most once per cycle and
// exposes their edge-detected snapshots.
type Gamepads struct {
	reader          hal.GamepadReader
	snapshots       [2]Snapshot
	lastUpdateCycle int64
	haveUpdated     bool
}

// NewGamepads returns a Gamepads driven by reader.
func NewGamepads(reader hal.GamepadReader) *Gamepads {
	return &Gamepads{reader: reader}
}

// Update polls both players' raw state and advances edge detection.
// Calling it more than once within the same cycle is a no-op.
func (g *Gamepads) Update(c *clock.LoopClock) {
	if g.haveUpdated && g.lastUpdateCycle == c.Cycle() {
		return
	}
	g.haveUpdated = true
	g.lastUpdateCycle = c.Cycle()

	g.poll(hal.Player1, &g.snapshots[0])
	g.poll(hal.Player2, &g.snapshots[1])
}

func (g *Gamepads) poll(player hal.Player, snap *Snapshot) {
	raw := g.reader.Read(player)
	snap.LeftStickX = raw.LeftStickX
	snap.LeftStickY = raw.LeftStickY
	snap.RightStickX = raw.RightStickX
	snap.RightStickY = raw.RightStickY
	snap.LeftTrigger = raw.LeftTrigger
	snap.RightTrigger = raw.RightTrigger

	snap.A.advance(raw.A)
	snap.B.advance(raw.B)
	snap.X.advance(raw.X)
	snap.Y.advance(raw.Y)
	snap.LeftBumper.advance(raw.LeftBumper)
	snap.RightBumper.advance(raw.RightBumper)
	snap.DpadUp.advance(raw.DpadUp)
	snap.DpadDown.advance(raw.DpadDown)
	snap.DpadLeft.advance(raw.DpadLeft)
	snap.DpadRight.advance(raw.DpadRight)
	snap.Start.advance(raw.Start)
	snap.Back.advance(raw.Back)
}

// Player returns the current-cycle snapshot for the given player.
func (g *Gamepads) Player(player hal.Player) Snapshot {
	return g.snapshots[player]
}
