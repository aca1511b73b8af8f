// Package input turns a per-cycle polled gamepad snapshot into
// edge-detected button state and a binding registry that fires
// callbacks idempotently per cycle. Every cycle's poll is compared
// against the previous cycle's to derive pressed_now versus
// pressed_prev, so an edge is detected purely from consecutive polls
// rather than from any external strobe.
package input

// Button is a single digital control's state for the current cycle,
// with enough history to detect edges.
type Button struct {
	pressedNow  bool
	pressedPrev bool
}

// Pressed reports whether the button is held down this cycle.
func (b Button) Pressed() bool { return b.pressedNow }

// JustPressed reports whether the button transitioned from released to
// pressed on this cycle.
func (b Button) JustPressed() bool { return b.pressedNow && !b.pressedPrev }

// JustReleased reports whether the button transitioned from pressed to
// released on this cycle.
func (b Button) JustReleased() bool { return !b.pressedNow && b.pressedPrev }

// advance rolls the previous reading into history and records pressed
// as this cycle's reading.
func (b *Button) advance(pressed bool) {
	b.pressedPrev = b.pressedNow
	b.pressedNow = pressed
}
