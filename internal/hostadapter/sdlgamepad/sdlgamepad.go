// Package sdlgamepad implements hal.GamepadReader by polling SDL2's
// game-controller API once per cycle: pump pending events, then read
// the latest axis and button state straight through. It is a host
// adapter living outside the core package tree: internal/input only
// consumes the hal.GamepadReader interface this package implements, and
// never imports go-sdl2 itself.
package sdlgamepad

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"robocore-dx/internal/hal"
)

// Reader polls up to two open SDL2 game controllers, indexed by join
// order (the first controller opened is hal.Player1).
type Reader struct {
	controllers [2]*sdl.GameController
}

// Open initializes the SDL2 game-controller subsystem and opens every
// currently attached controller, up to two. It is safe to call once at
// host startup, before the tick loop begins; this package never
// re-polls SDL's attach/detach events mid-run.
func Open() (*Reader, error) {
	if err := sdl.Init(sdl.INIT_GAMECONTROLLER); err != nil {
		return nil, fmt.Errorf("sdlgamepad: init: %w", err)
	}
	r := &Reader{}
	opened := 0
	for i := 0; i < sdl.NumJoysticks() && opened < 2; i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		controller := sdl.GameControllerOpen(i)
		if controller == nil {
			continue
		}
		r.controllers[opened] = controller
		opened++
	}
	return r, nil
}

// Read polls one controller's current axis and button state. It
// returns the zero RawGamepadState if no controller is open for player.
func (r *Reader) Read(player hal.Player) hal.RawGamepadState {
	sdl.PumpEvents()
	idx := int(player)
	if idx < 0 || idx >= len(r.controllers) || r.controllers[idx] == nil {
		return hal.RawGamepadState{}
	}
	c := r.controllers[idx]

	return hal.RawGamepadState{
		LeftStickX:  axisToFloat(c.Axis(sdl.CONTROLLER_AXIS_LEFTX)),
		LeftStickY:  axisToFloat(c.Axis(sdl.CONTROLLER_AXIS_LEFTY)),
		RightStickX: axisToFloat(c.Axis(sdl.CONTROLLER_AXIS_RIGHTX)),
		RightStickY: axisToFloat(c.Axis(sdl.CONTROLLER_AXIS_RIGHTY)),
		LeftTrigger: triggerToFloat(c.Axis(sdl.CONTROLLER_AXIS_TRIGGERLEFT)),
		RightTrigger: triggerToFloat(c.Axis(sdl.CONTROLLER_AXIS_TRIGGERRIGHT)),

		A:           c.Button(sdl.CONTROLLER_BUTTON_A) != 0,
		B:           c.Button(sdl.CONTROLLER_BUTTON_B) != 0,
		X:           c.Button(sdl.CONTROLLER_BUTTON_X) != 0,
		Y:           c.Button(sdl.CONTROLLER_BUTTON_Y) != 0,
		LeftBumper:  c.Button(sdl.CONTROLLER_BUTTON_LEFTSHOULDER) != 0,
		RightBumper: c.Button(sdl.CONTROLLER_BUTTON_RIGHTSHOULDER) != 0,
		DpadUp:      c.Button(sdl.CONTROLLER_BUTTON_DPAD_UP) != 0,
		DpadDown:    c.Button(sdl.CONTROLLER_BUTTON_DPAD_DOWN) != 0,
		DpadLeft:    c.Button(sdl.CONTROLLER_BUTTON_DPAD_LEFT) != 0,
		DpadRight:   c.Button(sdl.CONTROLLER_BUTTON_DPAD_RIGHT) != 0,
		Start:       c.Button(sdl.CONTROLLER_BUTTON_START) != 0,
		Back:        c.Button(sdl.CONTROLLER_BUTTON_BACK) != 0,
	}
}

// axisToFloat converts an SDL signed 16-bit axis reading to [-1, 1].
func axisToFloat(raw int16) float64 {
	if raw < 0 {
		return float64(raw) / 32768.0
	}
	return float64(raw) / 32767.0
}

// triggerToFloat converts an SDL unsigned-range trigger axis (SDL
// reports triggers as a signed int16 in [0, 32767]) to [0, 1].
func triggerToFloat(raw int16) float64 {
	if raw < 0 {
		return 0
	}
	return float64(raw) / 32767.0
}

// Close releases every opened controller and shuts down the
// game-controller subsystem.
func (r *Reader) Close() {
	for _, c := range r.controllers {
		if c != nil {
			c.Close()
		}
	}
	sdl.QuitSubSystem(sdl.INIT_GAMECONTROLLER)
}
