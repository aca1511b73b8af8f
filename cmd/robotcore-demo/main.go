package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"robocore-dx/internal/config"
	"robocore-dx/internal/debug"
	"robocore-dx/internal/drive"
	"robocore-dx/internal/guidance"
	"robocore-dx/internal/hal"
	"robocore-dx/internal/hostadapter/sdlgamepad"
	"robocore-dx/internal/input"
	"robocore-dx/internal/task"
	"robocore-dx/internal/telemetry/fynedash"

	"robocore-dx/internal/clock"
)

const tickHz = 50

func main() {
	profilePath := flag.String("profile", "", "Path to a TOML robot profile (default: built-in defaults)")
	useSDL := flag.Bool("sdl", false, "Poll a real SDL2 game controller instead of the synthetic demo driver")
	dashboard := flag.Bool("dashboard", false, "Open a live Fyne telemetry dashboard")
	seconds := flag.Float64("seconds", 0, "Stop after this many seconds of ticking (0 = run until killed)")
	flag.Parse()

	profile, err := config.Load(*profilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "robotcore-demo: %v\n", err)
		os.Exit(1)
	}

	var reader hal.GamepadReader
	if *useSDL {
		sdlReader, err := sdlgamepad.Open()
		if err != nil {
			fmt.Fprintf(os.Stderr, "robotcore-demo: sdl controller init failed: %v\n", err)
			os.Exit(1)
		}
		defer sdlReader.Close()
		reader = sdlReader
	} else {
		reader = demoReader{}
	}

	recorder := debug.NewRecorder(2048)
	driveLog := recorder.ForComponent(debug.ComponentDrive)
	plantLog := recorder.ForComponent(debug.ComponentPlant)

	fl := &consoleMotor{name: "front_left", sink: plantLog}
	fr := &consoleMotor{name: "front_right", sink: plantLog}
	bl := &consoleMotor{name: "back_left", sink: plantLog}
	br := &consoleMotor{name: "back_right", sink: plantLog}

	mecanumCfg := drive.MecanumConfig{
		FrontLeftInverted:  profile.Mecanum.FrontLeftInverted,
		FrontRightInverted: profile.Mecanum.FrontRightInverted,
		BackLeftInverted:   profile.Mecanum.BackLeftInverted,
		BackRightInverted:  profile.Mecanum.BackRightInverted,
		MaxUpPerSec:        profile.Mecanum.MaxUpPerSec,
		MaxDownPerSec:      profile.Mecanum.MaxDownPerSec,
	}
	base := drive.NewDrivebase(fl, fr, bl, br, mecanumCfg)

	gamepads := input.NewGamepads(reader)
	bindings := input.NewBindings()
	runner := task.NewRunner()

	watcher, err := config.NewWatcher(*profilePath, profile, func(err error) {
		driveLog.AddLine(fmt.Sprintf("config watcher error: %v", err))
	})
	if err != nil && *profilePath != "" {
		driveLog.AddLine(fmt.Sprintf("config watcher disabled: %v", err))
	}
	if watcher != nil {
		defer watcher.Close()
	}

	slowButton := func(s input.Snapshot) input.Button { return s.RightBumper }
	cfgProvider := func() drive.StickMapperConfig {
		if watcher != nil {
			tuning := watcher.Stick()
			return drive.StickMapperConfig{Deadband: tuning.Deadband, Expo: tuning.Expo, SlowScale: tuning.SlowScale}
		}
		return drive.StickMapperConfig{
			Deadband:  profile.Stick.Deadband,
			Expo:      profile.Stick.Expo,
			SlowScale: profile.Stick.SlowScale,
		}
	}
	stickSource := drive.NewDualStickMapperLive(func() input.Snapshot { return gamepads.Player(hal.Player1) }, slowButton, cfgProvider)

	stack := guidance.NewOverlayStack(stickSource).Build()

	bindings.OnPress(func(s input.Snapshot) input.Button { return s.Back }, func() {
		runner.Clear()
		driveLog.AddLine("runner cleared by Back button")
	})

	if *dashboard {
		dash := fynedash.New(recorder, fynedash.Title("robotcore-demo", debug.ComponentDrive, debug.ComponentPlant))
		go runLoop(*seconds, gamepads, bindings, runner, base, stack, driveLog)
		dash.Run()
		return
	}

	runLoop(*seconds, gamepads, bindings, runner, base, stack, driveLog)
}

func runLoop(
	seconds float64,
	gamepads *input.Gamepads,
	bindings *input.Bindings,
	runner *task.Runner,
	base *drive.Drivebase,
	stack drive.Source,
	driveLog debug.Sink,
) {
	loopClock := clock.NewLoopClock(0)
	start := time.Now()
	ticker := time.NewTicker(time.Second / tickHz)
	defer ticker.Stop()

	for range ticker.C {
		elapsed := time.Since(start).Seconds()
		loopClock.Update(elapsed)

		gamepads.Update(loopClock)
		bindings.Fire(gamepads.Player(hal.Player1), loopClock.Cycle())
		runner.Update(loopClock)

		base.Update(loopClock)
		signal := stack.Get(loopClock)
		base.Drive(signal)
		driveLog.AddData("axial", signal.Axial)
		driveLog.AddData("lateral", signal.Lateral)
		driveLog.AddData("omega", signal.Omega)

		if seconds > 0 && elapsed >= seconds {
			base.Stop()
			return
		}
	}
}

// demoReader is a deterministic gamepad substitute for running the demo
// without physical hardware attached: a slow circling drive command so
// the recorder and dashboard have something to show.
type demoReader struct{}

func (demoReader) Read(player hal.Player) hal.RawGamepadState {
	if player != hal.Player1 {
		return hal.RawGamepadState{}
	}
	t := time.Since(demoStart).Seconds()
	return hal.RawGamepadState{
		LeftStickY:  -0.5,
		RightStickX: 0.2 * math.Sin(t),
	}
}

var demoStart = time.Now()

// consoleMotor is a debug.Sink-backed hal.PowerOutput standing in for a real
// motor driver SDK, so this demo runs without any hardware attached:
// every commanded power is logged through a debug.Sink instead of
// driving a motor.
type consoleMotor struct {
	name string
	sink debug.Sink
}

func (m *consoleMotor) SetPower(x float64) {
	m.sink.AddData(m.name+"_power", x)
}

func (m *consoleMotor) Stop() {
	m.sink.AddLine(m.name + " stopped")
}
