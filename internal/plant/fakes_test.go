package plant

// fakePower is a minimal hal.PowerOutput test double.
type fakePower struct {
	power   float64
	stopped bool
}

func (f *fakePower) SetPower(x float64) { f.power = x }
func (f *fakePower) Stop()              { f.stopped = true; f.power = 0 }

// fakePositional is a minimal hal.PositionOutput test double with a
// settable measured position, so tests can simulate encoder feedback.
type fakePositional struct {
	commanded float64
	measured  float64
	stopped   bool
}

func (f *fakePositional) SetPosition(x float64)     { f.commanded = x }
func (f *fakePositional) MeasuredPosition() float64 { return f.measured }
func (f *fakePositional) Stop()                     { f.stopped = true }

// fakeVelocity is a minimal hal.VelocityOutput test double.
type fakeVelocity struct {
	commanded float64
	measured  float64
	stopped   bool
}

func (f *fakeVelocity) SetVelocity(x float64)       { f.commanded = x }
func (f *fakeVelocity) MeasuredVelocity() float64   { return f.measured }
func (f *fakeVelocity) Stop()                       { f.stopped = true }

// fakeMotor satisfies the combined motor output contract so builder
// tests can exercise the staged power/velocity/position branches off a
// single fake.
type fakeMotor struct {
	power             float64
	commandedPosition float64
	measuredPosition  float64
	commandedVelocity float64
	measuredVelocity  float64
	stopped           bool
}

func (f *fakeMotor) SetPower(x float64)       { f.power = x }
func (f *fakeMotor) SetPosition(x float64)     { f.commandedPosition = x }
func (f *fakeMotor) MeasuredPosition() float64 { return f.measuredPosition }
func (f *fakeMotor) SetVelocity(x float64)     { f.commandedVelocity = x }
func (f *fakeMotor) MeasuredVelocity() float64 { return f.measuredVelocity }
func (f *fakeMotor) Stop()                     { f.stopped = true }
