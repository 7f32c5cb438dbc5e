package core

// ControlPort translates logical stopwatch commands into the pulse protocol
// the peripheral requires. The control registers are edge-triggered: a
// command is a momentary assert-then-deassert pair, and a level held high
// would be mis-specified. Each method performs both writes itself so the
// pair can never be split across call sites.
//
// The port has no state of its own. It caches nothing and never reorders
// the two writes; ordering is the entire contract.
type ControlPort struct {
	drv StopwatchDriver
}

// NewControlPort wraps a registered stopwatch driver.
func NewControlPort(d StopwatchDriver) *ControlPort {
	return &ControlPort{drv: d}
}

// Reset pulses the reset line, forcing the hardware counters to zero and
// its state machine to RESET.
func (p *ControlPort) Reset() {
	p.drv.SetReset(true)
	p.drv.SetReset(false)
}

// Start pulses the start line, transitioning the hardware to RUNNING.
func (p *ControlPort) Start() {
	p.drv.SetStart(true)
	p.drv.SetStart(false)
}

// Pause pulses the pause line, freezing the counters without the finality
// of a stop; a later start pulse resumes from the frozen value.
func (p *ControlPort) Pause() {
	p.drv.SetPause(true)
	p.drv.SetPause(false)
}

// Stop pulses the stop line, freezing the counters at their last value.
func (p *ControlPort) Stop() {
	p.drv.SetStop(true)
	p.drv.SetStop(false)
}

// ReadMinutes reads the minutes counter. Pure read, no side effects.
func (p *ControlPort) ReadMinutes() uint32 {
	return p.drv.Minutes()
}

// ReadSeconds reads the seconds counter.
func (p *ControlPort) ReadSeconds() uint32 {
	return p.drv.Seconds()
}

// ReadTicks reads the ticks counter.
func (p *ControlPort) ReadTicks() uint32 {
	return p.drv.Ticks()
}

// Sample captures the three counters as one TimeSample, narrowing each to
// 8 bits. The triple is not read atomically: a rollover can land between
// the reads, which is accepted since the sampling cadence is far coarser
// than the rollover period.
func (p *ControlPort) Sample() TimeSample {
	return TimeSample{
		Minutes: uint8(p.drv.Minutes()),
		Seconds: uint8(p.drv.Seconds()),
		Ticks:   uint8(p.drv.Ticks()),
	}
}
