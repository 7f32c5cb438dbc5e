// Package simwatch models the stopwatch gateware cycle by cycle, so the
// firmware control loop can run and be tested without hardware.
package simwatch

// Device simulates the stopwatch peripheral: a clock divider feeding a
// ticks/seconds/minutes cascade, controlled through start, pause, stop and
// reset storage registers. It implements core.StopwatchDriver.
//
// Control priority follows the gateware: reset clears everything
// unconditionally; otherwise start wins over pause and pause over stop.
// Counters wrap at 59:59.99.
type Device struct {
	sysClkFreq uint32
	clkPerTick uint32

	start, pause, stop, reset bool
	running                   bool

	clkCount uint32
	ticks    uint32 // 0-99
	seconds  uint32 // 0-59
	minutes  uint32 // 0-59

	cycles uint64
}

// New creates a device clocked at sysClkFreq Hz. One tick is one hundredth
// of a second, so the divider is sysClkFreq/100 (minimum 1).
func New(sysClkFreq uint32) *Device {
	per := sysClkFreq / 100
	if per < 1 {
		per = 1
	}
	return &Device{sysClkFreq: sysClkFreq, clkPerTick: per}
}

// Control register writes. Each write latches the level and costs one
// clock edge, mirroring CSR bus timing: a back-to-back assert/deassert
// pair is seen by the device for exactly one cycle.

func (d *Device) SetStart(level bool) { d.start = level; d.step() }
func (d *Device) SetPause(level bool) { d.pause = level; d.step() }
func (d *Device) SetStop(level bool)  { d.stop = level; d.step() }
func (d *Device) SetReset(level bool) { d.reset = level; d.step() }

// Counter reads are combinational and cost no cycles.

func (d *Device) Minutes() uint32 { return d.minutes }
func (d *Device) Seconds() uint32 { return d.seconds }
func (d *Device) Ticks() uint32   { return d.ticks }

// Running reports whether the counters are advancing.
func (d *Device) Running() bool { return d.running }

// Cycles returns the number of simulated clock edges so far.
func (d *Device) Cycles() uint64 { return d.cycles }

// Run advances the simulated clock by n cycles.
func (d *Device) Run(n uint64) {
	for i := uint64(0); i < n; i++ {
		d.step()
	}
}

// RunMS advances the simulated clock by ms milliseconds. Wired as the
// sampler's delay primitive when running the firmware loop in simulation.
func (d *Device) RunMS(ms uint32) {
	d.Run(uint64(ms) * uint64(d.sysClkFreq) / 1000)
}

// RunTicks advances the simulated clock by n hardware ticks (hundredths of
// a second).
func (d *Device) RunTicks(n uint32) {
	d.Run(uint64(n) * uint64(d.clkPerTick))
}

// step evaluates one rising edge of the sys clock. As in the synchronous
// gateware, the counting condition sees the running flag from before this
// edge's control update.
func (d *Device) step() {
	d.cycles++

	if d.reset {
		d.running = false
		d.clkCount = 0
		d.ticks, d.seconds, d.minutes = 0, 0, 0
		return
	}

	wasRunning := d.running
	if d.start {
		d.running = true
	} else if d.pause || d.stop {
		d.running = false
	}
	if !wasRunning {
		return
	}

	if d.clkCount != d.clkPerTick-1 {
		d.clkCount++
		return
	}
	d.clkCount = 0

	d.ticks++
	if d.ticks < 100 {
		return
	}
	d.ticks = 0

	d.seconds++
	if d.seconds < 60 {
		return
	}
	d.seconds = 0

	d.minutes++
	if d.minutes == 60 {
		d.minutes = 0
	}
}
