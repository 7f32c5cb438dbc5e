package core

// StopwatchDriver is the abstract register interface for the stopwatch
// peripheral. Platform-specific implementations map it onto the real CSR
// block; the host simulator provides a cycle-level model.
//
// The four control methods are raw level writes. Core code never holds a
// control line high: commands go through ControlPort, which always issues
// assert-then-deassert pairs.
type StopwatchDriver interface {
	// SetStart writes the start control register (true = asserted)
	SetStart(level bool)

	// SetPause writes the pause control register
	SetPause(level bool)

	// SetStop writes the stop control register
	SetStop(level bool)

	// SetReset writes the reset control register
	SetReset(level bool)

	// Minutes reads the minutes counter (0-59)
	Minutes() uint32

	// Seconds reads the seconds counter (0-59)
	Seconds() uint32

	// Ticks reads the ticks counter (0-99, hundredths of a second)
	Ticks() uint32
}

// Global singleton used by core code.
var stopwatchDriver StopwatchDriver

// SetStopwatchDriver is called by target-specific code to register its driver.
func SetStopwatchDriver(d StopwatchDriver) {
	stopwatchDriver = d
}

// MustStopwatch returns the configured driver or panics if missing.
func MustStopwatch() StopwatchDriver {
	if stopwatchDriver == nil {
		panic("stopwatch driver not configured")
	}
	return stopwatchDriver
}
