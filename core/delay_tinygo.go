//go:build tinygo

package core

import "runtime/volatile"

// spinSink is read once per inner iteration; the volatile access keeps the
// compiler from collapsing the countdown.
var spinSink volatile.Register32

// DelayMS busy-waits for approximately ms milliseconds using nested
// countdown loops. It is not cancellable and not interruptible: once
// entered it always runs to completion.
func DelayMS(ms uint32) {
	for ; ms > 0; ms-- {
		for d := uint32(DelayLoopsPerMS); d > 0; d-- {
			spinSink.Get()
		}
	}
}
