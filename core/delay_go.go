//go:build !tinygo

package core

// delaySink absorbs the countdown so the loop body is not empty.
var delaySink uint32

// DelayMS busy-waits for approximately ms milliseconds (regular Go
// implementation, present so core code compiles for tests and the host
// simulator; both inject their own delay instead of spinning).
func DelayMS(ms uint32) {
	for ; ms > 0; ms-- {
		for d := uint32(DelayLoopsPerMS); d > 0; d-- {
			delaySink += d
		}
	}
}
