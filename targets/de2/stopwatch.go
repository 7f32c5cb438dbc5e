//go:build tinygo

package main

import "lapwatch/core"

// LiteXStopwatch maps core.StopwatchDriver onto the stopwatch CSR block.
// Each write goes straight to the register; the pulse protocol lives in
// core.ControlPort, not here.
type LiteXStopwatch struct{}

var _ core.StopwatchDriver = LiteXStopwatch{}

func (LiteXStopwatch) SetStart(level bool) { stopwatchStart.Set(csrLevel(level)) }
func (LiteXStopwatch) SetPause(level bool) { stopwatchPause.Set(csrLevel(level)) }
func (LiteXStopwatch) SetStop(level bool)  { stopwatchStop.Set(csrLevel(level)) }
func (LiteXStopwatch) SetReset(level bool) { stopwatchReset.Set(csrLevel(level)) }

func (LiteXStopwatch) Minutes() uint32 { return stopwatchMinutes.Get() }
func (LiteXStopwatch) Seconds() uint32 { return stopwatchSeconds.Get() }
func (LiteXStopwatch) Ticks() uint32   { return stopwatchTicks.Get() }

func csrLevel(level bool) uint32 {
	if level {
		return 1
	}
	return 0
}
