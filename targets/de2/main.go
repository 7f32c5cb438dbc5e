//go:build tinygo

package main

import (
	"unsafe"

	"lapwatch/core"
	"lapwatch/protocol"
)

func main() {
	core.SetStopwatchDriver(LiteXStopwatch{})
	core.SetDebugWriter(func(s string) { uartWriteString(s + "\r\n") })
	core.SetDebugEnabled(true)

	// The lap region aliases the base of main RAM: MaxLaps consecutive
	// 3-byte records, exactly where out-of-band readers expect them.
	lapRegion := unsafe.Slice((*byte)(unsafe.Pointer(uintptr(mainRAMBase))), core.MaxLaps*core.LapRecordSize)
	store, err := core.NewLapStore(lapRegion)
	if err != nil {
		core.DebugPrintln("lap region unusable, halting")
		for {
		}
	}

	sampler := core.NewSampler(core.NewControlPort(core.MustStopwatch()), store)

	// Each lap read-back goes out as a framed telemetry report. The
	// scratch buffer is fixed so the sampling loop never allocates.
	var enc protocol.Encoder
	var frameBuf [protocol.MessageMax]byte
	sampler.SetObserver(func(index int, s core.TimeSample) {
		uartWrite(enc.EncodeLap(frameBuf[:0], protocol.LapReport{
			Index:   uint8(index),
			Minutes: s.Minutes,
			Seconds: s.Seconds,
			Ticks:   s.Ticks,
		}))
	})

	core.DebugPrintln("lapwatch " + protocol.Version)
	sampler.Run()

	// Terminal state: all laps recorded and the hardware stopped. There
	// is no shutdown or restart path; park the CPU.
	for {
	}
}
