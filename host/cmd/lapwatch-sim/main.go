// Command lapwatch-sim runs the lapwatch firmware control loop against a
// simulated stopwatch peripheral, no hardware required. Each recorded lap
// is printed as the loop observes its read-back.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"lapwatch/core"
	"lapwatch/host/simwatch"
)

var (
	clkFreq  = flag.Uint("clk-freq", 1_000_000, "Simulated system clock in Hz")
	interval = flag.Uint("interval", core.SampleIntervalMS, "Sampling interval in milliseconds")
	laps     = flag.Uint("laps", core.MaxLaps, "Lap store capacity")
	verbose  = flag.Bool("verbose", false, "Enable firmware debug output")
)

func main() {
	flag.Parse()
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	dev := simwatch.New(uint32(*clkFreq))
	core.SetStopwatchDriver(dev)
	if *verbose {
		core.SetDebugEnabled(true)
		core.SetDebugWriter(func(s string) { log.Debug().Msg(s) })
	}

	store, err := core.NewLapStore(make([]byte, int(*laps)*core.LapRecordSize))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create lap store")
	}

	sampler := core.NewSampler(core.NewControlPort(core.MustStopwatch()), store)
	sampler.SetInterval(uint32(*interval))
	sampler.SetDelay(dev.RunMS)
	sampler.SetObserver(func(index int, s core.TimeSample) {
		fmt.Println(core.FormatLap(index, s))
	})

	log.Info().
		Uint("clk_freq", *clkFreq).
		Uint("interval_ms", *interval).
		Uint("capacity", *laps).
		Msg("starting sampling run")

	sampler.Run()

	log.Info().
		Int("laps", store.Size()).
		Uint64("cycles", dev.Cycles()).
		Msg("lap store full, stopwatch stopped")
}
