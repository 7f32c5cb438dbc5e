// Command lapdump reads framed lap telemetry from the board's serial port
// and prints each lap as it arrives. Debug text on the shared UART and
// line noise are skipped; frames with bad checksums are counted and
// dropped.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"lapwatch/core"
	"lapwatch/host/serial"
	"lapwatch/protocol"
)

var (
	device = flag.String("device", "/dev/ttyUSB0", "Serial device path")
	baud   = flag.Int("baud", 115200, "Baud rate")
)

func main() {
	flag.Parse()
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	port, err := serial.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open serial port")
	}
	defer port.Close()

	log.Info().Str("device", *device).Int("baud", *baud).Msg("listening for lap telemetry")

	var scanner protocol.FrameScanner
	buf := make([]byte, 256)
	reportedCRCErrors := 0

	for {
		n, err := port.Read(buf)
		if err != nil {
			// A read timeout surfaces as EOF; keep waiting
			if errors.Is(err, io.EOF) {
				continue
			}
			log.Fatal().Err(err).Msg("serial read failed")
		}
		if n == 0 {
			continue
		}

		scanner.Write(buf[:n])
		for {
			r, ok := scanner.Next()
			if !ok {
				break
			}
			fmt.Println(core.FormatLap(int(r.Index), core.TimeSample{
				Minutes: r.Minutes,
				Seconds: r.Seconds,
				Ticks:   r.Ticks,
			}))
		}

		if scanner.CRCErrors > reportedCRCErrors {
			log.Warn().Int("count", scanner.CRCErrors).Msg("dropped frames with bad checksum")
			reportedCRCErrors = scanner.CRCErrors
		}
	}
}
