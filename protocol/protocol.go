// Package protocol implements the framed lap telemetry stream the firmware
// emits over its UART and the host-side scanner that recovers lap records
// from it.
package protocol

// Version identifies the lapwatch firmware build.
const Version = "0.1.0"

// Frame layout: [length][sequence][payload...][crc16 hi][crc16 lo][sync].
// Length covers the whole frame including the trailer; the CRC covers the
// header and payload bytes.
const (
	MessageMax     = 64  // Maximum frame size
	MessageMin     = 5   // Header + trailer, empty payload
	MessageHeader  = 2   // Length + sequence bytes
	MessageTrailer = 3   // CRC16 + sync byte
	MessageSync    = 0x7e

	// The sequence byte carries a 4-bit rolling counter in its low nibble
	// and a fixed marker in its high nibble.
	MessageSeqMask = 0x0f
	MessageDest    = 0x10
)
