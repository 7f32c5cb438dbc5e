package protocol

import "errors"

// LapPayloadSize is the fixed payload of a lap report: lap index, minutes,
// seconds, ticks — one byte each.
const LapPayloadSize = 4

// lapFrameSize is the full on-wire size of a lap report frame.
const lapFrameSize = MessageHeader + LapPayloadSize + MessageTrailer

// Decode errors.
var (
	ErrShortFrame = errors.New("incomplete frame")
	ErrBadHeader  = errors.New("malformed frame header")
	ErrBadCRC     = errors.New("frame checksum mismatch")
	ErrNoSync     = errors.New("missing frame sync byte")
)

// LapReport is one decoded lap telemetry frame.
type LapReport struct {
	Index   uint8 // Position in the lap store (zero-based)
	Minutes uint8
	Seconds uint8
	Ticks   uint8
}

// Encoder frames lap reports with a rolling 4-bit sequence number.
// The zero value is ready to use.
type Encoder struct {
	seq uint8
}

// EncodeLap appends one framed lap report to dst and returns the extended
// slice. Passing a fixed-capacity dst (frameBuf[:0]) keeps the firmware
// path allocation-free.
func (e *Encoder) EncodeLap(dst []byte, r LapReport) []byte {
	start := len(dst)
	dst = append(dst, lapFrameSize, MessageDest|(e.seq&MessageSeqMask),
		r.Index, r.Minutes, r.Seconds, r.Ticks)
	crc := CRC16(dst[start : start+MessageHeader+LapPayloadSize])
	dst = append(dst, byte(crc>>8), byte(crc), MessageSync)
	e.seq = (e.seq + 1) & MessageSeqMask
	return dst
}

// DecodeLap parses one complete lap frame at the start of buf and returns
// the report plus the number of bytes consumed.
func DecodeLap(buf []byte) (LapReport, int, error) {
	if len(buf) < lapFrameSize {
		return LapReport{}, 0, ErrShortFrame
	}
	if buf[0] != lapFrameSize || buf[1]&^MessageSeqMask != MessageDest {
		return LapReport{}, 0, ErrBadHeader
	}
	if buf[lapFrameSize-1] != MessageSync {
		return LapReport{}, 0, ErrNoSync
	}
	crc := uint16(buf[lapFrameSize-3])<<8 | uint16(buf[lapFrameSize-2])
	if crc != CRC16(buf[:MessageHeader+LapPayloadSize]) {
		return LapReport{}, 0, ErrBadCRC
	}
	return LapReport{
		Index:   buf[2],
		Minutes: buf[3],
		Seconds: buf[4],
		Ticks:   buf[5],
	}, lapFrameSize, nil
}
