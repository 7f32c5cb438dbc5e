package protocol

import (
	"errors"
	"testing"
)

func TestEncodeDecodeLap(t *testing.T) {
	var enc Encoder
	report := LapReport{Index: 2, Minutes: 1, Seconds: 10, Ticks: 0}

	frame := enc.EncodeLap(nil, report)
	if len(frame) != lapFrameSize {
		t.Fatalf("Expected %d-byte frame, got %d", lapFrameSize, len(frame))
	}
	if frame[len(frame)-1] != MessageSync {
		t.Errorf("Frame not terminated with sync byte: %v", frame)
	}

	decoded, n, err := DecodeLap(frame)
	if err != nil {
		t.Fatalf("DecodeLap failed: %v", err)
	}
	if n != lapFrameSize {
		t.Errorf("Expected %d bytes consumed, got %d", lapFrameSize, n)
	}
	if decoded != report {
		t.Errorf("Expected %+v, got %+v", report, decoded)
	}
}

func TestEncoderSequenceRolls(t *testing.T) {
	var enc Encoder
	for i := 0; i < 20; i++ {
		frame := enc.EncodeLap(nil, LapReport{Index: uint8(i)})
		wantSeq := byte(MessageDest | (i & MessageSeqMask))
		if frame[1] != wantSeq {
			t.Errorf("Frame %d: expected sequence byte %02X, got %02X", i, wantSeq, frame[1])
		}
		if _, _, err := DecodeLap(frame); err != nil {
			t.Errorf("Frame %d failed to decode: %v", i, err)
		}
	}
}

func TestEncodeLapNoReallocation(t *testing.T) {
	// The firmware encodes into a fixed scratch buffer; the frame must
	// fit without growing it.
	var enc Encoder
	var scratch [MessageMax]byte

	frame := enc.EncodeLap(scratch[:0], LapReport{Index: 15, Minutes: 59, Seconds: 59, Ticks: 99})
	if &frame[0] != &scratch[0] {
		t.Error("EncodeLap reallocated the scratch buffer")
	}
}

func TestDecodeLapErrors(t *testing.T) {
	var enc Encoder
	good := enc.EncodeLap(nil, LapReport{Index: 1, Seconds: 30})

	short := good[:lapFrameSize-1]
	if _, _, err := DecodeLap(short); !errors.Is(err, ErrShortFrame) {
		t.Errorf("Truncated frame: expected ErrShortFrame, got %v", err)
	}

	badLen := append([]byte{}, good...)
	badLen[0] = lapFrameSize + 1
	if _, _, err := DecodeLap(badLen); !errors.Is(err, ErrBadHeader) {
		t.Errorf("Wrong length byte: expected ErrBadHeader, got %v", err)
	}

	badSync := append([]byte{}, good...)
	badSync[lapFrameSize-1] = 0x00
	if _, _, err := DecodeLap(badSync); !errors.Is(err, ErrNoSync) {
		t.Errorf("Missing sync: expected ErrNoSync, got %v", err)
	}

	badPayload := append([]byte{}, good...)
	badPayload[3] ^= 0xFF
	if _, _, err := DecodeLap(badPayload); !errors.Is(err, ErrBadCRC) {
		t.Errorf("Corrupt payload: expected ErrBadCRC, got %v", err)
	}
}

func TestFrameScannerStream(t *testing.T) {
	var enc Encoder
	reports := []LapReport{
		{Index: 0, Seconds: 5},
		{Index: 1, Seconds: 10},
		{Index: 2, Seconds: 15},
	}

	var stream []byte
	for _, r := range reports {
		stream = enc.EncodeLap(stream, r)
	}

	// Feed the stream one byte at a time to exercise partial frames
	var fs FrameScanner
	var got []LapReport
	for _, b := range stream {
		fs.Write([]byte{b})
		for {
			r, ok := fs.Next()
			if !ok {
				break
			}
			got = append(got, r)
		}
	}

	if len(got) != len(reports) {
		t.Fatalf("Expected %d reports, got %d", len(reports), len(got))
	}
	for i := range reports {
		if got[i] != reports[i] {
			t.Errorf("Report %d: expected %+v, got %+v", i, reports[i], got[i])
		}
	}
}

func TestFrameScannerResyncsPastGarbage(t *testing.T) {
	var enc Encoder
	want := LapReport{Index: 3, Minutes: 2, Seconds: 8, Ticks: 40}

	// Debug text and noise interleaved with a valid frame, as happens on
	// a shared UART
	var stream []byte
	stream = append(stream, []byte("lapwatch "+Version+"\r\n")...)
	stream = enc.EncodeLap(stream, want)
	stream = append(stream, 0x00, 0xFF, MessageSync)

	var fs FrameScanner
	fs.Write(stream)

	r, ok := fs.Next()
	if !ok {
		t.Fatal("Scanner found no frame in noisy stream")
	}
	if r != want {
		t.Errorf("Expected %+v, got %+v", want, r)
	}
	if _, ok := fs.Next(); ok {
		t.Error("Scanner produced a frame from trailing noise")
	}
}

func TestFrameScannerCountsCRCErrors(t *testing.T) {
	var enc Encoder
	first := enc.EncodeLap(nil, LapReport{Index: 0, Seconds: 1})
	second := enc.EncodeLap(nil, LapReport{Index: 1, Seconds: 2})

	// Corrupt a payload byte of the first frame
	first[4] ^= 0x55

	var fs FrameScanner
	fs.Write(first)
	fs.Write(second)

	r, ok := fs.Next()
	if !ok {
		t.Fatal("Scanner dropped the valid second frame")
	}
	if r.Index != 1 {
		t.Errorf("Expected frame index 1, got %d", r.Index)
	}
	if fs.CRCErrors != 1 {
		t.Errorf("Expected 1 CRC error, got %d", fs.CRCErrors)
	}
}
