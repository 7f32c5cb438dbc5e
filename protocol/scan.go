package protocol

import "errors"

// FrameScanner accumulates a raw serial byte stream and extracts valid lap
// frames from it, resynchronizing on the sync byte after line noise, debug
// text or CRC damage. The zero value is ready to use.
type FrameScanner struct {
	buf []byte

	// CRCErrors counts frames dropped for checksum mismatches.
	CRCErrors int
}

// Write appends raw bytes read from the serial link.
func (fs *FrameScanner) Write(p []byte) {
	fs.buf = append(fs.buf, p...)
}

// Pending returns the number of buffered bytes not yet consumed.
func (fs *FrameScanner) Pending() int {
	return len(fs.buf)
}

// Next returns the next valid lap report, or ok=false once the buffered
// stream holds no complete frame.
func (fs *FrameScanner) Next() (LapReport, bool) {
	for {
		r, n, err := DecodeLap(fs.buf)
		if err == nil {
			fs.buf = fs.buf[n:]
			return r, true
		}
		if errors.Is(err, ErrShortFrame) {
			return LapReport{}, false
		}
		if errors.Is(err, ErrBadCRC) {
			fs.CRCErrors++
		}
		fs.resync()
	}
}

// resync drops one buffered byte so scanning resumes at the next candidate
// frame start. Only ever called after a decode error on a full-length
// prefix, so the dropped byte did not begin a valid frame.
func (fs *FrameScanner) resync() {
	fs.buf = fs.buf[1:]
}
