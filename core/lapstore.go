package core

import "errors"

// Lap storage geometry. Each record is three bytes (minutes, seconds,
// ticks) laid out consecutively with no padding, header or checksum.
const (
	MaxLaps       = 16
	LapRecordSize = 3
)

// LapStore is a bounded, append-only store of lap samples over a raw
// caller-supplied memory region. On hardware the region aliases a slice of
// main RAM at a fixed base address; the store owns the region's contents
// within its bounds but not the memory itself, and performs no allocation.
//
// Records are immutable once appended and are never overwritten: reaching
// capacity is a terminal condition for the store, not a wrap point. Bytes
// beyond the last appended record are left at whatever value pre-existed.
type LapStore struct {
	region []byte
	count  int
}

// ErrRegionTooSmall is returned for a backing region that cannot hold even
// one record.
var ErrRegionTooSmall = errors.New("lap region smaller than one record")

// NewLapStore creates a store over region. Capacity is however many whole
// records fit, so a 48-byte region holds the reference configuration of 16.
func NewLapStore(region []byte) (*LapStore, error) {
	if len(region) < LapRecordSize {
		return nil, ErrRegionTooSmall
	}
	return &LapStore{region: region}, nil
}

// Append records one sample at the next free slot and reports whether it
// was accepted. At capacity the append is a rejected no-op: nothing is
// overwritten and the store never wraps.
func (ls *LapStore) Append(s TimeSample) bool {
	if ls.count >= ls.Capacity() {
		return false
	}
	base := ls.count * LapRecordSize
	ls.region[base+0] = s.Minutes
	ls.region[base+1] = s.Seconds
	ls.region[base+2] = s.Ticks
	ls.count++
	return true
}

// Get returns the record at index. Any index outside [0, Size()) resolves
// to the zero sample rather than an error, so a "last lap" lookup on an
// empty store degrades gracefully instead of faulting.
func (ls *LapStore) Get(index int) TimeSample {
	if index < 0 || index >= ls.count {
		return TimeSample{}
	}
	base := index * LapRecordSize
	return TimeSample{
		Minutes: ls.region[base+0],
		Seconds: ls.region[base+1],
		Ticks:   ls.region[base+2],
	}
}

// Size returns the number of records appended so far.
func (ls *LapStore) Size() int {
	return ls.count
}

// Capacity returns the number of records the backing region can hold.
func (ls *LapStore) Capacity() int {
	return len(ls.region) / LapRecordSize
}
