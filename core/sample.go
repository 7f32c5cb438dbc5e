package core

// TimeSample is one snapshot of the stopwatch counters. Each field is
// narrowed to 8 bits at capture time; the hardware documents minutes and
// seconds as 0-59 and ticks as 0-99, and that range is trusted rather than
// validated.
type TimeSample struct {
	Minutes uint8
	Seconds uint8
	Ticks   uint8
}

// IsZero reports whether all three counters are zero. A zero sample
// returned by LapStore.Get is ambiguous with a legitimately zero lap;
// callers that care must cross-check against LapStore.Size.
func (s TimeSample) IsZero() bool {
	return s.Minutes == 0 && s.Seconds == 0 && s.Ticks == 0
}
