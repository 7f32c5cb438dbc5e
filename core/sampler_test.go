package core

import "testing"

// tickingDriver extends traceDriver with counters that advance whenever the
// sampler's delay runs, so each lap sees a different time.
type tickingDriver struct {
	traceDriver
	elapsedMS uint32
}

func (d *tickingDriver) advance(ms uint32) {
	d.elapsedMS += ms
	totalTicks := d.elapsedMS / 10
	d.ticks = totalTicks % 100
	d.seconds = (totalTicks / 100) % 60
	d.minutes = (totalTicks / 6000) % 60
}

func newTestSampler(drv StopwatchDriver, capacity int, intervalMS uint32) (*Sampler, *LapStore) {
	store, _ := NewLapStore(make([]byte, capacity*LapRecordSize))
	s := NewSampler(NewControlPort(drv), store)
	s.SetInterval(intervalMS)
	return s, store
}

func TestSamplerRecordsExactlyCapacityLaps(t *testing.T) {
	drv := &tickingDriver{}
	s, store := newTestSampler(drv, MaxLaps, 5000)

	delays := 0
	s.SetDelay(func(ms uint32) {
		if ms != 5000 {
			t.Errorf("Delay called with %d ms, expected 5000", ms)
		}
		delays++
		drv.advance(ms)
	})

	s.Run()

	if store.Size() != MaxLaps {
		t.Errorf("Expected %d laps, got %d", MaxLaps, store.Size())
	}
	if delays != MaxLaps {
		t.Errorf("Expected %d delay calls, got %d", MaxLaps, delays)
	}

	// Laps are 5 s apart starting at 5 s: lap i is at (i+1)*5 s
	for i := 0; i < MaxLaps; i++ {
		totalSec := uint8((i + 1) * 5)
		want := TimeSample{Minutes: totalSec / 60, Seconds: totalSec % 60}
		if got := store.Get(i); got != want {
			t.Errorf("Lap %d: expected %+v, got %+v", i, want, got)
		}
	}
}

func TestSamplerControlSequence(t *testing.T) {
	drv := &tickingDriver{}
	s, _ := newTestSampler(drv, 2, 100)
	s.SetDelay(drv.advance)

	s.Run()

	// Per iteration: one delay (invisible here) then the three counter
	// reads. The stop pulse comes after the final append, exactly once.
	assertEvents(t, drv.events, []string{
		"reset=1", "reset=0",
		"start=1", "start=0",
		"read minutes", "read seconds", "read ticks",
		"read minutes", "read seconds", "read ticks",
		"stop=1", "stop=0",
	})
}

func TestSamplerNoActivityAfterHalt(t *testing.T) {
	drv := &tickingDriver{}
	s, _ := newTestSampler(drv, 1, 100)
	s.SetDelay(drv.advance)

	s.Run()

	// Run has returned; the trace must end with the stop pulse and no
	// register access may follow it.
	last := drv.events[len(drv.events)-1]
	if last != "stop=0" {
		t.Errorf("Expected trace to end with stop=0, got %q", last)
	}
	stops := 0
	for _, e := range drv.events {
		if e == "stop=1" {
			stops++
		}
	}
	if stops != 1 {
		t.Errorf("Expected exactly one stop pulse, got %d", stops)
	}
}

func TestSamplerObserverSeesReadBack(t *testing.T) {
	drv := &tickingDriver{}
	s, store := newTestSampler(drv, 3, 1000)
	s.SetDelay(drv.advance)

	var indices []int
	var laps []TimeSample
	s.SetObserver(func(index int, sample TimeSample) {
		indices = append(indices, index)
		laps = append(laps, sample)
	})

	s.Run()

	if len(laps) != 3 {
		t.Fatalf("Expected 3 observer calls, got %d", len(laps))
	}
	for i := range laps {
		if indices[i] != i {
			t.Errorf("Observer call %d: expected index %d, got %d", i, i, indices[i])
		}
		// The observer receives the store's read-back, not the raw
		// capture, so it must match Get byte for byte
		if got := store.Get(i); got != laps[i] {
			t.Errorf("Observer lap %d: expected %+v, got %+v", i, got, laps[i])
		}
	}
}
