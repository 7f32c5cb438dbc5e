package core

// SampleIntervalMS is the default sampling cadence: one lap every five
// seconds.
const SampleIntervalMS = 5000

// LapObserver receives the verification read-back of each recorded lap.
// The read-back exists for downstream observation (display, UART
// telemetry); its result never alters control flow.
type LapObserver func(index int, s TimeSample)

// Sampler drives the stopwatch through its lifecycle and records laps at a
// fixed cadence. It is the exclusive writer of its LapStore; no concurrent
// access exists in this design.
type Sampler struct {
	port     *ControlPort
	store    *LapStore
	interval uint32
	delay    func(ms uint32)
	observer LapObserver
}

// NewSampler creates a sampler with the default interval and the busy-wait
// delay primitive.
func NewSampler(port *ControlPort, store *LapStore) *Sampler {
	return &Sampler{
		port:     port,
		store:    store,
		interval: SampleIntervalMS,
		delay:    DelayMS,
	}
}

// SetInterval overrides the sampling interval in milliseconds.
func (s *Sampler) SetInterval(ms uint32) {
	s.interval = ms
}

// SetDelay overrides the delay primitive. The host simulator uses this to
// advance simulated time instead of spinning.
func (s *Sampler) SetDelay(delay func(ms uint32)) {
	s.delay = delay
}

// SetObserver registers the lap read-back callback.
func (s *Sampler) SetObserver(obs LapObserver) {
	s.observer = obs
}

// Run executes the control loop: reset the hardware, start it counting,
// then record one lap per interval until the store is full, at which point
// the hardware is stopped and Run returns. The caller owns the terminal
// idle state; on hardware main parks the CPU after Run returns.
//
// The reset pulse must complete before start is issued: starting first
// would count from an undefined prior value.
func (s *Sampler) Run() {
	s.port.Reset()
	s.port.Start()
	DebugPrintln("sampler: stopwatch running")

	for {
		s.delay(s.interval)

		s.store.Append(s.port.Sample())

		// Verification read-back of the record just written. On an empty
		// store this resolves to the zero sample rather than faulting.
		last := s.store.Get(s.store.Size() - 1)
		if s.observer != nil {
			s.observer(s.store.Size()-1, last)
		}

		// Append first, then check fullness: the store fills to exactly
		// its capacity before the loop stops itself, so the rejected
		// append path is unreachable in normal operation.
		if s.store.Size() >= s.store.Capacity() {
			s.port.Stop()
			DebugPrintln("sampler: lap store full, stopwatch stopped")
			return
		}
	}
}
