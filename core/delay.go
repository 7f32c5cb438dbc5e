package core

// DelayLoopsPerMS is the busy-wait calibration constant: the number of
// inner countdown iterations that take roughly one millisecond on the
// target clock. The delay is approximate by design and is not corrected
// for drift; exact timing fidelity was never a guarantee of this firmware.
const DelayLoopsPerMS = 1000
