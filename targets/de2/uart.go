//go:build tinygo

package main

// uartWriteByte blocks until the transmit FIFO has room, then queues b.
// A wedged UART hangs the firmware; there is no watchdog in this design.
func uartWriteByte(b byte) {
	for uartTxfull.Get() != 0 {
	}
	uartRxtx.Set(uint32(b))
}

func uartWrite(p []byte) {
	for _, b := range p {
		uartWriteByte(b)
	}
}

func uartWriteString(s string) {
	for i := 0; i < len(s); i++ {
		uartWriteByte(s[i])
	}
}
