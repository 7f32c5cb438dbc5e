//go:build tinygo

package main

import (
	"runtime/volatile"
	"unsafe"
)

// LiteX CSR map for the DE2 stopwatch SoC, per the generated csr.h. Each
// CSR is a 32-bit register on a 4-byte stride.
const (
	// Stopwatch peripheral control (write) and status (read) registers
	stopwatchStartAddr   = 0x0008_2000
	stopwatchPauseAddr   = 0x0008_2004
	stopwatchStopAddr    = 0x0008_2008
	stopwatchResetAddr   = 0x0008_200C
	stopwatchMinutesAddr = 0x0008_2010
	stopwatchSecondsAddr = 0x0008_2014
	stopwatchTicksAddr   = 0x0008_2018

	// LiteX UART
	uartRxtxAddr   = 0x0008_1000
	uartTxfullAddr = 0x0008_1004

	// Integrated main RAM (32 KiB); the lap region sits at its base
	mainRAMBase = 0x4000_0000
)

var (
	stopwatchStart   = (*volatile.Register32)(unsafe.Pointer(uintptr(stopwatchStartAddr)))
	stopwatchPause   = (*volatile.Register32)(unsafe.Pointer(uintptr(stopwatchPauseAddr)))
	stopwatchStop    = (*volatile.Register32)(unsafe.Pointer(uintptr(stopwatchStopAddr)))
	stopwatchReset   = (*volatile.Register32)(unsafe.Pointer(uintptr(stopwatchResetAddr)))
	stopwatchMinutes = (*volatile.Register32)(unsafe.Pointer(uintptr(stopwatchMinutesAddr)))
	stopwatchSeconds = (*volatile.Register32)(unsafe.Pointer(uintptr(stopwatchSecondsAddr)))
	stopwatchTicks   = (*volatile.Register32)(unsafe.Pointer(uintptr(stopwatchTicksAddr)))

	uartRxtx   = (*volatile.Register32)(unsafe.Pointer(uintptr(uartRxtxAddr)))
	uartTxfull = (*volatile.Register32)(unsafe.Pointer(uintptr(uartTxfullAddr)))
)
