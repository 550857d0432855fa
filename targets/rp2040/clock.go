//go:build rp2040 || rp2350

package main

import "machine"

// PeripheralClockMHz returns the measured clock of the PIO block in
// MHz. The PIO runs straight off the system clock (the transmitter
// programs a divider of 1), so the pulse tick math in core sees the
// same frequency the state machine actually counts at. Read at
// startup, never assumed: a firmware built for one clock configuration
// stays correct on another.
func PeripheralClockMHz() uint32 {
	return machine.CPUFrequency() / 1_000_000
}
