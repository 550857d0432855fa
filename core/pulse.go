// Pulse timing for the WS2812 single-wire protocol.
// Converts the protocol's fixed nanosecond timing into tick counts for
// the pulse-generation peripheral at whatever clock it actually runs at.
package core

// WS2812 bit timing in nanoseconds. The bit period is fixed by the
// protocol at 800kHz; a logical 0 and a logical 1 differ only in where
// the high-to-low transition falls within the period.
// https://cdn-shop.adafruit.com/datasheets/WS2812B.pdf
const (
	BitPeriodNS = 1250
	T0HighNS    = 400
	T0LowNS     = BitPeriodNS - T0HighNS
	T1HighNS    = 850
	T1LowNS     = BitPeriodNS - T1HighNS
)

// PulsePattern is one logical bit's waveform: drive the line high for
// High ticks, then low for Low ticks. Tick length is one cycle of the
// pulse peripheral's clock.
type PulsePattern struct {
	High uint16
	Low  uint16
}

// PulseTimings derives the zero-bit and one-bit patterns for a pulse
// peripheral clocked at clockMHz. Computed once at startup from the
// measured clock, not from a compile-time constant, so the same
// firmware stays protocol-correct across clock configurations.
//
// clockMHz must be greater than zero; a zero frequency yields
// degenerate zero-length pulses. That is a bring-up precondition, not
// something checked here.
func PulseTimings(clockMHz uint32) (zero, one PulsePattern) {
	zero = PulsePattern{
		High: ticksFor(T0HighNS, clockMHz),
		Low:  ticksFor(T0LowNS, clockMHz),
	}
	one = PulsePattern{
		High: ticksFor(T1HighNS, clockMHz),
		Low:  ticksFor(T1LowNS, clockMHz),
	}
	return zero, one
}

// ticksFor converts a nanosecond duration to clock ticks, truncating.
// Truncation matches the tick granularity of the hardware: a partial
// tick cannot be emitted.
func ticksFor(ns, clockMHz uint32) uint16 {
	return uint16(ns * clockMHz / 1000)
}
