package core

import "errors"

// ErrNotReady is returned by a Sampler whose conversion is still in
// flight. The loop treats it as a normal wait, not a failure: it
// yields and retries until a value arrives.
var ErrNotReady = errors.New("sample not ready")

// Sampler is the abstract analog input that the loop reads. Target
// code binds it to a fixed hardware channel during bring-up.
type Sampler interface {
	// ReadRaw returns one 12-bit sample (0..4095), or ErrNotReady
	// while the conversion is still running. Any other error is a
	// hardware fault.
	ReadRaw() (uint16, error)
}

// FrameTransmitter is the abstract pulse output channel. Target code
// binds it to a fixed output pin during bring-up.
type FrameTransmitter interface {
	// Transmit shifts the whole frame out and blocks until the
	// hardware confirms it has drained. The frame buffer belongs to
	// the transmitter for the duration of the call and is handed
	// back when it returns; the caller must not touch it in between.
	Transmit(frame *Frame) error
}

// ReportFunc receives the per-iteration telemetry tuple. It must not
// block the loop; a nil ReportFunc disables reporting entirely.
type ReportFunc func(millivolts uint32, c Color)

// Global singletons registered by target-specific bring-up code.
var (
	sampler     Sampler
	transmitter FrameTransmitter
)

// SetSampler is called by target code to register its ADC driver.
func SetSampler(s Sampler) {
	sampler = s
}

// MustSampler returns the registered sampler or panics if missing.
func MustSampler() Sampler {
	if sampler == nil {
		panic("sampler not configured")
	}
	return sampler
}

// SetTransmitter is called by target code to register its pulse output.
func SetTransmitter(t FrameTransmitter) {
	transmitter = t
}

// MustTransmitter returns the registered transmitter or panics if missing.
func MustTransmitter() FrameTransmitter {
	if transmitter == nil {
		panic("transmitter not configured")
	}
	return transmitter
}
