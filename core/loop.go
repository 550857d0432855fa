package core

import (
	"runtime"
	"time"
)

// PacePeriod is the idle interval between loop iterations. The sleep
// doubles as the loop's only cooperative yield point for other tasks.
const PacePeriod = 10 * time.Millisecond

// Indicator is the sense-map-transmit loop: it samples the hall
// sensor, maps the voltage to a color, encodes the color into a pulse
// frame and pushes the frame out. Exactly one instance runs, on a
// single goroutine; it is the sole owner of the sampler, the frame
// buffer and the transmit channel, so no locking is needed anywhere.
type Indicator struct {
	zero PulsePattern
	one  PulsePattern

	sampler Sampler
	tx      FrameTransmitter
	report  ReportFunc

	// Reused every iteration; handed to tx during Transmit and
	// reclaimed when it returns.
	frame Frame
}

// NewIndicator builds the loop around an already-initialized sampler
// and transmitter. clockMHz is the measured clock of the pulse
// peripheral and is threaded in explicitly here — the loop never reads
// it ambiently, which keeps the pulse math testable with synthetic
// frequencies. report may be nil.
func NewIndicator(clockMHz uint32, s Sampler, t FrameTransmitter, report ReportFunc) *Indicator {
	zero, one := PulseTimings(clockMHz)
	return &Indicator{
		zero:    zero,
		one:     one,
		sampler: s,
		tx:      t,
		report:  report,
	}
}

// RunOnce performs a single sample-convert-map-encode-transmit cycle.
// A transmit error is returned as-is: a half-sent frame leaves the LED
// in an undefined state that only a fresh full frame could fix, so
// there is no in-cycle retry.
func (ind *Indicator) RunOnce() error {
	raw, err := ind.sample()
	if err != nil {
		return err
	}

	mv := MillivoltsFromRaw(raw)
	c := ColorForMillivolts(mv)

	EncodeFrame(c, ind.zero, ind.one, &ind.frame)
	if err := ind.tx.Transmit(&ind.frame); err != nil {
		return err
	}

	if ind.report != nil {
		ind.report(mv, c)
	}
	return nil
}

// sample blocks until the ADC produces a value. ErrNotReady is the
// normal conversion-in-flight wait and is absorbed here; it never
// fabricates a value and never surfaces the wait as a failure.
func (ind *Indicator) sample() (uint16, error) {
	for {
		raw, err := ind.sampler.ReadRaw()
		if err == ErrNotReady {
			runtime.Gosched()
			continue
		}
		return raw, err
	}
}

// Run drives the loop for the lifetime of the process, pacing
// iterations by PacePeriod. It returns only on a fatal error; the
// caller decides how to halt.
func (ind *Indicator) Run() error {
	for {
		if err := ind.RunOnce(); err != nil {
			return err
		}
		time.Sleep(PacePeriod)
	}
}
