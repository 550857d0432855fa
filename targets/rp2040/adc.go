//go:build rp2040 || rp2350

package main

import (
	"device/rp"
	"errors"
	"machine"

	"github.com/thmasq/hall-effect/core"
)

// ADC input channels on the RP2040: GPIO26-GPIO29 map to channels 0-3.
var adcChannels = map[machine.Pin]uint32{
	machine.ADC0: 0,
	machine.ADC1: 1,
	machine.ADC2: 2,
	machine.ADC3: 3,
}

// HallSampler implements core.Sampler on the RP2040 ADC with one-shot
// conversions. ReadRaw never busy-waits on the READY bit; while a
// conversion is in flight it returns core.ErrNotReady so the portable
// loop owns the retry.
type HallSampler struct {
	channel uint32
	started bool
}

// NewHallSampler powers up the ADC and binds the sampler to the given
// analog-capable pin.
func NewHallSampler(pin machine.Pin) (*HallSampler, error) {
	channel, ok := adcChannels[pin]
	if !ok {
		return nil, errors.New("pin has no ADC channel")
	}

	machine.InitADC()
	adc := machine.ADC{Pin: pin}
	if err := adc.Configure(machine.ADCConfig{}); err != nil {
		return nil, err
	}

	return &HallSampler{channel: channel}, nil
}

// ReadRaw starts a conversion on the first call and reports
// core.ErrNotReady until the hardware raises READY, then returns the
// raw 12-bit result (0-4095).
func (s *HallSampler) ReadRaw() (uint16, error) {
	if !s.started {
		// Select the channel and kick off a single conversion.
		rp.ADC.CS.ReplaceBits(
			s.channel<<rp.ADC_CS_AINSEL_Pos,
			rp.ADC_CS_AINSEL_Msk,
			0,
		)
		rp.ADC.CS.SetBits(rp.ADC_CS_START_ONCE)
		s.started = true
		return 0, core.ErrNotReady
	}

	if !rp.ADC.CS.HasBits(rp.ADC_CS_READY) {
		return 0, core.ErrNotReady
	}

	s.started = false
	return uint16(rp.ADC.RESULT.Get()), nil
}
