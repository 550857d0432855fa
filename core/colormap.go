package core

import (
	"github.com/thmasq/hall-effect/x/mathx"
)

// ADC scale. These are tied to the board's ADC configuration (12-bit
// conversion against the 3.3V rail) and must change together if the
// sampler is ever rebound to a differently-referenced ADC.
const (
	ADCMax        = 4095
	ARefMilliVolt = 3300
)

// Calibration for the hall sensor's useful swing. ~0.5V is a strong
// north pole, ~2.8V a strong south pole. Domain constants, not tunables.
const (
	MinFieldMilliVolt = 500
	MaxFieldMilliVolt = 2800
)

// MillivoltsFromRaw converts a raw 12-bit ADC sample to millivolts,
// truncated to integer precision.
func MillivoltsFromRaw(raw uint16) uint32 {
	return uint32(raw) * ARefMilliVolt / ADCMax
}

// ColorForMillivolts maps a sensor voltage onto a red-to-blue ramp:
// pure red at or below the north-pole threshold, pure blue at or above
// the south-pole threshold, linear in between. Green stays off. Pure
// function of mv; same input always yields the same color.
func ColorForMillivolts(mv uint32) Color {
	v := mathx.Clamp(mv, MinFieldMilliVolt, MaxFieldMilliVolt)
	const span = MaxFieldMilliVolt - MinFieldMilliVolt
	return Color{
		R: uint8(mathx.RoundDiv(255*(MaxFieldMilliVolt-v), uint32(span))),
		B: uint8(mathx.RoundDiv(255*(v-MinFieldMilliVolt), uint32(span))),
	}
}
