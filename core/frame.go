package core

// Color is one 8-bit-per-channel RGB value. Built fresh from a sensor
// reading each loop iteration; it carries no identity of its own.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Frame layout for a single WS2812 LED: 24 data pulses (8 per channel)
// plus one reset pulse that makes the LED latch the frame.
const (
	FrameDataSlots = 24
	FrameSlots     = FrameDataSlots + 1
)

// Frame is the complete pulse sequence for one LED update. It is a
// reusable buffer: EncodeFrame overwrites it in place each iteration,
// and the transmitter must fully drain it before the next encode.
type Frame [FrameSlots]PulsePattern

// EncodeFrame writes the pulse sequence for c into frame. Channel
// bytes go out in the wire order green, red, blue, each MSB first; a
// set bit becomes the one pattern, a clear bit the zero pattern. Slot
// 24 is the zero-duration reset pulse.
//
// Every call writes all 25 slots; the encoding is fixed-length no
// matter the color.
func EncodeFrame(c Color, zero, one PulsePattern, frame *Frame) {
	bytes := [3]uint8{c.G, c.R, c.B}
	idx := 0
	for _, b := range bytes {
		for bit := 7; bit >= 0; bit-- {
			if b&(1<<bit) != 0 {
				frame[idx] = one
			} else {
				frame[idx] = zero
			}
			idx++
		}
	}
	frame[FrameDataSlots] = PulsePattern{} // reset: line idles low
}
