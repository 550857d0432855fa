//go:build rp2040 || rp2350

package main

import (
	"machine"
)

// InitUSB initializes USB serial communication
// TinyGo automatically sets up USB CDC-ACM on RP2040
func InitUSB() {
	// Configure machine.Serial (which is USB CDC on RP2040)
	err := machine.Serial.Configure(machine.UARTConfig{})
	if err != nil {
		return
	}

	// Note: On RP2040, machine.Serial is actually USB CDC, not UART
	// The USB descriptors are set by TinyGo's runtime
}

// USBWriteBytes writes multiple bytes to USB
func USBWriteBytes(data []byte) (int, error) {
	n, err := machine.Serial.Write(data)
	return n, err
}
