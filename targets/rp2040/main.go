//go:build rp2040 || rp2350

package main

import (
	"machine"
	"time"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"

	"github.com/thmasq/hall-effect/core"
)

// Board wiring. The hall sensor's analog output sits on ADC0 (GPIO26),
// the WS2812 data line on GPIO16.
const (
	hallSensorPin = machine.ADC0
	ledDataPin    = machine.Pin(16)
)

func main() {
	// CRITICAL: Disable watchdog on boot to clear any previous state
	// This prevents issues with watchdog persisting across resets
	err := machine.Watchdog.Configure(machine.WatchdogConfig{TimeoutMillis: 0})
	if err != nil {
		return
	}

	// Initialize USB CDC immediately
	InitUSB()

	// Telemetry goes out over USB CDC, one record per line, drained
	// by a background goroutine so a slow host never stalls the loop.
	core.SetTelemetryWriter(func(s string) {
		USBWriteBytes([]byte(s + "\r\n"))
	})
	core.InitAsyncTelemetry()

	// Measure the clock actually driving the PIO before deriving any
	// pulse timing from it.
	clockMHz := PeripheralClockMHz()

	sampler, err := NewHallSampler(hallSensorPin)
	if err != nil {
		halt("adc: " + err.Error())
	}
	core.SetSampler(sampler)

	sm, err := rp2pio.PIO0.ClaimStateMachine()
	if err != nil {
		halt("pio: " + err.Error())
	}
	tx, err := NewWS2812Transmitter(sm, ledDataPin)
	if err != nil {
		halt("ws2812: " + err.Error())
	}
	core.SetTransmitter(tx)

	ind := core.NewIndicator(clockMHz, core.MustSampler(), core.MustTransmitter(), core.ReportAsync)

	// Run returns only on a fatal fault; with no redundant hardware
	// to fail over to, park the MCU and keep announcing the fault.
	err = ind.Run()
	halt("indicator: " + err.Error())
}

// halt parks the firmware after an unrecoverable fault, repeating the
// reason over USB so a connected host can see why the LED went dark.
func halt(msg string) {
	for {
		USBWriteBytes([]byte("fatal: " + msg + "\r\n"))
		time.Sleep(time.Second)
	}
}
