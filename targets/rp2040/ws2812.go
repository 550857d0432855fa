//go:build rp2040 || rp2350

package main

// PIO-based WS2812 frame transmitter
// Shifts a core.Frame out of a GPIO with hardware timing, so pulse
// widths are jitter-free regardless of what the CPU is doing.

import (
	"errors"
	"machine"
	"runtime"
	"time"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"

	"github.com/thmasq/hall-effect/core"
)

var (
	errTxStalled    = errors.New("ws2812: tx fifo stalled")
	errTxNotDrained = errors.New("ws2812: frame not drained")
)

// PIO program for timed pulse output
// Command word format (shift right, explicit PULL):
//
//	Bits 0-15:  high-phase ticks (biased, see pulseWord)
//	Bits 16-31: low-phase ticks (biased, see pulseWord)
//
// Program flow:
//  1. Pull 32-bit pulse word from FIFO
//  2. Extract high ticks into X, low ticks into Y
//  3. Drive pin high for X+2 cycles, low for Y+2 cycles
//  4. Wrap; the next pull/out overhead extends the low phase
//
// buildPulseProgram creates the pulse PIO program using AssemblerV0
func buildPulseProgram() []uint16 {
	asm := rp2pio.AssemblerV0{SidesetBits: 0}
	return []uint16{
		// .wrap_target
		asm.Pull(false, true).Encode(),          // 0: pull block
		asm.Out(rp2pio.OutDestX, 16).Encode(),   // 1: out x, 16 (high ticks)
		asm.Out(rp2pio.OutDestY, 16).Encode(),   // 2: out y, 16 (low ticks)
		asm.Set(rp2pio.SetDestPins, 1).Encode(), // 3: set pins, 1
		// high_loop:
		asm.Jmp(4, rp2pio.JmpXNZeroDec).Encode(), // 4: jmp x--, 4
		asm.Set(rp2pio.SetDestPins, 0).Encode(),  // 5: set pins, 0
		// low_loop:
		asm.Jmp(6, rp2pio.JmpYNZeroDec).Encode(), // 6: jmp y--, 6
		// .wrap
	}
}

const pulseProgramOrigin = 0 // Load at offset 0 for correct jump addresses

// Instruction overhead absorbed into each phase, in PIO cycles. The
// set + loop fall-through account for 2 cycles of high time; the low
// phase additionally swallows the 3-cycle pull/out/out prologue of the
// next word.
const (
	highOverheadCycles = 2
	lowOverheadCycles  = 5
)

// Hold time with the line low after the last pulse so the LED latches
// the frame. The datasheet minimum is 50us.
const latchDelay = 60 * time.Microsecond

// txDeadline bounds the FIFO-full and drain waits. A healthy state
// machine empties a 25-slot frame in ~31us; hitting this deadline
// means the SM is misconfigured or stalled, which is fatal upstream.
const txDeadline = 10 * time.Millisecond

// WS2812Transmitter implements core.FrameTransmitter on a PIO state
// machine.
type WS2812Transmitter struct {
	sm     rp2pio.StateMachine
	offset uint8
}

// NewWS2812Transmitter claims the state machine, loads the pulse
// program and binds it to pin. The divider is left at 1 so one PIO
// cycle equals one tick of the clock reported by PeripheralClockMHz.
func NewWS2812Transmitter(sm rp2pio.StateMachine, pin machine.Pin) (*WS2812Transmitter, error) {
	sm.TryClaim() // SM should be claimed beforehand, we just guarantee it's claimed.
	Pio := sm.PIO()

	program := buildPulseProgram()
	offset, err := Pio.AddProgram(program, pulseProgramOrigin)
	if err != nil {
		return nil, err
	}

	pin.Configure(machine.PinConfig{Mode: Pio.PinMode()})
	sm.SetPindirsConsecutive(pin, 1, true)

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetSetPins(pin, 1)
	// Shift right with explicit PULL so the high ticks come out of
	// the low 16 bits first.
	cfg.SetOutShift(true, false, 32)
	cfg.SetWrap(offset+uint8(len(program))-1, offset)
	// One PIO cycle per system clock tick; the tick counts in the
	// frame already encode the protocol timing.
	cfg.SetClkDivIntFrac(1, 0)
	// Only the Tx FIFO is used, join for depth.
	cfg.SetFIFOJoin(rp2pio.FifoJoinTx)

	sm.Init(offset, cfg)
	sm.SetEnabled(true)

	return &WS2812Transmitter{sm: sm, offset: offset}, nil
}

// pulseWord packs one pulse into a command word, folding out the fixed
// instruction overhead of each phase.
func pulseWord(p core.PulsePattern) uint32 {
	high := uint32(p.High)
	if high > highOverheadCycles {
		high -= highOverheadCycles
	} else {
		high = 0
	}
	low := uint32(p.Low)
	if low > lowOverheadCycles {
		low -= lowOverheadCycles
	} else {
		low = 0
	}
	return high | low<<16
}

// Transmit shifts the frame's data pulses into the state machine and
// blocks until the hardware has drained them, then holds the line low
// for the latch interval. The zero-duration reset slot marks the end
// of the data; it is realized as the latch hold rather than pushed to
// the FIFO. The frame buffer is back in the caller's hands when
// Transmit returns.
func (d *WS2812Transmitter) Transmit(frame *core.Frame) error {
	for i := range frame {
		p := frame[i]
		if p.High == 0 && p.Low == 0 {
			break // reset slot: end of data
		}
		if err := d.push(pulseWord(p)); err != nil {
			return err
		}
	}
	if err := d.drain(); err != nil {
		return err
	}
	time.Sleep(latchDelay)
	return nil
}

// push queues one command word, yielding while the FIFO is full.
func (d *WS2812Transmitter) push(word uint32) error {
	deadline := time.Now().Add(txDeadline)
	for d.sm.IsTxFIFOFull() {
		if time.Now().After(deadline) {
			return errTxStalled
		}
		runtime.Gosched()
	}
	d.sm.TxPut(word)
	return nil
}

// drain waits for the FIFO to empty and for the state machine to
// finish shifting the final word out of the pin.
func (d *WS2812Transmitter) drain() error {
	deadline := time.Now().Add(txDeadline)
	for d.sm.TxFIFOLevel() > 0 {
		if time.Now().After(deadline) {
			return errTxNotDrained
		}
		runtime.Gosched()
	}
	// The last word is still in flight once the FIFO reads empty;
	// one bit period covers it.
	time.Sleep(2 * time.Microsecond)
	return nil
}
