// Package telemetry parses the indicator firmware's per-iteration
// telemetry records as they arrive over the serial link.
package telemetry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotRecord marks a line that is not a telemetry record (boot
// noise, fatal announcements, partial reads). Callers typically skip
// these rather than fail.
var ErrNotRecord = errors.New("not a telemetry record")

// Record is one loop iteration's measurement: the sensed voltage and
// the color driven onto the LED.
type Record struct {
	Millivolts uint32
	R, G, B    uint8
}

// ParseRecord decodes one line of the form
//
//	mv=1667 r=126 g=0 b=129
//
// as emitted by the firmware's telemetry writer.
func ParseRecord(line string) (Record, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) != 4 {
		return Record{}, ErrNotRecord
	}

	mv, err := parseField(fields[0], "mv", 1<<32-1)
	if err != nil {
		return Record{}, err
	}
	r, err := parseField(fields[1], "r", 255)
	if err != nil {
		return Record{}, err
	}
	g, err := parseField(fields[2], "g", 255)
	if err != nil {
		return Record{}, err
	}
	b, err := parseField(fields[3], "b", 255)
	if err != nil {
		return Record{}, err
	}

	return Record{
		Millivolts: uint32(mv),
		R:          uint8(r),
		G:          uint8(g),
		B:          uint8(b),
	}, nil
}

func parseField(field, key string, max uint64) (uint64, error) {
	value, ok := strings.CutPrefix(field, key+"=")
	if !ok {
		return 0, ErrNotRecord
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s value %q: %w", key, value, err)
	}
	if n > max {
		return 0, fmt.Errorf("%s value %d out of range", key, n)
	}
	return n, nil
}

// Stats accumulates a running summary of the voltage channel.
type Stats struct {
	Count int
	MinMV uint32
	MaxMV uint32
	sumMV uint64
}

// Add folds one record into the summary.
func (s *Stats) Add(rec Record) {
	if s.Count == 0 || rec.Millivolts < s.MinMV {
		s.MinMV = rec.Millivolts
	}
	if s.Count == 0 || rec.Millivolts > s.MaxMV {
		s.MaxMV = rec.Millivolts
	}
	s.sumMV += uint64(rec.Millivolts)
	s.Count++
}

// MeanMV returns the mean voltage of all records seen, or 0 for an
// empty summary.
func (s *Stats) MeanMV() uint32 {
	if s.Count == 0 {
		return 0
	}
	return uint32(s.sumMV / uint64(s.Count))
}
