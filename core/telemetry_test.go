package core

import (
	"testing"
	"time"
)

func TestFormatReport(t *testing.T) {
	cases := []struct {
		mv   uint32
		c    Color
		want string
	}{
		{0, Color{R: 255}, "mv=0 r=255 g=0 b=0"},
		{1667, Color{R: 126, B: 129}, "mv=1667 r=126 g=0 b=129"},
		{3300, Color{B: 255}, "mv=3300 r=0 g=0 b=255"},
	}
	for _, tc := range cases {
		if got := FormatReport(tc.mv, tc.c); got != tc.want {
			t.Errorf("FormatReport(%d, %+v) = %q, want %q", tc.mv, tc.c, got, tc.want)
		}
	}
}

func TestReportAsyncDeliversToWriter(t *testing.T) {
	lines := make(chan string, 1)
	SetTelemetryWriter(func(s string) { lines <- s })
	InitAsyncTelemetry()

	ReportAsync(1650, Color{R: 128, B: 128})

	select {
	case got := <-lines:
		if got != "mv=1650 r=128 g=0 b=128" {
			t.Errorf("writer received %q", got)
		}
	case <-time.After(time.Second):
		t.Fatal("telemetry record never reached the writer")
	}
}

func TestReportAsyncNeverBlocks(t *testing.T) {
	// A saturated channel with no writer draining it must not stall
	// the caller; overflow records are dropped.
	SetTelemetryWriter(func(string) { time.Sleep(time.Hour) })
	InitAsyncTelemetry()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			ReportAsync(uint32(i), Color{})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ReportAsync blocked on a full channel")
	}
}
