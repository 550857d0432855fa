package core

// TelemetryWriter is a function type for writing telemetry lines
type TelemetryWriter func(string)

var (
	// telemetryPrintln is the global telemetry output function
	// (set by platform code; no-op by default)
	telemetryPrintln TelemetryWriter = func(s string) {}

	// Async telemetry output channel
	telemetryChan chan string
)

// SetTelemetryWriter sets the platform-specific telemetry output function.
// This allows platforms to redirect telemetry to UART, USB, etc.
func SetTelemetryWriter(writer TelemetryWriter) {
	telemetryPrintln = writer
}

// InitAsyncTelemetry starts the async telemetry output goroutine.
// Call this from main() after SetTelemetryWriter.
func InitAsyncTelemetry() {
	telemetryChan = make(chan string, 16) // Buffer 16 records
	go telemetryWorker()
}

// telemetryWorker runs in background, drains the telemetry channel
func telemetryWorker() {
	for msg := range telemetryChan {
		if telemetryPrintln != nil {
			telemetryPrintln(msg)
		}
	}
}

// ReportAsync queues one loop iteration's telemetry tuple for output.
// It is a ReportFunc: non-blocking, returns immediately even if the
// channel is full (drops the record). The sink being slow or absent
// never stalls the control loop.
func ReportAsync(millivolts uint32, c Color) {
	if telemetryChan == nil {
		return
	}
	select {
	case telemetryChan <- FormatReport(millivolts, c):
	default:
		// Channel full, drop record (non-blocking)
	}
}

// FormatReport renders one telemetry record, e.g.
//
//	mv=1667 r=126 g=0 b=129
//
// The fmt-free formatting keeps the MCU path allocation-light; the
// host-side monitor parses this exact shape back.
func FormatReport(millivolts uint32, c Color) string {
	return "mv=" + utoa(millivolts) +
		" r=" + utoa(uint32(c.R)) +
		" g=" + utoa(uint32(c.G)) +
		" b=" + utoa(uint32(c.B))
}
