// hallmon tails the hall-effect indicator's telemetry stream over the
// MCU's USB serial port.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thmasq/hall-effect/host/serial"
	"github.com/thmasq/hall-effect/host/telemetry"
)

var (
	device string
	baud   int
)

var rootCmd = &cobra.Command{
	Use:   "hallmon",
	Short: "Hall-effect indicator telemetry monitor",
	Long: `Hallmon - monitoring companion for the hall-effect LED indicator firmware.

The firmware emits one telemetry record per control-loop iteration
(sensed voltage in millivolts plus the RGB color driven onto the LED).
Hallmon connects to the MCU's USB serial port, decodes the stream and
renders it on the terminal.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&device, "device", "d", "/dev/ttyACM0", "Serial device path")
	rootCmd.PersistentFlags().IntVarP(&baud, "baud", "b", 115200, "Baud rate (ignored for USB CDC)")
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openPort opens the MCU serial device with blocking reads.
func openPort() (serial.Port, error) {
	cfg := serial.DefaultConfig(device)
	cfg.Baud = baud
	cfg.ReadTimeout = 0 // block; the firmware streams continuously
	return serial.Open(cfg)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream telemetry records as they arrive",
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	port, err := openPort()
	if err != nil {
		return err
	}
	defer port.Close()

	fmt.Printf("Connected to %s, press Ctrl+C to exit\n\n", device)

	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		line := scanner.Text()
		rec, err := telemetry.ParseRecord(line)
		if err == telemetry.ErrNotRecord {
			// Boot noise or a fatal announcement; show it verbatim.
			if line != "" {
				fmt.Println(line)
			}
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad record: %v\n", err)
			continue
		}
		fmt.Printf("%4d mV  ->  #%02X%02X%02X  (r=%d g=%d b=%d)\n",
			rec.Millivolts, rec.R, rec.G, rec.B, rec.R, rec.G, rec.B)
	}
	return scanner.Err()
}

var (
	statsSamples int

	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Summarize the voltage channel over a number of records",
		RunE:  runStats,
	}
)

func init() {
	statsCmd.Flags().IntVarP(&statsSamples, "samples", "n", 500, "Number of records to collect")
}

func runStats(cmd *cobra.Command, args []string) error {
	port, err := openPort()
	if err != nil {
		return err
	}
	defer port.Close()

	fmt.Printf("Collecting %d records from %s...\n", statsSamples, device)

	var stats telemetry.Stats
	scanner := bufio.NewScanner(port)
	for stats.Count < statsSamples && scanner.Scan() {
		rec, err := telemetry.ParseRecord(scanner.Text())
		if err != nil {
			continue
		}
		stats.Add(rec)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if stats.Count == 0 {
		return fmt.Errorf("no telemetry records received from %s", device)
	}

	fmt.Printf("records: %d\n", stats.Count)
	fmt.Printf("voltage: min %d mV, mean %d mV, max %d mV\n",
		stats.MinMV, stats.MeanMV(), stats.MaxMV)
	return nil
}
