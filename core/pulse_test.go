package core

import "testing"

func TestPulseTimings80MHz(t *testing.T) {
	// 80MHz: one tick is 12.5ns, so 400ns=32 ticks, 850ns=68 ticks.
	zero, one := PulseTimings(80)

	if zero.High != 32 || zero.Low != 68 {
		t.Errorf("zero pattern = (%d,%d), want (32,68)", zero.High, zero.Low)
	}
	if one.High != 68 || one.Low != 32 {
		t.Errorf("one pattern = (%d,%d), want (68,32)", one.High, one.Low)
	}
}

func TestPulseTimingsTruncate(t *testing.T) {
	// 133MHz: 400*133/1000 = 53.2 -> 53, 850*133/1000 = 113.05 -> 113.
	// Integer truncation, never rounding up.
	zero, one := PulseTimings(133)

	if zero.High != 53 || zero.Low != 113 {
		t.Errorf("zero pattern = (%d,%d), want (53,113)", zero.High, zero.Low)
	}
	if one.High != 113 || one.Low != 53 {
		t.Errorf("one pattern = (%d,%d), want (113,53)", one.High, one.Low)
	}
}

// The bit period is 1250ns in real time no matter the clock: tick
// counts scale with frequency, and the sum of the two phases may fall
// short of the exact period by at most one tick of truncation.
func TestPulseTimingsPeriodInvariant(t *testing.T) {
	for mhz := uint32(1); mhz <= 400; mhz++ {
		zero, one := PulseTimings(mhz)

		exact := BitPeriodNS * mhz / 1000 // full period in ticks, truncated
		for _, p := range []PulsePattern{zero, one} {
			total := uint32(p.High) + uint32(p.Low)
			if total > exact {
				t.Fatalf("clock %dMHz: period %d ticks exceeds %d", mhz, total, exact)
			}
			if exact-total > 1 {
				t.Fatalf("clock %dMHz: period %d ticks, want within 1 tick of %d", mhz, total, exact)
			}
		}
	}
}
