package core

import "testing"

func TestMillivoltsFromRaw(t *testing.T) {
	cases := []struct {
		raw  uint16
		want uint32
	}{
		{0, 0},
		{4095, 3300},
		{2048, 1650},
		{2069, 1667}, // 2069*3300/4095 = 1667.3, truncated
	}
	for _, tc := range cases {
		if got := MillivoltsFromRaw(tc.raw); got != tc.want {
			t.Errorf("MillivoltsFromRaw(%d) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestColorForMillivoltsBoundaries(t *testing.T) {
	cases := []struct {
		name string
		mv   uint32
		want Color
	}{
		{"zero", 0, Color{R: 255}},
		{"north threshold", MinFieldMilliVolt, Color{R: 255}},
		{"south threshold", MaxFieldMilliVolt, Color{B: 255}},
		{"rail", 3300, Color{B: 255}},
		{"midpoint", 1650, Color{R: 128, B: 128}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ColorForMillivolts(tc.mv); got != tc.want {
				t.Errorf("ColorForMillivolts(%d) = %+v, want %+v", tc.mv, got, tc.want)
			}
		})
	}
}

func TestColorForMillivoltsGreenAlwaysOff(t *testing.T) {
	for mv := uint32(0); mv <= 3300; mv += 7 {
		if c := ColorForMillivolts(mv); c.G != 0 {
			t.Fatalf("ColorForMillivolts(%d).G = %d, want 0", mv, c.G)
		}
	}
}

func TestColorForMillivoltsMonotone(t *testing.T) {
	prev := ColorForMillivolts(MinFieldMilliVolt)
	for mv := uint32(MinFieldMilliVolt + 1); mv <= MaxFieldMilliVolt; mv++ {
		c := ColorForMillivolts(mv)
		if c.R > prev.R {
			t.Fatalf("red increased from %d to %d at %dmV", prev.R, c.R, mv)
		}
		if c.B < prev.B {
			t.Fatalf("blue decreased from %d to %d at %dmV", prev.B, c.B, mv)
		}
		prev = c
	}
}

func TestColorForMillivoltsIdempotent(t *testing.T) {
	for _, mv := range []uint32{0, 137, 500, 1650, 2799, 2800, 3300} {
		a := ColorForMillivolts(mv)
		b := ColorForMillivolts(mv)
		if a != b {
			t.Errorf("ColorForMillivolts(%d) not stable: %+v then %+v", mv, a, b)
		}
	}
}

// Raw-sample scenarios across the full chain raw -> millivolts -> color.
func TestRawToColorScenarios(t *testing.T) {
	cases := []struct {
		raw  uint16
		want Color
	}{
		{0, Color{R: 255}},
		{4095, Color{B: 255}},
		{2069, Color{R: 126, B: 129}}, // 1667mV, just past midpoint
	}
	for _, tc := range cases {
		got := ColorForMillivolts(MillivoltsFromRaw(tc.raw))
		if got != tc.want {
			t.Errorf("raw %d -> %+v, want %+v", tc.raw, got, tc.want)
		}
	}
}
