package mathx

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5,0,10) = %d, want 5", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3,0,10) = %d, want 0", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp(42,0,10) = %d, want 10", got)
	}
	// Swapped bounds still clamp into the same range.
	if got := Clamp(42, 10, 0); got != 10 {
		t.Errorf("Clamp(42,10,0) = %d, want 10", got)
	}
}

func TestRoundDiv(t *testing.T) {
	cases := []struct {
		a, b, want uint32
	}{
		{0, 2300, 0},
		{1150, 2300, 1},  // exactly .5 rounds up
		{1149, 2300, 0},  // just under .5 rounds down
		{293250, 2300, 128},
		{7, 0, 0}, // zero divisor guarded
	}
	for _, tc := range cases {
		if got := RoundDiv(tc.a, tc.b); got != tc.want {
			t.Errorf("RoundDiv(%d,%d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
