package logic

import (
	"math"
	"testing"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		percent int
		want    CapacityLabel
	}{
		{100, LabelHigh},
		{70, LabelHigh},
		{69, LabelMedium},
		{50, LabelMedium},
		{49, LabelLow},
		{30, LabelLow},
		{29, LabelCritical},
		{15, LabelCritical},
		{14, LabelUnknown},
		{0, LabelUnknown},
	}

	for _, tt := range tests {
		if got := Classify(tt.percent); got != tt.want {
			t.Errorf("Classify(%d): got %s, want %s", tt.percent, got, tt.want)
		}
	}
}

func TestClassifyTotalAndMonotonic(t *testing.T) {
	rank := map[CapacityLabel]int{
		LabelUnknown:  0,
		LabelCritical: 1,
		LabelLow:      2,
		LabelMedium:   3,
		LabelHigh:     4,
	}

	prev := -1
	for p := 0; p <= 100; p++ {
		label := Classify(p)
		r, ok := rank[label]
		if !ok {
			t.Fatalf("Classify(%d) returned unexpected label %q", p, label)
		}
		if r < prev {
			t.Errorf("Classify(%d)=%s ranks below Classify(%d)", p, label, p-1)
		}
		prev = r
	}
}

func TestThresholdsOrdered(t *testing.T) {
	if !(ThresholdHigh > ThresholdMedium && ThresholdMedium > ThresholdLow && ThresholdLow > ThresholdCritical) {
		t.Errorf("thresholds not strictly ordered: %d %d %d %d",
			ThresholdHigh, ThresholdMedium, ThresholdLow, ThresholdCritical)
	}
}

func TestFormatBatteryStatus(t *testing.T) {
	tests := []struct {
		power   PowerState
		percent int
		want    string
	}{
		{PowerAC, 87, "+87%H"},
		{PowerBattery, 55, "-55%M"},
		{PowerBattery, 35, "-35%L"},
		{PowerBattery, 25, "-25%C"},
		{PowerAC, 10, "+10%!!"},
		{PowerBattery, 0, "-0%!!"},
	}

	for _, tt := range tests {
		if got := FormatBatteryStatus(tt.power, tt.percent); got != tt.want {
			t.Errorf("FormatBatteryStatus(%s, %d): got %q, want %q", tt.power, tt.percent, got, tt.want)
		}
	}
}

func TestCapacityFromRaw(t *testing.T) {
	tests := []struct {
		word uint16
		want int
	}{
		{0x0000, 0},
		{0x1900, 25},  // 25.00%
		{0x19F0, 25},  // 25.94% truncates
		{0x19FF, 26},  // 25.996% rounds to 26.00 first
		{0x3280, 50},  // 50.5%
		{0x6400, 100}, // 100%
		{0x6580, 100}, // 101.5% clamps
		{0xFFFF, 100}, // garbage clamps
	}

	for _, tt := range tests {
		if got := CapacityFromRaw(tt.word); got != tt.want {
			t.Errorf("CapacityFromRaw(0x%04X): got %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestVoltageFromRaw(t *testing.T) {
	// 0xD020 >> 4 = 3330 LSBs of 1.25mV = 4.1625V
	got := VoltageFromRaw(0xD020)
	if math.Abs(got-4.1625) > 1e-9 {
		t.Errorf("VoltageFromRaw(0xD020): got %v, want 4.1625", got)
	}
	if VoltageFromRaw(0) != 0 {
		t.Errorf("VoltageFromRaw(0): got %v, want 0", VoltageFromRaw(0))
	}
}

func TestPowerStateFromPin(t *testing.T) {
	if PowerStateFromPin(true) != PowerAC {
		t.Error("high pin should be AC")
	}
	if PowerStateFromPin(false) != PowerBattery {
		t.Error("low pin should be BATTERY")
	}
}
