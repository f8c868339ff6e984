package logic

import (
	"fmt"
	"math"
)

// band is one row of the classification table: values >= min map to label.
type band struct {
	min   int
	label CapacityLabel
}

// bands is ordered from the highest threshold down. Anything below the
// last row is LabelUnknown.
var bands = []band{
	{ThresholdHigh, LabelHigh},
	{ThresholdMedium, LabelMedium},
	{ThresholdLow, LabelLow},
	{ThresholdCritical, LabelCritical},
}

// Classify maps a capacity percentage onto its label. Bands are half-open
// ([70,∞), [50,70), [30,50), [15,30)) and every integer maps to exactly one label.
func Classify(percent int) CapacityLabel {
	for _, b := range bands {
		if percent >= b.min {
			return b.label
		}
	}
	return LabelUnknown
}

// FormatBatteryStatus renders e.g. "+87%H" on mains or "-25%C" on battery.
func FormatBatteryStatus(power PowerState, percent int) string {
	sign := "-"
	if power == PowerAC {
		sign = "+"
	}
	return fmt.Sprintf("%s%d%%%s", sign, percent, Classify(percent).Glyph())
}

// CapacityFromRaw converts the fuel gauge SOC word (1/256 % per LSB) into a
// whole percentage clamped to 0..100. The gauge can report slightly over 100%
// right after a full charge.
func CapacityFromRaw(word uint16) int {
	pct := math.Round(float64(word)/256*100) / 100
	c := int(pct)
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}

// VoltageFromRaw converts the VCELL word (upper 12 bits, 1.25mV per LSB) to volts.
func VoltageFromRaw(word uint16) float64 {
	return float64(word) * 1.25 / 1000 / 16
}
