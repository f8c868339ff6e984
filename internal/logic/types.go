// Package logic contains the pure decision logic for the UPS status display.
// This package has NO external dependencies (no GPIO, I2C, SPI, OS, or time.Sleep).
// Every input is passed in by the caller.
package logic

// PowerState is the power source read from the UPS AC-present line.
type PowerState string

const (
	PowerAC      PowerState = "AC"
	PowerBattery PowerState = "BATTERY"
)

// PowerStateFromPin converts the raw AC-present level (high = mains present).
func PowerStateFromPin(high bool) PowerState {
	if high {
		return PowerAC
	}
	return PowerBattery
}

// CapacityLabel is a coarse battery health band.
type CapacityLabel string

const (
	LabelHigh     CapacityLabel = "HIGH"
	LabelMedium   CapacityLabel = "MEDIUM"
	LabelLow      CapacityLabel = "LOW"
	LabelCritical CapacityLabel = "CRITICAL"
	LabelUnknown  CapacityLabel = "UNKNOWN"
)

// Glyph returns the suffix shown after the capacity percentage.
func (l CapacityLabel) Glyph() string {
	switch l {
	case LabelHigh:
		return "H"
	case LabelMedium:
		return "M"
	case LabelLow:
		return "L"
	case LabelCritical:
		return "C"
	default:
		return "!!"
	}
}

// Capacity thresholds in percent. Strictly ordered High > Medium > Low > Critical.
const (
	ThresholdHigh     = 70
	ThresholdMedium   = 50
	ThresholdLow      = 30
	ThresholdCritical = 15
)

// BatteryReading is a single fuel gauge sample. Voltage is informational only.
type BatteryReading struct {
	Capacity int     // percent, 0..100
	Voltage  float64 // volts
}
