package logic

import "time"

// Loop delays per power source. Battery polling is slowed down to save charge.
const (
	DelayAC      = 1 * time.Second
	DelayBattery = 10 * time.Second
)

// ShouldShutdown reports whether the host must be halted: running on battery
// with capacity strictly between ThresholdCritical and ThresholdLow.
//
// Capacity at or below ThresholdCritical does not trigger. That matches the
// behaviour devices in the field already have and is kept until the intended
// band is confirmed.
func ShouldShutdown(power PowerState, percent int) bool {
	if power != PowerBattery {
		return false
	}
	return percent > ThresholdCritical && percent < ThresholdLow
}

// NextDelay returns how long to wait before the next refresh.
func NextDelay(power PowerState) time.Duration {
	if power == PowerAC {
		return DelayAC
	}
	return DelayBattery
}
