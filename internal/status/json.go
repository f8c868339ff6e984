package status

import (
	"encoding/json"
	"time"

	"github.com/sweeney/ups-oled/internal/logic"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Power         string      `json:"power"`
	Battery       BatteryJSON `json:"battery"`
	ShutdownDue   bool        `json:"shutdown_due"`
	Frames        int         `json:"frames"`
	UptimeSeconds int64       `json:"uptime_seconds"`
	StartTime     string      `json:"start_time"`
	Timestamp     string      `json:"timestamp"`
	Lines         []string    `json:"lines,omitempty"`
}

// BatteryJSON is the JSON representation of a battery reading.
type BatteryJSON struct {
	Capacity int     `json:"capacity_percent"`
	Voltage  float64 `json:"voltage"`
	Label    string  `json:"label"`
	Display  string  `json:"display"`
}

func buildInner(snap Snapshot) StatusInner {
	last := snap.Last
	power := string(last.Power)
	if power == "" {
		power = "UNKNOWN"
	}

	return StatusInner{
		Power: power,
		Battery: BatteryJSON{
			Capacity: last.Battery.Capacity,
			Voltage:  last.Battery.Voltage,
			Label:    string(logic.Classify(last.Battery.Capacity)),
			Display:  logic.FormatBatteryStatus(last.Power, last.Battery.Capacity),
		},
		ShutdownDue:   logic.ShouldShutdown(last.Power, last.Battery.Capacity),
		Frames:        snap.Frames,
		UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:     snap.Now.UTC().Format(time.RFC3339),
	}
}

// FormatJSON returns the indented JSON status, including the display lines
// composed from the last readings.
func FormatJSON(snap Snapshot) []byte {
	inner := buildInner(snap)
	inner.Lines = Compose(snap.Last)

	data, _ := json.MarshalIndent(StatusJSON{Status: inner}, "", "  ")
	return data
}
