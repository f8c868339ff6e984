// Package status composes the display lines and keeps a point-in-time view
// of the daemon for logging and -print-state.
package status

import (
	"time"

	"github.com/sweeney/ups-oled/internal/logic"
)

// NetworkInfo is the state of the monitored interface.
type NetworkInfo struct {
	Interface string
	IP        string
	Up        bool
	Reachable bool
}

// Readings is everything gathered in one loop iteration.
type Readings struct {
	Time       time.Time
	Power      logic.PowerState
	Battery    logic.BatteryReading
	CPUPercent float64
	CPUTemp    string
	Memory     string
	Disk       string
	Network    NetworkInfo
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type and safe to keep after further updates.
type Snapshot struct {
	StartTime time.Time
	Now       time.Time
	Frames    int
	Last      Readings
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker accumulates loop state. Only the main loop touches it, so there is
// no locking.
type Tracker struct {
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time.
func NewTracker(startTime time.Time) *Tracker {
	return &Tracker{
		snap: Snapshot{StartTime: startTime, Now: startTime},
	}
}

// Update records the readings of a frame that reached the panel.
func (t *Tracker) Update(r Readings) {
	t.snap.Last = r
	t.snap.Now = r.Time
	t.snap.Frames++
}

// Snapshot returns a copy of the tracked state.
func (t *Tracker) Snapshot() Snapshot {
	return t.snap
}
