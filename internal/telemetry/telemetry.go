// Package telemetry gathers host vitals and network state for the status
// lines. Every accessor degrades to a sentinel instead of returning an error.
package telemetry

// Host reports local vitals as ready-to-display values.
type Host interface {
	CPUPercent() float64
	CPUTemperature() string
	MemorySummary() string
	DiskSummary() string
}

// Network reports interface and reachability state.
type Network interface {
	// LocalIP returns the first IPv4 address of iface, "" if none.
	LocalIP(iface string) string
	InterfaceUp(iface string) bool
	ProbeReachable(host string) bool
}

// NotAvailable is shown when a value cannot be read.
const NotAvailable = "N/A"
