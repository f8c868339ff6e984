package telemetry

// FakeHost returns fixed values.
type FakeHost struct {
	CPU     float64
	Temp    string
	Memory  string
	Disk    string
	Queries int
}

// CPUPercent returns CPU and counts the query.
func (f *FakeHost) CPUPercent() float64 {
	f.Queries++
	return f.CPU
}

// CPUTemperature returns Temp.
func (f *FakeHost) CPUTemperature() string { return f.Temp }

// MemorySummary returns Memory.
func (f *FakeHost) MemorySummary() string { return f.Memory }

// DiskSummary returns Disk.
func (f *FakeHost) DiskSummary() string { return f.Disk }

// FakeNetwork returns fixed values regardless of the interface or host asked for.
type FakeNetwork struct {
	IP        string
	Up        bool
	Reachable bool
}

// LocalIP returns IP.
func (f *FakeNetwork) LocalIP(string) string { return f.IP }

// InterfaceUp returns Up.
func (f *FakeNetwork) InterfaceUp(string) bool { return f.Up }

// ProbeReachable returns Reachable.
func (f *FakeNetwork) ProbeReachable(string) bool { return f.Reachable }
