package telemetry

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	psutilNet "github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/sensors"
)

// cpuSensors are tried in order; the first one present wins.
var cpuSensors = []string{"cpu_thermal", "coretemp_package_id_0", "k10temp_tctl"}

// ProbeTimeout bounds the reachability check.
const ProbeTimeout = 2 * time.Second

// System implements Host and Network on top of gopsutil.
type System struct {
	// DiskPath is the mount point summarised by DiskSummary.
	DiskPath string

	cpuPercent    func(time.Duration, bool) ([]float64, error)
	temperatures  func(context.Context) ([]sensors.TemperatureStat, error)
	virtualMemory func() (*mem.VirtualMemoryStat, error)
	diskUsage     func(string) (*disk.UsageStat, error)
	interfaces    func() (psutilNet.InterfaceStatList, error)
	client        *http.Client
}

// NewSystem returns a System reading the live host.
func NewSystem() *System {
	return &System{
		DiskPath:      "/",
		cpuPercent:    cpu.Percent,
		temperatures:  sensors.TemperaturesWithContext,
		virtualMemory: mem.VirtualMemory,
		diskUsage:     disk.Usage,
		interfaces:    psutilNet.Interfaces,
		client:        &http.Client{Timeout: ProbeTimeout},
	}
}

// CPUPercent returns total CPU usage since the previous call.
func (s *System) CPUPercent() float64 {
	pct, err := s.cpuPercent(0, false)
	if err != nil || len(pct) == 0 {
		log.Printf("telemetry: cpu percent: %v", err)
		return 0
	}
	return pct[0]
}

// CPUTemperature returns e.g. "T: 48.3'C".
func (s *System) CPUTemperature() string {
	temps, err := s.temperatures(context.Background())
	// gopsutil returns partial results alongside warnings; only give up
	// when nothing came back.
	if len(temps) == 0 {
		if err != nil {
			log.Printf("telemetry: temperatures: %v", err)
		}
		return "T: " + NotAvailable
	}
	for _, key := range cpuSensors {
		for _, t := range temps {
			if strings.HasPrefix(t.SensorKey, key) {
				return fmt.Sprintf("T: %.1f'C", t.Temperature)
			}
		}
	}
	return fmt.Sprintf("T: %.1f'C", temps[0].Temperature)
}

// MemorySummary returns e.g. "MEM: 42.1%".
func (s *System) MemorySummary() string {
	v, err := s.virtualMemory()
	if err != nil {
		log.Printf("telemetry: memory: %v", err)
		return "MEM: " + NotAvailable
	}
	return fmt.Sprintf("MEM: %.1f%%", v.UsedPercent)
}

// DiskSummary returns e.g. "DISK: 7.2/29G 25%".
func (s *System) DiskSummary() string {
	d, err := s.diskUsage(s.DiskPath)
	if err != nil {
		log.Printf("telemetry: disk usage %s: %v", s.DiskPath, err)
		return "DISK: " + NotAvailable
	}
	return fmt.Sprintf("DISK: %.1f/%.0fG %.0f%%", bytesToGigabytes(d.Used), bytesToGigabytes(d.Total), d.UsedPercent)
}

func bytesToGigabytes(b uint64) float64 {
	return float64(b) / (1 << 30)
}

func (s *System) findInterface(name string) *psutilNet.InterfaceStat {
	ifaces, err := s.interfaces()
	if err != nil {
		log.Printf("telemetry: interfaces: %v", err)
		return nil
	}
	for i := range ifaces {
		if ifaces[i].Name == name {
			return &ifaces[i]
		}
	}
	return nil
}

// LocalIP returns the first IPv4 address assigned to iface.
func (s *System) LocalIP(iface string) string {
	stat := s.findInterface(iface)
	if stat == nil {
		return ""
	}
	for _, a := range stat.Addrs {
		ip, _, err := net.ParseCIDR(a.Addr)
		if err != nil {
			ip = net.ParseIP(a.Addr)
		}
		if ip != nil && ip.To4() != nil {
			return ip.String()
		}
	}
	return ""
}

// InterfaceUp reports whether iface exists and carries the "up" flag.
func (s *System) InterfaceUp(iface string) bool {
	stat := s.findInterface(iface)
	if stat == nil {
		return false
	}
	for _, f := range stat.Flags {
		if f == "up" {
			return true
		}
	}
	return false
}

// ProbeReachable sends an HTTP HEAD to host. Any response counts as
// reachable, whatever its status code.
func (s *System) ProbeReachable(host string) bool {
	url := host
	if !strings.Contains(url, "://") {
		url = "http://" + host
	}
	resp, err := s.client.Head(url)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}
