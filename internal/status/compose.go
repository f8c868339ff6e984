package status

import (
	"fmt"
	"strings"

	"github.com/sweeney/ups-oled/internal/logic"
)

// TimeLayout is the clock format on the first line (dd-mm-yy HH:MM).
const TimeLayout = "02-01-06 15:04"

// Compose returns the five display lines, top to bottom:
// time and battery, CPU, memory, disk, network.
func Compose(r Readings) []string {
	return []string{
		fmt.Sprintf("%s | %s", r.Time.Format(TimeLayout), logic.FormatBatteryStatus(r.Power, r.Battery.Capacity)),
		fmt.Sprintf("CPU: %.1f%% | %s", r.CPUPercent, r.CPUTemp),
		r.Memory,
		r.Disk,
		networkLine(r.Network),
	}
}

// networkLine renders e.g. "WLAN0: 192.168.1.42", "WLAN0: N/A", with a
// trailing " *" when the reachability probe failed.
func networkLine(n NetworkInfo) string {
	addr := "n/a"
	if n.Up && n.IP != "" {
		addr = n.IP
	}
	line := strings.ToUpper(fmt.Sprintf("%s: %s", n.Interface, addr))
	if !n.Reachable {
		line += " *"
	}
	return line
}
