// Package battery reads the UPS fuel gauge (MAX1704x at 0x36).
//
// Register reads never fail from the caller's point of view: a bus error is
// logged and the reading degrades to zero so the display loop keeps running.
package battery

import (
	"log"

	"github.com/sweeney/ups-oled/internal/logic"
)

// Address is the fuel gauge I2C address.
const Address = 0x36

// Fuel gauge registers.
const (
	RegVCell = 0x02
	RegSOC   = 0x04
)

// RegisterReader reads one 16-bit register, most significant byte first.
type RegisterReader interface {
	ReadWord(reg byte) (uint16, error)
}

// Monitor converts raw gauge registers into a BatteryReading.
type Monitor struct {
	bus RegisterReader
}

// NewMonitor creates a Monitor reading through bus.
func NewMonitor(bus RegisterReader) *Monitor {
	return &Monitor{bus: bus}
}

func (m *Monitor) readWord(reg byte) uint16 {
	w, err := m.bus.ReadWord(reg)
	if err != nil {
		log.Printf("battery: read register 0x%02X: %v", reg, err)
		return 0
	}
	return w
}

// ReadCapacity returns the state of charge in whole percent, 0 on bus error.
func (m *Monitor) ReadCapacity() int {
	return logic.CapacityFromRaw(m.readWord(RegSOC))
}

// ReadVoltage returns the cell voltage in volts, 0 on bus error.
func (m *Monitor) ReadVoltage() float64 {
	return logic.VoltageFromRaw(m.readWord(RegVCell))
}

// Read samples both registers.
func (m *Monitor) Read() logic.BatteryReading {
	return logic.BatteryReading{
		Capacity: m.ReadCapacity(),
		Voltage:  m.ReadVoltage(),
	}
}
