package battery

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
)

// RealReader talks to the gauge over a periph.io I2C bus.
// host.Init must have been called before NewRealReader.
type RealReader struct {
	bus i2c.BusCloser
	dev *i2c.Dev
}

// NewRealReader opens the named I2C bus ("" for the first available, "1"
// for /dev/i2c-1) and addresses the gauge at addr.
func NewRealReader(busName string, addr uint16) (*RealReader, error) {
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", busName, err)
	}
	return &RealReader{
		bus: bus,
		dev: &i2c.Dev{Addr: addr, Bus: bus},
	}, nil
}

// ReadWord writes the register pointer and reads two bytes back.
func (r *RealReader) ReadWord(reg byte) (uint16, error) {
	var buf [2]byte
	if err := r.dev.Tx([]byte{reg}, buf[:]); err != nil {
		return 0, fmt.Errorf("i2c tx: %w", err)
	}
	return uint16(buf[0])<<8 | uint16(buf[1]), nil
}

// Close releases the bus.
func (r *RealReader) Close() error {
	return r.bus.Close()
}
