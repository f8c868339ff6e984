// Package gpio provides GPIO access with hardware abstraction.
// The real implementation uses the Linux GPIO character device.
// The fake implementations allow testing without hardware.
package gpio

// Reader reads the UPS power-loss-detect line.
type Reader interface {
	// Read returns the raw line level: true = high = AC present.
	Read() (bool, error)

	// Close releases GPIO resources.
	Close() error
}

// Output drives a single output line.
type Output interface {
	Set(high bool) error
	Close() error
}

// Chip is the gpiochip carrying the 40-pin header on a Raspberry Pi 5.
const Chip = "gpiochip4"

// Pin definitions (BCM numbering)
const (
	PinPLD = 6  // UPS power loss detect, high while on mains
	PinDC  = 24 // OLED data/command select
	PinRST = 25 // OLED reset
)
