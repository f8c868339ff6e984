package display

import (
	"fmt"
	"io"
	"time"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"

	"github.com/sweeney/ups-oled/internal/gpio"
)

// Panel geometry.
const (
	Width  = 128
	Height = 64
	pages  = Height / 8
)

const spiFreq = 8 * physic.MegaHertz

// initSequence configures the controller for a 128×64 panel in page
// addressing mode. The display is switched on separately.
var initSequence = []byte{
	0xAE,       // display off
	0x02, 0x10, // column address 2 (SH1106 RAM is 132 wide)
	0x40,       // start line 0
	0x81, 0xA0, // contrast
	0xC0,       // COM scan direction normal
	0xA6,       // normal display
	0xA8, 0x3F, // multiplex ratio 1/64
	0xD3, 0x00, // display offset 0
	0xD5, 0x80, // clock divide / oscillator
	0xD9, 0xF1, // pre-charge
	0xDA, 0x12, // COM pins
	0xDB, 0x40, // VCOMH deselect
	0x20, 0x02, // page addressing mode
	0xA4,       // resume to RAM content
	0xA6,       // not inverted
}

// SH1106 drives the OLED over SPI with separate DC and RST lines.
type SH1106 struct {
	conn   spi.Conn
	closer io.Closer
	dc     gpio.Output
	rst    gpio.Output
	sleep  func(time.Duration)
	closed bool
}

// OpenSH1106 opens the named SPI port ("" for the first available) and
// returns an uninitialised driver. host.Init must have been called.
func OpenSH1106(spiName string, dc, rst gpio.Output) (*SH1106, error) {
	port, err := spireg.Open(spiName)
	if err != nil {
		return nil, fmt.Errorf("open spi port %q: %w", spiName, err)
	}
	conn, err := port.Connect(spiFreq, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("connect spi: %w", err)
	}
	return NewSH1106(conn, port, dc, rst), nil
}

// NewSH1106 wraps an already connected SPI conn. closer is closed on Close.
func NewSH1106(conn spi.Conn, closer io.Closer, dc, rst gpio.Output) *SH1106 {
	return &SH1106{
		conn:   conn,
		closer: closer,
		dc:     dc,
		rst:    rst,
		sleep:  time.Sleep,
	}
}

// Init resets the controller, sends the configuration and turns the panel on.
func (d *SH1106) Init() error {
	for _, level := range []bool{true, false, true} {
		if err := d.rst.Set(level); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		d.sleep(100 * time.Millisecond)
	}
	d.sleep(100 * time.Millisecond)

	for _, c := range initSequence {
		if err := d.command(c); err != nil {
			return fmt.Errorf("init: %w", err)
		}
	}
	d.sleep(100 * time.Millisecond)

	if err := d.command(0xAF); err != nil {
		return fmt.Errorf("display on: %w", err)
	}
	return nil
}

func (d *SH1106) command(c byte) error {
	if err := d.dc.Set(false); err != nil {
		return fmt.Errorf("dc low: %w", err)
	}
	if err := d.conn.Tx([]byte{c}, nil); err != nil {
		return fmt.Errorf("command 0x%02X: %w", c, err)
	}
	return nil
}

// WritePages sends a packed frame. Buffer bits are 0 for ink, the panel
// lights a pixel on 1, so every byte is inverted on the wire.
func (d *SH1106) WritePages(buf []byte) error {
	if len(buf) != Width*pages {
		return fmt.Errorf("frame is %d bytes, want %d", len(buf), Width*pages)
	}

	data := make([]byte, Width)
	for page := 0; page < pages; page++ {
		for _, c := range []byte{0xB0 + byte(page), 0x02, 0x10} {
			if err := d.command(c); err != nil {
				return fmt.Errorf("page %d: %w", page, err)
			}
		}
		if err := d.dc.Set(true); err != nil {
			return fmt.Errorf("page %d: dc high: %w", page, err)
		}
		for i := range data {
			data[i] = ^buf[i+Width*page]
		}
		if err := d.conn.Tx(data, nil); err != nil {
			return fmt.Errorf("page %d: write: %w", page, err)
		}
	}
	return nil
}

// Clear blanks the panel.
func (d *SH1106) Clear() error {
	return d.WritePages(Blank(Width, Height))
}

// Close blanks and switches off the panel, then releases SPI and the
// control lines. All steps run even if an earlier one fails. Calls after
// the first are no-ops.
func (d *SH1106) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true

	var errs []error

	if err := d.Clear(); err != nil {
		errs = append(errs, fmt.Errorf("clear: %w", err))
	}
	if err := d.command(0xAE); err != nil {
		errs = append(errs, fmt.Errorf("display off: %w", err))
	}
	if d.closer != nil {
		if err := d.closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close spi: %w", err))
		}
	}
	if err := d.dc.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close dc: %w", err))
	}
	if err := d.rst.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close rst: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
