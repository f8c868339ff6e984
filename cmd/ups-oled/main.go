// Command ups-oled shows UPS battery, host vitals and network state on a
// 1.3" OLED and halts the host when the battery runs low.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"periph.io/x/host/v3"

	"github.com/sweeney/ups-oled/internal/battery"
	"github.com/sweeney/ups-oled/internal/display"
	"github.com/sweeney/ups-oled/internal/gpio"
	"github.com/sweeney/ups-oled/internal/power"
	"github.com/sweeney/ups-oled/internal/status"
	"github.com/sweeney/ups-oled/internal/telemetry"
)

// Fixed wiring and paths.
const (
	pidFile   = "/run/X1200.pid"
	i2cBus    = "1"
	spiPort   = "" // first SPI port, /dev/spidev0.0 on a Pi
	netIface  = "wlan0"
	probeHost = "connectivitycheck.gstatic.com"
)

func main() {
	printState := flag.Bool("print-state", false, "Print power and battery state as JSON and exit")

	flag.Parse()

	if err := run(*printState); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(printState bool) error {
	if err := writePIDFile(pidFile, os.Getpid()); err != nil {
		log.Printf("pid file: %v", err)
	}

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("init periph host: %w", err)
	}

	pld, err := gpio.NewRealReader(gpio.Chip, gpio.PinPLD)
	if err != nil {
		return fmt.Errorf("init gpio: %w", err)
	}
	defer pld.Close()

	gauge, err := battery.NewRealReader(i2cBus, battery.Address)
	if err != nil {
		return fmt.Errorf("init fuel gauge: %w", err)
	}
	defer gauge.Close()
	monitor := battery.NewMonitor(gauge)

	sys := telemetry.NewSystem()
	d := &daemon{
		power:     pld,
		battery:   monitor,
		host:      sys,
		network:   sys,
		tracker:   status.NewTracker(time.Now()),
		iface:     netIface,
		probeHost: probeHost,
		now:       time.Now,
		after:     time.After,
	}

	if printState {
		return d.printState(os.Stdout)
	}

	panel, err := openPanel()
	if err != nil {
		return fmt.Errorf("init display: %w", err)
	}
	defer panel.Close()

	d.display = panel
	d.halter = &power.Halter{
		Display:      panel,
		HostShutdown: power.PowerOff,
		Exit:         os.Exit,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	log.Printf("started: pld=%s/%d gauge=i2c-%s@0x%02X iface=%s", gpio.Chip, gpio.PinPLD, i2cBus, battery.Address, netIface)

	err = d.runLoop(sigCh)
	if errors.Is(err, errHalted) {
		// Exit has already been called; only reachable if it returned.
		return nil
	}
	return err
}

// openPanel claims the DC and RST lines, opens SPI and initialises the panel.
func openPanel() (*display.SH1106, error) {
	dc, err := gpio.NewRealOutput(gpio.Chip, gpio.PinDC)
	if err != nil {
		return nil, err
	}
	rst, err := gpio.NewRealOutput(gpio.Chip, gpio.PinRST)
	if err != nil {
		dc.Close()
		return nil, err
	}

	panel, err := display.OpenSH1106(spiPort, dc, rst)
	if err != nil {
		rst.Close()
		dc.Close()
		return nil, err
	}
	if err := panel.Init(); err != nil {
		panel.Close()
		return nil, err
	}
	return panel, nil
}

// writePIDFile replaces any stale pid file at path with pid.
func writePIDFile(path string, pid int) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove stale %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(pid)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
