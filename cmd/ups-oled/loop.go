package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"syscall"
	"time"

	"github.com/sweeney/ups-oled/internal/battery"
	"github.com/sweeney/ups-oled/internal/display"
	"github.com/sweeney/ups-oled/internal/gpio"
	"github.com/sweeney/ups-oled/internal/logic"
	"github.com/sweeney/ups-oled/internal/power"
	"github.com/sweeney/ups-oled/internal/status"
	"github.com/sweeney/ups-oled/internal/telemetry"
)

// errHalted is returned once the host shutdown sequence has been started.
// The loop never runs another iteration after it.
var errHalted = errors.New("host shutdown initiated")

// heartbeatFrames is how many frames pass between status log lines.
const heartbeatFrames = 60

// daemon owns every device handle for the lifetime of the loop.
type daemon struct {
	power   gpio.Reader
	battery *battery.Monitor
	host    telemetry.Host
	network telemetry.Network
	display display.Transport
	halter  *power.Halter
	tracker *status.Tracker

	iface     string
	probeHost string

	now   func() time.Time
	after func(time.Duration) <-chan time.Time

	lastPower logic.PowerState
}

// runLoop refreshes the panel until a signal arrives (returns nil), the
// battery policy halts the host (returns errHalted) or a device fails
// (returns the error).
func (d *daemon) runLoop(sig <-chan os.Signal) error {
	for {
		select {
		case s := <-sig:
			return d.exit(s)
		default:
		}

		delay, err := d.iterate()
		if err != nil {
			return err
		}

		select {
		case s := <-sig:
			return d.exit(s)
		case <-d.after(delay):
		}
	}
}

// iterate runs one poll → decide → draw cycle and returns the delay before
// the next one.
func (d *daemon) iterate() (time.Duration, error) {
	high, err := d.power.Read()
	if err != nil {
		return 0, fmt.Errorf("read power pin: %w", err)
	}
	ps := logic.PowerStateFromPin(high)
	if ps != d.lastPower {
		log.Printf("power source: %s", ps)
		d.lastPower = ps
	}

	bat := d.battery.Read()

	if logic.ShouldShutdown(ps, bat.Capacity) {
		d.halter.Perform(fmt.Sprintf("on battery at %d%% (%.2fV)", bat.Capacity, bat.Voltage))
		return 0, errHalted
	}

	r := d.gather(ps, bat)
	frame := display.Rotate180(display.RenderLines(status.Compose(r), display.Width, display.Height))
	if err := d.display.WritePages(display.Pack(frame, display.Width, display.Height)); err != nil {
		return 0, fmt.Errorf("write frame: %w", err)
	}

	d.tracker.Update(r)
	if snap := d.tracker.Snapshot(); snap.Frames%heartbeatFrames == 0 {
		log.Printf("heartbeat: frames=%d uptime=%v power=%s battery=%d%% %.2fV",
			snap.Frames, snap.Uptime().Truncate(time.Second), ps, bat.Capacity, bat.Voltage)
	}

	return logic.NextDelay(ps), nil
}

func (d *daemon) gather(ps logic.PowerState, bat logic.BatteryReading) status.Readings {
	return status.Readings{
		Time:       d.now(),
		Power:      ps,
		Battery:    bat,
		CPUPercent: d.host.CPUPercent(),
		CPUTemp:    d.host.CPUTemperature(),
		Memory:     d.host.MemorySummary(),
		Disk:       d.host.DiskSummary(),
		Network: status.NetworkInfo{
			Interface: d.iface,
			IP:        d.network.LocalIP(d.iface),
			Up:        d.network.InterfaceUp(d.iface),
			Reachable: d.network.ProbeReachable(d.probeHost),
		},
	}
}

// printState reads every source once and writes the JSON snapshot,
// composed lines included, to w. The panel is not touched.
func (d *daemon) printState(w io.Writer) error {
	high, err := d.power.Read()
	if err != nil {
		return fmt.Errorf("read power pin: %w", err)
	}
	d.tracker.Update(d.gather(logic.PowerStateFromPin(high), d.battery.Read()))

	_, err = fmt.Fprintf(w, "%s\n", status.FormatJSON(d.tracker.Snapshot()))
	return err
}

// exit blanks the panel and releases it. The host keeps running.
func (d *daemon) exit(s os.Signal) error {
	log.Printf("received %s, shutting down", signalName(s))
	if err := d.display.Close(); err != nil {
		log.Printf("close display: %v", err)
	}
	return nil
}

func signalName(s os.Signal) string {
	switch s {
	case syscall.SIGINT:
		return "SIGINT"
	case syscall.SIGTERM:
		return "SIGTERM"
	default:
		return "UNKNOWN"
	}
}
