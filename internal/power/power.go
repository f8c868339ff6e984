// Package power halts the host when the battery policy says so.
package power

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"time"
)

// Closer releases the display before the host goes down.
type Closer interface {
	Close() error
}

// Halter runs the one-way shutdown sequence. HostShutdown and Exit are
// injected so the sequence can be exercised without powering anything off.
type Halter struct {
	Display      Closer
	HostShutdown func() error
	Exit         func(code int)

	done bool
}

// Perform closes the display, asks the host to power off and exits the
// process: code 0 when the power-off command was accepted, 1 otherwise.
// It runs at most once.
func (h *Halter) Perform(reason string) {
	if h.done {
		return
	}
	h.done = true

	log.Printf("power: CRITICAL: halting host: %s", reason)

	if h.Display != nil {
		if err := h.Display.Close(); err != nil {
			log.Printf("power: close display: %v", err)
		}
	}

	code := 0
	if err := h.HostShutdown(); err != nil {
		log.Printf("power: host shutdown failed: %v", err)
		code = 1
	}
	h.Exit(code)
}

// PowerOffTimeout bounds how long the shutdown command may take to return.
const PowerOffTimeout = 30 * time.Second

// PowerOff asks systemd for an orderly power-off via shutdown(8).
func PowerOff() error {
	ctx, cancel := context.WithTimeout(context.Background(), PowerOffTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "shutdown", "-h", "now").CombinedOutput()
	if err != nil {
		return fmt.Errorf("shutdown -h now: %w (output: %q)", err, out)
	}
	return nil
}
