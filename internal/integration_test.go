package internal

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/sweeney/ups-oled/internal/battery"
	"github.com/sweeney/ups-oled/internal/display"
	"github.com/sweeney/ups-oled/internal/gpio"
	"github.com/sweeney/ups-oled/internal/logic"
	"github.com/sweeney/ups-oled/internal/status"
)

// frameFor runs the pin → gauge → compose → render → pack path once.
func frameFor(t *testing.T, pin *gpio.FakeReader, gauge *battery.FakeReader, at time.Time) (logic.PowerState, logic.BatteryReading, []byte) {
	t.Helper()

	high, err := pin.Read()
	if err != nil {
		t.Fatalf("pin read: %v", err)
	}
	ps := logic.PowerStateFromPin(high)
	bat := battery.NewMonitor(gauge).Read()

	lines := status.Compose(status.Readings{
		Time:    at,
		Power:   ps,
		Battery: bat,
		CPUTemp: "T: 45.0'C",
		Memory:  "MEM: 20.0%",
		Disk:    "DISK: 7.0/29G 24%",
		Network: status.NetworkInfo{Interface: "wlan0", IP: "192.168.1.42", Up: true, Reachable: true},
	})
	frame := display.Rotate180(display.RenderLines(lines, display.Width, display.Height))
	return ps, bat, display.Pack(frame, display.Width, display.Height)
}

// TestIntegrationFrameFlow drives the full frame path with fakes and pushes
// the frames through a transport.
func TestIntegrationFrameFlow(t *testing.T) {
	pin := gpio.NewFakeReader(true, false)
	gauge := battery.NewFakeReader(0x5A00, 0xD020) // 90%, 4.16V
	transport := &display.FakeTransport{}
	at := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	ps, bat, frame := frameFor(t, pin, gauge, at)
	if ps != logic.PowerAC {
		t.Errorf("first sample: expected AC, got %s", ps)
	}
	if bat.Capacity != 90 {
		t.Errorf("capacity: expected 90, got %d", bat.Capacity)
	}
	if err := transport.WritePages(frame); err != nil {
		t.Fatalf("write: %v", err)
	}

	gauge.SetCapacity(45)
	ps, bat, frame = frameFor(t, pin, gauge, at.Add(logic.NextDelay(ps)))
	if ps != logic.PowerBattery {
		t.Errorf("second sample: expected BATTERY, got %s", ps)
	}
	if logic.ShouldShutdown(ps, bat.Capacity) {
		t.Error("45% on battery should not shut down")
	}
	if err := transport.WritePages(frame); err != nil {
		t.Fatalf("write: %v", err)
	}

	if len(transport.Frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(transport.Frames))
	}
	blank := display.Blank(display.Width, display.Height)
	for i, f := range transport.Frames {
		if len(f) != len(blank) {
			t.Errorf("frame %d: got %d bytes, want %d", i, len(f), len(blank))
		}
		if bytes.Equal(f, blank) {
			t.Errorf("frame %d: expected ink, got a blank frame", i)
		}
	}
	if bytes.Equal(transport.Frames[0], transport.Frames[1]) {
		t.Error("frames should differ after the battery status changed")
	}
}

// TestIntegrationGaugeFailure verifies a dead fuel gauge still produces a frame.
func TestIntegrationGaugeFailure(t *testing.T) {
	pin := gpio.NewFakeReader(false)
	gauge := battery.NewFakeReader(0x5A00, 0xD020)
	gauge.ReadError = errors.New("i2c: remote I/O error")

	ps, bat, frame := frameFor(t, pin, gauge, time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))

	if bat.Capacity != 0 || bat.Voltage != 0 {
		t.Errorf("expected zero reading, got %+v", bat)
	}
	if got := logic.FormatBatteryStatus(ps, bat.Capacity); got != "-0%!!" {
		t.Errorf("battery status: got %q, want %q", got, "-0%!!")
	}
	if len(frame) != (display.Width/8)*display.Height {
		t.Errorf("frame length: got %d", len(frame))
	}
}
