package rig

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	teai "github.com/SemalDeSilva/TEAI"
	"github.com/SemalDeSilva/TEAI/sim"
)

var errStall = errors.New("stall detected")

// testConfig keeps all waits tiny so the full retry budget stays well
// under a second.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.SettleDelay = time.Millisecond
	cfg.CheckInterval = time.Millisecond
	return cfg
}

type harness struct {
	rig     *Rig
	motor   *sim.Motor
	scale   *sim.Scale
	ambient *sim.Ambient
	display *sim.Display
	in      *sim.ByteQueue
	out     *bytes.Buffer
}

func newHarness(cfg Config) *harness {
	h := &harness{
		motor:   &sim.Motor{},
		scale:   &sim.Scale{},
		ambient: &sim.Ambient{},
		display: sim.NewDisplay(),
		in:      &sim.ByteQueue{},
		out:     &bytes.Buffer{},
	}
	h.rig = New(cfg, h.motor, h.scale, h.ambient, h.display, h.in, h.out)
	return h
}

func (h *harness) lines() []string {
	out := strings.TrimSuffix(h.out.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func assertLines(t *testing.T, h *harness, want []string) {
	t.Helper()
	got := h.lines()
	if len(got) != len(want) {
		t.Fatalf("got %d lines %q, want %d lines %q", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBootSequence(t *testing.T) {
	h := newHarness(testConfig())
	h.rig.Boot()

	assertLines(t, h, []string{"BOOTING...", "READY"})

	if len(h.scale.RezeroCalls) != 1 || h.scale.RezeroCalls[0] != h.rig.cfg.TareSamples {
		t.Errorf("expected one boot tare with %d samples, got %v", h.rig.cfg.TareSamples, h.scale.RezeroCalls)
	}
	if h.scale.ScaleFactor() != h.rig.cfg.ScaleFactor {
		t.Errorf("scale factor not configured: got %v", h.scale.ScaleFactor())
	}
	if h.motor.Position != h.rig.cfg.HomePosition {
		t.Errorf("origin not defined: position=%d", h.motor.Position)
	}
	if got := h.display.Line(1); got != "T: --.- C       " {
		t.Errorf("temperature row before first reading: %q", got)
	}
	if got := h.display.Line(2); got != "H: --.- %       " {
		t.Errorf("humidity row before first reading: %q", got)
	}
}

func TestMoveToEmitsStatusAndUpdatesPosition(t *testing.T) {
	h := newHarness(testConfig())

	if err := h.rig.MoveTo(teai.StationCapture); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertLines(t, h, []string{"MOVING: CAPTURE", "AT_CAPTURE"})
	if h.rig.CurrentPosition() != h.rig.cfg.CapturePosition {
		t.Errorf("position=%d, want %d", h.rig.CurrentPosition(), h.rig.cfg.CapturePosition)
	}
	if len(h.motor.Moves) != 1 || h.motor.Moves[0] != h.rig.cfg.CapturePosition {
		t.Errorf("driver moves=%v", h.motor.Moves)
	}
}

func TestMoveToFaultIsFatalForTheCommand(t *testing.T) {
	h := newHarness(testConfig())
	h.motor.Err = errStall

	err := h.rig.MoveTo(teai.StationWeigh)
	if err == nil {
		t.Fatal("expected error from failed move")
	}

	assertLines(t, h, []string{"MOVING: WEIGH", "FAULT: stall detected"})
	if h.rig.CurrentPosition() != 0 {
		t.Errorf("position must not advance on fault, got %d", h.rig.CurrentPosition())
	}
}

func TestRunHaltsOnActuatorFault(t *testing.T) {
	h := newHarness(testConfig())
	h.motor.Err = errStall
	h.in.Push(teai.CmdCapture, teai.CmdHome)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- h.rig.Run(ctx)
	}()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected fault error from Run")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not halt on fault")
	}

	// the byte behind the faulting command is never consumed
	if h.in.Len() != 1 {
		t.Errorf("expected the trailing command to stay pending, %d bytes left", h.in.Len())
	}
}
