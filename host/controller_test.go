package host

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/SemalDeSilva/TEAI/rig"
	"github.com/SemalDeSilva/TEAI/sim"
)

type pipeTransport struct {
	io.Reader
	io.Writer
}

// startSimRig runs the real control core against simulated hardware and
// returns a Controller connected to it through in-memory pipes.
func startSimRig(t *testing.T, cfg Config, scale *sim.Scale, ambient *sim.Ambient) *Controller {
	t.Helper()

	rigOut, rigIn := io.Pipe() // board -> host
	cmdOut, cmdIn := io.Pipe() // host -> board
	queue := &sim.ByteQueue{}
	go sim.StreamBytes(queue, cmdOut)

	rigCfg := rig.DefaultConfig()
	rigCfg.SettleDelay = time.Millisecond
	rigCfg.CheckInterval = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	r := rig.New(rigCfg, &sim.Motor{}, scale, ambient, sim.NewDisplay(), queue, rigIn)
	go r.Run(ctx)

	t.Cleanup(func() {
		rigIn.Close()
		cmdIn.Close()
	})

	return New(cfg, pipeTransport{Reader: rigOut, Writer: cmdIn})
}

func testHostConfig(t *testing.T) Config {
	return Config{
		CSVPath:        filepath.Join(t.TempDir(), "measurements.csv"),
		MoveTimeout:    5 * time.Second,
		MeasureTimeout: 5 * time.Second,
		TareTimeout:    5 * time.Second,
	}
}

func TestTareAgainstSimulatedRig(t *testing.T) {
	scale := &sim.Scale{Readings: []float64{12.0, 12.0}}
	c := startSimRig(t, testHostConfig(t), scale, &sim.Ambient{})

	if err := c.Tare(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// boot tare plus the commanded one
	if len(scale.RezeroCalls) != 2 {
		t.Errorf("rezero calls=%v", scale.RezeroCalls)
	}
}

func TestRunCycleAgainstSimulatedRig(t *testing.T) {
	// empty tray at boot-time tare, then the sample rings down to 1.2g
	scale := &sim.Scale{Readings: append([]float64{0}, sim.SettlingReadings(1.2, 0.5, 3)...)}
	ambient := &sim.Ambient{Temperature: 26.5, TempOK: true, Humidity: 60.2, HumOK: true}
	cfg := testHostConfig(t)
	c := startSimRig(t, cfg, scale, ambient)

	var captured []int
	c.CaptureHook = func(sample int) error {
		captured = append(captured, sample)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	rec, err := c.RunCycle(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Measurement.WeightG != 1.2 {
		t.Errorf("weight=%v, want 1.2", rec.Measurement.WeightG)
	}
	if !rec.Measurement.HasTemperature || rec.Measurement.TemperatureC != 26.5 {
		t.Errorf("temperature=%v", rec.Measurement.TemperatureC)
	}
	if len(captured) != 1 || captured[0] != 1 {
		t.Errorf("capture hook calls=%v", captured)
	}

	f, err := os.Open(cfg.CSVPath)
	if err != nil {
		t.Fatalf("csv log not created: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows=%v, want header + 1 record", rows)
	}
	if rows[1][0] != "1" || rows[1][2] != "1.20" || rows[1][3] != "26.5" {
		t.Errorf("record row=%v", rows[1])
	}
}

func TestWaitForTimeout(t *testing.T) {
	cfg := testHostConfig(t)
	cfg.MoveTimeout = 50 * time.Millisecond

	// transport that never answers
	silentIn, _ := io.Pipe()
	c := New(cfg, pipeTransport{Reader: silentIn, Writer: io.Discard})

	err := c.MoveCapture()
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !strings.Contains(err.Error(), "timeout") {
		t.Errorf("error=%v, want timeout", err)
	}
}
