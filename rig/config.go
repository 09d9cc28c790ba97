package rig

import (
	"time"

	teai "github.com/SemalDeSilva/TEAI"
)

// Config binds stations to absolute actuator positions and sets the
// weighing and polling parameters. The binding is fixed for the life of
// the process.
type Config struct {
	HomePosition    int32
	CapturePosition int32
	WeighPosition   int32

	// ScaleFactor converts raw load-cell counts to grams. Set once at boot.
	ScaleFactor float64

	// TareSamples is the averaging count used when re-zeroing.
	TareSamples int
	// WeighSamples is the averaging count for each weight reading.
	WeighSamples int

	// SettleDelay is waited before the first reading so a freshly dropped
	// sample stops swinging.
	SettleDelay time.Duration
	// CheckInterval separates consecutive stability checks.
	CheckInterval time.Duration
	// Tolerance is the maximum difference in grams between two consecutive
	// readings for the weight to count as stable.
	Tolerance float64
	// RetryBudget caps the number of stability checks before giving up and
	// returning the last reading as a best effort.
	RetryBudget int

	// MinimumWeight floors reported weights; slightly negative readings
	// after a tare clamp to this.
	MinimumWeight float64

	// AmbientInterval is the minimum delay between ambient sensor polls.
	AmbientInterval time.Duration

	// IdleSleep yields between empty command polls. Leave zero on the MCU
	// where the loop owns the core; set a small value when running on a
	// host OS (simulator, tests).
	IdleSleep time.Duration
}

// DefaultConfig matches the physical rig: home at the origin, capture and
// weigh stations further down the leadscrew.
func DefaultConfig() Config {
	return Config{
		HomePosition:    0,
		CapturePosition: 5600,
		WeighPosition:   10400,

		ScaleFactor: 420.0,

		TareSamples:  20,
		WeighSamples: 5,

		SettleDelay:   500 * time.Millisecond,
		CheckInterval: 200 * time.Millisecond,
		Tolerance:     0.10,
		RetryBudget:   20,

		MinimumWeight: 0.0,

		AmbientInterval: 2 * time.Second,
	}
}

func (c Config) position(s teai.Station) int32 {
	switch s {
	case teai.StationCapture:
		return c.CapturePosition
	case teai.StationWeigh:
		return c.WeighPosition
	default:
		return c.HomePosition
	}
}
