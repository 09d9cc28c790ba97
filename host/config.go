package host

import (
	"os"
	"strconv"
	"time"
)

// Config holds host-side settings for talking to the rig.
type Config struct {
	Port     string
	BaudRate int

	CSVPath string

	// LabbookAddr enables measurement upload when non-empty.
	LabbookAddr    string
	LabbookSession string

	// BootDelay is how long to drain boot chatter after opening the port;
	// the board resets when the serial connection opens.
	BootDelay time.Duration

	MoveTimeout    time.Duration
	MeasureTimeout time.Duration
	TareTimeout    time.Duration
}

// FromEnv builds a Config from TEAI_* environment variables with the same
// defaults the rig has always used.
func FromEnv() Config {
	cfg := Config{
		Port:     envOr("TEAI_PORT", "/dev/ttyACM0"),
		BaudRate: 115200,

		CSVPath: envOr("TEAI_CSV", "measurements_log.csv"),

		LabbookAddr:    os.Getenv("TEAI_LABBOOK_ADDR"),
		LabbookSession: os.Getenv("TEAI_LABBOOK_SESSION"),

		BootDelay:      2 * time.Second,
		MoveTimeout:    15 * time.Second,
		MeasureTimeout: 20 * time.Second,
		TareTimeout:    20 * time.Second,
	}

	if baud := os.Getenv("TEAI_BAUD"); baud != "" {
		if v, err := strconv.Atoi(baud); err == nil {
			cfg.BaudRate = v
		}
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
