package host

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	teai "github.com/SemalDeSilva/TEAI"
	"github.com/SemalDeSilva/TEAI/labbook"
)

// Record is one completed sample cycle.
type Record struct {
	Sample      int
	Time        time.Time
	Measurement teai.Measurement
}

// RunCycle pushes one sample through the full station sequence: capture,
// weigh, home, then log. The board serializes the physical work; this
// just sequences the commands and collects the results.
func (c *Controller) RunCycle(ctx context.Context, sample int) (Record, error) {
	rec := Record{Sample: sample}

	if err := c.MoveCapture(); err != nil {
		return rec, err
	}
	if c.CaptureHook != nil {
		if err := c.CaptureHook(sample); err != nil {
			log.WithError(err).WithField("sample", sample).Warn("capture hook failed, continuing")
		}
	}

	m, err := c.Weigh()
	if err != nil {
		return rec, err
	}
	rec.Measurement = m
	rec.Time = time.Now()

	if err := c.MoveHome(); err != nil {
		return rec, err
	}

	if c.csv != nil {
		if err := c.csv.Append(rec); err != nil {
			log.WithError(err).Warn("could not append CSV row")
		}
	}
	if c.lab != nil {
		if err := c.lab.AddSample(ctx, labbook.SampleFromMeasurement(sample, rec.Time, m)); err != nil {
			log.WithError(err).Warn("could not upload sample to labbook")
		}
	}

	return rec, nil
}

// Run is the interactive batch loop: tare once with an empty tray, then
// cycle one sample per ENTER until the operator quits with q.
func (c *Controller) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Make sure tray is EMPTY, then taring...")
	if err := c.Tare(); err != nil {
		log.WithError(err).Warn("initial tare failed; reset the board with an empty tray")
	} else {
		fmt.Fprintln(out, "Tray tared.")
	}

	if c.lab != nil {
		name := c.cfg.LabbookSession
		if name == "" {
			name = "TEAI " + time.Now().Format("2006-01-02 15:04")
		}
		if _, err := c.lab.CreateSession(ctx, name); err != nil {
			log.WithError(err).Warn("could not create labbook session, uploads disabled")
			c.lab = nil
		}
	}

	scanner := bufio.NewScanner(in)
	for sample := 1; ; sample++ {
		fmt.Fprintf(out, "\nPlace sample #%d on the tray.\nPress ENTER to run cycle, or q and ENTER to quit: ", sample)
		if !scanner.Scan() {
			break
		}
		if strings.TrimSpace(strings.ToLower(scanner.Text())) == "q" {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rec, err := c.RunCycle(ctx, sample)
		if err != nil {
			log.WithError(err).WithField("sample", sample).Error("cycle failed")
			continue
		}

		fmt.Fprintf(out, "Sample #%d: %s\n", sample, rec.Measurement.Line())
	}

	if c.lab != nil {
		if err := c.lab.Done(ctx); err != nil {
			log.WithError(err).Warn("could not close labbook session")
		}
	}

	fmt.Fprintln(out, "Done.")
	return nil
}
