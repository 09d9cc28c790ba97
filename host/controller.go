package host

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.bug.st/serial"

	teai "github.com/SemalDeSilva/TEAI"
	"github.com/SemalDeSilva/TEAI/labbook"
)

// Controller drives the rig over its serial protocol: it sends command
// bytes and consumes the board's status lines.
type Controller struct {
	cfg Config

	port   io.Writer
	closer io.Closer
	lines  chan string

	csv *CSVLog
	lab *labbook.Client

	// CaptureHook runs while the tray sits at the capture station, before
	// weighing. Image capture plugs in here; by default it is a no-op.
	CaptureHook func(sample int) error
}

// Open connects to the board on the configured serial port and drains its
// boot chatter.
func Open(cfg Config) (*Controller, error) {
	mode := &serial.Mode{BaudRate: cfg.BaudRate}
	port, err := serial.Open(cfg.Port, mode)
	if err != nil {
		return nil, errors.Wrapf(err, "opening serial port %s", cfg.Port)
	}

	c := New(cfg, port)
	c.closer = port

	log.WithField("port", cfg.Port).Info("connected, draining boot messages")
	time.Sleep(cfg.BootDelay)
	c.drain()

	return c, nil
}

// New wires a Controller over an already-open transport. Used directly by
// tests and the simulator, which connect through in-memory pipes.
func New(cfg Config, rw io.ReadWriter) *Controller {
	c := &Controller{
		cfg:   cfg,
		port:  rw,
		lines: make(chan string, 64),
	}

	if cfg.CSVPath != "" {
		c.csv = NewCSVLog(cfg.CSVPath)
	}
	if cfg.LabbookAddr != "" {
		c.lab = labbook.NewClient(cfg.LabbookAddr)
	}

	go c.readLines(rw)
	return c
}

func (c *Controller) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// readLines scans the transport into the line channel until EOF.
func (c *Controller) readLines(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		log.WithField("board", line).Debug("serial line")
		c.lines <- line
	}
	close(c.lines)
}

// drain discards any lines already buffered, like the Python host's
// post-connect flush.
func (c *Controller) drain() {
	for {
		select {
		case line, ok := <-c.lines:
			if !ok {
				return
			}
			log.WithField("board", line).Debug("discarding boot line")
		default:
			return
		}
	}
}

func (c *Controller) send(b byte) error {
	_, err := c.port.Write([]byte{b})
	return errors.Wrapf(err, "sending command %q", b)
}

// waitFor consumes lines until the expected one arrives or the timeout
// expires.
func (c *Controller) waitFor(expected string, timeout time.Duration) error {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		select {
		case line, ok := <-c.lines:
			if !ok {
				return errors.Errorf("connection closed waiting for %q", expected)
			}
			if line == expected {
				return nil
			}
		case <-deadline.C:
			return errors.Errorf("timeout waiting for %q", expected)
		}
	}
}

// readMeasurement consumes lines until WEIGH_DONE, remembering the last
// MEASURED line seen.
func (c *Controller) readMeasurement(timeout time.Duration) (teai.Measurement, error) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	var m teai.Measurement
	var seen bool
	for {
		select {
		case line, ok := <-c.lines:
			if !ok {
				return m, errors.New("connection closed waiting for measurement")
			}
			if strings.HasPrefix(line, teai.MeasuredPrefix) {
				parsed, err := teai.ParseMeasuredLine(line)
				if err != nil {
					log.WithError(err).Warn("malformed measured line")
					continue
				}
				m, seen = parsed, true
			}
			if line == teai.LineWeighDone {
				if !seen {
					return m, errors.New("weigh finished without a MEASURED line")
				}
				return m, nil
			}
		case <-deadline.C:
			return m, errors.New("timeout waiting for measurement")
		}
	}
}

// Tare re-zeros the scale. Run it with an empty tray.
func (c *Controller) Tare() error {
	if err := c.send(teai.CmdTare); err != nil {
		return err
	}
	return c.waitFor(teai.LineZeroDone, c.cfg.TareTimeout)
}

// MoveCapture sends the tray to the camera station.
func (c *Controller) MoveCapture() error {
	if err := c.send(teai.CmdCapture); err != nil {
		return err
	}
	return c.waitFor(teai.ArrivedLine(teai.StationCapture), c.cfg.MoveTimeout)
}

// MoveHome returns the tray to the home station.
func (c *Controller) MoveHome() error {
	if err := c.send(teai.CmdHome); err != nil {
		return err
	}
	return c.waitFor(teai.ArrivedLine(teai.StationHome), c.cfg.MoveTimeout)
}

// Weigh sends the tray to the load cell and returns the measurement.
func (c *Controller) Weigh() (teai.Measurement, error) {
	if err := c.send(teai.CmdWeigh); err != nil {
		return teai.Measurement{}, err
	}
	return c.readMeasurement(c.cfg.MeasureTimeout)
}
