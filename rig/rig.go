package rig

import (
	"io"
	"time"

	teai "github.com/SemalDeSilva/TEAI"
)

// Rig owns the whole controller state: the drivers, the station bindings
// and the last known measurement values. All mutation happens from the
// single tick loop, so no locking is needed.
type Rig struct {
	cfg Config

	motor   PositionDriver
	scale   MassSensor
	ambient AmbientSensor
	display Display

	in  ByteSource
	out io.Writer

	lastWeight      float64
	lastTemperature float64
	hasTemperature  bool
	lastHumidity    float64
	hasHumidity     bool
	currentPosition int32

	lastAmbientPoll time.Time // zero = never polled
	lastWeightRow   string

	commands map[byte]*Command
}

// New wires a Rig from its drivers and channels. in is the command byte
// source and out the response channel, normally both sides of the same
// serial link.
func New(cfg Config, motor PositionDriver, scale MassSensor, ambient AmbientSensor, display Display, in ByteSource, out io.Writer) *Rig {
	r := &Rig{
		cfg:     cfg,
		motor:   motor,
		scale:   scale,
		ambient: ambient,
		display: display,
		in:      in,
		out:     out,
	}

	r.commands = make(map[byte]*Command, len(commands))
	for _, cmd := range commands {
		r.commands[cmd.Flag] = cmd
	}

	return r
}

// Boot announces startup, defines the actuator origin at the current
// physical position, configures the scale and tares it against the empty
// tray. The host is told the rig is ready only after all of that.
func (r *Rig) Boot() {
	r.emitLine(teai.LineBooting)

	r.motor.SetCurrentPosition(r.cfg.HomePosition)
	r.currentPosition = r.cfg.HomePosition

	r.scale.SetScaleFactor(r.cfg.ScaleFactor)
	r.scale.Rezero(r.cfg.TareSamples)
	r.lastWeight = r.cfg.MinimumWeight

	r.renderWeight()
	r.renderAmbient()
	r.showStatus("Ready")

	r.emitLine(teai.LineReady)
}

// LastWeight returns the last reported weight in grams.
func (r *Rig) LastWeight() float64 {
	return r.lastWeight
}

// CurrentPosition returns the actuator position in steps.
func (r *Rig) CurrentPosition() int32 {
	return r.currentPosition
}

// Ambient returns the last known temperature and humidity along with
// whether each has ever been read.
func (r *Rig) Ambient() (tempC float64, hasTemp bool, humPct float64, hasHum bool) {
	return r.lastTemperature, r.hasTemperature, r.lastHumidity, r.hasHumidity
}

func (r *Rig) emitLine(s string) {
	io.WriteString(r.out, s+"\n")
}
