package teai

import (
	"errors"
	"strconv"
	"strings"
)

// Command bytes accepted on the serial channel. One byte is one command;
// anything else is discarded without a response.
const (
	CmdCapture = 'C'
	CmdWeigh   = 'W'
	CmdHome    = 'H'
	CmdTare    = 'Z'
)

// Fixed response lines.
const (
	LineBooting   = "BOOTING..."
	LineReady     = "READY"
	LineTaring    = "TARING"
	LineZeroDone  = "ZERO_DONE"
	LineWeighDone = "WEIGH_DONE"

	MovingPrefix   = "MOVING: "
	ArrivedPrefix  = "AT_"
	MeasuredPrefix = "MEASURED"
	FaultPrefix    = "FAULT: "
)

// Station is a named fixed position the tray actuator can be commanded to.
type Station int

const (
	StationHome Station = iota
	StationCapture
	StationWeigh
)

func (s Station) Label() string {
	switch s {
	case StationCapture:
		return "CAPTURE"
	case StationWeigh:
		return "WEIGH"
	default:
		fallthrough
	case StationHome:
		return "HOME"
	}
}

// MovingLine is the status line emitted before a move starts.
func MovingLine(s Station) string {
	return MovingPrefix + s.Label()
}

// ArrivedLine is the status line emitted once the actuator has arrived.
func ArrivedLine(s Station) string {
	return ArrivedPrefix + s.Label()
}

// Measurement is one weigh result. Temperature and humidity may be absent
// when the ambient sensor has never produced a reading.
type Measurement struct {
	WeightG float64

	TemperatureC   float64
	HasTemperature bool

	HumidityPct float64
	HasHumidity bool
}

// Line renders the measurement in wire format, e.g.
// "MEASURED W=1.2g T=26.5C H=60.2%". Absent ambient values render as nan.
func (m Measurement) Line() string {
	var b strings.Builder
	b.WriteString(MeasuredPrefix)
	b.WriteString(" W=")
	b.WriteString(formatValue(m.WeightG, true))
	b.WriteString("g T=")
	b.WriteString(formatValue(m.TemperatureC, m.HasTemperature))
	b.WriteString("C H=")
	b.WriteString(formatValue(m.HumidityPct, m.HasHumidity))
	b.WriteString("%")
	return b.String()
}

func formatValue(v float64, present bool) string {
	if !present {
		return "nan"
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// ParseMeasuredLine parses a MEASURED wire line back into a Measurement.
// Unit suffixes are tolerated and stripped; a field that does not contain
// a number (e.g. "nan") is reported as absent.
func ParseMeasuredLine(line string) (Measurement, error) {
	if !strings.HasPrefix(line, MeasuredPrefix) {
		return Measurement{}, errors.New("not a measured line: " + line)
	}

	var m Measurement
	for _, part := range strings.Fields(line)[1:] {
		key, val, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		num, ok := extractNumber(val)
		switch key {
		case "W":
			if ok {
				m.WeightG = num
			}
		case "T":
			m.TemperatureC, m.HasTemperature = num, ok
		case "H":
			m.HumidityPct, m.HasHumidity = num, ok
		}
	}
	return m, nil
}

// extractNumber keeps only digits, '.' and '-' so unit suffixes like "1.2g"
// or "60.2%" parse cleanly.
func extractNumber(token string) (float64, bool) {
	var b strings.Builder
	for _, ch := range token {
		if ch >= '0' && ch <= '9' || ch == '.' || ch == '-' {
			b.WriteRune(ch)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
