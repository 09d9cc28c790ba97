package host

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

var csvHeader = []string{"sample_idx", "timestamp", "weight_g", "temp_c", "humidity_pct"}

// CSVLog appends measurement records to a CSV file, writing the header
// when the file is new.
type CSVLog struct {
	path string
}

func NewCSVLog(path string) *CSVLog {
	return &CSVLog{path: path}
}

func (l *CSVLog) Append(rec Record) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "opening %s", l.path)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return errors.Wrap(err, "stat csv log")
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			return errors.Wrap(err, "writing csv header")
		}
	}
	if err := w.Write(rec.row()); err != nil {
		return errors.Wrap(err, "writing csv row")
	}
	w.Flush()
	return errors.Wrap(w.Error(), "flushing csv log")
}

func (r Record) row() []string {
	m := r.Measurement
	temp, hum := "", ""
	if m.HasTemperature {
		temp = strconv.FormatFloat(m.TemperatureC, 'f', 1, 64)
	}
	if m.HasHumidity {
		hum = strconv.FormatFloat(m.HumidityPct, 'f', 1, 64)
	}
	return []string{
		strconv.Itoa(r.Sample),
		r.Time.Format("2006-01-02 15:04:05"),
		strconv.FormatFloat(m.WeightG, 'f', 2, 64),
		temp,
		hum,
	}
}
