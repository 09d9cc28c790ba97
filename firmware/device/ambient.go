package device

import (
	"time"

	"tinygo.org/x/drivers/dht"
)

// minReadInterval is the DHT22's minimum sampling period; polling faster
// returns garbage.
const minReadInterval = 2 * time.Second

// Ambient reads temperature and humidity from a DHT22. One bus
// transaction delivers both values, so a successful read is cached and
// served for both accessors until it goes stale.
type Ambient struct {
	dev      dht.Device
	lastRead time.Time
}

func NewAmbient(cfg AmbientConfig) *Ambient {
	dev := dht.New(cfg.Pin, dht.DHT22)
	return &Ambient{dev: &dev}
}

func (a *Ambient) ReadTemperature() (float64, bool) {
	if !a.refresh() {
		return 0, false
	}
	t, err := a.dev.TemperatureFloat(dht.C)
	if err != nil {
		return 0, false
	}
	return float64(t), true
}

func (a *Ambient) ReadHumidity() (float64, bool) {
	if !a.refresh() {
		return 0, false
	}
	h, err := a.dev.HumidityFloat()
	if err != nil {
		return 0, false
	}
	return float64(h), true
}

func (a *Ambient) refresh() bool {
	if !a.lastRead.IsZero() && time.Since(a.lastRead) < minReadInterval {
		return true
	}
	if err := a.dev.ReadMeasurements(); err != nil {
		// transient checksum/timing errors are routine on these sensors;
		// the caller keeps its previous values
		return false
	}
	a.lastRead = time.Now()
	return true
}
