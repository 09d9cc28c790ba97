package rig

import (
	"math"
	"time"

	teai "github.com/SemalDeSilva/TEAI"
)

// acquireStableWeight samples the scale until two consecutive averaged
// readings agree within Tolerance. The settle delay runs once before the
// first reading. The common case exits on the first in-tolerance pair;
// if the retry budget runs out (vibration, drift) the last reading is
// returned anyway with settled=false so the protocol never hangs.
func (r *Rig) acquireStableWeight() (grams float64, settled bool) {
	time.Sleep(r.cfg.SettleDelay)

	last := r.scale.ReadAveraged(r.cfg.WeighSamples)
	for i := 0; i < r.cfg.RetryBudget; i++ {
		time.Sleep(r.cfg.CheckInterval)

		next := r.scale.ReadAveraged(r.cfg.WeighSamples)
		if math.Abs(next-last) < r.cfg.Tolerance {
			return next, true
		}
		last = next
	}

	return last, false
}

// measure produces one Measurement: a stable weight plus the freshest
// ambient values. The ambient sensor is polled directly here so the
// measurement does not depend on the scheduler having run recently; a
// poll with nothing available falls back to the last known values.
func (r *Rig) measure() teai.Measurement {
	w, _ := r.acquireStableWeight()
	if w < r.cfg.MinimumWeight {
		w = r.cfg.MinimumWeight
	}
	r.lastWeight = w

	r.pollAmbient()
	r.renderWeight()

	return teai.Measurement{
		WeightG:        r.lastWeight,
		TemperatureC:   r.lastTemperature,
		HasTemperature: r.hasTemperature,
		HumidityPct:    r.lastHumidity,
		HasHumidity:    r.hasHumidity,
	}
}
