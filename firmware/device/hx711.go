package device

import (
	"machine"
	"time"
)

// Scale bit-bangs the HX711 24-bit load-cell ADC: clock high/low pulses
// shift out one sample, with one extra pulse selecting channel A at gain
// 128 for the next conversion.
type Scale struct {
	clock machine.Pin
	data  machine.Pin

	offset float64 // raw counts at zero load
	factor float64 // raw counts per gram
}

func NewScale(cfg ScaleConfig) *Scale {
	cfg.Clock.Configure(machine.PinConfig{Mode: machine.PinOutput})
	cfg.Data.Configure(machine.PinConfig{Mode: machine.PinInput})
	cfg.Clock.Low()

	return &Scale{
		clock:  cfg.Clock,
		data:   cfg.Data,
		factor: 1,
	}
}

// SetScaleFactor sets the raw-counts-per-gram conversion, derived offline
// with a reference weight.
func (s *Scale) SetScaleFactor(factor float64) {
	if factor != 0 {
		s.factor = factor
	}
}

// ReadAveraged returns the mean of the given number of samples in grams.
func (s *Scale) ReadAveraged(samples int) float64 {
	return (s.readAverageRaw(samples) - s.offset) / s.factor
}

// Rezero baselines the scale against the current load.
func (s *Scale) Rezero(samples int) {
	s.offset = s.readAverageRaw(samples)
}

func (s *Scale) readAverageRaw(samples int) float64 {
	if samples < 1 {
		samples = 1
	}
	var sum int64
	for i := 0; i < samples; i++ {
		sum += int64(s.readRaw())
	}
	return float64(sum) / float64(samples)
}

func (s *Scale) readRaw() int32 {
	// data goes low when a conversion is ready
	for s.data.Get() {
		time.Sleep(100 * time.Microsecond)
	}

	var v int32
	for i := 0; i < 24; i++ {
		s.clock.High()
		time.Sleep(time.Microsecond)
		v <<= 1
		if s.data.Get() {
			v++
		}
		s.clock.Low()
		time.Sleep(time.Microsecond)
	}

	// 25th pulse: channel A, gain 128 for the next conversion
	s.clock.High()
	time.Sleep(time.Microsecond)
	s.clock.Low()

	// sign-extend the 24-bit two's complement sample
	if v >= 1<<23 {
		v -= 1 << 24
	}
	return v
}
