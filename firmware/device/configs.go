package device

import "machine"

// StepperConfig wires the tray actuator driver.
type StepperConfig struct {
	Pins      [4]machine.Pin
	StepCount uint
	RPM       uint
}

// ScaleConfig wires the HX711 load-cell amplifier.
type ScaleConfig struct {
	Clock machine.Pin
	Data  machine.Pin
}

// AmbientConfig wires the DHT22 sensor.
type AmbientConfig struct {
	Pin machine.Pin
}
