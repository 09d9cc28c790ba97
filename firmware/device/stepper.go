package device

import (
	"errors"

	"tinygo.org/x/drivers/easystepper"
)

// Stepper drives the tray actuator to absolute positions on top of the
// relative-move easystepper driver.
type Stepper struct {
	dev      *easystepper.Device
	position int32
}

func NewStepper(cfg StepperConfig) (*Stepper, error) {
	dev, err := easystepper.New(easystepper.DeviceConfig{
		Pin1:      cfg.Pins[0],
		Pin2:      cfg.Pins[1],
		Pin3:      cfg.Pins[2],
		Pin4:      cfg.Pins[3],
		StepCount: cfg.StepCount,
		RPM:       cfg.RPM,
		Mode:      easystepper.ModeFour,
	})
	if err != nil {
		return nil, errors.New("error creating stepper: " + err.Error())
	}
	dev.Configure()

	return &Stepper{dev: dev}, nil
}

// MoveAbsolute blocks until the actuator has stepped to the target.
func (s *Stepper) MoveAbsolute(target int32) error {
	s.dev.Move(target - s.position)
	s.position = target
	return nil
}

// SetCurrentPosition defines the origin without moving. Done once at boot
// with the tray parked at home.
func (s *Stepper) SetCurrentPosition(steps int32) {
	s.position = steps
}
