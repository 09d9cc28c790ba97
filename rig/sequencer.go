package rig

import (
	"errors"

	teai "github.com/SemalDeSilva/TEAI"
)

// MoveTo drives the actuator to the given station, blocking until the
// position driver reports arrival. The moving line is emitted before
// motion starts and the arrived line after. A driver failure leaves the
// rig's physical state unknown, so it is surfaced as a FAULT line and
// returned instead of being retried.
func (r *Rig) MoveTo(station teai.Station) error {
	r.emitLine(teai.MovingLine(station))

	target := r.cfg.position(station)
	if err := r.motor.MoveAbsolute(target); err != nil {
		r.emitLine(teai.FaultPrefix + err.Error())
		return errors.New("move to " + station.Label() + ": " + err.Error())
	}

	r.currentPosition = target
	r.emitLine(teai.ArrivedLine(station))
	return nil
}
