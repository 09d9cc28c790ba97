package rig

import (
	"context"
	"time"
)

// maybePollAmbient refreshes the ambient values at most once per
// AmbientInterval. It is the only caller of the sensor outside of a
// weigh, so a slow or flaky sensor never delays command handling by more
// than one poll.
func (r *Rig) maybePollAmbient(now time.Time) {
	if !r.lastAmbientPoll.IsZero() && now.Sub(r.lastAmbientPoll) < r.cfg.AmbientInterval {
		return
	}
	r.lastAmbientPoll = now
	r.pollAmbient()
}

// pollAmbient reads both ambient values and folds them into the state.
// A value the sensor cannot provide right now keeps its previous reading;
// stale data beats flicker on these sensors.
func (r *Rig) pollAmbient() {
	if t, ok := r.ambient.ReadTemperature(); ok {
		r.lastTemperature, r.hasTemperature = t, true
	}
	if h, ok := r.ambient.ReadHumidity(); ok {
		r.lastHumidity, r.hasHumidity = h, true
	}
	r.renderAmbient()
}

// Tick runs one pass of the cooperative loop: weight render, conditional
// ambient poll, then at most one command byte processed to completion.
// A command that blocks (a move, a weigh) suspends the other phases until
// it finishes; the rig is a single physical resource so commands are
// serialized by construction.
func (r *Rig) Tick() error {
	r.renderWeight()
	r.maybePollAmbient(time.Now())

	b, err := r.in.ReadByte()
	if err != nil {
		if r.cfg.IdleSleep > 0 {
			time.Sleep(r.cfg.IdleSleep)
		}
		return nil
	}
	return r.handleCommand(b)
}

// Run boots the rig and ticks until the context is canceled or a command
// hits an unrecoverable actuator fault. There is no recovery path for the
// latter; the rig needs operator intervention.
func (r *Rig) Run(ctx context.Context) error {
	r.Boot()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := r.Tick(); err != nil {
			return err
		}
	}
}
