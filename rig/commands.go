package rig

import (
	teai "github.com/SemalDeSilva/TEAI"
)

// Command maps one protocol byte to its action. Each command runs to
// completion, all of its output included, before the next byte is read.
type Command struct {
	Flag        byte
	Run         func(*Rig) error
	Description string
}

var (
	CaptureCommand = &Command{
		Flag: teai.CmdCapture,
		Run: func(r *Rig) error {
			if err := r.MoveTo(teai.StationCapture); err != nil {
				return err
			}
			r.showStatus("At camera")
			return nil
		},
		Description: "Move the tray to the camera capture station.",
	}
	WeighCommand = &Command{
		Flag: teai.CmdWeigh,
		Run: func(r *Rig) error {
			if err := r.MoveTo(teai.StationWeigh); err != nil {
				return err
			}

			r.showStatus("Weighing...")
			m := r.measure()

			r.emitLine(m.Line())
			r.emitLine(teai.LineWeighDone)
			r.showStatus("Weighed")
			return nil
		},
		Description: "Move the tray over the load cell and report a stable measurement.",
	}
	HomeCommand = &Command{
		Flag: teai.CmdHome,
		Run: func(r *Rig) error {
			if err := r.MoveTo(teai.StationHome); err != nil {
				return err
			}
			r.showStatus("Place sample")
			return nil
		},
		Description: "Return the tray home and prompt for the next sample.",
	}
	TareCommand = &Command{
		Flag: teai.CmdTare,
		Run: func(r *Rig) error {
			r.emitLine(teai.LineTaring)

			r.scale.Rezero(r.cfg.TareSamples)
			r.lastWeight = r.cfg.MinimumWeight
			r.renderWeight()
			r.showStatus("Tared")

			r.emitLine(teai.LineZeroDone)
			return nil
		},
		Description: "Re-zero the scale against the current load.",
	}
)

var commands = []*Command{
	CaptureCommand,
	WeighCommand,
	HomeCommand,
	TareCommand,
}

// handleCommand dispatches one inbound byte. Bytes that match no command
// are dropped without a response.
func (r *Rig) handleCommand(b byte) error {
	cmd, ok := r.commands[b]
	if !ok {
		return nil
	}
	return cmd.Run(r)
}
