package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/SemalDeSilva/TEAI/rig"
	"github.com/SemalDeSilva/TEAI/sim"
)

// simulate runs the real control core against simulated hardware, with
// stdin/stdout standing in for the serial link. Useful for exercising the
// protocol without the board: type C, W, H or Z and watch the responses.
func newSimulateCommand() *cobra.Command {
	var weight float64

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the rig control loop on simulated hardware over stdin/stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			queue := &sim.ByteQueue{}
			go sim.StreamBytes(queue, cmd.InOrStdin())

			rigCfg := rig.DefaultConfig()
			rigCfg.IdleSleep = time.Millisecond

			r := rig.New(
				rigCfg,
				&sim.Motor{StepTime: 100 * time.Microsecond},
				&sim.Scale{Readings: sim.SettlingReadings(weight, 0.8, 6)},
				&sim.Ambient{Temperature: 24.8, TempOK: true, Humidity: 55.0, HumOK: true},
				sim.NewDisplay(),
				queue,
				cmd.OutOrStdout(),
			)

			err := r.Run(cmd.Context())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().Float64Var(&weight, "weight", 1.2, "grams the simulated sample settles to")

	return cmd
}
