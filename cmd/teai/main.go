package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SemalDeSilva/TEAI/host"
)

var (
	cfg     host.Config
	verbose bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	cfg = host.FromEnv()

	rootCmd := &cobra.Command{
		Use:   "teai",
		Short: "Drive the TEAI sample-handling rig",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.Port, "port", cfg.Port, "serial port of the rig board")
	rootCmd.PersistentFlags().IntVar(&cfg.BaudRate, "baud", cfg.BaudRate, "serial baud rate")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every serial line")

	rootCmd.AddCommand(
		newRunCommand(),
		newTareCommand(),
		newMoveCommand(),
		newWeighCommand(),
		newSimulateCommand(),
	)

	return rootCmd
}

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the interactive batch loop: tare once, then one cycle per sample",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := host.Open(cfg)
			if err != nil {
				return err
			}
			defer c.Close()

			return c.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&cfg.CSVPath, "csv", cfg.CSVPath, "CSV file for measurement records")
	cmd.Flags().StringVar(&cfg.LabbookAddr, "labbook", cfg.LabbookAddr, "labbook service address, enables upload")
	cmd.Flags().StringVar(&cfg.LabbookSession, "session", cfg.LabbookSession, "labbook session name")

	return cmd
}

func newTareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tare",
		Short: "Re-zero the scale (run with an empty tray)",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := host.Open(cfg)
			if err != nil {
				return err
			}
			defer c.Close()

			if err := c.Tare(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Tray tared.")
			return nil
		},
	}
}

func newMoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "move {home|capture}",
		Short:     "Move the tray to a station",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"home", "capture"},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := host.Open(cfg)
			if err != nil {
				return err
			}
			defer c.Close()

			switch args[0] {
			case "capture":
				return c.MoveCapture()
			case "home":
				return c.MoveHome()
			default:
				return fmt.Errorf("unknown station %q", args[0])
			}
		},
	}
}

func newWeighCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "weigh",
		Short: "Move the tray to the load cell and print one stable measurement",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := host.Open(cfg)
			if err != nil {
				return err
			}
			defer c.Close()

			m, err := c.Weigh()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.Line())
			return nil
		},
	}
}
