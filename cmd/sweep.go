package main

import (
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"adpilot/internal/core/port"
)

var sweepCmd = &cobra.Command{
	Use:       "sweep <spend|threshold|empty-url|reassert>",
	Short:     "Run one sweep and print its report",
	Long:      "Run one sweep over all eligible campaigns. Intended for cron-driven deployments.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(port.SweepSpend), string(port.SweepThreshold), string(port.SweepEmptyURL), string(port.SweepReassert)},
	RunE:      runSweep,
}

func runSweep(cmd *cobra.Command, args []string) error {
	kind, err := port.ParseSweepKind(args[0])
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	if err = a.withControl(ctx); err != nil {
		return err
	}

	report, err := a.control.RunSweep(ctx, kind)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
