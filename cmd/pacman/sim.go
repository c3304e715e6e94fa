package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/game"
)

var flagMaxTicks uint64

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a level headless with the autopilot",
	Long: `Play a level without a terminal UI. The agent always uses the
autopilot; ghosts move as configured. The outcome is printed and returned
as the exit status.

Examples:
  pacman sim
  pacman sim --map open --seed 7
  pacman sim --max-ticks 2000 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagMaxTicks, "max-ticks", 10000, "Stop after this many ticks (0 = no limit)")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	cfg.Agent.Autopilot = true

	logger, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		fail("%v", err)
	}

	s, name, err := newSession(cfg, logger)
	if err != nil {
		closeLog()
		fail("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	outcome, err := s.Run(ctx, flagMaxTicks)
	stop()
	if err != nil {
		logger.Warn("simulation interrupted", "tick", s.Tick(), "err", err)
	}

	switch outcome.Kind {
	case game.KindNone:
		fmt.Printf("%s: no outcome after %d ticks (score %d)\n", name, s.Tick(), s.Snapshot().Score)
	default:
		fmt.Printf("%s: %s after %d ticks\n", name, outcome, s.Tick())
	}

	closeLog()
	os.Exit(outcome.ExitCode())
}
