package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/game"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a level in the terminal.

Controls:
  Arrows/WASD/HJKL - Steer (with the autopilot on, for one tick)
  Space            - Stop
  Tab              - Toggle autopilot
  P/Esc            - Pause
  R                - Restart (after the level ends)
  ?                - Toggle help
  Q/Ctrl+C         - Quit

The process exits with the outcome's status code.

Examples:
  pacman play
  pacman play --map maze
  pacman play --config ./my-pacman.yaml --log-file pacman.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	// The alternate screen owns the terminal, so the log is dropped unless
	// it goes to a file.
	logger, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		fail("%v", err)
	}

	s, name, err := newSession(cfg, logger)
	if err != nil {
		closeLog()
		fail("%v", err)
	}

	rt := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: cfg.TickRate,
		Seed:     cfg.Seed,
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}
	bw, bh := s.Board().Width()*cfg.Board.TileWidth, s.Board().Height()*cfg.Board.TileHeight
	if rt.ScreenW < bw || rt.ScreenH < bh+3 {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n", rt.ScreenW, rt.ScreenH, bw, bh+3)
	}

	outcome, runErr := tui.Run(s, tui.Options{
		Runtime: rt,
		MapName: name,
		Logger:  logger,
	})
	closeLog()

	if runErr != nil {
		fail("running game: %v", runErr)
	}
	if outcome.Kind != game.KindNone {
		fmt.Println(outcome)
	}
	os.Exit(outcome.ExitCode())
}
