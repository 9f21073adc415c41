package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ghost-chase/internal/core"
	"github.com/vovakirdan/ghost-chase/internal/games/chase"
	"github.com/vovakirdan/ghost-chase/internal/platform/tui"
	"github.com/vovakirdan/ghost-chase/internal/registry"
)

var flagHoldWindow int

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start a chase in the terminal. The variant defaults to "chase";
"relaxed" allows three misses in a row and eases the ghost off when
it gets too far ahead.

Controls:
  Space/Up/W   - Jump
  Down/S       - Slide on the ground, dive in the air, drop into holes
  Left/A       - Run backwards
  Right/D      - Sprint
  P/Esc        - Pause
  R/Enter      - Restart (after game over)
  Ctrl+S       - Save a text screenshot
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  chase play
  chase play relaxed
  chase play --difficulty hard
  chase play --config ./my-chase.yaml --log-file chase.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldWindow, "hold-window", int(tui.DefaultHoldWindow.Milliseconds()),
		"Milliseconds a key press keeps a movement key held")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := resolveGameID(args)
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'chase list' to see available variants", gameID)
	}

	// The alternate screen owns the terminal, so logs only go to a file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()
	chase.SetLogger(logger)

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	opts := tui.Options{
		HoldWindow: msDuration(flagHoldWindow),
		Logger:     logger,
	}
	if err := tui.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("chase: run: %w", err)
	}
	return nil
}

// msDuration converts a millisecond flag value to a time.Duration.
func msDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
