package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ghost-chase/internal/config"
	"github.com/vovakirdan/ghost-chase/internal/core"
	"github.com/vovakirdan/ghost-chase/internal/games/chase"
	"github.com/vovakirdan/ghost-chase/internal/registry"
)

var (
	flagFrames     int
	flagDT         float64
	flagScript     string
	flagTraceEvery int
)

var (
	summaryTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	summaryKey   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	summaryValue = lipgloss.NewStyle().Bold(true)
	summaryBox   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

var simCmd = &cobra.Command{
	Use:   "sim [variant]",
	Short: "Run a headless simulation",
	Long: `Runs a chase without a terminal UI and prints a summary. The same
seed, config and script always produce the same run.

Script files list held actions per frame range:

  steps:
    - from: 0
      to: 600
      actions: [right]
    - from: 90
      actions: [jump]

Examples:
  chase sim --frames 3600 --seed 7
  chase sim relaxed --script run.yaml --log-level debug
  chase sim --dt 33.3 --trace-every 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Maximum number of frames to simulate")
	simCmd.Flags().Float64Var(&flagDT, "dt", 0, "Frame length in ms (0 = derived from --fps)")
	simCmd.Flags().StringVar(&flagScript, "script", "", "YAML file with scripted input")
	simCmd.Flags().IntVar(&flagTraceEvery, "trace-every", 0, "Log the HUD every N frames at debug level")
}

// variantFor returns the rule variant of a registered game ID.
func variantFor(gameID string) config.Variant {
	if gameID == "chase_relaxed" {
		return config.VariantRelaxed
	}
	return config.VariantStandard
}

func runSim(cmd *cobra.Command, args []string) error {
	gameID := resolveGameID(args)
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'chase list' to see available variants", gameID)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	chase.SetLogger(logger)

	var script *Script
	if flagScript != "" {
		script, err = LoadScript(flagScript)
		if err != nil {
			return err
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = seed

	dt := flagDT
	if dt <= 0 {
		dt = rc.FrameMillis()
	}

	g := chase.New(variantFor(gameID))
	g.Reset(rc)
	s := g.Session()

	logger.Info("simulation started", "game", gameID, "seed", seed, "dt_ms", dt, "frames", flagFrames)

	frames := 0
	for frames < flagFrames && !s.IsGameOver() {
		s.Update(script.Frame(frames), dt)
		frames++
		if flagTraceEvery > 0 && frames%flagTraceEvery == 0 {
			hud := s.HUD()
			logger.Debug("frame", "n", frames, "state", hud.State, "score", hud.Score,
				"ghost_px", hud.Distance, "speed", hud.Speed, "streak", hud.MissStreak)
		}
	}

	fmt.Println(renderSummary(g.Title(), seed, frames, s.HUD()))
	return nil
}

// renderSummary formats the end-of-run report.
func renderSummary(title string, seed int64, frames int, hud chase.HUD) string {
	outcome := "still running"
	if hud.GameOver {
		outcome = hud.Reason
	}

	rows := []struct {
		key, value string
	}{
		{"Seed", fmt.Sprintf("%d", seed)},
		{"Frames", fmt.Sprintf("%d", frames)},
		{"Elapsed", fmt.Sprintf("%.1fs", hud.Elapsed/1000)},
		{"Score", fmt.Sprintf("%d", hud.Score)},
		{"Best combo", fmt.Sprintf("%d", hud.BestCombo)},
		{"Hits", fmt.Sprintf("%d", hud.Hits)},
		{"Misses", fmt.Sprintf("%d (streak %d/%d)", hud.Misses, hud.MissStreak, hud.MissThreshold)},
		{"Ghost lead", fmt.Sprintf("%.0fpx", hud.Distance)},
		{"Outcome", outcome},
	}

	lines := []string{summaryTitle.Render(title)}
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, summaryKey.Render(r.key), summaryValue.Render(r.value)))
	}
	return summaryBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
