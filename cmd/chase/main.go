// chase is a terminal side-scroller: a wizard chases a ghost through a
// forest of vines, stumps, bats and holes.
//
// Usage:
//
//	chase list                 - List available variants
//	chase play [variant]       - Play in the terminal
//	chase sim [variant]        - Run a headless deterministic simulation
//	chase config               - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--config <path>       - Custom chase config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-file <path>     - Write session logs to a file
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ghost-chase/internal/games/chase"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chase",
	Short: "Ghost Chase - chase a ghost through the forest in your terminal",
	Long: `Ghost Chase is a side-scrolling chase. The wizard runs after a ghost,
strikes vines, bats and stumps to score, and loses when too many
obstacle pairs slip past or when the ghost is caught up with.

Available commands:
  list     - Show the game variants
  play     - Play a variant in the terminal
  sim      - Run a headless simulation and print a summary
  config   - Print the default configuration YAML

Examples:
  chase play
  chase play relaxed --difficulty easy
  chase sim --frames 3600 --seed 42
  chase config > ~/.chase/configs/chase.yaml`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		chase.SetConfigPath(flagConfig)
		chase.SetDifficultyPreset(flagDifficulty)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom chase config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. Logs go to --log-file when set,
// otherwise to fallback.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("chase: %w", err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("chase: open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "chase",
		Level:           level,
	})
	return logger, closeFn, nil
}

// resolveGameID maps a variant argument onto a registered game ID.
func resolveGameID(args []string) string {
	if len(args) == 0 {
		return "chase"
	}
	switch args[0] {
	case "standard":
		return "chase"
	case "relaxed":
		return "chase_relaxed"
	}
	return args[0]
}
