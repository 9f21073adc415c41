package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ghost-chase/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in chase configuration as YAML. Save it to
~/.chase/configs/chase.yaml or pass an edited copy with --config.

With --resolved the command prints the configuration a game would
actually run with: the loaded file plus the --difficulty preset.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the loaded config with presets applied")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if !flagResolved {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadChase(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("chase: encode config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
