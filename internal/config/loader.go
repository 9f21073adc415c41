package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadChase loads the chase configuration.
// Search order: customPath -> ~/.chase/configs/chase.yaml -> ./configs/chase.yaml -> embedded default.
// Files are decoded on top of the defaults, so a partial file only overrides what it names.
// The result is validated; an invalid file is an error rather than a silent fallback.
func LoadChase(customPath string) (ChaseConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ChaseConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("chase.yaml"), filepath.Join("configs", "chase.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			return parse(data, path)
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultChaseYAML, "embedded defaults")
	if err != nil {
		return DefaultChaseConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the hard-coded defaults and validates the result.
func parse(data []byte, source string) (ChaseConfig, error) {
	cfg := DefaultChaseConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ChaseConfig{}, fmt.Errorf("config: failed to parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return ChaseConfig{}, fmt.Errorf("config: invalid %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chase", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *ChaseConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		// A fixed run also uses a fixed spawn cadence.
		cfg.Spawn.MaxDelay = cfg.Spawn.MinDelay
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ApplyVariant switches the rule set.
func ApplyVariant(cfg *ChaseConfig, v Variant) {
	switch v {
	case VariantRelaxed:
		cfg.Rules.MissThreshold = 3
		cfg.Pursuer.Nudge.Enabled = true
		cfg.Pursuer.CaptureDistance = 8
	default:
		cfg.Rules.MissThreshold = 2
		cfg.Pursuer.Nudge.Enabled = false
		cfg.Pursuer.CaptureDistance = 0
	}
}
