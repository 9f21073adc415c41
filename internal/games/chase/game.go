package chase

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ghost-chase/internal/config"
	"github.com/vovakirdan/ghost-chase/internal/core"
	"github.com/vovakirdan/ghost-chase/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger new games hand to their sessions.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

func init() {
	registry.Register("chase", func() registry.Game {
		return New(config.VariantStandard)
	})
	registry.Register("chase_relaxed", func() registry.Game {
		return New(config.VariantRelaxed)
	})
}

// Game adapts a Session to the registry's fixed-tick game interface.
type Game struct {
	variant  config.Variant
	session  *Session
	runtime  core.RuntimeConfig
	cfg      config.ChaseConfig
	seed     int64
	restarts int
	paused   bool
}

// New creates a chase game with the given rule variant.
func New(variant config.Variant) *Game {
	return &Game{variant: variant}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == config.VariantRelaxed {
		return "chase_relaxed"
	}
	return "chase"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == config.VariantRelaxed {
		return "Ghost Chase (relaxed)"
	}
	return "Ghost Chase"
}

// Reset loads the configuration and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.seed = runtime.Seed
	g.restarts = 0

	cfg, err := config.LoadChase(configPath)
	if err != nil {
		logger.Error("falling back to default config", "err", err)
		cfg = config.DefaultChaseConfig()
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	config.ApplyVariant(&cfg, g.variant)
	g.cfg = cfg

	g.newSession()
}

// Restart replaces the session with a fresh one. Nothing carries over
// except the configuration.
func (g *Game) Restart() {
	g.restarts++
	g.newSession()
}

func (g *Game) newSession() {
	g.paused = false
	s, err := NewSession(g.cfg, g.seed+int64(g.restarts), logger)
	if err != nil {
		// Only reachable with a config that bypassed LoadChase.
		logger.Error("invalid chase config, using defaults", "err", err)
		cfg := config.DefaultChaseConfig()
		config.ApplyVariant(&cfg, g.variant)
		g.cfg = cfg
		s, err = NewSession(cfg, g.seed+int64(g.restarts), logger)
		if err != nil {
			panic(fmt.Sprintf("chase: default config is invalid: %v", err))
		}
	}
	g.session = s
}

// Session returns the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the game by one tick of the runtime tick rate.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.IsGameOver() {
		if in.Has(core.ActionRestart) {
			g.Restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.session.Update(in, g.runtime.FrameMillis())
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.IsGameOver(),
		Paused:   g.paused,
		Reason:   g.session.Reason(),
	}
}

// Config returns the configuration the sessions run with.
func (g *Game) Config() config.ChaseConfig {
	return g.cfg
}
