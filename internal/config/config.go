// Package config provides YAML-based game configuration loading, validation
// and difficulty management for the chase game.
package config

// ChaseConfig contains all configuration for the chase game.
// Distances are canvas pixels, speeds pixels per second and durations milliseconds.
type ChaseConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Runner     RunnerConfig     `yaml:"runner"`
	Speed      SpeedConfig      `yaml:"speed"`
	Slow       SlowConfig       `yaml:"slow"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Pursuer    PursuerConfig    `yaml:"pursuer"`
	Rules      RulesConfig      `yaml:"rules"`
	Effects    EffectsConfig    `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CanvasConfig defines the logical playfield.
type CanvasConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundMargin float64 `yaml:"ground_margin"` // Distance from the bottom edge to the ground line
}

// GroundY returns the y-coordinate of the ground line.
func (c CanvasConfig) GroundY() float64 {
	return c.Height - c.GroundMargin
}

// RunnerConfig defines the controllable runner's body and motion.
type RunnerConfig struct {
	ScreenX          float64 `yaml:"screen_x"` // Fixed left edge on screen
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	JumpImpulse      float64 `yaml:"jump_impulse"` // Negative = up
	Gravity          float64 `yaml:"gravity"`
	DiveImpulse      float64 `yaml:"dive_impulse"`       // Downward velocity set when a dive starts
	DiveGravityScale float64 `yaml:"dive_gravity_scale"` // Gravity multiplier while diving
	SlideDuration    float64 `yaml:"slide_duration"`
	SlideHeightScale float64 `yaml:"slide_height_scale"` // Hitbox height multiplier while sliding
	HitDuration      float64 `yaml:"hit_duration"`
	AnimationFPS     float64 `yaml:"animation_fps"`
	DipDepth         float64 `yaml:"dip_depth"` // How far the runner sinks when dropping into a hole
	DipDuration      float64 `yaml:"dip_duration"`
}

// SpeedConfig defines the global scroll speed bounds.
type SpeedConfig struct {
	Base float64 `yaml:"base"`
	Max  float64 `yaml:"max"` // Forward boost speed
	Min  float64 `yaml:"min"` // Floor for slowed speed
}

// SlowConfig defines the slow effect triggered by strikes.
type SlowConfig struct {
	Amount   float64 `yaml:"amount"`
	Duration float64 `yaml:"duration"`
}

// ProbabilityRange is a probability that drifts from Initial to Max as difficulty rises.
type ProbabilityRange struct {
	Initial float64 `yaml:"initial"`
	Max     float64 `yaml:"max"`
}

// SpawnConfig defines obstacle pair cadence and composition.
type SpawnConfig struct {
	FirstDelay        float64          `yaml:"first_delay"`
	MinDelay          float64          `yaml:"min_delay"`
	MaxDelay          float64          `yaml:"max_delay"`
	Offset            float64          `yaml:"offset"`         // Spawn this far right of the canvas edge
	DespawnMargin     float64          `yaml:"despawn_margin"` // Prune once this far left of the canvas
	TopProbability    ProbabilityRange `yaml:"top_probability"`
	BottomProbability ProbabilityRange `yaml:"bottom_probability"`
	HoleProbability   float64          `yaml:"hole_probability"`
	EnemyProbability  float64          `yaml:"enemy_probability"`
	DoubleProbability float64          `yaml:"double_probability"`
}

// ObstacleConfig defines obstacle dimensions.
type ObstacleConfig struct {
	Width           float64 `yaml:"width"`
	TopAnchorY      float64 `yaml:"top_anchor_y"` // Where vines hang from
	TopMinLength    float64 `yaml:"top_min_length"`
	TopMaxLength    float64 `yaml:"top_max_length"`
	BottomMinHeight float64 `yaml:"bottom_min_height"`
	BottomMaxHeight float64 `yaml:"bottom_max_height"`
	DoubleGap       float64 `yaml:"double_gap"`
	HoleWidth       float64 `yaml:"hole_width"`
	HoleDepth       float64 `yaml:"hole_depth"`
	BatSize         float64 `yaml:"bat_size"`
	BatMinY         float64 `yaml:"bat_min_y"`
	BatMaxY         float64 `yaml:"bat_max_y"`
	CrawlerWidth    float64 `yaml:"crawler_width"`
	CrawlerHeight   float64 `yaml:"crawler_height"`
}

// PursuerConfig defines the pursued ghost and its gap-closing behaviour.
type PursuerConfig struct {
	Width           float64     `yaml:"width"`
	Height          float64     `yaml:"height"`
	StartAhead      float64     `yaml:"start_ahead"` // Initial world lead over the runner
	Speed           float64     `yaml:"speed"`
	BandMin         float64     `yaml:"band_min"`         // Minimum screen offset from the runner
	BandMax         float64     `yaml:"band_max"`         // Margin kept from the right canvas edge
	CaptureDistance float64     `yaml:"capture_distance"` // Screen gap that ends the run, 0 disables
	Nudge           NudgeConfig `yaml:"nudge"`
}

// NudgeConfig slows the pursuer while its lead is larger than MaxGap.
type NudgeConfig struct {
	Enabled bool    `yaml:"enabled"`
	MaxGap  float64 `yaml:"max_gap"`
	Factor  float64 `yaml:"factor"`
}

// RulesConfig defines end conditions.
type RulesConfig struct {
	MissThreshold int `yaml:"miss_threshold"` // Consecutive missed pairs that end the run
}

// EffectsConfig defines the bounded effect queues.
type EffectsConfig struct {
	MaxParticles    int     `yaml:"max_particles"`
	MaxCollisions   int     `yaml:"max_collisions"`
	CollisionFrames int     `yaml:"collision_frames"`
	FrameFPS        float64 `yaml:"frame_fps"`
	SparkCount      int     `yaml:"spark_count"`
	DustInterval    float64 `yaml:"dust_interval"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score, or elapsed milliseconds, at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Fraction added to base speed at max difficulty
	DelayReduction  float64 `yaml:"delay_reduction"`  // Milliseconds removed from spawn delays at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Variant selects between the rule sets the game ships with.
type Variant string

const (
	// VariantStandard ends the run after two missed pairs; the ghost keeps a constant pace.
	VariantStandard Variant = "standard"
	// VariantRelaxed tolerates three misses, nudges the ghost when it runs away
	// and ends the run when the ghost's screen gap collapses.
	VariantRelaxed Variant = "relaxed"
)
