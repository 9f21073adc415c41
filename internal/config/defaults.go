package config

import (
	_ "embed"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultChaseConfig returns the default chase configuration.
// It mirrors defaults/chase.yaml and is used when the embedded file cannot be parsed.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		Canvas: CanvasConfig{
			Width:        900,
			Height:       420,
			GroundMargin: 60,
		},
		Runner: RunnerConfig{
			ScreenX:          120,
			Width:            40,
			Height:           60,
			JumpImpulse:      -520,
			Gravity:          1200,
			DiveImpulse:      300,
			DiveGravityScale: 2.5,
			SlideDuration:    500,
			SlideHeightScale: 0.55,
			HitDuration:      400,
			AnimationFPS:     20,
			DipDepth:         24,
			DipDuration:      400,
		},
		Speed: SpeedConfig{
			Base: 220,
			Max:  360,
			Min:  80,
		},
		Slow: SlowConfig{
			Amount:   110,
			Duration: 900,
		},
		Spawn: SpawnConfig{
			FirstDelay:        800,
			MinDelay:          1100,
			MaxDelay:          1700,
			Offset:            60,
			DespawnMargin:     200,
			TopProbability:    ProbabilityRange{Initial: 0.45, Max: 0.75},
			BottomProbability: ProbabilityRange{Initial: 0.55, Max: 0.85},
			HoleProbability:   0.2,
			EnemyProbability:  0.25,
			DoubleProbability: 0.2,
		},
		Obstacles: ObstacleConfig{
			Width:           36,
			TopAnchorY:      0,
			TopMinLength:    250,
			TopMaxLength:    320,
			BottomMinHeight: 40,
			BottomMaxHeight: 90,
			DoubleGap:       8,
			HoleWidth:       70,
			HoleDepth:       30,
			BatSize:         30,
			BatMinY:         220,
			BatMaxY:         300,
			CrawlerWidth:    44,
			CrawlerHeight:   30,
		},
		Pursuer: PursuerConfig{
			Width:           40,
			Height:          60,
			StartAhead:      600,
			Speed:           170,
			BandMin:         40,
			BandMax:         80,
			CaptureDistance: 0,
			Nudge: NudgeConfig{
				Enabled: false,
				MaxGap:  700,
				Factor:  0.85,
			},
		},
		Rules: RulesConfig{
			MissThreshold: 2,
		},
		Effects: EffectsConfig{
			MaxParticles:    50,
			MaxCollisions:   10,
			CollisionFrames: 5,
			FrameFPS:        15,
			SparkCount:      4,
			DustInterval:    90,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 120000, // two minutes
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.3,
				DelayReduction:  400,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultChaseYAML
}
