package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for values the simulation cannot run with.
// All problems are reported together; nothing is clamped or corrected here.
func (c ChaseConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Canvas.Width > 0 && c.Canvas.Height > 0,
		"canvas: size must be positive, got %gx%g", c.Canvas.Width, c.Canvas.Height)
	check(c.Canvas.GroundMargin >= 0 && c.Canvas.GroundMargin < c.Canvas.Height,
		"canvas.ground_margin (%g) must be within [0, height)", c.Canvas.GroundMargin)

	check(c.Runner.Width > 0 && c.Runner.Height > 0,
		"runner: size must be positive, got %gx%g", c.Runner.Width, c.Runner.Height)
	check(c.Runner.Height <= c.Canvas.GroundY(),
		"runner.height (%g) does not fit above the ground line (%g)", c.Runner.Height, c.Canvas.GroundY())
	check(c.Runner.ScreenX >= 0 && c.Runner.ScreenX+c.Runner.Width <= c.Canvas.Width,
		"runner.screen_x (%g) must keep the runner on the canvas", c.Runner.ScreenX)
	check(c.Runner.JumpImpulse < 0, "runner.jump_impulse (%g) must be negative", c.Runner.JumpImpulse)
	check(c.Runner.Gravity > 0, "runner.gravity (%g) must be positive", c.Runner.Gravity)
	check(c.Runner.DiveImpulse >= 0, "runner.dive_impulse (%g) must not be negative", c.Runner.DiveImpulse)
	check(c.Runner.DiveGravityScale >= 1, "runner.dive_gravity_scale (%g) must be at least 1", c.Runner.DiveGravityScale)
	check(c.Runner.SlideDuration > 0, "runner.slide_duration (%g) must be positive", c.Runner.SlideDuration)
	check(c.Runner.SlideHeightScale > 0 && c.Runner.SlideHeightScale <= 1,
		"runner.slide_height_scale (%g) must be within (0, 1]", c.Runner.SlideHeightScale)
	check(c.Runner.HitDuration >= 0, "runner.hit_duration (%g) must not be negative", c.Runner.HitDuration)
	check(c.Runner.AnimationFPS > 0, "runner.animation_fps (%g) must be positive", c.Runner.AnimationFPS)
	check(c.Runner.DipDepth >= 0 && c.Runner.DipDuration >= 0,
		"runner: dip_depth and dip_duration must not be negative")

	check(c.Speed.Min >= 0 && c.Speed.Base >= 0 && c.Speed.Max >= 0,
		"speed: bounds must not be negative (min %g, base %g, max %g)", c.Speed.Min, c.Speed.Base, c.Speed.Max)
	check(c.Speed.Min <= c.Speed.Base && c.Speed.Base <= c.Speed.Max,
		"speed: expected min <= base <= max, got %g, %g, %g", c.Speed.Min, c.Speed.Base, c.Speed.Max)
	check(c.Slow.Amount >= 0, "slow.amount (%g) must not be negative", c.Slow.Amount)
	check(c.Slow.Duration >= 0, "slow.duration (%g) must not be negative", c.Slow.Duration)

	check(c.Spawn.FirstDelay >= 0, "spawn.first_delay (%g) must not be negative", c.Spawn.FirstDelay)
	check(c.Spawn.MinDelay > 0, "spawn.min_delay (%g) must be positive", c.Spawn.MinDelay)
	check(c.Spawn.MinDelay <= c.Spawn.MaxDelay,
		"spawn.min_delay (%g) > spawn.max_delay (%g)", c.Spawn.MinDelay, c.Spawn.MaxDelay)
	check(c.Spawn.DespawnMargin >= 0, "spawn.despawn_margin (%g) must not be negative", c.Spawn.DespawnMargin)
	for name, p := range map[string]ProbabilityRange{
		"spawn.top_probability":    c.Spawn.TopProbability,
		"spawn.bottom_probability": c.Spawn.BottomProbability,
	} {
		check(isProbability(p.Initial) && isProbability(p.Max) && p.Initial <= p.Max,
			"%s: expected 0 <= initial (%g) <= max (%g) <= 1", name, p.Initial, p.Max)
	}
	check(isProbability(c.Spawn.HoleProbability), "spawn.hole_probability (%g) must be within [0, 1]", c.Spawn.HoleProbability)
	check(isProbability(c.Spawn.EnemyProbability), "spawn.enemy_probability (%g) must be within [0, 1]", c.Spawn.EnemyProbability)
	check(isProbability(c.Spawn.DoubleProbability), "spawn.double_probability (%g) must be within [0, 1]", c.Spawn.DoubleProbability)

	o := c.Obstacles
	check(o.Width > 0, "obstacles.width (%g) must be positive", o.Width)
	check(o.TopMinLength > 0 && o.TopMinLength <= o.TopMaxLength,
		"obstacles: expected 0 < top_min_length (%g) <= top_max_length (%g)", o.TopMinLength, o.TopMaxLength)
	check(o.BottomMinHeight > 0 && o.BottomMinHeight <= o.BottomMaxHeight,
		"obstacles: expected 0 < bottom_min_height (%g) <= bottom_max_height (%g)", o.BottomMinHeight, o.BottomMaxHeight)
	check(o.BatMinY >= 0 && o.BatMinY <= o.BatMaxY,
		"obstacles: expected 0 <= bat_min_y (%g) <= bat_max_y (%g)", o.BatMinY, o.BatMaxY)
	check(o.BatSize > 0 && o.HoleWidth > 0 && o.HoleDepth > 0 && o.CrawlerWidth > 0 && o.CrawlerHeight > 0,
		"obstacles: bat, hole and crawler sizes must be positive")
	check(o.DoubleGap >= 0, "obstacles.double_gap (%g) must not be negative", o.DoubleGap)

	p := c.Pursuer
	check(p.Width > 0 && p.Height > 0, "pursuer: size must be positive, got %gx%g", p.Width, p.Height)
	check(p.Speed >= 0, "pursuer.speed (%g) must not be negative", p.Speed)
	check(p.StartAhead > 0, "pursuer.start_ahead (%g) must be positive", p.StartAhead)
	check(p.BandMin >= 0 && p.BandMax >= 0, "pursuer: band_min and band_max must not be negative")
	check(c.Runner.ScreenX+p.BandMin <= c.Canvas.Width-p.BandMax,
		"pursuer: screen band is empty (runner.screen_x + band_min > width - band_max)")
	check(p.CaptureDistance >= 0, "pursuer.capture_distance (%g) must not be negative", p.CaptureDistance)
	if p.Nudge.Enabled {
		check(p.Nudge.MaxGap > 0, "pursuer.nudge.max_gap (%g) must be positive", p.Nudge.MaxGap)
		check(p.Nudge.Factor > 0 && p.Nudge.Factor <= 1, "pursuer.nudge.factor (%g) must be within (0, 1]", p.Nudge.Factor)
	}

	check(c.Rules.MissThreshold >= 1, "rules.miss_threshold (%d) must be at least 1", c.Rules.MissThreshold)

	e := c.Effects
	check(e.MaxParticles >= 1 && e.MaxCollisions >= 1,
		"effects: queue capacities must be at least 1 (particles %d, collisions %d)", e.MaxParticles, e.MaxCollisions)
	check(e.CollisionFrames >= 1, "effects.collision_frames (%d) must be at least 1", e.CollisionFrames)
	check(e.FrameFPS > 0, "effects.frame_fps (%g) must be positive", e.FrameFPS)
	check(e.SparkCount >= 0, "effects.spark_count (%d) must not be negative", e.SparkCount)
	check(e.DustInterval > 0, "effects.dust_interval (%g) must be positive", e.DustInterval)

	d := c.Difficulty
	check(d.InitialLevel >= 0 && d.InitialLevel <= 1,
		"difficulty.initial_level (%g) must be within [0, 1]", d.InitialLevel)
	switch d.Progression.Type {
	case "score", "time", "none", "":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q must be score, time or none", d.Progression.Type))
	}
	check(d.Scaling.SpeedMultiplier >= 0, "difficulty.scaling.speed_multiplier (%g) must not be negative", d.Scaling.SpeedMultiplier)
	check(d.Scaling.DelayReduction >= 0, "difficulty.scaling.delay_reduction (%g) must not be negative", d.Scaling.DelayReduction)

	return errors.Join(errs...)
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}
