package chase

import (
	"math"

	"github.com/vovakirdan/ghost-chase/internal/config"
	"github.com/vovakirdan/ghost-chase/internal/core"
)

// Runner is the controllable wizard. Its left edge stays at a fixed screen x;
// forward motion is tracked in WorldX and shows up as scrolling obstacles.
type Runner struct {
	Entity

	VY     float64 // Vertical velocity in px/s, negative = up
	Speed  float64 // Resolved each frame, doubles as the global scroll speed
	WorldX float64 // World progress in px
	FrameX int     // Current animation frame

	SlowTimer float64 // Remaining slow effect in ms; a strike only slows when it is zero
	Tinted    bool
	DipOffset float64 // Draw-only vertical offset while dropping into a hole

	state      State
	grounded   bool
	frameTimer float64
	slideTimer float64
	hitTimer   float64
	dipTimer   float64

	input core.InputFrame
	base  float64

	cfg     config.RunnerConfig
	speed   config.SpeedConfig
	slow    config.SlowConfig
	groundY float64
}

// NewRunner places a sitting runner on the ground line.
func NewRunner(cfg config.ChaseConfig) *Runner {
	groundY := cfg.Canvas.GroundY()
	r := &Runner{
		Entity: Entity{
			X:      cfg.Runner.ScreenX,
			Y:      groundY - cfg.Runner.Height,
			Width:  cfg.Runner.Width,
			Height: cfg.Runner.Height,
		},
		state:    states[StateSitting],
		grounded: true,
		input:    core.NewInputFrame(),
		base:     cfg.Speed.Base,
		cfg:      cfg.Runner,
		speed:    cfg.Speed,
		slow:     cfg.Slow,
		groundY:  groundY,
	}
	r.Speed = r.resolveSpeed()
	return r
}

// State returns the active state.
func (r *Runner) State() State {
	return r.state
}

// Grounded reports whether the runner stands on the ground line.
func (r *Runner) Grounded() bool {
	return r.grounded
}

// setState switches state and runs the new state's enter hook.
// Switching to the active state is a no-op.
func (r *Runner) setState(id StateID) {
	if r.state.ID() == id {
		return
	}
	r.state = states[id]
	r.FrameX = 0
	r.frameTimer = 0
	r.state.enter(r)
}

// Update advances the runner by dt milliseconds. base is the current
// difficulty-scaled base speed.
func (r *Runner) Update(in core.InputFrame, dt, base float64) {
	r.input = in
	r.base = base

	r.slideTimer = math.Max(0, r.slideTimer-dt)
	r.hitTimer = math.Max(0, r.hitTimer-dt)

	r.state.handleInput(r, in)
	r.Speed = r.resolveSpeed()

	secs := dt / 1000
	r.integrate(secs)
	r.WorldX += r.Speed * secs

	r.animate(dt)
	r.updateDip(dt)

	if r.SlowTimer > 0 {
		r.SlowTimer = math.Max(0, r.SlowTimer-dt)
		if r.SlowTimer == 0 {
			r.Tinted = false
		}
	}
}

// resolveSpeed applies, in order: base speed, the slow override and the
// directional override. Later rules win.
func (r *Runner) resolveSpeed() float64 {
	speed := r.base
	if r.SlowTimer > 0 {
		speed = math.Max(r.speed.Min, r.base-r.slow.Amount)
	}
	if !r.state.AllowsSpeedOverride() {
		return speed
	}
	right := r.input.Has(core.ActionRight)
	left := r.input.Has(core.ActionLeft)
	switch {
	case right && !left:
		speed = math.Max(r.speed.Max, r.base)
	case left && !right:
		speed = -r.base
	}
	return speed
}

// refreshSpeed re-resolves the speed after a mid-frame change such as a slow.
func (r *Runner) refreshSpeed() {
	r.Speed = r.resolveSpeed()
}

// integrate applies gravity while airborne and clamps to the canvas.
func (r *Runner) integrate(secs float64) {
	if r.grounded {
		return
	}

	scale := 1.0
	if r.state.Gravity() == GravityFast {
		scale = r.cfg.DiveGravityScale
	}
	r.VY += r.cfg.Gravity * scale * secs
	r.Y += r.VY * secs

	if r.Y < 0 {
		r.Y = 0
		r.VY = 0
	}

	if r.Y+r.Height >= r.groundY {
		r.Y = r.groundY - r.Height
		r.VY = 0
		r.grounded = true
		r.land()
	}
}

// land picks a ground state after touching down. Hit keeps running its timer.
func (r *Runner) land() {
	switch r.state.ID() {
	case StateJumping, StateFalling, StateDiving:
		r.setState(groundedState(r.input))
	}
}

// animate advances the sprite frame at the configured rate, wrapping at the
// state's last frame.
func (r *Runner) animate(dt float64) {
	interval := 1000 / r.cfg.AnimationFPS
	r.frameTimer += dt
	for r.frameTimer >= interval {
		r.frameTimer -= interval
		r.FrameX++
		if r.FrameX > r.state.MaxFrame() {
			r.FrameX = 0
		}
	}
}

// Hitbox returns the collision box, shortened while crouched with the bottom
// edge kept in place.
func (r *Runner) Hitbox() core.RectF {
	if !r.state.Crouched() {
		return r.Rect()
	}
	h := r.Height * r.cfg.SlideHeightScale
	return core.NewRectF(r.X, r.Bottom()-h, r.Width, h)
}

// ApplySlow starts the slow effect unless one is already running.
// It reports whether a new effect started.
func (r *Runner) ApplySlow() bool {
	if r.SlowTimer > 0 || r.slow.Duration <= 0 {
		return false
	}
	r.SlowTimer = r.slow.Duration
	r.Tinted = true
	r.refreshSpeed()
	return true
}

// Strike puts the runner into Hit, except while rolling or diving, where
// the runner attacks through the obstacle.
func (r *Runner) Strike() {
	switch r.state.ID() {
	case StateRolling, StateDiving:
		return
	}
	r.setState(StateHit)
}

// Dip starts the drop-into-hole tween.
func (r *Runner) Dip() {
	r.dipTimer = r.cfg.DipDuration
}

func (r *Runner) updateDip(dt float64) {
	if r.dipTimer <= 0 || r.cfg.DipDuration <= 0 {
		r.DipOffset = 0
		return
	}
	r.dipTimer = math.Max(0, r.dipTimer-dt)
	progress := 1 - r.dipTimer/r.cfg.DipDuration
	r.DipOffset = r.cfg.DipDepth * math.Sin(math.Pi*progress)
}

// Freeze stops all motion after game over.
func (r *Runner) Freeze() {
	r.VY = 0
	r.Speed = 0
}
