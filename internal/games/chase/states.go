package chase

import "github.com/vovakirdan/ghost-chase/internal/core"

// StateID names one of the runner's states.
type StateID int

const (
	StateSitting StateID = iota
	StateRunning
	StateJumping
	StateFalling
	StateRolling
	StateDiving
	StateHit
)

// String returns a human-readable name for the state.
func (s StateID) String() string {
	switch s {
	case StateSitting:
		return "Sitting"
	case StateRunning:
		return "Running"
	case StateJumping:
		return "Jumping"
	case StateFalling:
		return "Falling"
	case StateRolling:
		return "Rolling"
	case StateDiving:
		return "Diving"
	case StateHit:
		return "Hit"
	default:
		return "Unknown"
	}
}

// Gravity is a state's gravity policy.
type Gravity int

const (
	GravityOff    Gravity = iota // Grounded, no vertical integration
	GravityNormal                // Regular fall
	GravityFast                  // Dive, gravity scaled by runner.dive_gravity_scale
)

// State is one of the seven runner states. The unexported methods keep the
// set closed to this package.
type State interface {
	ID() StateID
	Sprite() SpriteID
	// MaxFrame is the last animation frame before the animation wraps.
	MaxFrame() int
	// AllowsSpeedOverride reports whether left/right keys may change speed.
	AllowsSpeedOverride() bool
	Gravity() Gravity
	// Crouched states use the reduced slide hitbox.
	Crouched() bool

	enter(r *Runner)
	handleInput(r *Runner, in core.InputFrame)
}

var states = [...]State{
	StateSitting: sitting{},
	StateRunning: running{},
	StateJumping: jumping{},
	StateFalling: falling{},
	StateRolling: rolling{},
	StateDiving:  diving{},
	StateHit:     hit{},
}

// groundedInput picks the next state for a runner standing on the ground.
func groundedInput(r *Runner, in core.InputFrame) {
	switch {
	case in.Has(core.ActionJump):
		r.setState(StateJumping)
	case in.Has(core.ActionDuck) && r.state.ID() != StateRolling:
		r.setState(StateRolling)
	default:
		r.setState(groundedState(in))
	}
}

// groundedState is Running while a direction is held, Sitting otherwise.
func groundedState(in core.InputFrame) StateID {
	if in.Has(core.ActionLeft) || in.Has(core.ActionRight) {
		return StateRunning
	}
	return StateSitting
}

type sitting struct{}

func (sitting) ID() StateID               { return StateSitting }
func (sitting) Sprite() SpriteID          { return SpriteRunnerSit }
func (sitting) MaxFrame() int             { return 3 }
func (sitting) AllowsSpeedOverride() bool { return true }
func (sitting) Gravity() Gravity          { return GravityOff }
func (sitting) Crouched() bool            { return false }

func (sitting) enter(r *Runner) {
	r.VY = 0
}

func (sitting) handleInput(r *Runner, in core.InputFrame) {
	groundedInput(r, in)
}

type running struct{}

func (running) ID() StateID               { return StateRunning }
func (running) Sprite() SpriteID          { return SpriteRunnerRun }
func (running) MaxFrame() int             { return 7 }
func (running) AllowsSpeedOverride() bool { return true }
func (running) Gravity() Gravity          { return GravityOff }
func (running) Crouched() bool            { return false }
func (running) enter(*Runner)             {}

func (running) handleInput(r *Runner, in core.InputFrame) {
	groundedInput(r, in)
}

type jumping struct{}

func (jumping) ID() StateID               { return StateJumping }
func (jumping) Sprite() SpriteID          { return SpriteRunnerJump }
func (jumping) MaxFrame() int             { return 3 }
func (jumping) AllowsSpeedOverride() bool { return true }
func (jumping) Gravity() Gravity          { return GravityNormal }
func (jumping) Crouched() bool            { return false }

func (jumping) enter(r *Runner) {
	r.VY = r.cfg.JumpImpulse
	r.grounded = false
	r.slideTimer = 0
}

func (jumping) handleInput(r *Runner, in core.InputFrame) {
	switch {
	case in.Has(core.ActionDuck):
		r.setState(StateDiving)
	case r.VY >= 0:
		r.setState(StateFalling)
	}
}

type falling struct{}

func (falling) ID() StateID               { return StateFalling }
func (falling) Sprite() SpriteID          { return SpriteRunnerFall }
func (falling) MaxFrame() int             { return 3 }
func (falling) AllowsSpeedOverride() bool { return true }
func (falling) Gravity() Gravity          { return GravityNormal }
func (falling) Crouched() bool            { return false }
func (falling) enter(*Runner)             {}

func (falling) handleInput(r *Runner, in core.InputFrame) {
	if in.Has(core.ActionDuck) {
		r.setState(StateDiving)
	}
}

type rolling struct{}

func (rolling) ID() StateID               { return StateRolling }
func (rolling) Sprite() SpriteID          { return SpriteRunnerRoll }
func (rolling) MaxFrame() int             { return 5 }
func (rolling) AllowsSpeedOverride() bool { return true }
func (rolling) Gravity() Gravity          { return GravityOff }
func (rolling) Crouched() bool            { return true }

func (rolling) enter(r *Runner) {
	r.slideTimer = r.cfg.SlideDuration
}

func (rolling) handleInput(r *Runner, in core.InputFrame) {
	switch {
	case in.Has(core.ActionJump):
		r.setState(StateJumping)
	case r.slideTimer <= 0:
		r.setState(groundedState(in))
	}
}

type diving struct{}

func (diving) ID() StateID               { return StateDiving }
func (diving) Sprite() SpriteID          { return SpriteRunnerDive }
func (diving) MaxFrame() int             { return 2 }
func (diving) AllowsSpeedOverride() bool { return true }
func (diving) Gravity() Gravity          { return GravityFast }
func (diving) Crouched() bool            { return false }

func (diving) enter(r *Runner) {
	if r.VY < r.cfg.DiveImpulse {
		r.VY = r.cfg.DiveImpulse
	}
}

func (diving) handleInput(*Runner, core.InputFrame) {}

type hit struct{}

func (hit) ID() StateID               { return StateHit }
func (hit) Sprite() SpriteID          { return SpriteRunnerHit }
func (hit) MaxFrame() int             { return 3 }
func (hit) AllowsSpeedOverride() bool { return false }
func (hit) Gravity() Gravity          { return GravityNormal }
func (hit) Crouched() bool            { return false }

func (hit) enter(r *Runner) {
	r.hitTimer = r.cfg.HitDuration
	r.slideTimer = 0
}

func (hit) handleInput(r *Runner, in core.InputFrame) {
	if r.hitTimer > 0 {
		return
	}
	if r.grounded {
		r.setState(groundedState(in))
		return
	}
	r.setState(StateFalling)
}
