package chase

import (
	"math"

	"github.com/vovakirdan/ghost-chase/internal/config"
	"github.com/vovakirdan/ghost-chase/internal/core"
)

// Pursuer is the ghost. It moves at its own pace in world coordinates and is
// projected onto the screen relative to the runner.
type Pursuer struct {
	Entity
	WorldX float64

	cfg     config.PursuerConfig
	canvasW float64
}

// NewPursuer places the ghost StartAhead px ahead of the runner.
func NewPursuer(cfg config.ChaseConfig, r *Runner) *Pursuer {
	p := &Pursuer{
		Entity: Entity{
			Y:      cfg.Canvas.GroundY() - cfg.Pursuer.Height,
			Width:  cfg.Pursuer.Width,
			Height: cfg.Pursuer.Height,
		},
		WorldX:  r.WorldX + cfg.Pursuer.StartAhead,
		cfg:     cfg.Pursuer,
		canvasW: cfg.Canvas.Width,
	}
	p.project(r)
	return p
}

// Update advances the ghost. Its speed ignores slow effects; with nudging
// enabled it eases off while the lead exceeds the configured gap.
func (p *Pursuer) Update(dt float64, r *Runner) {
	speed := p.cfg.Speed
	if p.cfg.Nudge.Enabled && p.WorldX-r.WorldX > p.cfg.Nudge.MaxGap {
		speed *= p.cfg.Nudge.Factor
	}
	p.WorldX += speed * dt / 1000
	p.project(r)
}

// project derives the screen x from the world gap, clamped to the visible band.
func (p *Pursuer) project(r *Runner) {
	lo := r.X + p.cfg.BandMin
	hi := p.canvasW - p.cfg.BandMax
	p.X = core.ClampF(r.X+(p.WorldX-r.WorldX), lo, hi)
}

// Distance returns how far the ghost is ahead, never negative.
func (p *Pursuer) Distance(r *Runner) float64 {
	return math.Max(0, p.WorldX-r.WorldX)
}

// Caught reports whether the runner has reached the ghost.
func (p *Pursuer) Caught(r *Runner) bool {
	return r.WorldX >= p.WorldX
}

// ScreenGap returns the on-screen gap between the runner's right edge and the ghost.
func (p *Pursuer) ScreenGap(r *Runner) float64 {
	return p.X - r.Right()
}
