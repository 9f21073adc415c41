package chase

import (
	"fmt"
	"math"

	"github.com/vovakirdan/ghost-chase/internal/core"
)

// Game-over reasons.
const (
	ReasonCaught    = "caught the ghost"
	ReasonCollapsed = "ran into the ghost's shadow"
)

// resolveCollisions runs one overlap pass of the runner against every pair,
// then checks the ghost end conditions. Positions are the ones left by the
// previous frame's world update, so every check in a frame sees the same layout.
func (s *Session) resolveCollisions(in core.InputFrame) {
	box := s.runner.Hitbox()
	// A grounded runner's feet probe one pixel into the ground to find holes.
	feet := core.NewRectF(box.X, box.Y, box.W, box.H+1)

	for _, p := range s.world.Pairs() {
		// A passed pair is already booked; backing up over it scores nothing.
		if p.Collided || p.Passed {
			continue
		}
		for _, o := range p.Members() {
			if o.Kind == KindHole {
				if in.Has(core.ActionDuck) && s.runner.Grounded() && o.Overlaps(feet) {
					s.dropIntoHole(p, o)
					break
				}
				continue
			}
			if o.Overlaps(box) {
				s.strike(p, o)
				break
			}
		}
		p.clearDestroyed()
	}

	s.checkGhost()
}

// score books a struck pair: one point, combo up, miss streak reset.
func (s *Session) score(p *Pair) {
	p.Collided = true
	s.missStreak = 0
	s.points++
	s.hits++
	s.combo++
	if s.combo > s.bestCombo {
		s.bestCombo = s.combo
	}
}

// strike handles the runner hitting a solid obstacle.
func (s *Session) strike(p *Pair, o *Obstacle) {
	s.score(p)
	slowed := s.applySlow()

	if o.Kind.DestroyedOnHit() {
		o.MarkedForRemoval = true
	}
	s.runner.Strike()

	cx, cy := o.Center()
	s.pushBurst(cx, cy)
	for i := 0; i < s.cfg.Effects.SparkCount; i++ {
		s.pushSpark(cx, cy)
	}

	s.message = fmt.Sprintf("Hit a %s!", o.Kind)
	if slowed {
		s.message += " Slowed down."
	}
	s.logger.Debug("strike", "pair", p.ID, "kind", o.Kind, "slowed", slowed, "score", s.points)
}

// dropIntoHole handles the runner ducking into a hole.
func (s *Session) dropIntoHole(p *Pair, o *Obstacle) {
	s.score(p)
	slowed := s.applySlow()
	s.runner.Dip()

	cx, _ := o.Center()
	s.pushBurst(cx, o.Y)

	s.message = "Dropped into a hole!"
	s.logger.Debug("hole", "pair", p.ID, "slowed", slowed, "score", s.points)
}

// applySlow starts the single slow effect and re-resolves scroll speed
// right away so this frame's obstacle movement already uses it.
func (s *Session) applySlow() bool {
	if !s.runner.ApplySlow() {
		return false
	}
	s.scrollSpeed = s.runner.Speed
	return true
}

// checkGhost ends the run when the runner touches or reaches the ghost.
func (s *Session) checkGhost() {
	s.pursuer.project(s.runner)

	switch {
	case s.runner.Hitbox().Intersects(s.pursuer.Rect()):
		s.endGame(ReasonCaught)
	case s.pursuer.Caught(s.runner):
		s.endGame(ReasonCaught)
	case s.cfg.Pursuer.CaptureDistance > 0 && s.pursuer.ScreenGap(s.runner) < s.cfg.Pursuer.CaptureDistance:
		s.endGame(ReasonCollapsed)
	}
}

// countPasses books the pairs the world reported as passed this frame.
func (s *Session) countPasses(passed []*Pair) {
	for _, p := range passed {
		if p.Collided {
			continue
		}
		s.missStreak++
		s.misses++
		s.combo = 0
		s.message = fmt.Sprintf("Missed a pair! streak %d/%d", s.missStreak, s.cfg.Rules.MissThreshold)
		s.logger.Debug("miss", "pair", p.ID, "streak", s.missStreak)

		if s.missStreak >= s.cfg.Rules.MissThreshold {
			s.endGame(fmt.Sprintf("missed %d pairs in a row", s.missStreak))
			return
		}
	}
}

func (s *Session) pushBurst(x, y float64) {
	fx := s.cfg.Effects
	s.collisions.Push(newEffect(EffectBurst, x, y, 36, fx.CollisionFrames, fx.FrameFPS))
}

func (s *Session) pushSpark(x, y float64) {
	fx := s.cfg.Effects
	e := newEffect(EffectSpark, x, y, 6, 6, fx.FrameFPS)
	angle := s.rng.Float64() * 2 * math.Pi
	speed := 80 + s.rng.Float64()*120
	e.VX = math.Cos(angle) * speed
	e.VY = math.Sin(angle) * speed
	s.particles.Push(e)
}

func (s *Session) pushDust() {
	fx := s.cfg.Effects
	x := s.runner.X + s.runner.Width*0.2
	y := s.runner.Bottom() - 3
	e := newEffect(EffectDust, x, y, 8, 4, fx.FrameFPS)
	e.VX = -20 - s.rng.Float64()*30
	e.VY = -10 - s.rng.Float64()*20
	s.particles.Push(e)
}
