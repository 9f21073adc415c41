package chase

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ghost-chase/internal/config"
	"github.com/vovakirdan/ghost-chase/internal/core"
)

const batFlapMillis = 150

// HUD is the read-only summary hosts display next to the playfield.
type HUD struct {
	Score         int
	Combo         int
	BestCombo     int
	Hits          int
	Misses        int
	MissStreak    int
	MissThreshold int
	Distance      float64 // Ghost lead in px
	Speed         float64 // Scroll speed in px/s
	Elapsed       float64 // Milliseconds of play
	State         StateID
	Slowed        bool
	Message       string
	GameOver      bool
	Reason        string
}

// Session owns one run: the runner, the ghost, the obstacle world, the effect
// queues and every counter. A restart replaces the whole session.
type Session struct {
	runner     *Runner
	pursuer    *Pursuer
	world      *World
	sched      *Scheduler
	particles  *EffectQueue
	collisions *EffectQueue

	scrollSpeed float64
	points      int
	combo       int
	bestCombo   int
	hits        int
	missStreak  int
	misses      int
	elapsed     float64
	level       float64
	dustTimer   float64
	gameOver    bool
	reason      string
	message     string

	cfg        config.ChaseConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	logger     *log.Logger
}

// NewSession validates cfg and builds a fresh run. A nil logger discards output.
func NewSession(cfg config.ChaseConfig, seed int64, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("chase: invalid config: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rng := rand.New(rand.NewSource(seed))
	sched := NewScheduler()
	diff := config.NewDifficultyManager(cfg.Difficulty)

	s := &Session{
		sched:      sched,
		particles:  NewEffectQueue(cfg.Effects.MaxParticles),
		collisions: NewEffectQueue(cfg.Effects.MaxCollisions),
		cfg:        cfg,
		rng:        rng,
		difficulty: diff,
		logger:     logger,
	}
	s.level = diff.Level(0, 0)
	s.runner = NewRunner(cfg)
	s.runner.base = diff.Speed(cfg.Speed.Base, s.level)
	s.runner.refreshSpeed()
	s.scrollSpeed = s.runner.Speed
	s.pursuer = NewPursuer(cfg, s.runner)
	s.world = NewWorld(cfg, rng, sched, diff, logger)
	s.world.Start()

	logger.Debug("session started", "seed", seed, "miss_threshold", cfg.Rules.MissThreshold)
	return s, nil
}

// Update advances the run by dt milliseconds: runner, collisions, world,
// ghost, effects. After game over it does nothing.
func (s *Session) Update(in core.InputFrame, dt float64) {
	if s.gameOver || dt <= 0 {
		return
	}

	s.elapsed += dt
	s.level = s.difficulty.Level(s.points, s.elapsed)
	base := s.difficulty.Speed(s.cfg.Speed.Base, s.level)

	s.runner.Update(in, dt, base)
	s.scrollSpeed = s.runner.Speed

	s.resolveCollisions(in)
	if s.gameOver {
		return
	}

	passed := s.world.Update(dt, s.scrollSpeed, s.level, s.runner.X)
	s.countPasses(passed)
	if s.gameOver {
		return
	}

	s.pursuer.Update(dt, s.runner)

	s.emitDust(dt)
	s.particles.Update(dt, s.scrollSpeed)
	s.collisions.Update(dt, s.scrollSpeed)
}

// emitDust kicks up dust at a fixed interval while running or rolling on the ground.
func (s *Session) emitDust(dt float64) {
	id := s.runner.State().ID()
	if !s.runner.Grounded() || (id != StateRunning && id != StateRolling) {
		s.dustTimer = 0
		return
	}
	s.dustTimer += dt
	for s.dustTimer >= s.cfg.Effects.DustInterval {
		s.dustTimer -= s.cfg.Effects.DustInterval
		s.pushDust()
	}
}

// endGame freezes the run. Later calls are ignored.
func (s *Session) endGame(reason string) {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.reason = reason
	s.message = ""

	s.world.Stop()
	s.sched.Clear()
	s.world.Freeze()
	s.runner.Freeze()
	s.scrollSpeed = 0

	s.logger.Info("game over", "reason", reason, "score", s.points, "misses", s.misses, "elapsed_ms", s.elapsed)
}

// IsGameOver reports whether the run has ended.
func (s *Session) IsGameOver() bool {
	return s.gameOver
}

// Reason returns why the run ended, empty while it is running.
func (s *Session) Reason() string {
	return s.reason
}

// Score returns the number of struck pairs.
func (s *Session) Score() int {
	return s.points
}

// HUD returns the current counters.
func (s *Session) HUD() HUD {
	return HUD{
		Score:         s.points,
		Combo:         s.combo,
		BestCombo:     s.bestCombo,
		Hits:          s.hits,
		Misses:        s.misses,
		MissStreak:    s.missStreak,
		MissThreshold: s.cfg.Rules.MissThreshold,
		Distance:      s.pursuer.Distance(s.runner),
		Speed:         s.scrollSpeed,
		Elapsed:       s.elapsed,
		State:         s.runner.State().ID(),
		Slowed:        s.runner.SlowTimer > 0,
		Message:       s.message,
		GameOver:      s.gameOver,
		Reason:        s.reason,
	}
}

// Draw hands every visible entity to surface, back to front. It does not
// change the session.
func (s *Session) Draw(surface Surface) {
	for _, p := range s.world.Pairs() {
		for _, o := range p.Members() {
			frame := 0
			if o.Kind == KindBat {
				frame = int(s.elapsed/batFlapMillis) % 2
			}
			surface.Draw(Drawable{Layer: LayerObstacles, Sprite: o.Kind.Sprite(), Rect: o.Rect(), Frame: frame})
			if o.Twin != nil {
				surface.Draw(Drawable{Layer: LayerObstacles, Sprite: o.Kind.Sprite(), Rect: o.Twin.Rect(), Frame: 1})
			}
		}
	}

	s.particles.Each(func(e *Effect) {
		surface.Draw(Drawable{Layer: LayerParticles, Sprite: e.Kind.Sprite(), Rect: e.Rect(), Frame: e.Frame})
	})

	surface.Draw(Drawable{Layer: LayerActors, Sprite: SpriteGhost, Rect: s.pursuer.Rect()})

	r := s.runner
	body := r.Rect()
	if r.State().Crouched() {
		body = r.Hitbox()
	}
	surface.Draw(Drawable{
		Layer:  LayerActors,
		Sprite: r.State().Sprite(),
		Rect:   body.Translate(0, r.DipOffset),
		Frame:  r.FrameX,
		Tint:   r.Tinted,
	})

	s.collisions.Each(func(e *Effect) {
		surface.Draw(Drawable{Layer: LayerEffects, Sprite: e.Kind.Sprite(), Rect: e.Rect(), Frame: e.Frame})
	})
}
