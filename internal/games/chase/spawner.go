package chase

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ghost-chase/internal/config"
)

// World spawns obstacle pairs ahead of the runner, scrolls them and prunes
// them once they leave the canvas.
type World struct {
	pairs   []*Pair
	nextID  int
	pending Handle
	stopped bool
	level   float64

	rng        *rand.Rand
	sched      *Scheduler
	cfg        config.ChaseConfig
	difficulty *config.DifficultyManager
	logger     *log.Logger
}

// NewWorld creates an empty world that spawns through sched.
func NewWorld(cfg config.ChaseConfig, rng *rand.Rand, sched *Scheduler, diff *config.DifficultyManager, logger *log.Logger) *World {
	return &World{
		pairs:      make([]*Pair, 0, 8),
		nextID:     1,
		rng:        rng,
		sched:      sched,
		cfg:        cfg,
		difficulty: diff,
		logger:     logger,
	}
}

// Start arms the first spawn.
func (w *World) Start() {
	w.schedule(w.cfg.Spawn.FirstDelay)
}

// schedule arms the next spawn. Each spawn schedules its successor, so the
// cadence is redrawn every time.
func (w *World) schedule(delay float64) {
	if w.stopped {
		return
	}
	w.pending = w.sched.After(delay, func() {
		w.pending = 0
		if w.stopped {
			return
		}
		w.spawn()
		w.schedule(w.nextDelay())
	})
}

// nextDelay draws the next spawn delay from the configured window and
// shortens it with difficulty.
func (w *World) nextDelay() float64 {
	delay := w.between(w.cfg.Spawn.MinDelay, w.cfg.Spawn.MaxDelay)
	return w.difficulty.SpawnDelay(delay, w.level)
}

// Stop cancels the pending spawn; the world is never re-armed afterwards.
func (w *World) Stop() {
	w.stopped = true
	if w.pending != 0 {
		w.sched.Cancel(w.pending)
		w.pending = 0
	}
}

// Freeze zeroes every obstacle velocity.
func (w *World) Freeze() {
	for _, p := range w.pairs {
		for _, o := range p.Members() {
			o.VX = 0
		}
	}
}

// Pairs returns the live pairs in spawn order.
func (w *World) Pairs() []*Pair {
	return w.pairs
}

// Update advances the spawn clock, scrolls every obstacle at the given speed,
// marks pairs that fell behind runnerX as passed and prunes the ones past a
// despawn bound. It returns the pairs that were passed this frame.
func (w *World) Update(dt, scroll, level, runnerX float64) []*Pair {
	w.level = level
	w.sched.Advance(dt)

	secs := dt / 1000
	for _, p := range w.pairs {
		for _, o := range p.Members() {
			o.VX = -scroll
			o.move(o.VX * secs)
		}
	}

	var passed []*Pair
	for _, p := range w.pairs {
		if p.Passed || p.Empty() {
			continue
		}
		if p.Right() < runnerX {
			p.Passed = true
			passed = append(passed, p)
		}
	}

	w.prune()
	return passed
}

// prune drops empty pairs and pairs that scrolled past either despawn bound,
// compacting the slice in place. The right bound catches pairs drifting away
// while the runner backs up.
func (w *World) prune() {
	left := -w.cfg.Spawn.DespawnMargin
	right := w.cfg.Canvas.Width + w.cfg.Spawn.Offset + w.cfg.Spawn.DespawnMargin
	kept := w.pairs[:0]
	for _, p := range w.pairs {
		if p.Empty() || p.Right() < left || p.Left() > right {
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(w.pairs); i++ {
		w.pairs[i] = nil
	}
	w.pairs = kept
}

// spawn samples a pair layout and adds it at the right edge.
// At least one slot is always filled.
func (w *World) spawn() *Pair {
	pTop := w.difficulty.Probability(w.cfg.Spawn.TopProbability, w.level)
	pBottom := w.difficulty.Probability(w.cfg.Spawn.BottomProbability, w.level)

	hasTop := w.rng.Float64() < pTop
	hasBottom := w.rng.Float64() < pBottom
	if !hasTop && !hasBottom {
		if w.rng.Intn(2) == 0 {
			hasTop = true
		} else {
			hasBottom = true
		}
	}

	top, bottom := KindNone, KindNone
	if hasTop {
		top = KindVine
		if w.rng.Float64() < w.cfg.Spawn.EnemyProbability {
			top = KindBat
		}
	}
	if hasBottom {
		bottom = w.bottomKind()
	}

	p := w.addPair(top, bottom)
	w.logger.Debug("spawned pair", "id", p.ID, "top", top, "bottom", bottom, "level", w.level)
	return p
}

func (w *World) bottomKind() ObstacleKind {
	s := w.cfg.Spawn
	switch {
	case w.rng.Float64() < s.HoleProbability:
		return KindHole
	case w.rng.Float64() < s.EnemyProbability:
		return KindCrawler
	case w.rng.Float64() < s.DoubleProbability:
		return KindDoubleStump
	default:
		return KindStump
	}
}

// addPair builds a pair with the given slot kinds just past the right edge.
func (w *World) addPair(top, bottom ObstacleKind) *Pair {
	x := w.cfg.Canvas.Width + w.cfg.Spawn.Offset
	p := &Pair{ID: w.nextID}
	w.nextID++

	if top != KindNone {
		p.Top = w.newObstacle(top, x)
	}
	if bottom != KindNone {
		p.Bottom = w.newObstacle(bottom, x)
		p.Hole = bottom == KindHole
	}
	w.pairs = append(w.pairs, p)
	return p
}

// newObstacle sizes and places one obstacle with its left edge at x.
func (w *World) newObstacle(kind ObstacleKind, x float64) *Obstacle {
	o := w.cfg.Obstacles
	groundY := w.cfg.Canvas.GroundY()
	ob := &Obstacle{Kind: kind}

	switch kind {
	case KindVine:
		ob.Entity = Entity{X: x, Y: o.TopAnchorY, Width: o.Width, Height: w.between(o.TopMinLength, o.TopMaxLength)}
	case KindBat:
		ob.Entity = Entity{X: x, Y: w.between(o.BatMinY, o.BatMaxY), Width: o.BatSize, Height: o.BatSize}
	case KindStump:
		h := w.between(o.BottomMinHeight, o.BottomMaxHeight)
		ob.Entity = Entity{X: x, Y: groundY - h, Width: o.Width, Height: h}
	case KindDoubleStump:
		h := w.between(o.BottomMinHeight, o.BottomMaxHeight)
		ob.Entity = Entity{X: x, Y: groundY - h, Width: o.Width, Height: h}
		h2 := w.between(o.BottomMinHeight, o.BottomMaxHeight)
		ob.Twin = &Entity{X: x + o.Width + o.DoubleGap, Y: groundY - h2, Width: o.Width, Height: h2}
	case KindCrawler:
		ob.Entity = Entity{X: x, Y: groundY - o.CrawlerHeight, Width: o.CrawlerWidth, Height: o.CrawlerHeight}
	case KindHole:
		ob.Entity = Entity{X: x, Y: groundY, Width: o.HoleWidth, Height: o.HoleDepth}
	}
	return ob
}

// between draws uniformly from [lo, hi]. Fixed windows consume no randomness.
func (w *World) between(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + w.rng.Float64()*(hi-lo)
}
