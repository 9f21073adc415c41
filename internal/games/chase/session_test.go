package chase

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/ghost-chase/internal/config"
	"github.com/vovakirdan/ghost-chase/internal/core"
)

const frameMs = 16.0

// testConfig disables difficulty drift and automatic spawning so tests can
// place pairs by hand.
func testConfig() config.ChaseConfig {
	cfg := config.DefaultChaseConfig()
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.InitialLevel = 0
	cfg.Spawn.FirstDelay = 1e9
	return cfg
}

func newTestSession(t *testing.T, cfg config.ChaseConfig) *Session {
	t.Helper()
	s, err := NewSession(cfg, 1, nil)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

// placeVine puts a top-only pair straight onto the standing runner.
func placeVine(s *Session) *Pair {
	p := s.world.addPair(KindVine, KindNone)
	p.Top.X = s.runner.X
	p.Top.Y = 0
	p.Top.Height = s.runner.Y + 30
	return p
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultChaseConfig()
	cfg.Spawn.MinDelay, cfg.Spawn.MaxDelay = 2000, 1000

	if _, err := NewSession(cfg, 1, nil); err == nil {
		t.Fatal("NewSession() should fail when min_delay > max_delay")
	}

	cfg = config.DefaultChaseConfig()
	cfg.Speed.Min = -5
	if _, err := NewSession(cfg, 1, nil); err == nil {
		t.Fatal("NewSession() should fail on negative speed bounds")
	}
}

func TestIdleRunnerSitsStill(t *testing.T) {
	cfg := testConfig()
	cfg.Speed = config.SpeedConfig{Base: 0, Max: 0, Min: 0}
	s := newTestSession(t, cfg)

	startX := s.runner.X
	for i := 0; i < 60; i++ {
		s.Update(core.NewInputFrame(), frameMs)
	}

	if got := s.runner.State().ID(); got != StateSitting {
		t.Errorf("state = %v, expected Sitting", got)
	}
	if s.runner.X != startX || s.runner.WorldX != 0 {
		t.Errorf("runner moved: x=%f world=%f", s.runner.X, s.runner.WorldX)
	}
	if s.IsGameOver() {
		t.Errorf("unexpected game over: %s", s.Reason())
	}
}

func TestBottomOnlyPairCountsOneMiss(t *testing.T) {
	s := newTestSession(t, testConfig())
	p := s.world.addPair(KindNone, KindHole)

	for i := 0; i < 2000 && !p.Passed; i++ {
		s.Update(core.NewInputFrame(), frameMs)
		if !p.Passed && s.misses != 0 {
			t.Fatalf("miss counted before the pair passed (frame %d)", i)
		}
	}
	if !p.Passed {
		t.Fatal("pair never passed the runner")
	}
	if p.Right() >= s.runner.X {
		t.Errorf("pair passed with right edge %f not behind runner x %f", p.Right(), s.runner.X)
	}

	for i := 0; i < 100; i++ {
		s.Update(core.NewInputFrame(), frameMs)
	}

	if p.Collided {
		t.Error("untouched pair should not be collided")
	}
	if s.misses != 1 || s.missStreak != 1 {
		t.Errorf("misses = %d, streak = %d, expected exactly 1", s.misses, s.missStreak)
	}
}

func TestStrikeCollidesOnceAndSlows(t *testing.T) {
	cfg := testConfig()
	s := newTestSession(t, cfg)
	p := placeVine(s)

	for i := 0; i < 5; i++ {
		s.Update(core.NewInputFrame(), frameMs)
		if !p.Top.Overlaps(s.runner.Hitbox()) {
			t.Fatalf("vine should still overlap on frame %d", i)
		}
		if !p.Collided {
			t.Fatalf("pair not collided on frame %d", i)
		}
		if s.hits != 1 || s.points != 1 {
			t.Fatalf("frame %d: hits = %d, score = %d, expected 1", i, s.hits, s.points)
		}
	}

	want := cfg.Speed.Base - cfg.Slow.Amount
	if s.scrollSpeed != want {
		t.Errorf("scroll speed = %f, expected %f", s.scrollSpeed, want)
	}
	if !s.runner.Tinted {
		t.Error("runner should be tinted while slowed")
	}
	if s.collisions.Len() != 1 || s.particles.Len() != cfg.Effects.SparkCount {
		t.Errorf("effects: %d bursts, %d particles", s.collisions.Len(), s.particles.Len())
	}
}

func TestSlowRestoresAfterDuration(t *testing.T) {
	cfg := testConfig()
	s := newTestSession(t, cfg)
	placeVine(s)

	s.Update(core.NewInputFrame(), 1)
	if s.runner.SlowTimer != cfg.Slow.Duration {
		t.Fatalf("slow timer = %f, expected %f", s.runner.SlowTimer, cfg.Slow.Duration)
	}

	duration := int(cfg.Slow.Duration)
	reduced := cfg.Speed.Base - cfg.Slow.Amount
	for ms := 1; ms <= duration+1; ms++ {
		s.Update(core.NewInputFrame(), 1)
		switch ms {
		case duration - 1:
			if s.scrollSpeed != reduced {
				t.Errorf("t=%d: speed = %f, expected reduced %f", ms, s.scrollSpeed, reduced)
			}
		case duration + 1:
			if s.scrollSpeed != cfg.Speed.Base {
				t.Errorf("t=%d: speed = %f, expected base %f", ms, s.scrollSpeed, cfg.Speed.Base)
			}
			if s.runner.Tinted {
				t.Error("tint should clear when the slow ends")
			}
		}
	}
}

func TestSlowNeverStacks(t *testing.T) {
	cfg := testConfig()
	s := newTestSession(t, cfg)
	placeVine(s)
	s.Update(core.NewInputFrame(), frameMs)

	for i := 0; i < 10; i++ {
		s.Update(core.NewInputFrame(), frameMs)
	}
	timer := s.runner.SlowTimer

	second := placeVine(s)
	s.Update(core.NewInputFrame(), frameMs)

	if !second.Collided || s.hits != 2 {
		t.Fatalf("second strike not booked: collided=%v hits=%d", second.Collided, s.hits)
	}
	if want := cfg.Speed.Base - cfg.Slow.Amount; s.scrollSpeed != want {
		t.Errorf("speed = %f after second strike, expected a single reduction to %f", s.scrollSpeed, want)
	}
	if s.runner.SlowTimer >= timer {
		t.Errorf("slow timer restarted: %f >= %f", s.runner.SlowTimer, timer)
	}
}

func TestMissThresholdEndsOnExactFrame(t *testing.T) {
	cfg := testConfig()
	config.ApplyVariant(&cfg, config.VariantRelaxed)
	s := newTestSession(t, cfg)

	for i := 0; i < 3; i++ {
		p := s.world.addPair(KindNone, KindHole)
		p.Bottom.move(float64(i) * 150)
	}

	ended := false
	for i := 0; i < 3000 && !ended; i++ {
		s.Update(core.NewInputFrame(), frameMs)
		if s.missStreak < 3 && s.IsGameOver() {
			t.Fatalf("game over at streak %d: %s", s.missStreak, s.Reason())
		}
		ended = s.missStreak >= 3
	}

	if !ended {
		t.Fatal("miss streak never reached 3")
	}
	if !s.IsGameOver() {
		t.Fatal("game over should be set on the frame the streak reaches the threshold")
	}
	if !strings.Contains(s.Reason(), "missed 3") {
		t.Errorf("reason = %q", s.Reason())
	}
}

func TestBackingOverPassedPairScoresNothing(t *testing.T) {
	s := newTestSession(t, testConfig())
	p := s.world.addPair(KindNone, KindStump)
	p.Bottom.move(s.runner.X - p.Bottom.Right() - 1)

	s.Update(core.NewInputFrame(), frameMs)
	if !p.Passed || s.HUD().Misses != 1 {
		t.Fatalf("setup: passed=%v misses=%d", p.Passed, s.HUD().Misses)
	}

	// Running backwards drags the stump back across the runner.
	for i := 0; i < 60; i++ {
		s.Update(core.NewInputFrame(core.ActionLeft), frameMs)
	}
	if p.Bottom != nil && p.Bottom.X < s.runner.Right() {
		t.Fatalf("setup: stump should be back in front, x=%f", p.Bottom.X)
	}

	hud := s.HUD()
	if p.Collided || hud.Hits != 0 || hud.Score != 0 {
		t.Errorf("passed pair was struck: collided=%v hits=%d score=%d", p.Collided, hud.Hits, hud.Score)
	}
	if hud.MissStreak != 1 || hud.Misses != 1 {
		t.Errorf("miss should stay booked: streak=%d misses=%d", hud.MissStreak, hud.Misses)
	}
}

func TestStrikeResetsMissStreak(t *testing.T) {
	s := newTestSession(t, testConfig())
	s.missStreak = 1
	s.combo = 0

	placeVine(s)
	s.Update(core.NewInputFrame(), frameMs)

	if s.missStreak != 0 {
		t.Errorf("miss streak = %d after a strike, expected 0", s.missStreak)
	}
	if s.combo != 1 || s.bestCombo != 1 {
		t.Errorf("combo = %d, best = %d", s.combo, s.bestCombo)
	}
}

func TestReachingGhostEndsGame(t *testing.T) {
	s := newTestSession(t, testConfig())
	s.missStreak = 0
	s.pursuer.WorldX = s.runner.WorldX

	s.Update(core.NewInputFrame(), frameMs)

	if !s.IsGameOver() {
		t.Fatal("game should end when the runner reaches the ghost")
	}
	if s.Reason() != ReasonCaught {
		t.Errorf("reason = %q, expected %q", s.Reason(), ReasonCaught)
	}
	if s.world.pending != 0 || s.sched.Pending() != 0 {
		t.Error("spawn scheduler should be cancelled on game over")
	}
}

func TestCaptureDistance(t *testing.T) {
	cfg := testConfig()
	cfg.Pursuer.CaptureDistance = 20
	s := newTestSession(t, cfg)

	// Ghost still ahead in the world, but its projection sits against the runner.
	s.pursuer.WorldX = s.runner.WorldX + cfg.Pursuer.BandMin + 5
	s.Update(core.NewInputFrame(), frameMs)

	if !s.IsGameOver() || s.Reason() != ReasonCollapsed {
		t.Errorf("expected collapse game over, got over=%v reason=%q", s.IsGameOver(), s.Reason())
	}
}

func TestUpdateAfterGameOverIsNoop(t *testing.T) {
	s := newTestSession(t, testConfig())
	p := s.world.addPair(KindVine, KindStump)
	s.Update(core.NewInputFrame(), frameMs)

	s.pursuer.WorldX = s.runner.WorldX
	s.Update(core.NewInputFrame(), frameMs)
	if !s.IsGameOver() {
		t.Fatal("setup: expected game over")
	}

	runner := *s.runner
	ghost := s.pursuer.WorldX
	topX, bottomX := p.Top.X, p.Bottom.X
	hud := s.HUD()

	in := core.NewInputFrame(core.ActionJump, core.ActionRight)
	for i := 0; i < 30; i++ {
		s.Update(in, frameMs)
	}

	if s.runner.X != runner.X || s.runner.Y != runner.Y || s.runner.WorldX != runner.WorldX {
		t.Error("runner moved after game over")
	}
	if s.runner.State().ID() != runner.State().ID() {
		t.Error("runner changed state after game over")
	}
	if s.pursuer.WorldX != ghost {
		t.Error("ghost moved after game over")
	}
	if p.Top.X != topX || p.Bottom.X != bottomX {
		t.Error("obstacles moved after game over")
	}
	if s.HUD() != hud {
		t.Errorf("HUD changed after game over: %+v -> %+v", hud, s.HUD())
	}
}

func TestDestroyedMembersLeaveTheirSlot(t *testing.T) {
	s := newTestSession(t, testConfig())
	p := s.world.addPair(KindBat, KindNone)
	p.Top.X = s.runner.X
	p.Top.Y = s.runner.Y + 5

	s.Update(core.NewInputFrame(), frameMs)

	if !p.Collided {
		t.Fatal("bat should have been struck")
	}
	if p.Top != nil {
		t.Error("destroyed bat should be cleared from its slot")
	}
	for _, live := range s.world.Pairs() {
		if live == p {
			t.Error("empty pair should be deleted in the same frame")
		}
	}
	if s.misses != 0 {
		t.Error("a struck pair must never count as a miss")
	}
}

func TestDuckingIntoHole(t *testing.T) {
	cfg := testConfig()
	s := newTestSession(t, cfg)
	p := s.world.addPair(KindNone, KindHole)
	p.Bottom.X = s.runner.X

	// Running over the hole without ducking does nothing.
	s.Update(core.NewInputFrame(), frameMs)
	if p.Collided {
		t.Fatal("hole should need the duck input")
	}

	s.Update(core.NewInputFrame(core.ActionDuck), frameMs)
	if !p.Collided {
		t.Fatal("ducking over the hole should drop into it")
	}
	if s.runner.SlowTimer == 0 {
		t.Error("dropping into a hole should start the slow effect")
	}
	if s.runner.State().ID() == StateHit {
		t.Error("a hole does not put the runner into Hit")
	}

	dipped := false
	for i := 0; i < 40; i++ {
		s.Update(core.NewInputFrame(), frameMs)
		if s.runner.DipOffset > 0 {
			dipped = true
		}
	}
	if !dipped {
		t.Error("runner should dip into the hole")
	}
	if s.runner.DipOffset != 0 {
		t.Errorf("dip should recover, offset = %f", s.runner.DipOffset)
	}
}

func TestRunnerStaysOnCanvas(t *testing.T) {
	s := newTestSession(t, config.DefaultChaseConfig())
	rng := rand.New(rand.NewSource(7))
	actions := []core.Action{core.ActionJump, core.ActionDuck, core.ActionLeft, core.ActionRight}
	groundY := s.cfg.Canvas.GroundY()

	for i := 0; i < 3000 && !s.IsGameOver(); i++ {
		in := core.NewInputFrame()
		for _, a := range actions {
			if rng.Intn(4) == 0 {
				in.Set(a)
			}
		}
		s.Update(in, frameMs)

		if s.runner.Bottom() > groundY+1e-9 {
			t.Fatalf("frame %d: runner bottom %f below ground %f", i, s.runner.Bottom(), groundY)
		}
		if s.runner.Y < 0 {
			t.Fatalf("frame %d: runner above canvas, y=%f", i, s.runner.Y)
		}
		for _, p := range s.world.Pairs() {
			if p.Empty() {
				t.Fatalf("frame %d: empty pair %d still listed", i, p.ID)
			}
		}
		if s.particles.Len() > s.particles.Cap() || s.collisions.Len() > s.collisions.Cap() {
			t.Fatalf("frame %d: effect queue over capacity", i)
		}
	}
}

func TestPairFlagsAreOneShot(t *testing.T) {
	s := newTestSession(t, config.DefaultChaseConfig())
	collided := map[int]bool{}
	passed := map[int]bool{}
	booked := 0

	for i := 0; i < 3000 && !s.IsGameOver(); i++ {
		s.Update(core.NewInputFrame(), frameMs)
		for _, p := range s.world.Pairs() {
			if collided[p.ID] && !p.Collided {
				t.Fatalf("frame %d: pair %d lost its collided flag", i, p.ID)
			}
			if passed[p.ID] && !p.Passed {
				t.Fatalf("frame %d: pair %d lost its passed flag", i, p.ID)
			}
			if p.Passed && !passed[p.ID] {
				booked++
			}
			collided[p.ID] = p.Collided
			passed[p.ID] = p.Passed
		}
	}

	if s.hits+s.misses == 0 {
		t.Fatal("expected the run to book at least one pair")
	}
	if s.misses > booked {
		t.Errorf("misses = %d but only %d pairs were seen passing", s.misses, booked)
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() HUD {
		s, err := NewSession(config.DefaultChaseConfig(), 12345, nil)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 1500 && !s.IsGameOver(); i++ {
			in := core.NewInputFrame()
			if i%40 == 0 {
				in.Set(core.ActionJump)
			}
			if i%90 < 20 {
				in.Set(core.ActionDuck)
			}
			s.Update(in, frameMs)
		}
		return s.HUD()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("runs with the same seed diverged:\n%+v\n%+v", a, b)
	}
}

type recordingSurface struct {
	drawn []Drawable
}

func (r *recordingSurface) Draw(d Drawable) {
	r.drawn = append(r.drawn, d)
}

func TestDrawIsReadOnly(t *testing.T) {
	s := newTestSession(t, testConfig())
	placeVine(s)
	s.Update(core.NewInputFrame(), frameMs)

	before := s.HUD()
	surface := &recordingSurface{}
	s.Draw(surface)

	if s.HUD() != before {
		t.Error("Draw changed the session")
	}

	var runner, ghost bool
	for _, d := range surface.drawn {
		switch d.Sprite {
		case SpriteRunnerHit:
			runner = true
			if !d.Tint {
				t.Error("slowed runner should be drawn tinted")
			}
		case SpriteGhost:
			ghost = true
		}
	}
	if !runner || !ghost {
		t.Errorf("missing actors in draw pass: runner=%v ghost=%v", runner, ghost)
	}
}
