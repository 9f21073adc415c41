package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ghost-chase/internal/core"
)

// fakeGame records the input frames it is stepped with.
type fakeGame struct {
	frames  []core.InputFrame
	resets  int
	over    bool
	lastCfg core.RuntimeConfig
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.lastCfg = cfg
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "Score: 7")
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: 7, GameOver: g.over}
}

func newTestModel(g *fakeGame) Model {
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}, Options{
		HoldWindow: 100 * time.Millisecond,
	})
	return m
}

func TestModelInitResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start the tick loop")
	}
	if g.resets != 1 || g.lastCfg.Seed != 1 {
		t.Errorf("resets = %d, cfg = %+v", g.resets, g.lastCfg)
	}
}

func TestModelHeldKeysReachGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	t0 := time.Unix(100, 0)
	m.now = func() time.Time { return t0 }

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	next, _ = next.Update(runeKey('p'))
	next, cmd := next.Update(TickMsg(t0.Add(16 * time.Millisecond)))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	next, _ = next.Update(TickMsg(t0.Add(200 * time.Millisecond)))
	_ = next

	if len(g.frames) != 2 {
		t.Fatalf("game stepped %d times, expected 2", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionRight) || !g.frames[0].Has(core.ActionPause) {
		t.Errorf("first frame = %v", g.frames[0].Actions)
	}
	if len(g.frames[1].Actions) != 0 {
		t.Errorf("second frame should be empty, got %v", g.frames[1].Actions)
	}
}

func TestModelGameOverReleasesKeys(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	t0 := time.Unix(100, 0)
	m.now = func() time.Time { return t0 }

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	g.over = true
	next, _ = next.Update(TickMsg(t0))
	next, _ = next.Update(TickMsg(t0.Add(10 * time.Millisecond)))

	if next.(Model).State().Score != 7 {
		t.Error("model should track the game state")
	}
	if g.frames[1].Has(core.ActionRight) {
		t.Error("held keys should not survive game over")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&fakeGame{})

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelResizeKeepsFooterRow(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	nm := next.(Model)
	if nm.screen.Width() != 60 || nm.screen.Height() != 19 {
		t.Errorf("screen = %dx%d, expected 60x19", nm.screen.Width(), nm.screen.Height())
	}
	if g.resets != 0 {
		t.Error("resize should not reset the game")
	}

	next, _ = nm.Update(runeKey('?'))
	nm = next.(Model)
	if nm.screen.Height() >= 19 {
		t.Errorf("full help should take more rows, screen height = %d", nm.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&fakeGame{})
	out := m.View()

	if !strings.Contains(out, "Score: 7") {
		t.Error("view should contain the game screen")
	}
	if !strings.Contains(out, "jump") {
		t.Error("view should contain the help line")
	}
}

func TestRenderScreenPlainCells(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorBrown)
	s.DrawText(2, 0, "cd")

	out := RenderScreen(s)
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Fatalf("rendered %d lines, expected 2", len(lines))
	}
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("cells missing from %q", out)
	}
}
