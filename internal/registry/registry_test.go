package registry

import (
	"testing"

	"github.com/vovakirdan/ghost-chase/internal/core"
)

type stubGame struct {
	id, title string
	resets    int
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func stubFactory(id, title string) Factory {
	return func() Game {
		return &stubGame{id: id, title: title}
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_b", stubFactory("zz_stub_b", "Stub B"))
	Register("zz_stub_a", stubFactory("zz_stub_a", "Stub A"))

	if !Exists("zz_stub_a") {
		t.Fatal("registered game should exist")
	}
	if Exists("zz_missing") {
		t.Error("unregistered game should not exist")
	}

	g, err := Create("zz_stub_a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "zz_stub_a" {
		t.Errorf("created %q", g.ID())
	}

	// Every Create returns a fresh instance.
	g2, _ := Create("zz_stub_a")
	if g == g2 {
		t.Error("Create should not share instances")
	}

	if _, err := Create("zz_missing"); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	Register("zz_list_2", stubFactory("zz_list_2", "Second"))
	Register("zz_list_1", stubFactory("zz_list_1", "First"))

	games := List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID >= games[i].ID {
			t.Fatalf("list not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}

	titles := map[string]string{}
	for _, g := range games {
		titles[g.ID] = g.Title
	}
	if titles["zz_list_1"] != "First" || titles["zz_list_2"] != "Second" {
		t.Errorf("titles = %v", titles)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", stubFactory("zz_dup", "Dup"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("zz_dup", stubFactory("zz_dup", "Dup"))
}
