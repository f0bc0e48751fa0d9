package registry

import (
	"testing"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Resize(int, int) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) Controls() string { return "" }

func TestRegisterListCreate(t *testing.T) {
	Register(GameInfo{ID: "test_b", Title: "B", Order: 100}, func() Game { return &stubGame{id: "test_b"} })
	Register(GameInfo{ID: "test_a", Title: "A", Order: 101}, func() Game { return &stubGame{id: "test_a"} })

	if !Exists("test_a") || !Exists("test_b") {
		t.Fatal("registered games should exist")
	}

	var order []string
	for _, g := range List() {
		if g.ID == "test_a" || g.ID == "test_b" {
			order = append(order, g.ID)
		}
	}
	if len(order) != 2 || order[0] != "test_b" || order[1] != "test_a" {
		t.Errorf("List() should sort by Order, got %v", order)
	}

	g, err := Create("test_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "test_a" {
		t.Errorf("Create() returned %q", g.ID())
	}

	info, ok := Info("test_b")
	if !ok || info.Title != "B" {
		t.Errorf("Info() = %+v, %v", info, ok)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(GameInfo{ID: "test_dup"}, func() Game { return &stubGame{id: "test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(GameInfo{ID: "test_dup"}, func() Game { return &stubGame{id: "test_dup"} })
}
