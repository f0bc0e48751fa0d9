package sweeper

import (
	"testing"

	"github.com/vovakirdan/tui-minesweeper/internal/mines"
)

func TestAnimatedCellProgress(t *testing.T) {
	b, err := mines.ParseLayout([]string{"."})
	if err != nil {
		t.Fatal(err)
	}
	a := NewAnimatedCell(b.Cell(0, 0), 4)

	a.Advance(3)
	if p := a.Progress(); p != 0 {
		t.Errorf("Hidden cell progress = %v, want 0", p)
	}
	if a.Animating() {
		t.Error("Hidden cell should not animate")
	}

	b.Reveal(0, 0)
	a.Advance(1)
	if p := a.Progress(); p != 0.25 {
		t.Errorf("Progress = %v, want 0.25", p)
	}
	if !a.Animating() {
		t.Error("Cell should be animating")
	}

	a.Advance(10)
	if p := a.Progress(); p != 1 {
		t.Errorf("Progress = %v, want 1", p)
	}
	if a.Animating() {
		t.Error("Finished cell should not animate")
	}
}

func TestAnimatedCellDisabled(t *testing.T) {
	b, err := mines.ParseLayout([]string{"."})
	if err != nil {
		t.Fatal(err)
	}
	a := NewAnimatedCell(b.Cell(0, 0), 0)
	b.Reveal(0, 0)

	if a.Animating() || a.Progress() != 1 {
		t.Errorf("Zero duration should show the cell at once, progress = %v", a.Progress())
	}
	if a.X() != 0 || a.Y() != 0 || a.Value() != 0 {
		t.Error("Wrapper should expose the engine cell")
	}
}
