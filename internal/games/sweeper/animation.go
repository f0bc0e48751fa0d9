package sweeper

import "github.com/vovakirdan/tui-minesweeper/internal/mines"

// AnimatedCell decorates an engine cell with reveal animation progress.
// The engine cell stays the source of truth; the wrapper only counts ticks
// since the cell was uncovered.
type AnimatedCell struct {
	mines.CellView

	duration int // Ticks for a full reveal, 0 disables the animation
	elapsed  int // Ticks since the cell was revealed
}

// NewAnimatedCell wraps c with an animation lasting duration ticks.
func NewAnimatedCell(c mines.CellView, duration int) *AnimatedCell {
	if duration < 0 {
		duration = 0
	}
	return &AnimatedCell{CellView: c, duration: duration}
}

// Advance moves the animation forward. Hidden cells stay at the start.
func (a *AnimatedCell) Advance(ticks int) {
	if a.IsHidden() {
		a.elapsed = 0
		return
	}
	a.elapsed = min(a.elapsed+ticks, a.duration)
}

// Progress returns how far the reveal has grown, from 0 to 1.
func (a *AnimatedCell) Progress() float64 {
	if a.IsHidden() {
		return 0
	}
	if a.duration == 0 {
		return 1
	}
	return float64(a.elapsed) / float64(a.duration)
}

// Animating reports whether the cell is revealed but not fully grown.
func (a *AnimatedCell) Animating() bool {
	return !a.IsHidden() && a.elapsed < a.duration
}

var _ mines.CellView = (*AnimatedCell)(nil)
