package sweeper

import "github.com/vovakirdan/tui-minesweeper/internal/core"

const (
	cellWidth = 3 // " 3 ", cursor brackets use the side columns
	hudHeight = 3 // Title, status, blank line
	footerH   = 2 // Blank line, controls
)

// layout places the board on screen and maps clicks back to cells.
type layout struct {
	frame core.Rect // Board including its border
	grid  core.Rect // Cell area inside the border
	fits  bool
}

// computeLayout centers a cols x rows board below the HUD.
func computeLayout(cols, rows, screenW, screenH int) layout {
	frameW := cols*cellWidth + 2
	frameH := rows + 2

	l := layout{
		fits: screenW >= frameW && screenH >= hudHeight+frameH+footerH,
	}

	x := max((screenW-frameW)/2, 0)
	l.frame = core.NewRect(x, hudHeight, frameW, frameH)
	l.grid = core.NewRect(x+1, hudHeight+1, cols*cellWidth, rows)
	return l
}

// cellAt translates screen coordinates into grid coordinates.
func (l layout) cellAt(px, py int) (x, y int, ok bool) {
	if !l.fits || !l.grid.Contains(px, py) {
		return 0, 0, false
	}
	return (px - l.grid.X) / cellWidth, py - l.grid.Y, true
}

// cellOrigin returns the screen position of the left column of a cell.
func (l layout) cellOrigin(x, y int) (int, int) {
	return l.grid.X + x*cellWidth, l.grid.Y + y
}
