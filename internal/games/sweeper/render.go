package sweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

const (
	glyphHidden  = '·'
	glyphFlag    = 'F'
	glyphMine    = '*'
	glyphBadFlag = 'X'
)

// palette holds the resolved display colors.
type palette struct {
	values     []core.Color
	mine       core.Color
	flag       core.Color
	grid       core.Color
	showZeroes bool
}

func newPalette(d config.DisplayConfig) palette {
	p := palette{
		mine:       resolveColor(d.MineColor, core.ColorBrightRed),
		flag:       resolveColor(d.FlagColor, core.ColorOrange),
		grid:       resolveColor(d.GridColor, core.ColorGray),
		showZeroes: d.ShowZeroes,
	}
	for _, name := range d.ValueColors {
		p.values = append(p.values, resolveColor(name, core.ColorDefault))
	}
	return p
}

func resolveColor(name string, fallback core.Color) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return fallback
}

// valueColor picks the color for an adjacency value. The last configured
// color repeats for higher values.
func (p palette) valueColor(v int) core.Color {
	if len(p.values) == 0 {
		return core.ColorDefault
	}
	if v >= len(p.values) {
		v = len(p.values) - 1
	}
	return p.values[v]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.board == nil {
		g.renderError(dst)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderOverlays(dst)

	dst.DrawTextCentered(g.screenH-1, g.Controls())
}

func (g *Game) renderError(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Cannot build board")
	if g.boardErr != nil {
		dst.DrawTextCentered(y, g.boardErr.Error())
	}
	dst.DrawTextCentered(y+2, "Check sweeper.yaml, press B to go back")
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	need := fmt.Sprintf("Need %dx%d", g.layout.frame.W, hudHeight+g.layout.frame.H+footerH)
	dst.DrawTextCentered(y+1, need)
}

// renderHUD draws the title, remaining mines and the clock.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, g.Title())

	left := fmt.Sprintf("Mines: %d", g.board.MineCount()-g.board.FlagCount())
	if g.board.HasLost() {
		left = fmt.Sprintf("Found: %d/%d", g.minesFound(), g.board.MineCount())
	}
	right := fmt.Sprintf("Time: %03d", g.seconds())

	f := g.layout.frame
	dst.DrawText(f.X, 1, left)
	rx := f.Right() - len(right)
	if rx < f.X+len(left)+1 {
		rx = f.X + len(left) + 1
	}
	dst.DrawText(rx, 1, right)
}

// minesFound counts the mines that carry a flag.
func (g *Game) minesFound() int {
	n := 0
	for _, c := range g.board.Mines() {
		if c.IsFlagged() {
			n++
		}
	}
	return n
}

// renderBoard draws the frame, every cell and the cursor.
func (g *Game) renderBoard(dst *core.Screen) {
	dst.DrawBox(g.layout.frame, g.palette.grid)

	lost := g.board.HasLost()
	cols := g.board.Cols()
	for i, c := range g.cells {
		x, y := i%cols, i/cols
		px, py := g.layout.cellOrigin(x, y)
		r, col := g.glyph(c, lost)
		dst.SetColored(px+1, py, r, col)
	}

	if !g.board.IsGameOver() {
		px, py := g.layout.cellOrigin(g.cursorX, g.cursorY)
		dst.SetColored(px, py, '[', core.ColorBrightWhite)
		dst.SetColored(px+cellWidth-1, py, ']', core.ColorBrightWhite)
	}
}

// glyph chooses the rune and color for one cell. After a loss every mine is
// shown and wrong flags are crossed out.
func (g *Game) glyph(c *AnimatedCell, lost bool) (rune, core.Color) {
	switch {
	case c.IsFlagged():
		if lost && !c.IsMine() {
			return glyphBadFlag, core.ColorRed
		}
		return glyphFlag, g.palette.flag
	case c.IsHidden():
		if lost && c.IsMine() {
			return glyphMine, g.palette.mine
		}
		return glyphHidden, core.ColorGray
	}

	if c.Animating() {
		if c.Progress() < 0.5 {
			return '░', core.ColorGray
		}
		return '▒', core.ColorGray
	}

	switch {
	case c.IsMine():
		return glyphMine, g.palette.mine
	case c.Value() == 0:
		if g.palette.showZeroes {
			return '0', g.palette.valueColor(0)
		}
		return ' ', core.ColorDefault
	default:
		return rune('0' + c.Value()), g.palette.valueColor(c.Value())
	}
}

// renderOverlays draws pause and end-of-game messages over the board.
func (g *Game) renderOverlays(dst *core.Screen) {
	switch {
	case g.paused:
		g.drawOverlay(dst, core.ColorBrightYellow, "PAUSED", "Press P to resume")
	case g.board.HasWon():
		g.drawOverlay(dst, core.ColorBrightGreen,
			"CLEARED!",
			fmt.Sprintf("Score: %d  Time: %ds", g.score, g.seconds()),
			"R: restart  B: menu")
	case g.board.HasLost():
		g.drawOverlay(dst, core.ColorBrightRed,
			"BOOM!",
			fmt.Sprintf("Time: %ds", g.seconds()),
			"R: restart  B: menu")
	}
}

// drawOverlay draws a boxed block of centered lines over the board.
func (g *Game) drawOverlay(dst *core.Screen, c core.Color, lines ...string) {
	width := 0
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}
	width += 4
	height := len(lines) + 2

	cx, cy := g.layout.frame.Center()
	box := core.NewRect(cx-width/2, cy-height/2, width, height)

	dst.FillRect(box, ' ')
	dst.DrawBox(box, c)
	for i, line := range lines {
		x := box.X + (width-len([]rune(line)))/2
		dst.DrawTextColored(x, box.Y+1+i, line, c)
	}
}
