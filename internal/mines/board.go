// Package mines implements the Minesweeper grid model: mine placement,
// adjacency values, flood-fill reveal, flag marking and win/loss evaluation.
// It has no rendering or input concerns and no external dependencies.
package mines

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

var (
	// ErrInvalidDimensions is returned when a board is created with a
	// non-positive number of columns or rows.
	ErrInvalidDimensions = errors.New("mines: invalid board dimensions")

	// ErrMineOutOfBounds is returned when an explicit mine position lies
	// outside the grid.
	ErrMineOutOfBounds = errors.New("mines: mine position out of bounds")

	// ErrInvalidLayout is returned for layout rows containing unknown runes.
	ErrInvalidLayout = errors.New("mines: invalid layout")
)

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// neighbourOffsets lists the Moore neighbourhood in rotational order,
// starting south-west and turning counter-clockwise.
var neighbourOffsets = [8]Point{
	{-1, 1},
	{0, 1},
	{1, 1},
	{1, 0},
	{1, -1},
	{0, -1},
	{-1, -1},
	{-1, 0},
}

// Board owns the cell grid and the game outcome.
// It is not safe for concurrent use; callers serialize mutations.
type Board struct {
	cols, rows int
	cells      []Cell           // Row-major, index = y*cols + x
	mines      []*Cell          // Row-major order
	flagged    map[int]struct{} // Cell indices currently flagged
	lost       bool
}

// New generates a board where every cell is independently mined with the
// given probability. Probabilities outside [0, 1] are accepted and yield a
// board with no mines or only mines. A nil rng uses a time-seeded source.
func New(cols, rows int, mineProbability float64, rng *rand.Rand) (*Board, error) {
	b, err := newEmpty(cols, rows)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	for i := range b.cells {
		if rng.Float64() < mineProbability {
			b.cells[i].mine = true
		}
	}

	b.computeValues()
	return b, nil
}

// NewWithMines builds a board with mines at exactly the given positions.
// Duplicate positions are collapsed.
func NewWithMines(cols, rows int, mines []Point) (*Board, error) {
	b, err := newEmpty(cols, rows)
	if err != nil {
		return nil, err
	}

	for _, p := range mines {
		c := b.Cell(p.X, p.Y)
		if c == nil {
			return nil, fmt.Errorf("%w: (%d,%d) on %dx%d", ErrMineOutOfBounds, p.X, p.Y, cols, rows)
		}
		c.mine = true
	}

	b.computeValues()
	return b, nil
}

// ParseLayout builds a board from text rows where '*' marks a mine and '.'
// a safe cell. All rows must have the same length.
func ParseLayout(layout []string) (*Board, error) {
	if len(layout) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidDimensions)
	}

	cols := len([]rune(layout[0]))
	var mines []Point
	for y, row := range layout {
		runes := []rune(row)
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, y, len(runes), cols)
		}
		for x, r := range runes {
			switch r {
			case '*':
				mines = append(mines, Point{X: x, Y: y})
			case '.':
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrInvalidLayout, r, x, y)
			}
		}
	}

	return NewWithMines(cols, len(layout), mines)
}

// newEmpty allocates a board of hidden, unmined cells.
func newEmpty(cols, rows int) (*Board, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cols, rows)
	}

	b := &Board{
		cols:    cols,
		rows:    rows,
		cells:   make([]Cell, cols*rows),
		flagged: make(map[int]struct{}),
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			b.cells[y*cols+x] = Cell{x: x, y: y, hidden: true}
		}
	}
	return b, nil
}

// computeValues collects the mine set and increments the value of every
// non-mine neighbour of each mine. Runs once per board.
func (b *Board) computeValues() {
	b.mines = b.mines[:0]
	for i := range b.cells {
		if b.cells[i].mine {
			b.mines = append(b.mines, &b.cells[i])
		}
	}

	for _, m := range b.mines {
		for _, off := range neighbourOffsets {
			n := b.Cell(m.x+off.X, m.y+off.Y)
			if n == nil || n.mine {
				continue
			}
			n.value++
		}
	}
}

// Cols returns the grid width.
func (b *Board) Cols() int {
	return b.cols
}

// Rows returns the grid height.
func (b *Board) Rows() int {
	return b.rows
}

// Cell returns the cell at (x, y), or nil when the position is outside the
// grid.
func (b *Board) Cell(x, y int) *Cell {
	if x < 0 || x >= b.cols || y < 0 || y >= b.rows {
		return nil
	}
	return &b.cells[y*b.cols+x]
}

// Mines returns the mined cells in row-major order.
func (b *Board) Mines() []*Cell {
	out := make([]*Cell, len(b.mines))
	copy(out, b.mines)
	return out
}

// MineCount returns the number of mines on the board.
func (b *Board) MineCount() int {
	return len(b.mines)
}

// FlagCount returns the number of flagged cells.
func (b *Board) FlagCount() int {
	return len(b.flagged)
}

// HiddenCount returns the number of cells not yet revealed.
func (b *Board) HiddenCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].hidden {
			n++
		}
	}
	return n
}

// Reveal uncovers the cell at (x, y) and flood-fills through zero-valued
// cells. Numbered cells are revealed but stop the expansion. Revealing a
// flagged cell, directly or through the fill, removes its flag. Revealing a
// mine loses the game.
//
// Reveal does nothing once the game is over or when (x, y) is outside the
// grid. A board without mines is won from the start; it stays revealable.
// Returns the number of cells uncovered by this call.
func (b *Board) Reveal(x, y int) int {
	if b.frozenForReveal() {
		return 0
	}
	start := b.Cell(x, y)
	if start == nil {
		return 0
	}

	revealed := 0
	queue := []*Cell{start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		if !c.hidden {
			continue
		}

		c.reveal()
		delete(b.flagged, c.y*b.cols+c.x)
		revealed++

		if c.mine {
			b.lost = true
			continue
		}
		if c.value != 0 {
			continue
		}

		for _, off := range neighbourOffsets {
			if n := b.Cell(c.x+off.X, c.y+off.Y); n != nil && n.hidden {
				queue = append(queue, n)
			}
		}
	}

	return revealed
}

// frozenForReveal reports whether Reveal must be ignored.
func (b *Board) frozenForReveal() bool {
	if b.lost {
		return true
	}
	return len(b.mines) > 0 && b.HasWon()
}

// ToggleFlag flips the flag on a hidden cell and reports whether the cell is
// flagged afterwards. Revealed cells, positions outside the grid and
// finished games are left untouched.
func (b *Board) ToggleFlag(x, y int) bool {
	c := b.Cell(x, y)
	if c == nil {
		return false
	}
	if b.IsGameOver() || !c.hidden {
		return c.flagged
	}

	idx := y*b.cols + x
	if c.flagged {
		c.flagged = false
		delete(b.flagged, idx)
	} else {
		c.flagged = true
		b.flagged[idx] = struct{}{}
	}
	return c.flagged
}

// HasWon reports whether the flagged cells are exactly the mined cells.
// Revealing every safe cell without flagging is not a win.
func (b *Board) HasWon() bool {
	if b.lost {
		return false
	}
	if len(b.flagged) != len(b.mines) {
		return false
	}
	for idx := range b.flagged {
		if !b.cells[idx].mine {
			return false
		}
	}
	return true
}

// HasLost reports whether a mine has been revealed.
func (b *Board) HasLost() bool {
	return b.lost
}

// IsGameOver reports whether the game is lost or won.
func (b *Board) IsGameOver() bool {
	return b.HasLost() || b.HasWon()
}

// String renders the board for debugging: '#' hidden, 'F' flagged,
// '*' revealed mine, '.' revealed zero, digits for values.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.cols + 1) * b.rows)

	for y := 0; y < b.rows; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.cols; x++ {
			c := &b.cells[y*b.cols+x]
			switch {
			case c.flagged:
				sb.WriteByte('F')
			case c.hidden:
				sb.WriteByte('#')
			case c.mine:
				sb.WriteByte('*')
			case c.value == 0:
				sb.WriteByte('.')
			default:
				sb.WriteByte(byte('0' + c.value))
			}
		}
	}
	return sb.String()
}
