package mines

// CellView is the read-only view of a cell used by renderers.
// *Cell implements it; presentation wrappers compose it.
type CellView interface {
	X() int
	Y() int
	IsMine() bool
	IsFlagged() bool
	IsHidden() bool
	Value() int
}

// Cell is a single grid position. Cells are owned by a Board and can only be
// mutated through it.
type Cell struct {
	x, y    int
	mine    bool
	flagged bool
	hidden  bool
	value   int // Mined neighbours, unused for mines
}

// X returns the cell column.
func (c *Cell) X() int {
	return c.x
}

// Y returns the cell row.
func (c *Cell) Y() int {
	return c.y
}

// IsMine reports whether the cell holds a mine.
func (c *Cell) IsMine() bool {
	return c.mine
}

// IsFlagged reports whether the player marked the cell.
func (c *Cell) IsFlagged() bool {
	return c.flagged
}

// IsHidden reports whether the cell is still covered.
func (c *Cell) IsHidden() bool {
	return c.hidden
}

// Value returns the number of mines in the 8-neighbourhood.
// Always 0 for mines.
func (c *Cell) Value() int {
	if c.mine {
		return 0
	}
	return c.value
}

// reveal uncovers the cell. The flag bit is cleared so a revealed cell is
// never reported as flagged.
func (c *Cell) reveal() {
	c.hidden = false
	c.flagged = false
}

var _ CellView = (*Cell)(nil)
