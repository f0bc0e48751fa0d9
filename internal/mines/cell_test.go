package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellRevealClearsFlag(t *testing.T) {
	c := Cell{x: 2, y: 3, hidden: true, flagged: true, value: 4}

	c.reveal()

	assert.False(t, c.IsHidden())
	assert.False(t, c.IsFlagged())
	assert.Equal(t, 4, c.Value())
	assert.Equal(t, 2, c.X())
	assert.Equal(t, 3, c.Y())
}

func TestMineCellReportsZeroValue(t *testing.T) {
	c := Cell{mine: true, value: 3, hidden: true}

	assert.True(t, c.IsMine())
	assert.Equal(t, 0, c.Value())
}
