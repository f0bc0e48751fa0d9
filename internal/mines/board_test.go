package mines

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type boardState struct {
	cells   []Cell
	flagged int
	lost    bool
}

func snapshot(b *Board) boardState {
	return boardState{
		cells:   append([]Cell(nil), b.cells...),
		flagged: len(b.flagged),
		lost:    b.lost,
	}
}

func mustLayout(t *testing.T, layout ...string) *Board {
	t.Helper()
	b, err := ParseLayout(layout)
	require.NoError(t, err)
	return b
}

func countMinedNeighbours(b *Board, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if c := b.Cell(x+dx, y+dy); c != nil && c.IsMine() {
				n++
			}
		}
	}
	return n
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
	}{
		{"zero cols", 0, 5},
		{"zero rows", 5, 0},
		{"negative cols", -3, 5},
		{"negative both", -1, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := New(tc.cols, tc.rows, 0.2, rand.New(rand.NewSource(1)))
			assert.ErrorIs(t, err, ErrInvalidDimensions)
			assert.Nil(t, b)
		})
	}
}

func TestAdjacencyMatchesNeighbourhood(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		b, err := New(12, 9, 0.3, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		for y := 0; y < b.Rows(); y++ {
			for x := 0; x < b.Cols(); x++ {
				c := b.Cell(x, y)
				if c.IsMine() {
					continue
				}
				assert.Equal(t, countMinedNeighbours(b, x, y), c.Value(), "seed %d cell (%d,%d)", seed, x, y)
			}
		}
	}
}

func TestHandBuiltValues(t *testing.T) {
	b := mustLayout(t,
		"*..",
		"...",
		"..*",
	)

	want := [][]int{
		{0, 1, 0},
		{1, 2, 1},
		{0, 1, 0},
	}
	for y, row := range want {
		for x, v := range row {
			assert.Equal(t, v, b.Cell(x, y).Value(), "cell (%d,%d)", x, y)
		}
	}
	assert.Equal(t, 2, b.MineCount())
}

func TestGenerationIsDeterministicPerSeed(t *testing.T) {
	b1, err := New(10, 10, 0.2, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	b2, err := New(10, 10, 0.2, rand.New(rand.NewSource(99)))
	require.NoError(t, err)

	assert.Equal(t, b1.String(), b2.String())
	assert.Equal(t, b1.MineCount(), b2.MineCount())
}

func TestDegenerateProbabilities(t *testing.T) {
	t.Run("above one mines everything", func(t *testing.T) {
		b, err := New(4, 3, 1.5, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.Equal(t, 12, b.MineCount())
	})

	t.Run("below zero mines nothing", func(t *testing.T) {
		b, err := New(4, 3, -0.5, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		assert.Equal(t, 0, b.MineCount())
	})
}

func TestCellOutOfBounds(t *testing.T) {
	b := mustLayout(t, "..", "..")

	assert.Nil(t, b.Cell(-1, 0))
	assert.Nil(t, b.Cell(0, -1))
	assert.Nil(t, b.Cell(2, 0))
	assert.Nil(t, b.Cell(0, 2))
	require.NotNil(t, b.Cell(1, 1))
	assert.Equal(t, 1, b.Cell(1, 1).X())
	assert.Equal(t, 1, b.Cell(1, 1).Y())
}

func TestSingleSafeCellBoard(t *testing.T) {
	// Given: a 1x1 board with no mines
	b, err := New(1, 1, 0, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	c := b.Cell(0, 0)
	require.NotNil(t, c)
	assert.False(t, c.IsMine())
	assert.Equal(t, 0, c.Value())
	assert.True(t, b.HasWon(), "empty mine set equals empty flag set")

	// When: revealing the only cell
	n := b.Reveal(0, 0)

	// Then: it is uncovered and the game stays won
	assert.Equal(t, 1, n)
	assert.False(t, c.IsHidden())
	assert.True(t, b.HasWon())
	assert.False(t, b.HasLost())
}

func TestRevealStopsAtNumberedNeighbour(t *testing.T) {
	b, err := NewWithMines(2, 1, []Point{{X: 1, Y: 0}})
	require.NoError(t, err)

	b.Reveal(0, 0)

	assert.Equal(t, 1, b.Cell(0, 0).Value())
	assert.False(t, b.Cell(0, 0).IsHidden())
	assert.True(t, b.Cell(1, 0).IsHidden())
	assert.False(t, b.IsGameOver())

	b.Reveal(1, 0)
	assert.True(t, b.HasLost())
	assert.True(t, b.IsGameOver())
}

func TestFloodFillDoesNotCrossNumberedBoundary(t *testing.T) {
	b := mustLayout(t,
		"..*..",
		"..*..",
		"..*..",
	)

	n := b.Reveal(0, 1)

	assert.Equal(t, 6, n)
	assert.Equal(t, ".2###\n.3###\n.2###", b.String())
	assert.False(t, b.HasLost())
}

func TestFloodFillReachesAroundCorners(t *testing.T) {
	b := mustLayout(t,
		"....*",
		".....",
		".....",
	)

	n := b.Reveal(0, 2)

	assert.Equal(t, 14, n)
	assert.Equal(t, "...1#\n...11\n.....", b.String())
	assert.Equal(t, 1, b.HiddenCount())
}

func TestFloodFillTerminatesOnLargeEmptyBoard(t *testing.T) {
	b, err := New(60, 40, 0, nil)
	require.NoError(t, err)

	n := b.Reveal(30, 20)

	assert.Equal(t, 60*40, n)
	assert.Equal(t, 0, b.HiddenCount())
}

func TestRevealIsIdempotent(t *testing.T) {
	b := mustLayout(t,
		"*...",
		"....",
		"...*",
	)

	b.Reveal(1, 0)
	before := snapshot(b)

	assert.Equal(t, 0, b.Reveal(1, 0))
	assert.Equal(t, before, snapshot(b))
}

func TestRevealOutOfBoundsIsNoop(t *testing.T) {
	b := mustLayout(t, "*.", "..")
	before := snapshot(b)

	assert.Equal(t, 0, b.Reveal(-1, 0))
	assert.Equal(t, 0, b.Reveal(2, 2))
	assert.False(t, b.ToggleFlag(5, 5))
	assert.Equal(t, before, snapshot(b))
}

func TestLossFreezesBoard(t *testing.T) {
	// Given: a board where (1,1) is a mine
	b := mustLayout(t,
		"...",
		".*.",
		"...",
	)

	// When: the mine is revealed
	b.Reveal(1, 1)

	// Then: the game is lost and later moves change nothing
	require.True(t, b.HasLost())
	assert.True(t, b.IsGameOver())
	assert.False(t, b.HasWon())

	before := snapshot(b)
	b.Reveal(0, 0)
	b.ToggleFlag(2, 2)
	assert.Equal(t, before, snapshot(b))
}

func TestToggleFlagIsStrictToggle(t *testing.T) {
	b := mustLayout(t,
		"*..",
		"...",
	)

	assert.True(t, b.ToggleFlag(2, 1))
	assert.True(t, b.Cell(2, 1).IsFlagged())
	assert.Equal(t, 1, b.FlagCount())

	assert.False(t, b.ToggleFlag(2, 1))
	assert.False(t, b.Cell(2, 1).IsFlagged())
	assert.Equal(t, 0, b.FlagCount())
}

func TestToggleFlagOnRevealedCellIsNoop(t *testing.T) {
	b := mustLayout(t,
		"*..",
		"...",
	)
	b.Reveal(1, 0)
	before := snapshot(b)

	assert.False(t, b.ToggleFlag(1, 0))
	assert.Equal(t, before, snapshot(b))
}

func TestRevealClearsFlagsInFill(t *testing.T) {
	b := mustLayout(t,
		"...",
		"...",
		"..*",
	)
	require.True(t, b.ToggleFlag(0, 0))

	b.Reveal(0, 1)

	c := b.Cell(0, 0)
	assert.False(t, c.IsHidden())
	assert.False(t, c.IsFlagged())
	assert.Equal(t, 0, b.FlagCount())
}

func TestRevealFlaggedMineLoses(t *testing.T) {
	// An extra flag keeps the game open so the flagged mine can be revealed.
	// Flagging the safe cell first means the flagged set never equals the
	// mine set.
	b := mustLayout(t, "*.", "..")
	require.True(t, b.ToggleFlag(1, 0))
	require.True(t, b.ToggleFlag(0, 0))
	require.False(t, b.HasWon())

	b.Reveal(0, 0)
	assert.True(t, b.HasLost())
	assert.False(t, b.Cell(0, 0).IsFlagged())
	assert.Equal(t, 1, b.FlagCount())
}

func TestWinRequiresExactMineSet(t *testing.T) {
	newBoard := func(t *testing.T) *Board {
		b, err := NewWithMines(3, 3, []Point{{X: 0, Y: 0}, {X: 2, Y: 2}})
		require.NoError(t, err)
		return b
	}

	t.Run("both mines flagged", func(t *testing.T) {
		b := newBoard(t)
		b.ToggleFlag(0, 0)
		b.ToggleFlag(2, 2)
		assert.True(t, b.HasWon())
		assert.True(t, b.IsGameOver())
	})

	t.Run("one mine flagged", func(t *testing.T) {
		b := newBoard(t)
		b.ToggleFlag(0, 0)
		assert.False(t, b.HasWon())
		assert.False(t, b.IsGameOver())
	})

	t.Run("both mines plus an extra cell", func(t *testing.T) {
		b := newBoard(t)
		b.ToggleFlag(0, 0)
		b.ToggleFlag(1, 1)
		b.ToggleFlag(2, 2)
		assert.False(t, b.HasWon())
	})

	t.Run("all safe cells revealed without flags", func(t *testing.T) {
		b := newBoard(t)
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				if !b.Cell(x, y).IsMine() {
					b.Reveal(x, y)
				}
			}
		}
		assert.Equal(t, 2, b.HiddenCount())
		assert.False(t, b.HasWon())
	})
}

func TestWonBoardIsFrozen(t *testing.T) {
	b, err := NewWithMines(3, 3, []Point{{X: 0, Y: 0}, {X: 2, Y: 2}})
	require.NoError(t, err)
	b.ToggleFlag(0, 0)
	b.ToggleFlag(2, 2)
	require.True(t, b.HasWon())
	before := snapshot(b)

	b.Reveal(0, 0)
	b.Reveal(1, 1)
	b.ToggleFlag(2, 2)

	assert.Equal(t, before, snapshot(b))
	assert.False(t, b.HasLost())
}

func TestNewWithMinesRejectsOutOfBounds(t *testing.T) {
	_, err := NewWithMines(3, 3, []Point{{X: 3, Y: 0}})
	assert.ErrorIs(t, err, ErrMineOutOfBounds)
}

func TestNewWithMinesCollapsesDuplicates(t *testing.T) {
	b, err := NewWithMines(3, 3, []Point{{X: 1, Y: 1}, {X: 1, Y: 1}})
	require.NoError(t, err)
	assert.Equal(t, 1, b.MineCount())
	assert.Equal(t, 1, b.Cell(0, 0).Value())
}

func TestParseLayoutErrors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := ParseLayout(nil)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})

	t.Run("ragged", func(t *testing.T) {
		_, err := ParseLayout([]string{"...", ".."})
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})

	t.Run("unknown rune", func(t *testing.T) {
		_, err := ParseLayout([]string{".x."})
		assert.ErrorIs(t, err, ErrInvalidLayout)
	})
}

func TestMinesAreRowMajor(t *testing.T) {
	b := mustLayout(t,
		".*.",
		"*..",
		"..*",
	)

	got := b.Mines()
	require.Len(t, got, 3)
	assert.Equal(t, [2]int{1, 0}, [2]int{got[0].X(), got[0].Y()})
	assert.Equal(t, [2]int{0, 1}, [2]int{got[1].X(), got[1].Y()})
	assert.Equal(t, [2]int{2, 2}, [2]int{got[2].X(), got[2].Y()})
}
