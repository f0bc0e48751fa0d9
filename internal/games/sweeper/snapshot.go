package sweeper

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StateNoBoard     GameStateType = "no_board"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick    uint64
	Preset  string
	Cols    int
	Rows    int
	Mines   int
	Flags   int
	Hidden  int
	CursorX int
	CursorY int
	Board   string // mines.Board debug dump
	Score   int
	Seconds int
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.board == nil {
		return Snapshot{Tick: g.tick, Preset: string(g.preset), State: StateNoBoard}
	}

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.board.HasLost():
		state = StateLost
	case g.board.HasWon():
		state = StateWon
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:    g.tick,
		Preset:  string(g.preset),
		Cols:    g.board.Cols(),
		Rows:    g.board.Rows(),
		Mines:   g.board.MineCount(),
		Flags:   g.board.FlagCount(),
		Hidden:  g.board.HiddenCount(),
		CursorX: g.cursorX,
		CursorY: g.cursorY,
		Board:   g.board.String(),
		Score:   g.score,
		Seconds: g.seconds(),
		State:   state,
	}
}
