// Package sweeper adapts the mines engine to the platform: it owns one
// board per game, moves a cursor, turns pointer clicks into grid positions,
// times the run, scores wins and draws everything into a core.Screen.
package sweeper

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/mines"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
)

// Game implements registry.Game for one difficulty preset.
type Game struct {
	id       string
	preset   config.DifficultyPreset
	fixedCfg *config.SweeperConfig // Set by NewWithConfig, skips file loading
	cfg      config.SweeperConfig
	palette  palette

	rng      *rand.Rand
	tick     uint64
	tickRate int

	board    *mines.Board
	boardErr error
	cells    []*AnimatedCell // Row-major, mirrors the board

	cursorX int
	cursorY int

	started   bool
	startTick uint64
	endTick   uint64
	score     int

	screenW  int
	screenH  int
	layout   layout
	paused   bool
	tooSmall bool
}

// Package-level variables for config
var (
	configPath string
)

// SetConfigPath sets a custom config file path for games created afterwards.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a game for the given preset. The board is built on Reset.
func New(preset config.DifficultyPreset) *Game {
	return &Game{
		id:     string(preset),
		preset: preset,
	}
}

// NewWithConfig creates a game that uses cfg as is instead of loading the
// config file. The id is used for result storage.
func NewWithConfig(id string, cfg config.SweeperConfig) *Game {
	return &Game{
		id:       id,
		preset:   config.DifficultyCustom,
		fixedCfg: &cfg,
	}
}

func init() {
	for i, p := range config.Presets() {
		registry.Register(registry.GameInfo{
			ID:          string(p),
			Title:       presetTitle(p),
			Description: presetDescription(p),
			Order:       i,
		}, func() registry.Game {
			return New(p)
		})
	}
}

// presetTitle returns the menu title of a preset.
func presetTitle(p config.DifficultyPreset) string {
	switch p {
	case config.DifficultyEasy:
		return "Easy"
	case config.DifficultyNormal:
		return "Normal"
	case config.DifficultyHard:
		return "Hard"
	default:
		return "Custom"
	}
}

// presetDescription summarises a preset's board.
func presetDescription(p config.DifficultyPreset) string {
	b, ok := config.PresetBoard(p)
	if !ok {
		return "board from sweeper.yaml"
	}
	return fmt.Sprintf("%dx%d, %.0f%% mines", b.Cols, b.Rows, b.MineProbability*100)
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Minesweeper - " + presetTitle(g.preset)
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Reveal | F: Flag | Mouse L/R | P: Pause | Q: Quit"
}

// Reset builds a fresh board. A new game never reuses the old board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.started = false
	g.startTick = 0
	g.endTick = 0
	g.score = 0
	g.paused = false

	g.cfg = g.loadConfig()
	g.palette = newPalette(g.cfg.Display)

	g.board, g.boardErr = g.buildBoard()
	g.cells = nil
	if g.board != nil {
		g.cells = make([]*AnimatedCell, 0, g.board.Cols()*g.board.Rows())
		for y := 0; y < g.board.Rows(); y++ {
			for x := 0; x < g.board.Cols(); x++ {
				g.cells = append(g.cells, NewAnimatedCell(g.board.Cell(x, y), g.cfg.Display.RevealAnimationTicks))
			}
		}
		g.cursorX = g.board.Cols() / 2
		g.cursorY = g.board.Rows() / 2

		// Nothing to find: uncover the field and finish right away.
		if g.board.MineCount() == 0 {
			g.reveal(0, 0)
		}
	}

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// loadConfig resolves the configuration for this game.
func (g *Game) loadConfig() config.SweeperConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}

	// A broken file still yields defaults; the preset fixes the board.
	cfg, _ := config.LoadSweeper(configPath) //nolint:errcheck // Defaults are returned on error
	config.ApplySweeperPreset(&cfg, g.preset)
	return cfg
}

// buildBoard creates the board from a fixed layout or random placement.
func (g *Game) buildBoard() (*mines.Board, error) {
	b := g.cfg.Board
	if len(b.Layout) > 0 {
		return mines.ParseLayout(b.Layout)
	}
	return mines.New(b.Cols, b.Rows, b.MineProbability, g.rng)
}

// Resize updates the screen size and recomputes the board placement.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.board == nil {
		g.tooSmall = false
		return
	}
	g.layout = computeLayout(g.board.Cols(), g.board.Rows(), width, height)
	g.tooSmall = !g.layout.fits
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.board == nil {
		return core.StepResult{State: g.State()}
	}

	over := g.board.IsGameOver()

	// Handle pause
	if in.Has(core.ActionPause) && !over && !g.tooSmall {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		g.holdClock()
		return core.StepResult{State: g.State()}
	}

	for _, c := range g.cells {
		c.Advance(1)
	}

	if over {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if p := in.Pointer; p != nil {
		if x, y, ok := g.layout.cellAt(p.X, p.Y); ok {
			g.cursorX, g.cursorY = x, y
			switch p.Button {
			case core.PointerPrimary:
				g.reveal(x, y)
			case core.PointerSecondary:
				g.flag(x, y)
			}
		}
	}

	switch {
	case in.Has(core.ActionReveal):
		g.reveal(g.cursorX, g.cursorY)
	case in.Has(core.ActionFlag):
		g.flag(g.cursorX, g.cursorY)
	}

	return core.StepResult{State: g.State()}
}

// moveCursor applies directional actions, clamped to the grid.
func (g *Game) moveCursor(in core.InputFrame) {
	dx, dy := 0, 0
	if in.Has(core.ActionLeft) {
		dx--
	}
	if in.Has(core.ActionRight) {
		dx++
	}
	if in.Has(core.ActionUp) {
		dy--
	}
	if in.Has(core.ActionDown) {
		dy++
	}
	g.cursorX = core.Clamp(g.cursorX+dx, 0, g.board.Cols()-1)
	g.cursorY = core.Clamp(g.cursorY+dy, 0, g.board.Rows()-1)
}

// reveal uncovers a cell and starts the clock on the first move.
func (g *Game) reveal(x, y int) {
	g.startClock()
	g.board.Reveal(x, y)
	g.checkEnd()
}

// flag toggles a flag and starts the clock on the first move.
func (g *Game) flag(x, y int) {
	g.startClock()
	g.board.ToggleFlag(x, y)
	g.checkEnd()
}

func (g *Game) startClock() {
	if !g.started {
		g.started = true
		g.startTick = g.tick
	}
}

// holdClock keeps the elapsed time constant while the game is suspended.
func (g *Game) holdClock() {
	if g.started && g.endTick == 0 {
		g.startTick++
	}
}

// checkEnd stops the clock and scores the game once it is over.
func (g *Game) checkEnd() {
	if g.endTick != 0 || !g.board.IsGameOver() {
		return
	}
	g.endTick = g.tick
	if g.endTick == 0 {
		g.endTick = 1 // Finished during Reset, before the first tick
	}
	if g.board.HasWon() {
		g.score = g.cfg.Scoring.Score(g.board.MineCount(), g.seconds())
	}
}

// seconds returns the elapsed play time in whole seconds.
func (g *Game) seconds() int {
	if !g.started {
		return 0
	}
	end := g.tick
	if g.endTick != 0 {
		end = g.endTick
	}
	if end < g.startTick {
		return 0
	}
	return int((end - g.startTick) / uint64(g.tickRate))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{Paused: true}
	}
	return core.GameState{
		Score:    g.score,
		GameOver: g.board.IsGameOver(),
		Won:      g.board.HasWon(),
		Paused:   g.paused || g.tooSmall,
		Seconds:  g.seconds(),
	}
}

// Board exposes the engine board for inspection.
func (g *Game) Board() *mines.Board {
	return g.board
}

// BoardSize reports the grid and mine count of the current board.
func (g *Game) BoardSize() (cols, rows, mineCount int) {
	if g.board == nil {
		return 0, 0, 0
	}
	return g.board.Cols(), g.board.Rows(), g.board.MineCount()
}

// Err returns the error that prevented the board from being built, if any.
func (g *Game) Err() error {
	return g.boardErr
}

var _ registry.Game = (*Game)(nil)
