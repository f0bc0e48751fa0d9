package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/games/sweeper"
	"github.com/vovakirdan/tui-minesweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

var (
	flagConfig      string
	flagCols        int
	flagRows        int
	flagProbability float64
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play a board",
	Long: `Start playing a board. The preset defaults to normal.

Controls:
  Arrows/WASD/HJKL - Move cursor
  Space/Enter      - Reveal cell
  F                - Flag or unflag cell
  Left click       - Reveal cell
  Right click      - Flag or unflag cell
  P                - Pause
  R                - New board (after game over)
  B/Esc            - Leave (after game over or while paused)
  Q/Ctrl+C         - Quit

Presets:
  easy   - 9x9, about 12% mines
  normal - 16x16, about 15% mines
  hard   - 30x16, about 20% mines
  custom - Board from sweeper.yaml

Size flags build a one-off board on top of the chosen preset. Results of
such boards are stored under the custom preset.

Examples:
  sweeper play
  sweeper play hard
  sweeper play --cols 20 --rows 12 --probability 0.2
  sweeper play custom --config ./my-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom sweeper config YAML")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Board width in cells (overrides preset)")
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Board height in cells (overrides preset)")
	playCmd.Flags().Float64Var(&flagProbability, "probability", 0, "Per-cell mine probability (overrides preset)")
}

func runPlay(cmd *cobra.Command, args []string) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	preset, err := config.ParsePreset(name)
	if err != nil || !registry.Exists(string(preset)) {
		fmt.Fprintf(os.Stderr, "Error: unknown preset %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'sweeper list' to see available boards.")
		os.Exit(1)
	}

	cfg := runtimeConfig()

	sweeper.SetConfigPath(flagConfig)

	game, err := createGame(cmd, preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// createGame builds the game for preset, applying any size flags the user
// passed on top of it.
func createGame(cmd *cobra.Command, preset config.DifficultyPreset) (registry.Game, error) {
	flags := cmd.Flags()
	if !flags.Changed("cols") && !flags.Changed("rows") && !flags.Changed("probability") {
		return registry.Create(string(preset))
	}

	sc, err := config.LoadSweeper(flagConfig)
	if err != nil {
		return nil, err
	}
	config.ApplySweeperPreset(&sc, preset)

	sc.Board.Layout = nil
	if flags.Changed("cols") {
		sc.Board.Cols = flagCols
	}
	if flags.Changed("rows") {
		sc.Board.Rows = flagRows
	}
	if flags.Changed("probability") {
		sc.Board.MineProbability = flagProbability
	}

	if sc.Board.Cols <= 0 || sc.Board.Rows <= 0 {
		return nil, fmt.Errorf("board must be at least 1x1, got %dx%d", sc.Board.Cols, sc.Board.Rows)
	}
	if sc.Board.MineProbability < 0 || sc.Board.MineProbability > 1 {
		return nil, fmt.Errorf("probability must be within [0, 1], got %g", sc.Board.MineProbability)
	}

	return sweeper.NewWithConfig(string(config.DifficultyCustom), sc), nil
}
