// sweeper is Minesweeper for the terminal, playable locally or over SSH.
//
// Usage:
//
//	sweeper list              - List board presets
//	sweeper play [preset]     - Play a board
//	sweeper menu              - Start menu to pick boards interactively
//	sweeper serve             - Start SSH server for remote play
//	sweeper scores [preset]   - Show high scores for a preset
//	sweeper result <game-id>  - Show one finished game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.sweeper/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-minesweeper/internal/core"

	// Import the game to register its presets
	_ "github.com/vovakirdan/tui-minesweeper/internal/games/sweeper"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "Minesweeper in your terminal",
	Long: `Sweeper is Minesweeper for the terminal. Play with the keyboard or
the mouse, locally or over SSH.

Available commands:
  list     - Show all board presets
  play     - Play a board directly
  menu     - Interactive preset picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  result   - Show one finished game

Examples:
  sweeper list
  sweeper play hard
  sweeper menu
  sweeper serve --ssh :2222
  sweeper scores normal`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sweeper/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resultCmd)
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
