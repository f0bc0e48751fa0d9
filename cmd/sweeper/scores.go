package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/registry"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [preset]",
	Short: "Show high scores for a preset",
	Long: `Display the top 10 winning scores and overall stats for a preset.
The preset defaults to normal.

Examples:
  sweeper scores
  sweeper scores hard`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	preset, err := config.ParsePreset(name)
	info, ok := registry.Info(string(preset))
	if err != nil || !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown preset %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'sweeper list' to see available boards.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(info.ID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sweeper play %s' to set the first high score!\n", info.ID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-12s  %-16s  %s\n", "Rank", "Score", "Time", "Player", "Date", "Game")
	fmt.Printf("  %-4s  %-8s  %-6s  %-12s  %-16s  %s\n", "----", "-----", "----", "------", "----", "----")

	for i, r := range scores {
		fmt.Printf("  %-4d  %-8d  %-6s  %-12s  %-16s  %s\n",
			i+1, r.Score, formatSeconds(r.Duration),
			r.Player, r.CreatedAt.Format("2006-01-02 15:04"), r.GameUUID)
	}

	if stats, err := store.GetGameStats(info.ID); err == nil && stats.Played > 0 {
		fmt.Println()
		fmt.Printf("Played: %d  Won: %d  Lost: %d  Win rate: %.0f%%\n",
			stats.Played, stats.Wins, stats.Losses, stats.WinRate()*100)
		fmt.Printf("Best: %d  Fastest win: %ds\n", stats.HighScore, stats.FastestWin)
	}
}

func formatSeconds(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
