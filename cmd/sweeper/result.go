package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

var resultCmd = &cobra.Command{
	Use:   "result <game-id>",
	Short: "Show one finished game",
	Long: `Display a single stored game by the ID listed in 'sweeper scores'.

Examples:
  sweeper result 3f2b8c1e-5d7a-4c1b-9e0f-2a6d8b4c7e91`,
	Args: cobra.ExactArgs(1),
	Run:  runResult,
}

func runResult(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	r, err := store.ResultByUUID(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving result: %v\n", err)
		return
	}
	if r == nil {
		fmt.Fprintf(os.Stderr, "No game with ID %q\n", args[0])
		return
	}

	outcome := "Lost"
	if r.Won {
		outcome = "Won"
	}

	fmt.Printf("Game %s\n", r.GameUUID)
	fmt.Println()
	fmt.Printf("  Board:   %s (%dx%d, %d mines)\n", r.GameID, r.Cols, r.Rows, r.Mines)
	fmt.Printf("  Player:  %s\n", r.Player)
	fmt.Printf("  Result:  %s\n", outcome)
	fmt.Printf("  Score:   %d\n", r.Score)
	fmt.Printf("  Time:    %s\n", formatSeconds(r.Duration))
	fmt.Printf("  Played:  %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
}
