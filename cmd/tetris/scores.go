package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best scores recorded in the database.

Examples:
  tetris scores
  tetris scores --limit 20
  tetris scores --recent
  tetris scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent games instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	if flagLimit <= 0 {
		return fmt.Errorf("--limit must be positive, got %d", flagLimit)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Println("All scores cleared.")
		return nil
	}

	var (
		scores []storage.ScoreEntry
		title  = "High Scores"
	)
	if flagRecent {
		title = "Recent Games"
		scores, err = store.RecentScores(flagLimit)
	} else {
		scores, err = store.TopScores(flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println(title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetris play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-12s  %s\n", "Rank", "Score", "Level", "Lines", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-12s  %s\n", "----", "-----", "-----", "-----", "------", "----")

	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-5d  %-5d  %-12s  %s\n",
			i+1, e.Score, e.Level, e.Lines, player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	st, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not compute stats: %v\n", err)
		return nil
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Average: %.0f  Lines: %d\n",
		st.HighScore, st.Games, st.AvgScore, st.TotalLines)
	return nil
}
