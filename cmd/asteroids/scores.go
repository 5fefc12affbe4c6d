package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game variant.

Examples:
  asteroids scores asteroids
  asteroids scores asteroids_classic --limit 20
  asteroids scores asteroids --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'asteroids list' to see available games.")
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Cleared all scores for %s.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'asteroids play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %-4s  %s\n", "Rank", "Player", "Score", "Wave", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-4s  %s\n", "----", "------", "-----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-8d  %-4d  %s\n", i+1, entry.Player, entry.Score, entry.Wave, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  |  Games: %d  |  Average: %.0f  |  Best wave: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestWave)
	}
}
