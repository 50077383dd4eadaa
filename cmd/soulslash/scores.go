package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/soul-slash/internal/registry"
	"github.com/vovakirdan/soul-slash/internal/storage"
)

var flagRecent int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and run stats",
	Long: `Display the top 10 scores for a mode (default: soulslash), its
win/loss record and the longest survival.

Examples:
  soulslash scores
  soulslash scores soulslash_endless
  soulslash scores --recent 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 0, "Also list this many recent runs")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "soulslash"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'soulslash list' to see available modes.")
		os.Exit(1)
	}
	title := registry.Title(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'soulslash play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-12s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-12s  %s\n", "----", "-----", "------", "----")
	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-6d  %-12s  %s\n", i+1, entry.Score, player, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  |  Won: %d  |  Lost: %d  |  Longest: %s\n",
			stats.HighScore, stats.Wins, stats.Losses, stats.LongestSurvival.Round(time.Second))
	}

	if flagRecent > 0 {
		printRecentRuns(store, gameID)
	}
}

func printRecentRuns(store *storage.Store, gameID string) {
	runs, err := store.RecentRuns(gameID, "", flagRecent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	for _, r := range runs {
		id := r.RunID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Printf("  %-8s  %-5s  score %-3d  %8s  %-6s  %s\n",
			id,
			r.Outcome,
			r.Score,
			r.Duration.Round(time.Second),
			r.Difficulty,
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}
