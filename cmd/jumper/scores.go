package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs, ranked by score and then height,
followed by totals over every run.

Examples:
  jumper scores
  jumper scores --limit 20`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println("Best runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'jumper play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-7s  %-7s  %s\n", "Rank", "Score", "Height", "Outcome", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %-7s  %s\n", "----", "-----", "------", "-------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-7.1f  %-7s  %s\n",
			i+1, r.Score, r.Height, r.Cause, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats()
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Reached the UFO: %d\n", stats.Runs, stats.Goals)
	fmt.Printf("Best: %d  Average: %.1f  Highest: %.1f\n", stats.BestScore, stats.AvgScore, stats.BestHeight)

	highScore := storage.NewHighScores(store, nil).HighScore()
	fmt.Printf("HighScore: %d\n", highScore)
}
