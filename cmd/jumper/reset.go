package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var flagResetRuns bool

var resetCmd = &cobra.Command{
	Use:   "reset-highscore",
	Short: "Forget the persisted high score",
	Long: `Remove the persisted high score. With --runs the history of recorded
runs is cleared as well.

Examples:
  jumper reset-highscore
  jumper reset-highscore --runs`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetRuns, "runs", false, "Also clear recorded runs")
}

func runReset(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if err := storage.NewHighScores(store, nil).Reset(); err != nil {
		return fmt.Errorf("resetting high score: %w", err)
	}
	fmt.Println("High score reset.")

	if flagResetRuns {
		if err := store.ClearRuns(); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Println("Runs cleared.")
	}
	return nil
}
