package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-dodger/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show top runs and stats",
	Long: `Display the best runs, or the most recent ones with --recent, followed
by aggregate statistics. --clear deletes all recorded runs and the best score.

Examples:
  dodger scores
  dodger scores --recent --limit 20
  dodger scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs and the best score")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.Clear(); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Println("All runs and the best score have been deleted.")
		return nil
	}

	title := "High Scores"
	var runs []storage.Run
	if flagScoresRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagScoresLimit)
	} else {
		runs, err = store.TopRuns(flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	// Display runs
	fmt.Printf("%s - Neon Dodger\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dodger play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %s\n", "Rank", "Score", "Level", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %s\n", "----", "-----", "-----", "----", "----")

	for i, r := range runs {
		level := r.Difficulty
		if level == "" {
			level = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-8s  %-8s  %s\n",
			i+1, r.Score, level, storage.FormatDuration(r.Duration), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	// Show stats
	fmt.Println()
	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	best, err := store.Best(storage.DefaultBestKey)
	if err != nil {
		return fmt.Errorf("retrieving best score: %w", err)
	}
	fmt.Printf("Best: %d   Runs: %d   Average: %.1f   Longest: %s\n",
		best, stats.Runs, stats.AvgScore, storage.FormatDuration(stats.LongestRun))
	return nil
}
