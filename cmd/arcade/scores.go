package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/merge-arcade/internal/registry"
	"github.com/vovakirdan/merge-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show the best runs for a game mode",
	Long: `Display the best runs for a game mode, with totals over every run.

Examples:
  arcade scores fruitmerge
  arcade scores fruitmerge_classic --limit 25
  arcade scores fruitmerge --all
  arcade scores fruitmerge --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded run")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run for the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]
	info, ok := findGame(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all runs for %s.\n", info.Title)
		return
	}

	var runs []storage.RunEntry
	if flagScoresAll {
		runs, err = store.AllRuns(gameID)
	} else {
		runs, err = store.TopRuns(gameID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best runs - %s\n\n", info.Title)
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	const row = "  %-4v  %-8v  %-6v  %-6v  %-11v  %v\n"
	fmt.Printf(row, "#", "Score", "Drops", "Merges", "Best fruit", "Played")
	fmt.Printf(row, "-", "-----", "-----", "------", "----------", "------")
	for i, run := range runs {
		fmt.Printf(row, i+1, run.Score, run.Rounds, run.Merges, run.BestTier,
			run.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("\n%d runs, best %d, average %.1f, %d merges in total\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalMerges)
	}
}

func findGame(id string) (registry.GameInfo, bool) {
	for _, g := range registry.List() {
		if g.ID == id {
			return g, true
		}
	}
	return registry.GameInfo{}, false
}
