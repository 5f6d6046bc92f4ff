package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyfall/internal/highscore"
	"github.com/vovakirdan/skyfall/internal/logging"
	"github.com/vovakirdan/skyfall/internal/platform/tui"
	"github.com/vovakirdan/skyfall/internal/storage"
)

var (
	flagRecent      bool
	flagInteractive bool
	flagClearRuns   bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and run history",
	Long: `Display the top-5 high score table followed by the best (or most
recent) runs and lifetime statistics.

Examples:
  skyfall scores
  skyfall scores --recent --limit 20
  skyfall scores --interactive
  skyfall scores --clear-runs`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List most recent runs instead of best runs")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a full-screen view")
	scoresCmd.Flags().BoolVar(&flagClearRuns, "clear-runs", false, "Delete the run history (the high score table is kept)")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list")
}

func runScores(_ *cobra.Command, _ []string) error {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, "skyfall", level)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagClearRuns {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	table := highscore.New(store, logger)
	table.Load()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(table, store, width, height)
	}

	printHighScores(table.Entries())

	var runs []storage.Run
	title := "Best Runs"
	if flagRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}
	printRuns(title, runs)

	if stats, err := store.GetStats(); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Average: %.1f  Total: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalScore)
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printHighScores(entries []highscore.Entry) {
	fmt.Println("High Scores")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skyfall play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %s\n", "Rank", "Initials", "Score")
	fmt.Printf("  %-4s  %-8s  %s\n", "----", "--------", "-----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-8s  %d\n", i+1, e.Initials, e.Score)
	}
}

func printRuns(title string, runs []storage.Run) {
	if len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println(title)
	fmt.Println()
	fmt.Printf("  %-4s  %-8s  %-9s  %-8s  %s\n", "#", "Initials", "Character", "Score", "Date")
	fmt.Printf("  %-4s  %-8s  %-9s  %-8s  %s\n", "-", "--------", "---------", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8s  %-9s  %-8d  %s\n",
			i+1, r.Initials, r.Sprite, r.Score, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
