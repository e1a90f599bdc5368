package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var flagLimit int

var solvesCmd = &cobra.Command{
	Use:   "solves [level]",
	Short: "Show recorded solutions",
	Long: `Show solve records from the database. With a level ID, lists the
shortest recorded solutions for that level; without one, lists the most
recent solves across all levels.

Examples:
  sokoban solves
  sokoban solves corridor --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSolves,
}

func init() {
	solvesCmd.Flags().IntVar(&flagLimit, "limit", 10, "Maximum records to show")
}

func runSolves(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var records []storage.SolveRecord
	if len(args) > 0 {
		records, err = store.BestSolves(args[0], flagLimit)
	} else {
		records, err = store.RecentSolves(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Println("No solves recorded yet.")
		return
	}

	for _, r := range records {
		fmt.Printf("  %-16s  %4d moves  %6dms  %s\n",
			r.LevelID, r.MoveCount, r.DurationMS, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
