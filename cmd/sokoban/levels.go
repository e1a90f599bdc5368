package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [dir]",
	Short: "List level files in a directory",
	Long: `Shows the parsable level files found under the given directory
(default: the configured levels directory), with their dimensions and
crate counts.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	dir := cfg.Levels.Dir
	if len(args) > 0 {
		dir = args[0]
	}

	files, err := level.NewLoader(dir).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(files) == 0 {
		fmt.Printf("No levels found in %s.\n", dir)
		return
	}

	fmt.Printf("Levels in %s:\n\n", dir)

	// Calculate column width
	maxID := 0
	for _, f := range files {
		if len(f.ID) > maxID {
			maxID = len(f.ID)
		}
	}

	for _, f := range files {
		h := len(f.Parsed.Rows)
		w := len(f.Parsed.Rows[0])
		fmt.Printf("  %-*s  %2dx%-2d  %d crates\n", maxID, f.ID, h, w, len(f.Parsed.Boxes))
	}
}
