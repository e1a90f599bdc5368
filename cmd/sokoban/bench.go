package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/level"
	"github.com/vovakirdan/tui-sokoban/internal/solver"
)

const maxBenchIterations = 100000

var flagIterations int

var benchCmd = &cobra.Command{
	Use:   "bench <dir>",
	Short: "Benchmark the solver over a directory of levels",
	Long: `Solve every level in the given directory repeatedly and report the
average and total solve time per level. Every level in the directory
must be solvable; an unsolvable one aborts the run.

Examples:
  sokoban bench levels
  sokoban bench levels --iterations 10`,
	Args: cobra.ExactArgs(1),
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagIterations, "iterations", 0, "Solves per level (default from config)")
}

func runBench(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	iterations := cfg.Bench.Iterations
	if flagIterations > 0 {
		iterations = flagIterations
	}
	if iterations <= 0 || iterations > maxBenchIterations {
		fmt.Fprintf(os.Stderr, "Invalid amount of iterations given: %d\n", iterations)
		os.Exit(1)
	}

	files, err := level.NewLoader(args[0]).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "No levels found in %s\n", args[0])
		os.Exit(1)
	}

	logger.Info("benchmark starting", "levels", len(files), "iterations", iterations)

	totals := make([]time.Duration, len(files))
	var total time.Duration

	for i := 0; i < iterations; i++ {
		for j, file := range files {
			lvl, state := file.Parsed.NewState()
			start := time.Now()
			moves := solver.New(lvl).Solve(state)
			took := time.Since(start)

			if len(moves) == 0 {
				fmt.Fprintf(os.Stderr, "Unsolvable level encountered: %s\n", file.ID)
				os.Exit(1)
			}
			totals[j] += took
			total += took
		}
	}

	fmt.Println("Level\t\tAvg.\t\tTotal")
	for j, file := range files {
		avg := totals[j] / time.Duration(iterations)
		fmt.Printf("%s\t\t%.2fms\t\t%.2fms\n", file.ID, millis(avg), millis(totals[j]))
	}
	fmt.Println()
	fmt.Printf("Avg. iteration time %.2fms\n", millis(total/time.Duration(iterations)))
	fmt.Printf("Total               %.2fms\n", millis(total))
}

func millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
