package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/game"
	"github.com/vovakirdan/tui-sokoban/internal/level"
	"github.com/vovakirdan/tui-sokoban/internal/solver"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var flagNoStore bool

var solveCmd = &cobra.Command{
	Use:   "solve <file>",
	Short: "Solve a level and print the move sequence",
	Long: `Solve the given level file and print the solution as a wasd string
(w = up, s = down, a = left, d = right).

Successful solves are recorded in the solves database unless --no-store
is given. An unsolvable level exits with status 1.

Examples:
  sokoban solve levels/corridor.txt
  sokoban solve levels/corridor.txt --no-store`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&flagNoStore, "no-store", false, "Do not record the solution")
}

func runSolve(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	file, err := level.LoadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lvl, state := file.Parsed.NewState()
	logger.Debug("level loaded", "id", file.ID, "crates", len(file.Parsed.Boxes))

	start := time.Now()
	moves := solver.New(lvl).Solve(state)
	took := time.Since(start)

	if len(moves) == 0 {
		logger.Info("no solution found", "level", file.ID, "took", took)
		fmt.Fprintln(os.Stderr, "No solution found.")
		os.Exit(1)
	}

	solution := game.StringOfMoves(moves)
	logger.Info("solved", "level", file.ID, "moves", len(moves), "took", took)
	fmt.Println(solution)

	if !flagNoStore {
		store, storeErr := storage.Open(cfg.Storage.Path)
		if storeErr != nil {
			logger.Warn("could not open solves database", "error", storeErr)
			return
		}
		defer store.Close()
		if _, saveErr := store.SaveSolve(file.ID, solution, took); saveErr != nil {
			logger.Warn("could not record solve", "error", saveErr)
		}
	}
}
