package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/game"
	"github.com/vovakirdan/tui-sokoban/internal/level"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/solver"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var (
	flagAuto  bool
	flagDelay int
)

var playCmd = &cobra.Command{
	Use:   "play <file>",
	Short: "Play a level",
	Long: `Play the given level in the terminal.

Controls:
  WASD/Arrows - Move the player
  R           - Restart
  Q/Ctrl+C    - Quit

With --auto the solver runs first and the solution is played back
automatically, one move per step delay.

Examples:
  sokoban play levels/corridor.txt
  sokoban play levels/corridor.txt --auto
  sokoban play levels/corridor.txt --auto --delay 100`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagAuto, "auto", false, "Solve the level and watch the playback")
	playCmd.Flags().IntVar(&flagDelay, "delay", 0, "Playback delay in milliseconds (overrides config)")
}

func runPlay(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	file, err := level.LoadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Warn when the board does not fit the terminal; lines will wrap.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		boardH := len(file.Parsed.Rows)
		boardW := len(file.Parsed.Rows[0]) * 2
		if boardW > w || boardH+4 > h {
			logger.Warn("terminal smaller than the board", "need", fmt.Sprintf("%dx%d", boardW, boardH+4), "have", fmt.Sprintf("%dx%d", w, h))
		}
	}

	var solution []game.Move
	if flagAuto {
		lvl, state := file.Parsed.NewState()
		start := time.Now()
		solution = solver.New(lvl).Solve(state)
		if len(solution) == 0 {
			fmt.Fprintln(os.Stderr, "No solution found; nothing to play back.")
			os.Exit(1)
		}
		logger.Info("solved", "level", file.ID, "moves", len(solution), "took", time.Since(start))
	}

	delay := time.Duration(cfg.Playback.StepDelayMS) * time.Millisecond
	if flagDelay > 0 {
		delay = time.Duration(flagDelay) * time.Millisecond
	}

	store, storeErr := storage.Open(cfg.Storage.Path)
	if storeErr != nil {
		logger.Warn("could not open solves database", "error", storeErr)
		store = nil
	}

	runErr := tui.Run(file.ID, file.Parsed, solution, delay, store)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
