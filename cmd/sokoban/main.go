// sokoban is a terminal Sokoban solver and player.
//
// Usage:
//
//	sokoban solve <file>     - Solve a level and print the move sequence
//	sokoban play <file>      - Play a level interactively (or watch with --auto)
//	sokoban bench <dir>      - Benchmark the solver over a directory of levels
//	sokoban levels [dir]     - List level files in a directory
//	sokoban solves <level>   - Show recorded solutions for a level
//	sokoban serve            - Start SSH server for remote play
//
// Global flags:
//
//	--config <path> - Path to a config YAML (default: ~/.sokoban/config.yaml)
//	--db <path>     - Set database path (default: ~/.sokoban/solves.db)
//	--verbose       - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "sokoban",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Sokoban - solve and play crate-pushing puzzles in your terminal",
	Long: `Sokoban is a terminal puzzle platform around an automatic solver:
give it a level file and it finds a move sequence that pushes every
crate onto a target, or tells you no such sequence exists.

Available commands:
  solve    - Solve a level and print the wasd move string
  play     - Play a level yourself, or watch the solver's solution
  bench    - Time the solver over a directory of levels
  levels   - List level files in a directory
  solves   - View recorded solutions
  serve    - Start SSH server for remote play

Examples:
  sokoban solve levels/corridor.txt
  sokoban play levels/corridor.txt --auto
  sokoban bench levels --iterations 10
  sokoban solves corridor
  sokoban serve --ssh :23235`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to solves database (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(solvesCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the effective configuration, applying the global flag
// overrides on top.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("could not load config, using defaults", "error", err)
		cfg = config.Default()
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg
}
