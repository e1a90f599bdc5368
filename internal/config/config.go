// Package config provides YAML-based configuration loading for the
// sokoban platform.
package config

// Config is the root configuration for the sokoban CLI and TUI.
type Config struct {
	Playback PlaybackConfig `yaml:"playback"`
	Bench    BenchConfig    `yaml:"bench"`
	Storage  StorageConfig  `yaml:"storage"`
	Levels   LevelsConfig   `yaml:"levels"`
}

// PlaybackConfig controls automatic solution playback in the TUI.
type PlaybackConfig struct {
	StepDelayMS int `yaml:"step_delay_ms"` // Delay between animated moves
}

// BenchConfig controls the benchmark harness.
type BenchConfig struct {
	Iterations int `yaml:"iterations"` // Solves per level
}

// StorageConfig controls the solve-record database.
type StorageConfig struct {
	Path string `yaml:"path"` // SQLite database path
}

// LevelsConfig controls where level files are searched.
type LevelsConfig struct {
	Dir string `yaml:"dir"` // Default level directory
}
