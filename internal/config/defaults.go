package config

import (
	_ "embed"
)

//go:embed defaults/sokoban.yaml
var defaultYAML []byte

// Default returns the built-in configuration used when no config file is
// found anywhere in the search path.
func Default() Config {
	return Config{
		Playback: PlaybackConfig{
			StepDelayMS: 250,
		},
		Bench: BenchConfig{
			Iterations: 100,
		},
		Storage: StorageConfig{
			Path: "~/.sokoban/solves.db",
		},
		Levels: LevelsConfig{
			Dir: "levels",
		},
	}
}
