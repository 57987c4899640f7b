package config

import (
	"github.com/spf13/viper"
)

// Config holds the shell and solver settings. Every field can be
// overridden from the environment with a PLYDECK_ prefix, e.g.
// PLYDECK_PRUNING=false.
type Config struct {
	// Pruning enables alpha-beta pruning in the game tree search.
	Pruning bool
	// Debug turns on debug logging.
	Debug bool
	// HistoryFile is where the shell stores readline history.
	HistoryFile string
	// DefaultClues is the clue count for generated sudoku puzzles.
	DefaultClues int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("pruning", true)
	v.SetDefault("debug", false)
	v.SetDefault("history_file", "/tmp/plydeck_readline.tmp")
	v.SetDefault("default_clues", 30)
}

// Load builds a Config from defaults and the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("plydeck")
	v.AutomaticEnv()
	setDefaults(v)

	return &Config{
		Pruning:      v.GetBool("pruning"),
		Debug:        v.GetBool("debug"),
		HistoryFile:  v.GetString("history_file"),
		DefaultClues: v.GetInt("default_clues"),
	}, nil
}

// DefaultConfig returns the built-in defaults, ignoring the environment.
// Used by tests.
func DefaultConfig() Config {
	v := viper.New()
	setDefaults(v)
	return Config{
		Pruning:      v.GetBool("pruning"),
		Debug:        v.GetBool("debug"),
		HistoryFile:  v.GetString("history_file"),
		DefaultClues: v.GetInt("default_clues"),
	}
}
