// Package config collects the game's settings from VOICEJUMPER_* environment
// variables and command-line flags. Flags win over the environment.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/milk9111/voicejumper/storage"
)

// Config holds the game's startup configuration.
type Config struct {
	Debug bool `env:"DEBUG"`
	// Levels overrides the embedded level table with a YAML file.
	Levels string `env:"LEVELS"`
	// Curve is a tengo script that replaces the built-in impulse curve.
	Curve     string       `env:"CURVE"`
	Store     storage.Kind `env:"STORE"      envDefault:"file"`
	StorePath string       `env:"STORE_PATH"`
	Mute      bool         `env:"MUTE"`
	Reset     bool         `env:"RESET"`
	Scale     float64      `env:"SCALE"      envDefault:"1"`
}

const envPrefix = "VOICEJUMPER_"

// Parse reads the environment, then applies flags from args on top.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}

	store := string(cfg.Store)
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging and level hot reload")
	fs.StringVar(&cfg.Levels, "levels", cfg.Levels, "level table YAML file (defaults to the embedded table)")
	fs.StringVar(&cfg.Curve, "curve", cfg.Curve, "tengo script defining impulse(loudness, threshold)")
	fs.StringVar(&store, "store", store, "saved state backend: file, sqlite or memory")
	fs.StringVar(&cfg.StorePath, "store-path", cfg.StorePath, "saved state location (defaults to the user config dir)")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "run without a microphone")
	fs.BoolVar(&cfg.Reset, "reset", cfg.Reset, "clear the saved state before starting")
	fs.Float64Var(&cfg.Scale, "scale", cfg.Scale, "window scale factor")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Store = storage.Kind(store)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Store {
	case storage.KindFile, storage.KindSQLite, storage.KindMemory:
	default:
		return fmt.Errorf("config: unknown store %q", c.Store)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("config: scale must be positive, got %v", c.Scale)
	}
	return nil
}

// WindowSize is the window size in device-independent pixels for a logical
// canvas of width x height.
func (c Config) WindowSize(width, height int) (int, int) {
	return int(float64(width) * c.Scale), int(float64(height) * c.Scale)
}
