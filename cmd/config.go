package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math/rand"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"

	"github.com/luca-patrignani/blackjack/domain/deck"
)

const (
	envName     = "BLACKJACK_NAME"
	envSeed     = "BLACKJACK_SEED"
	envLogLevel = "BLACKJACK_LOG_LEVEL"
)

type config struct {
	name     string
	seed     int64
	logLevel slog.Level
}

// loadDotEnv loads path into the process environment. A missing file is not
// an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// loadConfig reads flags from args, falling back to the environment for
// anything not given on the command line.
func loadConfig(args []string, getenv func(string) string) (config, error) {
	cfg := config{name: getenv(envName), logLevel: slog.LevelInfo}

	if v := getenv(envSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return config{}, fmt.Errorf("%s: %w", envSeed, err)
		}
		cfg.seed = seed
	}
	if v := getenv(envLogLevel); v != "" {
		if err := cfg.logLevel.UnmarshalText([]byte(v)); err != nil {
			return config{}, fmt.Errorf("%s: %w", envLogLevel, err)
		}
	}

	fset := flag.NewFlagSet("blackjack", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	fset.StringVar(&cfg.name, "name", cfg.name, "player name (prompted for when empty)")
	fset.Int64Var(&cfg.seed, "seed", cfg.seed, "shuffle seed; 0 uses a cryptographic source")
	fset.TextVar(&cfg.logLevel, "log-level", cfg.logLevel, "debug, info, warn or error")
	if err := fset.Parse(args); err != nil {
		return config{}, err
	}
	if fset.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", fset.Args())
	}
	return cfg, nil
}

// source returns a seeded generator when a seed was configured, so that a
// session can be replayed card for card.
func (c config) source() deck.Source {
	if c.seed != 0 {
		return rand.New(rand.NewSource(c.seed))
	}
	return deck.NewCryptoSource()
}

func (c config) ptermLevel() pterm.LogLevel {
	switch {
	case c.logLevel <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case c.logLevel <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case c.logLevel <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
