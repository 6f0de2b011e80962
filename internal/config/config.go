package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Environment fallbacks for flags left unset on the command line.
const (
	EnvSeed     = "TETRIGO_SEED"
	EnvLogFile  = "TETRIGO_LOG_FILE"
	EnvLogLevel = "TETRIGO_LOG_LEVEL"
)

type Config struct {
	// Seed for the piece generator. Zero seeds from the clock.
	Seed     int64
	LogFile  string
	LogLevel string
	Name     string
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Name:     "Player",
	}
}

// Load parses args (without the program name) and fills anything not given
// there from the environment.
func Load(name string, args []string) (Config, error) {
	return load(name, args, os.Getenv, os.Stderr)
}

// Report prints a Load error to w and returns the exit code for it. Help
// requests exit cleanly; the flag set has already printed the usage.
func Report(w io.Writer, err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	return 2
}

func load(name string, args []string, getenv func(string) string, output io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "piece generator seed (0 seeds from the clock)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: error, warn, info, debug, trace")
	fs.StringVar(&cfg.Name, "name", cfg.Name, "player name")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if v := getenv(EnvSeed); v != "" && !set["seed"] {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	if v := getenv(EnvLogFile); v != "" && !set["log-file"] {
		cfg.LogFile = v
	}
	if v := getenv(EnvLogLevel); v != "" && !set["log-level"] {
		cfg.LogLevel = v
	}

	// A bare positional argument is the player name.
	if fs.NArg() > 0 && !set["name"] {
		cfg.Name = fs.Arg(0)
	}
	return cfg, nil
}
