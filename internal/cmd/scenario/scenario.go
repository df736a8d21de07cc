// Package scenario implements the scenario command: it loads a Lua
// scenario script and replays it against an in-process stock round.
package scenario

import (
	"errors"
	"flag"
	"io"
	"log"

	"github.com/railbaron/stockround/internal/platform/config"
	"github.com/railbaron/stockround/internal/tools/scenario"
)

// Config holds scenario command configuration.
type Config struct {
	Scenario   string `env:"STOCKROUND_SCENARIO_FILE"`
	Assertions bool   `env:"STOCKROUND_SCENARIO_ASSERT"  envDefault:"true"`
	Verbose    bool   `env:"STOCKROUND_SCENARIO_VERBOSE"`
}

// ParseConfig parses environment variables and flags into a Config.
// Flags override the environment.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Scenario, "scenario", cfg.Scenario, "path to scenario lua file")
	fs.BoolVar(&cfg.Assertions, "assert", cfg.Assertions, "enable assertions (disable to log expectations)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable verbose logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the scenario command.
func Run(cfg Config, errOut io.Writer) error {
	if errOut == nil {
		errOut = io.Discard
	}
	if cfg.Scenario == "" {
		return errors.New("scenario path is required")
	}

	mode := scenario.AssertionStrict
	if !cfg.Assertions {
		mode = scenario.AssertionLogOnly
	}

	logger := log.New(errOut, "", 0)
	return scenario.RunFile(scenario.Config{
		Assertions: mode,
		Verbose:    cfg.Verbose,
		Logger:     logger,
	}, cfg.Scenario)
}
