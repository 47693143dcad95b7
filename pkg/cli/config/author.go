package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/flophouse/rangeday/pkg/service/dealer"
)

// Author holds CLI flags for the offline puzzle authoring pipeline
type Author struct {
	configPath string
	count      int64
	solverPath string
}

// Flags returns CLI flags for authoring configuration
func (a *Author) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Category:    "authoring",
			Usage:       "Game config TOML file (defaults to 100bb heads-up when omitted)",
			Sources:     cli.EnvVars("RANGEDAY_AUTHOR_CONFIG"),
			Destination: &a.configPath,
		},
		&cli.IntFlag{
			Name:        "count",
			Category:    "authoring",
			Usage:       "Number of puzzles to author",
			Value:       365,
			Sources:     cli.EnvVars("RANGEDAY_AUTHOR_COUNT"),
			Destination: &a.count,
		},
		&cli.StringFlag{
			Name:        "solver",
			Category:    "authoring",
			Usage:       "External console solver binary for GTO annotation (skipped when empty)",
			Sources:     cli.EnvVars("RANGEDAY_AUTHOR_SOLVER"),
			Destination: &a.solverPath,
		},
	}
}

// Count returns the configured puzzle count
func (a *Author) Count() int {
	return int(a.count)
}

// SolverPath returns the configured solver binary path
func (a *Author) SolverPath() string {
	return a.solverPath
}

// GameConfig loads the game config from the TOML file, or returns the
// default heads-up game when no file is given.
func (a *Author) GameConfig() (dealer.Config, error) {
	cfg := dealer.DefaultConfig()

	if a.configPath != "" {
		data, err := os.ReadFile(a.configPath)
		if err != nil {
			return cfg, goerr.Wrap(err, "failed to read author config", goerr.V("path", a.configPath))
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, goerr.Wrap(err, "failed to parse author config", goerr.V("path", a.configPath))
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, goerr.Wrap(err, "invalid author config", goerr.V("path", a.configPath))
	}

	return cfg, nil
}
