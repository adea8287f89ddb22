// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/lvcone/cone"
)

// Config holds the environment defaults of the computation flags. Flags given
// on the command line win.
type Config struct {
	TimeLimit   time.Duration `env:"LVCONE_TIME_LIMIT" envDefault:"0s"`
	Workers     int           `env:"LVCONE_WORKERS" envDefault:"0"`
	Variability int           `env:"LVCONE_VARIABILITY" envDefault:"64"`
	BestEffort  bool          `env:"LVCONE_BEST_EFFORT" envDefault:"false"`
}

// DefaultConfig returns the configuration used when the environment is unset.
func DefaultConfig() Config {
	return Config{
		TimeLimit:   cone.DefaultTimeLimit,
		Workers:     cone.DefaultWorkers,
		Variability: cone.DefaultVariability,
	}
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// options turns the computation settings into model options.
func (c Config) options() []cone.Option {
	opts := []cone.Option{
		cone.WithTimeLimit(c.TimeLimit),
		cone.WithWorkers(c.Workers),
		cone.WithVariability(c.Variability),
	}
	if c.BestEffort {
		opts = append(opts, cone.WithBestEffort())
	}

	return opts
}
