// SPDX-License-Identifier: MIT

package cone

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/katalvlaran/lvcone/budget"
)

// Defaults.
const (
	// DefaultTimeLimit disables the enumeration deadline.
	DefaultTimeLimit time.Duration = 0

	// DefaultVariability is the budget pessimism factor per enumeration loop.
	DefaultVariability = budget.DefaultVariability

	// DefaultWorkers = 0 selects runtime.GOMAXPROCS(0).
	DefaultWorkers = 0
)

// Option configures a Model. Options are inherited by models derived from
// it (intersection, dehomogenization, integer hull).
type Option func(*config)

type config struct {
	logger      *slog.Logger
	timeLimit   time.Duration
	variability int
	workers     int
	bestEffort  bool
	strictCong  bool
	clock       budget.Clock
}

func defaultConfig() config {
	return config{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		timeLimit:   DefaultTimeLimit,
		variability: DefaultVariability,
		workers:     DefaultWorkers,
	}
}

// WithLogger routes debug traces and warnings to l. nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTimeLimit bounds every enumeration started by Compute. 0 disables it.
func WithTimeLimit(d time.Duration) Option {
	return func(c *config) { c.timeLimit = d }
}

// WithVariability sets the budget variability installed before each loop.
func WithVariability(v int) Option {
	return func(c *config) { c.variability = v }
}

// WithWorkers caps the number of simplicial cones enumerated concurrently.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithBestEffort keeps partial enumeration results when the budget expires
// instead of failing with ErrComputationAborted.
func WithBestEffort() Option {
	return func(c *config) { c.bestEffort = true }
}

// WithStrictCongruences makes Intersect fail with
// ErrUnsupportedConfiguration when an operand carries congruences.
func WithStrictCongruences() Option {
	return func(c *config) { c.strictCong = true }
}

// WithClock replaces the budget clock, typically with a fake in tests.
func WithClock(clk budget.Clock) Option {
	return func(c *config) { c.clock = clk }
}

func gatherConfig(opts ...Option) (config, error) {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if c.timeLimit < 0 || c.timeLimit.Seconds() > budget.MaxLimit {
		return c, fmt.Errorf("time limit %v: %w", c.timeLimit, budget.ErrInvalidBudget)
	}
	if c.variability < budget.MinVariability || c.variability > budget.MaxVariability {
		return c, fmt.Errorf("variability %d: %w", c.variability, budget.ErrInvalidBudget)
	}
	if c.workers < 0 {
		return c, fmt.Errorf("workers %d: %w", c.workers, ErrUnsupportedConfiguration)
	}

	return c, nil
}

// options replays c as an option list for derived models.
func (c config) options() []Option {
	opts := []Option{
		WithLogger(c.logger),
		WithTimeLimit(c.timeLimit),
		WithVariability(c.variability),
		WithWorkers(c.workers),
		WithClock(c.clock),
	}
	if c.bestEffort {
		opts = append(opts, WithBestEffort())
	}
	if c.strictCong {
		opts = append(opts, WithStrictCongruences())
	}

	return opts
}

func (c config) workerCount() int {
	if c.workers > 0 {
		return c.workers
	}

	return runtime.GOMAXPROCS(0)
}

// newBudget returns the budget for one enumeration call.
func (c config) newBudget() (*budget.Budget, error) {
	if c.timeLimit == 0 {
		return budget.Unlimited(), nil
	}
	var opts []budget.Option
	if c.clock != nil {
		opts = append(opts, budget.WithClock(c.clock))
	}

	return budget.New(c.timeLimit.Seconds(), opts...)
}
