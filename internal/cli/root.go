// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcone/boundary"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Config

	envErr error
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the lvcone CLI. Flag defaults
// come from the LVCONE_* environment.
func NewRootCommand() *cobra.Command {
	cfg, err := LoadConfig()
	opts := &RootOptions{Config: cfg, envErr: err}

	cmd := &cobra.Command{
		Use:   "lvcone",
		Short: "lvcone - exact polyhedral cone algebra",
		Long: `Exact rational computations on polyhedral cones: extreme rays, support
hyperplanes, Hilbert bases and integer hulls of problems read from YAML.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.envErr != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error:", opts.envErr)
				return WrapExitError(ExitCommandError, "invalid environment", opts.envErr)
			}
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().DurationVar(&opts.TimeLimit, "time-limit", opts.TimeLimit, "enumeration deadline, 0 disables it (LVCONE_TIME_LIMIT)")
	cmd.PersistentFlags().IntVar(&opts.Workers, "workers", opts.Workers, "concurrent simplicial cones, 0 uses GOMAXPROCS (LVCONE_WORKERS)")
	cmd.PersistentFlags().IntVar(&opts.Variability, "variability", opts.Variability, "budget pessimism per loop (LVCONE_VARIABILITY)")
	cmd.PersistentFlags().BoolVar(&opts.BestEffort, "best-effort", opts.BestEffort, "keep partial results when the deadline passes (LVCONE_BEST_EFFORT)")

	cmd.AddCommand(NewComputeCommand(opts))
	cmd.AddCommand(NewHullCommand(opts))
	cmd.AddCommand(NewHNFCommand(opts))

	return cmd
}

// newSurface builds the surface a command works on. Warnings always reach
// w; debug traces only with --verbose.
func (o *RootOptions) newSurface(w io.Writer) *boundary.Surface {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))

	return boundary.NewSurface(log, o.Config.options()...)
}
