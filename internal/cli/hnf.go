// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
)

// NewHNFCommand creates the hnf command.
func NewHNFCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hnf <matrix.yaml>",
		Short: "Print the Hermite normal form of a matrix",
		Long: `Read a rational matrix (rows plus an optional common denominator) from
YAML and print its row-style Hermite normal form over the same denominator.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHNF(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runHNF(opts *RootOptions, path string, cmd *cobra.Command) error {
	pr := newPrinter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	var problem MatrixProblem
	if err := loadYAML(path, &problem); err != nil {
		return pr.Reject(err)
	}
	a, err := problem.Array()
	if err != nil {
		return pr.Reject(err)
	}

	s := opts.newSurface(pr.Diag)
	out, st := s.MakeHNF(a)
	if !st.Ok() {
		return pr.Fail(st)
	}

	return pr.Print(newMatrixResult(out))
}
