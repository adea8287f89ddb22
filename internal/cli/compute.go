// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcone/cone"
)

// defaultProperties are computed when compute gets no --property.
var defaultProperties = []string{
	cone.ExtremeRays.String(),
	cone.SupportHyperplanes.String(),
	cone.Equations.String(),
}

// ComputeOptions holds flags for the compute command.
type ComputeOptions struct {
	*RootOptions
	Properties []string
}

// NewComputeCommand creates the compute command.
func NewComputeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ComputeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compute <problem.yaml>",
		Short: "Compute properties of a cone",
		Long: `Read a cone from a YAML problem file and print the requested properties.

Properties are named in snake_case: extreme_rays, support_hyperplanes,
equations, congruences, vertices, maximal_subspace, hilbert_basis,
module_generators, original_monoid_generators.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Properties, "property", "p", defaultProperties, "properties to compute, in output order")

	return cmd
}

func runCompute(opts *ComputeOptions, path string, cmd *cobra.Command) error {
	pr := newPrinter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	props := make([]cone.Property, 0, len(opts.Properties))
	for _, name := range opts.Properties {
		p, ok := cone.ParseProperty(name)
		if !ok || p == cone.IntegerHullCone {
			return pr.Reject(fmt.Errorf("unknown property %q", name))
		}
		props = append(props, p)
	}

	var problem Problem
	if err := loadYAML(path, &problem); err != nil {
		return pr.Reject(err)
	}
	req, err := problem.Request()
	if err != nil {
		return pr.Reject(err)
	}

	s := opts.newSurface(pr.Diag)
	h, st := s.NewCone(req)
	if !st.Ok() {
		return pr.Fail(st)
	}
	defer pr.release(s, h)
	pr.Debugf("Loaded %s as %s", path, h)

	ctx := cmd.Context()
	var res Result
	for _, p := range props {
		a, st := s.Property(ctx, h, p)
		if !st.Ok() {
			return pr.Fail(st)
		}
		res.Sections = append(res.Sections, newSection(p.String(), a))
	}

	return pr.Print(res)
}
