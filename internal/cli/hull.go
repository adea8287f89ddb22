// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcone/boundary"
)

// NewHullCommand creates the hull command.
func NewHullCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hull <problem.yaml>",
		Short: "Compute the integer hull of a polyhedron",
		Long: `Read a problem from YAML and print the constraints and vertices of the
convex hull of its lattice points.

A problem without a dehomogenization row is read as a homogeneous cone and
dehomogenized by its first coordinate first.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHull(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runHull(opts *RootOptions, path string, cmd *cobra.Command) error {
	pr := newPrinter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	var problem Problem
	if err := loadYAML(path, &problem); err != nil {
		return pr.Reject(err)
	}
	req, err := problem.Request()
	if err != nil {
		return pr.Reject(err)
	}

	ctx := cmd.Context()
	s := opts.newSurface(pr.Diag)
	h, st := s.NewCone(req)
	if !st.Ok() {
		return pr.Fail(st)
	}
	defer pr.release(s, h)

	if req.Dehomogenization == nil {
		p, st := s.Dehomogenize(ctx, h)
		if !st.Ok() {
			return pr.Fail(st)
		}
		defer pr.release(s, p)
		pr.Debugf("Dehomogenized %s as %s", h, p)
		h = p
	}

	if st = s.Hull(ctx, h); !st.Ok() {
		return pr.Fail(st)
	}

	getters := []struct {
		name string
		get  func(boundary.Handle) (*boundary.Array, boundary.Status)
	}{
		{"equations", s.HullEquations},
		{"inequalities", s.HullInequalities},
		{"vertices", s.HullVertices},
	}
	var res Result
	for _, g := range getters {
		a, st := g.get(h)
		if !st.Ok() {
			return pr.Fail(st)
		}
		res.Sections = append(res.Sections, newSection(g.name, a))
	}

	return pr.Print(res)
}
