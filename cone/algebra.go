// SPDX-License-Identifier: MIT

package cone

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvcone/exact"
)

// snapshot is a consistent copy of the constraint side of a model.
type snapshot struct {
	dim         int
	hyperplanes []exact.Vector
	equations   []exact.Vector
	congruences bool
}

// constraints runs the geometry pass if needed and copies its H-description.
func (m *Model) constraints(ctx context.Context) (snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.computeLocked(ctx, geometryProps); err != nil {
		return snapshot{}, err
	}
	s := snapshot{
		dim:         m.dim,
		hyperplanes: m.cached(SupportHyperplanes).Vectors(),
		equations:   m.cached(Equations).Vectors(),
		congruences: m.has(InputCongruences) || m.cached(Congruences).Rows() > 0,
	}

	return s, nil
}

// Intersect returns a new model whose only family is Inequalities: the
// support hyperplanes of both operands plus every equation in both signs.
// The operands' geometry is computed on demand.
//
// Congruences are not carried over. The loss is logged as a warning; with
// WithStrictCongruences the call fails instead. The result inherits the
// options of c1, then opts.
// Errors: ErrDimensionMismatch, ErrUseAfterDispose, ErrComputationAborted,
// ErrUnsupportedConfiguration.
func Intersect(ctx context.Context, c1, c2 *Model, opts ...Option) (*Model, error) {
	cfg, err := gatherConfig(append(c1.cfg.options(), opts...)...)
	if err != nil {
		return nil, coneErrorf(opIntersect, err)
	}
	a, err := c1.constraints(ctx)
	if err != nil {
		return nil, coneErrorf(opIntersect, err)
	}
	b, err := c2.constraints(ctx)
	if err != nil {
		return nil, coneErrorf(opIntersect, err)
	}
	if a.dim != b.dim {
		return nil, coneErrorf(opIntersect, fmt.Errorf("%d vs %d: %w", a.dim, b.dim, ErrDimensionMismatch))
	}
	if a.congruences || b.congruences {
		if cfg.strictCong {
			return nil, coneErrorf(opIntersect, fmt.Errorf("congruences cannot be intersected: %w", ErrUnsupportedConfiguration))
		}
		cfg.logger.Warn("intersection drops congruences", "left", c1.id, "right", c2.id)
	}

	var ineqs []exact.Vector
	for _, s := range []snapshot{a, b} {
		ineqs = append(ineqs, s.hyperplanes...)
		for _, e := range s.equations {
			ineqs = append(ineqs, e, e.Neg())
		}
	}
	inputs := Inputs{}
	if len(ineqs) > 0 {
		inputs[InputInequalities] = exact.Integral(mustRows(ineqs, a.dim))
	} else {
		// both operands are the whole space
		inputs[InputSubspace] = exact.Integral(exact.Identity(a.dim))
	}

	return New(a.dim, inputs, cfg.options()...)
}

// Dehomogenize returns the polyhedron model built from c's support
// hyperplanes, equations and congruences, with the first unit vector as
// Dehomogenization. The three properties must have been computed on c.
// Errors: ErrNotComputed, ErrUseAfterDispose.
func Dehomogenize(c *Model) (*Model, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.disposed {
		return nil, coneErrorf(opDehomogenize, ErrUseAfterDispose)
	}
	need := Of(SupportHyperplanes, Equations, Congruences)
	if !c.status.Contains(need) {
		missing := need &^ c.status

		return nil, coneErrorf(opDehomogenize, fmt.Errorf("%v: %w", missing, ErrNotComputed))
	}

	inputs := Inputs{}
	put := func(f InputFamily, p Property) {
		if mat := c.cached(p); mat.Rows() > 0 {
			inputs[f] = exact.Integral(mat)
		}
	}
	put(InputInequalities, SupportHyperplanes)
	put(InputEquations, Equations)
	put(InputCongruences, Congruences)
	inputs[InputDehomogenization] = exact.Integral(mustRows([]exact.Vector{exact.UnitVector(c.dim, 0)}, c.dim))

	return New(c.dim, inputs, c.cfg.options()...)
}

// IntegerHull attaches the integer hull of the polyhedron c as a sub-model
// (see IntegerHullModel) and marks IntegerHullCone. It runs once; later
// calls return nil.
//
// Stage 1: the Hilbert pass yields the lattice points at level 1 (module
// generators) and the recession Hilbert basis.
// Stage 2: the hull is the polyhedron generated by both sets plus the
// lineality space, with the same dehomogenization; its geometry pass is run
// right away. An empty polyhedron gives the hull {0}.
// Errors: ErrUnsupportedConfiguration when c has no dehomogenization,
// ErrComputationAborted, ErrUseAfterDispose.
func IntegerHull(ctx context.Context, c *Model) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return coneErrorf(opHull, ErrUseAfterDispose)
	}
	if c.hull != nil {
		return nil
	}
	delta := c.delta()
	if delta == nil {
		return coneErrorf(opHull, fmt.Errorf("model is not dehomogenized: %w", ErrUnsupportedConfiguration))
	}
	if err := c.computeLocked(ctx, hilbertProps); err != nil {
		return coneErrorf(opHull, err)
	}

	d := c.dim
	inputs := Inputs{
		InputDehomogenization: exact.Integral(mustRows([]exact.Vector{delta}, d)),
	}
	mg := c.cached(ModuleGenerators)
	if mg.Rows() == 0 {
		inputs[InputEquations] = exact.Integral(exact.Identity(d))
	} else {
		gens := append(mg.Vectors(), c.cached(HilbertBasis).Vectors()...)
		inputs[InputGenerators] = exact.Integral(mustRows(gens, d))
		if sub := c.geo.subspace; len(sub) > 0 {
			inputs[InputSubspace] = exact.Integral(mustRows(sub, d))
		}
	}
	hull, err := New(d, inputs, c.cfg.options()...)
	if err != nil {
		return coneErrorf(opHull, err)
	}
	if err = hull.Compute(ctx); err != nil {
		return coneErrorf(opHull, err)
	}
	c.hull = hull
	c.status = c.status.With(IntegerHullCone)
	c.cfg.logger.Debug("integer hull attached", "id", c.id, "hull", hull.id, "generators", mg.Rows())

	return nil
}
