// Package cone models rational polyhedral cones and polyhedra and derives
// their invariants with exact integer arithmetic.
//
// A Model is built from typed input families (generators, subspace,
// inequalities, equations, excluded faces, congruences, dehomogenization,
// lattice generators). Properties are computed lazily in passes and cached
// monotonically:
//
//   - geometry: extreme rays, support hyperplanes, equations, vertices and
//     the maximal subspace, from a double description with lineality.
//   - lattice: congruences of the integrality lattice.
//   - Hilbert: Hilbert basis and module generators, from a pulling
//     triangulation and fundamental parallelepiped enumeration, parallel
//     across simplicial cones and bounded by a budget.Budget.
//
// The algebra builds new models: Intersect, Dehomogenize and IntegerHull.
// Accessors never trigger computation; they return an empty matrix until
// Compute has run.
//
// Output rows are primitive integer vectors. Ray-like outputs are sorted
// lexicographically; Equations and MaximalSubspace are HNF bases.
//
// Quick example:
//
//	m, _ := cone.New(2, cone.Inputs{
//		cone.InputInequalities: exact.Integral(ineqs),
//	})
//	_ = m.Compute(ctx, cone.HilbertBasis)
//	hb, _ := m.HilbertBasis()
package cone
