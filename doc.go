// Package lvcone is exact rational algebra for polyhedral cones, from
// Hermite normal forms up to Hilbert bases and integer hulls.
//
// 🚀 What is lvcone?
//
//	A thread-safe library with no floating point anywhere:
//		• Exact matrices: math/big integers with a shared denominator
//		• Lattice tools: HNF, kernels, inverse, solve, rank
//		• Cones: extreme rays, support hyperplanes, lineality space
//		• Lattice points: congruences, Hilbert basis, module generators
//		• Polyhedra: dehomogenization, integer hull, intersection
//		• Deadlines: an adaptive budget for long enumerations
//
// Under the hood, everything is organized under these subpackages:
//
//	exact/     integer and rational matrices, HNF, echelon forms, solving
//	budget/    adaptive deadline estimator shared by enumeration loops
//	cone/      the cone Model: inputs, lazy properties, algebra
//	boundary/  string-typed handle surface with status codes
//
// The lvcone command (cmd/lvcone) reads YAML problem files and prints the
// computed properties as text or JSON.
//
// Quick example:
//
//	m, _ := cone.New(2, cone.Inputs{cone.InputGenerators: gens})
//	defer m.Dispose()
//	_ = m.Compute(ctx, cone.HilbertBasis)
//	hb, _ := m.HilbertBasis()
package lvcone
