// Package exact provides arbitrary-precision integer and rational matrices
// for polyhedral computations.
//
// What & Why:
//
//	Cone algebra needs exact answers: a support hyperplane that is off by
//	one ulp is a different hyperplane. Every entry here is a *big.Int and
//	every operation is exact. A Rational pairs an integer numerator Matrix
//	with one shared denominator; denominators compose multiplicatively and
//	are never reduced behind the caller's back (see Rational.Reduce).
//
// Kernels:
//
//	Rank, Transpose, Multiply, Inverse, Solve    : linear algebra over Q
//	HNF, ExtendHnfToBasis, IsHermite             : row Hermite normal form
//	Kernel, ReduceModuloLattice                  : integer lattices
//	Echelon, Subspace                            : rational row echelon
//
// Complexity:
//
//	All kernels are polynomial in the matrix shape but the bit size of the
//	entries may grow; HNF uses extended-gcd row operations and reduces the
//	entries above every pivot to keep growth in check.
package exact
