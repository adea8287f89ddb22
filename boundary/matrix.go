// SPDX-License-Identifier: MIT

package boundary

import (
	"github.com/katalvlaran/lvcone/exact"
)

// Matrix surface: string-typed wrappers over package exact. Operands are
// decoded with the surface logger; malformed entries are handled as in
// NewCone.

// MakeHNF returns the Hermite normal form of a (denominator unchanged).
func (s *Surface) MakeHNF(a *RationalArray) (*RationalArray, Status) {
	q, st := decodeRational(s.log, "hnf", a)
	if !st.Ok() {
		return nil, st
	}
	if err := exact.HNF(q); err != nil {
		return nil, statusOf(err)
	}

	return encodeRational(q), okStatus
}

// ExtendHnfToBasis completes an HNF matrix to a full-rank square matrix.
func (s *Surface) ExtendHnfToBasis(a *RationalArray) (*RationalArray, Status) {
	q, st := decodeRational(s.log, "extend", a)
	if !st.Ok() {
		return nil, st
	}
	out, err := exact.ExtendHnfToBasis(q)
	if err != nil {
		return nil, statusOf(err)
	}

	return encodeRational(out), okStatus
}

// Inverse returns a⁻¹.
func (s *Surface) Inverse(a *RationalArray) (*RationalArray, Status) {
	q, st := decodeRational(s.log, "inverse", a)
	if !st.Ok() {
		return nil, st
	}
	out, err := exact.Inverse(q)
	if err != nil {
		return nil, statusOf(err)
	}

	return encodeRational(out), okStatus
}

// Multiply returns a·b.
func (s *Surface) Multiply(a, b *RationalArray) (*RationalArray, Status) {
	qa, st := decodeRational(s.log, "multiply.a", a)
	if !st.Ok() {
		return nil, st
	}
	qb, st := decodeRational(s.log, "multiply.b", b)
	if !st.Ok() {
		return nil, st
	}
	out, err := exact.Multiply(qa, qb)
	if err != nil {
		return nil, statusOf(err)
	}

	return encodeRational(out), okStatus
}

// Rank returns the rank of a.
func (s *Surface) Rank(a *RationalArray) (int, Status) {
	q, st := decodeRational(s.log, "rank", a)
	if !st.Ok() {
		return 0, st
	}
	r, err := exact.Rank(q)

	return r, statusOf(err)
}

// Transpose returns aᵀ.
func (s *Surface) Transpose(a *RationalArray) (*RationalArray, Status) {
	q, st := decodeRational(s.log, "transpose", a)
	if !st.Ok() {
		return nil, st
	}
	out, err := exact.Transpose(q)
	if err != nil {
		return nil, statusOf(err)
	}

	return encodeRational(out), okStatus
}

// Solve returns x with a·x = b. A non-square or singular a gives NoSolution.
func (s *Surface) Solve(a, b *RationalArray) (*RationalArray, Status) {
	qa, st := decodeRational(s.log, "solve.a", a)
	if !st.Ok() {
		return nil, st
	}
	qb, st := decodeRational(s.log, "solve.b", b)
	if !st.Ok() {
		return nil, st
	}
	x, ok, err := exact.Solve(qa, qb)
	if err != nil {
		return nil, statusOf(err)
	}
	if !ok {
		return nil, Status{Code: NoSolution, Message: "coefficient matrix is not invertible"}
	}

	return encodeRational(x), okStatus
}
