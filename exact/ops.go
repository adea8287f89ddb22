// SPDX-License-Identifier: MIT
// Package exact: rational matrix facades.
//
// Denominator composition rules:
//
//	Multiply(A/dA, B/dB) = (A·B) / (dA·dB)
//	Inverse(M/d)         = (d·R) / r        where M⁻¹ = R/r
//	Solve(A/dA, B/dB)    = (dA·X) / (x·dB)  where A⁻¹·B = X/x
//
// None of the facades reduce their result.

package exact

import (
	"fmt"
	"math/big"
)

// Rank returns the row rank of q over the rationals.
// The denominator is non-zero by construction and does not affect the rank.
// Complexity: O(r·c·min(r,c)) big-integer operations.
func Rank(q *Rational) (int, error) {
	if q == nil || q.Num == nil {
		return 0, exactErrorf(opRank, ErrNilMatrix)
	}
	h := q.Num.Clone()
	hermite(h)

	return nonzeroRows(h), nil
}

// Transpose returns the cols×rows transpose with the same denominator.
func Transpose(q *Rational) (*Rational, error) {
	if q == nil || q.Num == nil {
		return nil, exactErrorf(opTranspose, ErrNilMatrix)
	}

	return &Rational{Num: q.Num.transpose(), Den: new(big.Int).Set(q.Den)}, nil
}

func (m *Matrix) transpose() *Matrix {
	out, _ := NewMatrix(m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i].Set(m.entry(i, j))
		}
	}

	return out
}

// Multiply returns A·B with denominator dA·dB.
// Errors: ErrDimensionMismatch if A.Cols != B.Rows.
func Multiply(a, b *Rational) (*Rational, error) {
	if a == nil || b == nil || a.Num == nil || b.Num == nil {
		return nil, exactErrorf(opMultiply, ErrNilMatrix)
	}
	if a.Cols() != b.Rows() {
		return nil, exactErrorf(opMultiply, fmt.Errorf("%dx%d · %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return &Rational{Num: a.Num.mul(b.Num), Den: new(big.Int).Mul(a.Den, b.Den)}, nil
}

func (m *Matrix) mul(o *Matrix) *Matrix {
	out, _ := NewMatrix(m.r, o.c)
	tmp := new(big.Int)
	for i := 0; i < m.r; i++ {
		for k := 0; k < m.c; k++ {
			aik := m.entry(i, k)
			if aik.Sign() == 0 {
				continue
			}
			for j := 0; j < o.c; j++ {
				cell := out.data[i*o.c+j]
				cell.Add(cell, tmp.Mul(aik, o.entry(k, j)))
			}
		}
	}

	return out
}

// Inverse returns q⁻¹ so that Multiply(q, Inverse(q)) equals the identity.
// Errors: ErrSingular for a non-square or singular numerator.
func Inverse(q *Rational) (*Rational, error) {
	if q == nil || q.Num == nil {
		return nil, exactErrorf(opInverse, ErrNilMatrix)
	}
	if q.Rows() != q.Cols() {
		return nil, exactErrorf(opInverse, fmt.Errorf("%dx%d: %w", q.Rows(), q.Cols(), ErrSingular))
	}
	x, ok := solveRat(q.Num, Identity(q.Rows()))
	if !ok {
		return nil, exactErrorf(opInverse, ErrSingular)
	}
	raw, den := clearDenominators(x, q.Cols())
	for _, v := range raw.data {
		v.Mul(v, q.Den)
	}

	return &Rational{Num: raw, Den: den}, nil
}

// Solve returns X with A·X = B. The boolean is false when A is not square or
// is singular; that case is "no solution", not an error.
// Errors: ErrDimensionMismatch if B.Rows != A.Rows.
func Solve(a, b *Rational) (*Rational, bool, error) {
	if a == nil || b == nil || a.Num == nil || b.Num == nil {
		return nil, false, exactErrorf(opSolve, ErrNilMatrix)
	}
	if b.Rows() != a.Rows() {
		return nil, false, exactErrorf(opSolve, fmt.Errorf("A has %d rows, B has %d: %w", a.Rows(), b.Rows(), ErrDimensionMismatch))
	}
	if a.Rows() != a.Cols() {
		return nil, false, nil
	}
	x, ok := solveRat(a.Num, b.Num)
	if !ok {
		return nil, false, nil
	}
	raw, den := clearDenominators(x, b.Cols())
	for _, v := range raw.data {
		v.Mul(v, a.Den)
	}
	den.Mul(den, b.Den)

	return &Rational{Num: raw, Den: den}, true, nil
}

// solveRat runs Gauss-Jordan elimination on [A | B] over Q for square A.
// It returns the rows of A⁻¹·B, or ok=false when A is singular.
// Complexity: O(n²·(n+k)).
func solveRat(a, b *Matrix) ([][]*big.Rat, bool) {
	n, k := a.r, b.c
	aug := make([][]*big.Rat, n)
	for i := 0; i < n; i++ {
		row := make([]*big.Rat, n+k)
		for j := 0; j < n; j++ {
			row[j] = new(big.Rat).SetInt(a.entry(i, j))
		}
		for j := 0; j < k; j++ {
			row[n+j] = new(big.Rat).SetInt(b.entry(i, j))
		}
		aug[i] = row
	}

	tmp := new(big.Rat)
	for col := 0; col < n; col++ {
		p := -1
		for i := col; i < n; i++ {
			if aug[i][col].Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			return nil, false
		}
		aug[col], aug[p] = aug[p], aug[col]

		inv := new(big.Rat).Inv(aug[col][col])
		for j := col; j < n+k; j++ {
			aug[col][j].Mul(aug[col][j], inv)
		}
		for i := 0; i < n; i++ {
			f := aug[i][col]
			if i == col || f.Sign() == 0 {
				continue
			}
			f = new(big.Rat).Set(f)
			for j := col; j < n+k; j++ {
				aug[i][j].Sub(aug[i][j], tmp.Mul(f, aug[col][j]))
			}
		}
	}

	out := make([][]*big.Rat, n)
	for i := range out {
		out[i] = aug[i][n:]
	}

	return out, true
}

// clearDenominators scales rational rows by the lcm of their denominators.
// The returned denominator is positive.
func clearDenominators(x [][]*big.Rat, cols int) (*Matrix, *big.Int) {
	den := big.NewInt(1)
	g := new(big.Int)
	for _, row := range x {
		for _, v := range row {
			dv := v.Denom()
			g.GCD(nil, nil, den, dv)
			den.Mul(den, new(big.Int).Quo(dv, g))
		}
	}
	out, _ := NewMatrix(len(x), cols)
	for i, row := range x {
		for j, v := range row {
			cell := out.data[i*cols+j]
			cell.Mul(v.Num(), den)
			cell.Quo(cell, v.Denom())
		}
	}

	return out, den
}

func nonzeroRows(h *Matrix) int {
	n := 0
	for i := 0; i < h.r; i++ {
		if h.Row(i).IsZero() {
			break
		}
		n++
	}

	return n
}
