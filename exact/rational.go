// SPDX-License-Identifier: MIT

package exact

import (
	"math/big"
)

// Rational is an integer numerator matrix with one shared denominator:
// row i of the rational matrix is Num.Row(i) / Den.
//
// A Rational is never assumed reduced. Kernels compose denominators
// multiplicatively; call Reduce to obtain the canonical representative and
// Equal to compare mathematically without reducing.
type Rational struct {
	Num *Matrix
	Den *big.Int
}

// NewRational pairs num with a copy of den.
// Errors: ErrNilMatrix for a nil numerator, ErrZeroDenominator for den == 0.
func NewRational(num *Matrix, den *big.Int) (*Rational, error) {
	if num == nil || den == nil {
		return nil, exactErrorf(opRational, ErrNilMatrix)
	}
	if den.Sign() == 0 {
		return nil, exactErrorf(opRational, ErrZeroDenominator)
	}

	return &Rational{Num: num, Den: new(big.Int).Set(den)}, nil
}

// Integral wraps an integer matrix with denominator 1.
func Integral(num *Matrix) *Rational {
	return &Rational{Num: num, Den: big.NewInt(1)}
}

// Rows returns the number of rows.
func (q *Rational) Rows() int { return q.Num.Rows() }

// Cols returns the number of columns.
func (q *Rational) Cols() int { return q.Num.Cols() }

// Clone returns a deep copy.
func (q *Rational) Clone() *Rational {
	return &Rational{Num: q.Num.Clone(), Den: new(big.Int).Set(q.Den)}
}

// Reduce returns a new Rational with positive denominator and no common factor
// shared by the denominator and every numerator entry. q is unchanged.
func (q *Rational) Reduce() *Rational {
	g := new(big.Int).Abs(q.Den)
	for _, x := range q.Num.data {
		if x.Sign() != 0 {
			g.GCD(nil, nil, g, x)
		}
	}
	if q.Den.Sign() < 0 {
		g.Neg(g)
	}
	out := q.Clone()
	out.Den.Quo(out.Den, g)
	for _, x := range out.Num.data {
		x.Quo(x, g)
	}

	return out
}

// Normalized returns a copy whose denominator is positive.
func (q *Rational) Normalized() *Rational {
	out := q.Clone()
	if out.Den.Sign() < 0 {
		out.Den.Neg(out.Den)
		for _, x := range out.Num.data {
			x.Neg(x)
		}
	}

	return out
}

// Equal reports whether a and b denote the same rational matrix.
// It compares a.Num·b.Den with b.Num·a.Den entrywise, so no reduction happens.
func Equal(a, b *Rational) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	l, r := new(big.Int), new(big.Int)
	for i := range a.Num.data {
		l.Mul(a.Num.data[i], b.Den)
		r.Mul(b.Num.data[i], a.Den)
		if l.Cmp(r) != 0 {
			return false
		}
	}

	return true
}

// Identical reports bitwise equality: same numerator entries and the same
// denominator. Equal(a,b) may hold while Identical(a,b) does not.
func Identical(a, b *Rational) bool {
	return a.Den.Cmp(b.Den) == 0 && a.Num.Equal(b.Num)
}

// IsIdentity reports whether q equals the identity matrix mathematically.
func (q *Rational) IsIdentity() bool {
	if q.Rows() != q.Cols() {
		return false
	}
	for i := 0; i < q.Rows(); i++ {
		for j := 0; j < q.Cols(); j++ {
			x := q.Num.entry(i, j)
			if i == j {
				if x.Cmp(q.Den) != 0 {
					return false
				}
			} else if x.Sign() != 0 {
				return false
			}
		}
	}

	return true
}

// rat returns entry (i,j) as a big.Rat.
func (q *Rational) rat(i, j int) *big.Rat {
	return new(big.Rat).SetFrac(q.Num.entry(i, j), q.Den)
}
