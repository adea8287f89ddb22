// SPDX-License-Identifier: MIT

package exact

import (
	"fmt"
	"math/big"
)

// HNF brings the numerator of q into row Hermite normal form in place.
// The denominator is left untouched; callers clear it beforehand.
//
// Form: zero rows at the bottom, each leading entry positive, entries above a
// pivot in [0, pivot), pivot columns strictly increasing.
//
// Stage 1: for each column, fold every lower row into the pivot row with a
// unimodular 2×2 extended-gcd step.
// Stage 2: make the pivot positive and reduce the rows above it.
// Complexity: O(r²·c) big-integer operations (entry growth not bounded).
func HNF(q *Rational) error {
	if q == nil || q.Num == nil {
		return exactErrorf(opHNF, ErrNilMatrix)
	}
	hermite(q.Num)

	return nil
}

// HermiteForm returns the row HNF of m as a new matrix.
func HermiteForm(m *Matrix) *Matrix {
	h := m.Clone()
	hermite(h)

	return h
}

func hermite(m *Matrix) {
	var (
		g, s, t = new(big.Int), new(big.Int), new(big.Int)
		u, w    = new(big.Int), new(big.Int)
		x, y    = new(big.Int), new(big.Int)
	)
	pr := 0
	for col := 0; col < m.c && pr < m.r; col++ {
		for i := pr + 1; i < m.r; i++ {
			b := m.entry(i, col)
			if b.Sign() == 0 {
				continue
			}
			a := m.entry(pr, col)
			if a.Sign() == 0 {
				m.swapRows(pr, i)
				continue
			}
			g.GCD(s, t, a, b)
			u.Quo(b, g)
			u.Neg(u)    // -b/g
			w.Quo(a, g) // a/g
			for j := col; j < m.c; j++ {
				p, l := m.entry(pr, j), m.entry(i, j)
				x.Mul(s, p)
				x.Add(x, y.Mul(t, l))
				y.Mul(u, p)
				l.Mul(w, l)
				l.Add(l, y)
				p.Set(x)
			}
		}
		piv := m.entry(pr, col)
		if piv.Sign() == 0 {
			continue
		}
		if piv.Sign() < 0 {
			for j := col; j < m.c; j++ {
				e := m.entry(pr, j)
				e.Neg(e)
			}
		}
		for k := 0; k < pr; k++ {
			q := floorDiv(m.entry(k, col), piv)
			if q.Sign() == 0 {
				continue
			}
			for j := col; j < m.c; j++ {
				e := m.entry(k, j)
				e.Sub(e, x.Mul(q, m.entry(pr, j)))
			}
		}
		pr++
	}
}

func (m *Matrix) swapRows(i, k int) {
	for j := 0; j < m.c; j++ {
		m.data[i*m.c+j], m.data[k*m.c+j] = m.data[k*m.c+j], m.data[i*m.c+j]
	}
}

// IsHermite reports whether m is in row Hermite normal form.
func IsHermite(m *Matrix) bool {
	last := -1
	zeroSeen := false
	for i := 0; i < m.r; i++ {
		row := m.Row(i)
		lead := row.Leading()
		if lead < 0 {
			zeroSeen = true
			continue
		}
		if zeroSeen || lead <= last || row[lead].Sign() < 0 {
			return false
		}
		for k := 0; k < i; k++ {
			e := m.entry(k, lead)
			if e.Sign() < 0 || e.Cmp(row[lead]) >= 0 {
				return false
			}
		}
		last = lead
	}

	return true
}

// Pivots returns the pivot column of each nonzero row of an HNF matrix.
func Pivots(h *Matrix) []int {
	var out []int
	for i := 0; i < h.r; i++ {
		lead := h.Row(i).Leading()
		if lead < 0 {
			break
		}
		out = append(out, lead)
	}

	return out
}

// ExtendHnfToBasis returns a new cols×cols matrix holding the nonzero rows of
// q (already in HNF) followed by one unit row e_j for every column j that has
// no pivot, in increasing order of j. The result has full rank and
// denominator 1.
// Errors: ErrNotHermite when the numerator is not in HNF.
func ExtendHnfToBasis(q *Rational) (*Rational, error) {
	if q == nil || q.Num == nil {
		return nil, exactErrorf(opExtend, ErrNilMatrix)
	}
	if !IsHermite(q.Num) {
		return nil, exactErrorf(opExtend, ErrNotHermite)
	}
	d := q.Cols()
	out, _ := NewMatrix(d, d)
	has := make([]bool, d)
	row := 0
	for i, p := range Pivots(q.Num) {
		out.setRow(row, q.Num.Row(i))
		has[p] = true
		row++
	}
	for j := 0; j < d; j++ {
		if !has[j] {
			out.entry(row, j).SetInt64(1)
			row++
		}
	}

	return Integral(out), nil
}

// Kernel returns a basis of the integer kernel {x ∈ Zᵈ : a·x = 0} of the rows
// of a, together with a complement such that the rows of complement and
// kernel form a unimodular d×d matrix. The kernel is saturated and in HNF.
//
// It row-reduces [aᵀ | I] (d×(m+d)); rows whose left block vanishes carry
// the kernel in their right block.
// Complexity: O(d²·(m+d)).
func Kernel(a *Matrix) (kernel, complement *Matrix) {
	d, m := a.c, a.r
	aug, _ := NewMatrix(d, m+d)
	for j := 0; j < d; j++ {
		for i := 0; i < m; i++ {
			aug.entry(j, i).Set(a.entry(i, j))
		}
		aug.entry(j, m+j).SetInt64(1)
	}
	hermite(aug)

	var kr, cr []Vector
	for i := 0; i < d; i++ {
		left := true
		for j := 0; j < m; j++ {
			if aug.entry(i, j).Sign() != 0 {
				left = false
				break
			}
		}
		right := make(Vector, d)
		for j := 0; j < d; j++ {
			right[j] = new(big.Int).Set(aug.entry(i, m+j))
		}
		if left {
			kr = append(kr, right)
		} else {
			cr = append(cr, right)
		}
	}
	kernel, _ = FromRows(kr, d)
	complement, _ = FromRows(cr, d)

	return kernel, complement
}

// ReduceModuloLattice returns the canonical representative of v modulo the
// lattice spanned by the rows of h (HNF): every pivot coordinate lands in
// [0, pivot).
func ReduceModuloLattice(v Vector, h *Matrix) (Vector, error) {
	if len(v) != h.c {
		return nil, fmt.Errorf("reduce: vector has %d entries, lattice %d: %w", len(v), h.c, ErrDimensionMismatch)
	}
	out := v.Clone()
	tmp := new(big.Int)
	for i, p := range Pivots(h) {
		q := floorDiv(out[p], h.entry(i, p))
		if q.Sign() == 0 {
			continue
		}
		for j := p; j < h.c; j++ {
			out[j].Sub(out[j], tmp.Mul(q, h.entry(i, j)))
		}
	}

	return out, nil
}
