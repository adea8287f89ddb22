// SPDX-License-Identifier: MIT

package cone

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvcone/exact"
)

// lattice is the integrality lattice M of a model: the supplied lattice
// (Zᵈ by default) cut down to the linear span of the cone and to the
// congruences.
type lattice struct {
	basis []exact.Vector // HNF rows of M
}

// computeLattice intersects the lattices step by step.
//
// Stage 1: B0 = HNF of the lattice generators (or the identity).
// Stage 2: c·B0 lies in the span iff c·(B0·Eqᵀ) = 0, a left kernel.
// Stage 3: c·B1 satisfies a·x ≡ 0 (mod m) iff (c, z) is in the left kernel
// of [B1·Aᵀ ; -diag(m)] for some z; projecting that kernel onto c gives the
// congruence sublattice.
func computeLattice(d int, rows map[InputFamily][]exact.Vector, g *geometry) (*lattice, error) {
	var b *exact.Matrix
	if gens := rows[InputLattice]; len(gens) > 0 {
		b = hnfRows(mustRows(gens, d))
	} else {
		b = exact.Identity(d)
	}

	if len(g.equations) > 0 {
		a := mul(b, transpose(mustRows(g.equations, d)))
		c, _ := exact.Kernel(transpose(a))
		b = hnfRows(mul(c, b))
	}

	if cong := rows[InputCongruences]; len(cong) > 0 && b.Rows() > 0 {
		k, t := b.Rows(), len(cong)
		coef := make([]exact.Vector, t)
		for i, r := range cong {
			coef[i] = r[:d]
		}
		a2 := mul(b, transpose(mustRows(coef, d)))
		stack, _ := exact.NewMatrix(k+t, t)
		for i := 0; i < k; i++ {
			for j := 0; j < t; j++ {
				v, _ := a2.At(i, j)
				_ = stack.Set(i, j, v)
			}
		}
		for i, r := range cong {
			_ = stack.Set(k+i, i, new(big.Int).Neg(r[d]))
		}
		w, _ := exact.Kernel(transpose(stack))
		proj := make([]exact.Vector, w.Rows())
		for i := range proj {
			proj[i] = w.Row(i)[:k]
		}
		b = hnfRows(mul(mustRows(proj, k), b))
	}

	if want := d - len(g.equations); b.Rows() != want {
		return nil, fmt.Errorf("lattice rank %d, span rank %d: %w", b.Rows(), want, ErrUnsupportedConfiguration)
	}

	return &lattice{basis: b.Vectors()}, nil
}

// derivedCongruences expresses M relative to Zᵈ ∩ W (W the span) as
// congruence rows (a, m), a·x ≡ 0 (mod m), with 0 <= a_i < m, sorted.
//
// With U = [complement; kernel] unimodular and V = U⁻¹, the coordinates of
// x ∈ W in the saturated basis are c = x·V_K. If Y holds the coordinates
// of the M basis then x ∈ M iff c·Y⁻¹ is integral, one congruence per
// column of Y⁻¹.
func derivedCongruences(d int, g *geometry, l *lattice) ([]exact.Vector, error) {
	if len(l.basis) == 0 {
		return nil, nil
	}
	kern, comp := exact.Kernel(mustRows(g.equations, d))
	u := mustRows(append(comp.Vectors(), kern.Vectors()...), d)
	v, err := exact.Inverse(exact.Integral(u))
	if err != nil {
		return nil, err
	}
	k, off := kern.Rows(), comp.Rows()
	vk, _ := exact.NewMatrix(d, k)
	for i := 0; i < d; i++ {
		for j := 0; j < k; j++ {
			x, _ := v.Num.At(i, off+j)
			_ = vk.Set(i, j, x)
		}
	}
	y := mul(mustRows(l.basis, d), vk)
	yinv, err := exact.Inverse(exact.Integral(y))
	if err != nil {
		return nil, err
	}
	cols := mul(vk, yinv.Num) // d×k, column j is a_j

	var out []exact.Vector
	for j := 0; j < k; j++ {
		a := make(exact.Vector, d)
		for i := 0; i < d; i++ {
			a[i], _ = cols.At(i, j)
		}
		mod := new(big.Int).Set(yinv.Den)
		gcd := new(big.Int).GCD(nil, nil, a.Content(), mod)
		if gcd.Sign() != 0 {
			mod.Quo(mod, gcd)
			for i := range a {
				a[i].Quo(a[i], gcd)
			}
		}
		if mod.IsInt64() && mod.Int64() == 1 {
			continue
		}
		for i := range a {
			a[i].Mod(a[i], mod)
		}
		out = append(out, append(a, mod))
	}

	return sortUnique(out), nil
}

// ensureLattice runs the lattice pass once. Caller holds the write lock.
func (m *Model) ensureLattice() error {
	if m.lat != nil {
		return nil
	}
	if m.vacuous() {
		m.lat = &lattice{}
		m.store(Congruences, nil)

		return nil
	}
	l, err := computeLattice(m.dim, m.rows, m.geo)
	if err != nil {
		return err
	}
	var cong []exact.Vector
	if m.has(InputLattice) || m.has(InputCongruences) {
		if cong, err = derivedCongruences(m.dim, m.geo, l); err != nil {
			return err
		}
	}
	m.lat = l
	m.store(Congruences, cong)

	return nil
}

// Small integer matrix helpers over exact.Rational with denominator 1.

func mul(a, b *exact.Matrix) *exact.Matrix {
	c, err := exact.Multiply(exact.Integral(a), exact.Integral(b))
	if err != nil {
		panic("cone: shape invariant broken: " + err.Error())
	}

	return c.Num
}

func transpose(a *exact.Matrix) *exact.Matrix {
	t, _ := exact.Transpose(exact.Integral(a))

	return t.Num
}

// hnfRows returns the nonzero rows of the HNF of a, keeping its width.
func hnfRows(a *exact.Matrix) *exact.Matrix {
	h := exact.HermiteForm(a)
	n := len(exact.Pivots(h))
	rows := make([]exact.Vector, n)
	for i := range rows {
		rows[i] = h.Row(i)
	}

	return mustRows(rows, a.Cols())
}
