// SPDX-License-Identifier: MIT
// Package cone: double description method.
//
// dualDescription converts an H-description {x : E·x = 0, H·x >= 0} into a
// V-description span(lin) + cone(rays). Starting from the whole space
// (lin = unit vectors, no rays) constraints are added one at a time:
//
//   - If the constraint is not identically zero on the lineality space, one
//     lineality vector l0 is spent: every other generator is projected onto
//     the hyperplane along l0, and for an inequality l0 itself becomes a ray.
//   - Otherwise rays are split by sign. Rays on the positive side survive
//     (inequalities only), rays on the hyperplane survive, and every
//     adjacent (positive, negative) pair produces one new ray on the
//     hyperplane.
//
// Adjacency is decided combinatorially: p and n are adjacent iff no third
// ray is tight on every processed inequality on which both are tight.
// Tight sets are bitsets over the inequality indices.

package cone

import (
	"context"
	"math/big"

	"github.com/katalvlaran/lvcone/exact"
)

// bitset is a fixed-width set of inequality indices.
type bitset []uint64

func newBitset(n int) bitset { return make(bitset, (n+63)/64) }

func (b bitset) set(i int) { b[i/64] |= 1 << uint(i%64) }

func (b bitset) clone() bitset { return append(bitset(nil), b...) }

func (b bitset) and(o bitset) bitset {
	out := make(bitset, len(b))
	for i := range b {
		out[i] = b[i] & o[i]
	}

	return out
}

func (b bitset) subsetOf(o bitset) bool {
	for i := range b {
		if b[i]&^o[i] != 0 {
			return false
		}
	}

	return true
}

// firstN returns the set {0, ..., k-1}.
func firstN(width, k int) bitset {
	b := newBitset(width)
	for i := 0; i < k; i++ {
		b.set(i)
	}

	return b
}

type ddRay struct {
	v    exact.Vector
	zero bitset
}

// dualDescription returns a lineality basis and the extreme rays (modulo
// lineality) of {x : e·x = 0 for e in eqs, h·x >= 0 for h in ineqs} in
// dimension d. Rows are primitive. ctx is checked once per constraint.
func dualDescription(ctx context.Context, ineqs, eqs []exact.Vector, d int) (lin, rays []exact.Vector, err error) {
	width := len(ineqs)
	lin = make([]exact.Vector, d)
	for j := 0; j < d; j++ {
		lin[j] = exact.UnitVector(d, j)
	}
	var rs []ddRay

	step := func(h exact.Vector, k int) {
		ineq := k >= 0

		// Lineality step.
		for idx, l0 := range lin {
			a0 := exact.Dot(h, l0)
			if a0.Sign() == 0 {
				continue
			}
			if a0.Sign() < 0 {
				l0 = l0.Neg()
				a0.Neg(a0)
			}
			next := make([]exact.Vector, 0, len(lin)-1)
			for i, l := range lin {
				if i != idx {
					next = append(next, project(h, l0, a0, l))
				}
			}
			lin = next
			for i := range rs {
				rs[i].v = project(h, l0, a0, rs[i].v)
				if ineq {
					rs[i].zero.set(k)
				}
			}
			if ineq {
				rs = append(rs, ddRay{v: l0, zero: firstN(width, k)})
			}

			return
		}

		// Ray split.
		var pos, neg []int
		var out []ddRay
		for i, r := range rs {
			switch exact.Dot(h, r.v).Sign() {
			case 1:
				pos = append(pos, i)
			case -1:
				neg = append(neg, i)
			default:
				z := r.zero
				if ineq {
					z = z.clone()
					z.set(k)
				}
				out = append(out, ddRay{v: r.v, zero: z})
			}
		}
		if ineq {
			for _, i := range pos {
				out = append(out, rs[i])
			}
		}
		for _, pi := range pos {
			for _, ni := range neg {
				p, n := rs[pi], rs[ni]
				common := p.zero.and(n.zero)
				if !adjacent(rs, pi, ni, common) {
					continue
				}
				hp, hn := exact.Dot(h, p.v), exact.Dot(h, n.v)
				hn.Neg(hn)
				v := exact.Combine(hp, n.v, hn, p.v).Primitive()
				if ineq {
					common.set(k)
				}
				out = append(out, ddRay{v: v, zero: common})
			}
		}
		rs = out
	}

	for _, e := range eqs {
		if err = ctx.Err(); err != nil {
			return nil, nil, err
		}
		step(e, -1)
	}
	for k, h := range ineqs {
		if err = ctx.Err(); err != nil {
			return nil, nil, err
		}
		step(h, k)
	}

	rays = make([]exact.Vector, len(rs))
	for i, r := range rs {
		rays[i] = r.v
	}

	return lin, rays, nil
}

// project maps v onto the hyperplane h·x = 0 along l0, where a0 = h·l0 > 0.
func project(h, l0 exact.Vector, a0 *big.Int, v exact.Vector) exact.Vector {
	hv := exact.Dot(h, v)
	if hv.Sign() == 0 {
		return v
	}
	hv.Neg(hv)

	return exact.Combine(a0, v, hv, l0).Primitive()
}

// adjacent reports whether no ray other than rs[p] and rs[n] is tight on
// every inequality in common.
func adjacent(rs []ddRay, p, n int, common bitset) bool {
	for i, r := range rs {
		if i == p || i == n {
			continue
		}
		if common.subsetOf(r.zero) {
			return false
		}
	}

	return true
}
