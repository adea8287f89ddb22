package exact

import (
	"math/big"
)

// Subspace is the rational span of a set of integer vectors, kept as a
// reduced row echelon basis. Reduce maps a vector to a canonical
// representative of its class modulo the span.
type Subspace struct {
	dim    int
	basis  [][]*big.Rat // RREF rows, one per pivot
	pivots []int
}

// Echelon builds the reduced row echelon form of the given rows over Q.
// All rows must have length dim (caller invariant).
// Complexity: O(n·dim·rank).
func Echelon(rows []Vector, dim int) *Subspace {
	s := &Subspace{dim: dim}
	for _, v := range rows {
		s.add(v)
	}

	return s
}

// add reduces v against the basis and, if something is left, inserts it
// keeping the rows sorted by pivot and fully reduced.
func (s *Subspace) add(v Vector) bool {
	r := s.residue(v)
	lead := -1
	for j, x := range r {
		if x.Sign() != 0 {
			lead = j
			break
		}
	}
	if lead < 0 {
		return false
	}
	inv := new(big.Rat).Inv(r[lead])
	for j := range r {
		r[j].Mul(r[j], inv)
	}
	tmp := new(big.Rat)
	for _, row := range s.basis {
		f := new(big.Rat).Set(row[lead])
		if f.Sign() == 0 {
			continue
		}
		for j := range row {
			row[j].Sub(row[j], tmp.Mul(f, r[j]))
		}
	}
	pos := len(s.pivots)
	for i, p := range s.pivots {
		if p > lead {
			pos = i
			break
		}
	}
	s.basis = append(s.basis, nil)
	copy(s.basis[pos+1:], s.basis[pos:])
	s.basis[pos] = r
	s.pivots = append(s.pivots, 0)
	copy(s.pivots[pos+1:], s.pivots[pos:])
	s.pivots[pos] = lead

	return true
}

func (s *Subspace) residue(v Vector) []*big.Rat {
	r := make([]*big.Rat, s.dim)
	for j := range r {
		r[j] = new(big.Rat).SetInt(v[j])
	}
	tmp := new(big.Rat)
	for i, row := range s.basis {
		f := new(big.Rat).Set(r[s.pivots[i]])
		if f.Sign() == 0 {
			continue
		}
		for j := range r {
			r[j].Sub(r[j], tmp.Mul(f, row[j]))
		}
	}

	return r
}

// Rank returns the dimension of the span.
func (s *Subspace) Rank() int { return len(s.pivots) }

// Pivots returns the pivot columns in increasing order. They index a set of
// coordinates on which the span projects isomorphically.
func (s *Subspace) Pivots() []int { return append([]int(nil), s.pivots...) }

// Contains reports whether v lies in the span.
func (s *Subspace) Contains(v Vector) bool {
	for _, x := range s.residue(v) {
		if x.Sign() != 0 {
			return false
		}
	}

	return true
}

// Reduce returns the primitive integer vector in the direction of the
// residue of v modulo the span (zero in every pivot column). Vectors in the
// span reduce to the zero vector. A positive multiple of v keeps the same
// result.
func (s *Subspace) Reduce(v Vector) Vector {
	return integerRow(s.residue(v)).Primitive()
}

// Basis returns a primitive integer basis of the span, one row per pivot.
func (s *Subspace) Basis() []Vector {
	out := make([]Vector, len(s.basis))
	for i, row := range s.basis {
		out[i] = integerRow(row).Primitive()
	}

	return out
}

// integerRow scales a rational row by the lcm of its denominators.
func integerRow(r []*big.Rat) Vector {
	m, _ := clearDenominators([][]*big.Rat{r}, len(r))

	return m.Row(0)
}
