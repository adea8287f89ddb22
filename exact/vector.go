// SPDX-License-Identifier: MIT

package exact

import (
	"math/big"
	"strings"
)

// Vector is a dense row of arbitrary-precision integers.
// Vectors returned by this package never alias their inputs.
type Vector []*big.Int

// NewVector returns the zero vector of length n.
func NewVector(n int) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = new(big.Int)
	}

	return v
}

// VectorOf builds a Vector from machine integers (tests and examples).
func VectorOf(xs ...int64) Vector {
	v := make(Vector, len(xs))
	for i, x := range xs {
		v[i] = big.NewInt(x)
	}

	return v
}

// UnitVector returns e_j in dimension n.
func UnitVector(n, j int) Vector {
	v := NewVector(n)
	v[j].SetInt64(1)

	return v
}

// Clone returns a deep copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = new(big.Int).Set(x)
	}

	return out
}

// IsZero reports whether every entry of v is 0.
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x.Sign() != 0 {
			return false
		}
	}

	return true
}

// Neg returns −v.
func (v Vector) Neg() Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = new(big.Int).Neg(x)
	}

	return out
}

// Scale returns k·v.
func (v Vector) Scale(k *big.Int) Vector {
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = new(big.Int).Mul(x, k)
	}

	return out
}

// Sub returns v − w. Lengths must match (caller invariant).
func (v Vector) Sub(w Vector) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = new(big.Int).Sub(v[i], w[i])
	}

	return out
}

// Add returns v + w. Lengths must match (caller invariant).
func (v Vector) Add(w Vector) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = new(big.Int).Add(v[i], w[i])
	}

	return out
}

// Dot returns Σ a_i·b_i. Lengths must match (caller invariant).
func Dot(a, b Vector) *big.Int {
	sum := new(big.Int)
	tmp := new(big.Int)
	for i := range a {
		if a[i].Sign() == 0 || b[i].Sign() == 0 {
			continue
		}
		sum.Add(sum, tmp.Mul(a[i], b[i]))
	}

	return sum
}

// Combine returns a·x + b·y.
func Combine(a *big.Int, x Vector, b *big.Int, y Vector) Vector {
	out := make(Vector, len(x))
	tmp := new(big.Int)
	for i := range x {
		out[i] = new(big.Int).Mul(a, x[i])
		out[i].Add(out[i], tmp.Mul(b, y[i]))
	}

	return out
}

// Content returns the gcd of the absolute values of the entries (0 for the
// zero vector).
func (v Vector) Content() *big.Int {
	g := new(big.Int)
	for _, x := range v {
		if x.Sign() == 0 {
			continue
		}
		g.GCD(nil, nil, g, x)
		if g.IsInt64() && g.Int64() == 1 {
			break
		}
	}

	return g
}

// Primitive divides v by its content. The zero vector is returned as is.
// Orientation is preserved.
func (v Vector) Primitive() Vector {
	g := v.Content()
	if g.Sign() == 0 || (g.IsInt64() && g.Int64() == 1) {
		return v.Clone()
	}
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = new(big.Int).Quo(x, g)
	}

	return out
}

// Cmp compares a and b lexicographically; shorter vectors sort first on a
// common prefix.
func Cmp(a, b Vector) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := a[i].Cmp(b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

// Key returns a stable textual key for v, suitable for map deduplication.
func (v Vector) Key() string {
	var sb strings.Builder
	for i, x := range v {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(x.String())
	}

	return sb.String()
}

// String renders v as "[a, b, c]".
func (v Vector) String() string {
	return "[" + strings.ReplaceAll(v.Key(), ",", ", ") + "]"
}

// Leading returns the index of the first nonzero entry, or -1.
func (v Vector) Leading() int {
	for i, x := range v {
		if x.Sign() != 0 {
			return i
		}
	}

	return -1
}

// floorDiv returns ⌊a/b⌋ for b > 0.
func floorDiv(a, b *big.Int) *big.Int {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(a, b, m) // Euclidean: 0 <= m < |b|, so q is the floor for b > 0

	return q
}

// FloorDiv is the exported form of floorDiv; b must be positive.
func FloorDiv(a, b *big.Int) *big.Int { return floorDiv(a, b) }
