package exact_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvcone/exact"
	"github.com/stretchr/testify/require"
)

func TestNewRational_ZeroDenominator(t *testing.T) {
	_, err := exact.NewRational(mustMatrix(t, [][]int64{{1}}), big.NewInt(0))
	require.ErrorIs(t, err, exact.ErrZeroDenominator)

	_, err = exact.NewRational(nil, big.NewInt(1))
	require.ErrorIs(t, err, exact.ErrNilMatrix)
}

func TestNewMatrix_BadShape(t *testing.T) {
	_, err := exact.NewMatrix(-1, 2)
	require.ErrorIs(t, err, exact.ErrBadShape)

	m, err := exact.NewMatrix(0, 3)
	require.NoError(t, err)
	require.True(t, m.IsEmpty())
	require.Equal(t, 3, m.Cols())
}

func TestFromRows_Ragged(t *testing.T) {
	_, err := exact.FromRows([]exact.Vector{exact.VectorOf(1, 2), exact.VectorOf(3)}, 2)
	require.ErrorIs(t, err, exact.ErrDimensionMismatch)
}

func TestAtSet_OutOfRange(t *testing.T) {
	m := mustMatrix(t, [][]int64{{1, 2}})
	_, err := m.At(1, 0)
	require.ErrorIs(t, err, exact.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 2, big.NewInt(1)), exact.ErrOutOfRange)

	require.NoError(t, m.Set(0, 1, big.NewInt(7)))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, int64(7), v.Int64())

	// At returns a copy.
	v.SetInt64(9)
	again, _ := m.At(0, 1)
	require.Equal(t, int64(7), again.Int64())
}

func TestRank(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int64
		want int
	}{
		{"identity", [][]int64{{1, 0}, {0, 1}}, 2},
		{"dependent", [][]int64{{1, 2, 3}, {2, 4, 6}, {0, 1, 1}}, 2},
		{"zero", [][]int64{{0, 0}, {0, 0}}, 0},
		{"wide", [][]int64{{1, 2, 3, 4}}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := exact.Rank(mustRational(t, tc.rows, 3))
			require.NoError(t, err)
			require.Equal(t, tc.want, r)
		})
	}
}

func TestTranspose_KeepsDenominator(t *testing.T) {
	q := mustRational(t, [][]int64{{1, 2, 3}, {4, 5, 6}}, 5)
	tr, err := exact.Transpose(q)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	require.True(t, exact.Identical(tr, mustRational(t, [][]int64{{1, 4}, {2, 5}, {3, 6}}, 5)))
}

func TestMultiply_DenominatorsCompose(t *testing.T) {
	a := mustRational(t, [][]int64{{1, 2}, {3, 4}}, 2)
	b := mustRational(t, [][]int64{{2, 0}, {1, 2}}, 3)
	c, err := exact.Multiply(a, b)
	require.NoError(t, err)
	require.Equal(t, int64(6), c.Den.Int64())
	require.True(t, exact.Identical(c, mustRational(t, [][]int64{{4, 4}, {10, 8}}, 6)))
}

func TestMultiply_DimensionMismatch(t *testing.T) {
	a := mustRational(t, [][]int64{{1, 2, 3}, {4, 5, 6}}, 1)
	b := mustRational(t, [][]int64{{1, 2}, {3, 4}}, 1)
	_, err := exact.Multiply(a, b)
	require.ErrorIs(t, err, exact.ErrDimensionMismatch)
}

func TestInverse_Singular(t *testing.T) {
	_, err := exact.Inverse(mustRational(t, [][]int64{{1, 2}, {2, 4}}, 1))
	require.ErrorIs(t, err, exact.ErrSingular)

	_, err = exact.Inverse(mustRational(t, [][]int64{{1, 2, 3}}, 1))
	require.ErrorIs(t, err, exact.ErrSingular)
}

func TestInverse_Small(t *testing.T) {
	// (M/2)⁻¹ with M = [[2,1],[1,1]]: M⁻¹ = [[1,-1],[-1,2]], so the inverse is 2·M⁻¹.
	q := mustRational(t, [][]int64{{2, 1}, {1, 1}}, 2)
	inv, err := exact.Inverse(q)
	require.NoError(t, err)
	require.True(t, exact.Equal(inv, mustRational(t, [][]int64{{2, -2}, {-2, 4}}, 1)))
	require.Equal(t, int64(1), inv.Den.Int64())
}

func TestInverse_RandomProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 60; trial++ {
		n := 1 + trial%8
		m := randomMatrix(t, rng, n, n, 1000)
		q, err := exact.NewRational(m, big.NewInt(1+rng.Int63n(50)))
		require.NoError(t, err)
		if r, _ := exact.Rank(q); r < n {
			continue
		}
		inv, err := exact.Inverse(q)
		require.NoError(t, err)

		prod, err := exact.Multiply(q, inv)
		require.NoError(t, err)
		require.True(t, prod.IsIdentity(), "trial %d n=%d", trial, n)

		back, err := exact.Multiply(inv, q)
		require.NoError(t, err)
		require.True(t, back.IsIdentity())
	}
}

func TestSolve(t *testing.T) {
	a := mustRational(t, [][]int64{{2, 0}, {0, 4}}, 3)
	b := mustRational(t, [][]int64{{1}, {1}}, 5)
	x, ok, err := exact.Solve(a, b)
	require.NoError(t, err)
	require.True(t, ok)

	// (A/3)·X = B/5  ⇒  A·X·5 = 3·B
	ax, err := exact.Multiply(a, x)
	require.NoError(t, err)
	require.True(t, exact.Equal(ax, b))
}

func TestSolve_NoSolution(t *testing.T) {
	_, ok, err := exact.Solve(mustRational(t, [][]int64{{1, 1}, {1, 1}}, 1), mustRational(t, [][]int64{{1}, {2}}, 1))
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = exact.Solve(mustRational(t, [][]int64{{1, 1}}, 1), mustRational(t, [][]int64{{1}}, 1))
	require.NoError(t, err)
	require.False(t, ok)

	_, _, err = exact.Solve(mustRational(t, [][]int64{{1, 0}, {0, 1}}, 1), mustRational(t, [][]int64{{1}}, 1))
	require.ErrorIs(t, err, exact.ErrDimensionMismatch)
}

func TestReduce_EqualVersusIdentical(t *testing.T) {
	a := mustRational(t, [][]int64{{2, 4}, {6, 8}}, 4)
	r := a.Reduce()
	require.True(t, exact.Identical(r, mustRational(t, [][]int64{{1, 2}, {3, 4}}, 2)))
	require.True(t, exact.Equal(a, r))
	require.False(t, exact.Identical(a, r))

	neg := mustRational(t, [][]int64{{-1, -2}}, -3).Reduce()
	require.Equal(t, int64(3), neg.Den.Int64())
	require.True(t, exact.Identical(neg, mustRational(t, [][]int64{{1, 2}}, 3)))
}
