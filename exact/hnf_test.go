package exact_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvcone/exact"
	"github.com/stretchr/testify/require"
)

func TestHNF_KnownForm(t *testing.T) {
	q := mustRational(t, [][]int64{
		{2, 4, 4},
		{-6, 6, 12},
		{10, -4, -16},
	}, 1)
	require.NoError(t, exact.HNF(q))
	require.True(t, exact.IsHermite(q.Num))
	require.True(t, q.Num.Equal(mustMatrix(t, [][]int64{
		{2, 4, 4},
		{0, 6, 0},
		{0, 0, 12},
	})), q.Num.String())
}

func TestHNF_ZeroRowsSinkAndDenominatorUntouched(t *testing.T) {
	q := mustRational(t, [][]int64{
		{0, 0, 0},
		{0, 3, 6},
		{0, 0, 0},
		{0, 2, 4},
	}, 7)
	require.NoError(t, exact.HNF(q))
	require.Equal(t, int64(7), q.Den.Int64())
	require.True(t, q.Num.Equal(mustMatrix(t, [][]int64{
		{0, 1, 2},
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})), q.Num.String())
}

func TestHNF_NegativePivot(t *testing.T) {
	q := mustRational(t, [][]int64{{-3, 1}, {0, -2}}, 1)
	require.NoError(t, exact.HNF(q))
	require.True(t, q.Num.Equal(mustMatrix(t, [][]int64{{3, 1}, {0, 2}})), q.Num.String())
}

func TestHNF_IdempotentRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 40; trial++ {
		r, c := 1+rng.Intn(6), 1+rng.Intn(6)
		q := exact.Integral(randomMatrix(t, rng, r, c, 50))
		require.NoError(t, exact.HNF(q))
		require.True(t, exact.IsHermite(q.Num), q.Num.String())

		again := q.Clone()
		require.NoError(t, exact.HNF(again))
		require.True(t, again.Num.Equal(q.Num))
	}
}

func TestExtendHnfToBasis_FullRank(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 40; trial++ {
		r, c := 1+rng.Intn(5), 1+rng.Intn(6)
		q := exact.Integral(randomMatrix(t, rng, r, c, 9))
		require.NoError(t, exact.HNF(q))
		ext, err := exact.ExtendHnfToBasis(q)
		require.NoError(t, err)
		require.Equal(t, c, ext.Rows())
		require.Equal(t, c, ext.Cols())
		rank, err := exact.Rank(ext)
		require.NoError(t, err)
		require.Equal(t, c, rank)
	}
}

func TestExtendHnfToBasis_GapOrder(t *testing.T) {
	q := mustRational(t, [][]int64{{0, 2, 1, 0}, {0, 0, 0, 3}}, 1)
	ext, err := exact.ExtendHnfToBasis(q)
	require.NoError(t, err)
	require.True(t, ext.Num.Equal(mustMatrix(t, [][]int64{
		{0, 2, 1, 0},
		{0, 0, 0, 3},
		{1, 0, 0, 0},
		{0, 0, 1, 0},
	})), ext.Num.String())
	require.Equal(t, int64(1), ext.Den.Int64())
}

func TestExtendHnfToBasis_RejectsNonHermite(t *testing.T) {
	_, err := exact.ExtendHnfToBasis(mustRational(t, [][]int64{{0, 1}, {1, 0}}, 1))
	require.ErrorIs(t, err, exact.ErrNotHermite)
}

func TestKernel(t *testing.T) {
	a := mustMatrix(t, [][]int64{{1, 1, 1}})
	ker, comp := exact.Kernel(a)
	require.Equal(t, 2, ker.Rows())
	require.Equal(t, 1, comp.Rows())
	require.True(t, exact.IsHermite(ker))
	for _, v := range ker.Vectors() {
		require.Zero(t, exact.Dot(a.Row(0), v).Sign())
	}

	// complement ∪ kernel is unimodular
	rows := append(comp.Vectors(), ker.Vectors()...)
	full, err := exact.FromRows(rows, 3)
	require.NoError(t, err)
	inv, err := exact.Inverse(exact.Integral(full))
	require.NoError(t, err)
	require.True(t, inv.Den.CmpAbs(big.NewInt(1)) == 0)
}

func TestKernel_EmptyInput(t *testing.T) {
	a, err := exact.NewMatrix(0, 3)
	require.NoError(t, err)
	ker, comp := exact.Kernel(a)
	require.True(t, ker.Equal(exact.Identity(3)))
	require.Equal(t, 0, comp.Rows())
}

func TestReduceModuloLattice(t *testing.T) {
	h := mustMatrix(t, [][]int64{{2, 1}, {0, 3}})
	v, err := exact.ReduceModuloLattice(exact.VectorOf(5, 7), h)
	require.NoError(t, err)
	// 5 - 2·2 = 1 → (1, 5); 5 mod 3 = 2 → (1, 2)
	require.Equal(t, "[1, 2]", v.String())

	// (-1, 0) + (2, 1) = (1, 1)
	w, err := exact.ReduceModuloLattice(exact.VectorOf(-1, 0), h)
	require.NoError(t, err)
	require.Equal(t, "[1, 1]", w.String())

	_, err = exact.ReduceModuloLattice(exact.VectorOf(1), h)
	require.ErrorIs(t, err, exact.ErrDimensionMismatch)
}
