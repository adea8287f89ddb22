// SPDX-License-Identifier: MIT
// Package exact_test contains test helpers
//
// Purpose:
//   • Build small integer fixtures without repeating error plumbing.
//   • Generate deterministic random matrices for property tests.

package exact_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvcone/exact"
	"github.com/stretchr/testify/require"
)

// mustMatrix builds a matrix from int64 rows or fails the test.
func mustMatrix(t *testing.T, rows [][]int64) *exact.Matrix {
	t.Helper()
	m, err := exact.FromInt64(rows)
	require.NoError(t, err)

	return m
}

// mustRational pairs rows with denominator den.
func mustRational(t *testing.T, rows [][]int64, den int64) *exact.Rational {
	t.Helper()
	q, err := exact.NewRational(mustMatrix(t, rows), big.NewInt(den))
	require.NoError(t, err)

	return q
}

// randomMatrix fills an r×c matrix with entries in [-bound, bound].
func randomMatrix(t *testing.T, rng *rand.Rand, r, c int, bound int64) *exact.Matrix {
	t.Helper()
	rows := make([][]int64, r)
	for i := range rows {
		rows[i] = make([]int64, c)
		for j := range rows[i] {
			rows[i][j] = rng.Int63n(2*bound+1) - bound
		}
	}
	if r == 0 {
		m, err := exact.NewMatrix(0, c)
		require.NoError(t, err)

		return m
	}

	return mustMatrix(t, rows)
}
