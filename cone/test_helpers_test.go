// SPDX-License-Identifier: MIT
// Package cone_test contains test helpers
//
// Purpose:
//   • Build input families from int64 rows without repeating error plumbing.
//   • Compare cached matrices against expected rows.
//   • Provide a clock that advances on every read, to force budget expiry.

package cone_test

import (
	"context"
	"sync"
	"testing"

	"github.com/katalvlaran/lvcone/cone"
	"github.com/katalvlaran/lvcone/exact"
	"github.com/stretchr/testify/require"
)

// rows wraps int64 rows as an integral family.
func rows(t *testing.T, xs ...[]int64) *exact.Rational {
	t.Helper()
	m, err := exact.FromInt64(xs)
	require.NoError(t, err)

	return exact.Integral(m)
}

// identity returns the n×n identity as a family.
func identity(n int) *exact.Rational {
	return exact.Integral(exact.Identity(n))
}

// mustModel builds a model or fails the test.
func mustModel(t *testing.T, d int, in cone.Inputs, opts ...cone.Option) *cone.Model {
	t.Helper()
	m, err := cone.New(d, in, opts...)
	require.NoError(t, err)
	t.Cleanup(m.Dispose)

	return m
}

// requireRows asserts that got holds exactly want, row by row.
func requireRows(t *testing.T, want [][]int64, got *exact.Matrix, err error) {
	t.Helper()
	require.NoError(t, err)
	require.Equal(t, len(want), got.Rows(), "rows of %v", got)
	for i, w := range want {
		require.Equal(t, exact.VectorOf(w...).String(), got.Row(i).String(), "row %d", i)
	}
}

// hilbertInputs is the 5-dimensional cone with lineality span{e3, e4} and
// a 12-element Hilbert basis.
func hilbertInputs(t *testing.T) cone.Inputs {
	return cone.Inputs{
		cone.InputGenerators: rows(t,
			[]int64{1, 0, 0, 0, 0},
			[]int64{0, 1, 0, 0, 0},
			[]int64{0, 1, 10, 0, 0},
			[]int64{0, 0, 0, 2, 3},
			[]int64{0, 0, 0, -2, -3},
			[]int64{0, 0, 0, 0, 2},
			[]int64{0, 0, 0, 0, -2},
		),
		cone.InputLattice: identity(5),
	}
}

// hilbertBasis is the expected Hilbert basis of hilbertInputs.
func hilbertBasis() [][]int64 {
	var out [][]int64
	for k := int64(0); k <= 10; k++ {
		out = append(out, []int64{0, 1, k, 0, 0})
	}

	return append(out, []int64{1, 0, 0, 0, 0})
}

// steppingClock advances by step seconds on every read.
type steppingClock struct {
	mu   sync.Mutex
	now  float64
	step float64
}

func (c *steppingClock) Now() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now += c.step

	return c.now
}

var bg = context.Background()
