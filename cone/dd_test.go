// SPDX-License-Identifier: MIT

package cone

import (
	"context"
	"sort"
	"testing"

	"github.com/katalvlaran/lvcone/exact"
	"github.com/stretchr/testify/require"
)

func vecs(xs ...[]int64) []exact.Vector {
	out := make([]exact.Vector, len(xs))
	for i, x := range xs {
		out[i] = exact.VectorOf(x...)
	}

	return out
}

func keys(vs []exact.Vector) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Key()
	}
	sort.Strings(out)

	return out
}

func TestDualDescription_Orthant(t *testing.T) {
	lin, rays, err := dualDescription(context.Background(), vecs([]int64{1, 0}, []int64{0, 1}), nil, 2)
	require.NoError(t, err)
	require.Empty(t, lin)
	require.Equal(t, []string{"0,1", "1,0"}, keys(rays))
}

func TestDualDescription_Lineality(t *testing.T) {
	// x >= 0 in R³ keeps span{e1, e2}
	lin, rays, err := dualDescription(context.Background(), vecs([]int64{1, 0, 0}), nil, 3)
	require.NoError(t, err)
	require.Len(t, lin, 2)
	require.Equal(t, []string{"1,0,0"}, keys(rays))
	for _, l := range lin {
		require.Zero(t, l[0].Sign())
	}
}

func TestDualDescription_Equation(t *testing.T) {
	// x + y = z, x, y >= 0
	lin, rays, err := dualDescription(context.Background(),
		vecs([]int64{1, 0, 0}, []int64{0, 1, 0}), vecs([]int64{1, 1, -1}), 3)
	require.NoError(t, err)
	require.Empty(t, lin)
	require.Equal(t, []string{"0,1,1", "1,0,1"}, keys(rays))
}

func TestDualDescription_Pyramid(t *testing.T) {
	gens := vecs([]int64{1, 0, 1}, []int64{0, 1, 1}, []int64{-1, 0, 1}, []int64{0, -1, 1})
	lin, facets, err := dualDescription(context.Background(), gens, nil, 3)
	require.NoError(t, err)
	require.Empty(t, lin)
	require.Equal(t, []string{"-1,-1,1", "-1,1,1", "1,-1,1", "1,1,1"}, keys(facets))
}

func TestPullingTriangulation_Pyramid(t *testing.T) {
	gens := vecs([]int64{1, 0, 1}, []int64{0, 1, 1}, []int64{-1, 0, 1}, []int64{0, -1, 1})
	simplices, err := pullingTriangulation(context.Background(), gens, []int{0, 1, 2, 3}, 3)
	require.NoError(t, err)
	sort.Slice(simplices, func(i, j int) bool { return simplices[i][1] < simplices[j][1] })
	require.Equal(t, [][]int{{0, 1, 2}, {0, 2, 3}}, simplices)
}

func TestParallelepiped_CountsDeterminant(t *testing.T) {
	// cone((1,0),(1,3)) has determinant 3: two nonzero points
	vs := vecs([]int64{1, 0}, []int64{1, 3})
	pts, stopped, err := parallelepiped(context.Background(), nil, vs, func(exact.Vector) bool { return true })
	require.NoError(t, err)
	require.False(t, stopped)
	require.Equal(t, []string{"1,1", "1,2"}, keys(pts))
}

func TestIrreducible(t *testing.T) {
	facets := vecs([]int64{1, 0}, []int64{0, 1})
	cands := vecs([]int64{1, 0}, []int64{0, 1}, []int64{1, 1}, []int64{2, 0})
	out, stopped := irreducible(nil, cands, facets)
	require.False(t, stopped)
	require.Equal(t, []string{"0,1", "1,0"}, keys(out))
}
