// SPDX-License-Identifier: MIT

package cone

import (
	"context"

	"github.com/katalvlaran/lvcone/exact"
)

// pullingTriangulation covers cone(rays[idx]) (of dimension dim) by
// simplicial cones, each a list of dim indices into rays.
//
// The first ray is pulled: the cone is the union of the cones over the
// facets that do not contain it, each joined with the pulled ray. Facets
// come from a dual description of the subcone and are triangulated
// recursively in the same global order.
func pullingTriangulation(ctx context.Context, rays []exact.Vector, idx []int, dim int) ([][]int, error) {
	if len(idx) == dim {
		return [][]int{append([]int(nil), idx...)}, nil
	}
	if dim == 0 || len(idx) < dim {
		return nil, nil
	}
	n := len(rays[idx[0]])
	sub := make([]exact.Vector, len(idx))
	for i, j := range idx {
		sub[i] = rays[j]
	}
	_, facets, err := dualDescription(ctx, sub, nil, n)
	if err != nil {
		return nil, err
	}

	apex := rays[idx[0]]
	var out [][]int
	for _, h := range facets {
		if exact.Dot(h, apex).Sign() == 0 {
			continue
		}
		var tight []int
		for _, j := range idx {
			if exact.Dot(h, rays[j]).Sign() == 0 {
				tight = append(tight, j)
			}
		}
		simplices, err := pullingTriangulation(ctx, rays, tight, dim-1)
		if err != nil {
			return nil, err
		}
		for _, s := range simplices {
			out = append(out, append([]int{idx[0]}, s...))
		}
	}

	return out, nil
}
