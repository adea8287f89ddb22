package cone_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvcone/cone"
	"github.com/katalvlaran/lvcone/exact"
)

// ExampleModel_HilbertBasis computes the Hilbert basis of the cone spanned
// by (2,1) and (1,2).
func ExampleModel_HilbertBasis() {
	gens, _ := exact.FromInt64([][]int64{{2, 1}, {1, 2}})
	m, err := cone.New(2, cone.Inputs{cone.InputGenerators: exact.Integral(gens)})
	if err != nil {
		fmt.Println(err)
		return
	}
	defer m.Dispose()

	if err = m.Compute(context.Background(), cone.HilbertBasis); err != nil {
		fmt.Println(err)
		return
	}
	hb, _ := m.HilbertBasis()
	sh, _ := m.SupportHyperplanes()
	fmt.Println("hilbert basis:", hb.Vectors())
	fmt.Println("support hyperplanes:", sh.Vectors())

	// Output:
	// hilbert basis: [[1, 1] [1, 2] [2, 1]]
	// support hyperplanes: [[-1, 2] [2, -1]]
}

// ExampleIntegerHull hulls the lattice points of a thin triangle.
func ExampleIntegerHull() {
	ctx := context.Background()
	ineqs, _ := exact.FromInt64([][]int64{{1, 0, 0}, {0, 1, 0}, {10, -1, -10}, {0, -1, 10}})
	c, _ := cone.New(3, cone.Inputs{cone.InputInequalities: exact.Integral(ineqs)})
	defer c.Dispose()

	_ = c.Compute(ctx, cone.SupportHyperplanes, cone.Equations, cone.Congruences)
	p, err := cone.Dehomogenize(c)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer p.Dispose()

	if err = cone.IntegerHull(ctx, p); err != nil {
		fmt.Println(err)
		return
	}
	hull, _ := p.IntegerHullModel()
	eq, _ := hull.Equations()
	sh, _ := hull.SupportHyperplanes()
	fmt.Println("equations:", eq.Vectors())
	fmt.Println("inequalities:", sh.Vectors())

	// Output:
	// equations: [[0, 1, 0]]
	// inequalities: [[0, 0, 1] [1, 0, -1]]
}
