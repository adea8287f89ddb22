// SPDX-License-Identifier: MIT

package cone

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvcone/budget"
	"github.com/katalvlaran/lvcone/exact"
)

// ctxCheckMask sets how often enumerations poll the context (every 1024 points).
const ctxCheckMask = 1023

// quotient maps the integrality lattice M onto M/N, N = M ∩ span(lin).
// The quotient cone is pointed; its lattice is Zⁿ.
type quotient struct {
	n    int
	t    *exact.Matrix   // n×d, row i lifts the i-th quotient unit vector
	nx   *exact.Matrix   // HNF basis of N
	piv  []int           // columns on which [t; nx] is invertible
	pinv *exact.Rational // inverse of [t; nx] restricted to piv
}

// newQuotient splits the M basis into a quotient part and a lineality part.
//
// Stage 1: F spans the forms vanishing on lin; c·B lies in span(lin) iff
// c·(B·Fᵀ) = 0. The integer kernel gives N, its complement gives T.
// Stage 2: [T; N] has full row rank k; pick k independent columns to solve
// x = w·[T; N] for x in the span.
func newQuotient(d int, g *geometry, l *lattice) (*quotient, error) {
	k := len(l.basis)
	if k == 0 {
		return &quotient{}, nil
	}
	b := mustRows(l.basis, d)
	f, _ := exact.Kernel(mustRows(g.lin, d))
	a := mul(b, transpose(f))
	kerC, compC := exact.Kernel(transpose(a))
	q := &quotient{n: compC.Rows()}
	q.t = mul(compC, b)
	nx := mul(kerC, b)
	q.nx = hnfRows(nx)
	if q.n == 0 {
		return q, nil
	}

	s := append(q.t.Vectors(), nx.Vectors()...)
	q.piv = exact.Echelon(s, d).Pivots()
	if len(q.piv) != k {
		return nil, fmt.Errorf("quotient basis rank %d, want %d: %w", len(q.piv), k, ErrUnsupportedConfiguration)
	}
	p, _ := exact.NewMatrix(k, k)
	for i, row := range s {
		for j, c := range q.piv {
			_ = p.Set(i, j, row[c])
		}
	}
	inv, err := exact.Inverse(exact.Integral(p))
	if err != nil {
		return nil, err
	}
	q.pinv = inv

	return q, nil
}

// direction returns the primitive integer vector along the quotient
// coordinates of x (x in the span of the cone).
func (q *quotient) direction(x exact.Vector) exact.Vector {
	z := exact.NewVector(q.n)
	tmp := new(big.Int)
	for i, c := range q.piv {
		if x[c].Sign() == 0 {
			continue
		}
		for j := 0; j < q.n; j++ {
			e, _ := q.pinv.Num.At(i, j)
			z[j].Add(z[j], tmp.Mul(x[c], e))
		}
	}

	return z.Primitive()
}

// lift maps quotient coordinates back to Zᵈ and reduces modulo N.
func (q *quotient) lift(z exact.Vector) exact.Vector {
	x := exact.NewVector(q.t.Cols())
	tmp := new(big.Int)
	for i := 0; i < q.n; i++ {
		if z[i].Sign() == 0 {
			continue
		}
		row := q.t.Row(i)
		for j := range x {
			x[j].Add(x[j], tmp.Mul(z[i], row[j]))
		}
	}
	out, err := exact.ReduceModuloLattice(x, q.nx)
	if err != nil {
		panic("cone: quotient width invariant broken: " + err.Error())
	}

	return out
}

// parallelepiped enumerates the nonzero lattice points of the half-open
// fundamental parallelepiped of the simplicial cone spanned by vs.
//
// Coset representatives of Zⁿ / Z·vs are the points of the box
// 0 <= x_j < H_jj of the HNF H of vs; each one is folded into the
// parallelepiped by subtracting ⌊x·V⁻¹⌋·V.
// It returns stopped=true when the budget ran out.
func parallelepiped(ctx context.Context, b *budget.Budget, vs []exact.Vector, keep func(exact.Vector) bool) (pts []exact.Vector, stopped bool, err error) {
	n := len(vs)
	v := mustRows(vs, n)
	vinv, err := exact.Inverse(exact.Integral(v))
	if err != nil {
		return nil, false, err
	}
	h := exact.HermiteForm(v)
	box := make([]*big.Int, n)
	for j := range box {
		box[j], _ = h.At(j, j)
	}

	x := exact.NewVector(n)
	tmp := new(big.Int)
	for step := 0; ; step++ {
		if step&ctxCheckMask == 0 {
			if err = ctx.Err(); err != nil {
				return pts, false, err
			}
		}
		if b.Tick() {
			return pts, true, nil
		}

		p := x.Clone()
		for i := 0; i < n; i++ {
			lam := new(big.Int)
			for j := 0; j < n; j++ {
				e, _ := vinv.Num.At(j, i)
				lam.Add(lam, tmp.Mul(x[j], e))
			}
			fl := exact.FloorDiv(lam, vinv.Den)
			if fl.Sign() == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				p[j].Sub(p[j], tmp.Mul(fl, vs[i][j]))
			}
		}
		if !p.IsZero() && keep(p) {
			pts = append(pts, p)
		}

		// odometer over the box
		j := n - 1
		for ; j >= 0; j-- {
			x[j].Add(x[j], big.NewInt(1))
			if x[j].Cmp(box[j]) < 0 {
				break
			}
			x[j].SetInt64(0)
		}
		if j < 0 {
			return pts, false, nil
		}
	}
}

// irreducible keeps the candidates x such that x - y leaves the cone for
// every other candidate y. The cone is {z : h·z >= 0 for h in facets}.
// When the budget runs out the unchecked candidates are kept as well, so
// the result still generates the monoid.
func irreducible(b *budget.Budget, cands, facets []exact.Vector) (out []exact.Vector, stopped bool) {
	vals := make([][]*big.Int, len(cands))
	for i, c := range cands {
		vals[i] = make([]*big.Int, len(facets))
		for k, h := range facets {
			vals[i][k] = exact.Dot(h, c)
		}
	}
	for i := range cands {
		reducible := false
		for j := range cands {
			if i == j {
				continue
			}
			if b.Tick() {
				return append(out, cands[i:]...), true
			}
			below := true
			for k := range facets {
				if vals[j][k].Cmp(vals[i][k]) > 0 {
					below = false
					break
				}
			}
			if below {
				reducible = true
				break
			}
		}
		if !reducible {
			out = append(out, cands[i])
		}
	}

	return out, false
}

// ensureHilbert runs the Hilbert pass once. Caller holds the write lock and
// has run the lattice pass.
//
// Stage 1: pass to the pointed quotient and its facets.
// Stage 2: triangulate, then enumerate every simplicial cone's
// parallelepiped in parallel; each worker owns a Fork of the budget.
// Stage 3: keep the irreducible candidates, lift, split by δ.
func (m *Model) ensureHilbert(ctx context.Context) error {
	if m.status.Contains(hilbertProps) {
		return nil
	}
	log := m.cfg.logger.With("id", m.id)
	if m.vacuous() {
		m.store(HilbertBasis, nil)
		m.store(ModuleGenerators, nil)

		return nil
	}
	q, err := newQuotient(m.dim, m.geo, m.lat)
	if err != nil {
		return err
	}
	if q.n == 0 {
		m.store(HilbertBasis, nil)
		m.store(ModuleGenerators, nil)

		return nil
	}

	rays := make([]exact.Vector, len(m.geo.rays))
	for i, r := range m.geo.rays {
		rays[i] = q.direction(r)
	}
	_, facets, err := dualDescription(ctx, rays, nil, q.n)
	if err != nil {
		return abortErr(err)
	}
	var dz exact.Vector
	if delta := m.geo.delta; delta != nil {
		dz = make(exact.Vector, q.n)
		for i := 0; i < q.n; i++ {
			dz[i] = exact.Dot(delta, q.t.Row(i))
		}
	}
	keep := func(p exact.Vector) bool {
		return dz == nil || exact.Dot(dz, p).Cmp(big.NewInt(1)) <= 0
	}

	idx := make([]int, len(rays))
	for i := range idx {
		idx[i] = i
	}
	simplices, err := pullingTriangulation(ctx, rays, idx, q.n)
	if err != nil {
		return abortErr(err)
	}
	log.Debug("triangulated", "rays", len(rays), "simplices", len(simplices))

	b, err := m.cfg.newBudget()
	if err != nil {
		return err
	}
	if err = b.PrepareForNewLoop(m.cfg.variability); err != nil {
		return err
	}

	var (
		mu      sync.Mutex
		seen    = make(map[string]exact.Vector)
		stopped atomic.Bool
	)
	add := func(p exact.Vector) {
		mu.Lock()
		seen[p.Key()] = p
		mu.Unlock()
	}
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(m.cfg.workerCount())
	for _, s := range simplices {
		vs := make([]exact.Vector, len(s))
		for i, j := range s {
			vs[i] = rays[j]
		}
		eg.Go(func() error {
			pts, stop, err := parallelepiped(egctx, b.Fork(), vs, keep)
			for _, p := range pts {
				add(p)
			}
			for _, v := range vs {
				if keep(v) {
					add(v)
				}
			}
			if err != nil {
				return err
			}
			if stop {
				stopped.Store(true)
				if !m.cfg.bestEffort {
					return ErrComputationAborted
				}
			}

			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return abortErr(err)
	}

	cands := make([]exact.Vector, 0, len(seen))
	for _, p := range seen {
		cands = append(cands, p)
	}
	cands = sortUnique(cands)
	if err = b.PrepareForNewLoop(m.cfg.variability); err != nil {
		return err
	}
	irr, stop := irreducible(b, cands, facets)
	if stop {
		stopped.Store(true)
		if !m.cfg.bestEffort {
			return abortErr(ErrComputationAborted)
		}
	}
	if stopped.Load() {
		log.Warn("hilbert basis is partial: budget expired", "candidates", len(cands))
	}

	var hb, mg []exact.Vector
	for _, z := range irr {
		x := q.lift(z)
		if dz != nil && exact.Dot(dz, z).Sign() > 0 {
			mg = append(mg, x)
		} else {
			hb = append(hb, x)
		}
	}
	m.store(HilbertBasis, sortUnique(hb))
	m.store(ModuleGenerators, sortUnique(mg))
	log.Debug("hilbert pass done", "candidates", len(cands), "hilbert_basis", len(hb), "module_generators", len(mg))

	return nil
}

// abortErr maps budget and context stops onto ErrComputationAborted.
func abortErr(err error) error {
	switch {
	case errors.Is(err, ErrComputationAborted):
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrComputationAborted, err)
	}

	return err
}
