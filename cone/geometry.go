// SPDX-License-Identifier: MIT

package cone

import (
	"context"
	"log/slog"
	"sort"

	"github.com/katalvlaran/lvcone/exact"
)

// geometry is the result of the dual description pass.
//
// The cone is span(lin) + cone(rays). Every other field is derived from
// these two and stored in canonical form.
type geometry struct {
	lin  []exact.Vector
	rays []exact.Vector

	equations  []exact.Vector // HNF basis of the forms vanishing on the cone
	hyperplane []exact.Vector // facets, reduced modulo equations, sorted
	extreme    []exact.Vector // rays with δ = 0 (all rays when homogeneous), sorted
	vertices   []exact.Vector // rays with δ > 0, sorted
	subspace   []exact.Vector // HNF basis of Zᵈ ∩ span(lin)
	delta      exact.Vector
}

// computeGeometry runs the two dual description passes.
//
// Stage 1: collect the H-description. Inequalities, excluded faces and
// δ >= 0 become inequalities; equations and the orthogonal complement of
// the lattice span become equations. Generators and subspace are turned
// into inequalities first by dualizing them.
// Stage 2: primal pass H → (lin, rays).
// Stage 3: dual pass (rays, lin) → facets; the equations are the integer
// kernel of rays ∪ lin.
func computeGeometry(ctx context.Context, d int, rows map[InputFamily][]exact.Vector, log *slog.Logger) (*geometry, error) {
	var ineqs, eqs []exact.Vector
	ineqs = append(ineqs, rows[InputInequalities]...)
	ineqs = append(ineqs, rows[InputExcludedFaces]...)
	var delta exact.Vector
	if r := rows[InputDehomogenization]; len(r) == 1 {
		delta = r[0]
		ineqs = append(ineqs, delta)
	}
	eqs = append(eqs, rows[InputEquations]...)
	if lat := rows[InputLattice]; len(lat) > 0 {
		orth, _ := exact.Kernel(mustRows(lat, d))
		eqs = append(eqs, orth.Vectors()...)
	}
	if len(rows[InputGenerators]) > 0 || len(rows[InputSubspace]) > 0 {
		dlin, drays, err := dualDescription(ctx, rows[InputGenerators], rows[InputSubspace], d)
		if err != nil {
			return nil, err
		}
		ineqs = append(ineqs, drays...)
		eqs = append(eqs, dlin...)
	}

	lin, rays, err := dualDescription(ctx, ineqs, eqs, d)
	if err != nil {
		return nil, err
	}
	log.Debug("primal pass done", "inequalities", len(ineqs), "equations", len(eqs), "rays", len(rays), "lineality", len(lin))

	_, facets, err := dualDescription(ctx, rays, lin, d)
	if err != nil {
		return nil, err
	}

	g := &geometry{lin: lin, rays: rays, delta: delta}
	span := append(append([]exact.Vector(nil), rays...), lin...)
	kern, _ := exact.Kernel(mustRows(span, d))
	g.equations = kern.Vectors()

	es := exact.Echelon(g.equations, d)
	for _, h := range facets {
		if r := es.Reduce(h); !r.IsZero() {
			g.hyperplane = append(g.hyperplane, r)
		}
	}
	g.hyperplane = sortUnique(g.hyperplane)

	ls := exact.Echelon(lin, d)
	for _, r := range rays {
		v := ls.Reduce(r)
		if delta != nil && exact.Dot(delta, v).Sign() > 0 {
			g.vertices = append(g.vertices, v)
		} else {
			g.extreme = append(g.extreme, v)
		}
	}
	g.extreme = sortUnique(g.extreme)
	g.vertices = sortUnique(g.vertices)

	orth, _ := exact.Kernel(mustRows(lin, d))
	sub, _ := exact.Kernel(orth)
	g.subspace = sub.Vectors()

	return g, nil
}

// sortUnique sorts rows lexicographically and drops duplicates.
func sortUnique(rows []exact.Vector) []exact.Vector {
	sort.Slice(rows, func(i, j int) bool { return exact.Cmp(rows[i], rows[j]) < 0 })
	out := rows[:0]
	for i, r := range rows {
		if i > 0 && exact.Cmp(r, rows[i-1]) == 0 {
			continue
		}
		out = append(out, r)
	}

	return out
}

// mustRows builds a matrix from rows known to have width d.
func mustRows(rows []exact.Vector, d int) *exact.Matrix {
	m, err := exact.FromRows(rows, d)
	if err != nil {
		panic("cone: row width invariant broken: " + err.Error())
	}

	return m
}

// ensureGeometry runs the geometry pass once and caches its properties.
// Caller holds the write lock.
func (m *Model) ensureGeometry(ctx context.Context) error {
	if m.geo != nil {
		return nil
	}
	if m.vacuous() {
		m.geo = &geometry{}
		m.storeGeometry()

		return nil
	}
	g, err := computeGeometry(ctx, m.dim, m.rows, m.cfg.logger.With("id", m.id))
	if err != nil {
		return err
	}
	m.geo = g
	m.storeGeometry()

	return nil
}

func (m *Model) storeGeometry() {
	m.store(ExtremeRays, m.geo.extreme)
	m.store(SupportHyperplanes, m.geo.hyperplane)
	m.store(Equations, m.geo.equations)
	m.store(Vertices, m.geo.vertices)
	m.store(MaximalSubspace, m.geo.subspace)
}
