// SPDX-License-Identifier: MIT

package cone

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvcone/exact"
)

// Model is a cone (or polyhedron, when dehomogenized) given by typed input
// families, with a monotone cache of derived properties.
//
// Input families are fixed at construction. Compute adds properties to the
// cache and never removes them; accessors are pure reads and return an
// empty matrix for anything not computed. All methods are safe for
// concurrent use: Compute holds the write lock for its whole run.
type Model struct {
	mu sync.RWMutex

	id     uuid.UUID
	dim    int
	cfg    config
	// given keeps the families as supplied; rows holds them as integer
	// rows with the sign of the denominator applied.
	given  Inputs
	rows   map[InputFamily][]exact.Vector
	status PropertySet
	cache  map[Property]*exact.Matrix

	geo  *geometry
	lat  *lattice
	hull *Model

	disposed bool
}

// New validates inputs and builds a model in dimension d.
// Every family must have d columns (Congruences d+1).
// Errors: ErrBadDimension, ErrDimensionMismatch, ErrZeroDenominator,
// ErrUnsupportedConfiguration, budget.ErrInvalidBudget for bad options.
// No model is returned on error.
func New(d int, inputs Inputs, opts ...Option) (*Model, error) {
	if d < 1 {
		return nil, coneErrorf(opNew, fmt.Errorf("d=%d: %w", d, ErrBadDimension))
	}
	cfg, err := gatherConfig(opts...)
	if err != nil {
		return nil, coneErrorf(opNew, err)
	}
	m := &Model{
		id:    uuid.New(),
		dim:   d,
		cfg:   cfg,
		given: make(Inputs),
		rows:  make(map[InputFamily][]exact.Vector),
		cache: make(map[Property]*exact.Matrix),
	}
	for f := range inputs {
		if f < 0 || f >= numFamilies {
			return nil, coneErrorf(opNew, fmt.Errorf("%v: %w", f, ErrUnsupportedConfiguration))
		}
	}
	for _, f := range Families() {
		q, ok := inputs[f]
		if !ok || q == nil || q.Num == nil || q.Rows() == 0 {
			continue
		}
		rows, err := normalizeFamily(f, q, d)
		if err != nil {
			return nil, coneErrorf(opNew, err)
		}
		m.given[f] = q.Clone()
		m.rows[f] = rows
	}
	cfg.logger.Debug("cone model created", "id", m.id, "dim", d, "families", len(m.rows))

	return m, nil
}

// normalizeFamily checks widths and turns rational rows into integer rows.
func normalizeFamily(f InputFamily, q *exact.Rational, d int) ([]exact.Vector, error) {
	if q.Den == nil || q.Den.Sign() == 0 {
		return nil, fmt.Errorf("%v: %w", f, ErrZeroDenominator)
	}
	if w := f.width(d); q.Cols() != w {
		return nil, fmt.Errorf("%v has %d columns, want %d: %w", f, q.Cols(), w, ErrDimensionMismatch)
	}
	unit := q.Den.CmpAbs(big.NewInt(1)) == 0
	switch f {
	case InputCongruences, InputLattice:
		if !unit {
			return nil, fmt.Errorf("%v with denominator %v: %w", f, q.Den, ErrUnsupportedConfiguration)
		}
	case InputDehomogenization:
		if q.Rows() != 1 {
			return nil, fmt.Errorf("%v has %d rows, want 1: %w", f, q.Rows(), ErrUnsupportedConfiguration)
		}
	}

	rows := q.Num.Vectors()
	if q.Den.Sign() < 0 {
		for i := range rows {
			rows[i] = rows[i].Neg()
		}
	}
	if f == InputCongruences {
		for i, r := range rows {
			mod := r[d]
			if mod.Sign() == 0 {
				return nil, fmt.Errorf("congruence %d has modulus 0: %w", i, ErrUnsupportedConfiguration)
			}
			mod.Abs(mod)
		}
	}

	return rows, nil
}

// ID returns the model identifier used in logs.
func (m *Model) ID() uuid.UUID { return m.id }

// EmbeddingDimension returns d.
func (m *Model) EmbeddingDimension() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.disposed {
		return 0, coneErrorf(opAccess, ErrUseAfterDispose)
	}

	return m.dim, nil
}

// Input returns a copy of the family as supplied, and whether it is present.
func (m *Model) Input(f InputFamily) (*exact.Rational, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.disposed {
		return nil, false, coneErrorf(opAccess, ErrUseAfterDispose)
	}
	q, ok := m.given[f]
	if !ok {
		return nil, false, nil
	}

	return q.Clone(), true, nil
}

// IsComputed reports whether p is in the cache.
func (m *Model) IsComputed(p Property) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.disposed {
		return false, coneErrorf(opAccess, ErrUseAfterDispose)
	}

	return m.status.Has(p), nil
}

// Computed returns the set of computed properties.
func (m *Model) Computed() (PropertySet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.disposed {
		return 0, coneErrorf(opAccess, ErrUseAfterDispose)
	}

	return m.status, nil
}

// Get returns a copy of the cached matrix for p, or an empty matrix with
// the property's width when p has not been computed.
func (m *Model) Get(p Property) (*exact.Matrix, error) {
	if !p.valid() || p == IntegerHullCone {
		return nil, coneErrorf(opAccess, fmt.Errorf("%v: %w", p, ErrUnknownProperty))
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.disposed {
		return nil, coneErrorf(opAccess, ErrUseAfterDispose)
	}

	return m.cached(p), nil
}

// cached is Get without locking or validation.
func (m *Model) cached(p Property) *exact.Matrix {
	if c, ok := m.cache[p]; ok && m.status.Has(p) {
		return c.Clone()
	}
	w := m.dim
	if p == Congruences {
		w++
	}
	empty, _ := exact.NewMatrix(0, w)

	return empty
}

// ExtremeRays returns the extreme rays modulo the maximal subspace. For a
// polyhedron these are the rays of the recession cone.
func (m *Model) ExtremeRays() (*exact.Matrix, error) { return m.Get(ExtremeRays) }

// SupportHyperplanes returns the facet inequalities, reduced modulo the equations.
func (m *Model) SupportHyperplanes() (*exact.Matrix, error) { return m.Get(SupportHyperplanes) }

// Equations returns a basis of the linear forms vanishing on the cone, in HNF.
func (m *Model) Equations() (*exact.Matrix, error) { return m.Get(Equations) }

// Congruences returns rows (a, m): a·x ≡ 0 (mod m) cuts the integrality
// lattice out of the lattice points of the linear span.
func (m *Model) Congruences() (*exact.Matrix, error) { return m.Get(Congruences) }

// Vertices returns the vertices of a polyhedron as homogenized primitive rows.
func (m *Model) Vertices() (*exact.Matrix, error) { return m.Get(Vertices) }

// MaximalSubspace returns an HNF lattice basis of the lineality space.
func (m *Model) MaximalSubspace() (*exact.Matrix, error) { return m.Get(MaximalSubspace) }

// HilbertBasis returns the Hilbert basis modulo the maximal subspace (the
// recession Hilbert basis for a polyhedron).
func (m *Model) HilbertBasis() (*exact.Matrix, error) { return m.Get(HilbertBasis) }

// ModuleGenerators returns the lattice points at level 1 that generate the
// polyhedron's lattice points over the recession monoid.
func (m *Model) ModuleGenerators() (*exact.Matrix, error) { return m.Get(ModuleGenerators) }

// OriginalMonoidGenerators returns the supplied cone generators.
func (m *Model) OriginalMonoidGenerators() (*exact.Matrix, error) {
	return m.Get(OriginalMonoidGenerators)
}

// Dehomogenization returns the dehomogenization row, or an empty matrix.
func (m *Model) Dehomogenization() (*exact.Matrix, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.disposed {
		return nil, coneErrorf(opAccess, ErrUseAfterDispose)
	}
	out, _ := exact.FromRows(m.rows[InputDehomogenization], m.dim)

	return out, nil
}

// IntegerHullModel returns the attached integer hull, or nil before
// IntegerHull has run.
func (m *Model) IntegerHullModel() (*Model, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.disposed {
		return nil, coneErrorf(opAccess, ErrUseAfterDispose)
	}

	return m.hull, nil
}

// Dispose releases the cache, the inputs and the hull sub-model. Every later
// call fails with ErrUseAfterDispose. Disposing twice is a no-op.
func (m *Model) Dispose() {
	m.mu.Lock()
	hull := m.hull
	if !m.disposed {
		m.disposed = true
		m.given, m.rows, m.cache = nil, nil, nil
		m.geo, m.lat, m.hull = nil, nil, nil
		m.cfg.logger.Debug("cone model disposed", "id", m.id)
	}
	m.mu.Unlock()

	if hull != nil {
		hull.Dispose()
	}
}

// has reports whether family f was supplied.
func (m *Model) has(f InputFamily) bool { return len(m.rows[f]) > 0 }

// vacuous reports whether no family was supplied at all.
func (m *Model) vacuous() bool { return len(m.rows) == 0 }

// delta returns the dehomogenization row or nil.
func (m *Model) delta() exact.Vector {
	if r := m.rows[InputDehomogenization]; len(r) == 1 {
		return r[0]
	}

	return nil
}

// store caches rows under p and marks p computed.
func (m *Model) store(p Property, rows []exact.Vector) {
	w := m.dim
	if p == Congruences {
		w++
	}
	mat, err := exact.FromRows(rows, w)
	if err != nil {
		panic(fmt.Sprintf("cone: %v rows of wrong width: %v", p, err))
	}
	m.cache[p] = mat
	m.status = m.status.With(p)
}
