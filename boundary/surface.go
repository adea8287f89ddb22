// SPDX-License-Identifier: MIT

package boundary

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvcone/cone"
	"github.com/katalvlaran/lvcone/exact"
)

// Handle names a model owned by a Surface.
type Handle string

// ConeRequest carries the families of a new cone. Nil arrays are absent.
type ConeRequest struct {
	Dim              int    `json:"dim" yaml:"dim"`
	Generators       *Array `json:"generators,omitempty" yaml:"generators,omitempty"`
	Subspace         *Array `json:"subspace,omitempty" yaml:"subspace,omitempty"`
	Inequalities     *Array `json:"inequalities,omitempty" yaml:"inequalities,omitempty"`
	Equations        *Array `json:"equations,omitempty" yaml:"equations,omitempty"`
	ExcludedFaces    *Array `json:"excluded_faces,omitempty" yaml:"excluded_faces,omitempty"`
	Lattice          *Array `json:"lattice,omitempty" yaml:"lattice,omitempty"`
	Congruences      *Array `json:"congruences,omitempty" yaml:"congruences,omitempty"`
	Dehomogenization *Array `json:"dehomogenization,omitempty" yaml:"dehomogenization,omitempty"`
}

func (r ConeRequest) families() map[cone.InputFamily]*Array {
	return map[cone.InputFamily]*Array{
		cone.InputGenerators:       r.Generators,
		cone.InputSubspace:         r.Subspace,
		cone.InputInequalities:     r.Inequalities,
		cone.InputEquations:        r.Equations,
		cone.InputExcludedFaces:    r.ExcludedFaces,
		cone.InputLattice:          r.Lattice,
		cone.InputCongruences:      r.Congruences,
		cone.InputDehomogenization: r.Dehomogenization,
	}
}

// Surface is the string-typed face of the cone algebra. It owns every model
// it creates; callers hold Handles and release them with Free. Internal
// errors never leave a Surface: every call returns a Status.
// All methods are safe for concurrent use.
type Surface struct {
	mu     sync.Mutex
	log    *slog.Logger
	opts   []cone.Option
	models map[Handle]*cone.Model
}

// NewSurface builds a surface logging to log (nil discards) whose models are
// created with opts.
func NewSurface(log *slog.Logger, opts ...cone.Option) *Surface {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Surface{
		log:    log,
		opts:   append([]cone.Option{cone.WithLogger(log)}, opts...),
		models: make(map[Handle]*cone.Model),
	}
}

// Len returns the number of live handles.
func (s *Surface) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.models)
}

func (s *Surface) register(m *cone.Model) Handle {
	h := Handle(uuid.NewString())
	s.mu.Lock()
	s.models[h] = m
	s.mu.Unlock()
	s.log.Debug("handle issued", "handle", h, "model", m.ID())

	return h
}

func (s *Surface) lookup(h Handle) (*cone.Model, Status) {
	s.mu.Lock()
	m, ok := s.models[h]
	s.mu.Unlock()
	if !ok {
		return nil, statusOf(fmt.Errorf("%q: %w", h, errUnknownHandle))
	}

	return m, okStatus
}

// NewCone decodes req and builds a model.
func (s *Surface) NewCone(req ConeRequest) (Handle, Status) {
	if req.Dim < 1 {
		return "", Status{Code: DimensionMismatch, Message: fmt.Sprintf("dimension %d", req.Dim)}
	}
	inputs := cone.Inputs{}
	for f, a := range req.families() {
		width := req.Dim
		if f == cone.InputCongruences {
			width++
		}
		rows, st := decodeRows(s.log, f.String(), a, width)
		if !st.Ok() {
			return "", st
		}
		if len(rows) == 0 {
			continue
		}
		m, err := exact.FromRows(rows, width)
		if err != nil {
			return "", statusOf(err)
		}
		inputs[f] = exact.Integral(m)
	}
	m, err := cone.New(req.Dim, inputs, s.opts...)
	if err != nil {
		return "", statusOf(err)
	}

	return s.register(m), okStatus
}

// Intersect builds the intersection of two cones.
func (s *Surface) Intersect(ctx context.Context, h1, h2 Handle) (Handle, Status) {
	c1, st := s.lookup(h1)
	if !st.Ok() {
		return "", st
	}
	c2, st := s.lookup(h2)
	if !st.Ok() {
		return "", st
	}
	m, err := cone.Intersect(ctx, c1, c2)
	if err != nil {
		return "", statusOf(err)
	}

	return s.register(m), okStatus
}

// Dehomogenize computes the constraints of h and builds its polyhedron.
func (s *Surface) Dehomogenize(ctx context.Context, h Handle) (Handle, Status) {
	c, st := s.lookup(h)
	if !st.Ok() {
		return "", st
	}
	if err := c.Compute(ctx, cone.SupportHyperplanes, cone.Equations, cone.Congruences); err != nil {
		return "", statusOf(err)
	}
	m, err := cone.Dehomogenize(c)
	if err != nil {
		return "", statusOf(err)
	}

	return s.register(m), okStatus
}

// Hull computes the integer hull of h.
func (s *Surface) Hull(ctx context.Context, h Handle) Status {
	c, st := s.lookup(h)
	if !st.Ok() {
		return st
	}

	return statusOf(cone.IntegerHull(ctx, c))
}

// Free disposes h and forgets it.
func (s *Surface) Free(h Handle) Status {
	s.mu.Lock()
	m, ok := s.models[h]
	delete(s.models, h)
	s.mu.Unlock()
	if !ok {
		return statusOf(fmt.Errorf("%q: %w", h, errUnknownHandle))
	}
	m.Dispose()

	return okStatus
}

// Property computes p on h and encodes the result. IntegerHullCone is
// rejected; use Hull and the Hull* getters.
func (s *Surface) Property(ctx context.Context, h Handle, p cone.Property) (*Array, Status) {
	c, st := s.lookup(h)
	if !st.Ok() {
		return nil, st
	}
	if p == cone.IntegerHullCone {
		return nil, statusOf(fmt.Errorf("%v: %w", p, cone.ErrUnknownProperty))
	}
	if err := c.Compute(ctx, p); err != nil {
		return nil, statusOf(err)
	}
	m, err := c.Get(p)
	if err != nil {
		return nil, statusOf(err)
	}

	return encodeMatrix(m), okStatus
}

// ExtremeRays returns the extreme rays of h.
func (s *Surface) ExtremeRays(ctx context.Context, h Handle) (*Array, Status) {
	return s.Property(ctx, h, cone.ExtremeRays)
}

// Vertices returns the vertices of the polyhedron h.
func (s *Surface) Vertices(ctx context.Context, h Handle) (*Array, Status) {
	return s.Property(ctx, h, cone.Vertices)
}

// LinealitySpace returns a basis of the maximal subspace of h.
func (s *Surface) LinealitySpace(ctx context.Context, h Handle) (*Array, Status) {
	return s.Property(ctx, h, cone.MaximalSubspace)
}

// OriginalMonoidGenerators returns the generators h was built from.
func (s *Surface) OriginalMonoidGenerators(ctx context.Context, h Handle) (*Array, Status) {
	return s.Property(ctx, h, cone.OriginalMonoidGenerators)
}

// Inequalities returns the support hyperplanes of h.
func (s *Surface) Inequalities(ctx context.Context, h Handle) (*Array, Status) {
	return s.Property(ctx, h, cone.SupportHyperplanes)
}

// Equations returns the equations of h.
func (s *Surface) Equations(ctx context.Context, h Handle) (*Array, Status) {
	return s.Property(ctx, h, cone.Equations)
}

// Congruences returns the congruences of h.
func (s *Surface) Congruences(ctx context.Context, h Handle) (*Array, Status) {
	return s.Property(ctx, h, cone.Congruences)
}

// HilbertBasis returns the Hilbert basis of h.
func (s *Surface) HilbertBasis(ctx context.Context, h Handle) (*Array, Status) {
	return s.Property(ctx, h, cone.HilbertBasis)
}

// ModuleGenerators returns the module generators of the polyhedron h.
func (s *Surface) ModuleGenerators(ctx context.Context, h Handle) (*Array, Status) {
	return s.Property(ctx, h, cone.ModuleGenerators)
}

// Dehomogenization returns the dehomogenization row of h, nil if absent.
func (s *Surface) Dehomogenization(h Handle) (*Array, Status) {
	c, st := s.lookup(h)
	if !st.Ok() {
		return nil, st
	}
	m, err := c.Dehomogenization()
	if err != nil {
		return nil, statusOf(err)
	}

	return encodeMatrix(m), okStatus
}

// EmbeddingDimension returns d for h.
func (s *Surface) EmbeddingDimension(h Handle) (int, Status) {
	c, st := s.lookup(h)
	if !st.Ok() {
		return 0, st
	}
	d, err := c.EmbeddingDimension()

	return d, statusOf(err)
}

// hull returns the integer hull of h. Hull must have run.
func (s *Surface) hull(h Handle) (*cone.Model, Status) {
	c, st := s.lookup(h)
	if !st.Ok() {
		return nil, st
	}
	hull, err := c.IntegerHullModel()
	if err != nil {
		return nil, statusOf(err)
	}
	if hull == nil {
		return nil, statusOf(fmt.Errorf("integer hull of %q: %w", h, cone.ErrNotComputed))
	}

	return hull, okStatus
}

func (s *Surface) hullProperty(h Handle, get func(*cone.Model) (*exact.Matrix, error)) (*Array, Status) {
	hull, st := s.hull(h)
	if !st.Ok() {
		return nil, st
	}
	m, err := get(hull)
	if err != nil {
		return nil, statusOf(err)
	}

	return encodeMatrix(m), okStatus
}

// HullInequalities returns the support hyperplanes of the integer hull of h.
func (s *Surface) HullInequalities(h Handle) (*Array, Status) {
	return s.hullProperty(h, (*cone.Model).SupportHyperplanes)
}

// HullEquations returns the equations of the integer hull of h.
func (s *Surface) HullEquations(h Handle) (*Array, Status) {
	return s.hullProperty(h, (*cone.Model).Equations)
}

// HullVertices returns the vertices of the integer hull of h.
func (s *Surface) HullVertices(h Handle) (*Array, Status) {
	return s.hullProperty(h, (*cone.Model).Vertices)
}

// IsPointed reports whether h has a trivial lineality space.
func (s *Surface) IsPointed(ctx context.Context, h Handle) (bool, Status) {
	c, st := s.lookup(h)
	if !st.Ok() {
		return false, st
	}
	ok, err := c.IsPointed(ctx)

	return ok, statusOf(err)
}

// IsInhomogeneous reports whether h carries a dehomogenization.
func (s *Surface) IsInhomogeneous(h Handle) (bool, Status) {
	c, st := s.lookup(h)
	if !st.Ok() {
		return false, st
	}
	ok, err := c.IsInhomogeneous()

	return ok, statusOf(err)
}

// IsSemiopen reports whether h has excluded faces.
func (s *Surface) IsSemiopen(h Handle) (bool, Status) {
	c, st := s.lookup(h)
	if !st.Ok() {
		return false, st
	}
	ok, err := c.IsSemiopen()

	return ok, statusOf(err)
}

// IsEmptySemiopen reports whether h minus its excluded faces is empty.
func (s *Surface) IsEmptySemiopen(ctx context.Context, h Handle) (bool, Status) {
	c, st := s.lookup(h)
	if !st.Ok() {
		return false, st
	}
	ok, err := c.IsEmptySemiopen(ctx)

	return ok, statusOf(err)
}
