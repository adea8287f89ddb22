// SPDX-License-Identifier: MIT

package cone

import (
	"context"
	"fmt"
)

// Compute makes sure every property in props is cached, running the
// geometry, lattice and Hilbert passes as needed. Each pass marks its whole
// group computed (ExtremeRays also marks MaximalSubspace, Vertices, and so
// on). With no props it computes the geometry pass only.
//
// IntegerHullCone runs IntegerHull first; the other props are computed
// after it. Compute holds the write lock for the
// whole run, so concurrent Computes on one model are serialized.
// Errors: ErrUnknownProperty, ErrUseAfterDispose, ErrComputationAborted,
// ErrUnsupportedConfiguration (see IntegerHull).
func (m *Model) Compute(ctx context.Context, props ...Property) error {
	want := Of(props...)
	for _, p := range props {
		if !p.valid() {
			return coneErrorf(opCompute, fmt.Errorf("%v: %w", p, ErrUnknownProperty))
		}
	}
	if len(props) == 0 {
		want = geometryProps
	}
	if want.Has(IntegerHullCone) {
		if err := IntegerHull(ctx, m); err != nil {
			return err
		}
		want &^= Of(IntegerHullCone)
		if want == 0 {
			return nil
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.computeLocked(ctx, want); err != nil {
		return coneErrorf(opCompute, err)
	}

	return nil
}

// computeLocked runs the passes covering want. Caller holds the write lock.
func (m *Model) computeLocked(ctx context.Context, want PropertySet) error {
	if m.disposed {
		return ErrUseAfterDispose
	}
	if m.status.Contains(want) {
		return nil
	}
	if want.Has(OriginalMonoidGenerators) {
		m.store(OriginalMonoidGenerators, m.rows[InputGenerators])
	}
	needHilbert := want&hilbertProps != 0
	needLattice := needHilbert || want&latticeProps != 0
	needGeometry := needLattice || want&geometryProps != 0
	if !needGeometry {
		return nil
	}
	if err := m.ensureGeometry(ctx); err != nil {
		return abortErr(err)
	}
	if !needLattice {
		return nil
	}
	if err := m.ensureLattice(); err != nil {
		return err
	}
	if !needHilbert {
		return nil
	}

	return m.ensureHilbert(ctx)
}
