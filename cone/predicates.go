// SPDX-License-Identifier: MIT

package cone

import (
	"context"

	"github.com/katalvlaran/lvcone/exact"
)

// IsPointed reports whether the maximal subspace is trivial. Runs the
// geometry pass if needed.
func (m *Model) IsPointed(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.computeLocked(ctx, geometryProps); err != nil {
		return false, coneErrorf(opCompute, err)
	}

	return len(m.geo.lin) == 0, nil
}

// IsInhomogeneous reports whether the model carries a dehomogenization.
func (m *Model) IsInhomogeneous() (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.disposed {
		return false, coneErrorf(opAccess, ErrUseAfterDispose)
	}

	return m.has(InputDehomogenization), nil
}

// IsSemiopen reports whether excluded faces were supplied.
func (m *Model) IsSemiopen() (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.disposed {
		return false, coneErrorf(opAccess, ErrUseAfterDispose)
	}

	return m.has(InputExcludedFaces), nil
}

// IsEmptySemiopen reports whether removing the excluded faces leaves no
// point. Every excluded form is nonnegative on the cone, so a point
// avoiding all excluded faces exists iff each form is positive on some
// ray; the sum of the rays is then such a point. For a polyhedron the
// point must lie at positive level, which needs a vertex.
func (m *Model) IsEmptySemiopen(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.computeLocked(ctx, geometryProps); err != nil {
		return false, coneErrorf(opCompute, err)
	}
	if m.delta() != nil && len(m.geo.vertices) == 0 {
		return true, nil
	}
	for _, a := range m.rows[InputExcludedFaces] {
		hit := false
		for _, r := range m.geo.rays {
			if exact.Dot(a, r).Sign() > 0 {
				hit = true
				break
			}
		}
		if !hit {
			return true, nil
		}
	}

	return false, nil
}
