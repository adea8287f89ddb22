// Package boundary is the string-typed surface of lvcone.
//
// Coefficients cross it as base-10 strings in flat row-major arrays, so no
// precision is lost: an Array carries Data, Rows and Cols, a RationalArray
// adds a shared denominator, and a nil array is the absent matrix.
//
// A Surface owns the models it creates and hands out Handles for them.
// Every call returns a Status instead of an error:
//
//	s := boundary.NewSurface(logger)
//	h, st := s.NewCone(boundary.ConeRequest{Dim: 2, Inequalities: ineqs})
//	if !st.Ok() { ... }
//	hb, st := s.HilbertBasis(ctx, h)
//	s.Free(h)
//
// A malformed entry is logged and left out of its row; the short row then
// makes the call report MalformedInteger. A row of the wrong width without
// malformed entries reports DimensionMismatch.
package boundary
