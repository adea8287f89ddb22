// SPDX-License-Identifier: MIT
// Package cone: sentinel error set.
//
// Errors:
//
//	ErrBadDimension             - embedding dimension below 1.
//	ErrDimensionMismatch        - a family or operand has the wrong width.
//	ErrZeroDenominator          - a supplied family has denominator 0.
//	ErrUseAfterDispose          - the model was disposed.
//	ErrComputationAborted       - the budget expired or the context ended.
//	ErrUnsupportedConfiguration - the request is outside what the algebra handles.
//	ErrNotComputed              - a required property was never computed.
//	ErrUnknownProperty          - the property tag is not recognised.

package cone

import (
	"errors"
	"fmt"
)

var (
	// ErrBadDimension indicates an embedding dimension below 1.
	ErrBadDimension = errors.New("cone: embedding dimension must be positive")

	// ErrDimensionMismatch indicates a family whose width differs from the
	// embedding dimension, or two models of different dimension.
	ErrDimensionMismatch = errors.New("cone: dimension mismatch")

	// ErrZeroDenominator rejects a family with denominator 0.
	ErrZeroDenominator = errors.New("cone: zero denominator")

	// ErrUseAfterDispose is returned by every operation on a disposed model.
	ErrUseAfterDispose = errors.New("cone: use after dispose")

	// ErrComputationAborted signals that an enumeration stopped early.
	// It never means "proven empty".
	ErrComputationAborted = errors.New("cone: computation aborted")

	// ErrUnsupportedConfiguration marks requests such as propagating
	// congruences through an intersection in strict mode.
	ErrUnsupportedConfiguration = errors.New("cone: unsupported configuration")

	// ErrNotComputed is returned when an operation consumes a property
	// that has not been computed yet.
	ErrNotComputed = errors.New("cone: property not computed")

	// ErrUnknownProperty indicates a Property value outside the defined set.
	ErrUnknownProperty = errors.New("cone: unknown property")
)

// Operation tags.
const (
	opNew          = "New"
	opCompute      = "Compute"
	opIntersect    = "Intersect"
	opDehomogenize = "Dehomogenize"
	opHull         = "IntegerHull"
	opAccess       = "Access"
)

// coneErrorf wraps err with an operation tag. Call only with a non-nil err.
func coneErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
