// SPDX-License-Identifier: MIT
// Package exact: sentinel error set.
// Every kernel returns one of these sentinels, wrapped with an operation tag
// via exactErrorf, so callers match with errors.Is. No kernel panics on user
// input; panics are reserved for broken invariants in private helpers.

package exact

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is negative.
	ErrBadShape = errors.New("exact: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	ErrOutOfRange = errors.New("exact: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. a
	// product where a.Cols != b.Rows, or a ragged row list.
	ErrDimensionMismatch = errors.New("exact: dimension mismatch")

	// ErrSingular is returned by Inverse when the matrix is not square or
	// has a zero determinant.
	ErrSingular = errors.New("exact: singular matrix")

	// ErrZeroDenominator rejects a rational matrix whose shared denominator is 0.
	ErrZeroDenominator = errors.New("exact: zero denominator")

	// ErrNilMatrix indicates a nil matrix operand.
	ErrNilMatrix = errors.New("exact: nil matrix")

	// ErrNotHermite is returned by ExtendHnfToBasis for input not in row HNF.
	ErrNotHermite = errors.New("exact: matrix is not in Hermite normal form")
)

// Operation tags for uniform error wrapping.
const (
	opNew       = "New"
	opFromRows  = "FromRows"
	opAt        = "At"
	opSet       = "Set"
	opRank      = "Rank"
	opTranspose = "Transpose"
	opMultiply  = "Multiply"
	opInverse   = "Inverse"
	opSolve     = "Solve"
	opHNF       = "HNF"
	opExtend    = "ExtendHnfToBasis"
	opRational  = "NewRational"
)

// exactErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func exactErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
