// SPDX-License-Identifier: MIT

package boundary

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcone/budget"
	"github.com/katalvlaran/lvcone/cone"
	"github.com/katalvlaran/lvcone/exact"
)

// Code classifies the outcome of a surface call.
type Code int

const (
	OK Code = iota
	DimensionMismatch
	SingularMatrix
	InvalidBudget
	ComputationAborted
	UseAfterDispose
	MalformedInteger
	UnsupportedConfiguration
	NotComputed
	UnknownHandle
	NoSolution
	Internal
)

var codeNames = [...]string{
	OK:                       "ok",
	DimensionMismatch:        "dimension_mismatch",
	SingularMatrix:           "singular_matrix",
	InvalidBudget:            "invalid_budget",
	ComputationAborted:       "computation_aborted",
	UseAfterDispose:          "use_after_dispose",
	MalformedInteger:         "malformed_integer",
	UnsupportedConfiguration: "unsupported_configuration",
	NotComputed:              "not_computed",
	UnknownHandle:            "unknown_handle",
	NoSolution:               "no_solution",
	Internal:                 "internal",
}

func (c Code) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return fmt.Sprintf("Code(%d)", int(c))
	}

	return codeNames[c]
}

// Status is returned by every surface call in place of an error.
type Status struct {
	Code    Code   `json:"code"`
	Message string `json:"message,omitempty"`
}

// Ok reports whether the call succeeded.
func (s Status) Ok() bool { return s.Code == OK }

func (s Status) String() string {
	if s.Message == "" {
		return s.Code.String()
	}

	return s.Code.String() + ": " + s.Message
}

var okStatus = Status{Code: OK}

// errUnknownHandle marks a handle that was never issued or already freed.
var errUnknownHandle = errors.New("boundary: unknown handle")

// statusOf maps an internal error onto a Status. nil maps to OK.
func statusOf(err error) Status {
	if err == nil {
		return okStatus
	}
	code := Internal
	switch {
	case errors.Is(err, exact.ErrDimensionMismatch), errors.Is(err, exact.ErrBadShape),
		errors.Is(err, cone.ErrDimensionMismatch), errors.Is(err, cone.ErrBadDimension):
		code = DimensionMismatch
	case errors.Is(err, exact.ErrSingular):
		code = SingularMatrix
	case errors.Is(err, budget.ErrInvalidBudget):
		code = InvalidBudget
	case errors.Is(err, cone.ErrComputationAborted):
		code = ComputationAborted
	case errors.Is(err, cone.ErrUseAfterDispose):
		code = UseAfterDispose
	case errors.Is(err, exact.ErrZeroDenominator), errors.Is(err, cone.ErrZeroDenominator):
		code = MalformedInteger
	case errors.Is(err, exact.ErrNotHermite), errors.Is(err, cone.ErrUnsupportedConfiguration),
		errors.Is(err, cone.ErrUnknownProperty):
		code = UnsupportedConfiguration
	case errors.Is(err, cone.ErrNotComputed):
		code = NotComputed
	case errors.Is(err, errUnknownHandle):
		code = UnknownHandle
	}

	return Status{Code: code, Message: err.Error()}
}
