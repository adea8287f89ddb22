// SPDX-License-Identifier: MIT

package boundary

import (
	"fmt"
	"log/slog"
	"math/big"

	"github.com/katalvlaran/lvcone/exact"
)

// Array is a row-major matrix of base-10 integer strings. A nil *Array is
// the absent matrix; matrices with zero rows or columns are encoded as nil.
type Array struct {
	Data []string `json:"data" yaml:"data"`
	Rows int      `json:"rows" yaml:"rows"`
	Cols int      `json:"cols" yaml:"cols"`
}

// RationalArray is an Array with a shared denominator, "1" when empty.
type RationalArray struct {
	Array `yaml:",inline"`
	Den   string `json:"den" yaml:"den"`
}

// NewArray copies data into an Array, or returns nil for an empty shape.
func NewArray(rows, cols int, data ...string) *Array {
	if rows == 0 || cols == 0 {
		return nil
	}

	return &Array{Data: append([]string(nil), data...), Rows: rows, Cols: cols}
}

// Row returns a copy of row i.
func (a *Array) Row(i int) []string {
	return append([]string(nil), a.Data[i*a.Cols:(i+1)*a.Cols]...)
}

// decodeRows parses a into integer rows of width want. Malformed entries are
// logged and left out of their row, so the row comes up short; such a row
// fails with MalformedInteger, a row that is short on its own with
// DimensionMismatch.
func decodeRows(log *slog.Logger, name string, a *Array, want int) ([]exact.Vector, Status) {
	if a == nil {
		return nil, okStatus
	}
	if a.Rows < 0 || a.Cols < 0 || len(a.Data) != a.Rows*a.Cols {
		return nil, Status{Code: DimensionMismatch, Message: fmt.Sprintf("%s: %d entries for %d×%d", name, len(a.Data), a.Rows, a.Cols)}
	}
	if a.Rows == 0 || a.Cols == 0 {
		return nil, okStatus
	}
	rows := make([]exact.Vector, a.Rows)
	dropped := make([]int, a.Rows)
	for i := range rows {
		row := make(exact.Vector, 0, a.Cols)
		for j, s := range a.Data[i*a.Cols : (i+1)*a.Cols] {
			x, ok := new(big.Int).SetString(s, 10)
			if !ok {
				log.Warn("malformed integer dropped", "array", name, "row", i, "col", j, "input", s)
				dropped[i]++
				continue
			}
			row = append(row, x)
		}
		rows[i] = row
	}
	for i, row := range rows {
		if len(row) == want {
			continue
		}
		if dropped[i] > 0 && len(row)+dropped[i] == want {
			return nil, Status{Code: MalformedInteger, Message: fmt.Sprintf("%s: row %d lost %d malformed entries", name, i, dropped[i])}
		}
		return nil, Status{Code: DimensionMismatch, Message: fmt.Sprintf("%s: row %d has %d valid entries, want %d", name, i, len(row), want)}
	}

	return rows, okStatus
}

// decodeMatrix parses a into a matrix of its own width.
func decodeMatrix(log *slog.Logger, name string, a *Array) (*exact.Matrix, Status) {
	if a == nil {
		return nil, Status{Code: DimensionMismatch, Message: name + ": absent matrix"}
	}
	rows, st := decodeRows(log, name, a, a.Cols)
	if !st.Ok() {
		return nil, st
	}
	m, err := exact.FromRows(rows, a.Cols)
	if err != nil {
		return nil, statusOf(err)
	}

	return m, okStatus
}

// decodeRational parses a numerator and denominator.
func decodeRational(log *slog.Logger, name string, a *RationalArray) (*exact.Rational, Status) {
	if a == nil {
		return nil, Status{Code: DimensionMismatch, Message: name + ": absent matrix"}
	}
	num, st := decodeMatrix(log, name, &a.Array)
	if !st.Ok() {
		return nil, st
	}
	den := big.NewInt(1)
	if a.Den != "" {
		var ok bool
		if den, ok = new(big.Int).SetString(a.Den, 10); !ok {
			log.Warn("malformed denominator", "array", name, "input", a.Den)

			return nil, Status{Code: MalformedInteger, Message: fmt.Sprintf("%s: denominator %q", name, a.Den)}
		}
	}
	q, err := exact.NewRational(num, den)
	if err != nil {
		return nil, statusOf(err)
	}

	return q, okStatus
}

// encodeMatrix renders m as an Array, nil when m is empty.
func encodeMatrix(m *exact.Matrix) *Array {
	if m == nil || m.IsEmpty() {
		return nil
	}
	a := &Array{Data: make([]string, 0, m.Rows()*m.Cols()), Rows: m.Rows(), Cols: m.Cols()}
	for _, row := range m.Vectors() {
		for _, x := range row {
			a.Data = append(a.Data, x.String())
		}
	}

	return a
}

// encodeRational renders q with its denominator.
func encodeRational(q *exact.Rational) *RationalArray {
	out := &RationalArray{Den: q.Den.String()}
	if a := encodeMatrix(q.Num); a != nil {
		out.Array = *a
	} else {
		out.Rows, out.Cols = q.Rows(), q.Cols()
	}

	return out
}
