// SPDX-License-Identifier: MIT
// Package exact provides core linear algebra primitives over the integers.
// Matrix is a row-major matrix of *big.Int stored in a flat slice.

package exact

import (
	"fmt"
	"math/big"
	"strings"
)

// Matrix is a rows×cols integer matrix. Zero-row and zero-column shapes are
// legal: integer kernels and empty constraint systems produce them.
type Matrix struct {
	r, c int        // number of rows and columns
	data []*big.Int // flat backing storage, length == r*c
}

// NewMatrix creates an r×c zero matrix.
// Returns ErrBadShape for negative dimensions.
// Complexity: O(r*c).
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, exactErrorf(opNew, ErrBadShape)
	}
	data := make([]*big.Int, rows*cols)
	for i := range data {
		data[i] = new(big.Int)
	}

	return &Matrix{r: rows, c: cols, data: data}, nil
}

// FromRows copies rows into a new matrix with the given column count.
// Every row must have exactly cols entries, else ErrDimensionMismatch.
func FromRows(rows []Vector, cols int) (*Matrix, error) {
	m, err := NewMatrix(len(rows), cols)
	if err != nil {
		return nil, exactErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, exactErrorf(opFromRows, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), cols, ErrDimensionMismatch))
		}
		for j, x := range row {
			m.data[i*cols+j].Set(x)
		}
	}

	return m, nil
}

// FromInt64 builds a matrix from machine integers. All rows must share one
// length. Intended for tests and fixtures.
func FromInt64(rows [][]int64) (*Matrix, error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	vs := make([]Vector, len(rows))
	for i, row := range rows {
		vs[i] = VectorOf(row...)
	}

	return FromRows(vs, cols)
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	m, _ := NewMatrix(n, n) // n >= 0 is a caller invariant
	for i := 0; i < n; i++ {
		m.data[i*n+i].SetInt64(1)
	}

	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// IsEmpty reports whether the matrix has no entries.
func (m *Matrix) IsEmpty() bool { return m.r == 0 || m.c == 0 }

func (m *Matrix) indexOf(op string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, exactErrorf(op, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}

	return row*m.c + col, nil
}

// At returns a copy of the entry at (row, col).
func (m *Matrix) At(row, col int) (*big.Int, error) {
	idx, err := m.indexOf(opAt, row, col)
	if err != nil {
		return nil, err
	}

	return new(big.Int).Set(m.data[idx]), nil
}

// Set stores a copy of v at (row, col).
func (m *Matrix) Set(row, col int, v *big.Int) error {
	idx, err := m.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx].Set(v)

	return nil
}

// entry is the unchecked accessor used by kernels after shape validation.
func (m *Matrix) entry(row, col int) *big.Int { return m.data[row*m.c+col] }

// Row returns a copy of row i. Panics on a bad index (programmer error).
func (m *Matrix) Row(i int) Vector {
	out := make(Vector, m.c)
	for j := 0; j < m.c; j++ {
		out[j] = new(big.Int).Set(m.entry(i, j))
	}

	return out
}

// Vectors returns copies of all rows.
func (m *Matrix) Vectors() []Vector {
	out := make([]Vector, m.r)
	for i := range out {
		out[i] = m.Row(i)
	}

	return out
}

// setRow overwrites row i with v (len(v) == Cols).
func (m *Matrix) setRow(i int, v Vector) {
	for j := 0; j < m.c; j++ {
		m.data[i*m.c+j].Set(v[j])
	}
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{r: m.r, c: m.c, data: make([]*big.Int, len(m.data))}
	for i, x := range m.data {
		out.data[i] = new(big.Int).Set(x)
	}

	return out
}

// Equal reports entrywise equality of two integer matrices.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i].Cmp(o.data[i]) != 0 {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(m.Row(i).String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
