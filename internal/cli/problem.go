// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvcone/boundary"
)

// Coefficient is an arbitrary-precision integer read from YAML. Plain
// integers of any size and quoted decimal strings are both accepted.
type Coefficient struct {
	big.Int
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Coefficient) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: coefficient must be a scalar", value.Line)
	}
	if _, ok := c.SetString(value.Value, 10); !ok {
		return fmt.Errorf("line %d: %q is not a base-10 integer", value.Line, value.Value)
	}

	return nil
}

// Rows is a list of coefficient rows.
type Rows [][]Coefficient

// array flattens r into a boundary array; nil for no rows.
func (r Rows) array(name string) (*boundary.Array, error) {
	if len(r) == 0 {
		return nil, nil
	}
	cols := len(r[0])
	data := make([]string, 0, len(r)*cols)
	for i, row := range r {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d", name, i, len(row), cols)
		}
		for j := range row {
			data = append(data, row[j].String())
		}
	}

	return boundary.NewArray(len(r), cols, data...), nil
}

// Problem is a cone described in a YAML file.
//
//	dim: 2
//	inequalities:
//	  - [1, 0]
//	  - [0, 1]
//	congruences:
//	  - [1, 1, 2]
type Problem struct {
	Dim              int           `yaml:"dim"`
	Generators       Rows          `yaml:"generators"`
	Subspace         Rows          `yaml:"subspace"`
	Inequalities     Rows          `yaml:"inequalities"`
	Equations        Rows          `yaml:"equations"`
	ExcludedFaces    Rows          `yaml:"excluded_faces"`
	Lattice          Rows          `yaml:"lattice"`
	Congruences      Rows          `yaml:"congruences"`
	Dehomogenization []Coefficient `yaml:"dehomogenization"`
}

// Request converts p into a surface request.
func (p *Problem) Request() (boundary.ConeRequest, error) {
	req := boundary.ConeRequest{Dim: p.Dim}
	fields := []struct {
		name string
		rows Rows
		dst  **boundary.Array
	}{
		{"generators", p.Generators, &req.Generators},
		{"subspace", p.Subspace, &req.Subspace},
		{"inequalities", p.Inequalities, &req.Inequalities},
		{"equations", p.Equations, &req.Equations},
		{"excluded_faces", p.ExcludedFaces, &req.ExcludedFaces},
		{"lattice", p.Lattice, &req.Lattice},
		{"congruences", p.Congruences, &req.Congruences},
	}
	if len(p.Dehomogenization) > 0 {
		fields = append(fields, struct {
			name string
			rows Rows
			dst  **boundary.Array
		}{"dehomogenization", Rows{p.Dehomogenization}, &req.Dehomogenization})
	}
	var errs []error
	for _, f := range fields {
		a, err := f.rows.array(f.name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*f.dst = a
	}

	return req, errors.Join(errs...)
}

// MatrixProblem is a rational matrix described in a YAML file.
//
//	rows:
//	  - [2, 4]
//	  - [-6, 6]
//	den: 1
type MatrixProblem struct {
	Rows Rows         `yaml:"rows"`
	Den  *Coefficient `yaml:"den"`
}

// Array converts m into a rational surface array.
func (m *MatrixProblem) Array() (*boundary.RationalArray, error) {
	a, err := m.Rows.array("rows")
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, errors.New("rows: matrix is empty")
	}
	out := &boundary.RationalArray{Array: *a, Den: "1"}
	if m.Den != nil {
		out.Den = m.Den.String()
	}

	return out, nil
}

// loadYAML decodes the file at path into v, rejecting unknown keys.
func loadYAML(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open problem: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	return nil
}
