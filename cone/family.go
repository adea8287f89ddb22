// SPDX-License-Identifier: MIT

package cone

import (
	"fmt"

	"github.com/katalvlaran/lvcone/exact"
)

// InputFamily names one kind of input row.
type InputFamily int

const (
	// InputGenerators are cone generators: the cone contains their
	// nonnegative combinations.
	InputGenerators InputFamily = iota
	// InputSubspace generators span a linear subspace added to the cone.
	InputSubspace
	// InputInequalities are rows a with a·x >= 0.
	InputInequalities
	// InputEquations are rows a with a·x = 0.
	InputEquations
	// InputExcludedFaces are inequalities a·x >= 0 whose faces a·x = 0 are
	// removed, making the region semiopen.
	InputExcludedFaces
	// InputCongruences are rows (a, m) with a·x ≡ 0 (mod m). They carry one
	// extra trailing column for the modulus.
	InputCongruences
	// InputDehomogenization is a single row δ; the polyhedron is the slice
	// δ·x = 1 of the cone and δ·x >= 0 holds on the cone.
	InputDehomogenization
	// InputLattice generators fix the sublattice against which integrality
	// is measured; the cone is cut down to their rational span.
	InputLattice

	numFamilies
)

var familyNames = [...]string{
	InputGenerators:       "generators",
	InputSubspace:         "subspace",
	InputInequalities:     "inequalities",
	InputEquations:        "equations",
	InputExcludedFaces:    "excluded_faces",
	InputCongruences:      "congruences",
	InputDehomogenization: "dehomogenization",
	InputLattice:          "lattice",
}

// String returns the snake_case family name.
func (f InputFamily) String() string {
	if f < 0 || f >= numFamilies {
		return fmt.Sprintf("InputFamily(%d)", int(f))
	}

	return familyNames[f]
}

// ParseFamily maps a snake_case name back to its family.
func ParseFamily(name string) (InputFamily, bool) {
	for f, n := range familyNames {
		if n == name {
			return InputFamily(f), true
		}
	}

	return 0, false
}

// Families lists every family in declaration order.
func Families() []InputFamily {
	out := make([]InputFamily, numFamilies)
	for i := range out {
		out[i] = InputFamily(i)
	}

	return out
}

// width returns the expected column count of family f in dimension d.
func (f InputFamily) width(d int) int {
	if f == InputCongruences {
		return d + 1
	}

	return d
}

// Inputs maps a family to its rational rows. A missing key means the family
// was not supplied; a present family with zero rows is treated the same way.
type Inputs map[InputFamily]*exact.Rational
