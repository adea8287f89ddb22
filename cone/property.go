// SPDX-License-Identifier: MIT

package cone

import (
	"fmt"
	"strings"
)

// Property tags one derived invariant of a model.
type Property int

const (
	ExtremeRays Property = iota
	SupportHyperplanes
	Equations
	Congruences
	Vertices
	MaximalSubspace
	HilbertBasis
	ModuleGenerators
	IntegerHullCone
	OriginalMonoidGenerators

	numProperties
)

var propertyNames = [...]string{
	ExtremeRays:              "extreme_rays",
	SupportHyperplanes:       "support_hyperplanes",
	Equations:                "equations",
	Congruences:              "congruences",
	Vertices:                 "vertices",
	MaximalSubspace:          "maximal_subspace",
	HilbertBasis:             "hilbert_basis",
	ModuleGenerators:         "module_generators",
	IntegerHullCone:          "integer_hull",
	OriginalMonoidGenerators: "original_monoid_generators",
}

func (p Property) String() string {
	if p < 0 || p >= numProperties {
		return fmt.Sprintf("Property(%d)", int(p))
	}

	return propertyNames[p]
}

// ParseProperty maps a snake_case name back to its property.
func ParseProperty(name string) (Property, bool) {
	for p, n := range propertyNames {
		if n == name {
			return Property(p), true
		}
	}

	return 0, false
}

func (p Property) valid() bool { return p >= 0 && p < numProperties }

// PropertySet is a bitmask of properties.
type PropertySet uint32

// Of builds a set from the given properties.
func Of(props ...Property) PropertySet {
	var s PropertySet
	for _, p := range props {
		s = s.With(p)
	}

	return s
}

// Has reports whether p is in s.
func (s PropertySet) Has(p Property) bool { return s&(1<<uint(p)) != 0 }

// With returns s ∪ {p}.
func (s PropertySet) With(p Property) PropertySet { return s | 1<<uint(p) }

// Union returns s ∪ o.
func (s PropertySet) Union(o PropertySet) PropertySet { return s | o }

// Contains reports whether every member of o is in s.
func (s PropertySet) Contains(o PropertySet) bool { return s&o == o }

// Slice lists the members in declaration order.
func (s PropertySet) Slice() []Property {
	var out []Property
	for p := Property(0); p < numProperties; p++ {
		if s.Has(p) {
			out = append(out, p)
		}
	}

	return out
}

func (s PropertySet) String() string {
	names := make([]string, 0, numProperties)
	for _, p := range s.Slice() {
		names = append(names, p.String())
	}

	return "{" + strings.Join(names, ",") + "}"
}

// Pass groups. Computing any member of a group computes the whole group.
var (
	geometryProps = Of(ExtremeRays, SupportHyperplanes, Equations, Vertices, MaximalSubspace)
	latticeProps  = Of(Congruences)
	hilbertProps  = Of(HilbertBasis, ModuleGenerators)
)
