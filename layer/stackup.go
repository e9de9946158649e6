package layer

import "github.com/boarddrc/drc/geometry"

// StackupLayer carries physical stack-up metadata attached to a copper
// Layer for reporting purposes only (SPEC_FULL §3): it feeds no check in
// this core (no thermal or impedance analysis — that stays a Non-goal).
type StackupLayer struct {
	Layer              Layer
	CopperWeightOunces geometry.Ratio
	DielectricAbove    geometry.UnsignedLength
}

// Stackup is an ordered collection of StackupLayer records, one per copper
// layer, indexed by Layer for O(1) metadata lookup during reporting.
type Stackup struct {
	byLayer map[Layer]StackupLayer
}

// NewStackup indexes the given layers by their Layer identity.
func NewStackup(layers []StackupLayer) Stackup {
	s := Stackup{byLayer: make(map[Layer]StackupLayer, len(layers))}
	for _, l := range layers {
		s.byLayer[l.Layer] = l
	}
	return s
}

// Lookup returns the stack-up metadata for l, if present.
func (s Stackup) Lookup(l Layer) (StackupLayer, bool) {
	sl, ok := s.byLayer[l]
	return sl, ok
}
