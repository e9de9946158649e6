package pathgen

import (
	"github.com/boarddrc/drc/board"
	"github.com/boarddrc/drc/polygon"
)

// Plane emits the fragments computed by the last RebuildPlanes call. In
// quick mode (or before the first rebuild) Fragments is empty and this
// returns an empty set, per spec.md §4.D.
func Plane(p *board.Plane) polygon.Set {
	if len(p.Fragments) == 0 {
		return polygon.Empty(polygon.NonZero)
	}
	rings := make(polygon.Paths64, len(p.Fragments))
	for i, frag := range p.Fragments {
		ring := make(polygon.Path64, len(frag))
		for j, pt := range frag {
			ring[j] = polygon.FromPoint(pt)
		}
		rings[i] = ring
	}
	return polygon.Set{Paths: rings}
}
