// Package pathgen implements the BoardClipperPathGenerator: one function
// per board object kind, converting that object into a polygon.Set on a
// requested layer with an optional outward offset (spec.md §4.D).
//
// Every generator is parameterized over the layer and max-arc-tolerance it
// needs rather than reading either off shared mutable state, per spec.md
// §9's guidance to lift view-model-style context onto explicit parameters.
package pathgen

import (
	"github.com/boarddrc/drc/geometry"
	"github.com/boarddrc/drc/path"
	"github.com/boarddrc/drc/polygon"
)

// flattenToRing flattens a Path's arcs and converts the result to a
// polygon.Path64 ring.
func flattenToRing(p path.Path, tol geometry.UnsignedLength) polygon.Path64 {
	pts := path.FlattenArcs(p, tol)
	ring := make(polygon.Path64, len(pts))
	for i, pt := range pts {
		ring[i] = polygon.FromPoint(pt)
	}
	return ring
}

// strokeToRings outline-strokes a Path at the given width and converts
// every resulting Ring to a polygon.Path64.
func strokeToRings(p path.Path, width geometry.PositiveLength, tol geometry.UnsignedLength) polygon.Paths64 {
	rings := path.ToOutlineStrokes(p, width, tol)
	out := make(polygon.Paths64, len(rings))
	for i, r := range rings {
		ring := make(polygon.Path64, len(r))
		for j, pt := range r {
			ring[j] = polygon.FromPoint(pt)
		}
		out[i] = ring
	}
	return out
}
