package pathgen

import (
	"github.com/boarddrc/drc/board"
	"github.com/boarddrc/drc/geometry"
	"github.com/boarddrc/drc/layer"
	"github.com/boarddrc/drc/polygon"
)

// Via converts a board.Via into its polygon representation on the given
// layer. On a copper layer the result is a disc of the via's outer radius
// (the drilled centre is not subtracted — copper covers the whole annular
// disc, spec.md §4.D). On a stop-mask layer the disc additionally grows by
// the via's stop-mask offset, if set.
func Via(v *board.Via, l layer.Layer, offset geometry.Length, tol geometry.UnsignedLength) polygon.Set {
	radius := v.OuterSize.Length() / 2
	if l.IsStopMask() && v.StopMaskOffset != nil {
		radius += *v.StopMaskOffset
	}
	radius += offset

	ring := polygon.CircleRing(polygon.FromPoint(v.Position), radius, tol)
	return polygon.Set{Paths: polygon.Paths64{ring}}
}
