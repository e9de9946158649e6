package pathgen

import (
	"github.com/boarddrc/drc/board"
	"github.com/boarddrc/drc/geometry"
	"github.com/boarddrc/drc/path"
	"github.com/boarddrc/drc/polygon"
)

// holePath converts any drilled-hole path (board.Hole or board.PadHole
// both share this shape) at (diameter + 2·offset), per spec.md §4.D. A
// 1-vertex path (round drill) has no segment to outline-stroke, so it is
// rendered directly as a disc.
func holePath(p path.Path, diameter geometry.PositiveLength, offset geometry.Length, tol geometry.UnsignedLength) (polygon.Set, error) {
	effectiveDiameter := diameter.Length() + 2*offset
	if len(p.Vertices) <= 1 {
		center := p.Vertices[0].Position
		ring := polygon.CircleRing(polygon.FromPoint(center), effectiveDiameter/2, tol)
		return polygon.Set{Paths: polygon.Paths64{ring}}, nil
	}

	width, err := geometry.NewPositiveLength(effectiveDiameter)
	if err != nil {
		return polygon.Set{}, err
	}
	rings := strokeToRings(p, width, tol)
	return polygon.Union(polygon.Set{Paths: rings}), nil
}

// Hole converts a board.Hole.
func Hole(h *board.Hole, offset geometry.Length, tol geometry.UnsignedLength) (polygon.Set, error) {
	return holePath(h.Path, h.Diameter, offset, tol)
}

// PadHole converts a board.PadHole.
func PadHole(h *board.PadHole, offset geometry.Length, tol geometry.UnsignedLength) (polygon.Set, error) {
	return holePath(h.Path, h.Diameter, offset, tol)
}
