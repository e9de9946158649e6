package pathgen

import (
	"github.com/boarddrc/drc/board"
	"github.com/boarddrc/drc/geometry"
	"github.com/boarddrc/drc/path"
	"github.com/boarddrc/drc/polygon"
)

// NetLine converts a board.NetLine into an obround polygon between its
// endpoints, widened by an optional outward offset (spec.md §4.D). The
// net line's own copper layer is the caller's concern — this generator
// only produces geometry, the engine decides whether the line's Layer
// matches the layer being queried.
func NetLine(nl *board.NetLine, offset geometry.Length, tol geometry.UnsignedLength) (polygon.Set, error) {
	width, err := geometry.NewPositiveLength(nl.Width.Length() + 2*offset)
	if err != nil {
		return polygon.Set{}, err
	}
	p, err := path.New([]path.Vertex{{Position: nl.Start}, {Position: nl.End}})
	if err != nil {
		return polygon.Set{}, err
	}
	return polygon.Set{Paths: strokeToRings(p, width, tol)}, nil
}
