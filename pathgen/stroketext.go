package pathgen

import (
	"github.com/boarddrc/drc/board"
	"github.com/boarddrc/drc/geometry"
	"github.com/boarddrc/drc/polygon"
)

// StrokeText outlines every character stroke of st at its stroke width
// (plus offset), unioned into a single polygon.Set (spec.md §4.D).
func StrokeText(st *board.StrokeText, offset geometry.Length, tol geometry.UnsignedLength) (polygon.Set, error) {
	width, err := geometry.NewPositiveLength(st.StrokeWidth.Length() + 2*offset)
	if err != nil {
		return polygon.Set{}, err
	}

	var rings polygon.Paths64
	for _, p := range st.CharacterPaths {
		rings = append(rings, strokeToRings(p, width, tol)...)
	}
	return polygon.Union(polygon.Set{Paths: rings}), nil
}
