package polygon

import "github.com/boarddrc/drc/geometry"

// CircleRing approximates a circle of the given radius (nanometres) around
// center with a polygon fine enough to keep the chord error within tol —
// the public entry point pathgen uses for vias, pad holes, and board
// holes, reusing the same subdivision bound Offset's vertex discs do.
func CircleRing(center Point64, radius geometry.Length, tol geometry.UnsignedLength) Path64 {
	t := int64(tol.Length())
	if t <= 0 {
		t = 1
	}
	return discPolygon(center, int64(radius), geometry.Length(t))
}
