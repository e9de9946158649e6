package polygon

import "github.com/boarddrc/drc/geometry"

// Point64 is a polygon vertex with 64-bit integer nanometre coordinates.
type Point64 struct {
	X, Y int64
}

// FromPoint converts a geometry.Point into a Point64.
func FromPoint(p geometry.Point) Point64 { return Point64{X: int64(p.X), Y: int64(p.Y)} }

// ToPoint converts a Point64 back into a geometry.Point.
func (p Point64) ToPoint() geometry.Point {
	return geometry.Point{X: geometry.Length(p.X), Y: geometry.Length(p.Y)}
}

// Path64 is a single closed ring: an ordered sequence of vertices with an
// implicit edge from the last point back to the first.
type Path64 []Point64

// Paths64 is an unordered set of rings. A PolygonSet distinguishes positive
// (outer boundary) rings from negative (hole) rings only through signed
// area (see SignedArea); Paths64 itself carries no separate sign field.
type Paths64 []Path64

// FillRule selects how self-intersecting or overlapping paths determine
// their filled interior.
type FillRule uint8

const (
	// EvenOdd fills regions crossed an odd number of times by a ray from
	// outside.
	EvenOdd FillRule = iota
	// NonZero fills regions whose signed winding number is non-zero.
	NonZero
)

// ClipType names the boolean operation requested of Clip.
type ClipType uint8

const (
	// ClipUnion computes the union (OR) of subject and clip paths.
	ClipUnion ClipType = iota
	// ClipIntersection computes the intersection (AND).
	ClipIntersection
	// ClipDifference subtracts the clip paths from the subject paths.
	ClipDifference
)

// JoinType selects how offset corners are generated.
type JoinType uint8

const (
	// JoinRound approximates an offset corner with an arc (default for this
	// module — board copper clearances are all round-corner deltas).
	JoinRound JoinType = iota
	// JoinMiter extends the two adjacent edges to a sharp point.
	JoinMiter
)

// OffsetOptions configures Offset's corner and tolerance behavior.
type OffsetOptions struct {
	Join         JoinType
	ArcTolerance geometry.UnsignedLength
}

// Set is a polygon set paired with the fill rule used to interpret it. An
// empty Set is the unit for Union and the absorbing element for Intersect
// and Subtract (spec.md §4.C).
type Set struct {
	Paths Paths64
	Fill  FillRule
}

// Empty returns an empty polygon set under the given fill rule.
func Empty(fill FillRule) Set { return Set{Fill: fill} }

// IsEmpty reports whether the set has no rings.
func (s Set) IsEmpty() bool { return len(s.Paths) == 0 }
