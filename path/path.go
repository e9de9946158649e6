package path

import (
	"errors"
	"fmt"

	"github.com/boarddrc/drc/geometry"
)

// ErrArcSweepOutOfRange indicates a vertex's ArcSweep fell outside the
// invariant half-open interval (-360°, 360°) exclusive.
var ErrArcSweepOutOfRange = errors.New("path: arc sweep must lie in (-360°, 360°)")

// Vertex is one point of a Path plus the sweep angle of the arc leading to
// the next vertex (zero for a straight edge).
type Vertex struct {
	Position Point
	ArcSweep geometry.Angle
}

// Point is a re-exported alias kept local to this package so Path literals
// read naturally without importing geometry at every call site.
type Point = geometry.Point

// Path is an ordered sequence of vertices. Edge k runs from Vertices[k] to
// Vertices[k+1], bent by Vertices[k].ArcSweep.
type Path struct {
	Vertices []Vertex
}

// New validates and constructs a Path from vertices.
func New(vertices []Vertex) (Path, error) {
	for i, v := range vertices {
		if v.ArcSweep <= -geometry.FullTurn || v.ArcSweep >= geometry.FullTurn {
			return Path{}, fmt.Errorf("path: vertex %d: %w (got %d)", i, ErrArcSweepOutOfRange, v.ArcSweep)
		}
	}
	return Path{Vertices: vertices}, nil
}

// IsClosed reports whether the first and last vertex positions coincide.
// A path with fewer than two vertices is never closed.
func (p Path) IsClosed() bool {
	if len(p.Vertices) < 2 {
		return false
	}
	first := p.Vertices[0].Position
	last := p.Vertices[len(p.Vertices)-1].Position
	return first.Equal(last)
}

// SegmentCount returns the number of edges in the path (vertices-1 for an
// open path, vertices-1 for a closed path too, since the closing vertex
// duplicates the first position rather than adding a new edge index).
func (p Path) SegmentCount() int {
	if len(p.Vertices) == 0 {
		return 0
	}
	return len(p.Vertices) - 1
}

// Classify reports the slot-shape classification used by spec.md §4.G check
// 10 (AllowedNpthSlots/AllowedPthSlots): a 1-vertex path is a round drill, a
// 2-vertex straight path is a single-segment straight slot, an arc edge
// anywhere makes it a curved slot, and ≥3 straight vertices make it a
// multi-segment straight slot.
type Classification int

const (
	// ClassificationRoundDrill is a single-point path (no slot at all).
	ClassificationRoundDrill Classification = iota
	// ClassificationSingleSegmentStraight is a straight 2-vertex slot.
	ClassificationSingleSegmentStraight
	// ClassificationMultiSegmentStraight is a straight slot with ≥3 vertices.
	ClassificationMultiSegmentStraight
	// ClassificationCurved is a slot containing at least one arc edge.
	ClassificationCurved
)

// Classify computes the Classification of p per the rules above.
func (p Path) Classify() Classification {
	if len(p.Vertices) <= 1 {
		return ClassificationRoundDrill
	}
	for _, v := range p.Vertices {
		if !v.ArcSweep.IsStraight() {
			return ClassificationCurved
		}
	}
	if len(p.Vertices) == 2 {
		return ClassificationSingleSegmentStraight
	}
	return ClassificationMultiSegmentStraight
}
