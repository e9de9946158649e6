// Package polygon implements planar boolean operations — union, intersect,
// difference, and Minkowski disc offset — over sets of closed integer
// polygons, plus the tree-flattening helpers that turn a nested result (an
// outer boundary containing holes containing islands) back into the flat or
// signed path lists the rest of the module consumes.
//
// Vocabulary (Point64, Path64, Paths64, ClipType, FillRule, JoinType,
// EndType, OffsetOptions) follows the Clipper2 Go port referenced during
// this package's design; the clipping algorithm itself is a from-scratch
// Greiner–Hormann-style implementation sized for this module's needs (see
// DESIGN.md), not a transcription of that reference.
//
// Segment-intersection parameterization during clipping is computed in
// float64 and the result snapped to the nearest integer nanometre; this is
// the module's second bounded floating-point touchpoint (the first is
// path.FlattenArcs's atan2 call). Every caller already operates within
// max_arc_tolerance, so this snapping does not introduce error beyond what
// arc flattening already accepted.
package polygon
