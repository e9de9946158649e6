// Package path models an ordered vertex list with per-vertex arc sweep, and
// turns it into line-segment approximations and stroked outlines bounded by
// a caller-supplied maximum arc tolerance.
//
// A Path is closed when its first and last vertex share the same position.
// The arc sweep stored at vertex k describes the edge from vertex k to
// vertex k+1; a zero sweep is a straight edge. FlattenArcs replaces every
// arc edge with a polyline whose perpendicular chord deviation from the true
// arc never exceeds the tolerance. ToOutlineStrokes turns a stroked path
// into the closed rings a downstream polygon union needs.
package path
