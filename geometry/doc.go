// Package geometry provides the fixed-point spatial primitives every other
// package in this module builds on: Length, Angle, Point, Ratio, and the
// validated UnsignedLength/PositiveLength newtypes.
//
// All spatial reasoning downstream of this package is done in integer
// nanometres. Comparisons, additions, area and cross-product computations
// in this package stay in fixed-point integer arithmetic, widened through
// math/big to avoid overflow rather than rounded through float64. Three
// downstream packages each document one bounded floating-point
// touchpoint: path.FlattenArcs's atan2 (recovering a direction from a
// two-point vector), polygon's segment-intersection parameterization
// during clipping (snapped back to integer nanometres), and pathgen's
// pad-rotation transform (rotating a pad's local geometry by Angle.Degrees
// before translating it onto the board).
package geometry
