package geometry

import "math/big"

// Point is a location in the board's nanometre coordinate system.
type Point struct {
	X, Y Length
}

// Add returns p+o.
func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// Sub returns p-o.
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }

// Scale multiplies both coordinates by an integer factor, used for the
// scaling-invariance testable property (spec.md §8 property 4).
func (p Point) Scale(k int64) Point { return Point{p.X.Scale(k), p.Y.Scale(k)} }

// Equal reports exact coordinate equality (integer coordinates compare exactly).
func (p Point) Equal(o Point) bool { return p.X == o.X && p.Y == o.Y }

// DistanceSquared returns |p-o|² widened through math/big to stay exact for
// the largest differences a board's coordinate range can produce; this is
// the one arithmetic site in the module where a Length product could
// overflow an int64 lane (two ~3.3m-range deltas squared and summed), so it
// is promoted rather than silently wrapped.
func (p Point) DistanceSquared(o Point) *big.Int {
	dx := big.NewInt(int64(p.X - o.X))
	dy := big.NewInt(int64(p.Y - o.Y))
	dx.Mul(dx, dx)
	dy.Mul(dy, dy)
	return dx.Add(dx, dy)
}

// Cross returns the z-component of (p × o) as the cross product of the two
// points treated as vectors from the origin, widened to avoid overflow.
// Used throughout polygon winding/area computations.
func (p Point) Cross(o Point) *big.Int {
	a := big.NewInt(int64(p.X))
	b := big.NewInt(int64(o.Y))
	c := big.NewInt(int64(p.Y))
	d := big.NewInt(int64(o.X))
	ab := new(big.Int).Mul(a, b)
	cd := new(big.Int).Mul(c, d)
	return ab.Sub(ab, cd)
}
