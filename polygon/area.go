package polygon

import "math/big"

// SignedArea returns twice the signed area of the ring (the shoelace sum
// without the /2 division), widened through math/big so large board
// outlines cannot overflow. Positive means counter-clockwise winding
// (conventionally an outer boundary); negative means clockwise (a hole).
func SignedArea(p Path64) *big.Int {
	sum := big.NewInt(0)
	n := len(p)
	if n < 3 {
		return sum
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a := big.NewInt(p[i].X)
		b := big.NewInt(p[j].Y)
		c := big.NewInt(p[j].X)
		d := big.NewInt(p[i].Y)
		ab := new(big.Int).Mul(a, b)
		cd := new(big.Int).Mul(c, d)
		sum.Add(sum, ab.Sub(ab, cd))
	}
	return sum
}

// IsPositive reports whether the ring winds counter-clockwise.
func IsPositive(p Path64) bool { return SignedArea(p).Sign() > 0 }

// Reversed returns a copy of p with vertex order reversed (flips winding).
func Reversed(p Path64) Path64 {
	out := make(Path64, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}

// BoundingBox returns the axis-aligned bounding box of p.
func BoundingBox(p Path64) (minX, minY, maxX, maxY int64) {
	if len(p) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY, maxX, maxY = p[0].X, p[0].Y, p[0].X, p[0].Y
	for _, v := range p[1:] {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	return
}

// boxesOverlap reports whether two bounding boxes intersect (inclusive of
// touching edges, since a clearance check of 0 must still detect contact).
func boxesOverlap(p, q Path64) bool {
	p0, p1, p2, p3 := BoundingBox(p)
	q0, q1, q2, q3 := BoundingBox(q)
	return p0 <= q2 && q0 <= p2 && p1 <= q3 && q1 <= p3
}

// PointInPolygon reports whether pt lies inside p using the even-odd rule
// (ray casting). Points exactly on an edge are reported as inside, which
// matches the "touching counts as violation" convention clearance checks
// need.
func PointInPolygon(p Path64, pt Point64) bool {
	inside := false
	n := len(p)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := p[i], p[j]
		if onSegment(vi, vj, pt) {
			return true
		}
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) {
			// x-coordinate of the edge/scanline intersection, compared
			// without floating division: x = vi.X + (pt.Y-vi.Y)*(vj.X-vi.X)/(vj.Y-vi.Y)
			num := (pt.Y - vi.Y) * (vj.X - vi.X)
			den := vj.Y - vi.Y
			var xIntersect float64
			if den != 0 {
				xIntersect = float64(vi.X) + float64(num)/float64(den)
			}
			if float64(pt.X) < xIntersect {
				inside = !inside
			}
		}
	}
	return inside
}

func onSegment(a, b, p Point64) bool {
	if (p.X-a.X)*(b.Y-a.Y)-(p.Y-a.Y)*(b.X-a.X) != 0 {
		return false
	}
	if p.X < min64(a.X, b.X) || p.X > max64(a.X, b.X) {
		return false
	}
	if p.Y < min64(a.Y, b.Y) || p.Y > max64(a.Y, b.Y) {
		return false
	}
	return true
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
