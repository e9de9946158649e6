package polygon

import (
	"math"

	"github.com/boarddrc/drc/geometry"
)

// Offset computes the Minkowski sum of every ring in a with a disc of
// signed radius delta (spec.md §4.C). Positive delta dilates outward via
// the edge-band-plus-vertex-disc identity for a polygon ⊕ disc Minkowski
// sum — exact up to opts.ArcTolerance for any input ring, convex or
// concave. Negative delta erodes inward via erode, which reduces to the
// same dilate identity by complementation (see erode's doc comment) and
// is therefore exact on concave and reflex-vertex input too, resolving
// spec.md §9's open question on BoardOutline erosion without a separate
// approximate construction.
func Offset(a Set, delta geometry.Length, opts OffsetOptions) Set {
	if delta == 0 {
		return a
	}
	if delta > 0 {
		return dilate(a, delta, opts)
	}
	return erode(a, -delta, opts)
}

func dilate(a Set, delta geometry.Length, opts OffsetOptions) Set {
	var pieces Paths64
	tol := opts.ArcTolerance.Length()
	if tol <= 0 {
		tol = geometry.Length(5000)
	}

	for _, ring := range a.Paths {
		if len(ring) < 2 {
			continue
		}
		pieces = append(pieces, ring)
		n := len(ring)
		for i := 0; i < n; i++ {
			p1, p2 := ring[i], ring[(i+1)%n]
			if band := edgeBand(p1, p2, int64(delta)); band != nil {
				pieces = append(pieces, band)
			}
		}
		for _, v := range ring {
			pieces = append(pieces, discPolygon(v, int64(delta), tol))
		}
	}

	return Set{Paths: unionRings(pieces), Fill: a.Fill}
}

// edgeBand returns the rectangle swept by segment (p1,p2) thickened by
// radius on both sides along its perpendicular. Combined with the disc at
// every vertex, the union of all edge bands, vertex discs, and the
// original ring equals the polygon's Minkowski sum with a disc of that
// radius.
func edgeBand(p1, p2 Point64, radius int64) Path64 {
	dx, dy := float64(p2.X-p1.X), float64(p2.Y-p1.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	nx, ny := -dy/length*float64(radius), dx/length*float64(radius)

	return Path64{
		{X: p1.X + int64(math.Round(nx)), Y: p1.Y + int64(math.Round(ny))},
		{X: p2.X + int64(math.Round(nx)), Y: p2.Y + int64(math.Round(ny))},
		{X: p2.X - int64(math.Round(nx)), Y: p2.Y - int64(math.Round(ny))},
		{X: p1.X - int64(math.Round(nx)), Y: p1.Y - int64(math.Round(ny))},
	}
}

// discPolygon approximates a circle of the given radius around center,
// subdivided finely enough to keep the chord error within tol.
func discPolygon(center Point64, radius int64, tol geometry.Length) Path64 {
	if radius <= 0 {
		return nil
	}
	n := offsetSubdivisionCount(float64(radius), float64(tol))
	ring := make(Path64, 0, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		ring = append(ring, Point64{
			X: center.X + int64(math.Round(float64(radius)*math.Cos(a))),
			Y: center.Y + int64(math.Round(float64(radius)*math.Sin(a))),
		})
	}
	return ring
}

func offsetSubdivisionCount(radius, tol float64) int {
	if tol <= 0 {
		tol = 1
	}
	ratio := 1 - tol/radius
	if ratio < -1 {
		ratio = -1
	}
	if ratio > 1 {
		ratio = 1
	}
	theta := 2 * math.Acos(ratio)
	if theta <= 0 || math.IsNaN(theta) {
		theta = math.Pi / 4
	}
	n := int(math.Ceil(2 * math.Pi / theta))
	if n < 8 {
		n = 8
	}
	return n
}

// erode computes the Minkowski erosion of a by a disc of the given
// (positive) radius via complementation: erode(A, r) = A − dilate(Aᶜ, r),
// where Aᶜ is taken within a's bounding box padded well past r. dilate is
// exact for any ring, so the band it grows inward from each hole boundary
// of the complement — including around a reflex vertex or into a notch —
// is exact too, unlike a per-vertex miter shift, which only re-intersects
// adjacent edge lines and has no notion of a ring folding back on itself.
// This is the one extra boolean op (one Subtract, one dilate, one more
// Subtract) erosion costs over a direct miter construction; board outlines
// are small enough per run that the cost is immaterial.
func erode(a Set, radius geometry.Length, opts OffsetOptions) Set {
	if a.IsEmpty() || radius <= 0 {
		return a
	}

	pad := int64(radius) + 1000
	minX, minY, maxX, maxY := boundsOfPaths(a.Paths)
	box := Path64{
		{X: minX - pad, Y: minY - pad},
		{X: maxX + pad, Y: minY - pad},
		{X: maxX + pad, Y: maxY + pad},
		{X: minX - pad, Y: maxY + pad},
	}

	complement := Subtract(Set{Paths: Paths64{box}, Fill: a.Fill}, a)
	grown := dilate(complement, radius, opts)
	return Subtract(a, grown)
}

// boundsOfPaths returns the axis-aligned bounding box enclosing every ring
// in paths.
func boundsOfPaths(paths Paths64) (minX, minY, maxX, maxY int64) {
	first := true
	for _, p := range paths {
		x0, y0, x1, y1 := BoundingBox(p)
		if first {
			minX, minY, maxX, maxY = x0, y0, x1, y1
			first = false
			continue
		}
		minX, minY = min64(minX, x0), min64(minY, y0)
		maxX, maxY = max64(maxX, x1), max64(maxY, y1)
	}
	return
}
