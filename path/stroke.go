package path

import (
	"math"

	"github.com/boarddrc/drc/geometry"
)

// Ring is a closed polyline (first point implicitly connects back to the
// last). Kept as a plain point slice here so the path package has no
// dependency on the polygon package's richer Path64/winding types; pathgen
// and polygon convert Ring values into their own representation.
type Ring []geometry.Point

// ToOutlineStrokes returns one closed Ring per straight or arc segment of p,
// each the Minkowski sum of that segment with a disc of radius width/2
// (an obround for a straight segment, a washer slice for an arc segment),
// approximated within tol. Per spec.md §4.B, overlap between adjacent
// segments is preserved; callers union the result if a single merged area
// is required.
func ToOutlineStrokes(p Path, width geometry.PositiveLength, tol geometry.UnsignedLength) []Ring {
	radius := float64(width.Length()) / 2

	rings := make([]Ring, 0, p.SegmentCount())
	for i := 0; i < len(p.Vertices)-1; i++ {
		start := p.Vertices[i].Position
		end := p.Vertices[i+1].Position
		sweep := p.Vertices[i].ArcSweep

		if start.Equal(end) {
			continue
		}

		if sweep.IsStraight() {
			rings = append(rings, strokeStraight(start, end, radius, tol))
		} else {
			rings = append(rings, strokeArc(start, end, sweep, radius, tol))
		}
	}
	return rings
}

// strokeStraight builds an obround: a rectangle the width of the segment
// flanked by semicircular caps at each end, approximated to tol. atan2 is
// the module's documented floating-point touchpoint (spec.md §4.A),
// used here to recover the segment's direction.
func strokeStraight(start, end geometry.Point, radius float64, tol geometry.UnsignedLength) Ring {
	dx := float64(end.X - start.X)
	dy := float64(end.Y - start.Y)
	angle := math.Atan2(dy, dx)

	segments := capSegmentCount(radius, float64(tol.Length()))

	ring := make(Ring, 0, segments*2+2)
	// Right side cap (around start, sweeping from angle+90° to angle+270°)
	ring = appendCap(ring, start, angle+math.Pi/2, math.Pi, radius, segments)
	// Left side cap (around end, sweeping onward by another half turn)
	ring = appendCap(ring, end, angle-math.Pi/2, math.Pi, radius, segments)
	return ring
}

// strokeArc builds a washer-slice: the arc segment's centreline offset
// outward and inward by radius, joined at both ends by a cap, approximated
// to tol.
func strokeArc(start, end geometry.Point, sweep geometry.Angle, radius float64, tol geometry.UnsignedLength) Ring {
	center, arcRadius := arcCenterAndRadius(start, end, sweep)
	if arcRadius <= 0 {
		return strokeStraight(start, end, radius, tol)
	}

	startAngle := math.Atan2(float64(start.Y-center.Y), float64(start.X-center.X))
	sweepRad := float64(sweep) / 1000.0 * math.Pi / 180.0
	n := subdivisionCount(arcRadius, sweepRad, float64(tol.Length()))

	outer := arcRadius + radius
	inner := arcRadius - radius
	if inner < 0 {
		inner = 0
	}

	ring := make(Ring, 0, 2*(n+1)+2*capSegmentCount(radius, float64(tol.Length())))
	for i := 0; i <= n; i++ {
		a := startAngle + sweepRad*float64(i)/float64(n)
		ring = append(ring, pointOnCircle(center, outer, a))
	}
	capSegs := capSegmentCount(radius, float64(tol.Length()))
	endAngle := startAngle + sweepRad
	ring = appendCap(ring, pointOnCircle(center, arcRadius, endAngle), endAngle, math.Pi, radius, capSegs)
	for i := n; i >= 0; i-- {
		a := startAngle + sweepRad*float64(i)/float64(n)
		ring = append(ring, pointOnCircle(center, inner, a))
	}
	ring = appendCap(ring, pointOnCircle(center, arcRadius, startAngle), startAngle+math.Pi, math.Pi, radius, capSegs)
	return ring
}

func pointOnCircle(center geometry.Point, radius, angle float64) geometry.Point {
	return geometry.Point{
		X: geometry.Length(round(float64(center.X) + radius*math.Cos(angle))),
		Y: geometry.Length(round(float64(center.Y) + radius*math.Sin(angle))),
	}
}

func appendCap(ring Ring, center geometry.Point, startAngle, sweep, radius float64, segments int) Ring {
	for i := 0; i <= segments; i++ {
		a := startAngle + sweep*float64(i)/float64(segments)
		ring = append(ring, pointOnCircle(center, radius, a))
	}
	return ring
}

// capSegmentCount picks the subdivision count for a semicircular cap of the
// given radius so its chord error stays within tol.
func capSegmentCount(radius, tol float64) int {
	return subdivisionCount(radius, math.Pi, tol)
}
