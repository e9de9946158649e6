package path

import (
	"math"

	"github.com/boarddrc/drc/geometry"
)

// FlattenArcs replaces every arc edge of p with a polyline whose
// perpendicular chord deviation from the true arc never exceeds tol. The
// returned slice of points is the flattened outline vertex-by-vertex
// (straight edges pass through as their two endpoints; arc edges expand
// into the subdivided chord points). max_arc_tolerance (spec.md §4.A) is the
// caller's usual choice for tol, but FlattenArcs takes it as a parameter so
// the engine's single constant stays the only place it is hard-coded.
//
// Tie-break: a 180° sweep places the arc's centre on the left of the
// directed edge from start to end, matching spec.md §4.B.
func FlattenArcs(p Path, tol geometry.UnsignedLength) []geometry.Point {
	if len(p.Vertices) == 0 {
		return nil
	}

	out := make([]geometry.Point, 0, len(p.Vertices))
	out = append(out, p.Vertices[0].Position)

	for i := 0; i < len(p.Vertices)-1; i++ {
		start := p.Vertices[i].Position
		end := p.Vertices[i+1].Position
		sweep := p.Vertices[i].ArcSweep

		if sweep.IsStraight() || start.Equal(end) {
			out = append(out, end)
			continue
		}

		out = append(out, flattenArc(start, end, sweep, tol)...)
	}

	return out
}

// flattenArc subdivides one arc edge into chord points (excluding the start
// point, which the caller already has) down to end inclusive.
func flattenArc(start, end geometry.Point, sweep geometry.Angle, tol geometry.UnsignedLength) []geometry.Point {
	center, radius := arcCenterAndRadius(start, end, sweep)
	if radius <= 0 {
		return []geometry.Point{end}
	}

	startAngle := math.Atan2(float64(start.Y-center.Y), float64(start.X-center.X))
	sweepRad := float64(sweep) / 1000.0 * math.Pi / 180.0

	n := subdivisionCount(radius, sweepRad, float64(tol.Length()))
	points := make([]geometry.Point, 0, n)
	for i := 1; i <= n; i++ {
		frac := float64(i) / float64(n)
		angle := startAngle + sweepRad*frac
		x := float64(center.X) + radius*math.Cos(angle)
		y := float64(center.Y) + radius*math.Sin(angle)
		points = append(points, geometry.Point{X: geometry.Length(round(x)), Y: geometry.Length(round(y))})
	}
	// Force exact end point to avoid accumulated floating error reopening a
	// path that should close exactly.
	points[len(points)-1] = end
	return points
}

// subdivisionCount returns the minimum segment count so the chord error for
// a circular arc of the given radius and sweep (radians) stays within tol
// nanometres. Chord error for one subdivision step of angle θ is
// r·(1 - cos(θ/2)); we solve for the largest θ satisfying the bound and
// divide the full sweep by it, rounding up.
func subdivisionCount(radius, sweepRad, tol float64) int {
	if tol <= 0 {
		tol = 1
	}
	absSweep := math.Abs(sweepRad)
	if absSweep == 0 {
		return 1
	}
	// theta = 2*acos(1 - tol/r), clamped so 1-tol/r stays in [-1,1].
	ratio := 1 - tol/radius
	if ratio < -1 {
		ratio = -1
	}
	if ratio > 1 {
		ratio = 1
	}
	theta := 2 * math.Acos(ratio)
	if theta <= 0 || math.IsNaN(theta) {
		theta = absSweep
	}
	n := int(math.Ceil(absSweep / theta))
	if n < 1 {
		n = 1
	}
	return n
}

// arcCenterAndRadius recovers the circle centre and radius implied by a
// start point, end point, and signed sweep angle. This is the one geometric
// construction in the module requiring trigonometry beyond atan2, because
// the input is the KiCad-style (start, end, sweep) encoding rather than a
// (centre, radius, start-angle, end-angle) encoding.
func arcCenterAndRadius(start, end geometry.Point, sweep geometry.Angle) (geometry.Point, float64) {
	dx := float64(end.X - start.X)
	dy := float64(end.Y - start.Y)
	chord := math.Hypot(dx, dy)
	if chord == 0 {
		return start, 0
	}

	sweepRad := float64(sweep) / 1000.0 * math.Pi / 180.0
	// radius from chord length and included angle: chord = 2r sin(|θ|/2)
	halfSweep := math.Abs(sweepRad) / 2
	sinHalf := math.Sin(halfSweep)
	if sinHalf == 0 {
		return start, 0
	}
	radius := chord / (2 * sinHalf)

	// midpoint of the chord
	mx, my := (float64(start.X)+float64(end.X))/2, (float64(start.Y)+float64(end.Y))/2
	// distance from chord midpoint to centre
	h := math.Sqrt(math.Max(radius*radius-(chord/2)*(chord/2), 0))

	// unit perpendicular to the chord; sign picks which side the centre sits
	// on. Positive sweep (counter-clockwise) and sweep < 180° puts the
	// centre on the right of the directed start->end edge; the 180° tie
	// break (spec.md §4.B) puts it on the left.
	ux, uy := -dy/chord, dx/chord
	sign := 1.0
	if sweep > 0 {
		sign = -1.0
	}
	if sweep == geometry.FullTurn/2 || sweep == -geometry.FullTurn/2 {
		sign = -1.0
	}

	cx := mx + sign*h*ux
	cy := my + sign*h*uy

	return geometry.Point{X: geometry.Length(round(cx)), Y: geometry.Length(round(cy))}, radius
}

func round(f float64) float64 {
	if f >= 0 {
		return math.Floor(f + 0.5)
	}
	return math.Ceil(f - 0.5)
}
