package pathgen

import (
	"math"

	"github.com/boarddrc/drc/geometry"
)

// rotate rotates p around the origin by angle and rounds back to the
// nearest integer nanometre. This package's documented floating-point
// touchpoint for pad rotation (see geometry.Angle.Degrees).
func rotate(p geometry.Point, angle geometry.Angle) geometry.Point {
	if angle == 0 {
		return p
	}
	rad := angle.Degrees() * math.Pi / 180
	x, y := float64(p.X), float64(p.Y)
	cos, sin := math.Cos(rad), math.Sin(rad)
	return geometry.Point{
		X: geometry.Length(math.Round(x*cos - y*sin)),
		Y: geometry.Length(math.Round(x*sin + y*cos)),
	}
}

// place rotates a pad-local point and translates it to the pad's board
// position.
func place(local geometry.Point, position geometry.Point, rotation geometry.Angle) geometry.Point {
	r := rotate(local, rotation)
	return geometry.Point{X: position.X + r.X, Y: position.Y + r.Y}
}
