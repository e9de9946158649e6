package pathgen

import (
	"github.com/boarddrc/drc/board"
	"github.com/boarddrc/drc/geometry"
	"github.com/boarddrc/drc/layer"
	"github.com/boarddrc/drc/polygon"
)

// Pad converts one layer's PadGeometry into a polygon.Set (spec.md §4.D):
// RoundedRect and RoundedOctagon are generated from width/height/corner
// ratio, Stroke is outlined as an obround of its path, Custom is the
// literal outline.
func Pad(pad *board.FootprintPad, l layer.Layer, offset geometry.Length, tol geometry.UnsignedLength) (polygon.Set, error) {
	geom, ok := pad.Geometries[l]
	if !ok {
		return polygon.Empty(polygon.NonZero), nil
	}

	switch geom.Shape {
	case board.PadStroke:
		width, err := geometry.NewPositiveLength(geom.Width.Length() + 2*offset)
		if err != nil {
			return polygon.Set{}, err
		}
		return polygon.Set{Paths: strokeToRings(geom.StrokePath, width, tol)}, nil

	case board.PadCustom:
		ring := flattenToRing(geom.CustomOutline, tol)
		set := polygon.Set{Paths: polygon.Paths64{ring}}
		if offset != 0 {
			set = polygon.Offset(set, offset, polygon.OffsetOptions{ArcTolerance: tol})
		}
		return set, nil

	case board.PadRoundedOctagon:
		return roundedOctagonRing(pad, geom, offset, tol), nil

	default: // board.PadRoundedRect
		return roundedRectRing(pad, geom, offset, tol), nil
	}
}

// cornerRadius computes the pad's corner radius per spec.md §4.D:
// corner_radius_ratio × min(width, height) / 2.
func cornerRadius(geom board.PadGeometry) geometry.Length {
	minSide := geom.Width.Length()
	if geom.Height.Length() < minSide {
		minSide = geom.Height.Length()
	}
	return geom.CornerRadiusRatio.Ratio().Mul(minSide) / 2
}

func roundedRectRing(pad *board.FootprintPad, geom board.PadGeometry, offset geometry.Length, tol geometry.UnsignedLength) polygon.Set {
	r := cornerRadius(geom)
	hw := geom.Width.Length()/2 - r
	hh := geom.Height.Length()/2 - r
	if hw < 0 {
		hw = 0
	}
	if hh < 0 {
		hh = 0
	}

	corners := []geometry.Point{
		{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh},
	}
	ring := make(polygon.Path64, len(corners))
	for i, c := range corners {
		ring[i] = polygon.FromPoint(place(c, pad.Position, pad.Rotation))
	}

	set := polygon.Set{Paths: polygon.Paths64{ring}}
	return polygon.Offset(set, r+offset, polygon.OffsetOptions{Join: polygon.JoinRound, ArcTolerance: tol})
}

func roundedOctagonRing(pad *board.FootprintPad, geom board.PadGeometry, offset geometry.Length, tol geometry.UnsignedLength) polygon.Set {
	hw := geom.Width.Length() / 2
	hh := geom.Height.Length() / 2
	c := cornerRadius(geom)
	if c > hw {
		c = hw
	}
	if c > hh {
		c = hh
	}

	local := []geometry.Point{
		{X: -hw + c, Y: -hh}, {X: hw - c, Y: -hh},
		{X: hw, Y: -hh + c}, {X: hw, Y: hh - c},
		{X: hw - c, Y: hh}, {X: -hw + c, Y: hh},
		{X: -hw, Y: hh - c}, {X: -hw, Y: -hh + c},
	}
	ring := make(polygon.Path64, len(local))
	for i, p := range local {
		ring[i] = polygon.FromPoint(place(p, pad.Position, pad.Rotation))
	}

	set := polygon.Set{Paths: polygon.Paths64{ring}}
	if offset != 0 {
		set = polygon.Offset(set, offset, polygon.OffsetOptions{ArcTolerance: tol})
	}
	return set
}
