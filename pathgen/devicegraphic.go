package pathgen

import (
	"github.com/boarddrc/drc/board"
	"github.com/boarddrc/drc/geometry"
	"github.com/boarddrc/drc/layer"
	"github.com/boarddrc/drc/path"
	"github.com/boarddrc/drc/polygon"
)

// TransformPath maps a footprint-local path into board space under a
// device's placement transform, mirroring the X axis first (as worldPad
// does for pads) so a mirrored footprint's graphics land on the
// opposite side of the board.
func TransformPath(p path.Path, t board.Transform) path.Path {
	vertices := make([]path.Vertex, len(p.Vertices))
	for i, v := range p.Vertices {
		local := v.Position
		if t.Mirror {
			local.X = -local.X
		}
		sweep := v.ArcSweep
		if t.Mirror {
			sweep = -sweep
		}
		vertices[i] = path.Vertex{Position: place(local, t.Position, t.Rotation), ArcSweep: sweep}
	}
	// Negating ArcSweep preserves |ArcSweep| < geometry.FullTurn, so this
	// can't fail validation if p itself was valid.
	out, _ := path.New(vertices)
	return out
}

// EffectiveLayer returns the layer a footprint-local graphic ends up on
// once t is applied: unchanged unless t mirrors the device, in which
// case top/bottom layer pairs swap (layer.Layer.Mirror).
func EffectiveLayer(l layer.Layer, t board.Transform) layer.Layer {
	if t.Mirror {
		return l.Mirror()
	}
	return l
}

// DevicePolygon converts a footprint polygon into board space: a filled
// polygon becomes its flattened outline ring, a stroked one becomes the
// outline-stroke of its path at LineWidth.
func DevicePolygon(poly *board.Polygon, t board.Transform, tol geometry.UnsignedLength) (layer.Layer, polygon.Set, error) {
	transformed := TransformPath(poly.Path, t)
	l := EffectiveLayer(poly.Layer, t)
	if poly.Filled {
		ring := flattenToRing(transformed, tol)
		return l, polygon.Set{Paths: polygon.Paths64{ring}}, nil
	}
	width, err := geometry.NewPositiveLength(poly.LineWidth.Abs())
	if err != nil {
		return l, polygon.Set{}, err
	}
	return l, polygon.Set{Paths: strokeToRings(transformed, width, tol)}, nil
}

// DeviceCircle converts a footprint circle into board space.
func DeviceCircle(c *board.Circle, t board.Transform, tol geometry.UnsignedLength) (layer.Layer, polygon.Set) {
	center := c.Center
	if t.Mirror {
		center.X = -center.X
	}
	center = place(center, t.Position, t.Rotation)
	l := EffectiveLayer(c.Layer, t)
	ring := polygon.CircleRing(polygon.FromPoint(center), c.Diameter.Length()/2, tol)
	return l, polygon.Set{Paths: polygon.Paths64{ring}}
}

// DeviceStrokeText converts a device-owned stroke text into board space
// by transforming each character stroke path before outlining it.
func DeviceStrokeText(st *board.StrokeText, t board.Transform, tol geometry.UnsignedLength) (layer.Layer, polygon.Set, error) {
	transformed := *st
	transformed.CharacterPaths = make([]path.Path, len(st.CharacterPaths))
	for i, p := range st.CharacterPaths {
		transformed.CharacterPaths[i] = TransformPath(p, t)
	}
	l := EffectiveLayer(st.Layer, t)
	set, err := StrokeText(&transformed, 0, tol)
	return l, set, err
}
