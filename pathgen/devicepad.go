package pathgen

import (
	"github.com/boarddrc/drc/board"
	"github.com/boarddrc/drc/geometry"
	"github.com/boarddrc/drc/layer"
	"github.com/boarddrc/drc/polygon"
)

// worldPad returns a copy of pad with its position, rotation, and
// per-layer geometry keys transformed from footprint-local space into
// board space by applying dev's placement transform. Mirroring swaps
// top/bottom geometry keys via layer.Layer.Mirror, matching how a
// mirrored footprint's copper moves to the opposite side of the board
// (spec.md §3).
func worldPad(dev *board.Device, pad *board.FootprintPad) *board.FootprintPad {
	t := dev.Transform

	position := pad.Position
	if t.Mirror {
		position.X = -position.X
	}
	position = place(position, t.Position, t.Rotation)

	rotation := pad.Rotation
	if t.Mirror {
		rotation = -rotation
	}
	rotation += t.Rotation

	geoms := make(map[layer.Layer]board.PadGeometry, len(pad.Geometries))
	for l, g := range pad.Geometries {
		if t.Mirror {
			l = l.Mirror()
		}
		geoms[l] = g
	}

	out := *pad
	out.Position = position
	out.Rotation = rotation
	out.Geometries = geoms
	return &out
}

// DevicePad converts one of a placed device's pads into board space on
// layer l, combining worldPad's placement with Pad's shape generation —
// the same pairing CopperByNetSet uses internally, exported so per-pad
// callers (e.g. the copper-copper clearance check) don't need to
// reimplement the placement step.
func DevicePad(dev *board.Device, pad *board.FootprintPad, l layer.Layer, offset geometry.Length, tol geometry.UnsignedLength) (polygon.Set, error) {
	return Pad(worldPad(dev, pad), l, offset, tol)
}
