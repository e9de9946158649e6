package pathgen

import (
	"github.com/boarddrc/drc/board"
	"github.com/boarddrc/drc/geometry"
	"github.com/boarddrc/drc/layer"
	"github.com/boarddrc/drc/netgraph"
	"github.com/boarddrc/drc/polygon"
)

// RebuildPlanes recomputes every Plane's filled fragments: the plane's
// own outline with every same-layer copper feature belonging to a
// different net (dilated by the plane's MinWidth clearance) subtracted
// out. This mirrors how a real copper-pour fill avoids everything it
// doesn't own (spec.md §4.D).
func RebuildPlanes(m *board.Model, g *netgraph.Graph, tol geometry.UnsignedLength) error {
	for _, p := range m.Planes() {
		outlineRing := flattenToRing(p.Outline, tol)
		fill := polygon.Set{Paths: polygon.Paths64{outlineRing}}

		var ownNet string
		if p.NetSignalUUID != nil {
			ownNet = p.NetSignalUUID.String()
		}

		foreign, err := foreignCopper(m, g, p.Layer, ownNet, tol)
		if err != nil {
			return err
		}
		if clearance := p.MinWidth.Length() / 2; clearance > 0 && len(foreign.Paths) > 0 {
			foreign = polygon.Offset(foreign, clearance, polygon.OffsetOptions{Join: polygon.JoinRound, ArcTolerance: tol})
		}
		fill = polygon.Subtract(fill, foreign)

		p.Fragments = p.Fragments[:0]
		for _, ring := range fill.Paths {
			frag := make([]geometry.Point, len(ring))
			for i, pt := range ring {
				frag[i] = geometry.Point{X: geometry.Length(pt.X), Y: geometry.Length(pt.Y)}
			}
			p.Fragments = append(p.Fragments, frag)
		}
	}
	m.MarkPlanesBuilt()
	return nil
}

// foreignCopper collects every copper feature on l belonging to a net
// other than ownNet (netless features are always foreign to a planed
// net), unioned into one set.
func foreignCopper(m *board.Model, g *netgraph.Graph, l layer.Layer, ownNet string, tol geometry.UnsignedLength) (polygon.Set, error) {
	var rings polygon.Paths64

	for _, seg := range m.NetSegments() {
		if segNet(seg) == ownNet && ownNet != "" {
			continue
		}
		for _, v := range seg.Vias {
			rings = append(rings, Via(v, l, 0, tol).Paths...)
		}
		for _, nl := range seg.Lines {
			if !nl.Layer.Equal(l) {
				continue
			}
			set, err := NetLine(nl, 0, tol)
			if err != nil {
				return polygon.Set{}, err
			}
			rings = append(rings, set.Paths...)
		}
	}

	for _, other := range m.Planes() {
		if !other.Layer.Equal(l) {
			continue
		}
		var otherNet string
		if other.NetSignalUUID != nil {
			otherNet = other.NetSignalUUID.String()
		}
		if otherNet == ownNet && ownNet != "" {
			continue
		}
		rings = append(rings, flattenToRing(other.Outline, tol))
	}

	for _, dev := range m.Devices() {
		if dev.Footprint == nil {
			continue
		}
		for _, pad := range dev.Footprint.Pads {
			var padNet string
			if net, ok := g.NetSignalForPad(pad.UUID.String()); ok {
				padNet = net
			}
			if padNet == ownNet && ownNet != "" {
				continue
			}
			set, err := Pad(worldPad(dev, pad), l, 0, tol)
			if err != nil {
				return polygon.Set{}, err
			}
			rings = append(rings, set.Paths...)
		}
	}

	return polygon.Union(polygon.Set{Paths: rings}), nil
}

func segNet(seg *board.NetSegment) string {
	if seg.NetSignalUUID == nil {
		return ""
	}
	return seg.NetSignalUUID.String()
}
