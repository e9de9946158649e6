package pathgen

import (
	"github.com/boarddrc/drc/board"
	"github.com/boarddrc/drc/geometry"
	"github.com/boarddrc/drc/layer"
	"github.com/boarddrc/drc/netgraph"
	"github.com/boarddrc/drc/polygon"
)

// NetlessKey is the sentinel map key used in a netUUIDs filter to mean
// "match netless features" (features have no single representable UUID
// for "no net").
const NetlessKey = ""

// netMatches reports whether a feature's net membership passes the
// net-set filter: a nil netUUIDs set means unrestricted (match
// everything, used to aggregate all copper regardless of net); a
// non-nil set matches a netless feature only when it contains
// NetlessKey, and matches a signalled feature only when it contains
// that signal's UUID, per spec.md §4.D.
func netMatches(netUUIDs map[string]bool, signal *string) bool {
	if netUUIDs == nil {
		return true
	}
	if signal == nil {
		return netUUIDs[NetlessKey]
	}
	return netUUIDs[*signal]
}

func uuidPtrToStringPtr(u interface{ String() string }) *string {
	s := u.String()
	return &s
}

// CopperByNetSet aggregates every copper-bearing object on layer l whose
// net membership passes netUUIDs into one unioned polygon.Set (spec.md
// §4.D/§4.G). In quick mode, Plane fragments are skipped entirely since
// they have not been rebuilt. Pad net membership is resolved through g,
// since a pad only carries its own component-signal-instance UUID and is
// two hops from the owning net signal.
func CopperByNetSet(m *board.Model, g *netgraph.Graph, l layer.Layer, netUUIDs map[string]bool, quick bool, tol geometry.UnsignedLength) (polygon.Set, error) {
	var rings polygon.Paths64

	for _, seg := range m.NetSegments() {
		var signal *string
		if seg.NetSignalUUID != nil {
			signal = uuidPtrToStringPtr(seg.NetSignalUUID)
		}
		if !netMatches(netUUIDs, signal) {
			continue
		}
		for _, v := range seg.Vias {
			set := Via(v, l, 0, tol)
			rings = append(rings, set.Paths...)
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

	if !quick {
		for _, p := range m.Planes() {
			if !p.Layer.Equal(l) {
				continue
			}
			var signal *string
			if p.NetSignalUUID != nil {
				signal = uuidPtrToStringPtr(p.NetSignalUUID)
			}
			if !netMatches(netUUIDs, signal) {
				continue
			}
			rings = append(rings, Plane(p).Paths...)
		}
	}

	for _, poly := range m.Polygons() {
		if !poly.Layer.Equal(l) || !poly.Layer.IsCopper() {
			continue
		}
		if !netMatches(netUUIDs, nil) {
			continue
		}
		ring := flattenToRing(poly.Path, tol)
		rings = append(rings, ring)
	}

	for _, c := range m.Circles() {
		if !c.Layer.Equal(l) || !c.Layer.IsCopper() {
			continue
		}
		if !netMatches(netUUIDs, nil) {
			continue
		}
		rings = append(rings, polygon.CircleRing(polygon.FromPoint(c.Center), c.Diameter.Length()/2, tol))
	}

	for _, dev := range m.Devices() {
		if dev.Footprint == nil {
			continue
		}
		for _, pad := range dev.Footprint.Pads {
			var signal *string
			if netSignal, ok := g.NetSignalForPad(pad.UUID.String()); ok {
				signal = &netSignal
			}
			if !netMatches(netUUIDs, signal) {
				continue
			}
			set, err := DevicePad(dev, pad, l, 0, tol)
			if err != nil {
				return polygon.Set{}, err
			}
			rings = append(rings, set.Paths...)
		}
	}

	return polygon.Union(polygon.Set{Paths: rings}), nil
}
