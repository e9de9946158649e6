package drc

import (
	"github.com/boarddrc/drc/board"
	"github.com/boarddrc/drc/internal/obs"
	"github.com/boarddrc/drc/layer"
	"github.com/boarddrc/drc/pathgen"
	"github.com/boarddrc/drc/polygon"
	"github.com/boarddrc/drc/rules"
)

func (r *run) checkInvalidPadConnection() {
	for _, dev := range r.model.Devices() {
		if dev.Footprint == nil {
			continue
		}
		for _, pad := range dev.Footprint.Pads {
			for l, incoming := range pad.IncomingNetLineLayers {
				if !incoming {
					continue
				}
				if _, ok := pad.Geometries[l]; !ok {
					r.emit(r.invalidPadConnectionMessage(pad, l))
					continue
				}
				set, err := pathgen.Pad(pad, l, 0, r.tol)
				if err != nil {
					obs.SkippedFeature(r.log, "InvalidPadConnection", "Pad", pad.UUID.String(), err.Error())
					continue
				}
				origin := polygon.FromPoint(pad.Position)
				covered := false
				for _, ring := range set.Paths {
					if polygon.PointInPolygon(ring, origin) {
						covered = true
						break
					}
				}
				if !covered {
					r.emit(r.invalidPadConnectionMessage(pad, l))
				}
			}
		}
	}
}

func (r *run) invalidPadConnectionMessage(pad *board.FootprintPad, l layer.Layer) rules.Message {
	return rules.New(rules.InvalidPadConnection,
		rules.KeyInvalidPadConnection(pad.UUID.String(), l.String()),
		"pad has an incoming net line on a layer its own geometry does not cover",
		"")
}

func (r *run) checkCourtyardClearances() {
	for _, courtyardLayer := range []layer.Layer{layer.New(layer.TopCourtyard), layer.New(layer.BottomCourtyard)} {
		type entry struct {
			uuid string
			set  polygon.Set
		}
		var entries []entry
		for _, dev := range r.model.Devices() {
			if dev.Footprint == nil {
				continue
			}
			var rings polygon.Paths64
			for _, poly := range dev.Footprint.Polygons {
				l, set, err := pathgen.DevicePolygon(poly, dev.Transform, r.tol)
				if err != nil || !l.Equal(courtyardLayer) {
					continue
				}
				rings = append(rings, set.Paths...)
			}
			if len(rings) == 0 {
				continue
			}
			entries = append(entries, entry{uuid: dev.UUID.String(), set: polygon.Union(polygon.Set{Paths: rings})})
		}

		type pair struct{ a, b int }
		var pairs []pair
		for i := 0; i < len(entries); i++ {
			for j := i + 1; j < len(entries); j++ {
				pairs = append(pairs, pair{i, j})
			}
		}

		results := mapPairs(len(pairs), pairWorkers, func(idx int) []rules.Message {
			p := pairs[idx]
			overlap := polygon.Intersect(entries[p.a].set, entries[p.b].set)
			if overlap.IsEmpty() {
				return nil
			}
			return []rules.Message{rules.New(rules.CourtyardOverlap,
				rules.KeyCourtyardOverlap(entries[p.a].uuid, entries[p.b].uuid),
				"device courtyards overlap",
				"", overlap.Paths...)}
		})
		for _, m := range results {
			r.emit(m)
		}
	}
}

// boardOutlineUnion unions every board-outline-layer polygon: board-owned
// outline polygons directly, and footprint outline polygons placed in
// board space through their device's transform.
func (r *run) boardOutlineUnion() polygon.Set {
	var rings polygon.Paths64
	for _, poly := range r.model.Polygons() {
		if poly.DeviceUUID != nil || !poly.Layer.IsBoardOutline() {
			continue
		}
		_, set, err := pathgen.DevicePolygon(poly, board.Transform{}, r.tol)
		if err != nil {
			continue
		}
		rings = append(rings, set.Paths...)
	}
	for _, dev := range r.model.Devices() {
		if dev.Footprint == nil {
			continue
		}
		for _, poly := range dev.Footprint.Polygons {
			if !poly.Layer.IsBoardOutline() {
				continue
			}
			_, set, err := pathgen.DevicePolygon(poly, dev.Transform, r.tol)
			if err != nil {
				continue
			}
			rings = append(rings, set.Paths...)
		}
	}
	return polygon.Union(polygon.Set{Paths: rings})
}

func (r *run) checkBoardOutline() {
	for _, dev := range r.model.Devices() {
		if dev.Footprint == nil {
			continue
		}
		for _, poly := range dev.Footprint.Polygons {
			if !poly.Layer.IsBoardOutline() {
				continue
			}
			if poly.Path.IsClosed() {
				continue
			}
			r.emit(rules.New(rules.OpenBoardOutlinePolygon,
				rules.KeyOpenBoardOutlinePolygon(dev.UUID.String(), poly.UUID.String()),
				"footprint board-outline polygon is not closed",
				""))
		}
	}

	outline := r.boardOutlineUnion()
	if outline.IsEmpty() {
		r.emit(rules.New(rules.MissingBoardOutline, rules.KeyMissingBoardOutline(),
			"board has no outline", ""))
		return
	}
	trees := polygon.BuildTree(outline.Paths)
	outerRingCount := 0
	for _, t := range trees {
		if !t.IsHole {
			outerRingCount++
		}
	}
	if outerRingCount > 1 {
		r.emit(rules.New(rules.MultipleBoardOutlines, rules.KeyMultipleBoardOutlines(),
			"board has more than one disjoint outline", ""))
	}

	if r.settings.MinOutlineToolDiameter > 0 {
		radius := r.settings.MinOutlineToolDiameter / 2
		opened := polygon.Offset(outline, radius-1, polygon.OffsetOptions{Join: polygon.JoinRound, ArcTolerance: r.tol})
		opened = polygon.Offset(opened, -radius, polygon.OffsetOptions{Join: polygon.JoinRound, ArcTolerance: r.tol})
		residue := polygon.Subtract(opened, outline)
		if !residue.IsEmpty() {
			r.emit(rules.New(rules.MinimumBoardOutlineInnerRadiusViolation, rules.KeyMinimumBoardOutlineInnerRadiusViolation(),
				"board outline has an inner corner radius tighter than the minimum tool diameter allows",
				"", residue.Paths...))
		}
	}
}

func (r *run) checkUnplacedComponents() {
	proj := r.model.Project()
	if proj == nil || proj.Circuit() == nil {
		return
	}
	for _, ci := range proj.Circuit().ComponentInstances() {
		if ci.SchematicOnly {
			continue
		}
		if _, ok := r.model.DeviceInstanceByComponentUUID(ci.UUID); ok {
			continue
		}
		r.emit(rules.New(rules.MissingDevice, rules.KeyMissingDevice(ci.UUID.String()),
			"component has no device placed on the board", ""))
	}
}

func (r *run) checkCircuitDefaultDevices() {
	proj := r.model.Project()
	if proj == nil || proj.Circuit() == nil {
		return
	}
	for _, ci := range proj.Circuit().ComponentInstances() {
		if ci.DefaultDeviceUUID == nil {
			continue
		}
		dev, ok := r.model.DeviceInstanceByComponentUUID(ci.UUID)
		if !ok {
			continue
		}
		if dev.LibraryDeviceUUID == *ci.DefaultDeviceUUID {
			continue
		}
		r.emit(rules.New(rules.DefaultDeviceMismatch, rules.KeyDefaultDeviceMismatch(ci.UUID.String()),
			"placed device differs from the component's default device",
			""))
	}
}

func (r *run) checkMissingConnections() {
	r.model.ForceAirWiresRebuild()
	for _, aw := range r.model.AirWires() {
		netUUID := ""
		if aw.NetSignalUUID != nil {
			netUUID = aw.NetSignalUUID.String()
		}
		r.emit(rules.New(rules.MissingConnection,
			rules.KeyMissingConnection(netUUID, aw.Endpoint1UUID.String(), aw.Endpoint2UUID.String()),
			"net has an unrouted connection", ""))
	}
}

func (r *run) checkStaleObjects() {
	for _, seg := range r.model.NetSegments() {
		if seg.IsEmpty() {
			r.emit(rules.New(rules.EmptyNetSegment, rules.KeyEmptyNetSegment(seg.UUID.String()),
				"net segment owns no copper", ""))
		}
		for _, pt := range seg.Points {
			if !seg.HasNetLineAt(pt.Position) {
				r.emit(rules.New(rules.UnconnectedJunction, rules.KeyUnconnectedJunction(pt.UUID.String()),
					"net point is not attached to any net line", ""))
			}
		}
	}
}
