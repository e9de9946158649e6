package drc

import (
	"github.com/boarddrc/drc/board"
	"github.com/boarddrc/drc/geometry"
	"github.com/boarddrc/drc/internal/obs"
	"github.com/boarddrc/drc/layer"
	"github.com/boarddrc/drc/pathgen"
	"github.com/boarddrc/drc/polygon"
	"github.com/boarddrc/drc/rules"
)

// pairWorkers is the fixed worker count for the pairwise check phases
// (checks 2, 5, 12), matching the bounded-pool pattern spec.md §5 calls
// for. A constant, not a Settings field: the pair split is an
// implementation detail of how a phase is parallelized, not a
// user-configurable clearance.
const pairWorkers = 4

func (r *run) checkMinimumCopperWidth() {
	for _, seg := range r.model.NetSegments() {
		minWidth := r.settings.widthFor(seg.NetClass)
		if minWidth == 0 {
			continue
		}
		for _, nl := range seg.Lines {
			if !nl.Layer.IsCopper() {
				continue
			}
			if nl.Width.Length() >= minWidth {
				continue
			}
			set, err := pathgen.NetLine(nl, 0, r.tol)
			if err != nil {
				obs.SkippedFeature(r.log, "MinimumCopperWidth", "NetLine", nl.UUID.String(), err.Error())
				continue
			}
			r.emit(rules.New(rules.MinimumWidthViolation,
				rules.KeyMinimumWidthViolation(rules.ObjectRef{Kind: "NetLine", UUID: nl.UUID.String()}),
				"copper trace narrower than the minimum allowed width",
				"", set.Paths...))
		}
	}

	if r.settings.MinCopperWidth > 0 {
		for _, p := range r.model.Planes() {
			if p.MinWidth.Length() >= r.settings.MinCopperWidth {
				continue
			}
			r.emit(rules.New(rules.MinimumWidthViolation,
				rules.KeyMinimumWidthViolation(rules.ObjectRef{Kind: "Plane", UUID: p.UUID.String()}),
				"copper pour narrower than the minimum allowed width",
				"", pathgen.Plane(p).Paths...))
		}

		for _, st := range r.model.StrokeTexts() {
			if !st.Layer.IsCopper() {
				continue
			}
			if st.StrokeWidth.Length() >= r.settings.MinCopperWidth {
				continue
			}
			set, err := pathgen.StrokeText(st, 0, r.tol)
			if err != nil {
				obs.SkippedFeature(r.log, "MinimumCopperWidth", "StrokeText", st.UUID.String(), err.Error())
				continue
			}
			r.emit(rules.New(rules.MinimumWidthViolation,
				rules.KeyMinimumWidthViolation(rules.ObjectRef{Kind: "StrokeText", UUID: st.UUID.String()}),
				"copper stroke text narrower than the minimum allowed width",
				"", set.Paths...))
		}
	}
}

// copperFeatureRef is one individual copper-bearing object on a given
// layer, normalized for the pairwise clearance check (2): its approval
// identity, its net (pathgen.NetlessKey for netless graphics), and a
// geometry renderer. The render signature matches drillRef's, so a
// feature with a native offset parameter (Via, NetLine, Pad) grows
// exactly, and one without (Plane, board/device graphics) is grown by a
// uniform polygon.Offset afterward.
type copperFeatureRef struct {
	obj    rules.ObjectRef
	net    string
	render func(offset geometry.Length, tol geometry.UnsignedLength) (polygon.Set, error)
}

func offsetSet(set polygon.Set, offset geometry.Length, tol geometry.UnsignedLength) polygon.Set {
	if offset == 0 {
		return set
	}
	return polygon.Offset(set, offset, polygon.OffsetOptions{ArcTolerance: tol})
}

// copperFeaturesForLayer enumerates every individual copper-bearing
// object on l: net lines, vias, planes (skipped in quick mode, matching
// CopperByNetSet), board polygons/circles/stroke texts, pads, and device
// polygons/circles/stroke texts — the explicit participant list spec.md
// §4.G check 2's table names. Board-owned graphics (DeviceUUID == nil)
// and device-owned ones are rendered through the same board-space path
// boardOutlineUnion already uses: an identity board.Transform{} for the
// former, dev.Transform for the latter.
func (r *run) copperFeaturesForLayer(l layer.Layer) []copperFeatureRef {
	var out []copperFeatureRef

	for _, seg := range r.model.NetSegments() {
		net := pathgen.NetlessKey
		if seg.NetSignalUUID != nil {
			net = seg.NetSignalUUID.String()
		}
		for _, v := range seg.Vias {
			v := v
			out = append(out, copperFeatureRef{
				obj: rules.ObjectRef{Kind: "Via", UUID: v.UUID.String()},
				net: net,
				render: func(offset geometry.Length, tol geometry.UnsignedLength) (polygon.Set, error) {
					return pathgen.Via(v, l, offset, tol), nil
				},
			})
		}
		for _, nl := range seg.Lines {
			if !nl.Layer.Equal(l) {
				continue
			}
			nl := nl
			out = append(out, copperFeatureRef{
				obj: rules.ObjectRef{Kind: "NetLine", UUID: nl.UUID.String()},
				net: net,
				render: func(offset geometry.Length, tol geometry.UnsignedLength) (polygon.Set, error) {
					return pathgen.NetLine(nl, offset, tol)
				},
			})
		}
	}

	if !r.quick {
		for _, p := range r.model.Planes() {
			if !p.Layer.Equal(l) {
				continue
			}
			p := p
			net := pathgen.NetlessKey
			if p.NetSignalUUID != nil {
				net = p.NetSignalUUID.String()
			}
			out = append(out, copperFeatureRef{
				obj: rules.ObjectRef{Kind: "Plane", UUID: p.UUID.String()},
				net: net,
				render: func(offset geometry.Length, tol geometry.UnsignedLength) (polygon.Set, error) {
					return offsetSet(pathgen.Plane(p), offset, tol), nil
				},
			})
		}
	}

	for _, poly := range r.model.Polygons() {
		if poly.DeviceUUID != nil || !poly.Layer.Equal(l) || !poly.Layer.IsCopper() {
			continue
		}
		poly := poly
		out = append(out, copperFeatureRef{
			obj: rules.ObjectRef{Kind: "Polygon", UUID: poly.UUID.String()},
			net: pathgen.NetlessKey,
			render: func(offset geometry.Length, tol geometry.UnsignedLength) (polygon.Set, error) {
				_, set, err := pathgen.DevicePolygon(poly, board.Transform{}, tol)
				if err != nil {
					return polygon.Set{}, err
				}
				return offsetSet(set, offset, tol), nil
			},
		})
	}

	for _, c := range r.model.Circles() {
		if c.DeviceUUID != nil || !c.Layer.Equal(l) || !c.Layer.IsCopper() {
			continue
		}
		c := c
		out = append(out, copperFeatureRef{
			obj: rules.ObjectRef{Kind: "Circle", UUID: c.UUID.String()},
			net: pathgen.NetlessKey,
			render: func(offset geometry.Length, tol geometry.UnsignedLength) (polygon.Set, error) {
				_, set := pathgen.DeviceCircle(c, board.Transform{}, tol)
				return offsetSet(set, offset, tol), nil
			},
		})
	}

	for _, st := range r.model.StrokeTexts() {
		if st.DeviceUUID != nil || !st.Layer.Equal(l) || !st.Layer.IsCopper() {
			continue
		}
		st := st
		out = append(out, copperFeatureRef{
			obj: rules.ObjectRef{Kind: "StrokeText", UUID: st.UUID.String()},
			net: pathgen.NetlessKey,
			render: func(offset geometry.Length, tol geometry.UnsignedLength) (polygon.Set, error) {
				return pathgen.StrokeText(st, offset, tol)
			},
		})
	}

	for _, dev := range r.model.Devices() {
		if dev.Footprint == nil {
			continue
		}
		dev := dev
		for _, pad := range dev.Footprint.Pads {
			pad := pad
			net := pathgen.NetlessKey
			if signal, ok := r.graph.NetSignalForPad(pad.UUID.String()); ok {
				net = signal
			}
			out = append(out, copperFeatureRef{
				obj: rules.ObjectRef{Kind: "Pad", UUID: pad.UUID.String()},
				net: net,
				render: func(offset geometry.Length, tol geometry.UnsignedLength) (polygon.Set, error) {
					return pathgen.DevicePad(dev, pad, l, offset, tol)
				},
			})
		}
		for _, poly := range dev.Footprint.Polygons {
			if !poly.Layer.IsCopper() {
				continue
			}
			poly := poly
			out = append(out, copperFeatureRef{
				obj: rules.ObjectRef{Kind: "Polygon", UUID: poly.UUID.String()},
				net: pathgen.NetlessKey,
				render: func(offset geometry.Length, tol geometry.UnsignedLength) (polygon.Set, error) {
					effective, set, err := pathgen.DevicePolygon(poly, dev.Transform, tol)
					if err != nil || !effective.Equal(l) {
						return polygon.Set{}, err
					}
					return offsetSet(set, offset, tol), nil
				},
			})
		}
		for _, c := range dev.Footprint.Circles {
			if !c.Layer.IsCopper() {
				continue
			}
			c := c
			out = append(out, copperFeatureRef{
				obj: rules.ObjectRef{Kind: "Circle", UUID: c.UUID.String()},
				net: pathgen.NetlessKey,
				render: func(offset geometry.Length, tol geometry.UnsignedLength) (polygon.Set, error) {
					effective, set := pathgen.DeviceCircle(c, dev.Transform, tol)
					if !effective.Equal(l) {
						return polygon.Set{}, nil
					}
					return offsetSet(set, offset, tol), nil
				},
			})
		}
		for _, st := range dev.StrokeTexts {
			if !st.Layer.IsCopper() {
				continue
			}
			st := st
			out = append(out, copperFeatureRef{
				obj: rules.ObjectRef{Kind: "StrokeText", UUID: st.UUID.String()},
				net: pathgen.NetlessKey,
				render: func(offset geometry.Length, tol geometry.UnsignedLength) (polygon.Set, error) {
					effective, set, err := pathgen.DeviceStrokeText(st, dev.Transform, tol)
					if err != nil || !effective.Equal(l) {
						return polygon.Set{}, err
					}
					return offsetSet(set, offset, tol), nil
				},
			})
		}
	}

	return out
}

// netClassesByNet maps each net-signal UUID (and pathgen.NetlessKey) to
// its NetClass, read off whichever NetSegment carries one, for
// clearanceFor's per-pair override lookup.
func (r *run) netClassesByNet() map[string]string {
	classes := map[string]string{}
	for _, seg := range r.model.NetSegments() {
		if seg.NetClass == "" {
			continue
		}
		net := pathgen.NetlessKey
		if seg.NetSignalUUID != nil {
			net = seg.NetSignalUUID.String()
		}
		if _, ok := classes[net]; !ok {
			classes[net] = seg.NetClass
		}
	}
	return classes
}

// checkCopperCopperClearance implements spec.md §4.G check 2 at the
// granularity its table specifies: for every unordered pair of copper
// features on the same layer whose nets differ, emit one
// CopperCopperClearanceViolation carrying both objects' real identity
// when their (clearance/2)-grown geometry overlaps. The effective
// clearance for a pair is resolved per net-class via
// Settings.clearanceFor (SPEC_FULL §3's NetClassOverride), not a single
// board-wide constant.
func (r *run) checkCopperCopperClearance() {
	classes := r.netClassesByNet()

	for _, l := range r.model.CopperLayers() {
		features := r.copperFeaturesForLayer(l)
		type pair struct{ a, b int }
		var pairs []pair
		for i := 0; i < len(features); i++ {
			for j := i + 1; j < len(features); j++ {
				if features[i].net == features[j].net {
					continue
				}
				pairs = append(pairs, pair{i, j})
			}
		}

		results := mapPairs(len(pairs), pairWorkers, func(idx int) []rules.Message {
			p := pairs[idx]
			fa, fb := features[p.a], features[p.b]

			clearance := r.settings.clearanceFor(classes[fa.net], classes[fb.net])
			if clearance == 0 {
				return nil
			}
			inflate := (clearance-MaxArcTolerance)/2 - 1

			a, err := fa.render(inflate, r.tol)
			if err != nil {
				return nil
			}
			b, err := fb.render(inflate, r.tol)
			if err != nil {
				return nil
			}
			overlap := polygon.Intersect(a, b)
			if overlap.IsEmpty() {
				return nil
			}
			key := rules.KeyCopperCopperClearanceViolation(
				rules.CopperFeatureRef{Layer: l.String(), Net: fa.net, Obj: fa.obj},
				rules.CopperFeatureRef{Layer: l.String(), Net: fb.net, Obj: fb.obj})
			return []rules.Message{rules.New(rules.CopperCopperClearanceViolation, key,
				"copper regions of different nets are closer than the minimum clearance",
				"", overlap.Paths...)}
		})
		for _, m := range results {
			r.emit(m)
		}
	}
}

func (r *run) checkCopperBoardClearance() {
	clearance := r.settings.MinCopperBoardClearance
	if clearance == 0 {
		return
	}
	band, ok := r.boardOutlineBand(2*clearance - MaxArcTolerance - 1)
	if !ok {
		return
	}

	for _, l := range r.model.CopperLayers() {
		copper, err := r.netCopperAll(l)
		if err != nil {
			obs.SkippedFeature(r.log, "CopperBoardClearance", "Layer", l.String(), err.Error())
			continue
		}
		overlap := polygon.Intersect(copper, band)
		if overlap.IsEmpty() {
			continue
		}
		r.emit(rules.New(rules.CopperBoardClearanceViolation,
			rules.KeyCopperBoardClearanceViolation(rules.ObjectRef{Kind: "Layer", UUID: l.String()}),
			"copper is closer to the board outline than the minimum clearance",
			"", overlap.Paths...))
	}
}

// boardOutlineBand builds the forbidden band of the given width straddling
// the board outline, per spec.md §4.G checks 3/6: outline dilated by
// width/2, minus outline eroded by width/2.
func (r *run) boardOutlineBand(width geometry.Length) (polygon.Set, bool) {
	outline := r.boardOutlineUnion()
	if outline.IsEmpty() {
		return polygon.Set{}, false
	}
	half := width / 2
	outer := polygon.Offset(outline, half, polygon.OffsetOptions{ArcTolerance: r.tol})
	inner := polygon.Offset(outline, -half, polygon.OffsetOptions{ArcTolerance: r.tol})
	return polygon.Subtract(outer, inner), true
}

func (r *run) checkCopperHoleClearance() {
	clearance := r.settings.MinCopperNpthClearance
	if clearance == 0 {
		return
	}
	inflate := clearance - MaxArcTolerance - 1

	for _, l := range r.model.CopperLayers() {
		copper, err := r.netCopperAll(l)
		if err != nil {
			obs.SkippedFeature(r.log, "CopperHoleClearance", "Layer", l.String(), err.Error())
			continue
		}

		for _, ref := range r.allDrills() {
			hole, err := ref.render(inflate, r.tol)
			if err != nil {
				obs.SkippedFeature(r.log, "CopperHoleClearance", ref.key.Owner.Kind, ref.key.HoleUUID, err.Error())
				continue
			}
			overlap := polygon.Intersect(copper, hole)
			if overlap.IsEmpty() {
				continue
			}
			r.emit(rules.New(rules.CopperHoleClearanceViolation,
				rules.KeyCopperHoleClearanceViolation(ref.key.Owner, ref.key.HoleUUID),
				"copper is closer to a hole than the minimum clearance",
				"", overlap.Paths...))
		}
	}
}
