package drc

import (
	"github.com/boarddrc/drc/geometry"
	"github.com/boarddrc/drc/pathgen"
	"github.com/boarddrc/drc/polygon"
	"github.com/boarddrc/drc/rules"
)

// drillRef is every drilled hole in the model, normalized to a common
// shape for the pairwise/band/annular-ring checks (5, 6, 7) and the
// diameter/slot checks (8-10): an approval key, a geometry renderer, a
// PTH/NPTH flag, its nominal diameter, and its path classification.
//
// A slot's "width" (spec.md §4.G check 9) is the diameter along its
// short axis, which for a drilled slot is exactly the tool diameter used
// to stroke its path — the same value diameterFn reports, so slotWidth
// is not a distinct field.
type drillRef struct {
	key        rules.DrillRef
	plated     bool
	classify   func() int
	diameterFn func() geometry.Length
	render     func(offset geometry.Length, tol geometry.UnsignedLength) (polygon.Set, error)
}

func (d drillRef) diameter() (geometry.Length, bool) {
	if d.diameterFn == nil {
		return 0, false
	}
	return d.diameterFn(), true
}

func (d drillRef) slotWidth() (geometry.Length, bool) {
	return d.diameter()
}

// allDrills enumerates every drilled hole the model owns: via drills,
// board holes, footprint pad holes, and footprint (non-pad) holes.
func (r *run) allDrills() []drillRef {
	var out []drillRef

	for _, seg := range r.model.NetSegments() {
		for _, v := range seg.Vias {
			v := v
			out = append(out, drillRef{
				key:        rules.DrillRef{Owner: rules.ObjectRef{Kind: "Via", UUID: v.UUID.String()}, HoleUUID: v.UUID.String()},
				plated:     true,
				classify:   func() int { return 0 }, // round drill
				diameterFn: func() geometry.Length { return v.Drill.Length() },
				render: func(offset geometry.Length, tol geometry.UnsignedLength) (polygon.Set, error) {
					ring := polygon.CircleRing(polygon.FromPoint(v.Position), v.Drill.Length()/2+offset, tol)
					return polygon.Set{Paths: polygon.Paths64{ring}}, nil
				},
			})
		}
	}

	for _, h := range r.model.Holes() {
		h := h
		out = append(out, drillRef{
			key:        rules.DrillRef{Owner: rules.ObjectRef{Kind: "Hole", UUID: h.UUID.String()}, HoleUUID: h.UUID.String()},
			plated:     false,
			classify:   func() int { return int(h.Path.Classify()) },
			diameterFn: func() geometry.Length { return h.Diameter.Length() },
			render: func(offset geometry.Length, tol geometry.UnsignedLength) (polygon.Set, error) {
				return pathgen.Hole(h, offset, tol)
			},
		})
	}

	for _, dev := range r.model.Devices() {
		if dev.Footprint == nil {
			continue
		}
		for _, pad := range dev.Footprint.Pads {
			pad := pad
			for i := range pad.Holes {
				ph := pad.Holes[i]
				out = append(out, drillRef{
					key:        rules.DrillRef{Owner: rules.ObjectRef{Kind: "Pad", UUID: pad.UUID.String()}, HoleUUID: ph.UUID.String()},
					plated:     true,
					classify:   func() int { return int(ph.Path.Classify()) },
					diameterFn: func() geometry.Length { return ph.Diameter.Length() },
					render: func(offset geometry.Length, tol geometry.UnsignedLength) (polygon.Set, error) {
						return pathgen.PadHole(&ph, offset, tol)
					},
				})
			}
		}
		for _, h := range dev.Footprint.Holes {
			h := h
			out = append(out, drillRef{
				key:        rules.DrillRef{Owner: rules.ObjectRef{Kind: "Hole", UUID: h.UUID.String()}, HoleUUID: h.UUID.String()},
				plated:     false,
				classify:   func() int { return int(h.Path.Classify()) },
				diameterFn: func() geometry.Length { return h.Diameter.Length() },
				render: func(offset geometry.Length, tol geometry.UnsignedLength) (polygon.Set, error) {
					return pathgen.Hole(h, offset, tol)
				},
			})
		}
	}

	return out
}
