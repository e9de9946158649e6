package board

import (
	"github.com/google/uuid"

	"github.com/boarddrc/drc/layer"
)

// Model aggregates every board object the engine reads plus the one
// mutation it may request (RebuildPlanes). The DRC core takes a shared,
// read-only view of a Model for the duration of a run except for that one
// call (spec.md §3 lifecycle rules) — callers must not mutate the model
// concurrently with a run.
type Model struct {
	InnerCopperCount int

	DevicesList      []*Device
	NetSegmentsList  []*NetSegment
	PlanesList       []*Plane
	PolygonsList     []*Polygon
	CirclesList      []*Circle
	StrokeTextsList  []*StrokeText
	HolesList        []*Hole
	AirWiresList     []AirWire
	ProjectRef       *Project

	planesBuilt bool
}

// CopperLayers returns the ordered copper stack (top, inner 1..N, bottom).
func (m *Model) CopperLayers() []layer.Layer {
	return layer.CopperLayers(m.InnerCopperCount)
}

func (m *Model) Devices() []*Device           { return m.DevicesList }
func (m *Model) NetSegments() []*NetSegment   { return m.NetSegmentsList }
func (m *Model) Planes() []*Plane             { return m.PlanesList }
func (m *Model) Polygons() []*Polygon         { return m.PolygonsList }
func (m *Model) Circles() []*Circle           { return m.CirclesList }
func (m *Model) StrokeTexts() []*StrokeText   { return m.StrokeTextsList }
func (m *Model) Holes() []*Hole               { return m.HolesList }
func (m *Model) Project() *Project            { return m.ProjectRef }

// AirWires returns the air wires currently cached on the model. Call
// ForceAirWiresRebuild first to refresh them; this core never computes
// connectivity itself (spec.md Non-goals — "missing-connection checks use
// precomputed air wires from the model").
func (m *Model) AirWires() []AirWire { return m.AirWiresList }

// ForceAirWiresRebuild is a no-op recomputation hook in this core: air-wire
// connectivity tracing belongs to the surrounding editor (Non-goal), so
// this simply re-reads whatever AirWiresList currently holds. It exists so
// MissingConnections (spec.md §4.G check 16) can call the documented
// model capability without the engine branching on whether a rebuild is
// "real".
func (m *Model) ForceAirWiresRebuild() {}

// DeviceInstanceByComponentUUID finds the placed Device (if any) for a
// given ComponentInstance UUID.
func (m *Model) DeviceInstanceByComponentUUID(componentUUID uuid.UUID) (*Device, bool) {
	for _, d := range m.DevicesList {
		if d.ComponentInstanceUUID == componentUUID {
			return d, true
		}
	}
	return nil, false
}

// PlanesBuilt reports whether RebuildPlanes has run at least once this
// Model's lifetime — pathgen.Plane uses this to emit an empty set when
// planes have never been built (e.g. quick mode never calls it).
func (m *Model) PlanesBuilt() bool { return m.planesBuilt }

// MarkPlanesBuilt records that plane fragments are now current. Called by
// RebuildPlanes implementations (pathgen.RebuildPlanes) after recomputing
// every Plane's Fragments field.
func (m *Model) MarkPlanesBuilt() { m.planesBuilt = true }
