// Package board defines the BoardObject variants and the BoardModel
// aggregate spec.md §3 specifies: vias, net lines and segments, footprint
// pads, planes, polygons, circles, stroke texts, holes, and devices, plus
// the Model type the engine consumes as a read-only view.
package board

import (
	"github.com/google/uuid"

	"github.com/boarddrc/drc/geometry"
	"github.com/boarddrc/drc/layer"
	"github.com/boarddrc/drc/path"
)

// Side identifies which face of the board a pad or device sits on.
type Side uint8

const (
	SideTop Side = iota
	SideBottom
)

// Via is a plated through-hole connecting every copper layer in this core
// (spec.md §3).
type Via struct {
	UUID           uuid.UUID
	Position       geometry.Point
	Drill          geometry.PositiveLength
	OuterSize      geometry.PositiveLength
	StopMaskOffset *geometry.Length
	NetSegmentUUID uuid.UUID
}

// NetLine is a straight copper trace segment on a single layer.
type NetLine struct {
	UUID  uuid.UUID
	Start geometry.Point
	End   geometry.Point
	Width geometry.PositiveLength
	Layer layer.Layer
}

// NetPoint is a junction within a NetSegment: a position with no width of
// its own, used to detect StaleObjects (spec.md §4.G check 17).
type NetPoint struct {
	UUID     uuid.UUID
	Position geometry.Point
}

// NetSegment owns a set of vias, net lines, and net points that together
// form one electrically connected region of a net (spec.md §3).
type NetSegment struct {
	UUID          uuid.UUID
	Vias          []*Via
	Lines         []*NetLine
	Points        []*NetPoint
	NetSignalUUID *uuid.UUID // nil means netless
	NetClass      string
}

// HasNetLineAt reports whether any of this segment's net lines touches pt,
// used by StaleObjects to decide whether a NetPoint is an unconnected
// junction.
func (s *NetSegment) HasNetLineAt(pt geometry.Point) bool {
	for _, l := range s.Lines {
		if l.Start == pt || l.End == pt {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the segment owns no vias and no net lines
// (spec.md §4.G check 17, EmptyNetSegment).
func (s *NetSegment) IsEmpty() bool {
	return len(s.Vias) == 0 && len(s.Lines) == 0
}

// PadShape is the geometric family a FootprintPad's per-layer geometry
// belongs to (spec.md §4.D).
type PadShape uint8

const (
	PadRoundedRect PadShape = iota
	PadRoundedOctagon
	PadStroke
	PadCustom
)

// PadGeometry is one layer's shape definition for a FootprintPad.
type PadGeometry struct {
	Shape             PadShape
	Width             geometry.PositiveLength
	Height            geometry.PositiveLength
	CornerRadiusRatio geometry.UnsignedLimitedRatio
	StrokePath        path.Path // used when Shape == PadStroke
	CustomOutline     path.Path // used when Shape == PadCustom
}

// PadHole is a plated hole belonging to a through-hole FootprintPad.
type PadHole struct {
	UUID     uuid.UUID
	Diameter geometry.PositiveLength
	Path     path.Path
}

// FootprintPad is a conductive land on a footprint, SMT or THT.
type FootprintPad struct {
	UUID                uuid.UUID
	Position            geometry.Point
	Rotation            geometry.Angle
	Geometries          map[layer.Layer]PadGeometry
	Holes               []PadHole
	ComponentSide       Side
	SignalInstanceUUID  *uuid.UUID
	// IncomingNetLineLayers records which layers have at least one net
	// line connecting into this pad, consumed by InvalidPadConnection
	// (spec.md §4.G check 11).
	IncomingNetLineLayers map[layer.Layer]bool
}

// Plane is a filled copper area belonging to a net (a "pour").
type Plane struct {
	UUID          uuid.UUID
	Outline       path.Path
	Layer         layer.Layer
	MinWidth      geometry.PositiveLength
	NetSignalUUID *uuid.UUID
	// Fragments holds the filled regions computed by the last
	// RebuildPlanes call; empty until then or when rebuilding is skipped
	// in quick mode.
	Fragments [][]geometry.Point
}

// Polygon is a board or footprint graphic: an outline with a layer, line
// width, and optional fill.
type Polygon struct {
	UUID       uuid.UUID
	Layer      layer.Layer
	Path       path.Path
	LineWidth  geometry.Length
	Filled     bool
	DeviceUUID *uuid.UUID // nil for board-owned polygons
}

// Circle is a board or footprint graphic.
type Circle struct {
	UUID       uuid.UUID
	Layer      layer.Layer
	Center     geometry.Point
	Diameter   geometry.PositiveLength
	LineWidth  geometry.Length
	Filled     bool
	DeviceUUID *uuid.UUID
}

// StrokeText is a rendered text object; CharacterPaths is its glyph
// outlines already resolved to vector paths (font rendering is out of
// scope for this core).
type StrokeText struct {
	UUID           uuid.UUID
	Layer          layer.Layer
	StrokeWidth    geometry.PositiveLength
	CharacterPaths []path.Path
	DeviceUUID     *uuid.UUID
}

// Hole is a drilled hole belonging to the board itself (not a footprint).
type Hole struct {
	UUID           uuid.UUID
	Diameter       geometry.PositiveLength
	Path           path.Path
	StopMaskOffset *geometry.Length
}

// Footprint is the library shape a Device instantiates.
type Footprint struct {
	Polygons []*Polygon
	Circles  []*Circle
	Holes    []*Hole
	Pads     []*FootprintPad
}

// Transform places a Device on the board.
type Transform struct {
	Position geometry.Point
	Rotation geometry.Angle
	Mirror   bool
}

// Device is a placed instance of a library Footprint.
type Device struct {
	UUID                   uuid.UUID
	ComponentInstanceUUID  uuid.UUID
	LibraryDeviceUUID      uuid.UUID
	Transform              Transform
	Footprint              *Footprint
	StrokeTexts            []*StrokeText
	HoleStopMaskOffsets    map[uuid.UUID]geometry.Length
}

// ComponentInstance is a schematic-side component that may or may not have
// a Device placed on the board.
type ComponentInstance struct {
	UUID              uuid.UUID
	SchematicOnly     bool
	DefaultDeviceUUID *uuid.UUID
}

// Circuit owns the schematic's component instances.
type Circuit struct {
	Instances []*ComponentInstance
}

// ComponentInstances returns the circuit's component instances.
func (c *Circuit) ComponentInstances() []*ComponentInstance { return c.Instances }

// Project is the surrounding project a BoardModel belongs to.
type Project struct {
	CircuitRef *Circuit
}

// Circuit returns the project's circuit.
func (p *Project) Circuit() *Circuit { return p.CircuitRef }

// AirWire is a precomputed, unrouted-connection visualization the
// surrounding editor maintains; this core never traces copper paths
// itself (spec.md Non-goals), it only reads whatever AirWires the model
// currently reports.
type AirWire struct {
	NetSignalUUID *uuid.UUID
	Endpoint1UUID uuid.UUID
	Endpoint2UUID uuid.UUID
}
