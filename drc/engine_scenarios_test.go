package drc

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boarddrc/drc/board"
	"github.com/boarddrc/drc/geometry"
	"github.com/boarddrc/drc/layer"
	"github.com/boarddrc/drc/netgraph"
	"github.com/boarddrc/drc/path"
	"github.com/boarddrc/drc/rules"
)

func straightPath(t *testing.T, points ...geometry.Point) path.Path {
	t.Helper()
	vertices := make([]path.Vertex, len(points))
	for i, p := range points {
		vertices[i] = path.Vertex{Position: p}
	}
	p, err := path.New(vertices)
	require.NoError(t, err)
	return p
}

func rectOutline(t *testing.T, x0, y0, x1, y1 geometry.Length) path.Path {
	t.Helper()
	return straightPath(t,
		geometry.Point{X: x0, Y: y0},
		geometry.Point{X: x1, Y: y0},
		geometry.Point{X: x1, Y: y1},
		geometry.Point{X: x0, Y: y1},
		geometry.Point{X: x0, Y: y0},
	)
}

func circlePath(t *testing.T, radius geometry.Length) path.Path {
	t.Helper()
	v := path.Vertex{Position: geometry.Point{X: radius, Y: 0}, ArcSweep: geometry.FullTurn - 1}
	p, err := path.New([]path.Vertex{v})
	require.NoError(t, err)
	return p
}

func findKind(messages []rules.Message, k rules.Kind) []rules.Message {
	var out []rules.Message
	for _, m := range messages {
		if m.Kind == k {
			out = append(out, m)
		}
	}
	return out
}

// S1: two parallel same-layer traces of different nets closer than the
// minimum copper-copper clearance.
func TestScenarioS1ParallelTracesTooClose(t *testing.T) {
	top := layer.New(layer.TopCopper)
	boardPoly := &board.Polygon{
		UUID:   uuid.New(),
		Layer:  layer.New(layer.BoardOutline),
		Path:   rectOutline(t, 0, 0, 20_000_000, 10_000_000),
		Filled: true,
	}

	netA := uuid.New()
	netB := uuid.New()
	width := geometry.MustPositiveLength(200_000)

	segA := &board.NetSegment{
		UUID:          uuid.New(),
		NetSignalUUID: &netA,
		Lines: []*board.NetLine{{
			UUID:  uuid.New(),
			Start: geometry.Point{X: 5_000_000, Y: 3_000_000},
			End:   geometry.Point{X: 15_000_000, Y: 3_000_000},
			Width: width,
			Layer: top,
		}},
	}
	segB := &board.NetSegment{
		UUID:          uuid.New(),
		NetSignalUUID: &netB,
		Lines: []*board.NetLine{{
			UUID:  uuid.New(),
			Start: geometry.Point{X: 5_000_000, Y: 3_150_000},
			End:   geometry.Point{X: 15_000_000, Y: 3_150_000},
			Width: width,
			Layer: top,
		}},
	}

	model := &board.Model{
		PolygonsList:    []*board.Polygon{boardPoly},
		NetSegmentsList: []*board.NetSegment{segA, segB},
	}
	settings := Settings{MinCopperCopperClearance: 200_000}

	outcome := Run(model, netgraph.New(), settings, false, nil, NopReporter{})
	require.False(t, outcome.Cancelled)

	violations := findKind(outcome.Messages, rules.CopperCopperClearanceViolation)
	require.Len(t, violations, 1)
	assert.NotEmpty(t, violations[0].Locations)
}

// S2: a via whose drill-to-outer annular ring is thinner than the minimum,
// covered on both copper layers by a plane of the same net.
func TestScenarioS2ViaAnnularRingTooThin(t *testing.T) {
	topCopper := layer.New(layer.TopCopper)
	bottomCopper := layer.New(layer.BottomCopper)
	net := uuid.New()

	via := &board.Via{
		UUID:      uuid.New(),
		Position:  geometry.Point{X: 0, Y: 0},
		Drill:     geometry.MustPositiveLength(300_000),
		OuterSize: geometry.MustPositiveLength(500_000),
	}
	seg := &board.NetSegment{
		UUID:          uuid.New(),
		NetSignalUUID: &net,
		Vias:          []*board.Via{via},
	}

	planeOutline := rectOutline(t, -5_000_000, -5_000_000, 5_000_000, 5_000_000)
	planeTop := &board.Plane{
		UUID: uuid.New(), Outline: planeOutline, Layer: topCopper,
		MinWidth: geometry.MustPositiveLength(0), NetSignalUUID: &net,
	}
	planeBottom := &board.Plane{
		UUID: uuid.New(), Outline: planeOutline, Layer: bottomCopper,
		MinWidth: geometry.MustPositiveLength(0), NetSignalUUID: &net,
	}

	model := &board.Model{
		NetSegmentsList: []*board.NetSegment{seg},
		PlanesList:      []*board.Plane{planeTop, planeBottom},
	}
	settings := Settings{MinPthAnnularRing: 150_000}

	outcome := Run(model, netgraph.New(), settings, false, nil, NopReporter{})
	require.False(t, outcome.Cancelled)

	violations := findKind(outcome.Messages, rules.MinimumAnnularRingViolation)
	require.Len(t, violations, 1)
}

// S3: a board hole closer to a circular board outline than the minimum
// drill-to-board clearance.
func TestScenarioS3HoleTooCloseToBoardEdge(t *testing.T) {
	boardPoly := &board.Polygon{
		UUID:   uuid.New(),
		Layer:  layer.New(layer.BoardOutline),
		Path:   circlePath(t, 5_000_000),
		Filled: true,
	}
	hole := &board.Hole{
		UUID:     uuid.New(),
		Diameter: geometry.MustPositiveLength(1_000_000),
		Path:     straightPath(t, geometry.Point{X: 4_500_000, Y: 0}),
	}

	model := &board.Model{
		PolygonsList: []*board.Polygon{boardPoly},
		HolesList:    []*board.Hole{hole},
	}
	settings := Settings{MinDrillBoardClearance: 300_000}

	outcome := Run(model, netgraph.New(), settings, true, nil, NopReporter{})
	require.False(t, outcome.Cancelled)

	violations := findKind(outcome.Messages, rules.DrillBoardClearanceViolation)
	require.Len(t, violations, 1)
}

// S4: a package hole whose 2-vertex slot path is disallowed under a None
// allowance.
func TestScenarioS4SlotDisallowed(t *testing.T) {
	hole := &board.Hole{
		UUID:     uuid.New(),
		Diameter: geometry.MustPositiveLength(800_000),
		Path: straightPath(t,
			geometry.Point{X: -2_500_000, Y: 0},
			geometry.Point{X: 2_500_000, Y: 0},
		),
	}
	model := &board.Model{HolesList: []*board.Hole{hole}}
	settings := Settings{AllowedPthSlots: SlotNone}

	// Board holes are non-plated (NPTH) in this core; exercise the PTH path
	// via a footprint pad hole instead so AllowedPthSlots actually governs it.
	pad := &board.FootprintPad{
		UUID: uuid.New(),
		Holes: []board.PadHole{{
			UUID:     uuid.New(),
			Diameter: geometry.MustPositiveLength(800_000),
			Path: straightPath(t,
				geometry.Point{X: -2_500_000, Y: 0},
				geometry.Point{X: 2_500_000, Y: 0},
			),
		}},
		Geometries:            map[layer.Layer]board.PadGeometry{},
		IncomingNetLineLayers: map[layer.Layer]bool{},
	}
	dev := &board.Device{
		UUID:      uuid.New(),
		Footprint: &board.Footprint{Pads: []*board.FootprintPad{pad}},
	}
	model.DevicesList = []*board.Device{dev}

	outcome := Run(model, netgraph.New(), settings, true, nil, NopReporter{})
	require.False(t, outcome.Cancelled)

	violations := findKind(outcome.Messages, rules.ForbiddenSlot)
	require.Len(t, violations, 1)
}

// S5: a footprint outline polygon whose first vertex does not equal its
// last — the only outline on the board, so both OpenBoardOutlinePolygon
// and MissingBoardOutline fire.
func TestScenarioS5OpenBoardOutline(t *testing.T) {
	openPoly := &board.Polygon{
		UUID:  uuid.New(),
		Layer: layer.New(layer.BoardOutline),
		Path: straightPath(t,
			geometry.Point{X: 0, Y: 0},
			geometry.Point{X: 10_000_000, Y: 0},
			geometry.Point{X: 10_000_000, Y: 10_000_000},
		),
	}
	dev := &board.Device{
		UUID:      uuid.New(),
		Footprint: &board.Footprint{Polygons: []*board.Polygon{openPoly}},
	}
	model := &board.Model{DevicesList: []*board.Device{dev}}

	outcome := Run(model, netgraph.New(), Settings{}, true, nil, NopReporter{})
	require.False(t, outcome.Cancelled)

	assert.Len(t, findKind(outcome.Messages, rules.OpenBoardOutlinePolygon), 1)
	assert.Len(t, findKind(outcome.Messages, rules.MissingBoardOutline), 1)
}

// S6: a non-schematic-only ComponentInstance with no placed Device.
func TestScenarioS6MissingDevice(t *testing.T) {
	ci := &board.ComponentInstance{UUID: uuid.New(), SchematicOnly: false}
	model := &board.Model{
		ProjectRef: &board.Project{CircuitRef: &board.Circuit{Instances: []*board.ComponentInstance{ci}}},
	}

	outcome := Run(model, netgraph.New(), Settings{}, true, nil, NopReporter{})
	require.False(t, outcome.Cancelled)

	violations := findKind(outcome.Messages, rules.MissingDevice)
	require.Len(t, violations, 1)
	assert.Equal(t, rules.KeyMissingDevice(ci.UUID.String()), violations[0].ApprovalKey)
}
