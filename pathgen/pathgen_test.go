package pathgen

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/boarddrc/drc/board"
	"github.com/boarddrc/drc/geometry"
	"github.com/boarddrc/drc/layer"
	"github.com/boarddrc/drc/netgraph"
	"github.com/boarddrc/drc/path"
)

func mustLen(v int64) geometry.PositiveLength {
	return geometry.MustPositiveLength(geometry.Length(v))
}

func tol() geometry.UnsignedLength {
	return geometry.MustUnsignedLength(1000)
}

func TestHoleRoundDrillRendersDisc(t *testing.T) {
	p, err := path.New([]path.Vertex{{Position: geometry.Point{X: 0, Y: 0}}})
	require.NoError(t, err)

	h := &board.Hole{UUID: uuid.New(), Diameter: mustLen(500_000), Path: p}
	set, err := Hole(h, 0, tol())
	require.NoError(t, err)
	require.Len(t, set.Paths, 1)
	require.Greater(t, len(set.Paths[0]), 4)
}

func TestPlaneEmptyBeforeRebuild(t *testing.T) {
	p := &board.Plane{UUID: uuid.New()}
	set := Plane(p)
	require.Empty(t, set.Paths)
}

func TestPlaneRendersFragments(t *testing.T) {
	p := &board.Plane{
		Fragments: [][]geometry.Point{
			{{X: 0, Y: 0}, {X: 1000, Y: 0}, {X: 1000, Y: 1000}, {X: 0, Y: 1000}},
		},
	}
	set := Plane(p)
	require.Len(t, set.Paths, 1)
	require.Len(t, set.Paths[0], 4)
}

func TestStrokeTextUnionsCharacterPaths(t *testing.T) {
	p1, err := path.New([]path.Vertex{
		{Position: geometry.Point{X: 0, Y: 0}},
		{Position: geometry.Point{X: 1_000_000, Y: 0}},
	})
	require.NoError(t, err)
	st := &board.StrokeText{
		StrokeWidth:    mustLen(200_000),
		CharacterPaths: []path.Path{p1},
	}
	set, err := StrokeText(st, 0, tol())
	require.NoError(t, err)
	require.NotEmpty(t, set.Paths)
}

func TestCopperByNetSetCollectsViasAndRespectsNetFilter(t *testing.T) {
	top := layer.New(layer.TopCopper)
	seg := &board.NetSegment{
		UUID: uuid.New(),
		Vias: []*board.Via{
			{UUID: uuid.New(), Position: geometry.Point{X: 0, Y: 0}, Drill: mustLen(300_000), OuterSize: mustLen(600_000)},
		},
	}
	model := &board.Model{NetSegmentsList: []*board.NetSegment{seg}}
	g := netgraph.New()

	set, err := CopperByNetSet(model, g, top, nil, true, tol())
	require.NoError(t, err)
	require.NotEmpty(t, set.Paths)

	netFiltered, err := CopperByNetSet(model, g, top, map[string]bool{"some-other-net": true}, true, tol())
	require.NoError(t, err)
	require.Empty(t, netFiltered.Paths)
}

func TestWorldPadMirrorsLayerAndPosition(t *testing.T) {
	top := layer.New(layer.TopCopper)
	pad := &board.FootprintPad{
		UUID:       uuid.New(),
		Position:   geometry.Point{X: 100, Y: 200},
		Geometries: map[layer.Layer]board.PadGeometry{top: {Shape: board.PadRoundedRect, Width: mustLen(500_000), Height: mustLen(500_000)}},
	}
	dev := &board.Device{Transform: board.Transform{Mirror: true}}

	wp := worldPad(dev, pad)
	require.Equal(t, geometry.Length(-100), wp.Position.X)
	_, stillTop := wp.Geometries[top]
	require.False(t, stillTop)
	_, nowBottom := wp.Geometries[layer.New(layer.BottomCopper)]
	require.True(t, nowBottom)
}
