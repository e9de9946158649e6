package path_test

import (
	"testing"

	"github.com/boarddrc/drc/geometry"
	"github.com/boarddrc/drc/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathIsClosed(t *testing.T) {
	t.Parallel()

	p, err := path.New([]path.Vertex{
		{Position: geometry.Point{X: 0, Y: 0}},
		{Position: geometry.Point{X: 10, Y: 0}},
		{Position: geometry.Point{X: 0, Y: 0}},
	})
	require.NoError(t, err)
	assert.True(t, p.IsClosed())

	open, err := path.New([]path.Vertex{
		{Position: geometry.Point{X: 0, Y: 0}},
		{Position: geometry.Point{X: 10, Y: 0}},
	})
	require.NoError(t, err)
	assert.False(t, open.IsClosed())
}

func TestPathClassify(t *testing.T) {
	t.Parallel()

	round, _ := path.New([]path.Vertex{{Position: geometry.Point{X: 0, Y: 0}}})
	assert.Equal(t, path.ClassificationRoundDrill, round.Classify())

	straight, _ := path.New([]path.Vertex{
		{Position: geometry.Point{X: 0, Y: 0}},
		{Position: geometry.Point{X: 5_000_000, Y: 0}},
	})
	assert.Equal(t, path.ClassificationSingleSegmentStraight, straight.Classify())

	multi, _ := path.New([]path.Vertex{
		{Position: geometry.Point{X: 0, Y: 0}},
		{Position: geometry.Point{X: 5_000_000, Y: 0}},
		{Position: geometry.Point{X: 5_000_000, Y: 5_000_000}},
	})
	assert.Equal(t, path.ClassificationMultiSegmentStraight, multi.Classify())

	curved, _ := path.New([]path.Vertex{
		{Position: geometry.Point{X: 0, Y: 0}, ArcSweep: geometry.NewAngle(90000)},
		{Position: geometry.Point{X: 5_000_000, Y: 5_000_000}},
	})
	assert.Equal(t, path.ClassificationCurved, curved.Classify())
}

func TestFlattenArcsStraightPassthrough(t *testing.T) {
	t.Parallel()

	p, err := path.New([]path.Vertex{
		{Position: geometry.Point{X: 0, Y: 0}},
		{Position: geometry.Point{X: 1000, Y: 1000}},
	})
	require.NoError(t, err)

	tol := geometry.MustUnsignedLength(5000)
	pts := path.FlattenArcs(p, tol)
	require.Len(t, pts, 2)
	assert.Equal(t, geometry.Point{X: 0, Y: 0}, pts[0])
	assert.Equal(t, geometry.Point{X: 1000, Y: 1000}, pts[1])
}

func TestFlattenArcsSemicircleEndpointsExact(t *testing.T) {
	t.Parallel()

	p, err := path.New([]path.Vertex{
		{Position: geometry.Point{X: -1_000_000, Y: 0}, ArcSweep: geometry.NewAngle(180000)},
		{Position: geometry.Point{X: 1_000_000, Y: 0}},
	})
	require.NoError(t, err)

	tol := geometry.MustUnsignedLength(5000)
	pts := path.FlattenArcs(p, tol)
	require.True(t, len(pts) > 2)
	assert.Equal(t, geometry.Point{X: -1_000_000, Y: 0}, pts[0])
	assert.Equal(t, geometry.Point{X: 1_000_000, Y: 0}, pts[len(pts)-1])
}

func TestToOutlineStrokesProducesClosedRings(t *testing.T) {
	t.Parallel()

	p, err := path.New([]path.Vertex{
		{Position: geometry.Point{X: 0, Y: 0}},
		{Position: geometry.Point{X: 1_000_000, Y: 0}},
	})
	require.NoError(t, err)

	width := geometry.MustPositiveLength(200_000)
	tol := geometry.MustUnsignedLength(5000)
	rings := path.ToOutlineStrokes(p, width, tol)
	require.Len(t, rings, 1)
	assert.True(t, len(rings[0]) > 4)
}
