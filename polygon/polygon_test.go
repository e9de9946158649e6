package polygon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boarddrc/drc/geometry"
)

func square(x0, y0, x1, y1 int64) Path64 {
	return Path64{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestSignedAreaWindingSign(t *testing.T) {
	ccw := square(0, 0, 10, 10)
	assert.True(t, IsPositive(ccw))
	assert.False(t, IsPositive(Reversed(ccw)))
}

func TestPointInPolygonBoundaryCountsInside(t *testing.T) {
	ring := square(0, 0, 10, 10)
	assert.True(t, PointInPolygon(ring, Point64{X: 5, Y: 0}))
	assert.True(t, PointInPolygon(ring, Point64{X: 5, Y: 5}))
	assert.False(t, PointInPolygon(ring, Point64{X: 15, Y: 5}))
}

func TestUnionOverlappingSquaresMergesToOneRing(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(5, 0, 15, 10)
	result := Union(Set{Paths: Paths64{a, b}})
	require.Len(t, result.Paths, 1)
	merged := result.Paths[0]
	_, _, maxX, _ := BoundingBox(merged)
	assert.Equal(t, int64(15), maxX)
}

func TestUnionDisjointSquaresStaysTwoRings(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(100, 100, 110, 110)
	result := Union(Set{Paths: Paths64{a, b}})
	assert.Len(t, result.Paths, 2)
}

func TestIntersectOverlapReturnsCommonRegion(t *testing.T) {
	a := Set{Paths: Paths64{square(0, 0, 10, 10)}}
	b := Set{Paths: Paths64{square(5, 0, 15, 10)}}
	result := Intersect(a, b)
	require.Len(t, result.Paths, 1)
	minX, _, maxX, _ := BoundingBox(result.Paths[0])
	assert.Equal(t, int64(5), minX)
	assert.Equal(t, int64(10), maxX)
}

func TestIntersectDisjointIsEmpty(t *testing.T) {
	a := Set{Paths: Paths64{square(0, 0, 10, 10)}}
	b := Set{Paths: Paths64{square(100, 100, 110, 110)}}
	assert.True(t, Intersect(a, b).IsEmpty())
}

func TestSubtractRemovesOverlappingPortion(t *testing.T) {
	a := Set{Paths: Paths64{square(0, 0, 10, 10)}}
	b := Set{Paths: Paths64{square(5, 0, 15, 10)}}
	result := Subtract(a, b)
	require.Len(t, result.Paths, 1)
	_, _, maxX, _ := BoundingBox(result.Paths[0])
	assert.Equal(t, int64(5), maxX)
}

func TestSubtractDisjointIsUnchanged(t *testing.T) {
	a := Set{Paths: Paths64{square(0, 0, 10, 10)}}
	b := Set{Paths: Paths64{square(100, 100, 110, 110)}}
	result := Subtract(a, b)
	require.Len(t, result.Paths, 1)
	assert.Equal(t, a.Paths[0], result.Paths[0])
}

func TestOffsetDilateGrowsBoundingBox(t *testing.T) {
	a := Set{Paths: Paths64{square(0, 0, 1000, 1000)}}
	result := Offset(a, geometry.Length(100), OffsetOptions{ArcTolerance: geometry.MustUnsignedLength(5)})
	require.NotEmpty(t, result.Paths)
	minX, minY, maxX, maxY := BoundingBox(result.Paths[0])
	assert.LessOrEqual(t, minX, int64(-90))
	assert.LessOrEqual(t, minY, int64(-90))
	assert.GreaterOrEqual(t, maxX, int64(1090))
	assert.GreaterOrEqual(t, maxY, int64(1090))
}

func TestOffsetErodeShrinksConvexSquare(t *testing.T) {
	a := Set{Paths: Paths64{square(0, 0, 1000, 1000)}}
	result := Offset(a, geometry.Length(-100), OffsetOptions{})
	require.Len(t, result.Paths, 1)
	minX, minY, maxX, maxY := BoundingBox(result.Paths[0])
	assert.InDelta(t, 100, minX, 1)
	assert.InDelta(t, 100, minY, 1)
	assert.InDelta(t, 900, maxX, 1)
	assert.InDelta(t, 900, maxY, 1)
}

func TestOffsetZeroIsIdentity(t *testing.T) {
	a := Set{Paths: Paths64{square(0, 0, 10, 10)}}
	result := Offset(a, 0, OffsetOptions{})
	assert.Equal(t, a, result)
}

func TestBuildTreeNestsHoleInsideOuter(t *testing.T) {
	outer := square(0, 0, 100, 100)
	hole := Reversed(square(10, 10, 90, 90))
	roots := BuildTree(Paths64{outer, hole})
	require.Len(t, roots, 1)
	require.Len(t, roots[0].Children, 1)
	assert.False(t, roots[0].IsHole)
	assert.True(t, roots[0].Children[0].IsHole)
}

func TestFlattenTreeReturnsAllRingsIgnoringTopology(t *testing.T) {
	outer := square(0, 0, 100, 100)
	hole := square(10, 10, 90, 90)
	roots := BuildTree(Paths64{outer, hole})
	flat := FlattenTree(roots)
	assert.Len(t, flat, 2)
}

func TestTreeToPathsSetsHoleSignNegative(t *testing.T) {
	outer := square(0, 0, 100, 100)
	hole := square(10, 10, 90, 90) // given as CCW/positive, should flip to negative
	roots := BuildTree(Paths64{outer, hole})
	paths := TreeToPaths(roots)
	require.Len(t, paths, 2)
	var sawHole bool
	for _, p := range paths {
		if !IsPositive(p) {
			sawHole = true
		}
	}
	assert.True(t, sawHole)
}

func TestValidateRingRejectsTooFewVertices(t *testing.T) {
	err := ValidateRing(Path64{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.ErrorIs(t, err, ErrDegenerateRing)
}
