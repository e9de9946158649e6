package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMirrorTopBottomCopper(t *testing.T) {
	assert.Equal(t, New(BottomCopper), New(TopCopper).Mirror())
	assert.Equal(t, New(TopCopper), New(BottomCopper).Mirror())
}

func TestMirrorInvariantLayers(t *testing.T) {
	inner := InnerCopperLayer(2)
	assert.True(t, inner.Mirror().Equal(inner))
	outline := New(BoardOutline)
	assert.True(t, outline.Mirror().Equal(outline))
}

func TestInnerCopperIndexing(t *testing.T) {
	l := InnerCopperLayer(3)
	assert.True(t, l.IsCopper())
	assert.True(t, l.IsInnerCopper(3))
	assert.False(t, l.IsInnerCopper(2))
}

func TestCopperLayersOrdering(t *testing.T) {
	layers := CopperLayers(2)
	assert.Equal(t, New(TopCopper), layers[0])
	assert.True(t, layers[1].IsInnerCopper(1))
	assert.True(t, layers[2].IsInnerCopper(2))
	assert.Equal(t, New(BottomCopper), layers[3])
}

func TestNewPanicsOnInnerCopper(t *testing.T) {
	assert.Panics(t, func() { New(InnerCopper) })
}

func TestParseRoundTripsString(t *testing.T) {
	for _, l := range []Layer{New(TopCopper), New(BottomCourtyard), New(BoardOutline), InnerCopperLayer(4)} {
		parsed, err := Parse(l.String())
		assert.NoError(t, err)
		assert.True(t, l.Equal(parsed))
	}
}

func TestMarshalUnmarshalText(t *testing.T) {
	l := InnerCopperLayer(2)
	text, err := l.MarshalText()
	assert.NoError(t, err)
	var decoded Layer
	assert.NoError(t, decoded.UnmarshalText(text))
	assert.True(t, l.Equal(decoded))
}

func TestParseUnknownNameErrors(t *testing.T) {
	_, err := Parse("NotALayer")
	assert.Error(t, err)
}
