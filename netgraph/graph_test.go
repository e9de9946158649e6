package netgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetSignalForPadWalksTwoHops(t *testing.T) {
	g := New()
	g.LinkPadToSignal("pad-1", "csi-1", "sig-gnd")

	sig, ok := g.NetSignalForPad("pad-1")
	assert.True(t, ok)
	assert.Equal(t, "sig-gnd", sig)
}

func TestNetSignalForPadMissingPad(t *testing.T) {
	g := New()
	_, ok := g.NetSignalForPad("nonexistent")
	assert.False(t, ok)
}

func TestConnectRejectsOutOfRangeIndex(t *testing.T) {
	g := New()
	v := g.AddVertex(KindPad, "pad-1")
	err := g.Connect(v, VertexIndex(99))
	assert.Error(t, err)
}
