package board

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/boarddrc/drc/geometry"
)

func TestNetSegmentIsEmpty(t *testing.T) {
	seg := &NetSegment{}
	assert.True(t, seg.IsEmpty())

	seg.Lines = append(seg.Lines, &NetLine{})
	assert.False(t, seg.IsEmpty())
}

func TestNetSegmentHasNetLineAt(t *testing.T) {
	p := geometry.Point{X: 10, Y: 20}
	seg := &NetSegment{Lines: []*NetLine{{Start: p, End: geometry.Point{X: 30, Y: 40}}}}
	assert.True(t, seg.HasNetLineAt(p))
	assert.False(t, seg.HasNetLineAt(geometry.Point{X: 0, Y: 0}))
}

func TestDeviceInstanceByComponentUUID(t *testing.T) {
	compUUID := uuid.New()
	dev := &Device{UUID: uuid.New(), ComponentInstanceUUID: compUUID}
	m := &Model{DevicesList: []*Device{dev}}

	found, ok := m.DeviceInstanceByComponentUUID(compUUID)
	assert.True(t, ok)
	assert.Equal(t, dev, found)

	_, ok = m.DeviceInstanceByComponentUUID(uuid.New())
	assert.False(t, ok)
}

func TestCopperLayersIncludesInner(t *testing.T) {
	m := &Model{InnerCopperCount: 2}
	layers := m.CopperLayers()
	assert.Len(t, layers, 4)
}
