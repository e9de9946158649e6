package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/boarddrc/drc/board"
	"github.com/boarddrc/drc/geometry"
	"github.com/boarddrc/drc/layer"
	"github.com/boarddrc/drc/path"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func straightPath(t *testing.T, points ...geometry.Point) path.Path {
	t.Helper()
	vertices := make([]path.Vertex, len(points))
	for i, pt := range points {
		vertices[i] = path.Vertex{Position: pt}
	}
	p, err := path.New(vertices)
	require.NoError(t, err)
	return p
}

func TestCLIReportsClearanceViolationAndExitsNonZero(t *testing.T) {
	dir := t.TempDir()

	top := layer.New(layer.TopCopper)
	boardPoly := &board.Polygon{
		UUID:  uuid.New(),
		Layer: layer.New(layer.BoardOutline),
		Path: straightPath(t,
			geometry.Point{X: 0, Y: 0},
			geometry.Point{X: 20_000_000, Y: 0},
			geometry.Point{X: 20_000_000, Y: 10_000_000},
			geometry.Point{X: 0, Y: 10_000_000},
			geometry.Point{X: 0, Y: 0},
		),
		Filled: true,
	}
	netA, netB := uuid.New(), uuid.New()
	width := geometry.MustPositiveLength(200_000)
	segA := &board.NetSegment{
		UUID: uuid.New(), NetSignalUUID: &netA,
		Lines: []*board.NetLine{{UUID: uuid.New(),
			Start: geometry.Point{X: 5_000_000, Y: 3_000_000},
			End:   geometry.Point{X: 15_000_000, Y: 3_000_000},
			Width: width, Layer: top}},
	}
	segB := &board.NetSegment{
		UUID: uuid.New(), NetSignalUUID: &netB,
		Lines: []*board.NetLine{{UUID: uuid.New(),
			Start: geometry.Point{X: 5_000_000, Y: 3_150_000},
			End:   geometry.Point{X: 15_000_000, Y: 3_150_000},
			Width: width, Layer: top}},
	}

	model := &board.Model{
		PolygonsList:    []*board.Polygon{boardPoly},
		NetSegmentsList: []*board.NetSegment{segA, segB},
	}
	snap := snapshot{BoardName: "demo", Model: model}
	data, err := json.Marshal(snap)
	require.NoError(t, err)
	boardPath := writeFile(t, dir, "board.json", data)

	settingsPath := writeFile(t, dir, "settings.yaml", []byte("min_copper_copper_clearance_nm: 200000\n"))

	var out bytes.Buffer
	root := rootCmd
	root.SetOut(&out)
	root.SetArgs([]string{"--settings", settingsPath, boardPath})
	err = root.Execute()
	require.ErrorIs(t, err, errReportedFailure)

	require.Contains(t, out.String(), "Board 'demo':")
	require.Contains(t, out.String(), "Non-approved messages: 1")
	require.Contains(t, out.String(), "[ERROR]")
}

func TestLoadSnapshotRejectsMissingModel(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "empty.json", []byte(`{"board_name":"x"}`))
	_, _, err := loadSnapshot(p)
	require.Error(t, err)
}

func TestLoadApprovedKeysMissingFileIsNotError(t *testing.T) {
	approved, err := loadApprovedKeys(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	require.Empty(t, approved)
}
