// Package netgraph models the board's NetSignal ↔ ComponentSignalInstance
// ↔ Pad relationship as an arena-indexed graph instead of the cyclic
// back-references spec.md §9 calls out for re-architecture: each entity
// lives in its owning container, and cross-references are typed integer
// indices into that arena rather than pointers into one another.
//
// Adapted from the locking and functional-option conventions of
// lvlath/core's Graph type, narrowed to this module's one actual need:
// read-only traversal from a Pad to the NetSignal it belongs to (and back)
// without the DRC engine ever holding a pointer cycle.
package netgraph

import (
	"sync"

	"github.com/boarddrc/drc/drcerr"
)

// VertexKind distinguishes the three entity roles this graph connects.
type VertexKind uint8

const (
	KindNetSignal VertexKind = iota
	KindComponentSignalInstance
	KindPad
)

// VertexIndex is an arena index into Graph.vertices — stable for the
// lifetime of the Graph, never reused after a vertex is added.
type VertexIndex int

// Vertex is one entity in the relationship: its role and its own UUID
// string (the board object's real identity, not a graph-local name).
type Vertex struct {
	Kind VertexKind
	UUID string
}

// Graph is a read-mostly arena of vertices plus an adjacency list of
// undirected edges between them (e.g. Pad—ComponentSignalInstance,
// ComponentSignalInstance—NetSignal). A sync.RWMutex guards concurrent
// reads during parallel check phases and the one build pass that
// populates the graph from the BoardModel.
type Graph struct {
	mu       sync.RWMutex
	vertices []Vertex
	byUUID   map[string]VertexIndex
	adj      map[VertexIndex][]VertexIndex
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		byUUID: make(map[string]VertexIndex),
		adj:    make(map[VertexIndex][]VertexIndex),
	}
}

// AddVertex inserts a vertex for the given kind/UUID if not already
// present, returning its stable index.
func (g *Graph) AddVertex(kind VertexKind, uuid string) VertexIndex {
	g.mu.Lock()
	defer g.mu.Unlock()
	if idx, ok := g.byUUID[uuid]; ok {
		return idx
	}
	idx := VertexIndex(len(g.vertices))
	g.vertices = append(g.vertices, Vertex{Kind: kind, UUID: uuid})
	g.byUUID[uuid] = idx
	return idx
}

// Connect adds an undirected edge between two existing vertices.
func (g *Graph) Connect(a, b VertexIndex) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if int(a) >= len(g.vertices) || int(b) >= len(g.vertices) {
		return drcerr.New(drcerr.Logic, "netgraph.Connect: vertex index out of range", nil)
	}
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
	return nil
}

// IndexOf returns the vertex index for a UUID, if present.
func (g *Graph) IndexOf(uuid string) (VertexIndex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	idx, ok := g.byUUID[uuid]
	return idx, ok
}

// Neighbors returns the indices directly connected to v.
func (g *Graph) Neighbors(v VertexIndex) []VertexIndex {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]VertexIndex, len(g.adj[v]))
	copy(out, g.adj[v])
	return out
}

// Vertex returns the vertex record at idx.
func (g *Graph) Vertex(idx VertexIndex) Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.vertices[idx]
}

// NetSignalForPad walks Pad → ComponentSignalInstance → NetSignal and
// returns the NetSignal UUID, if the pad is linked to one at all.
func (g *Graph) NetSignalForPad(padUUID string) (string, bool) {
	padIdx, ok := g.IndexOf(padUUID)
	if !ok {
		return "", false
	}
	for _, csi := range g.Neighbors(padIdx) {
		if g.Vertex(csi).Kind != KindComponentSignalInstance {
			continue
		}
		for _, sig := range g.Neighbors(csi) {
			if g.Vertex(sig).Kind == KindNetSignal {
				return g.Vertex(sig).UUID, true
			}
		}
	}
	return "", false
}

// LinkPadToSignal wires a Pad to a NetSignal through an intermediate
// ComponentSignalInstance vertex, building all three arena entries as
// needed. csiUUID is the ComponentSignalInstance's own UUID — a distinct
// identity from both the pad and the signal, per spec.md §3's
// FootprintPad.ComponentSignalInstance reference.
func (g *Graph) LinkPadToSignal(padUUID, csiUUID, netSignalUUID string) {
	pad := g.AddVertex(KindPad, padUUID)
	csi := g.AddVertex(KindComponentSignalInstance, csiUUID)
	sig := g.AddVertex(KindNetSignal, netSignalUUID)
	_ = g.Connect(pad, csi)
	_ = g.Connect(csi, sig)
}
