package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/boarddrc/drc/board"
	"github.com/boarddrc/drc/netgraph"
)

// netLink is one Pad→ComponentSignalInstance→NetSignal edge a snapshot
// supplies so the CLI can rebuild the netgraph.Graph the core needs to
// resolve a pad's net membership — this core never traces that
// relationship itself (board.FootprintPad only carries its own UUID and
// an opaque SignalInstanceUUID).
type netLink struct {
	PadUUID                 string `json:"pad_uuid"`
	ComponentSignalInstance string `json:"component_signal_instance_uuid"`
	NetSignalUUID           string `json:"net_signal_uuid"`
}

// snapshot is the minimal on-disk JSON shape cmd/drccheck reads: a board
// name for the report header, the board.Model itself, and the net-link
// table netgraph.Graph is built from. This is the demonstration shim
// spec.md §6 calls for, not a project file format (out of scope per
// spec.md §1's Non-goals).
type snapshot struct {
	BoardName string       `json:"board_name"`
	Model     *board.Model `json:"model"`
	NetLinks  []netLink    `json:"net_links"`
}

func loadSnapshot(path string) (*snapshot, *netgraph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("drccheck: failed to read board snapshot: %w", err)
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, nil, fmt.Errorf("drccheck: failed to parse board snapshot: %w", err)
	}
	if snap.Model == nil {
		return nil, nil, fmt.Errorf("drccheck: board snapshot has no model")
	}

	g := netgraph.New()
	for _, link := range snap.NetLinks {
		g.LinkPadToSignal(link.PadUUID, link.ComponentSignalInstance, link.NetSignalUUID)
	}
	return &snap, g, nil
}

// loadApprovedKeys reads a JSON array of canonical approval-key text
// (rules.Key.Canonical() output) from path. A missing path is not an
// error: it means no approvals are on file yet.
func loadApprovedKeys(path string) (map[string]struct{}, error) {
	approved := map[string]struct{}{}
	if path == "" {
		return approved, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return approved, nil
	}
	if err != nil {
		return nil, fmt.Errorf("drccheck: failed to read approved-keys file: %w", err)
	}
	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("drccheck: failed to parse approved-keys file: %w", err)
	}
	for _, k := range keys {
		approved[k] = struct{}{}
	}
	return approved, nil
}
