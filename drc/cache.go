package drc

import (
	"sort"
	"strings"

	"github.com/boarddrc/drc/layer"
	"github.com/boarddrc/drc/polygon"
)

// unionCache memoizes copper unions keyed by (layer, netSetHash) for the
// lifetime of one run, per spec.md §4.G's caching clause: this keeps
// checks 2–7 in near-linear pair count after the first layer pass.
type unionCache struct {
	entries map[string]polygon.Set
}

func newUnionCache() *unionCache {
	return &unionCache{entries: make(map[string]polygon.Set)}
}

// netSetKey builds a stable cache key from a layer and a net-UUID set.
// The set is sorted so key order never depends on map iteration order.
func netSetKey(l layer.Layer, netUUIDs map[string]bool) string {
	ids := make([]string, 0, len(netUUIDs))
	for id := range netUUIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return l.String() + "|" + strings.Join(ids, ",")
}

func (c *unionCache) get(key string) (polygon.Set, bool) {
	s, ok := c.entries[key]
	return s, ok
}

func (c *unionCache) put(key string, s polygon.Set) {
	c.entries[key] = s
}
