package maze

import "github.com/hashicorp/golang-lru/simplelru"

// idCacheSize bounds the reverse node-id->location index. A maze never
// holds more than extent*extent+1 ids, so any board up to extent=45
// fits without eviction; this is generous headroom over the typical
// extent=7 board from §1.
const idCacheSize = 2048

// idIndex is a reverse node-id -> location cache sitting in front of
// MazeGraph.LocationOf's linear scan (§4.2, §9 "location_of... O(E^2)
// linear scan... caching a reverse id->location map is an
// implementation choice"). It never answers authoritatively: a cache
// hit still reflects whatever was cached since the last Shift, and a
// miss just falls back to the scan.
type idIndex struct {
	graph *MazeGraph
	cache *simplelru.LRU
}

func newIDIndex(g *MazeGraph) *idIndex {
	c, err := simplelru.NewLRU(idCacheSize, nil)
	if err != nil {
		panic(err)
	}
	return &idIndex{graph: g, cache: c}
}

func (idx *idIndex) lookup(nodeID int) (Location, bool) {
	v, ok := idx.cache.Get(nodeID)
	if !ok {
		return Location{}, false
	}
	loc := v.(Location)
	// A cached location is only trustworthy while it still holds the
	// id it was recorded for; Shift purges the cache wholesale, so a
	// hit here is always consistent with the current tile layout.
	if idx.graph.tiles[idx.graph.index(loc)].NodeID != nodeID {
		idx.cache.Remove(nodeID)
		return Location{}, false
	}
	return loc, true
}

func (idx *idIndex) record(nodeID int, loc Location) {
	idx.cache.Add(nodeID, loc)
}

func (idx *idIndex) invalidate() {
	idx.cache.Purge()
}
