package eval

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/j-blue-arz/labyrinth/internal/maze"
	"github.com/j-blue-arz/labyrinth/internal/reach"
)

// reachCacheSize bounds the memoized reachable-count cache the same way
// internal/maze bounds its reverse id->location index: generous headroom
// over one search's working set, not a hard correctness limit.
const reachCacheSize = 4096

type reachCacheKey struct {
	fingerprint uint64
	loc         maze.Location
}

// reachCache is process-wide, unlike internal/maze's per-graph idCache,
// because evaluators have no owning instance to hang a cache off; the
// root lru.Cache (unlike simplelru.LRU) is mutex-guarded, matching §9's
// convention that process-wide state must tolerate concurrent readers
// even though only one search runs at a time by convention.
var reachCache = newReachCache()

func newReachCache() *lru.Cache {
	c, err := lru.New(reachCacheSize)
	if err != nil {
		panic(err)
	}
	return c
}

// reachableCount memoizes len(reach.From(g, loc)) keyed by a cheap graph
// fingerprint plus the source location — ReachableLocations.Evaluate
// calls this once per side at every node negamax visits, and alpha-beta
// frequently revisits the same (graph, location) pair across sibling
// branches that share an unmodified tail of the board (§9, extending the
// id->location cache's rationale to this hotter query).
func reachableCount(g *maze.MazeGraph, loc maze.Location) int {
	key := reachCacheKey{fingerprint: g.Fingerprint(), loc: loc}
	if v, ok := reachCache.Get(key); ok {
		return v.(int)
	}
	count := len(reach.From(g, loc))
	reachCache.Add(key, count)
	return count
}
