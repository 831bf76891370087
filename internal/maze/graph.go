package maze

// MazeGraph is a square extent x extent arrangement of tiles plus one
// leftover tile held off-board, and the ordered set of border cells
// where a shift may be inserted.
//
// Tile storage is a single contiguous slice of length extent*extent,
// indexed by row*extent+column (§3 "Tile storage"). Node identities are
// unique across the extent*extent+1 tiles and stay unique across any
// number of shifts — a shift only permutes which id lives where.
type MazeGraph struct {
	extent        int
	tiles         []Node
	leftover      Node
	shiftLocs     []Location
	idCache       *idIndex
}

// New allocates an extent x extent graph plus leftover, all tiles
// starting with an empty wall mask and rotation 0. Node ids are
// 0..extent*extent-1 in row-major order; the leftover's id is
// extent*extent.
func New(extent int) *MazeGraph {
	n := extent * extent
	g := &MazeGraph{
		extent: extent,
		tiles:  make([]Node, n),
	}
	for i := range g.tiles {
		g.tiles[i] = Node{NodeID: i}
	}
	g.leftover = Node{NodeID: n}
	g.idCache = newIDIndex(g)
	return g
}

// FromNodes initializes an extent x extent graph plus leftover from a
// user-supplied row-major sequence of length extent*extent+1 (the final
// element is the leftover). Node ids must be unique but need not be
// contiguous; a duplicate id panics.
func FromNodes(extent int, nodes []Node) *MazeGraph {
	want := extent*extent + 1
	if len(nodes) != want {
		panic("maze: FromNodes requires extent*extent+1 nodes")
	}
	seen := make(map[int]bool, want)
	for _, n := range nodes {
		if seen[n.NodeID] {
			panic("maze: FromNodes requires unique node ids")
		}
		seen[n.NodeID] = true
	}
	g := &MazeGraph{
		extent: extent,
		tiles:  make([]Node, extent*extent),
	}
	copy(g.tiles, nodes[:extent*extent])
	g.leftover = nodes[extent*extent]
	g.idCache = newIDIndex(g)
	return g
}

// Clone returns a deep copy of g, safe to mutate independently. Each
// solve call owns its own working copy (§3 "Lifecycle").
func (g *MazeGraph) Clone() *MazeGraph {
	clone := &MazeGraph{
		extent:   g.extent,
		tiles:    append([]Node(nil), g.tiles...),
		leftover: g.leftover,
	}
	clone.shiftLocs = append([]Location(nil), g.shiftLocs...)
	clone.idCache = newIDIndex(clone)
	return clone
}

// Extent returns the board's side length.
func (g *MazeGraph) Extent() int { return g.extent }

// NumNodes returns extent*extent, the number of on-board tiles.
func (g *MazeGraph) NumNodes() int { return len(g.tiles) }

// ShiftLocations returns the immutable set of valid shift insertion
// points, in the order they were added.
func (g *MazeGraph) ShiftLocations() []Location { return g.shiftLocs }

// AddShiftLocation registers L as a valid shift location. Shift
// locations are a subset of the border and are immutable once the
// graph is put to use (§3 invariants); callers add them all during
// construction.
func (g *MazeGraph) AddShiftLocation(l Location) {
	g.shiftLocs = append(g.shiftLocs, l)
}

func (g *MazeGraph) index(l Location) int {
	if l.Row < 0 || l.Row >= g.extent || l.Column < 0 || l.Column >= g.extent {
		panic("maze: location out of range")
	}
	return l.Row*g.extent + l.Column
}

// Node returns the tile at l.
func (g *MazeGraph) Node(l Location) Node {
	return g.tiles[g.index(l)]
}

// NodeMut returns a pointer to the tile at l for in-place mutation.
func (g *MazeGraph) NodeMut(l Location) *Node {
	return &g.tiles[g.index(l)]
}

// Leftover returns the off-board tile awaiting insertion.
func (g *MazeGraph) Leftover() Node { return g.leftover }

// SetLeftover replaces the leftover tile outright.
func (g *MazeGraph) SetLeftover(n Node) { g.leftover = n }

// SetOutPaths sets the unrotated wall-opening mask of the tile at l.
func (g *MazeGraph) SetOutPaths(l Location, mask uint8) {
	g.NodeMut(l).OutPaths = mask
}

// SetLeftoverOutPaths sets the unrotated wall-opening mask of the
// leftover tile.
func (g *MazeGraph) SetLeftoverOutPaths(mask uint8) {
	g.leftover.OutPaths = mask
}

// LocationOf does a linear search for nodeID among the on-board tiles
// and returns fallback if it is not found (typically the caller's
// current leftover location, per §4.2). The scan is O(extent^2); see
// idcache.go for the memoized fast path used by the search engines.
func (g *MazeGraph) LocationOf(nodeID int, fallback Location) Location {
	if loc, ok := g.idCache.lookup(nodeID); ok {
		return loc
	}
	for i, t := range g.tiles {
		if t.NodeID == nodeID {
			loc := Location{Row: i / g.extent, Column: i % g.extent}
			g.idCache.record(nodeID, loc)
			return loc
		}
	}
	return fallback
}

// ShiftDirection returns the unit offset pointing into the board from
// border cell l (§4.2 step 1).
func ShiftDirection(l Location, extent int) Offset {
	switch {
	case l.Row == 0:
		return Offset{DRow: 1}
	case l.Row == extent-1:
		return Offset{DRow: -1}
	case l.Column == 0:
		return Offset{DColumn: 1}
	case l.Column == extent-1:
		return Offset{DColumn: -1}
	default:
		panic("maze: shift location is not on the border")
	}
}

// Shift inserts the leftover at border cell borderLoc with the given
// rotation (in quarter turns), sliding the opposing row/column by one
// cell and ejecting the far-end tile as the new leftover (§4.2 "Shift
// algorithm").
func (g *MazeGraph) Shift(borderLoc Location, leftoverRotation int) {
	dir := ShiftDirection(borderLoc, g.extent)
	e := g.extent

	line := make([]Location, e)
	cur := borderLoc
	for i := 0; i < e; i++ {
		line[i] = cur
		cur = cur.Add(dir)
	}

	newLeftoverCandidate := g.Node(line[e-1])

	for i := e - 1; i >= 1; i-- {
		*g.NodeMut(line[i]) = g.Node(line[i-1])
	}

	inserted := g.leftover
	inserted.Rotation = ((inserted.Rotation + leftoverRotation) % 4 + 4) % 4
	*g.NodeMut(line[0]) = inserted

	g.leftover = newLeftoverCandidate
	g.idCache.invalidate()
}

// ShiftUndo captures what MakeShift changed, enough for UnmakeShift to
// restore the graph to its exact pre-shift state (§4.7 "in-place
// mutation with strict unshift-on-backtrack").
type ShiftUndo struct {
	line       []Location
	savedTiles []Node
	leftover   Node
}

// MakeShift performs Shift in place and returns an undo record, for
// callers (MM's child iterator) that mutate a single owned graph across
// a search tree instead of cloning per node.
func (g *MazeGraph) MakeShift(borderLoc Location, leftoverRotation int) ShiftUndo {
	dir := ShiftDirection(borderLoc, g.extent)
	e := g.extent
	line := make([]Location, e)
	cur := borderLoc
	for i := 0; i < e; i++ {
		line[i] = cur
		cur = cur.Add(dir)
	}
	saved := make([]Node, e)
	for i, l := range line {
		saved[i] = g.Node(l)
	}
	undo := ShiftUndo{line: line, savedTiles: saved, leftover: g.leftover}
	g.Shift(borderLoc, leftoverRotation)
	return undo
}

// UnmakeShift restores the graph to the state it was in before the
// MakeShift call that produced u. Must be called in strict LIFO order
// against a chain of MakeShift calls.
func (g *MazeGraph) UnmakeShift(u ShiftUndo) {
	for i, l := range u.line {
		*g.NodeMut(l) = u.savedTiles[i]
	}
	g.leftover = u.leftover
	g.idCache.invalidate()
}

// Fingerprint returns a cheap, order-sensitive hash of the board's
// current tile layout (FNV-1a-style mixing of each tile's id and
// effective mask, plus the leftover). It is not incremental:
// internal/eval recomputes it on every reachable-count lookup, where it
// is still far cheaper than the BFS query it gates (§9 "location_of... caching... is an implementation
// choice" extends naturally to other O(E^2) lookups).
func (g *MazeGraph) Fingerprint() uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	mix := func(v uint64) {
		h ^= v
		h *= prime64
	}
	for _, t := range g.tiles {
		mix(uint64(t.NodeID))
		mix(uint64(t.Effective()))
	}
	mix(uint64(g.leftover.NodeID))
	mix(uint64(g.leftover.Effective()))
	return h
}

// Neighbors returns the in-board cells connected to l by a bidirectional
// edge: both tiles' effective openings point at each other and the
// target cell is inside the grid (§4.2 "Effective openings").
func (g *MazeGraph) Neighbors(l Location) []Location {
	src := g.Node(l)
	result := make([]Location, 0, 4)
	for _, d := range allDirections {
		if !src.HasOutPath(d) {
			continue
		}
		target := l.Add(d.unitOffset())
		if target.Row < 0 || target.Row >= g.extent || target.Column < 0 || target.Column >= g.extent {
			continue
		}
		if g.Node(target).HasOutPath(opposite(d)) {
			result = append(result, target)
		}
	}
	return result
}
