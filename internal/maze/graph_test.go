package maze

import "testing"

func newTestGraph(extent int) *MazeGraph {
	g := New(extent)
	for r := 0; r < extent; r++ {
		for c := 0; c < extent; c++ {
			g.SetOutPaths(Location{Row: r, Column: c}, uint8(North|East|South|West))
		}
	}
	g.SetLeftoverOutPaths(uint8(North | South))
	for k := 0; 2*k+1 < extent; k++ {
		odd := 2*k + 1
		g.AddShiftLocation(Location{Row: 0, Column: odd})
		g.AddShiftLocation(Location{Row: extent - 1, Column: odd})
		g.AddShiftLocation(Location{Row: odd, Column: 0})
		g.AddShiftLocation(Location{Row: odd, Column: extent - 1})
	}
	return g
}

func TestShiftPreservesNodeCount(t *testing.T) {
	g := newTestGraph(7)
	before := collectIDs(g)

	g.Shift(Location{Row: 0, Column: 1}, 1)

	after := collectIDs(g)
	if len(before) != len(after) {
		t.Fatalf("node count changed: %d -> %d", len(before), len(after))
	}
	for id := range before {
		if !after[id] {
			t.Errorf("node id %d vanished after shift", id)
		}
	}
}

func collectIDs(g *MazeGraph) map[int]bool {
	ids := make(map[int]bool, g.NumNodes()+1)
	for _, n := range g.tiles {
		ids[n.NodeID] = true
	}
	ids[g.Leftover().NodeID] = true
	return ids
}

func TestShiftIsOwnInverse(t *testing.T) {
	g := newTestGraph(7)
	before := append([]Node(nil), g.tiles...)
	beforeLeftover := g.Leftover()

	shiftLoc := Location{Row: 3, Column: 0}
	g.Shift(shiftLoc, 1)
	leftoverRotationAfterFirst := g.Leftover().Rotation

	opposing := OpposingShift(shiftLoc, g.Extent())
	g.Shift(opposing, leftoverRotationAfterFirst)

	for i := range before {
		if g.tiles[i].NodeID != before[i].NodeID {
			t.Fatalf("tile %d id mismatch after unshift: got %d want %d", i, g.tiles[i].NodeID, before[i].NodeID)
		}
	}
	if g.Leftover().NodeID != beforeLeftover.NodeID {
		t.Fatalf("leftover id mismatch after unshift: got %d want %d", g.Leftover().NodeID, beforeLeftover.NodeID)
	}
}

func TestMakeShiftUnmakeShiftRoundTrips(t *testing.T) {
	g := newTestGraph(7)
	before := append([]Node(nil), g.tiles...)
	beforeLeftover := g.Leftover()

	undo := g.MakeShift(Location{Row: 3, Column: 0}, 2)
	g.UnmakeShift(undo)

	for i := range before {
		if g.tiles[i] != before[i] {
			t.Fatalf("tile %d mismatch after unmake: got %+v want %+v", i, g.tiles[i], before[i])
		}
	}
	if g.Leftover() != beforeLeftover {
		t.Fatalf("leftover mismatch after unmake: got %+v want %+v", g.Leftover(), beforeLeftover)
	}
}

func TestRotateMaskFullTurn(t *testing.T) {
	for mask := uint8(0); mask < 16; mask++ {
		if got := RotateMask(mask, 4); got != mask {
			t.Errorf("RotateMask(%x, 4) = %x, want %x", mask, got, mask)
		}
	}
}

func TestRotateMaskMatchesDirectionRotation(t *testing.T) {
	n := Node{OutPaths: uint8(North)}
	rotated := Node{OutPaths: n.OutPaths, Rotation: 1}
	if !rotated.HasOutPath(East) {
		t.Errorf("rotating a North-only node by one quarter turn should yield East, got mask %x", rotated.Effective())
	}
}

func TestIsStraightDetectsBothAxes(t *testing.T) {
	ns := Node{OutPaths: uint8(North | South)}
	if !ns.IsStraight() {
		t.Error("N|S node should be detected as straight")
	}
	rotated := Node{OutPaths: uint8(North | South), Rotation: 1}
	if !rotated.IsStraight() {
		t.Error("rotated N|S node should still be straight (now E|W)")
	}
	corner := Node{OutPaths: uint8(North | East)}
	if corner.IsStraight() {
		t.Error("N|E corner node should not be straight")
	}
}

func TestNeighborsRequireBidirectionalOpening(t *testing.T) {
	g := New(3)
	// Open path only from (0,0) eastward; (0,1) has no westward opening.
	g.SetOutPaths(Location{Row: 0, Column: 0}, uint8(East))
	g.SetOutPaths(Location{Row: 0, Column: 1}, uint8(East))

	neighbors := g.Neighbors(Location{Row: 0, Column: 0})
	if len(neighbors) != 0 {
		t.Errorf("expected no neighbors without a matching opposite opening, got %v", neighbors)
	}

	g.SetOutPaths(Location{Row: 0, Column: 1}, uint8(East|West))
	neighbors = g.Neighbors(Location{Row: 0, Column: 0})
	if len(neighbors) != 1 || neighbors[0] != (Location{Row: 0, Column: 1}) {
		t.Errorf("expected single neighbor (0,1), got %v", neighbors)
	}
}

func TestLocationOfUsesCacheAndFallback(t *testing.T) {
	g := newTestGraph(7)
	loc := g.LocationOf(5, NoLocation)
	if loc == NoLocation {
		t.Fatal("expected to find node id 5")
	}
	if g.LocationOf(g.Leftover().NodeID, Location{Row: 9, Column: 9}) != (Location{Row: 9, Column: 9}) {
		t.Error("expected fallback for leftover id not on board")
	}
}

func TestOpposingShiftMirrorsBorder(t *testing.T) {
	cases := []struct {
		in, want Location
	}{
		{Location{Row: 0, Column: 3}, Location{Row: 6, Column: 3}},
		{Location{Row: 6, Column: 3}, Location{Row: 0, Column: 3}},
		{Location{Row: 3, Column: 0}, Location{Row: 3, Column: 6}},
		{Location{Row: 3, Column: 6}, Location{Row: 3, Column: 0}},
	}
	for _, c := range cases {
		if got := OpposingShift(c.in, 7); got != c.want {
			t.Errorf("OpposingShift(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestTranslateByShiftWrapsAtFarEnd(t *testing.T) {
	shiftLoc := Location{Row: 0, Column: 3}
	farEnd := Location{Row: 6, Column: 3}
	got := TranslateByShift(farEnd, shiftLoc, 7)
	want := OpposingShift(shiftLoc, 7)
	if got != want {
		t.Errorf("TranslateByShift(farEnd) = %v, want %v", got, want)
	}

	offLine := Location{Row: 2, Column: 2}
	if got := TranslateByShift(offLine, shiftLoc, 7); got != offLine {
		t.Errorf("TranslateByShift(offLine) = %v, want unchanged %v", got, offLine)
	}
}

func TestFingerprintChangesAfterShiftAndIsStable(t *testing.T) {
	g := newTestGraph(7)
	before := g.Fingerprint()
	if g.Fingerprint() != before {
		t.Error("Fingerprint should be stable across repeated calls on an unchanged graph")
	}

	g.Shift(Location{Row: 0, Column: 1}, 1)
	if g.Fingerprint() == before {
		t.Error("Fingerprint should change after a shift")
	}
}
