package mm

import (
	"github.com/j-blue-arz/labyrinth/internal/action"
	"github.com/j-blue-arz/labyrinth/internal/maze"
	"github.com/j-blue-arz/labyrinth/internal/reach"
)

// childIterator enumerates a GameTreeNode's children by mutating its
// shared graph in place and undoing the mutation as it advances, instead
// of cloning a graph per candidate — the dominant cost at search depth
// (§4.7 "Why this shape"). Between calls to Next, except transiently
// during the call itself, the graph is in the state produced by applying
// the iterator's current (shift, rotation) to the parent's graph.
//
// Enumeration order is shift location (node's ShiftLocations order),
// then rotation (0..symmetry-1), then move location (reachable-set BFS
// discovery order) — the deterministic order the engine's contract
// promises (§4.8 "Ordering").
type childIterator struct {
	node *GameTreeNode

	shiftLocs []maze.Location
	invalid   maze.Location
	shiftIdx  int

	leftoverRotation int // the to-be-inserted tile's rotation before any shift
	maxRotation      int
	rotation         int

	shifted bool
	undo    maze.ShiftUndo
	moverAt maze.Location // node.player translated by the current shift

	reachable []maze.Location
	reachIdx  int

	started bool
}

func newChildIterator(node *GameTreeNode) *childIterator {
	invalid := maze.NoLocation
	if !node.previousShift.IsNone() {
		invalid = maze.OpposingShift(node.previousShift, node.graph.Extent())
	}
	return &childIterator{
		node:             node,
		shiftLocs:        node.graph.ShiftLocations(),
		invalid:          invalid,
		shiftIdx:         -1,
		leftoverRotation: node.graph.Leftover().Rotation,
		maxRotation:      node.graph.Leftover().RotationSymmetry(),
		reachIdx:         -1,
	}
}

// Next advances to the next (shift, rotation, move) candidate, returning
// false once every candidate has been visited. On a false return the
// graph has been restored to the state it was in when the iterator was
// created.
func (it *childIterator) Next() bool {
	if it.started && it.reachIdx+1 < len(it.reachable) {
		it.reachIdx++
		return true
	}
	for {
		if it.started && it.rotation+1 < it.maxRotation {
			it.rotation++
			it.rewriteRotation()
			it.reachIdx = 0
			if len(it.reachable) > 0 {
				return true
			}
			continue
		}
		if it.shifted {
			it.node.graph.UnmakeShift(it.undo)
			it.shifted = false
		}
		if !it.advanceShiftLocation() {
			return false
		}
		it.started = true
		it.rotation = 0
		it.applyShift()
		it.reachIdx = 0
		if len(it.reachable) > 0 {
			return true
		}
	}
}

func (it *childIterator) advanceShiftLocation() bool {
	for {
		it.shiftIdx++
		if it.shiftIdx >= len(it.shiftLocs) {
			return false
		}
		if it.shiftLocs[it.shiftIdx] != it.invalid {
			return true
		}
	}
}

func (it *childIterator) applyShift() {
	loc := it.shiftLocs[it.shiftIdx]
	it.undo = it.node.graph.MakeShift(loc, 0)
	it.shifted = true
	it.moverAt = maze.TranslateByShift(it.node.player, loc, it.node.graph.Extent())
	it.reachable = reach.From(it.node.graph, it.moverAt)
}

// rewriteRotation advances the already-inserted tile's rotation without
// a full unshift/reshift cycle (§4.7 "if current rotation < symmetry max
// ... just rewrite the inserted tile's rotation").
func (it *childIterator) rewriteRotation() {
	loc := it.shiftLocs[it.shiftIdx]
	normalized := ((it.leftoverRotation+it.rotation)%4 + 4) % 4
	it.node.graph.NodeMut(loc).Rotation = normalized
	it.reachable = reach.From(it.node.graph, it.moverAt)
}

// Action returns the PlayerAction for the current candidate.
func (it *childIterator) Action() action.Player {
	return action.Player{
		Shift:        action.Shift{Location: it.shiftLocs[it.shiftIdx], Rotation: it.rotation},
		MoveLocation: it.reachable[it.reachIdx],
	}
}

// Child builds the GameTreeNode for the current candidate: roles swap,
// the previous mover's final square becomes the new opponent, the
// previous opponent's square (translated by this shift) becomes the new
// player to move (§4.7 "Every PlayerAction yielded... swapped roles").
func (it *childIterator) Child() *GameTreeNode {
	loc := it.shiftLocs[it.shiftIdx]
	return &GameTreeNode{
		graph:         it.node.graph,
		player:        maze.TranslateByShift(it.node.opponent, loc, it.node.graph.Extent()),
		opponent:      it.reachable[it.reachIdx],
		objectiveID:   it.node.objectiveID,
		previousShift: loc,
	}
}

// Close restores the graph to its pre-iteration state if the caller
// stops consuming the iterator before Next returns false.
func (it *childIterator) Close() {
	if it.shifted {
		it.node.graph.UnmakeShift(it.undo)
		it.shifted = false
	}
}
