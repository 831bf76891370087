// Package exh implements the exhaustive single-player search: a
// breadth-first search over game states that returns a shortest
// sequence of actions landing the player on the objective (§4.5, C5).
package exh

import (
	"github.com/j-blue-arz/labyrinth/internal/action"
	"github.com/j-blue-arz/labyrinth/internal/control"
	"github.com/j-blue-arz/labyrinth/internal/maze"
	"github.com/j-blue-arz/labyrinth/internal/reach"
	"github.com/j-blue-arz/labyrinth/internal/solver"
)

var abortFlag control.AbortFlag

// AbortComputation sets EXH's abort flag (§6 "exh::abort_computation").
// Safe for a single search in flight at a time (§9); with more than one,
// it aborts all of them.
func AbortComputation() { abortFlag.Abort() }

// ResetAbort clears EXH's abort flag, readying the package for a new
// search. Exported so callers across package boundaries (such as
// internal/ffi's tests) can restore state without reaching into an
// unexported field.
func ResetAbort() { abortFlag.Clear() }

// gameState is one node of the implicit BFS tree: the shift that
// produced it from its parent, plus the player's reachable set after
// that shift. States are stored in a flat arena and linked by parent
// index rather than pointers, mirroring the BFS ownership directly (§9
// "Cyclic/tree state in EXH... prefer arena + index").
type gameState struct {
	parent    int // -1 for the root
	shift     action.Shift
	reachable []reach.Node
}

// FindBestActions returns a shortest list of PlayerActions that, applied
// in order from inst, lands the player on the objective. It returns an
// empty list if the search is aborted or no solution exists.
func FindBestActions(inst solver.Instance) []action.Player {
	states := []gameState{{
		parent: -1,
		shift:  action.Shift{Location: inst.PreviousShift, Rotation: 0},
		reachable: []reach.Node{{
			ParentSourceIndex: 0,
			Location:          inst.PlayerLocation,
		}},
	}}
	queue := []int{0}

	for len(queue) > 0 {
		if abortFlag.IsAborted() {
			return nil
		}
		idx := queue[0]
		queue = queue[1:]
		s := states[idx]

		working := reconstructGraph(inst.Graph, states, idx)

		invalid := maze.NoLocation
		if !s.shift.Location.IsNone() {
			invalid = maze.OpposingShift(s.shift.Location, working.Extent())
		}

		rotations := rotationsFor(working.Leftover())

		for _, loc := range working.ShiftLocations() {
			if loc == invalid {
				continue
			}
			for _, rot := range rotations {
				child := working.Clone()
				child.Shift(loc, rot)

				sources := make([]maze.Location, len(s.reachable))
				for i, rn := range s.reachable {
					sources[i] = maze.TranslateByShift(rn.Location, loc, child.Extent())
				}
				reached := reach.MultiSource(child, sources)

				shift := action.Shift{Location: loc, Rotation: rot}
				if winIdx, ok := findObjective(child, reached, inst.ObjectiveID); ok {
					return reconstructActions(states, idx, shift, reached, winIdx)
				}

				states = append(states, gameState{parent: idx, shift: shift, reachable: reached})
				queue = append(queue, len(states)-1)
			}
		}
	}
	return nil
}

func findObjective(g *maze.MazeGraph, reached []reach.Node, objectiveID int) (int, bool) {
	for i, rn := range reached {
		if g.Node(rn.Location).NodeID == objectiveID {
			return i, true
		}
	}
	return 0, false
}

// rotationsFor enumerates the distinct rotations worth trying for the
// given leftover tile: two for a straight piece, four otherwise (§4.5
// "Rotation symmetry").
func rotationsFor(leftover maze.Node) []int {
	n := leftover.RotationSymmetry()
	rotations := make([]int, n)
	for i := range rotations {
		rotations[i] = i
	}
	return rotations
}

// reconstructGraph clones the initial graph and replays the chain of
// shifts from the root down to states[idx] (§4.5 step 1).
func reconstructGraph(initial *maze.MazeGraph, states []gameState, idx int) *maze.MazeGraph {
	var chain []action.Shift
	for cur := idx; states[cur].parent != -1; cur = states[cur].parent {
		chain = append(chain, states[cur].shift)
	}
	g := initial.Clone()
	for i := len(chain) - 1; i >= 0; i-- {
		g.Shift(chain[i].Location, chain[i].Rotation)
	}
	return g
}

// reconstructActions walks from the winning reachable-set entry back to
// the root, collecting (shift, move_location) pairs, then reverses them
// into the final action list (§4.5 "Reconstruction").
//
// Each reach.Node's Location is already expressed against its own
// round's post-shift graph, so no id->location resolution step is
// needed beyond what is already recorded; §9 leaves the exact
// bookkeeping an implementation choice as long as it is correct.
func reconstructActions(states []gameState, parentIdx int, winningShift action.Shift, winningReachable []reach.Node, winningIndex int) []action.Player {
	type step struct {
		shift    action.Shift
		location maze.Location
	}

	steps := []step{{shift: winningShift, location: winningReachable[winningIndex].Location}}
	idx := winningReachable[winningIndex].ParentSourceIndex

	for cur := parentIdx; states[cur].parent != -1; cur = states[cur].parent {
		steps = append(steps, step{shift: states[cur].shift, location: states[cur].reachable[idx].Location})
		idx = states[cur].reachable[idx].ParentSourceIndex
	}

	actions := make([]action.Player, len(steps))
	for i, st := range steps {
		actions[len(steps)-1-i] = action.Player{Shift: st.shift, MoveLocation: st.location}
	}
	return actions
}
