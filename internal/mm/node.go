// Package mm implements the two-player adversarial search: negamax with
// alpha-beta pruning, an in-place mutating child iterator, and iterative
// deepening with cooperative abort (§4.7, C6).
package mm

import (
	"github.com/j-blue-arz/labyrinth/internal/maze"
)

// GameTreeNode is one position in the search tree: a mutable reference
// to a shared working graph, the location of the side to move ("player")
// and the side that just moved ("opponent"), and the shift that produced
// this node (for no-pushback at the next ply). All sibling nodes created
// by a single childIterator share the same graph instance (§4.7
// "GameTreeNode").
type GameTreeNode struct {
	graph         *maze.MazeGraph
	player        maze.Location
	opponent      maze.Location
	objectiveID   int
	previousShift maze.Location
}

// newRootNode builds the root of a search tree over graph, which it uses
// as given; FindBestAction passes it a clone of the instance's graph so
// the caller's copy is never mutated.
func newRootNode(graph *maze.MazeGraph, playerLoc, opponentLoc maze.Location, objectiveID int, previousShift maze.Location) *GameTreeNode {
	return &GameTreeNode{
		graph:         graph,
		player:        playerLoc,
		opponent:      opponentLoc,
		objectiveID:   objectiveID,
		previousShift: previousShift,
	}
}

// Graph implements eval.Node.
func (n *GameTreeNode) Graph() *maze.MazeGraph { return n.graph }

// PlayerLocation implements eval.Node: the side about to move.
func (n *GameTreeNode) PlayerLocation() maze.Location { return n.player }

// OpponentLocation implements eval.Node: the side that just moved. The
// asymmetry WinEvaluator relies on follows from this: a node is a losing
// terminal for the side to move exactly when the opponent (who just
// moved) landed on the objective.
func (n *GameTreeNode) OpponentLocation() maze.Location { return n.opponent }

// ObjectiveLocation implements eval.Node, resolving the objective's
// current board cell (or NoLocation if it is presently the leftover).
func (n *GameTreeNode) ObjectiveLocation() maze.Location {
	return n.graph.LocationOf(n.objectiveID, maze.NoLocation)
}
