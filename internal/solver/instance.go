// Package solver holds the input both search engines consume: one
// SolverInstance per solve call (§3 "SolverInstance").
package solver

import "github.com/j-blue-arz/labyrinth/internal/maze"

// Instance is the owned input to a solve call. Graph is taken by value
// semantics at the API boundary — callers pass a graph and each solve
// works against its own clone, never mutating the caller's copy.
// OpponentLocation is maze.NoLocation for EXH, which is single-player.
// PreviousShift is maze.NoLocation if no shift has happened yet.
type Instance struct {
	Graph            *maze.MazeGraph
	PlayerLocation   maze.Location
	OpponentLocation maze.Location
	ObjectiveID      int
	PreviousShift    maze.Location
}
