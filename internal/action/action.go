// Package action holds the move vocabulary both search engines produce:
// a shift insertion plus, for a player action, where the token moves to
// afterward (§4, C4 "Action model").
package action

import "github.com/j-blue-arz/labyrinth/internal/maze"

// Shift is a border insertion: where the leftover goes in and which of
// the 1-4 distinct rotations it is given.
type Shift struct {
	Location maze.Location
	Rotation int
}

// Player is one turn: a shift followed by a move to a location that is
// reachable after that shift.
type Player struct {
	Shift        Shift
	MoveLocation maze.Location
}

// NoShift is the sentinel previous-shift value meaning "no shift has
// happened yet" (§3 "SolverInstance").
var NoShift = Shift{Location: maze.NoLocation, Rotation: 0}

// ErrorAction is the sentinel result MM returns when no child ever
// improved alpha at depth 1 (§4.7 "Iterative deepening").
var ErrorAction = Player{
	Shift:        Shift{Location: maze.Location{Row: 0, Column: 0}, Rotation: 0},
	MoveLocation: maze.NoLocation,
}

// IsError reports whether a is the MM sentinel error action.
func (a Player) IsError() bool {
	return a == ErrorAction
}
