// Package ffi is the Go side of the C-struct-shaped boundary described
// in §6 "FFI surface": flat node arrays in, a single action out, degrees
// on the wire and quarter-turns inside the core. Grounded on
// algolibs/solvers/c_api.{h,cpp} and algolibs/libexhsearch/{c_api.h,
// extern.cpp}. No `import "C"` here — packaging this as a cgo shared
// library is a build-system concern outside the core's scope; this
// package only defines the struct shapes and the conversions a cgo
// wrapper would call into.
package ffi

import (
	"github.com/j-blue-arz/labyrinth/internal/action"
	"github.com/j-blue-arz/labyrinth/internal/exh"
	"github.com/j-blue-arz/labyrinth/internal/graphbuilder"
	"github.com/j-blue-arz/labyrinth/internal/maze"
	"github.com/j-blue-arz/labyrinth/internal/solver"
)

// CLocation mirrors the C struct of the same name: a (row, column) pair
// using the host language's narrowest convenient integer width.
type CLocation struct {
	Row, Column int16
}

// CNode mirrors the wire node: a stable id, the unrotated wall-opening
// bitmask (1=N, 2=E, 4=S, 8=W), and rotation in degrees (§9 "Rotation
// encoding" — only this boundary speaks degrees; internal/maze speaks
// quarter turns exclusively).
type CNode struct {
	NodeID   uint32
	OutPaths uint8
	Rotation int16
}

// CGraph is the flat row-major node array a caller passes in: length
// extent*extent+1, the leftover last.
type CGraph struct {
	Extent int
	Nodes  []CNode
}

// CAction mirrors the result struct: a shift plus where the mover ends
// up, rotation again in degrees.
type CAction struct {
	ShiftLocation CLocation
	Rotation      int16
	MoveLocation  CLocation
}

// errorLocation is the sentinel (-1,-1) both a missing move location and
// an overall error result use (§6 "an error result uses location
// (-1,-1) and rotation 0").
var errorLocation = CLocation{Row: -1, Column: -1}

// ErrorAction is the sentinel CAction an error result reports.
var ErrorAction = CAction{ShiftLocation: errorLocation, Rotation: 0, MoveLocation: errorLocation}

// quarterTurnsFromDegrees normalizes a wire rotation in degrees (any of
// 0/90/180/270, or a value congruent to one of those) to the core's
// internal quarter-turn convention.
func quarterTurnsFromDegrees(degrees int16) int {
	q := int(degrees) / 90
	return ((q % 4) + 4) % 4
}

// degreesFromQuarterTurns is the inverse conversion, applied only when
// handing a rotation back across the boundary.
func degreesFromQuarterTurns(quarterTurns int) int16 {
	return int16(((quarterTurns%4)+4)%4) * 90
}

func locationFromC(l CLocation) maze.Location {
	return maze.Location{Row: int(l.Row), Column: int(l.Column)}
}

func locationToC(l maze.Location) CLocation {
	return CLocation{Row: int16(l.Row), Column: int16(l.Column)}
}

func nodeFromC(n CNode) maze.Node {
	return maze.Node{NodeID: int(n.NodeID), OutPaths: n.OutPaths, Rotation: quarterTurnsFromDegrees(n.Rotation)}
}

// GraphFromC builds a maze.MazeGraph from the flat wire representation
// and registers the standard shift-location convention (§6), matching
// c_api.cpp's mapGraph.
func GraphFromC(g CGraph) *maze.MazeGraph {
	want := g.Extent*g.Extent + 1
	if len(g.Nodes) != want {
		panic("ffi: CGraph.Nodes length must be extent*extent+1")
	}
	nodes := make([]maze.Node, want)
	for i, n := range g.Nodes {
		nodes[i] = nodeFromC(n)
	}
	mg := maze.FromNodes(g.Extent, nodes)
	graphbuilder.ApplyStandardShiftLocations(mg)
	return mg
}

// ActionToC converts a core action.Player into the wire CAction shape.
func ActionToC(a action.Player) CAction {
	return CAction{
		ShiftLocation: locationToC(a.Shift.Location),
		Rotation:      degreesFromQuarterTurns(a.Shift.Rotation),
		MoveLocation:  locationToC(a.MoveLocation),
	}
}

// FindAction is the Go-side implementation of the exported
// "find_action" entry point: build a graph from the wire representation,
// run EXH, and return its first action in wire form (§6, grounded on
// c_api.cpp's find_action — which returns only best_actions[0], since
// the C boundary reports one action per call).
func FindAction(graph CGraph, playerLocation CLocation, objectiveID uint32, previousShift CLocation) CAction {
	inst := solver.Instance{
		Graph:            GraphFromC(graph),
		PlayerLocation:   locationFromC(playerLocation),
		OpponentLocation: maze.NoLocation,
		ObjectiveID:      int(objectiveID),
		PreviousShift:    locationFromC(previousShift),
	}
	actions := exh.FindBestActions(inst)
	if len(actions) == 0 {
		return ErrorAction
	}
	return ActionToC(actions[0])
}

// AbortSearch is the Go-side implementation of "abort_search".
func AbortSearch() {
	exh.AbortComputation()
}
