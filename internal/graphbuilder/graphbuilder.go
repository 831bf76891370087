// Package graphbuilder constructs maze.MazeGraph values from external
// descriptions: the ASCII text format read by instance files, and a few
// programmatic patterns useful for fixtures and throughput benchmarks
// (§4.1, grounded on algolibs/graphbuilder/text_graph_builder.h and
// snake_graph_builder.cpp). Nothing in internal/exh or internal/mm
// imports this package; a MazeGraph, once built, is all either engine
// needs.
package graphbuilder

import (
	"fmt"
	"strings"

	"github.com/j-blue-arz/labyrinth/internal/maze"
)

// linesPerNode is the number of text lines a row of tiles occupies: the
// three content rows (north, west/east, south) plus the trailing
// dash-separator row (§6 "each tile is 3x3 characters within a 4x4
// cell including separator").
const linesPerNode = 4

// FromASCII parses lines into a MazeGraph. lines must hold exactly
// extent*4 entries, four per row of tiles, in the layout:
//
//	###|###|
//	#..|..#|
//	#.#|###|
//	--------
//
// Column c of a tile row occupies characters [c*4, c*4+3); the corner
// characters are unused, and the mid-edge characters encode openings:
// '.' open, '#' wall. The leftover's rotation starts at 0; callers set
// its out-paths and the board's shift locations separately.
func FromASCII(lines []string) (*maze.MazeGraph, error) {
	if len(lines)%linesPerNode != 0 {
		return nil, fmt.Errorf("graphbuilder: %d lines is not a multiple of %d", len(lines), linesPerNode)
	}
	extent := len(lines) / linesPerNode
	if extent == 0 {
		return nil, fmt.Errorf("graphbuilder: empty maze text")
	}

	g := maze.New(extent)
	for row := 0; row < extent; row++ {
		north := lines[row*linesPerNode]
		mid := lines[row*linesPerNode+1]
		south := lines[row*linesPerNode+2]
		for col := 0; col < extent; col++ {
			mask, err := tileMask(north, mid, south, col)
			if err != nil {
				return nil, fmt.Errorf("graphbuilder: row %d column %d: %w", row, col, err)
			}
			g.SetOutPaths(maze.Location{Row: row, Column: col}, mask)
		}
	}
	return g, nil
}

func tileMask(north, mid, south string, col int) (uint8, error) {
	base := col * linesPerNode
	if base+3 > len(north) || base+3 > len(mid) || base+3 > len(south) {
		return 0, fmt.Errorf("line too short for column %d", col)
	}
	var mask uint8
	if north[base+1] == '.' {
		mask |= uint8(maze.North)
	}
	if mid[base+2] == '.' {
		mask |= uint8(maze.East)
	}
	if south[base+1] == '.' {
		mask |= uint8(maze.South)
	}
	if mid[base] == '.' {
		mask |= uint8(maze.West)
	}
	return mask, nil
}

// LeftoverOutPathsFromLetters parses a subset of "NESW" (any order, any
// case) into the bitmask SetLeftoverOutPaths expects (§6 "leftover's
// out-paths as a subset of NESW").
func LeftoverOutPathsFromLetters(letters string) (uint8, error) {
	var mask uint8
	for _, r := range strings.ToUpper(letters) {
		switch r {
		case 'N':
			mask |= uint8(maze.North)
		case 'E':
			mask |= uint8(maze.East)
		case 'S':
			mask |= uint8(maze.South)
		case 'W':
			mask |= uint8(maze.West)
		default:
			return 0, fmt.Errorf("graphbuilder: invalid out-path letter %q", r)
		}
	}
	return mask, nil
}

// StandardShiftLocations returns the conventional shift insertion points
// for an odd extent: the odd-indexed cell of each border edge (§6
// "Standard-shift-locations convention"). The order matches the
// original reading order: top row, bottom row, left column, right
// column.
func StandardShiftLocations(extent int) []maze.Location {
	var locs []maze.Location
	for col := 1; col < extent; col += 2 {
		locs = append(locs, maze.Location{Row: 0, Column: col})
	}
	for col := 1; col < extent; col += 2 {
		locs = append(locs, maze.Location{Row: extent - 1, Column: col})
	}
	for row := 1; row < extent; row += 2 {
		locs = append(locs, maze.Location{Row: row, Column: 0})
	}
	for row := 1; row < extent; row += 2 {
		locs = append(locs, maze.Location{Row: row, Column: extent - 1})
	}
	return locs
}

// ApplyStandardShiftLocations registers StandardShiftLocations(extent)
// on g, for callers building a graph that otherwise has none.
func ApplyStandardShiftLocations(g *maze.MazeGraph) {
	for _, loc := range StandardShiftLocations(g.Extent()) {
		g.AddShiftLocation(loc)
	}
}

// Snake lays out an extent x extent board as a single corridor that
// runs back and forth along each row, turning at the first and last
// columns: inner-column tiles are east-west straights and the turning
// tiles are corners. The two path ends, (0,0) and the end of the last
// row, additionally get an east-west opening (grounded on
// algolibs/graphbuilder/snake_graph_builder.cpp). Useful as a
// throughput fixture: its longest shortest-path is on the order of
// extent^2, the worst case for a BFS-based reachability query.
func Snake(extent int) *maze.MazeGraph {
	g := maze.New(extent)
	for col := 1; col < extent-1; col++ {
		for row := 0; row < extent; row++ {
			g.SetOutPaths(maze.Location{Row: row, Column: col}, uint8(maze.East|maze.West))
		}
	}
	for row := 1; row < extent; row++ {
		loc := maze.Location{Row: row, Column: 0}
		if row%2 != 0 {
			g.SetOutPaths(loc, uint8(maze.East|maze.South))
		} else {
			g.SetOutPaths(loc, uint8(maze.North|maze.East))
		}
	}
	for row := 0; row < extent; row++ {
		loc := maze.Location{Row: row, Column: extent - 1}
		if row%2 == 0 {
			g.SetOutPaths(loc, uint8(maze.South|maze.West))
		} else {
			g.SetOutPaths(loc, uint8(maze.North|maze.West))
		}
	}
	lastRow := extent - 1
	if extent%2 == 0 {
		addOutPaths(g, maze.Location{Row: lastRow, Column: 0}, uint8(maze.East|maze.West))
	} else {
		addOutPaths(g, maze.Location{Row: lastRow, Column: extent - 1}, uint8(maze.East|maze.West))
	}
	addOutPaths(g, maze.Location{Row: 0, Column: 0}, uint8(maze.East|maze.West))
	return g
}

func addOutPaths(g *maze.MazeGraph, l maze.Location, mask uint8) {
	g.SetOutPaths(l, g.Node(l).OutPaths|mask)
}
