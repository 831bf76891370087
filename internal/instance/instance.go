// Package instance parses the benchmark instance file format (§6
// "Instance file format") into a solver.Instance plus the metadata the
// benchmark tool reports alongside it. Grounded on
// algolibs/benchmark/benchmark_reader.h; pure parsing and validation,
// no search logic. Neither internal/exh nor internal/mm import this
// package — they consume a solver.Instance directly.
package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/j-blue-arz/labyrinth/internal/graphbuilder"
	"github.com/j-blue-arz/labyrinth/internal/maze"
	"github.com/j-blue-arz/labyrinth/internal/solver"
)

// depthToken extracts an embedded "_d<N>" expected-depth marker from an
// instance name (§6, §5 "_d<N> expected-depth token").
var depthToken = regexp.MustCompile(`_d([0-9]+)`)

// Instance is a parsed benchmark instance: the solver input plus the
// bookkeeping fields the benchmark/CLI tools report but the engines
// never see.
type Instance struct {
	Name          string
	ExpectedDepth int
	Solver        solver.Instance
}

// Load reads and parses the instance file at path.
func Load(path string) (Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return Instance{}, fmt.Errorf("instance: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads the instance-file grammar from r:
//
//	line 1:        name, possibly containing a "_dN" token
//	line 2:        "E P" (extent, player count)
//	next E*4 lines: ASCII maze block (graphbuilder.FromASCII)
//	next line:     leftover out-paths, a subset of "NESW"
//	next P lines:  "row column" player locations
//	last line:     "row column" objective location ("-1 -1" for the leftover)
//
// Only the first player location becomes solver.Instance.PlayerLocation;
// a second, if present, becomes OpponentLocation (§3 "SolverInstance").
func Parse(r io.Reader) (Instance, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	name, err := nextLine(scanner, "instance name")
	if err != nil {
		return Instance{}, err
	}
	expectedDepth := 0
	if m := depthToken.FindStringSubmatch(name); m != nil {
		expectedDepth, _ = strconv.Atoi(m[1])
	}

	header, err := nextLine(scanner, "extent/player-count line")
	if err != nil {
		return Instance{}, err
	}
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return Instance{}, fmt.Errorf("instance: want \"E P\" header, got %q", header)
	}
	extent, err := strconv.Atoi(fields[0])
	if err != nil {
		return Instance{}, fmt.Errorf("instance: invalid extent %q: %w", fields[0], err)
	}
	numPlayers, err := strconv.Atoi(fields[1])
	if err != nil {
		return Instance{}, fmt.Errorf("instance: invalid player count %q: %w", fields[1], err)
	}

	mazeLines := make([]string, extent*4)
	for i := range mazeLines {
		line, err := nextLine(scanner, "maze block line")
		if err != nil {
			return Instance{}, err
		}
		mazeLines[i] = line
	}
	g, err := graphbuilder.FromASCII(mazeLines)
	if err != nil {
		return Instance{}, err
	}
	graphbuilder.ApplyStandardShiftLocations(g)

	leftoverLine, err := nextLine(scanner, "leftover out-paths line")
	if err != nil {
		return Instance{}, err
	}
	leftoverMask, err := graphbuilder.LeftoverOutPathsFromLetters(strings.TrimSpace(leftoverLine))
	if err != nil {
		return Instance{}, err
	}
	g.SetLeftoverOutPaths(leftoverMask)

	playerLocs := make([]maze.Location, numPlayers)
	for i := range playerLocs {
		loc, err := readLocation(scanner, "player location")
		if err != nil {
			return Instance{}, err
		}
		playerLocs[i] = loc
	}

	objectiveLoc, err := readLocation(scanner, "objective location")
	if err != nil {
		return Instance{}, err
	}

	inst := solver.Instance{
		Graph:            g,
		PlayerLocation:   maze.NoLocation,
		OpponentLocation: maze.NoLocation,
		ObjectiveID:      objectiveID(g, objectiveLoc),
		PreviousShift:    maze.NoLocation,
	}
	if numPlayers > 0 {
		inst.PlayerLocation = playerLocs[0]
	}
	if numPlayers > 1 {
		inst.OpponentLocation = playerLocs[1]
	}

	return Instance{Name: name, ExpectedDepth: expectedDepth, Solver: inst}, nil
}

// objectiveID resolves the instance file's objective location to a node
// id: (-1,-1) names the leftover, any other location a tile on the
// board (§6 "use -1 -1 for leftover").
func objectiveID(g *maze.MazeGraph, loc maze.Location) int {
	if loc == maze.NoLocation {
		return g.Leftover().NodeID
	}
	return g.Node(loc).NodeID
}

func nextLine(scanner *bufio.Scanner, what string) (string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("instance: reading %s: %w", what, err)
		}
		return "", fmt.Errorf("instance: unexpected end of file reading %s", what)
	}
	return scanner.Text(), nil
}

func readLocation(scanner *bufio.Scanner, what string) (maze.Location, error) {
	line, err := nextLine(scanner, what)
	if err != nil {
		return maze.Location{}, err
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return maze.Location{}, fmt.Errorf("instance: want \"row column\" for %s, got %q", what, line)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return maze.Location{}, fmt.Errorf("instance: invalid row in %s %q: %w", what, line, err)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return maze.Location{}, fmt.Errorf("instance: invalid column in %s %q: %w", what, line, err)
	}
	return maze.Location{Row: row, Column: col}, nil
}
