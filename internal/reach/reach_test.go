package reach

import (
	"testing"

	"github.com/j-blue-arz/labyrinth/internal/maze"
)

func openGraph(extent int) *maze.MazeGraph {
	g := maze.New(extent)
	for r := 0; r < extent; r++ {
		for c := 0; c < extent; c++ {
			g.SetOutPaths(maze.Location{Row: r, Column: c}, uint8(maze.North|maze.East|maze.South|maze.West))
		}
	}
	return g
}

func TestIsReachableSymmetric(t *testing.T) {
	g := openGraph(5)
	a := maze.Location{Row: 0, Column: 0}
	b := maze.Location{Row: 4, Column: 4}
	if IsReachable(g, a, b) != IsReachable(g, b, a) {
		t.Error("reachability should be symmetric on an undirected neighbor relation")
	}
}

func TestIsReachableBlockedByWalls(t *testing.T) {
	g := maze.New(3)
	// No openings set anywhere: every cell is isolated.
	if IsReachable(g, maze.Location{Row: 0, Column: 0}, maze.Location{Row: 0, Column: 1}) {
		t.Error("expected no reachability between disconnected cells")
	}
}

func TestFromCoversWholeComponent(t *testing.T) {
	g := openGraph(3)
	got := From(g, maze.Location{Row: 1, Column: 1})
	if len(got) != 9 {
		t.Errorf("expected all 9 cells reachable, got %d", len(got))
	}
}

func TestMultiSourceParentIndicesMatchSources(t *testing.T) {
	g := openGraph(3)
	sources := []maze.Location{{Row: 0, Column: 0}, {Row: 2, Column: 2}}
	nodes := MultiSource(g, sources)

	bySource := map[maze.Location]int{}
	for _, n := range nodes {
		bySource[n.Location] = n.ParentSourceIndex
	}
	for i, s := range sources {
		if got := bySource[s]; got != i {
			t.Errorf("source %v: parent index = %d, want %d", s, got, i)
		}
	}
	if len(nodes) != 9 {
		t.Errorf("expected all 9 cells reached exactly once, got %d", len(nodes))
	}
}

func TestMultiSourceDedupesSharedSource(t *testing.T) {
	g := openGraph(2)
	dup := maze.Location{Row: 0, Column: 0}
	nodes := MultiSource(g, []maze.Location{dup, dup})
	count := 0
	for _, n := range nodes {
		if n.Location == dup {
			count++
		}
	}
	if count != 1 {
		t.Errorf("duplicate source should appear once, got %d", count)
	}
}

func TestMultiSourceEarlierSourceWinsTies(t *testing.T) {
	g := openGraph(3)
	left := maze.Location{Row: 1, Column: 0}
	right := maze.Location{Row: 1, Column: 2}
	mid := maze.Location{Row: 1, Column: 1}
	nodes := MultiSource(g, []maze.Location{left, right})
	for _, n := range nodes {
		if n.Location == mid {
			if n.ParentSourceIndex != 0 {
				t.Errorf("equidistant cell should attach to earlier source 0, got %d", n.ParentSourceIndex)
			}
		}
	}
}
