package eval

import (
	"testing"

	"github.com/j-blue-arz/labyrinth/internal/maze"
)

type fakeNode struct {
	graph     *maze.MazeGraph
	player    maze.Location
	opponent  maze.Location
	objective maze.Location
}

func (n fakeNode) Graph() *maze.MazeGraph            { return n.graph }
func (n fakeNode) PlayerLocation() maze.Location     { return n.player }
func (n fakeNode) OpponentLocation() maze.Location   { return n.opponent }
func (n fakeNode) ObjectiveLocation() maze.Location  { return n.objective }

func openGraph(extent int) *maze.MazeGraph {
	g := maze.New(extent)
	for r := 0; r < extent; r++ {
		for c := 0; c < extent; c++ {
			g.SetOutPaths(maze.Location{Row: r, Column: c}, uint8(maze.North|maze.East|maze.South|maze.West))
		}
	}
	return g
}

func TestWinEvaluatorDetectsOpponentOnObjective(t *testing.T) {
	g := openGraph(3)
	obj := maze.Location{Row: 1, Column: 1}
	n := fakeNode{graph: g, opponent: obj, objective: obj, player: maze.Location{Row: 0, Column: 0}}
	got := Win{}.Evaluate(n)
	if !got.Terminal || got.Score != -1 {
		t.Errorf("got %+v, want terminal score -1", got)
	}
}

func TestWinEvaluatorNonTerminalOtherwise(t *testing.T) {
	g := openGraph(3)
	n := fakeNode{graph: g, opponent: maze.Location{Row: 0, Column: 0}, objective: maze.Location{Row: 2, Column: 2}}
	got := Win{}.Evaluate(n)
	if got.Terminal || got.Score != 0 {
		t.Errorf("got %+v, want non-terminal 0", got)
	}
}

func TestReachableLocationsSymmetricWhenEqual(t *testing.T) {
	g := openGraph(3)
	n := fakeNode{graph: g, player: maze.Location{Row: 0, Column: 0}, opponent: maze.Location{Row: 2, Column: 2}}
	got := ReachableLocations{}.Evaluate(n)
	if got.Score != 0 {
		t.Errorf("fully-connected board should give both sides equal reach, got %d", got.Score)
	}
}

func TestObjectiveDistanceZeroWhenObjectiveOnLeftover(t *testing.T) {
	g := openGraph(3)
	n := fakeNode{graph: g, player: maze.Location{Row: 0, Column: 0}, opponent: maze.Location{Row: 2, Column: 2}, objective: maze.NoLocation}
	got := ObjectiveDistance{}.Evaluate(n)
	if got.Score != 0 || got.Terminal {
		t.Errorf("got %+v, want zero non-terminal when objective is on the leftover", got)
	}
}

func TestObjectiveDistancePrefersCloserPlayer(t *testing.T) {
	g := openGraph(5)
	obj := maze.Location{Row: 4, Column: 4}
	n := fakeNode{
		graph:     g,
		player:    maze.Location{Row: 3, Column: 3},
		opponent:  maze.Location{Row: 0, Column: 0},
		objective: obj,
	}
	got := ObjectiveDistance{}.Evaluate(n)
	if got.Score <= 0 {
		t.Errorf("closer player should score positive, got %d", got.Score)
	}
}

func TestMultiEvaluatorCombinesLinearly(t *testing.T) {
	g := openGraph(3)
	obj := maze.Location{Row: 1, Column: 1}
	n := fakeNode{graph: g, opponent: obj, objective: obj, player: maze.Location{Row: 0, Column: 0}}
	m := NewWinAndReachable()
	got := m.Evaluate(n)
	if !got.Terminal {
		t.Error("expected terminal from the Win component to propagate through Multi")
	}
	if got.Score >= 0 {
		t.Errorf("expected a strongly negative score dominated by the win term, got %d", got.Score)
	}
}

func TestReachableLocationsCacheDistinguishesGraphs(t *testing.T) {
	open := openGraph(5)
	walled := openGraph(5)
	walled.SetOutPaths(maze.Location{Row: 0, Column: 1}, 0)
	walled.SetOutPaths(maze.Location{Row: 1, Column: 0}, 0)

	loc := maze.Location{Row: 0, Column: 0}
	openCount := reachableCount(open, loc)
	walledCount := reachableCount(walled, loc)
	if openCount == walledCount {
		t.Errorf("expected distinct reachable counts for distinct graphs, got %d for both", openCount)
	}
	if got := reachableCount(open, loc); got != openCount {
		t.Errorf("cached lookup changed: got %d, want %d", got, openCount)
	}
}

func TestEvaluationArithmetic(t *testing.T) {
	e := Evaluation{Score: 5, Terminal: true}
	if got := e.Negate(); got.Score != -5 || !got.Terminal {
		t.Errorf("Negate: got %+v", got)
	}
	if got := e.Scale(3); got.Score != 15 || !got.Terminal {
		t.Errorf("Scale: got %+v", got)
	}
	sum := e.Add(Evaluation{Score: 2, Terminal: false})
	if sum.Score != 7 || !sum.Terminal {
		t.Errorf("Add: got %+v", sum)
	}
}
