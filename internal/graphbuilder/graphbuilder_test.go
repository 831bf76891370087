package graphbuilder

import (
	"testing"

	"github.com/j-blue-arz/labyrinth/internal/maze"
)

func TestFromASCIIParsesOpenings(t *testing.T) {
	lines := []string{
		"###|###|#.#|",
		"#..|...|..#|",
		"#.#|#.#|###|",
		"------------",
		"#.#|###|###|",
		"#..|...|...|",
		"#.#|###|###|",
		"------------",
		"#.#|###|###|",
		"#..|#..|#..|",
		"###|#.#|#.#|",
		"------------",
	}
	g, err := FromASCII(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Extent() != 3 {
		t.Fatalf("want extent 3, got %d", g.Extent())
	}

	neighbors := g.Neighbors(maze.Location{Row: 0, Column: 0})
	want := map[maze.Location]bool{
		{Row: 0, Column: 1}: true,
		{Row: 1, Column: 0}: true,
	}
	if len(neighbors) != len(want) {
		t.Fatalf("node (0,0): want %d neighbors, got %+v", len(want), neighbors)
	}
	for _, n := range neighbors {
		if !want[n] {
			t.Errorf("node (0,0): unexpected neighbor %+v", n)
		}
	}

	if len(g.Neighbors(maze.Location{Row: 2, Column: 1})) != 0 {
		t.Errorf("node (2,1) should be isolated")
	}
}

func TestFromASCIIRejectsShortLines(t *testing.T) {
	if _, err := FromASCII([]string{"#", "#", "#", "#"}); err == nil {
		t.Error("expected an error for a too-short tile line")
	}
}

func TestFromASCIIRejectsLineCountNotMultipleOfFour(t *testing.T) {
	if _, err := FromASCII([]string{"###|", "#.#|"}); err == nil {
		t.Error("expected an error for a line count that isn't a multiple of 4")
	}
}

func TestLeftoverOutPathsFromLetters(t *testing.T) {
	mask, err := LeftoverOutPathsFromLetters("nEsw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := uint8(maze.North | maze.East | maze.South | maze.West)
	if mask != want {
		t.Errorf("want mask %04b, got %04b", want, mask)
	}

	if _, err := LeftoverOutPathsFromLetters("NX"); err == nil {
		t.Error("expected an error for an invalid letter")
	}
}

func TestStandardShiftLocations(t *testing.T) {
	locs := StandardShiftLocations(5)
	want := []maze.Location{
		{Row: 0, Column: 1}, {Row: 0, Column: 3},
		{Row: 4, Column: 1}, {Row: 4, Column: 3},
		{Row: 1, Column: 0}, {Row: 3, Column: 0},
		{Row: 1, Column: 4}, {Row: 3, Column: 4},
	}
	if len(locs) != len(want) {
		t.Fatalf("want %d shift locations, got %d: %+v", len(want), len(locs), locs)
	}
	for i, w := range want {
		if locs[i] != w {
			t.Errorf("location %d: want %+v, got %+v", i, w, locs[i])
		}
	}
}

func TestSnakeIsFullyConnected(t *testing.T) {
	g := Snake(7)
	reached := map[maze.Location]bool{{Row: 0, Column: 0}: true}
	queue := []maze.Location{{Row: 0, Column: 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(cur) {
			if !reached[n] {
				reached[n] = true
				queue = append(queue, n)
			}
		}
	}
	if len(reached) != g.NumNodes() {
		t.Errorf("want all %d tiles connected, reached %d", g.NumNodes(), len(reached))
	}
}
