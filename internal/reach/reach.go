// Package reach implements the three reachability queries the search
// engines need over a maze.MazeGraph's neighbor relation: single-pair,
// single-source, and multi-source with provenance (§4.3, C3).
package reach

import "github.com/j-blue-arz/labyrinth/internal/maze"

// Node is a multi-source BFS result record: the reached location and
// the index, into the caller's sources slice, of the source this
// location descends from (§3 "Reachable-node record").
type Node struct {
	ParentSourceIndex int
	Location          maze.Location
}

// IsReachable reports whether dst is reachable from src over g's
// neighbor relation, early-exiting as soon as dst is dequeued.
func IsReachable(g *maze.MazeGraph, src, dst maze.Location) bool {
	if src == dst {
		return true
	}
	visited := map[maze.Location]bool{src: true}
	queue := []maze.Location{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == dst {
			return true
		}
		for _, next := range g.Neighbors(cur) {
			if visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return false
}

// From returns every cell in src's connected component. Order is BFS
// discovery order, which is deterministic for a given graph layout.
func From(g *maze.MazeGraph, src maze.Location) []maze.Location {
	visited := map[maze.Location]bool{src: true}
	queue := []maze.Location{src}
	result := []maze.Location{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range g.Neighbors(cur) {
			if visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
			result = append(result, next)
		}
	}
	return result
}

// MultiSource runs one BFS seeded with every location in sources,
// deduplicated by location. Each reached cell records the index of the
// source it descends from; a source cell records its own index, and
// ties among equal-depth sources are broken in favor of the
// earlier-indexed source (§4.3 invariant).
func MultiSource(g *maze.MazeGraph, sources []maze.Location) []Node {
	visited := make(map[maze.Location]int, len(sources))
	queue := make([]maze.Location, 0, len(sources))
	result := make([]Node, 0, len(sources))

	for i, s := range sources {
		if _, seen := visited[s]; seen {
			continue
		}
		visited[s] = i
		queue = append(queue, s)
		result = append(result, Node{ParentSourceIndex: i, Location: s})
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		parentIdx := visited[cur]
		for _, next := range g.Neighbors(cur) {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = parentIdx
			queue = append(queue, next)
			result = append(result, Node{ParentSourceIndex: parentIdx, Location: next})
		}
	}
	return result
}
