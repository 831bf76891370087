package eval

import (
	"math"
)

// ReachableLocations scores a node by how much more of the board the
// player can reach than the opponent: floor(sqrt(|reach(player)|)) -
// floor(sqrt(|reach(opponent)|)) (§4.6 "ReachableLocationsHeuristic").
// It never reports a terminal position.
type ReachableLocations struct{}

// Evaluate implements Evaluator.
func (ReachableLocations) Evaluate(node Node) Evaluation {
	g := node.Graph()
	playerCount := reachableCount(g, node.PlayerLocation())
	opponentCount := reachableCount(g, node.OpponentLocation())
	return Evaluation{
		Score:    sqrtFloor(playerCount) - sqrtFloor(opponentCount),
		Terminal: false,
	}
}

func sqrtFloor(n int) int {
	return int(math.Floor(math.Sqrt(float64(n))))
}
