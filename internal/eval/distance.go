package eval

import "github.com/j-blue-arz/labyrinth/internal/maze"

// ObjectiveDistance scores a node by how much closer the player is to
// the objective than the opponent is, using Chebyshev distance
// (dist(opponent,objective) - dist(player,objective)). It reports 0 if
// either distance is already 0 or the objective currently sits on the
// leftover tile, since the shift about to happen makes any such
// distance moot (§4.6 "ObjectiveChessboardDistance").
type ObjectiveDistance struct{}

// Evaluate implements Evaluator.
func (ObjectiveDistance) Evaluate(node Node) Evaluation {
	objective := node.ObjectiveLocation()
	if objective.IsNone() {
		return Evaluation{}
	}
	playerDist := chebyshev(node.PlayerLocation(), objective)
	opponentDist := chebyshev(node.OpponentLocation(), objective)
	if playerDist == 0 || opponentDist == 0 {
		return Evaluation{}
	}
	return Evaluation{Score: opponentDist - playerDist}
}

func chebyshev(a, b maze.Location) int {
	dr := abs(a.Row - b.Row)
	dc := abs(a.Column - b.Column)
	if dr > dc {
		return dr
	}
	return dc
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
