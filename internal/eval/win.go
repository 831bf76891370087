package eval

// Win detects a terminal position: the opponent — the side that just
// moved into this node — occupies the objective. Negamax is called from
// the perspective of the side about to move, so catching the opponent
// on the objective, not the player, is what ends the game (§4.6
// "WinEvaluator").
type Win struct{}

// Evaluate implements Evaluator.
func (Win) Evaluate(node Node) Evaluation {
	if node.OpponentLocation() == node.ObjectiveLocation() {
		return Evaluation{Score: -1, Terminal: true}
	}
	return Evaluation{Score: 0, Terminal: false}
}
