package mm

import (
	"github.com/j-blue-arz/labyrinth/internal/action"
	"github.com/j-blue-arz/labyrinth/internal/control"
	"github.com/j-blue-arz/labyrinth/internal/eval"
)

// Infinity bounds the alpha-beta window; large enough that no evaluator
// combination in this package is expected to reach it (§4.7, mirrors the
// chess-engine convention of a generous sentinel rather than MaxInt).
const Infinity = 1 << 20

// negamax searches node to depth (maxDepth-depth) plies, returning the
// evaluation from node's side-to-move perspective and the action of the
// first child that reached the best score, or ErrorAction when node is
// terminal, at maxDepth, or has no child searched (§4.7 "Negamax with
// alpha-beta", "Ties ... broken by first-improvement").
func negamax(node *GameTreeNode, evaluator eval.Evaluator, alpha, beta, depth, maxDepth int, abortFlag *control.AbortFlag) (eval.Evaluation, action.Player) {
	current := evaluator.Evaluate(node)
	if current.Terminal || depth == maxDepth {
		return current, action.ErrorAction
	}

	best := eval.Evaluation{Score: -Infinity}
	bestAction := action.ErrorAction

	it := newChildIterator(node)
	for it.Next() {
		if abortFlag.IsAborted() {
			break
		}
		childEval, _ := negamax(it.Child(), evaluator, -beta, -alpha, depth+1, maxDepth, abortFlag)
		v := childEval.Negate()

		if bestAction.IsError() || v.Score > best.Score {
			best = v
			bestAction = it.Action()
		}
		if v.Score > alpha {
			alpha = v.Score
		}
		if alpha >= beta {
			break
		}
	}
	it.Close()

	if bestAction.IsError() {
		return current, action.ErrorAction
	}
	return best, bestAction
}
