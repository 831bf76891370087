package mm

import (
	"github.com/j-blue-arz/labyrinth/internal/action"
	"github.com/j-blue-arz/labyrinth/internal/control"
	"github.com/j-blue-arz/labyrinth/internal/eval"
	"github.com/j-blue-arz/labyrinth/internal/solver"
)

var abortFlag control.AbortFlag
var statusRegistry control.StatusRegistry

// AbortComputation sets MM's abort flag (§6 "mm::abort_computation").
// Safe for a single search in flight at a time (§9); with more than one,
// it aborts all of them.
func AbortComputation() { abortFlag.Abort() }

// GetSearchStatus reports the most recently published depth and
// terminality of the outermost iterative-deepening loop (§6
// "mm::get_search_status").
func GetSearchStatus() control.SearchStatus { return statusRegistry.Status() }

// MinimaxResult pairs a chosen action with the evaluation negamax
// assigned it (§3 "MinimaxResult").
type MinimaxResult struct {
	Action     action.Player
	Evaluation eval.Evaluation
}

// FindBestAction runs a single fixed-depth negamax search from inst and
// returns its result (§6 "mm::find_best_action").
func FindBestAction(inst solver.Instance, evaluator eval.Evaluator, maxDepth int) MinimaxResult {
	working := inst.Graph.Clone()
	root := newRootNode(working, inst.PlayerLocation, inst.OpponentLocation, inst.ObjectiveID, inst.PreviousShift)
	evaluation, act := negamax(root, evaluator, -Infinity, Infinity, 0, maxDepth, &abortFlag)
	return MinimaxResult{Action: act, Evaluation: evaluation}
}

// IterateMinimax runs FindBestAction at increasing depths until a
// terminal result is found or the search is aborted, returning the best
// action from the last fully completed depth — or depth 1's partial
// answer if cancellation fires during depth 1 (§4.7 "Iterative
// deepening").
func IterateMinimax(inst solver.Instance, evaluator eval.Evaluator) action.Player {
	abortFlag.Clear()
	stored := MinimaxResult{Action: action.ErrorAction, Evaluation: eval.Evaluation{Score: -Infinity}}

	for depth := 1; ; depth++ {
		result := FindBestAction(inst, evaluator, depth)
		if !abortFlag.IsAborted() || depth == 1 {
			stored = result
		}
		statusRegistry.Publish(control.SearchStatus{CurrentDepth: depth, IsTerminal: result.Evaluation.Terminal})
		if result.Evaluation.Terminal || abortFlag.IsAborted() {
			break
		}
	}
	return stored.Action
}
