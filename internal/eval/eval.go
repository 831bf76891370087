// Package eval implements the pluggable position evaluators MM uses:
// terminal win detection, heuristics, and their linear combination
// (§4.6, C7).
package eval

import "github.com/j-blue-arz/labyrinth/internal/maze"

// Evaluation is an integer score plus a flag that subtree exploration
// should stop at this node (§3 "Evaluation value").
type Evaluation struct {
	Score    int
	Terminal bool
}

// Negate flips the score's sign, preserving the terminal flag.
func (e Evaluation) Negate() Evaluation {
	return Evaluation{Score: -e.Score, Terminal: e.Terminal}
}

// Add combines two evaluations; the result is terminal if either
// operand is.
func (e Evaluation) Add(other Evaluation) Evaluation {
	return Evaluation{Score: e.Score + other.Score, Terminal: e.Terminal || other.Terminal}
}

// Scale multiplies the score by factor, preserving the terminal flag.
func (e Evaluation) Scale(factor int) Evaluation {
	return Evaluation{Score: e.Score * factor, Terminal: e.Terminal}
}

// Node is the capability MM's game tree nodes expose to evaluators —
// just enough to score a position without evaluators depending on the
// mm package's GameTreeNode type (§9 "Polymorphic evaluators").
type Node interface {
	Graph() *maze.MazeGraph
	PlayerLocation() maze.Location
	OpponentLocation() maze.Location
	ObjectiveLocation() maze.Location
}

// Evaluator is the capability set every evaluator variant implements.
type Evaluator interface {
	Evaluate(node Node) Evaluation
}
