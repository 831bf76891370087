package eval

// Multi linearly combines several evaluators: Σ factor_i * eval_i(node),
// terminal if any operand is (§4.6 "MultiEvaluator").
type Multi struct {
	Evaluators []Evaluator
	Factors    []int
}

// Evaluate implements Evaluator.
func (m Multi) Evaluate(node Node) Evaluation {
	var total Evaluation
	for i, e := range m.Evaluators {
		total = total.Add(e.Evaluate(node).Scale(m.Factors[i]))
	}
	return total
}
