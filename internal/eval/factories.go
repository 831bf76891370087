package eval

// NewWin returns an evaluator that only ever reports the terminal win
// condition.
func NewWin() Evaluator {
	return Win{}
}

// NewWinAndReachable mixes the win detector with the reachable-locations
// heuristic, weighted 100:1 — the standard mix from §4.6.
func NewWinAndReachable() Evaluator {
	return Multi{
		Evaluators: []Evaluator{Win{}, ReachableLocations{}},
		Factors:    []int{100, 1},
	}
}

// NewWinAndObjectiveDistance mixes the win detector with the Chebyshev
// objective-distance heuristic, weighted 100:1 — the standard mix from
// §4.6.
func NewWinAndObjectiveDistance() Evaluator {
	return Multi{
		Evaluators: []Evaluator{Win{}, ObjectiveDistance{}},
		Factors:    []int{100, 1},
	}
}
