package solver

import (
	"fmt"

	"svw.info/countdown/internal/domain"
	"svw.info/countdown/internal/ports"
)

// New returns a fresh solver of the given kind. Options only affect Heuristic.
func New(kind domain.SolverKind, opts ...HeuristicOption) (ports.Solver, error) {
	switch kind {
	case domain.Exhaustive:
		return NewExhaustive(), nil
	case domain.Heuristic:
		return NewHeuristic(opts...), nil
	default:
		return nil, fmt.Errorf("unsupported solver kind %d", int(kind))
	}
}
