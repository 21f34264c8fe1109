package usecase

import (
	"context"
	"fmt"

	"svw.info/countdown/internal/domain"
)

// Compare runs the exhaustive then the heuristic solver on the same puzzle.
func (u *Service) Compare(ctx context.Context, p *domain.Puzzle) (*domain.Comparison, error) {
	ex, err := u.Solve(ctx, domain.Exhaustive, p.Target, p.Numbers)
	if err != nil {
		return nil, err
	}
	he, err := u.Solve(ctx, domain.Heuristic, p.Target, p.Numbers)
	if err != nil {
		return nil, err
	}
	c := &domain.Comparison{
		Puzzle:     p,
		Exhaustive: ex,
		Heuristic:  he,
		Summary:    summarize(ex, he),
		SpeedRatio: 1,
	}
	if ex.Duration > 0 {
		c.SpeedRatio = float64(he.Duration) / float64(ex.Duration)
	}
	return c, nil
}

func summarize(ex, he domain.Result) string {
	exExact := ex.Verdict.Outcome == domain.Exact
	heExact := he.Verdict.Outcome == domain.Exact
	switch {
	case ex.Found() && he.Found():
		switch {
		case exExact && heExact:
			return "Both solvers found exact solutions!"
		case exExact:
			return "Exhaustive search found exact solution, heuristic approximation"
		case heExact:
			return "Heuristic found exact solution, exhaustive search approximation"
		}
		return fmt.Sprintf("Both found approximations: exhaustive %d (diff: %d), heuristic %d (diff: %d)",
			ex.Verdict.Value, ex.Verdict.Diff, he.Verdict.Value, he.Verdict.Diff)
	case ex.Found():
		if exExact {
			return "Only exhaustive search found an exact solution"
		}
		return fmt.Sprintf("Heuristic found no solution, exhaustive search found approximation: %d (diff: %d)",
			ex.Verdict.Value, ex.Verdict.Diff)
	case he.Found():
		if heExact {
			return "Only heuristic found an exact solution"
		}
		return fmt.Sprintf("Exhaustive search found no solution, heuristic found close approximation: %d (diff: %d)",
			he.Verdict.Value, he.Verdict.Diff)
	default:
		return "Neither solver found a solution"
	}
}
