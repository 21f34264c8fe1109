package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/countdown/internal/domain"
	"svw.info/countdown/internal/expr"
)

func TestCompare(t *testing.T) {
	u, _ := newTestService(t)
	cases := []struct {
		name    string
		numbers []int
		target  int
		want    string
	}{
		{"both exact", []int{10, 5}, 15, "Both solvers found exact solutions!"},
		{"heuristic approximation", []int{10, 5}, 3, "Exhaustive search found no solution, heuristic found close approximation: 2 (diff: 1)"},
		{"neither", []int{1, 2, 3, 4}, 999, "Neither solver found a solution"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := domain.NewPuzzle(tc.numbers, tc.target)
			c, err := u.Compare(context.Background(), p)
			require.NoError(t, err)
			assert.Same(t, p, c.Puzzle)
			assert.Equal(t, tc.want, c.Summary)
			assert.Equal(t, "exhaustive", c.Exhaustive.SolverName)
			assert.Equal(t, "heuristic", c.Heuristic.SolverName)
			assert.GreaterOrEqual(t, c.SpeedRatio, 0.0)
		})
	}
}

func result(outcome domain.Outcome, value, diff int) domain.Result {
	r := domain.Result{Verdict: domain.Verdict{Outcome: outcome, Value: value, Diff: diff}, Duration: time.Millisecond}
	if outcome != domain.NoSolution {
		r.Expression = expr.Terminal(value)
	}
	return r
}

func TestSummarize(t *testing.T) {
	none := result(domain.NoSolution, 0, 0)
	cases := []struct {
		name   string
		ex, he domain.Result
		want   string
	}{
		{"exhaustive exact only", result(domain.Exact, 500, 0), result(domain.Approximate, 490, 10),
			"Exhaustive search found exact solution, heuristic approximation"},
		{"heuristic exact only", result(domain.Approximate, 499, 1), result(domain.Exact, 500, 0),
			"Heuristic found exact solution, exhaustive search approximation"},
		{"both approximate", result(domain.Approximate, 499, 1), result(domain.Approximate, 490, 10),
			"Both found approximations: exhaustive 499 (diff: 1), heuristic 490 (diff: 10)"},
		{"only exhaustive", result(domain.Exact, 500, 0), none,
			"Only exhaustive search found an exact solution"},
		{"exhaustive approximation", result(domain.Approximate, 498, 2), none,
			"Heuristic found no solution, exhaustive search found approximation: 498 (diff: 2)"},
		{"only heuristic", none, result(domain.Exact, 500, 0),
			"Only heuristic found an exact solution"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, summarize(tc.ex, tc.he))
		})
	}
}
