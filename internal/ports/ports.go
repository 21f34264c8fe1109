package ports

import (
	"context"
	"time"

	"svw.info/countdown/internal/domain"
	"svw.info/countdown/internal/expr"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    uint64
	Duration time.Duration
}

// Solver searches for an expression reaching target from numbers.
// A nil expression with a nil error means no solution was found.
// Implementations are not safe for concurrent use.
type Solver interface {
	Solve(ctx context.Context, target int, numbers []int) (*expr.Expression, Stats, error)
	Visited() uint64
}

// Generator creates new puzzles.
type Generator interface {
	Generate(ctx context.Context, large, max int) (*domain.Puzzle, Stats, error)
	GenerateClassic(ctx context.Context) (*domain.Puzzle, Stats, error)
	GenerateWithTarget(ctx context.Context, target, large, max int) (*domain.Puzzle, Stats, error)
}

// Validator re-evaluates an expression independently of the search that built it.
type Validator interface {
	Verify(ctx context.Context, target int, e *expr.Expression) (domain.Verdict, error)
}

// Hinter extracts a single suggested step from a solution.
type Hinter interface {
	Hint(ctx context.Context, e *expr.Expression) (domain.Hint, bool, error)
}

// Metrics observes solver runs.
type Metrics interface {
	ObserveSolve(kind domain.SolverKind, outcome domain.Outcome, st Stats)
	ObserveGenerate(st Stats)
}
