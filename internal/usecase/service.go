package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"svw.info/countdown/internal/domain"
	"svw.info/countdown/internal/ports"
)

// SolverFactory builds a fresh solver per call; solvers keep per-call counters.
type SolverFactory func(kind domain.SolverKind) (ports.Solver, error)

// GeneratorFactory builds a generator seeded for one request.
type GeneratorFactory func(seed int64) ports.Generator

type Service struct {
	Solvers    SolverFactory
	Generators GeneratorFactory
	Validator  ports.Validator
	Hinter     ports.Hinter
	Metrics    ports.Metrics
	Logger     *slog.Logger
}

func NewService(s SolverFactory, g GeneratorFactory, v ports.Validator, h ports.Hinter, m ports.Metrics, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{Solvers: s, Generators: g, Validator: v, Hinter: h, Metrics: m, Logger: logger}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Solve runs one solver and re-verifies whatever it returned.
// A missing solution is reported through the verdict, not as an error.
func (u *Service) Solve(ctx context.Context, kind domain.SolverKind, target int, numbers []int) (domain.Result, error) {
	if u.Solvers == nil || u.Validator == nil {
		return domain.Result{}, errNotConfigured
	}
	s, err := u.Solvers(kind)
	if err != nil {
		return domain.Result{}, err
	}
	res := domain.Result{Solver: kind, SolverName: kind.String()}

	e, st, err := s.Solve(ctx, target, numbers)
	res.Nodes, res.Duration = st.Nodes, st.Duration
	if err != nil {
		return res, fmt.Errorf("%s solver: %w", kind, err)
	}
	res.Expression = e

	res.Verdict, err = u.Validator.Verify(ctx, target, e)
	if err != nil {
		return res, fmt.Errorf("verify %s result: %w", kind, err)
	}
	if u.Metrics != nil {
		u.Metrics.ObserveSolve(kind, res.Verdict.Outcome, st)
	}
	u.Logger.Debug("solve",
		"solver", kind.String(),
		"target", target,
		"numbers", numbers,
		"outcome", res.Verdict.Outcome.String(),
		"nodes", st.Nodes,
		"dur", st.Duration.Round(time.Microsecond),
	)
	return res, nil
}

// Generate draws a puzzle. A zero target picks one at random; large < 0 asks for a
// classic six-number puzzle with a random large count.
func (u *Service) Generate(ctx context.Context, seed int64, target, large, max int) (*domain.Puzzle, ports.Stats, error) {
	if u.Generators == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	g := u.Generators(seed)
	var (
		p   *domain.Puzzle
		st  ports.Stats
		err error
	)
	switch {
	case large < 0:
		p, st, err = g.GenerateClassic(ctx)
	case target != 0:
		p, st, err = g.GenerateWithTarget(ctx, target, large, max)
	default:
		p, st, err = g.Generate(ctx, large, max)
	}
	if err != nil {
		return nil, st, err
	}
	if u.Metrics != nil {
		u.Metrics.ObserveGenerate(st)
	}
	u.Logger.Debug("generate", "id", p.ID, "seed", seed, "numbers", p.Numbers, "target", p.Target)
	return p, st, nil
}

// Hint solves the puzzle with kind and suggests the first reduction of the answer.
// The returned bool is false when there is nothing to suggest.
func (u *Service) Hint(ctx context.Context, kind domain.SolverKind, target int, numbers []int) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	res, err := u.Solve(ctx, kind, target, numbers)
	if err != nil {
		return domain.Hint{}, false, err
	}
	if !res.Found() {
		return domain.Hint{}, false, nil
	}
	return u.Hinter.Hint(ctx, res.Expression)
}
