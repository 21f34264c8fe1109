package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"svw.info/countdown/internal/domain"
)

// BenchOptions describes a batch of generated puzzles. Count 0 generates classic
// six-number puzzles.
type BenchOptions struct {
	Seed    int64
	Puzzles int
	Workers int
	Large   int
	Count   int
}

// Bench compares both solvers on Puzzles puzzles seeded Seed, Seed+1, ... with at
// most Workers comparisons in flight. Every comparison builds its own solvers.
func (u *Service) Bench(ctx context.Context, opts BenchOptions) (*domain.BenchSummary, error) {
	if opts.Puzzles < 1 {
		return nil, fmt.Errorf("bench needs at least one puzzle, got %d", opts.Puzzles)
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	comparisons := make([]*domain.Comparison, opts.Puzzles)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range comparisons {
		g.Go(func() error {
			seed := opts.Seed + int64(i)
			large := opts.Large
			if opts.Count == 0 {
				large = -1
			}
			p, _, err := u.Generate(gctx, seed, 0, large, opts.Count)
			if err != nil {
				return fmt.Errorf("puzzle %d: %w", i, err)
			}
			c, err := u.Compare(gctx, p)
			if err != nil {
				return fmt.Errorf("puzzle %d %v -> %d: %w", i, p.Numbers, p.Target, err)
			}
			comparisons[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sum := &domain.BenchSummary{Puzzles: opts.Puzzles, Comparisons: comparisons}
	for _, c := range comparisons {
		if c.Exhaustive.Verdict.Outcome == domain.Exact {
			sum.ExhaustiveExact++
		}
		switch c.Heuristic.Verdict.Outcome {
		case domain.Exact:
			sum.HeuristicExact++
		case domain.Approximate:
			sum.HeuristicClose++
		}
		sum.ExhaustiveNodes += c.Exhaustive.Nodes
		sum.HeuristicNodes += c.Heuristic.Nodes
		sum.ExhaustiveTime += c.Exhaustive.Duration
		sum.HeuristicTime += c.Heuristic.Duration
	}
	u.Logger.Info("bench done",
		"puzzles", sum.Puzzles,
		"exhaustive_exact", sum.ExhaustiveExact,
		"heuristic_exact", sum.HeuristicExact,
		"heuristic_close", sum.HeuristicClose,
	)
	return sum, nil
}
