package solver

import (
	"context"
	"time"

	"svw.info/countdown/internal/expr"
	"svw.info/countdown/internal/ports"
)

// Exhaustive enumerates every pairwise reduction of the input and returns the first
// expression that uses all numbers and evaluates to the target.
type Exhaustive struct {
	visited uint64
}

func NewExhaustive() *Exhaustive { return &Exhaustive{} }

// Visited is the number of search states entered during the last Solve, leaves included.
func (s *Exhaustive) Visited() uint64 { return s.visited }

// Solve walks ordered position pairs (i, j), i != j, ascending, and operators in
// Add, Subtract, Multiply, Divide order. Division is only tried when exact.
// Depth is len(numbers)-1; the first success is returned without comparing alternatives.
func (s *Exhaustive) Solve(ctx context.Context, target int, numbers []int) (*expr.Expression, ports.Stats, error) {
	start := time.Now()
	s.visited = 0

	var dfs func(slots []slot) *expr.Expression
	dfs = func(slots []slot) *expr.Expression {
		s.visited++
		if ctx.Err() != nil {
			return nil
		}
		if len(slots) <= 1 {
			if len(slots) == 1 && slots[0].value == target {
				return slots[0].expr
			}
			return nil
		}
		for i, a := range slots {
			for j, b := range slots {
				if i == j {
					continue
				}
				for _, op := range expr.Ops {
					v, e, ok := combine(a.value, op, b.value, b.expr)
					if !ok {
						continue
					}
					next := append(without(slots, i, j), slot{value: v, expr: e})
					if found := dfs(next); found != nil {
						return found
					}
				}
			}
		}
		return nil
	}

	found := dfs(slotsFor(numbers))
	st := ports.Stats{Nodes: s.visited, Duration: time.Since(start)}
	if found == nil && ctx.Err() != nil {
		return nil, st, ctx.Err()
	}
	return found, st, nil
}
