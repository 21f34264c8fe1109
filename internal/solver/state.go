package solver

import "svw.info/countdown/internal/expr"

// slot is one available value together with the expression that produced it.
// Original inputs start out as terminal expressions.
type slot struct {
	value int
	expr  *expr.Expression
}

func slotsFor(numbers []int) []slot {
	out := make([]slot, len(numbers))
	for i, n := range numbers {
		out[i] = slot{value: n, expr: expr.Terminal(n)}
	}
	return out
}

// without copies s minus positions i and j, leaving room for the combined value.
func without[T any](s []T, i, j int) []T {
	out := make([]T, 0, len(s)-1)
	for k, v := range s {
		if k != i && k != j {
			out = append(out, v)
		}
	}
	return out
}

// combine reduces a (left) and b (right) with op. The left operand enters the chain
// as a literal; the right operand keeps its derivation as the continuation.
func combine(a int, op expr.Op, b int, bExpr *expr.Expression) (int, *expr.Expression, bool) {
	if !op.Legal(a, b) {
		return 0, nil, false
	}
	v, err := op.Apply(a, b)
	if err != nil {
		return 0, nil, false
	}
	return v, expr.Compose(a, op, bExpr), true
}
