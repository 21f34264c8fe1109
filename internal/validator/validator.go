package validator

import (
	"context"

	"svw.info/countdown/internal/domain"
	"svw.info/countdown/internal/expr"
)

// Verifier re-evaluates solver output from scratch; nothing computed during the
// search is trusted.
type Verifier struct{}

func New() *Verifier { return &Verifier{} }

func (v *Verifier) Verify(ctx context.Context, target int, e *expr.Expression) (domain.Verdict, error) {
	if err := ctx.Err(); err != nil {
		return domain.Verdict{}, err
	}
	if e == nil {
		return domain.Verdict{Outcome: domain.NoSolution}, nil
	}
	got, err := e.Evaluate()
	if err != nil {
		return domain.Verdict{Outcome: domain.Invalid, Error: err.Error()}, nil
	}
	d := target - got
	if d < 0 {
		d = -d
	}
	if d == 0 {
		return domain.Verdict{Outcome: domain.Exact, Value: got}, nil
	}
	return domain.Verdict{Outcome: domain.Approximate, Value: got, Diff: d}, nil
}
