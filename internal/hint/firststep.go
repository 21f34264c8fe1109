package hint

import (
	"context"
	"fmt"

	"svw.info/countdown/internal/domain"
	"svw.info/countdown/internal/expr"
)

// FirstStep suggests the innermost combination of a solution, the first
// reduction a player would make.
type FirstStep struct{}

func NewFirstStep() *FirstStep { return &FirstStep{} }

// Hint returns false when e is nil or a bare number.
func (h *FirstStep) Hint(ctx context.Context, e *expr.Expression) (domain.Hint, bool, error) {
	if e == nil || e.IsTerminal() {
		return domain.Hint{}, false, nil
	}
	cur := e
	for {
		_, next, _ := cur.Op()
		if next == nil || next.IsTerminal() {
			break
		}
		cur = next
	}
	op, next, _ := cur.Op()
	if next == nil {
		return domain.Hint{}, false, expr.ErrEmptyExpression
	}
	res, err := op.Apply(cur.Value, next.Value)
	if err != nil {
		return domain.Hint{}, false, fmt.Errorf("hint step %d %s %d: %w", cur.Value, op, next.Value, err)
	}
	return domain.Hint{
		Message: fmt.Sprintf("Try %d %s %d = %d", cur.Value, op, next.Value, res),
		Left:    cur.Value,
		Op:      op,
		Symbol:  op.String(),
		Right:   next.Value,
		Result:  res,
	}, true, nil
}
