package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/countdown/internal/expr"
)

func TestFirstStep(t *testing.T) {
	h := NewFirstStep()
	e := expr.Compose(42, expr.Add, expr.Compose(5, expr.Multiply, expr.Compose(1, expr.Add, expr.Compose(7, expr.Multiply, expr.Terminal(8)))))

	got, ok, err := h.Hint(context.Background(), e)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Try 7 * 8 = 56", got.Message)
	assert.Equal(t, 56, got.Result)
	assert.Equal(t, expr.Multiply, got.Op)
	assert.Equal(t, "*", got.Symbol)
}

func TestFirstStepSingleOperation(t *testing.T) {
	got, ok, err := NewFirstStep().Hint(context.Background(), expr.Compose(10, expr.Divide, expr.Terminal(5)))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, got.Result)
}

func TestFirstStepNothingToSuggest(t *testing.T) {
	h := NewFirstStep()
	_, ok, err := h.Hint(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = h.Hint(context.Background(), expr.Terminal(7))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFirstStepInvalidStep(t *testing.T) {
	_, ok, err := NewFirstStep().Hint(context.Background(), expr.Compose(3, expr.Divide, expr.Terminal(0)))
	assert.False(t, ok)
	assert.ErrorIs(t, err, expr.ErrDivisionByZero)
}
