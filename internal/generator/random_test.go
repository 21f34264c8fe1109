package generator

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/countdown/internal/domain"
)

func countLarge(numbers []int) int {
	n := 0
	for _, v := range numbers {
		if slices.Contains(domain.LargeNumbers, v) {
			n++
		}
	}
	return n
}

func TestGenerate(t *testing.T) {
	cases := []struct {
		name       string
		large, max int
	}{
		{"two of six", 2, 6},
		{"all large", 4, 6},
		{"no large", 0, 6},
		{"eight numbers", 2, 8},
		{"small puzzle", 1, 3},
	}
	g := NewRandom(12345)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, _, err := g.Generate(context.Background(), tc.large, tc.max)
			require.NoError(t, err)
			assert.Len(t, p.Numbers, tc.max)
			assert.Equal(t, tc.max, p.MaxNumbers)
			assert.Equal(t, tc.large, p.LargeCount)
			assert.Equal(t, tc.max-tc.large, p.SmallCount())
			assert.Equal(t, tc.large, countLarge(p.Numbers))
			assert.GreaterOrEqual(t, p.Target, domain.MinTarget)
			assert.LessOrEqual(t, p.Target, domain.MaxTarget)
			assert.True(t, p.Valid())
			assert.NotEmpty(t, p.ID)
		})
	}
}

func TestGenerateLargeNumbersAreDistinct(t *testing.T) {
	g := NewRandom(7)
	for i := 0; i < 50; i++ {
		p, _, err := g.Generate(context.Background(), 4, 6)
		require.NoError(t, err)
		large := slices.Clone(p.Numbers[:4])
		slices.Sort(large)
		assert.Equal(t, domain.LargeNumbers, large)
	}
}

func TestGenerateClassic(t *testing.T) {
	g := NewRandom(99)
	for i := 0; i < 20; i++ {
		p, _, err := g.GenerateClassic(context.Background())
		require.NoError(t, err)
		assert.Len(t, p.Numbers, domain.ClassicNumbers)
		assert.GreaterOrEqual(t, p.LargeCount, 1)
		assert.LessOrEqual(t, p.LargeCount, 4)
		assert.True(t, p.Valid())
	}
}

func TestGenerateWithTarget(t *testing.T) {
	p, _, err := NewRandom(1).GenerateWithTarget(context.Background(), 327, 3, 6)
	require.NoError(t, err)
	assert.Equal(t, 327, p.Target)
	assert.Equal(t, 3, p.LargeCount)
	assert.Equal(t, 3, p.SmallCount())
	assert.True(t, p.Valid())
}

func TestGenerateIsReproducible(t *testing.T) {
	a, _, err := NewRandom(42).GenerateClassic(context.Background())
	require.NoError(t, err)
	b, _, err := NewRandom(42).GenerateClassic(context.Background())
	require.NoError(t, err)
	assert.Equal(t, a.Numbers, b.Numbers)
	assert.Equal(t, a.Target, b.Target)
	assert.Equal(t, int64(42), a.Seed)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestGenerateErrors(t *testing.T) {
	g := NewRandom(1)
	_, _, err := g.Generate(context.Background(), 7, 6)
	assert.ErrorIs(t, err, ErrTooManyLarge)

	_, _, err = g.Generate(context.Background(), 5, 8)
	assert.ErrorIs(t, err, ErrTooManyLarge)

	_, _, err = g.Generate(context.Background(), 0, 0)
	assert.ErrorIs(t, err, ErrNoNumbers)

	_, _, err = g.GenerateWithTarget(context.Background(), 50, 2, 6)
	assert.ErrorIs(t, err, ErrTargetRange)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = g.GenerateClassic(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
