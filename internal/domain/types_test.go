package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPuzzleValidation(t *testing.T) {
	assert.True(t, NewPuzzle([]int{25, 50, 1, 2, 3, 4}, 327).Valid())
	assert.False(t, NewPuzzle([]int{25, 50, 1, 2, 3, 4}, 50).Valid(), "target below range")
	assert.False(t, NewPuzzle([]int{25, 50, 1, 2, 3, 4}, 1000).Valid(), "target above range")
	assert.True(t, NewPuzzle([]int{25, 50, 1, 2, 3}, 327).Valid(), "five numbers is still consistent")
	assert.False(t, NewPuzzle([]int{25, 50, 11, 2, 3, 4}, 327).Valid(), "11 is in neither pool")

	p := NewPuzzle([]int{25, 50, 1, 2, 3, 4}, 327)
	p.MaxNumbers = 7
	assert.False(t, p.Valid())
}

func TestPuzzleCounts(t *testing.T) {
	p := NewPuzzle([]int{25, 50, 75, 1, 2, 3}, 456)
	assert.Equal(t, 3, p.LargeCount)
	assert.Equal(t, 3, p.SmallCount())
	assert.Equal(t, 6, p.MaxNumbers)
}

func TestNewPuzzleCopiesNumbers(t *testing.T) {
	in := []int{1, 2, 3}
	p := NewPuzzle(in, 200)
	in[0] = 99
	assert.Equal(t, []int{1, 2, 3}, p.Numbers)
}

func TestParseSolverKind(t *testing.T) {
	for in, want := range map[string]SolverKind{
		"exhaustive":  Exhaustive,
		" BruteForce": Exhaustive,
		"heuristic":   Heuristic,
		"minimax":     Heuristic,
	} {
		got, err := ParseSolverKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseSolverKind("dlx")
	assert.Error(t, err)
	assert.Equal(t, "heuristic", Heuristic.String())
	assert.Equal(t, "unknown", SolverKind(5).String())
}

func TestOutcomeText(t *testing.T) {
	b, err := Approximate.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "approximate", string(b))
	assert.Equal(t, "none", NoSolution.String())
}

func TestSpeedSummary(t *testing.T) {
	cases := []struct {
		ratio float64
		want  string
	}{
		{0.25, "Heuristic was 4.00x faster"},
		{3, "Exhaustive was 3.00x faster"},
		{1, "Both solvers took similar time"},
		{0, "Both solvers took similar time"},
	}
	for _, tc := range cases {
		c := &Comparison{SpeedRatio: tc.ratio}
		assert.Equal(t, tc.want, c.SpeedSummary())
	}
}
