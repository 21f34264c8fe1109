package generator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"svw.info/countdown/internal/domain"
	"svw.info/countdown/internal/ports"
)

var (
	ErrTooManyLarge = errors.New("too many large numbers")
	ErrNoNumbers    = errors.New("puzzle needs at least one number")
	ErrTargetRange  = fmt.Errorf("target must be between %d and %d", domain.MinTarget, domain.MaxTarget)
)

// Random draws puzzles from the classic pools. Large numbers are drawn without
// replacement, small numbers with replacement. Not safe for concurrent use.
type Random struct {
	seed int64
	rng  *rand.Rand
}

// NewRandom seeds the generator; the same seed yields the same puzzle sequence.
func NewRandom(seed int64) *Random {
	return &Random{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

func (g *Random) Seed() int64 { return g.seed }

// Generate creates a puzzle with large numbers out of max and a target in [101, 999].
func (g *Random) Generate(ctx context.Context, large, max int) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	target := domain.MinTarget + g.rng.Intn(domain.MaxTarget-domain.MinTarget+1)
	return g.build(start, target, large, max)
}

// GenerateClassic picks 1 to 4 large numbers out of six.
func (g *Random) GenerateClassic(ctx context.Context) (*domain.Puzzle, ports.Stats, error) {
	large := 1 + g.rng.Intn(len(domain.LargeNumbers))
	return g.Generate(ctx, large, domain.ClassicNumbers)
}

// GenerateWithTarget draws numbers for a fixed target.
func (g *Random) GenerateWithTarget(ctx context.Context, target, large, max int) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	if target < domain.MinTarget || target > domain.MaxTarget {
		return nil, ports.Stats{}, fmt.Errorf("%w: got %d", ErrTargetRange, target)
	}
	return g.build(start, target, large, max)
}

func (g *Random) build(start time.Time, target, large, max int) (*domain.Puzzle, ports.Stats, error) {
	if max < 1 {
		return nil, ports.Stats{}, ErrNoNumbers
	}
	if large < 0 || large > max || large > len(domain.LargeNumbers) {
		return nil, ports.Stats{}, fmt.Errorf("%w: %d of %d (pool holds %d)", ErrTooManyLarge, large, max, len(domain.LargeNumbers))
	}
	numbers := make([]int, 0, max)

	pool := append([]int(nil), domain.LargeNumbers...)
	g.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	numbers = append(numbers, pool[:large]...)

	for i := large; i < max; i++ {
		numbers = append(numbers, domain.SmallNumbers[g.rng.Intn(len(domain.SmallNumbers))])
	}

	p := &domain.Puzzle{
		ID:         uuid.NewString(),
		Seed:       g.seed,
		Numbers:    numbers,
		Target:     target,
		LargeCount: large,
		MaxNumbers: max,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: uint64(max), Duration: time.Since(start)}, nil
}
