package domain

import (
	"fmt"
	"slices"
	"time"

	"svw.info/countdown/internal/expr"
)

var (
	LargeNumbers = []int{25, 50, 75, 100}
	SmallNumbers = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
)

const (
	MinTarget      = 101
	MaxTarget      = 999
	ClassicNumbers = 6
)

// Puzzle is a multiset of source numbers and the target to reach.
type Puzzle struct {
	ID         string `json:"id,omitempty" yaml:"id,omitempty"`
	Seed       int64  `json:"seed,omitempty" yaml:"seed,omitempty"`
	Numbers    []int  `json:"numbers" yaml:"numbers"`
	Target     int    `json:"target" yaml:"target"`
	LargeCount int    `json:"largeCount" yaml:"largeCount"`
	MaxNumbers int    `json:"maxNumbers" yaml:"maxNumbers"`
	CreatedAt  int64  `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
}

// NewPuzzle wraps caller-supplied numbers, counting large numbers from the pool.
func NewPuzzle(numbers []int, target int) *Puzzle {
	large := 0
	for _, n := range numbers {
		if slices.Contains(LargeNumbers, n) {
			large++
		}
	}
	return &Puzzle{
		Numbers:    slices.Clone(numbers),
		Target:     target,
		LargeCount: large,
		MaxNumbers: len(numbers),
	}
}

func (p *Puzzle) SmallCount() int { return p.MaxNumbers - p.LargeCount }

// Valid applies the game rules: target range, pool membership and the large/small split.
// Solvers never require this; arbitrary integers are accepted there.
func (p *Puzzle) Valid() bool {
	if len(p.Numbers) != p.MaxNumbers {
		return false
	}
	if p.Target < MinTarget || p.Target > MaxTarget {
		return false
	}
	if p.LargeCount > len(LargeNumbers) {
		return false
	}
	large, small := 0, 0
	for _, n := range p.Numbers {
		switch {
		case slices.Contains(LargeNumbers, n):
			large++
		case slices.Contains(SmallNumbers, n):
			small++
		}
	}
	return large == p.LargeCount && small == p.SmallCount() && large+small == p.MaxNumbers
}

// Verdict is an independent re-evaluation of a solver result.
type Verdict struct {
	Outcome Outcome `json:"outcome" yaml:"outcome"`
	Value   int     `json:"value" yaml:"value"`
	Diff    int     `json:"diff" yaml:"diff"`
	Error   string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// Result is what one solver produced for one puzzle.
type Result struct {
	Solver     SolverKind       `json:"-" yaml:"-"`
	SolverName string           `json:"solver" yaml:"solver"`
	Expression *expr.Expression `json:"expression,omitempty" yaml:"expression,omitempty"`
	Verdict    Verdict          `json:"verdict" yaml:"verdict"`
	Nodes      uint64           `json:"nodes" yaml:"nodes"`
	Duration   time.Duration    `json:"duration" yaml:"duration"`
}

// Found reports whether the solver returned any expression.
func (r Result) Found() bool { return r.Expression != nil }

// Comparison pairs both solvers on the same puzzle.
type Comparison struct {
	Puzzle     *Puzzle `json:"puzzle" yaml:"puzzle"`
	Exhaustive Result  `json:"exhaustive" yaml:"exhaustive"`
	Heuristic  Result  `json:"heuristic" yaml:"heuristic"`
	Summary    string  `json:"summary" yaml:"summary"`
	// SpeedRatio is heuristic duration over exhaustive duration.
	SpeedRatio float64 `json:"speedRatio" yaml:"speedRatio"`
}

// SpeedSummary names the faster solver.
func (c *Comparison) SpeedSummary() string {
	switch {
	case c.SpeedRatio > 0 && c.SpeedRatio < 1:
		return fmt.Sprintf("Heuristic was %.2fx faster", 1/c.SpeedRatio)
	case c.SpeedRatio > 1:
		return fmt.Sprintf("Exhaustive was %.2fx faster", c.SpeedRatio)
	default:
		return "Both solvers took similar time"
	}
}

// Hint is a single reduction step taken from a found solution.
type Hint struct {
	Message string  `json:"message,omitempty" yaml:"message,omitempty"`
	Left    int     `json:"left" yaml:"left"`
	Op      expr.Op `json:"-" yaml:"-"`
	Symbol  string  `json:"op" yaml:"op"`
	Right   int     `json:"right" yaml:"right"`
	Result  int     `json:"result" yaml:"result"`
}

// BenchSummary aggregates comparisons over many generated puzzles.
type BenchSummary struct {
	Puzzles         int           `json:"puzzles" yaml:"puzzles"`
	ExhaustiveExact int           `json:"exhaustiveExact" yaml:"exhaustiveExact"`
	HeuristicExact  int           `json:"heuristicExact" yaml:"heuristicExact"`
	HeuristicClose  int           `json:"heuristicClose" yaml:"heuristicClose"`
	ExhaustiveNodes uint64        `json:"exhaustiveNodes" yaml:"exhaustiveNodes"`
	HeuristicNodes  uint64        `json:"heuristicNodes" yaml:"heuristicNodes"`
	ExhaustiveTime  time.Duration `json:"exhaustiveTime" yaml:"exhaustiveTime"`
	HeuristicTime   time.Duration `json:"heuristicTime" yaml:"heuristicTime"`
	Comparisons     []*Comparison `json:"comparisons,omitempty" yaml:"comparisons,omitempty"`
}
