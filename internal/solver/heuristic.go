package solver

import (
	"context"
	"maps"
	"math"
	"slices"
	"time"

	"svw.info/countdown/internal/expr"
	"svw.info/countdown/internal/ports"
)

const (
	// ExactMatchUtility scores a state holding the target.
	ExactMatchUtility = 1000
	// AcceptAbove is the exclusive utility floor for approximate answers (within 99).
	AcceptAbove = -100
	// MinUtility scores a state with no evaluable value.
	MinUtility = math.MinInt32 / 2

	DefaultDepth = 6
)

// Heuristic is a depth-bounded search that always follows the branch with the best
// distance-to-target utility and accepts exact or close answers.
//
// Each state maps every value present to a single expression. When two derivations
// produce the same value the later one overwrites the earlier, so distinct derivations
// are not explored independently. This can miss solutions the exhaustive search finds,
// and raising the depth does not guarantee a better answer.
type Heuristic struct {
	visited     uint64
	target      int
	maxDepth    int
	siblingScan bool
}

type HeuristicOption func(*Heuristic)

// WithDepth bounds the number of reductions explored below the root.
func WithDepth(n int) HeuristicOption {
	return func(h *Heuristic) { h.maxDepth = n }
}

// WithSiblingScan keeps evaluating sibling branches after one reaches an exact match.
// The returned expression is unchanged; only Visited differs.
func WithSiblingScan(on bool) HeuristicOption {
	return func(h *Heuristic) { h.siblingScan = on }
}

func NewHeuristic(opts ...HeuristicOption) *Heuristic {
	h := &Heuristic{maxDepth: DefaultDepth}
	for _, o := range opts {
		o(h)
	}
	return h
}

// NewHeuristicDepth is shorthand for NewHeuristic(WithDepth(depth)).
func NewHeuristicDepth(depth int) *Heuristic { return NewHeuristic(WithDepth(depth)) }

func (h *Heuristic) Depth() int { return h.maxDepth }

// Visited is the number of search nodes entered during the last Solve.
func (h *Heuristic) Visited() uint64 { return h.visited }

// Solve returns an expression evaluating to target, or to within 99 of it.
// A target present in the input is returned as a terminal without searching.
func (h *Heuristic) Solve(ctx context.Context, target int, numbers []int) (*expr.Expression, ports.Stats, error) {
	start := time.Now()
	h.visited = 0
	h.target = target

	if slices.Contains(numbers, target) {
		return expr.Terminal(target), ports.Stats{Duration: time.Since(start)}, nil
	}

	utility, best := h.search(ctx, newNode(numbers), h.maxDepth)
	st := ports.Stats{Nodes: h.visited, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, st, err
	}
	if utility == ExactMatchUtility || utility > AcceptAbove {
		return best, st, nil
	}
	return nil, st, nil
}

func (h *Heuristic) search(ctx context.Context, n node, depth int) (int, *expr.Expression) {
	h.visited++
	if ctx.Err() != nil {
		return MinUtility, nil
	}
	if depth <= 0 || h.terminal(n) {
		return h.utility(n)
	}

	maxEval := math.MinInt
	var best *expr.Expression
actions:
	for i := range n.values {
		for j := range n.values {
			if i == j {
				continue
			}
			for _, op := range expr.Ops {
				child, ok := n.apply(i, j, op)
				if !ok {
					continue
				}
				eval, e := h.search(ctx, child, depth-1)
				// strictly greater: ties keep the first branch seen
				if eval > maxEval {
					maxEval, best = eval, e
				}
				if maxEval == ExactMatchUtility && !h.siblingScan {
					break actions
				}
			}
		}
	}
	if maxEval == math.MinInt {
		return MinUtility, nil
	}
	return maxEval, best
}

// terminal holds when at most one value remains or a present value already hits the target.
func (h *Heuristic) terminal(n node) bool {
	for _, v := range n.values {
		e, ok := n.exprs[v]
		if !ok {
			continue
		}
		if got, err := e.Evaluate(); err == nil && got == h.target {
			return true
		}
	}
	return len(n.values) <= 1
}

// utility is the best score over present values whose expression evaluates.
func (h *Heuristic) utility(n node) (int, *expr.Expression) {
	best := MinUtility
	var bestExpr *expr.Expression
	for _, v := range n.values {
		e, ok := n.exprs[v]
		if !ok {
			continue
		}
		got, err := e.Evaluate()
		if err != nil {
			continue
		}
		u := ExactMatchUtility
		if got != h.target {
			u = -abs(h.target - got)
		}
		if u > best {
			best, bestExpr = u, e
		}
	}
	return best, bestExpr
}

// node is a heuristic search state: the available values and the collapsing
// value -> expression map.
type node struct {
	values []int
	exprs  map[int]*expr.Expression
}

func newNode(numbers []int) node {
	n := node{
		values: slices.Clone(numbers),
		exprs:  make(map[int]*expr.Expression, len(numbers)),
	}
	for _, v := range numbers {
		n.exprs[v] = expr.Terminal(v)
	}
	return n
}

// apply combines positions i and j. The result's expression overwrites any entry
// already stored for that value; operands no longer present are dropped from the map.
func (n node) apply(i, j int, op expr.Op) (node, bool) {
	a, b := n.values[i], n.values[j]
	be, found := n.exprs[b]
	if !found {
		be = expr.Terminal(b)
	}
	v, e, ok := combine(a, op, b, be)
	if !ok {
		return node{}, false
	}
	values := append(without(n.values, i, j), v)
	exprs := maps.Clone(n.exprs)
	for _, used := range [2]int{a, b} {
		if !slices.Contains(values, used) {
			delete(exprs, used)
		}
	}
	exprs[v] = e
	return node{values: values, exprs: exprs}, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
