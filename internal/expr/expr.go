// Package expr models arithmetic solutions as exact-integer expression chains.
package expr

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var (
	ErrDivisionByZero   = errors.New("division by zero attempted")
	ErrNonIntegerResult = errors.New("operation resulted in non-integer value")
	ErrUnknownOp        = errors.New("unknown operator")
	ErrEmptyExpression  = errors.New("empty expression")
)

// Expression is an immutable right-nested chain: Value op eval(next).
// A node without an operation is terminal and evaluates to its Value.
type Expression struct {
	Value int
	hasOp bool
	op    Op
	next  *Expression
}

// Terminal returns a node that evaluates to v.
func Terminal(v int) *Expression { return &Expression{Value: v} }

// Compose returns the chain "v op next". Failures surface only on Evaluate.
func Compose(v int, op Op, next *Expression) *Expression {
	return &Expression{Value: v, hasOp: true, op: op, next: next}
}

// IsTerminal reports whether e carries no further operation.
func (e *Expression) IsTerminal() bool { return !e.hasOp }

// Op returns the node operator and the continuation; ok is false on a terminal node.
func (e *Expression) Op() (op Op, next *Expression, ok bool) {
	if !e.hasOp {
		return 0, nil, false
	}
	return e.op, e.next, true
}

// Evaluate folds the chain from the head. Division must be exact.
func (e *Expression) Evaluate() (int, error) {
	if e == nil {
		return 0, ErrEmptyExpression
	}
	if !e.hasOp {
		return e.Value, nil
	}
	rhs, err := e.next.Evaluate()
	if err != nil {
		return 0, err
	}
	return e.op.Apply(e.Value, rhs)
}

// Depth is the number of nodes in the chain.
func (e *Expression) Depth() int {
	n := 0
	for cur := e; cur != nil; cur = cur.next {
		n++
		if !cur.hasOp {
			break
		}
	}
	return n
}

// Operands lists the literal values head first.
func (e *Expression) Operands() []int {
	out := make([]int, 0, e.Depth())
	for cur := e; cur != nil; cur = cur.next {
		out = append(out, cur.Value)
		if !cur.hasOp {
			break
		}
	}
	return out
}

// Format renders the chain fully parenthesised, e.g. (10 + (5 * 2)).
func (e *Expression) Format() string {
	if e == nil {
		return "<nil>"
	}
	var sb strings.Builder
	e.write(&sb)
	return sb.String()
}

func (e *Expression) String() string { return e.Format() }

func (e *Expression) write(sb *strings.Builder) {
	if e == nil {
		sb.WriteString("<nil>")
		return
	}
	if !e.hasOp {
		sb.WriteString(strconv.Itoa(e.Value))
		return
	}
	sb.WriteByte('(')
	sb.WriteString(strconv.Itoa(e.Value))
	sb.WriteByte(' ')
	sb.WriteString(e.op.String())
	sb.WriteByte(' ')
	e.next.write(sb)
	sb.WriteByte(')')
}

// rendered is the report shape shared by the JSON and YAML encoders.
type rendered struct {
	Expression string `json:"expression" yaml:"expression"`
	Value      *int   `json:"value,omitempty" yaml:"value,omitempty"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

func (e *Expression) render() rendered {
	r := rendered{Expression: e.Format()}
	v, err := e.Evaluate()
	if err != nil {
		r.Error = err.Error()
	} else {
		r.Value = &v
	}
	return r
}

func (e *Expression) MarshalJSON() ([]byte, error) { return json.Marshal(e.render()) }

func (e *Expression) MarshalYAML() (interface{}, error) { return e.render(), nil }
