package expr

import "fmt"

// Op is one of the four arithmetic operators.
type Op int

const (
	Add Op = iota
	Subtract
	Multiply
	Divide
)

// Ops lists operators in search order.
var Ops = [...]Op{Add, Subtract, Multiply, Divide}

func (o Op) String() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Apply computes a op b. Division fails unless b != 0 and b divides a.
func (o Op) Apply(a, b int) (int, error) {
	switch o {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		if a%b != 0 {
			return 0, ErrNonIntegerResult
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownOp, int(o))
	}
}

// Legal reports whether a op b is offered during search.
func (o Op) Legal(a, b int) bool {
	if o == Divide {
		return b != 0 && a%b == 0
	}
	return o >= Add && o <= Divide
}
