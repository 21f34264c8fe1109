package domain

import (
	"fmt"
	"strings"
)

// SolverKind selects a search strategy.
type SolverKind int

const (
	Exhaustive SolverKind = iota // full pairwise enumeration
	Heuristic                    // depth-bounded utility search
)

func (k SolverKind) String() string {
	switch k {
	case Exhaustive:
		return "exhaustive"
	case Heuristic:
		return "heuristic"
	default:
		return "unknown"
	}
}

// ParseSolverKind accepts the names used on the command line and in config files.
func ParseSolverKind(s string) (SolverKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exhaustive", "bruteforce", "brute-force":
		return Exhaustive, nil
	case "heuristic", "minimax":
		return Heuristic, nil
	default:
		return 0, fmt.Errorf("unknown solver %q", s)
	}
}

// Outcome classifies a verified result against its target.
type Outcome int

const (
	NoSolution Outcome = iota
	Exact
	Approximate
	Invalid // the expression failed to evaluate
)

func (o Outcome) String() string {
	switch o {
	case Exact:
		return "exact"
	case Approximate:
		return "approximate"
	case Invalid:
		return "invalid"
	default:
		return "none"
	}
}

func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }
