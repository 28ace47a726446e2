package core

import (
	"fmt"
	"time"

	"github.com/comalice/watersort/internal/primitives"
)

// Status is the outcome of a search.
type Status int

const (
	// StatusUnsolvable means the reachable state space was exhausted without
	// reaching a solved state.
	StatusUnsolvable Status = iota
	// StatusSolved means Result.Moves leads to a solved state.
	StatusSolved
	// StatusBudgetExceeded means the iteration cap stopped the search first.
	// Nothing is known about solvability.
	StatusBudgetExceeded
	// StatusCanceled means the context ended the search.
	StatusCanceled
)

func (s Status) String() string {
	switch s {
	case StatusUnsolvable:
		return "unsolvable"
	case StatusSolved:
		return "solved"
	case StatusBudgetExceeded:
		return "budget_exceeded"
	case StatusCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// MarshalText renders the status name in JSON and YAML output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result reports the outcome and cost of one search.
type Result struct {
	RunID       string              `json:"run_id"`
	Fingerprint string              `json:"fingerprint"`
	Status      Status              `json:"status"`
	Moves       primitives.Solution `json:"moves"`
	// Iterations counts dequeued states.
	Iterations int `json:"iterations"`
	// Visited counts distinct states discovered, including the initial one.
	Visited     int           `json:"visited"`
	MaxFrontier int           `json:"max_frontier"`
	Depth       int           `json:"depth"`
	Duration    time.Duration `json:"duration_ns"`
}

// Solved reports whether a solution was found.
func (r Result) Solved() bool {
	return r.Status == StatusSolved
}
