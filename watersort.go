// Package watersort finds minimum-length solutions to water sort puzzles.
//
// A puzzle is a row of tubes holding stacks of colored units under a shared
// capacity. A move pours the top run of one tube onto another tube that is
// empty or shows the same top color, moving as many units as fit. The
// puzzle is solved when every tube is empty or holds a single color.
//
// Solve runs an exhaustive breadth-first search from the initial state, so
// any solution it returns has the fewest moves possible. The search is
// bounded by an iteration cap (200000 dequeued states by default) and may be
// canceled through its context.
//
//	p, err := watersort.NewPuzzleBuilder("demo", 2).
//		Tube("red", "blue").
//		Empty(2).
//		Build()
//	if err != nil { ... }
//	moves, ok := watersort.FindSolution(p.State)
package watersort

import (
	"context"

	"github.com/comalice/watersort/internal/core"
	"github.com/comalice/watersort/internal/primitives"
)

type (
	Color    = primitives.Color
	Tube     = primitives.Tube
	State    = primitives.State
	Move     = primitives.Move
	Solution = primitives.Solution
	Key      = primitives.Key
	Palette  = primitives.Palette
	Puzzle   = primitives.Puzzle

	Event     = primitives.Event
	EventType = primitives.EventType
	Progress  = primitives.Progress

	Solver         = core.Solver
	Option         = core.Option
	Result         = core.Result
	Status         = core.Status
	EventPublisher = core.EventPublisher
	SearchMetadata = core.SearchMetadata
	VisitedSet     = core.VisitedSet
)

const (
	NoColor         = primitives.NoColor
	DefaultCapacity = primitives.DefaultCapacity
	MaxCapacity     = primitives.MaxCapacity

	DefaultMaxIterations    = core.DefaultMaxIterations
	DefaultProgressInterval = core.DefaultProgressInterval

	StatusUnsolvable     = core.StatusUnsolvable
	StatusSolved         = core.StatusSolved
	StatusBudgetExceeded = core.StatusBudgetExceeded
	StatusCanceled       = core.StatusCanceled

	EventStarted  = primitives.EventStarted
	EventProgress = primitives.EventProgress
	EventFinished = primitives.EventFinished
)

var (
	ErrInvalidState = primitives.ErrInvalidState
	ErrIllegalMove  = core.ErrIllegalMove
)

var (
	WithMaxIterations    = core.WithMaxIterations
	WithProgressInterval = core.WithProgressInterval
	WithPublisher        = core.WithPublisher
	WithLogger           = core.WithLogger
	WithVisitedSet       = core.WithVisitedSet
)

// NewState builds a State, copying tubes.
func NewState(capacity int, tubes ...Tube) State {
	return primitives.NewState(capacity, tubes...)
}

// NewSolver creates a reusable Solver.
func NewSolver(opts ...Option) *Solver {
	return core.NewSolver(opts...)
}

// Solve searches for a shortest solution of s with a Solver built from opts.
func Solve(ctx context.Context, s State, opts ...Option) (Result, error) {
	return core.NewSolver(opts...).Solve(ctx, s)
}

// FindSolution returns a shortest move list solving s, or false when none
// was found within the default iteration cap or s is invalid. An already
// solved s yields an empty, non-nil Solution.
func FindSolution(s State) (Solution, bool) {
	res, err := Solve(context.Background(), s)
	if err != nil || !res.Solved() {
		return nil, false
	}
	if res.Moves == nil {
		return Solution{}, true
	}
	return res.Moves, true
}

// ApplyMove returns the state after m, or an error wrapping ErrIllegalMove.
func ApplyMove(s State, m Move) (State, error) {
	return core.ApplyMove(s, m)
}

// IsSolved reports whether every tube of s is empty or monochrome.
func IsSolved(s State) bool {
	return core.IsGameSolved(s)
}

// PossibleMoves lists the legal moves of s in search order.
func PossibleMoves(s State) []Move {
	return core.PossibleMoves(s)
}
