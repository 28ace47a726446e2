package core

import (
	"errors"
	"fmt"

	"github.com/comalice/watersort/internal/primitives"
)

// ErrIllegalMove is returned by ApplyMove for a move IsMoveValid rejects.
var ErrIllegalMove = errors.New("illegal move")

// ApplyMove pours the top run of m.From into m.To and returns the new state.
// s is never modified. A move that IsMoveValid rejects, including one from an
// empty tube, fails with ErrIllegalMove.
func ApplyMove(s primitives.State, m primitives.Move) (primitives.State, error) {
	if !IsMoveValid(s, m) {
		return primitives.State{}, fmt.Errorf("%w %s in %s", ErrIllegalMove, m, s)
	}
	return pour(s, m), nil
}

// pour applies a move already known to be valid.
//
// Every tube is copied so the result shares no storage with s. The moved
// count is min(top run, free space in the destination); since every moved
// unit has the top color, appending copies preserves order.
func pour(s primitives.State, m primitives.Move) primitives.State {
	next := s.Clone()
	from := next.Tubes[m.From]
	to := next.Tubes[m.To]

	top := from.Top()
	moved := min(from.TopRun(), s.Capacity-len(to))
	for i := 0; i < moved; i++ {
		to = append(to, top)
	}

	next.Tubes[m.From] = from[:len(from)-moved]
	next.Tubes[m.To] = to
	return next
}
