package core

import "github.com/comalice/watersort/internal/primitives"

// IsTubeSolved reports whether t is empty or holds a single color.
func IsTubeSolved(t primitives.Tube) bool {
	for i := 1; i < len(t); i++ {
		if t[i] != t[0] {
			return false
		}
	}
	return true
}

// IsGameSolved reports whether every tube of s is solved.
func IsGameSolved(s primitives.State) bool {
	for _, t := range s.Tubes {
		if !IsTubeSolved(t) {
			return false
		}
	}
	return true
}

// IsMoveValid reports whether m is a legal pour in s. Indices outside the
// tube range are never valid.
func IsMoveValid(s primitives.State, m primitives.Move) bool {
	n := len(s.Tubes)
	if m.From == m.To || m.From < 0 || m.To < 0 || m.From >= n || m.To >= n {
		return false
	}
	from, to := s.Tubes[m.From], s.Tubes[m.To]
	if len(from) == 0 {
		return false
	}
	if len(to) >= s.Capacity {
		return false
	}
	if len(to) > 0 && to.Top() != from.Top() {
		return false
	}
	return true
}

// PossibleMoves lists every legal move in s, ordered by source index then
// destination index. The order is part of the contract: it pins which of
// several equal-length solutions the search returns.
func PossibleMoves(s primitives.State) []primitives.Move {
	n := len(s.Tubes)
	moves := make([]primitives.Move, 0, n)
	for from := 0; from < n; from++ {
		for to := 0; to < n; to++ {
			m := primitives.Move{From: from, To: to}
			if IsMoveValid(s, m) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}
