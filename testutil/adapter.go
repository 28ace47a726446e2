// Package testutil provides helpers shared by the engine, façade and
// benchmark tests: compact state notation, solution replay and an
// independent shortest-path oracle.
//
// The pour rules here are written separately from internal/core on purpose
// so tests compare two implementations rather than one against itself.
package testutil

import (
	"fmt"
	"testing"

	"github.com/comalice/watersort/internal/primitives"
)

// MustState builds a State from letter notation: each string is one tube,
// bottom first, with 'A' as Color 1, 'B' as Color 2 and so on. "" is an
// empty tube. It panics on any other character.
func MustState(capacity int, tubes ...string) primitives.State {
	s := primitives.State{Capacity: capacity, Tubes: make([]primitives.Tube, len(tubes))}
	for i, spec := range tubes {
		t := make(primitives.Tube, 0, len(spec))
		for _, r := range spec {
			if r < 'A' || r > 'Z' {
				panic(fmt.Sprintf("testutil: bad color %q in tube %d", r, i))
			}
			t = append(t, primitives.Color(r-'A'+1))
		}
		s.Tubes[i] = t
	}
	return s
}

// Letters renders a state back into letter notation.
func Letters(s primitives.State) []string {
	out := make([]string, len(s.Tubes))
	for i, t := range s.Tubes {
		b := make([]byte, len(t))
		for j, c := range t {
			b[j] = byte('A' + c - 1)
		}
		out[i] = string(b)
	}
	return out
}

// Solved reports whether every tube is empty or monochrome.
func Solved(s primitives.State) bool {
	for _, t := range s.Tubes {
		for _, c := range t {
			if c != t[0] {
				return false
			}
		}
	}
	return true
}

// Legal reports whether pouring from -> to is allowed in s.
func Legal(s primitives.State, from, to int) bool {
	if from == to || from < 0 || to < 0 || from >= len(s.Tubes) || to >= len(s.Tubes) {
		return false
	}
	src, dst := s.Tubes[from], s.Tubes[to]
	if len(src) == 0 || len(dst) == s.Capacity {
		return false
	}
	return len(dst) == 0 || dst[len(dst)-1] == src[len(src)-1]
}

// Pour applies a legal move and returns a fresh state.
func Pour(s primitives.State, from, to int) primitives.State {
	next := primitives.State{Capacity: s.Capacity, Tubes: make([]primitives.Tube, len(s.Tubes))}
	for i, t := range s.Tubes {
		next.Tubes[i] = append(primitives.Tube(nil), t...)
	}
	src, dst := next.Tubes[from], next.Tubes[to]
	color := src[len(src)-1]
	for len(src) > 0 && src[len(src)-1] == color && len(dst) < s.Capacity {
		src = src[:len(src)-1]
		dst = append(dst, color)
	}
	next.Tubes[from], next.Tubes[to] = src, dst
	return next
}

// Replay applies moves in order, failing on the first illegal one.
func Replay(s primitives.State, moves []primitives.Move) (primitives.State, error) {
	cur := s
	for i, m := range moves {
		if !Legal(cur, m.From, m.To) {
			return primitives.State{}, fmt.Errorf("move %d %s is illegal in %v", i, m, Letters(cur))
		}
		cur = Pour(cur, m.From, m.To)
	}
	return cur, nil
}

// RequireSolves fails tb unless moves lead from s to a solved state.
func RequireSolves(tb testing.TB, s primitives.State, moves []primitives.Move) {
	tb.Helper()
	end, err := Replay(s, moves)
	if err != nil {
		tb.Fatalf("replay: %v", err)
	}
	if !Solved(end) {
		tb.Fatalf("moves %v end in unsolved state %v", moves, Letters(end))
	}
}

// ShortestSolution returns the minimal move count to a solved state using
// iterative-deepening depth-first search up to maxDepth. It is exponential
// and meant for toy instances only.
func ShortestSolution(s primitives.State, maxDepth int) (int, bool) {
	for depth := 0; depth <= maxDepth; depth++ {
		if dfs(s, depth, map[string]int{}) {
			return depth, true
		}
	}
	return 0, false
}

// dfs reports whether a solved state is reachable within budget moves.
// seen caches the largest budget already explored from a state.
func dfs(s primitives.State, budget int, seen map[string]int) bool {
	if Solved(s) {
		return true
	}
	if budget == 0 {
		return false
	}
	key := fmt.Sprint(Letters(s))
	if b, ok := seen[key]; ok && b >= budget {
		return false
	}
	seen[key] = budget
	for from := range s.Tubes {
		for to := range s.Tubes {
			if Legal(s, from, to) && dfs(Pour(s, from, to), budget-1, seen) {
				return true
			}
		}
	}
	return false
}

// Reachable enumerates every state reachable from s, s included, stopping
// after limit states.
func Reachable(s primitives.State, limit int) []primitives.State {
	seen := map[string]bool{fmt.Sprint(Letters(s)): true}
	out := []primitives.State{s}
	for i := 0; i < len(out) && len(out) < limit; i++ {
		cur := out[i]
		for from := range cur.Tubes {
			for to := range cur.Tubes {
				if !Legal(cur, from, to) {
					continue
				}
				next := Pour(cur, from, to)
				k := fmt.Sprint(Letters(next))
				if !seen[k] {
					seen[k] = true
					out = append(out, next)
				}
			}
		}
	}
	return out
}
