package primitives

import (
	"fmt"
	"strings"
)

// Color identifies a unit of liquid. Only equality is meaningful.
type Color uint8

// NoColor is the zero Color. It never appears inside a valid tube.
const NoColor Color = 0

// DefaultCapacity is the per-tube capacity used when a puzzle does not set one.
const DefaultCapacity = 4

// MaxCapacity bounds Capacity so a tube length fits in one key byte.
const MaxCapacity = 255

// Tube is a stack of units, bottom first. The last element is the top.
type Tube []Color

// Top returns the top unit, or NoColor for an empty tube.
func (t Tube) Top() Color {
	if len(t) == 0 {
		return NoColor
	}
	return t[len(t)-1]
}

// TopRun counts the contiguous units at the top that share the top color.
func (t Tube) TopRun() int {
	if len(t) == 0 {
		return 0
	}
	top := t[len(t)-1]
	run := 0
	for i := len(t) - 1; i >= 0 && t[i] == top; i-- {
		run++
	}
	return run
}

// Clone returns an independent copy of the tube.
func (t Tube) Clone() Tube {
	if t == nil {
		return Tube{}
	}
	c := make(Tube, len(t))
	copy(c, t)
	return c
}

// State is one puzzle position: a fixed number of tubes sharing one capacity.
// Tube identity is its index.
type State struct {
	Capacity int    `json:"capacity" yaml:"capacity"`
	Tubes    []Tube `json:"tubes" yaml:"tubes"`
}

// NewState builds a State from tubes, copying each so the caller keeps ownership
// of its slices.
func NewState(capacity int, tubes ...Tube) State {
	s := State{Capacity: capacity, Tubes: make([]Tube, len(tubes))}
	for i, t := range tubes {
		s.Tubes[i] = t.Clone()
	}
	return s
}

// Clone returns a deep copy; no tube is shared with s.
func (s State) Clone() State {
	c := State{Capacity: s.Capacity, Tubes: make([]Tube, len(s.Tubes))}
	for i, t := range s.Tubes {
		c.Tubes[i] = t.Clone()
	}
	return c
}

// Free returns the remaining room in tube i.
func (s State) Free(i int) int {
	return s.Capacity - len(s.Tubes[i])
}

// Units returns the multiset of units in the state as color -> count.
func (s State) Units() map[Color]int {
	counts := make(map[Color]int)
	for _, t := range s.Tubes {
		for _, c := range t {
			counts[c]++
		}
	}
	return counts
}

// Equal reports whether both states have the same capacity and identical
// tubes in identical order.
func (s State) Equal(o State) bool {
	if s.Capacity != o.Capacity || len(s.Tubes) != len(o.Tubes) {
		return false
	}
	for i := range s.Tubes {
		if len(s.Tubes[i]) != len(o.Tubes[i]) {
			return false
		}
		for j := range s.Tubes[i] {
			if s.Tubes[i][j] != o.Tubes[i][j] {
				return false
			}
		}
	}
	return true
}

// String renders tubes as bracketed color numbers, e.g. "[1 2] [] [3]".
func (s State) String() string {
	var b strings.Builder
	for i, t := range s.Tubes {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('[')
		for j, c := range t {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", c)
		}
		b.WriteByte(']')
	}
	return b.String()
}

// Move pours from tube From into tube To.
type Move struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

// String renders the move as "(from, to)".
func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.From, m.To)
}

// Solution is the ordered move list from an initial state to a solved one.
// An empty Solution means the initial state was already solved.
type Solution []Move

// String joins the moves with spaces.
func (s Solution) String() string {
	parts := make([]string, len(s))
	for i, m := range s {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
