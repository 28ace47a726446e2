package watersort

import (
	"errors"
	"fmt"
)

// PuzzleBuilder provides a fluent API for constructing puzzles from color
// names instead of numeric Colors. Colors are assigned in first-seen order,
// starting at 1, so the same calls always produce the same State.
type PuzzleBuilder struct {
	name     string
	capacity int
	palette  *Palette
	tubes    []Tube
	errs     []error
}

// NewPuzzleBuilder creates a builder for a puzzle with the given tube
// capacity. A capacity of 0 means DefaultCapacity.
func NewPuzzleBuilder(name string, capacity int) *PuzzleBuilder {
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	return &PuzzleBuilder{name: name, capacity: capacity, palette: &Palette{}}
}

// Tube appends a tube holding colors, bottom first.
func (b *PuzzleBuilder) Tube(colors ...string) *PuzzleBuilder {
	t, err := b.palette.Tube(colors...)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("tube %d: %w", len(b.tubes), err))
		t = Tube{}
	}
	b.tubes = append(b.tubes, t)
	return b
}

// Empty appends n empty tubes.
func (b *PuzzleBuilder) Empty(n int) *PuzzleBuilder {
	for range n {
		b.tubes = append(b.tubes, Tube{})
	}
	return b
}

// Build validates the puzzle and returns it. Errors from earlier Tube calls
// are reported here, joined with any validation failure.
func (b *PuzzleBuilder) Build() (Puzzle, error) {
	if len(b.errs) > 0 {
		return Puzzle{}, errors.Join(b.errs...)
	}
	s := NewState(b.capacity, b.tubes...)
	if err := s.Validate(); err != nil {
		return Puzzle{}, err
	}
	return Puzzle{Name: b.name, State: s, Palette: b.palette}, nil
}

// GetColor returns the Color assigned to name, or NoColor if the name
// hasn't been used.
func (b *PuzzleBuilder) GetColor(name string) Color {
	for i, n := range b.palette.Names() {
		if n == name {
			return Color(i + 1)
		}
	}
	return NoColor
}

// GetName returns the name for c.
// Returns empty string if c hasn't been assigned.
func (b *PuzzleBuilder) GetName(c Color) string {
	if c == NoColor || int(c) > b.palette.Len() {
		return ""
	}
	return b.palette.Name(c)
}
