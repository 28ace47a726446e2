package primitives

import (
	"errors"
	"fmt"
)

// ErrPaletteFull is returned when more than 255 distinct color names are used.
var ErrPaletteFull = errors.New("palette full")

// Palette maps color names to Colors in first-seen order, starting at 1.
// The zero value is ready to use.
type Palette struct {
	nameToColor map[string]Color
	names       []string // names[c-1] is the name of Color c
}

// NewPalette creates a palette pre-seeded with names, in order.
func NewPalette(names ...string) (*Palette, error) {
	p := &Palette{}
	for _, n := range names {
		if _, err := p.Color(n); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Color returns the Color for name, assigning the next one if unseen.
func (p *Palette) Color(name string) (Color, error) {
	if name == "" {
		return NoColor, fmt.Errorf("%w: empty color name", ErrInvalidState)
	}
	if p.nameToColor == nil {
		p.nameToColor = make(map[string]Color)
	}
	if c, ok := p.nameToColor[name]; ok {
		return c, nil
	}
	if len(p.names) >= 255 {
		return NoColor, fmt.Errorf("%w: cannot add %q", ErrPaletteFull, name)
	}
	p.names = append(p.names, name)
	c := Color(len(p.names))
	p.nameToColor[name] = c
	return c, nil
}

// Name returns the name of c, or its number when c was never assigned.
func (p *Palette) Name(c Color) string {
	if p != nil && c != NoColor && int(c) <= len(p.names) {
		return p.names[c-1]
	}
	return fmt.Sprintf("%d", c)
}

// Names returns the assigned names in Color order.
func (p *Palette) Names() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Len returns the number of assigned colors.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.names)
}

// Tube converts color names to a Tube, assigning Colors as needed.
func (p *Palette) Tube(names ...string) (Tube, error) {
	t := make(Tube, 0, len(names))
	for _, n := range names {
		c, err := p.Color(n)
		if err != nil {
			return nil, err
		}
		t = append(t, c)
	}
	return t, nil
}

// TubeNames converts a Tube back to color names.
func (p *Palette) TubeNames(t Tube) []string {
	out := make([]string, len(t))
	for i, c := range t {
		out[i] = p.Name(c)
	}
	return out
}
