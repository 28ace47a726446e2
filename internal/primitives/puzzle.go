package primitives

// Puzzle is a named initial State together with the palette that maps its
// Colors back to the names used in puzzle files.
type Puzzle struct {
	Name    string
	State   State
	Palette *Palette
}

// ColorNames returns the tubes of s as color names.
func (p Puzzle) ColorNames(s State) [][]string {
	out := make([][]string, len(s.Tubes))
	for i, t := range s.Tubes {
		out[i] = p.Palette.TubeNames(t)
	}
	return out
}
