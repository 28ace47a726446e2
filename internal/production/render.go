package production

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/comalice/watersort/internal/primitives"
)

// ColorMode controls ANSI styling of terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode accepts auto, always and never.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("unknown color mode %q", s)
	}
}

// namedColors maps common puzzle color names to display colors. Other names
// fall back to the ANSI palette by Color number.
var namedColors = map[string]lipgloss.Color{
	"red":    lipgloss.Color("#E74C3C"),
	"green":  lipgloss.Color("#2ECC71"),
	"blue":   lipgloss.Color("#3498DB"),
	"yellow": lipgloss.Color("#F4D03F"),
	"orange": lipgloss.Color("#E67E22"),
	"purple": lipgloss.Color("#9B59B6"),
	"pink":   lipgloss.Color("#FF79C6"),
	"cyan":   lipgloss.Color("#2CD7C7"),
	"teal":   lipgloss.Color("#16858E"),
	"brown":  lipgloss.Color("#8B5A2B"),
	"gray":   lipgloss.Color("#95A5A6"),
	"grey":   lipgloss.Color("#95A5A6"),
	"lime":   lipgloss.Color("#A3E635"),
	"white":  lipgloss.Color("#ECF0F1"),
}

// TerminalRenderer draws boards and result lines for a terminal.
type TerminalRenderer struct {
	palette *primitives.Palette
	styled  bool
	r       *lipgloss.Renderer

	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

// NewTerminalRenderer creates a renderer for output written to w. In
// ColorAuto mode styling is enabled only when w is a terminal.
func NewTerminalRenderer(w io.Writer, palette *primitives.Palette, mode ColorMode) *TerminalRenderer {
	styled := false
	switch mode {
	case ColorAlways:
		styled = true
	case ColorAuto, "":
		if f, ok := w.(*os.File); ok {
			styled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	}

	r := lipgloss.NewRenderer(w)
	if styled {
		r.SetColorProfile(termenv.TrueColor)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &TerminalRenderer{
		palette: palette,
		styled:  styled,
		r:       r,
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#E74C3C")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#95A5A6")),
	}
}

// Styled reports whether output carries ANSI styling.
func (t *TerminalRenderer) Styled() bool {
	return t.styled
}

// Success styles a success line.
func (t *TerminalRenderer) Success(s string) string { return t.render(t.success, s) }

// Failure styles a failure line.
func (t *TerminalRenderer) Failure(s string) string { return t.render(t.failure, s) }

// Muted styles secondary text.
func (t *TerminalRenderer) Muted(s string) string { return t.render(t.muted, s) }

func (t *TerminalRenderer) render(style lipgloss.Style, s string) string {
	if !t.styled {
		return s
	}
	return style.Render(s)
}

// State renders one line per tube, bottom first, padded to capacity:
//
//	0 | red   blue  red   .     |
func (t *TerminalRenderer) State(s primitives.State) string {
	width := 1
	for _, n := range t.palette.Names() {
		width = max(width, len(n))
	}
	for _, tube := range s.Tubes {
		for _, c := range tube {
			width = max(width, len(t.palette.Name(c)))
		}
	}
	idxWidth := len(fmt.Sprint(len(s.Tubes) - 1))

	var b strings.Builder
	for i, tube := range s.Tubes {
		fmt.Fprintf(&b, "%*d |", idxWidth, i)
		for slot := 0; slot < s.Capacity; slot++ {
			b.WriteByte(' ')
			if slot < len(tube) {
				b.WriteString(t.unit(tube[slot], width))
			} else {
				b.WriteString(t.Muted(pad(".", width)))
			}
		}
		b.WriteString(" |\n")
	}
	return b.String()
}

// Steps renders the board after every move of solution, headed by the move.
func (t *TerminalRenderer) Steps(initial primitives.State, solution primitives.Solution) (string, error) {
	states, err := Walk(initial, solution)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i, s := range states[1:] {
		fmt.Fprintf(&b, "Step %d: %s\n", i+1, solution[i])
		b.WriteString(t.State(s))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func (t *TerminalRenderer) unit(c primitives.Color, width int) string {
	name := t.palette.Name(c)
	if !t.styled {
		return pad(name, width)
	}
	fg, ok := namedColors[strings.ToLower(name)]
	if !ok {
		fg = lipgloss.Color(fmt.Sprint(int(c)%14 + 1))
	}
	return t.r.NewStyle().Foreground(fg).Render(pad(name, width))
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
