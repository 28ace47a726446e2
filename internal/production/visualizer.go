package production

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/comalice/watersort/internal/core"
	"github.com/comalice/watersort/internal/primitives"
)

// Step is one position along a solution. Move is nil for the initial state.
type Step struct {
	Index int              `json:"index"`
	Move  *primitives.Move `json:"move,omitempty"`
	Tubes [][]string       `json:"tubes"`
}

// Walk replays solution from initial and returns every visited position,
// starting with initial itself.
func Walk(initial primitives.State, solution primitives.Solution) ([]primitives.State, error) {
	states := make([]primitives.State, 0, len(solution)+1)
	cur := initial.Clone()
	states = append(states, cur)
	for i, m := range solution {
		next, err := core.ApplyMove(cur, m)
		if err != nil {
			return nil, fmt.Errorf("move %d %s: %w", i+1, m, err)
		}
		states = append(states, next)
		cur = next
	}
	return states, nil
}

// DefaultVisualizer renders solution paths. A nil Palette renders colors by
// number.
type DefaultVisualizer struct {
	Palette *primitives.Palette
}

// ExportDOT generates Graphviz DOT source for the path from initial through
// solution. The initial node is orange and a solved final node light green;
// when the initial state is already solved, its single node is light green.
func (v *DefaultVisualizer) ExportDOT(initial primitives.State, solution primitives.Solution) (string, error) {
	states, err := Walk(initial, solution)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString(`digraph Solution {
  rankdir=TB;
  node [shape=box, fontsize=10, style=rounded, fontname="monospace"];
  edge [fontsize=9];
`)
	last := len(states) - 1
	for i, s := range states {
		style := ""
		switch {
		case i == last && core.IsGameSolved(s):
			style = ` style="rounded,filled" fillcolor=lightgreen`
		case i == 0:
			style = ` style="rounded,filled" fillcolor=orange`
		}
		fmt.Fprintf(&buf, "  \"s%d\" [label=\"%s\"%s];\n", i, v.label(s), style)
	}
	for i, m := range solution {
		fmt.Fprintf(&buf, "  \"s%d\" -> \"s%d\" [label=\"%d. %s\"];\n", i, i+1, i+1, m)
	}
	buf.WriteString("}\n")
	return buf.String(), nil
}

// ExportJSON serializes every step of the solution with color names.
func (v *DefaultVisualizer) ExportJSON(initial primitives.State, solution primitives.Solution) ([]byte, error) {
	states, err := Walk(initial, solution)
	if err != nil {
		return nil, err
	}
	steps := make([]Step, len(states))
	for i, s := range states {
		steps[i] = Step{Index: i, Tubes: v.names(s)}
		if i > 0 {
			m := solution[i-1]
			steps[i].Move = &m
		}
	}
	return json.MarshalIndent(steps, "", "  ")
}

func (v *DefaultVisualizer) names(s primitives.State) [][]string {
	out := make([][]string, len(s.Tubes))
	for i, t := range s.Tubes {
		out[i] = v.Palette.TubeNames(t)
	}
	return out
}

// label renders one tube per line, bottom first, as a left-justified DOT
// record label.
func (v *DefaultVisualizer) label(s primitives.State) string {
	var b strings.Builder
	for i, names := range v.names(s) {
		fmt.Fprintf(&b, "%d: [%s]\\l", i, strings.Join(names, " "))
	}
	return escapeDOT(b.String())
}

func escapeDOT(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
