// Tests for DefaultVisualizer DOT and JSON export.
package production

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/comalice/watersort/internal/core"
	"github.com/comalice/watersort/internal/primitives"
	"github.com/comalice/watersort/testutil"
)

var simpleSolution = primitives.Solution{{From: 0, To: 2}, {From: 1, To: 0}, {From: 1, To: 2}, {From: 0, To: 1}}

func simplePuzzle(t *testing.T) primitives.Puzzle {
	t.Helper()
	p, err := DecodePuzzle([]byte(simpleYAML), FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestWalk(t *testing.T) {
	p := simplePuzzle(t)
	states, err := Walk(p.State, simpleSolution)
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(states) != len(simpleSolution)+1 {
		t.Fatalf("got %d states, want %d", len(states), len(simpleSolution)+1)
	}
	if !states[0].Equal(p.State) {
		t.Error("first state should be the initial state")
	}
	if !core.IsGameSolved(states[len(states)-1]) {
		t.Errorf("last state not solved: %v", states[len(states)-1])
	}
}

func TestWalk_IllegalMove(t *testing.T) {
	s := testutil.MustState(2, "AB", "", "")
	_, err := Walk(s, primitives.Solution{{From: 1, To: 0}})
	if !errors.Is(err, core.ErrIllegalMove) {
		t.Errorf("expected ErrIllegalMove, got %v", err)
	}
}

func TestDefaultVisualizer_ExportDOT(t *testing.T) {
	p := simplePuzzle(t)
	v := &DefaultVisualizer{Palette: p.Palette}
	dot, err := v.ExportDOT(p.State, simpleSolution)
	if err != nil {
		t.Fatalf("ExportDOT failed: %v", err)
	}

	if !strings.HasPrefix(dot, `digraph Solution {`) {
		t.Error("Missing DOT header")
	}
	if !strings.Contains(dot, `"s0" [label="0: [red blue red]\l1: [blue red blue]\l2: []\l" style="rounded,filled" fillcolor=orange];`) {
		t.Errorf("Missing initial node:\n%s", dot)
	}
	if !strings.Contains(dot, `"s0" -> "s1" [label="1. (0, 2)"];`) {
		t.Error("Missing first move edge")
	}
	if !strings.Contains(dot, `"s3" -> "s4" [label="4. (0, 1)"];`) {
		t.Error("Missing last move edge")
	}
	if !strings.Contains(dot, `"s4" [label=`) || !strings.Contains(dot, `fillcolor=lightgreen`) {
		t.Error("Missing solved state highlight")
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Error("Missing DOT footer")
	}
}

func TestDefaultVisualizer_ExportDOT_NoPalette(t *testing.T) {
	v := &DefaultVisualizer{}
	dot, err := v.ExportDOT(testutil.MustState(2, "AB", ""), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(dot, `0: [1 2]\l1: []\l`) {
		t.Errorf("expected numeric colors:\n%s", dot)
	}
	if strings.Contains(dot, "->") {
		t.Error("no edges expected for an empty solution")
	}
	if strings.Contains(dot, "lightgreen") {
		t.Error("unsolved state must not be highlighted as solved")
	}
	if !strings.Contains(dot, "fillcolor=orange") {
		t.Error("initial node should be orange")
	}
}

func TestDefaultVisualizer_ExportDOT_AlreadySolved(t *testing.T) {
	v := &DefaultVisualizer{}
	dot, err := v.ExportDOT(testutil.MustState(2, "AA", "B"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(dot, `"s0" [label="0: [1 1]\l1: [2]\l" style="rounded,filled" fillcolor=lightgreen];`) {
		t.Errorf("solved initial node should be light green:\n%s", dot)
	}
	if strings.Contains(dot, "orange") {
		t.Error("solved initial node must not be orange")
	}
}

func TestDefaultVisualizer_ExportJSON(t *testing.T) {
	p := simplePuzzle(t)
	v := &DefaultVisualizer{Palette: p.Palette}
	data, err := v.ExportJSON(p.State, simpleSolution)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var steps []Step
	if err := json.Unmarshal(data, &steps); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(steps) != 5 {
		t.Fatalf("got %d steps, want 5", len(steps))
	}
	if steps[0].Move != nil {
		t.Error("initial step should have no move")
	}
	if steps[1].Move == nil || *steps[1].Move != simpleSolution[0] {
		t.Errorf("step 1 move = %v", steps[1].Move)
	}
	if got := strings.Join(steps[4].Tubes[2], ","); got != "red,red" {
		t.Errorf("final tube 2 = %q, want red,red", got)
	}
}
