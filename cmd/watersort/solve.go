package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/comalice/watersort/internal/core"
	"github.com/comalice/watersort/internal/primitives"
	"github.com/comalice/watersort/internal/production"
)

type solveOptions struct {
	preset  string
	json    bool
	saveDir string
	dotFile string
	steps   bool
}

func newSolveCmd(a *app) *cobra.Command {
	var opts solveOptions
	cmd := &cobra.Command{
		Use:   "solve [FILE]",
		Short: "Search for a shortest solution",
		Long: `Search for a shortest solution of the puzzle in FILE (.yaml, .yml or .json),
or of a built-in preset. Without FILE or --preset the "example" preset is solved.

Exits 0 when solved, 2 when no solution was found, 1 on errors.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPuzzle(args, opts.preset)
			if err != nil {
				return err
			}
			return a.solve(cmd.Context(), p, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.preset, "preset", "p", "", "solve a built-in puzzle (see 'watersort presets')")
	f.BoolVar(&opts.json, "json", false, "print the result as JSON")
	f.StringVar(&opts.saveDir, "save", "", "save the puzzle and its solution as YAML in this directory")
	f.StringVar(&opts.dotFile, "dot", "", "write the solution path as Graphviz DOT to this file")
	f.BoolVar(&opts.steps, "steps", false, "print the board after every move")
	return cmd
}

// solveOutput is the --json document.
type solveOutput struct {
	Puzzle   string      `json:"puzzle"`
	Capacity int         `json:"capacity"`
	Tubes    [][]string  `json:"tubes"`
	Result   core.Result `json:"result"`
}

func (a *app) solve(ctx context.Context, p primitives.Puzzle, opts solveOptions) error {
	r := a.renderer(p)
	if !opts.json {
		fmt.Fprintln(a.stdout, "--- Water Sort Puzzle Solver ---")
		fmt.Fprintln(a.stdout, "================================")
		fmt.Fprintf(a.stdout, "Puzzle: %s (%d tubes, capacity %d)\n", p.Name, len(p.State.Tubes), p.State.Capacity)
		fmt.Fprintln(a.stdout, "Initial state:")
		fmt.Fprint(a.stdout, r.State(p.State))
		fmt.Fprintln(a.stdout, "\nSolving...")
	}

	res, err := core.NewSolver(a.solverOptions()...).Solve(ctx, p.State)
	if err != nil {
		return err
	}

	if opts.saveDir != "" {
		if err := saveRecord(ctx, opts.saveDir, p, res); err != nil {
			return err
		}
	}
	if opts.dotFile != "" {
		if err := writeDOT(opts.dotFile, p, res.Moves); err != nil {
			return err
		}
	}

	if opts.json {
		out := solveOutput{Puzzle: p.Name, Capacity: p.State.Capacity, Tubes: p.ColorNames(p.State), Result: res}
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	} else if err := a.printResult(a.stdout, r, p, res, opts.steps); err != nil {
		return err
	}

	if !res.Solved() {
		return errUnsolved
	}
	return nil
}

func (a *app) printResult(w io.Writer, r *production.TerminalRenderer, p primitives.Puzzle, res core.Result, steps bool) error {
	secs := res.Duration.Seconds()
	fmt.Fprintln(w, "================================")
	if !res.Solved() {
		fmt.Fprintln(w, r.Failure(fmt.Sprintf("❌ No solution found after %.2f seconds.", secs)))
		if res.Status == core.StatusBudgetExceeded {
			fmt.Fprintln(w, r.Muted(fmt.Sprintf("Search stopped after %d states; raise --max-iterations to search further.", res.Iterations)))
		}
		return nil
	}

	fmt.Fprintln(w, r.Success(fmt.Sprintf("✅ Solution found in %.2f seconds!", secs)))
	fmt.Fprintf(w, "Total moves: %d\n", len(res.Moves))
	fmt.Fprintln(w, "\nSteps:")
	fmt.Fprintln(w, res.Moves.String())
	if steps && len(res.Moves) > 0 {
		out, err := r.Steps(p.State, res.Moves)
		if err != nil {
			return err
		}
		fmt.Fprintln(w)
		fmt.Fprint(w, out)
	}
	return nil
}

func saveRecord(ctx context.Context, dir string, p primitives.Puzzle, res core.Result) error {
	persister, err := production.NewYAMLPersister(dir)
	if err != nil {
		return err
	}
	if p.Name == "" {
		p.Name = res.Fingerprint
	}
	return persister.Save(ctx, production.Record{
		Puzzle:   p,
		Status:   res.Status.String(),
		RunID:    res.RunID,
		Solution: res.Moves,
		SavedAt:  time.Now(),
	})
}

func writeDOT(path string, p primitives.Puzzle, moves primitives.Solution) error {
	v := &production.DefaultVisualizer{Palette: p.Palette}
	dot, err := v.ExportDOT(p.State, moves)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(dot), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
