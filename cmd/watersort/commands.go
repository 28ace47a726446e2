package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/comalice/watersort/internal/presets"
	"github.com/comalice/watersort/internal/primitives"
	"github.com/comalice/watersort/internal/production"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check puzzle files without solving them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			for _, path := range args {
				p, err := production.LoadPuzzleFile(path)
				if err != nil {
					fmt.Fprintf(a.stdout, "%s: %v\n", path, err)
					failed++
					continue
				}
				fmt.Fprintf(a.stdout, "%s: ok (%s, fingerprint %s)\n", path, describe(p), primitives.Fingerprint(p.State))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d puzzle files invalid", failed, len(args))
			}
			return nil
		},
	}
}

func newRenderCmd(a *app) *cobra.Command {
	var preset string
	var dot bool
	cmd := &cobra.Command{
		Use:   "render [FILE]",
		Short: "Print a puzzle board",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPuzzle(args, preset)
			if err != nil {
				return err
			}
			if dot {
				v := &production.DefaultVisualizer{Palette: p.Palette}
				out, err := v.ExportDOT(p.State, nil)
				if err != nil {
					return err
				}
				fmt.Fprint(a.stdout, out)
				return nil
			}
			fmt.Fprintf(a.stdout, "%s (%s)\n", p.Name, describe(p))
			fmt.Fprint(a.stdout, a.renderer(p).State(p.State))
			return nil
		},
	}
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "render a built-in puzzle")
	cmd.Flags().BoolVar(&dot, "dot", false, "print Graphviz DOT instead of text")
	return cmd
}

func newPresetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List built-in puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			for _, name := range presets.Names() {
				p, err := presets.Load(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\n", name, describe(p))
			}
			return tw.Flush()
		},
	}
}

func describe(p primitives.Puzzle) string {
	return fmt.Sprintf("%d tubes, capacity %d, %d colors", len(p.State.Tubes), p.State.Capacity, p.Palette.Len())
}
