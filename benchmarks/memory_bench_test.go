// Package benchmarks provides memory footprint benchmarks.
package benchmarks

import (
	"context"
	"fmt"
	"runtime"
	"testing"

	"github.com/comalice/watersort/internal/core"
)

// BenchmarkMemoryPerState reports allocated bytes per distinct visited state.
func BenchmarkMemoryPerState(b *testing.B) {
	for _, colors := range []int{3, 4, 5} {
		s := GenPuzzle(colors, 4, 2, 11)
		b.Run(fmt.Sprintf("colors=%d", colors), func(b *testing.B) {
			solver := core.NewSolver(core.WithMaxIterations(20000))
			var visited int
			var before, after runtime.MemStats
			runtime.GC()
			runtime.ReadMemStats(&before)
			for b.Loop() {
				res, err := solver.Solve(context.Background(), s)
				if err != nil {
					b.Fatal(err)
				}
				visited += res.Visited
			}
			runtime.ReadMemStats(&after)
			if visited > 0 {
				b.ReportMetric(float64(after.TotalAlloc-before.TotalAlloc)/float64(visited), "B/state")
			}
		})
	}
}
