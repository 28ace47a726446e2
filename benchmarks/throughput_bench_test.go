// Package benchmarks provides solver throughput benchmarks.
package benchmarks

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/comalice/watersort/internal/core"
	"github.com/comalice/watersort/internal/primitives"
	"github.com/comalice/watersort/internal/production"
)

func decodeYAML(data []byte) (primitives.Puzzle, error) {
	return production.DecodePuzzle(data, production.FormatYAML)
}

func BenchmarkSolvePresets(b *testing.B) {
	for _, name := range []string{"simple", "example"} {
		s := MustPreset(name)
		b.Run(name, func(b *testing.B) {
			solver := core.NewSolver()
			var iterations int
			b.ReportAllocs()
			for b.Loop() {
				res, err := solver.Solve(context.Background(), s)
				if err != nil {
					b.Fatal(err)
				}
				iterations = res.Iterations
			}
			b.ReportMetric(float64(iterations), "states/op")
		})
	}
}

func BenchmarkSolveGenerated(b *testing.B) {
	for _, colors := range []int{3, 4, 5} {
		s := GenPuzzle(colors, 4, 2, 42)
		b.Run(fmt.Sprintf("colors=%d", colors), func(b *testing.B) {
			solver := core.NewSolver(core.WithMaxIterations(50000))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := solver.Solve(context.Background(), s); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkSolveParallel runs independent searches on one shared Solver.
func BenchmarkSolveParallel(b *testing.B) {
	s := MustPreset("example")
	solver := core.NewSolver()
	var solved int64
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			res, err := solver.Solve(context.Background(), s)
			if err != nil {
				b.Error(err)
				return
			}
			if res.Solved() {
				atomic.AddInt64(&solved, 1)
			}
		}
	})
	b.ReportMetric(float64(atomic.LoadInt64(&solved))/float64(b.N), "solved/op")
}

func BenchmarkSolveWithPublisher(b *testing.B) {
	s := MustPreset("example")
	ch := make(chan production.PublishedEvent, 64)
	done := make(chan struct{})
	var received int64
	go func() {
		for range ch {
			atomic.AddInt64(&received, 1)
		}
		close(done)
	}()
	pub := production.NewChannelPublisher(ch)
	solver := core.NewSolver(core.WithPublisher(pub), core.WithProgressInterval(10))

	b.ReportAllocs()
	for b.Loop() {
		if _, err := solver.Solve(context.Background(), s); err != nil {
			b.Fatal(err)
		}
	}
	b.StopTimer()
	pub.Close()
	<-done
	b.ReportMetric(float64(atomic.LoadInt64(&received))/float64(b.N), "events/op")
}
