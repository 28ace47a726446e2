// Package core provides the search tier of the water sort engine: the rules,
// the state transition, the visited set and the breadth-first Solver.
// Stdlib-only apart from prometheus/otel instrumentation and run IDs.
package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/comalice/watersort/internal/primitives"
)

const (
	// DefaultMaxIterations bounds the number of dequeued states.
	DefaultMaxIterations = 200000
	// DefaultProgressInterval is the number of dequeues between progress events.
	DefaultProgressInterval = 10000
)

// EventPublisher receives search lifecycle events. Publish must not block
// the search for long; implementations drop or buffer.
type EventPublisher interface {
	Publish(ctx context.Context, event primitives.Event, metadata SearchMetadata) error
	Close() error
}

// SearchMetadata identifies the search an event belongs to.
type SearchMetadata struct {
	RunID       string    `json:"runID" yaml:"runID"`
	Fingerprint string    `json:"fingerprint" yaml:"fingerprint"`
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
}

// Option applies configuration to Solver via functional options pattern.
type Option func(*Solver)

// Solver runs breadth-first searches. A Solver holds only configuration, so
// one value may run any number of searches, each with its own frontier and
// visited set.
type Solver struct {
	maxIterations    int
	progressInterval int
	publisher        EventPublisher
	logger           *slog.Logger
	newVisited       func(sizeHint int) VisitedSet
}

// NewSolver creates a Solver with defaults overridden by opts.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{
		maxIterations:    DefaultMaxIterations,
		progressInterval: DefaultProgressInterval,
		logger:           slog.New(slog.DiscardHandler),
		newVisited: func(sizeHint int) VisitedSet {
			return NewMapVisited(sizeHint)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxIterations returns the configured iteration cap.
func (s *Solver) MaxIterations() int {
	return s.maxIterations
}

// search is the per-call state of one Solve.
type search struct {
	solver  *Solver
	meta    SearchMetadata
	queue   frontier
	visited VisitedSet
	result  Result
	start   time.Time
}

// Solve finds a shortest move sequence from initial to a solved state.
//
// The initial state is validated first; an invalid state fails with an error
// wrapping primitives.ErrInvalidState. Otherwise the outcome is reported in
// Result.Status, and the only other error is the context's, checked once per
// dequeued state.
//
// States are dequeued in FIFO order and each canonical key is enqueued at
// most once, so the first solved state dequeued has a minimal move count.
// Expansion follows PossibleMoves order, which makes the result
// deterministic.
func (s *Solver) Solve(ctx context.Context, initial primitives.State) (Result, error) {
	if err := initial.Validate(); err != nil {
		return Result{}, err
	}

	run := &search{
		solver:  s,
		visited: s.newVisited(1024),
		start:   time.Now(),
	}
	run.meta = SearchMetadata{
		RunID:       uuid.NewString(),
		Fingerprint: primitives.Fingerprint(initial),
		Timestamp:   run.start,
	}
	run.result.RunID = run.meta.RunID
	run.result.Fingerprint = run.meta.Fingerprint

	ctx, span := getTracer().Start(ctx, "core.Solver.Solve",
		trace.WithAttributes(
			attribute.String("watersort.run_id", run.meta.RunID),
			attribute.String("watersort.fingerprint", run.meta.Fingerprint),
			attribute.Int("watersort.tubes", len(initial.Tubes)),
			attribute.Int("watersort.capacity", initial.Capacity),
			attribute.Int("watersort.max_iterations", s.maxIterations),
		))
	defer span.End()

	root := &node{state: initial.Clone()}
	run.visited.Add(root.state.Key())
	run.queue.push(root)

	s.logger.Debug("search started",
		"run_id", run.meta.RunID,
		"fingerprint", run.meta.Fingerprint,
		"tubes", len(initial.Tubes),
		"capacity", initial.Capacity,
		"max_iterations", s.maxIterations)
	run.publish(ctx, primitives.EventStarted)

	err := run.loop(ctx)
	run.finish(ctx, span, err)
	return run.result, err
}

func (r *search) loop(ctx context.Context) error {
	for r.queue.len() > 0 {
		if r.result.Iterations >= r.solver.maxIterations {
			r.result.Status = StatusBudgetExceeded
			return nil
		}
		if err := ctx.Err(); err != nil {
			r.result.Status = StatusCanceled
			return fmt.Errorf("search canceled after %d iterations: %w", r.result.Iterations, err)
		}

		cur := r.queue.pop()
		r.result.Iterations++
		r.result.Depth = cur.depth

		if IsGameSolved(cur.state) {
			r.result.Status = StatusSolved
			r.result.Moves = cur.path()
			return nil
		}

		for _, m := range PossibleMoves(cur.state) {
			next := pour(cur.state, m)
			if r.visited.Add(next.Key()) {
				r.queue.push(&node{state: next, move: m, parent: cur, depth: cur.depth + 1})
			}
		}
		if n := r.queue.len(); n > r.result.MaxFrontier {
			r.result.MaxFrontier = n
		}

		if iv := r.solver.progressInterval; iv > 0 && r.result.Iterations%iv == 0 {
			r.publish(ctx, primitives.EventProgress)
		}
	}
	r.result.Status = StatusUnsolvable
	return nil
}

func (r *search) finish(ctx context.Context, span trace.Span, err error) {
	r.result.Visited = r.visited.Len()
	r.result.Duration = time.Since(r.start)
	recordSearch(r.result)

	span.SetAttributes(
		attribute.String("watersort.status", r.result.Status.String()),
		attribute.Int("watersort.iterations", r.result.Iterations),
		attribute.Int("watersort.visited", r.result.Visited),
		attribute.Int("watersort.moves", len(r.result.Moves)),
	)

	log := r.solver.logger.With(
		"run_id", r.meta.RunID,
		"status", r.result.Status.String(),
		"iterations", r.result.Iterations,
		"visited", r.result.Visited,
		"duration", r.result.Duration)

	switch r.result.Status {
	case StatusBudgetExceeded:
		// Same negative answer as unsolvable for callers that only look at
		// Solved(); the log keeps the two apart.
		span.SetStatus(codes.Error, "iteration budget exceeded")
		log.Warn("search budget exceeded", "max_iterations", r.solver.maxIterations)
	case StatusCanceled:
		span.RecordError(err)
		span.SetStatus(codes.Error, "search canceled")
		log.Warn("search canceled", "error", err)
	case StatusSolved:
		span.SetStatus(codes.Ok, "solved")
		log.Info("search finished", "moves", len(r.result.Moves))
	default:
		span.SetStatus(codes.Ok, "state space exhausted")
		log.Info("search finished")
	}

	// the search context may already be done; deliver the final event anyway
	r.publish(context.WithoutCancel(ctx), primitives.EventFinished)
}

func (r *search) publish(ctx context.Context, typ primitives.EventType) {
	pub := r.solver.publisher
	if pub == nil {
		return
	}
	evt := primitives.NewEvent(typ, primitives.Progress{
		Iteration: r.result.Iterations,
		Depth:     r.result.Depth,
		Frontier:  r.queue.len(),
		Visited:   r.visited.Len(),
	})
	if typ == primitives.EventFinished {
		evt = evt.WithStatus(r.result.Status.String())
	}
	meta := r.meta
	meta.Timestamp = time.Now()
	if err := pub.Publish(ctx, evt, meta); err != nil {
		r.solver.logger.Debug("publish failed", "event", string(typ), "error", err)
	}
}
