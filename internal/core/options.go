// Package core provides the search tier of the water sort engine.
// Options for configuring Solver instances.
package core

import "log/slog"

// WithMaxIterations caps the number of dequeued states. Values below 1 keep
// the default.
func WithMaxIterations(n int) Option {
	return func(s *Solver) {
		if n >= 1 {
			s.maxIterations = n
		}
	}
}

// WithProgressInterval publishes a progress event every n dequeues.
// Zero disables progress events.
func WithProgressInterval(n int) Option {
	return func(s *Solver) {
		if n >= 0 {
			s.progressInterval = n
		}
	}
}

// WithPublisher configures the Solver with an EventPublisher.
func WithPublisher(p EventPublisher) Option {
	return func(s *Solver) {
		s.publisher = p
	}
}

// WithLogger configures the Solver with a structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithVisitedSet replaces the default map-backed visited set.
func WithVisitedSet(newSet func(sizeHint int) VisitedSet) Option {
	return func(s *Solver) {
		if newSet != nil {
			s.newVisited = newSet
		}
	}
}
