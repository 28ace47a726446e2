package production

import (
	"context"
	"log/slog"

	"github.com/comalice/watersort/internal/core"
	"github.com/comalice/watersort/internal/primitives"
)

// PublishedEvent bundles an event with its search metadata for publishing.
type PublishedEvent struct {
	Event    primitives.Event
	Metadata core.SearchMetadata
}

// ChannelPublisher forwards events to a Go channel.
// Non-blocking publish with drop on backpressure.
type ChannelPublisher struct {
	ch chan<- PublishedEvent
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- PublishedEvent) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

func (p *ChannelPublisher) Publish(ctx context.Context, event primitives.Event, metadata core.SearchMetadata) error {
	select {
	case p.ch <- PublishedEvent{Event: event, Metadata: metadata}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil // Non-blocking drop
	}
}

func (p *ChannelPublisher) Close() error {
	close(p.ch)
	return nil
}

// LogPublisher writes events to a structured logger. Progress goes to
// debug, lifecycle events to info.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a LogPublisher. A nil logger uses slog.Default.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event primitives.Event, metadata core.SearchMetadata) error {
	level := slog.LevelInfo
	if event.Type == primitives.EventProgress {
		level = slog.LevelDebug
	}
	attrs := []slog.Attr{
		slog.String("run_id", metadata.RunID),
		slog.String("fingerprint", metadata.Fingerprint),
		slog.Int("iteration", event.Progress.Iteration),
		slog.Int("depth", event.Progress.Depth),
		slog.Int("frontier", event.Progress.Frontier),
		slog.Int("visited", event.Progress.Visited),
	}
	if event.Status != "" {
		attrs = append(attrs, slog.String("status", event.Status))
	}
	p.logger.LogAttrs(ctx, level, "search "+string(event.Type), attrs...)
	return nil
}

func (p *LogPublisher) Close() error { return nil }

// MultiPublisher fans events out to several publishers. Publish returns the
// first error but still delivers to every publisher.
type MultiPublisher []core.EventPublisher

func (m MultiPublisher) Publish(ctx context.Context, event primitives.Event, metadata core.SearchMetadata) error {
	var first error
	for _, p := range m {
		if err := p.Publish(ctx, event, metadata); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (m MultiPublisher) Close() error {
	var first error
	for _, p := range m {
		if err := p.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
