// Tests for ChannelPublisher delivery, LogPublisher output and Solver integration.
package production

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/comalice/watersort/internal/core"
	"github.com/comalice/watersort/internal/primitives"
	"github.com/comalice/watersort/testutil"
)

func TestChannelPublisher_Delivery(t *testing.T) {
	ch := make(chan PublishedEvent, 10)
	p := NewChannelPublisher(ch)

	event := primitives.NewEvent(primitives.EventProgress, primitives.Progress{Iteration: 10, Frontier: 3})
	meta := core.SearchMetadata{
		RunID:       "run-1",
		Fingerprint: "abcd",
		Timestamp:   time.Now(),
	}

	ctx := context.Background()
	err := p.Publish(ctx, event, meta)
	if err != nil {
		t.Errorf("Publish failed: %v", err)
	}

	select {
	case got := <-ch:
		if got.Event.Type != event.Type {
			t.Errorf("Event type mismatch: got %q, want %q", got.Event.Type, event.Type)
		}
		if got.Event.Progress != event.Progress {
			t.Errorf("Progress mismatch: got %+v, want %+v", got.Event.Progress, event.Progress)
		}
		if got.Metadata.RunID != meta.RunID {
			t.Errorf("Metadata RunID mismatch: got %q, want %q", got.Metadata.RunID, meta.RunID)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("No event delivered")
	}
}

func TestChannelPublisher_BackpressureDrop(t *testing.T) {
	ch := make(chan PublishedEvent, 1)
	p := NewChannelPublisher(ch)
	ch <- PublishedEvent{} // Fill buffer

	event := primitives.NewEvent(primitives.EventProgress, primitives.Progress{})
	err := p.Publish(context.Background(), event, core.SearchMetadata{RunID: "test"})
	if err != nil {
		t.Errorf("Publish on full channel failed: %v", err)
	}
	if len(ch) != 1 {
		t.Errorf("channel length = %d, want 1", len(ch))
	}
}

func TestChannelPublisher_CanceledContext(t *testing.T) {
	ch := make(chan PublishedEvent) // unbuffered, no reader
	p := NewChannelPublisher(ch)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Publish(ctx, primitives.NewEvent(primitives.EventStarted, primitives.Progress{}), core.SearchMetadata{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestChannelPublisher_Close(t *testing.T) {
	ch := make(chan PublishedEvent, 1)
	p := NewChannelPublisher(ch)

	if err := p.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if _, ok := <-ch; ok {
		t.Error("channel should be closed")
	}
}

func TestChannelPublisher_Integration_SolverLifecycle(t *testing.T) {
	publishCh := make(chan PublishedEvent, 16)
	publisher := NewChannelPublisher(publishCh)

	solver := core.NewSolver(core.WithPublisher(publisher), core.WithProgressInterval(1))
	res, err := solver.Solve(context.Background(), testutil.MustState(3, "ABA", "BAB", ""))
	if err != nil {
		t.Fatal(err)
	}
	if err := publisher.Close(); err != nil {
		t.Fatal(err)
	}

	var got []PublishedEvent
	for e := range publishCh {
		got = append(got, e)
	}
	if len(got) < 2 {
		t.Fatalf("expected at least started and finished, got %d events", len(got))
	}
	if got[0].Event.Type != primitives.EventStarted {
		t.Errorf("first event = %q, want started", got[0].Event.Type)
	}
	last := got[len(got)-1]
	if last.Event.Type != primitives.EventFinished || last.Event.Status != "solved" {
		t.Errorf("last event = %+v, want finished/solved", last.Event)
	}
	for _, e := range got {
		if e.Metadata.RunID != res.RunID {
			t.Errorf("event RunID %q, want %q", e.Metadata.RunID, res.RunID)
		}
	}
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	p := NewLogPublisher(logger)
	meta := core.SearchMetadata{RunID: "run-42", Fingerprint: "feed"}

	ctx := context.Background()
	if err := p.Publish(ctx, primitives.NewEvent(primitives.EventProgress, primitives.Progress{Iteration: 5}), meta); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("progress should log at debug, got %q", buf.String())
	}

	finished := primitives.NewEvent(primitives.EventFinished, primitives.Progress{Iteration: 9}).WithStatus("solved")
	if err := p.Publish(ctx, finished, meta); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`msg="search finished"`, "run_id=run-42", "iteration=9", "status=solved"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

type failingPublisher struct {
	calls  int
	closed bool
}

func (f *failingPublisher) Publish(context.Context, primitives.Event, core.SearchMetadata) error {
	f.calls++
	return errors.New("boom")
}

func (f *failingPublisher) Close() error {
	f.closed = true
	return errors.New("close boom")
}

func TestMultiPublisher(t *testing.T) {
	ch := make(chan PublishedEvent, 1)
	bad := &failingPublisher{}
	m := MultiPublisher{bad, NewChannelPublisher(ch)}

	err := m.Publish(context.Background(), primitives.NewEvent(primitives.EventStarted, primitives.Progress{}), core.SearchMetadata{})
	if err == nil || err.Error() != "boom" {
		t.Errorf("expected first error, got %v", err)
	}
	if len(ch) != 1 {
		t.Error("later publishers should still receive the event")
	}
	if err := m.Close(); err == nil {
		t.Error("expected close error")
	}
	if !bad.closed {
		t.Error("Close not propagated")
	}
}
