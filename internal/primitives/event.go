// Event provides the immutable search event primitive.
//
// Events are value types published by the search engine while it runs.
// Once created, Events should not be mutated. Use NewEvent for construction.
//
// Example:
//
//	event := NewEvent(EventProgress, Progress{Iteration: 10000, Frontier: 812})
package primitives

// EventType names a point in the search lifecycle.
type EventType string

const (
	EventStarted  EventType = "started"
	EventProgress EventType = "progress"
	EventFinished EventType = "finished"
)

// Progress is a snapshot of search counters.
type Progress struct {
	Iteration int `json:"iteration" yaml:"iteration"`
	Depth     int `json:"depth" yaml:"depth"`
	Frontier  int `json:"frontier" yaml:"frontier"`
	Visited   int `json:"visited" yaml:"visited"`
}

type Event struct {
	Type     EventType `json:"type" yaml:"type"`
	Progress Progress  `json:"progress" yaml:"progress"`
	// Status is set on EventFinished only.
	Status string `json:"status,omitempty" yaml:"status,omitempty"`
}

// NewEvent creates and returns a new immutable Event.
func NewEvent(eventType EventType, p Progress) Event {
	return Event{
		Type:     eventType,
		Progress: p,
	}
}

// WithStatus returns a copy of e carrying status.
func (e Event) WithStatus(status string) Event {
	e.Status = status
	return e
}
