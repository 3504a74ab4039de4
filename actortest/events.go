package actortest

import (
	"sync"

	"github.com/google/uuid"

	"github.com/wippyai/actor-sdk/codec"
)

// EventStreams is an in-memory append-only stream store satisfying the
// actorsdk.EventStreams contract. Event IDs are v4 UUIDs, as most stream
// providers assign.
type EventStreams struct {
	mu      sync.Mutex
	streams map[string][]codec.Event
}

// NewEventStreams returns an empty in-memory stream store.
func NewEventStreams() *EventStreams {
	return &EventStreams{streams: make(map[string][]codec.Event)}
}

func (e *EventStreams) WriteEvent(stream string, values map[string]string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	event := codec.Event{
		EventID: uuid.NewString(),
		Stream:  stream,
		Values:  copied,
	}
	e.streams[stream] = append(e.streams[stream], event)
	return event.EventID, nil
}

func (e *EventStreams) ReadAll(stream string) ([]codec.Event, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]codec.Event(nil), e.streams[stream]...), nil
}
