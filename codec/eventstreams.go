package codec

// CapIDEventStreams is the capability ID for append-only event stream
// providers.
const CapIDEventStreams = "wascc:eventstreams"

// Event stream operation names.
const (
	OpWriteEvent  = "WriteEvent"
	OpQueryStream = "QueryStream"
)

// Event is one entry in a stream: an ID assigned by the provider plus a flat
// field map.
type Event struct {
	EventID string            `msgpack:"event_id"`
	Stream  string            `msgpack:"stream"`
	Values  map[string]string `msgpack:"values"`
}

// WriteEventRequest appends an event to a named stream.
type WriteEventRequest struct {
	Stream string            `msgpack:"stream"`
	Values map[string]string `msgpack:"values"`
}

// EventAck acknowledges a write with the new event's ID.
type EventAck struct {
	EventID string `msgpack:"event_id"`
	Error   string `msgpack:"error"`
}

// StreamQuery reads events from a stream. A zero Count reads everything.
type StreamQuery struct {
	StreamID string `msgpack:"stream_id"`
	Count    uint64 `msgpack:"count"`
}

// StreamResults is the ordered result of a stream query.
type StreamResults struct {
	Events []Event `msgpack:"events"`
}
