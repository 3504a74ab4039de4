// Package events is the client facade for append-only event stream
// capability providers (wascc:eventstreams).
package events

import (
	stderrors "errors"

	"github.com/wippyai/actor-sdk/codec"
	"github.com/wippyai/actor-sdk/errors"
	"github.com/wippyai/actor-sdk/hostcall"
)

// Streams is a client bound to one event stream provider instance.
type Streams struct {
	binding string
	call    hostcall.Func
}

// Default returns an event streams client on the default binding.
func Default() *Streams {
	return Host(hostcall.DefaultBinding)
}

// Host returns an event streams client on a named binding.
func Host(binding string) *Streams {
	return New(binding, hostcall.Call)
}

// New returns an event streams client with an explicit transport.
func New(binding string, call hostcall.Func) *Streams {
	if binding == "" {
		binding = hostcall.DefaultBinding
	}
	return &Streams{binding: binding, call: call}
}

// WriteEvent appends an event to the named stream and returns the new
// event's ID.
func (s *Streams) WriteEvent(stream string, values map[string]string) (string, error) {
	payload, err := codec.Serialize(codec.WriteEventRequest{Stream: stream, Values: values})
	if err != nil {
		return "", errors.Serialization(errors.CapEventStreams, err)
	}
	out, err := s.call(s.binding, codec.CapIDEventStreams, codec.OpWriteEvent, payload)
	if err != nil {
		return "", errors.Host(errors.CapEventStreams, codec.OpWriteEvent, err)
	}
	var ack codec.EventAck
	if err := codec.Deserialize(out, &ack); err != nil {
		return "", errors.Serialization(errors.CapEventStreams, err)
	}
	if ack.Error != "" {
		return "", errors.Host(errors.CapEventStreams, codec.OpWriteEvent, stderrors.New(ack.Error))
	}
	return ack.EventID, nil
}

// ReadAll returns every event in the named stream, in order.
func (s *Streams) ReadAll(stream string) ([]codec.Event, error) {
	payload, err := codec.Serialize(codec.StreamQuery{StreamID: stream})
	if err != nil {
		return nil, errors.Serialization(errors.CapEventStreams, err)
	}
	out, err := s.call(s.binding, codec.CapIDEventStreams, codec.OpQueryStream, payload)
	if err != nil {
		return nil, errors.Host(errors.CapEventStreams, codec.OpQueryStream, err)
	}
	var results codec.StreamResults
	if err := codec.Deserialize(out, &results); err != nil {
		return nil, errors.Serialization(errors.CapEventStreams, err)
	}
	return results.Events, nil
}
