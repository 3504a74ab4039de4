package actortest

import (
	"sync"
	"time"

	"github.com/wippyai/actor-sdk/errors"
)

// Published records one message sent through the fake broker.
type Published struct {
	Subject string
	ReplyTo string
	Payload []byte
}

// Broker is an in-memory message broker satisfying the
// actorsdk.MessageBroker contract. Publishes are recorded; requests are
// answered by per-subject responders, or fail like a host timeout when no
// responder is registered.
type Broker struct {
	mu         sync.Mutex
	published  []Published
	responders map[string]func(payload []byte) ([]byte, error)
}

// NewBroker returns an empty fake broker.
func NewBroker() *Broker {
	return &Broker{
		responders: make(map[string]func(payload []byte) ([]byte, error)),
	}
}

// RespondTo registers a responder invoked for requests on subject.
func (b *Broker) RespondTo(subject string, fn func(payload []byte) ([]byte, error)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.responders[subject] = fn
}

func (b *Broker) Publish(subject, replyTo string, payload []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, Published{
		Subject: subject,
		ReplyTo: replyTo,
		Payload: append([]byte(nil), payload...),
	})
	return nil
}

func (b *Broker) Request(subject string, payload []byte, timeout time.Duration) ([]byte, error) {
	b.mu.Lock()
	fn, ok := b.responders[subject]
	b.mu.Unlock()
	if !ok {
		return nil, errors.New(errors.CapMessaging, errors.KindHost).
			Op("Request").
			Detail("timeout: no responders on %q", subject).
			Build()
	}
	return fn(payload)
}

// Published returns every recorded publish in order.
func (b *Broker) Published() []Published {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Published(nil), b.published...)
}
