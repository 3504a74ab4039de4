// Package msg is the client facade for a host-bound message broker
// capability (wascc:messaging).
package msg

import (
	"time"

	"github.com/wippyai/actor-sdk/codec"
	"github.com/wippyai/actor-sdk/errors"
	"github.com/wippyai/actor-sdk/hostcall"
)

// Broker is a client bound to one message broker provider instance.
type Broker struct {
	binding string
	call    hostcall.Func
}

// Default returns a broker client on the default binding.
func Default() *Broker {
	return Host(hostcall.DefaultBinding)
}

// Host returns a broker client on a named binding.
func Host(binding string) *Broker {
	return New(binding, hostcall.Call)
}

// New returns a broker client with an explicit transport.
func New(binding string, call hostcall.Func) *Broker {
	if binding == "" {
		binding = hostcall.DefaultBinding
	}
	return &Broker{binding: binding, call: call}
}

// Publish sends a fire-and-forget message on subject. replyTo may be empty.
func (b *Broker) Publish(subject, replyTo string, payload []byte) error {
	req := codec.PublishMessage{
		Message: codec.BrokerMessage{
			Subject: subject,
			ReplyTo: replyTo,
			Body:    payload,
		},
	}
	data, err := codec.Serialize(req)
	if err != nil {
		return errors.Serialization(errors.CapMessaging, err)
	}
	if _, err := b.call(b.binding, codec.CapIDMessaging, codec.OpPublish, data); err != nil {
		return errors.Host(errors.CapMessaging, codec.OpPublish, err)
	}
	return nil
}

// Request publishes on subject and blocks for a reply. The timeout is
// enforced by the host; exceeding it surfaces as a host-kind error carrying
// the host's timeout message, distinguishable from a handler failure by its
// cause.
func (b *Broker) Request(subject string, payload []byte, timeout time.Duration) ([]byte, error) {
	req := codec.RequestMessage{
		Subject:   subject,
		Body:      payload,
		TimeoutMs: timeout.Milliseconds(),
	}
	data, err := codec.Serialize(req)
	if err != nil {
		return nil, errors.Serialization(errors.CapMessaging, err)
	}
	resp, err := b.call(b.binding, codec.CapIDMessaging, codec.OpRequest, data)
	if err != nil {
		return nil, errors.Host(errors.CapMessaging, codec.OpRequest, err)
	}
	return resp, nil
}
