// Package extras is the client facade for the host's miscellaneous
// generators (wascc:extras): random numbers, GUIDs, and sequence numbers.
package extras

import (
	"github.com/wippyai/actor-sdk/codec"
	"github.com/wippyai/actor-sdk/errors"
	"github.com/wippyai/actor-sdk/hostcall"
)

// Client is bound to one extras provider instance.
type Client struct {
	binding string
	call    hostcall.Func
}

// Default returns an extras client on the default binding.
func Default() *Client {
	return Host(hostcall.DefaultBinding)
}

// Host returns an extras client on a named binding.
func Host(binding string) *Client {
	return New(binding, hostcall.Call)
}

// New returns an extras client with an explicit transport.
func New(binding string, call hostcall.Func) *Client {
	if binding == "" {
		binding = hostcall.DefaultBinding
	}
	return &Client{binding: binding, call: call}
}

func (c *Client) generate(op string, req codec.GeneratorRequest) (codec.GeneratorResult, error) {
	payload, err := codec.Serialize(req)
	if err != nil {
		return codec.GeneratorResult{}, errors.Serialization(errors.CapExtras, err)
	}
	out, err := c.call(c.binding, codec.CapIDExtras, op, payload)
	if err != nil {
		return codec.GeneratorResult{}, errors.Host(errors.CapExtras, op, err)
	}
	var result codec.GeneratorResult
	if err := codec.Deserialize(out, &result); err != nil {
		return codec.GeneratorResult{}, errors.Serialization(errors.CapExtras, err)
	}
	return result, nil
}

// GetRandom returns a host-generated random number in [min, max].
func (c *Client) GetRandom(min, max uint32) (uint32, error) {
	result, err := c.generate(codec.OpRequestRandom, codec.GeneratorRequest{
		Random: true,
		Min:    min,
		Max:    max,
	})
	if err != nil {
		return 0, err
	}
	return result.RandomNumber, nil
}

// GetGUID returns a host-generated v4 GUID string.
func (c *Client) GetGUID() (string, error) {
	result, err := c.generate(codec.OpRequestGuid, codec.GeneratorRequest{Guid: true})
	if err != nil {
		return "", err
	}
	return result.Guid, nil
}

// GetSequenceNumber returns a monotonically increasing number. The sequence
// is unique per host process only, not globally.
func (c *Client) GetSequenceNumber() (uint64, error) {
	result, err := c.generate(codec.OpRequestSequence, codec.GeneratorRequest{Sequence: true})
	if err != nil {
		return 0, err
	}
	return result.SequenceNo, nil
}
