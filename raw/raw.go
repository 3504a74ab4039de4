// Package raw is the untyped pass-through facade: the escape hatch for
// capability providers that have no typed client in this SDK.
package raw

import (
	"github.com/wippyai/actor-sdk/errors"
	"github.com/wippyai/actor-sdk/hostcall"
)

// Capability is a loosely typed client for an arbitrary bound provider.
type Capability struct {
	binding string
	call    hostcall.Func
}

// Default returns a raw client on the default binding.
func Default() *Capability {
	return Host(hostcall.DefaultBinding)
}

// Host returns a raw client on a named binding.
func Host(binding string) *Capability {
	return New(binding, hostcall.Call)
}

// New returns a raw client with an explicit transport.
func New(binding string, call hostcall.Func) *Capability {
	if binding == "" {
		binding = hostcall.DefaultBinding
	}
	return &Capability{binding: binding, call: call}
}

// Call passes payload straight through to the provider identified by capID
// and operation, returning the provider's bytes untouched.
func (c *Capability) Call(capID, operation string, payload []byte) ([]byte, error) {
	resp, err := c.call(c.binding, capID, operation, payload)
	if err != nil {
		return nil, errors.Host(errors.CapRaw, operation, err)
	}
	return resp, nil
}
