//go:build !wasip1

package hostcall

import (
	"github.com/wippyai/actor-sdk/errors"
)

// platformTransport on native builds has no host to reach. Tests and
// embedders install a transport with SetDefault.
func platformTransport(binding, capID, operation string, payload []byte) ([]byte, error) {
	return nil, errors.New(errors.CapTransport, errors.KindHost).
		Op(operation).
		Detail("no host transport configured").
		Build()
}

// ConsoleLog is a no-op outside a wasm host.
func ConsoleLog(msg string) {}

// Invoke delivers a host-pushed operation to the installed entry function.
// Native harnesses use this in place of the __guest_call export.
func Invoke(operation string, payload []byte) ([]byte, error) {
	return invokeEntry(operation, payload)
}
