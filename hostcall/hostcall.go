package hostcall

import (
	"sync"

	"github.com/wippyai/actor-sdk/errors"
)

// DefaultBinding is the canonical provider instance name. Hosts that bind a
// single provider per capability use this name.
const DefaultBinding = "default"

// routeSeparator joins a capability ID and an operation into a route key.
// Capability IDs and operation names must never contain it, otherwise two
// distinct pairs could produce the same key.
const routeSeparator = "/"

// Func is the transport primitive: one blocking foreign call carrying a
// (binding, capability, operation, payload) tuple.
type Func func(binding, capID, operation string, payload []byte) ([]byte, error)

// EntryFunc is the inbound counterpart: the single function the host invokes
// to push an operation into the actor.
type EntryFunc func(operation string, payload []byte) ([]byte, error)

// RouteKey composes a capability ID and an operation into the routing
// discriminator the host uses to select a provider behavior. Deterministic
// and injective as long as neither part contains the separator.
func RouteKey(capID, operation string) string {
	return capID + routeSeparator + operation
}

var (
	mu        sync.RWMutex
	transport Func = platformTransport
	entry     EntryFunc
)

// Call issues one blocking host call through the process transport.
func Call(binding, capID, operation string, payload []byte) ([]byte, error) {
	mu.RLock()
	fn := transport
	mu.RUnlock()
	return fn(binding, capID, operation, payload)
}

// SetDefault replaces the process transport. Used by tests and by native
// embedders that bridge to a host by other means.
func SetDefault(fn Func) {
	mu.Lock()
	defer mu.Unlock()
	if fn == nil {
		transport = platformTransport
		return
	}
	transport = fn
}

// SetEntry installs the inbound entry function the host-facing export
// delegates to. Installed once by the dispatch table at freeze time.
func SetEntry(fn EntryFunc) {
	mu.Lock()
	entry = fn
	mu.Unlock()
}

// invokeEntry routes a host-pushed operation to the installed entry function.
func invokeEntry(operation string, payload []byte) ([]byte, error) {
	mu.RLock()
	fn := entry
	mu.RUnlock()
	if fn == nil {
		return nil, errors.BadDispatch(operation)
	}
	return fn(operation, payload)
}
