// Package hostcall is the foreign-call boundary between an actor and its
// host runtime.
//
// Every outbound interaction is one blocking round trip through a single
// primitive:
//
//	resp, err := hostcall.Call(binding, capID, operation, payload)
//
// The call suspends the actor until the host responds; there is no
// cancellation, no retry, and no concurrent guest execution during the wait.
// binding selects which provider instance of a capability handles the call,
// capID and operation select the behavior, and payload is opaque bytes.
//
// On wasip1 builds the default transport is the waPC guest ABI
// (__host_call and friends, imported from the "wapc" module). On native
// builds there is no host; tests and embedders install a transport with
// SetDefault.
package hostcall
