// Package dispatch routes host-initiated operations to actor handlers.
//
// The host delivers pushed operations (health checks, application
// requests, download chunks) through a single entry point. A Table maps
// each operation name to one handler; it is built during module
// initialization, frozen, and never changes afterward:
//
//	table := dispatch.NewTable()
//	table.MustRegister(codec.OpHealthRequest, dispatch.Typed(health)).
//		MustRegister("HandleRequest", handleRequest).
//		Freeze()
//
// Registering two handlers for the same operation is an error at
// registration time; an inbound operation with no handler fails with a
// bad-dispatch error naming the operation. Routing is exact string match;
// registration order never matters.
package dispatch
