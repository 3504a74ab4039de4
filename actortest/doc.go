// Package actortest provides test doubles for actor handlers and facades.
//
// Two levels of substitution are available. Transport fakes the foreign-call
// boundary itself: facade clients are pointed at it with each package's New
// constructor, responses are scripted per route key, and every call is
// recorded for assertions. The in-memory implementations (KV, Broker,
// ObjectStore, Extras, EventStreams) instead satisfy the root facade
// contracts directly and plug into actorsdk.Custom, letting handler logic
// run with no host and no wire format at all.
package actortest
